package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"sos/game"
	"sos/searcher"
)

const (
	NumGames  = 20 // Per matchup
	BoardSize = 5
)

// RunDepthMatchups pits a random baseline against minimax agents of
// increasing depth and records the outcomes and search effort as CSV.
func RunDepthMatchups() error {
	baseline := AgentConfig{ID: 0, Type: "random", Seed: 1}
	depthConfigs := []AgentConfig{
		{ID: 1, Type: "minimax", Depth: 1},
		{ID: 2, Type: "minimax", Depth: 2},
		{ID: 3, Type: "minimax", Depth: 3},
		{ID: 4, Type: "minimax", Depth: 4},
	}

	matchUps := [][2]AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, [2]AgentConfig{baseline, config})
	}

	return runExperiment("depth", append([]AgentConfig{baseline}, depthConfigs...), matchUps)
}

func runExperiment(name string, configs []AgentConfig, matchUps [][2]AgentConfig) error {
	count := 0
	gameRecords := []GameRecord{}
	moveRecords := []MoveRecord{}

	for _, matchUp := range matchUps {
		log.Info().
			Interface("agent1", matchUp[0]).
			Interface("agent2", matchUp[1]).
			Msg("running matchup")

		for i := 0; i < NumGames; i++ {
			count++
			gameRecord, moves, err := runGame(count, matchUp)
			if err != nil {
				return fmt.Errorf("game %d: %w", count, err)
			}
			gameRecords = append(gameRecords, gameRecord)
			moveRecords = append(moveRecords, moves...)
		}
	}

	writer, err := NewWriter(name)
	if err != nil {
		return err
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}

	log.Info().Int("games", len(gameRecords)).Str("experiment", name).Msg("experiment complete")
	return nil
}

// mover is the minimal agent surface the harness needs: a move plus the
// search effort behind it.
type mover interface {
	findMove(state *game.GameState) (game.Move, searcher.Metrics, error)
}

type randomMover struct {
	rng *rand.Rand
}

func (m *randomMover) findMove(state *game.GameState) (game.Move, searcher.Metrics, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, searcher.Metrics{}, game.ErrGameOver
	}
	return moves[m.rng.Intn(len(moves))], searcher.Metrics{}, nil
}

type minimaxMover struct {
	agent *searcher.Minimax
}

func (m *minimaxMover) findMove(state *game.GameState) (game.Move, searcher.Metrics, error) {
	move, err := m.agent.FindBestMove(state)
	return move, m.agent.Metrics(), err
}

func newMover(config AgentConfig, player int, gameID int) mover {
	if config.Type == "minimax" {
		return &minimaxMover{agent: searcher.New(player, searcher.WithDepth(config.Depth))}
	}
	// Vary the seed per game so the baseline does not replay the same game
	return &randomMover{rng: rand.New(rand.NewSource(config.Seed + uint64(gameID)))}
}

func runGame(id int, matchUp [2]AgentConfig) (GameRecord, []MoveRecord, error) {
	state, err := game.NewGameState(BoardSize)
	if err != nil {
		return GameRecord{}, nil, err
	}

	movers := map[int]mover{
		game.Player1: newMover(matchUp[0], game.Player1, id),
		game.Player2: newMover(matchUp[1], game.Player2, id),
	}

	start := time.Now()
	moveRecords := []MoveRecord{}
	step := 0
	for !state.IsTerminal() {
		current := state.CurrentPlayer()
		moveStart := time.Now()

		move, metrics, err := movers[current].findMove(state)
		if err != nil {
			return GameRecord{}, nil, err
		}
		next, _, err := state.Play(move)
		if err != nil {
			return GameRecord{}, nil, err
		}

		step++
		moveRecords = append(moveRecords, MoveRecord{
			Game:     id,
			Step:     step,
			Player:   state.Player(),
			Nodes:    metrics.Nodes,
			Pruned:   metrics.Pruned,
			Duration: time.Since(moveStart),
		})
		state = next
	}

	record := GameRecord{
		ID:       id,
		Agent1:   matchUp[0].ID,
		Agent2:   matchUp[1].ID,
		Winner:   state.Winner(),
		Score1:   state.Score(game.Player1),
		Score2:   state.Score(game.Player2),
		Moves:    step,
		Duration: time.Since(start),
	}
	return record, moveRecords, nil
}
