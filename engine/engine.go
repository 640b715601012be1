package engine

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"sos/game"
	"sos/player"
)

// MaxRetries bounds how often a player may resubmit an invalid move before
// the game is abandoned. Humans mistype; agents never should.
const MaxRetries = 10

// Result is the final outcome handed to the presentation layer.
type Result struct {
	Winner string // "" on a tie
	Tied   bool
	Scores map[string]int // keyed by player name
	Moves  int
}

// Engine drives one game between two players to completion.
type Engine struct {
	id      uuid.UUID
	state   *game.GameState
	players map[int]player.Player
	logger  zerolog.Logger
}

func New(state *game.GameState, player1, player2 player.Player) *Engine {
	id := uuid.New()
	return &Engine{
		id:    id,
		state: state,
		players: map[int]player.Player{
			game.Player1: player1,
			game.Player2: player2,
		},
		logger: log.With().Str("game", id.String()).Logger(),
	}
}

// State exposes the current game state for rendering.
func (e *Engine) State() *game.GameState {
	return e.state
}

// Run plays the game until the board is full and returns the final result.
func (e *Engine) Run() (Result, error) {
	e.logger.Info().
		Int("size", e.state.Size()).
		Str("player1", e.players[game.Player1].Name()).
		Str("player2", e.players[game.Player2].Name()).
		Msg("game started")

	moves := 0
	for !e.state.IsTerminal() {
		current := e.state.CurrentPlayer()
		p := e.players[current]

		move, next, formations, err := e.play(p)
		if err != nil {
			return Result{}, fmt.Errorf("game %s: %w", e.id, err)
		}

		event := e.logger.Info().
			Str("player", p.Name()).
			Stringer("move", move).
			Int("score", next.Score(current))
		if len(formations) > 0 {
			event = event.Int("formations", len(formations)).Bool("bonus", !next.IsTerminal())
		}
		event.Msg("move played")

		e.state = next
		moves++
	}

	e.verifyScores()

	result := Result{
		Winner: e.state.Winner(),
		Tied:   e.state.Tied(),
		Scores: map[string]int{
			e.players[game.Player1].Name(): e.state.Score(game.Player1),
			e.players[game.Player2].Name(): e.state.Score(game.Player2),
		},
		Moves: moves,
	}

	e.logger.Info().
		Str("winner", result.Winner).
		Bool("tied", result.Tied).
		Int("moves", result.Moves).
		Msg("game over")

	return result, nil
}

// play asks p for a move until it produces a valid one, up to MaxRetries.
func (e *Engine) play(p player.Player) (game.Move, *game.GameState, []game.Formation, error) {
	for attempt := 0; attempt < MaxRetries; attempt++ {
		move, err := p.ChooseMove(e.state)
		if err != nil {
			return game.Move{}, nil, nil, fmt.Errorf("%s: choose move: %w", p.Name(), err)
		}

		next, formations, err := e.state.Play(move)
		if errors.Is(err, game.ErrInvalidMove) {
			e.logger.Warn().Str("player", p.Name()).Stringer("move", move).Msg("rejected invalid move")
			continue
		}
		if err != nil {
			return game.Move{}, nil, nil, fmt.Errorf("%s: %w", p.Name(), err)
		}
		return move, next, formations, nil
	}
	return game.Move{}, nil, nil, fmt.Errorf("%s: %d invalid moves in a row", p.Name(), MaxRetries)
}

// verifyScores cross-checks the incremental scoring against a full scan of
// the final board.
func (e *Engine) verifyScores() {
	scanned := game.CountAll(e.state.Board())
	scored := e.state.Score(game.Player1) + e.state.Score(game.Player2)
	if scanned != scored {
		e.logger.Error().Int("scanned", scanned).Int("scored", scored).Msg("formation count mismatch")
	}
}
