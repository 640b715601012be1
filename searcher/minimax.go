package searcher

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"sos/game"
)

// DefaultDepth bounds the search when no depth option is given.
const DefaultDepth = 3

// Option configures a Minimax agent.
type Option func(*Minimax)

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// Minimax chooses moves by depth-bounded minimax search with alpha-beta
// pruning. Instances are not safe for concurrent searches; each game or
// search call owns its agent.
type Minimax struct {
	player   int
	depth    int
	evaluate game.Evaluate
	metrics  Metrics
}

// New creates a search agent playing for the given player ID.
func New(player int, options ...Option) *Minimax {
	m := &Minimax{
		player:   player,
		depth:    DefaultDepth,
		evaluate: game.EvaluateFormations,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Metrics reports the work done by the most recent FindBestMove call.
func (m *Minimax) Metrics() Metrics {
	return m.metrics
}

// FindBestMove returns the best legal move for the agent's player. The
// search is deterministic: moves are explored in LegalMoves order and ties
// keep the first move encountered. A depth bound beyond the remaining empty
// cells just searches to the end of the game.
func (m *Minimax) FindBestMove(state *game.GameState) (game.Move, error) {
	if state.IsTerminal() {
		return game.Move{}, fmt.Errorf("find best move: %w", game.ErrGameOver)
	}
	if state.CurrentPlayer() != m.player {
		return game.Move{}, fmt.Errorf("find best move: not Player%d's turn", m.player)
	}
	m.metrics = Metrics{}

	var best game.Move
	bestValue := math.Inf(-1)
	alpha, beta := math.Inf(-1), math.Inf(1)
	for _, move := range state.LegalMoves() {
		value := m.search(mustPlay(state, move), m.depth-1, alpha, beta)
		if value > bestValue {
			bestValue = value
			best = move
		}
		alpha = math.Max(alpha, bestValue)
	}

	log.Debug().
		Stringer("move", best).
		Float64("value", bestValue).
		Int("nodes", m.metrics.Nodes).
		Int("pruned", m.metrics.Pruned).
		Msg("search complete")

	return best, nil
}

// search values state from the agent's perspective. Whether a node maximizes
// or minimizes follows from whose turn it is in that state: a move that
// completed a formation keeps the same side to move, so the role carries
// through bonus-move chains instead of flipping every ply.
func (m *Minimax) search(state *game.GameState, depth int, alpha, beta float64) float64 {
	if depth <= 0 || state.IsTerminal() {
		m.metrics.Nodes++
		return m.evaluate(state, m.player)
	}

	// TODO: order moves by immediate formation gain to tighten pruning
	moves := state.LegalMoves()

	if state.CurrentPlayer() == m.player { // Maximizing ply
		value := math.Inf(-1)
		for _, move := range moves {
			value = math.Max(value, m.search(mustPlay(state, move), depth-1, alpha, beta))
			alpha = math.Max(alpha, value)
			if alpha >= beta {
				m.metrics.Pruned++
				break
			}
		}
		return value
	}

	// Minimizing ply
	value := math.Inf(1)
	for _, move := range moves {
		value = math.Min(value, m.search(mustPlay(state, move), depth-1, alpha, beta))
		beta = math.Min(beta, value)
		if beta <= alpha {
			m.metrics.Pruned++
			break
		}
	}
	return value
}

// mustPlay expands a move taken from LegalMoves, which cannot fail on a
// non-terminal state.
func mustPlay(state *game.GameState, move game.Move) *game.GameState {
	child, _, err := state.Play(move)
	if err != nil {
		panic(fmt.Sprintf("legal move %s rejected: %v", move, err))
	}
	return child
}
