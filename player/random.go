package player

import (
	"fmt"

	"golang.org/x/exp/rand"

	"sos/game"
)

// Random plays a uniformly random legal move. With a fixed seed its games
// replay identically since LegalMoves order is deterministic.
type Random struct {
	name string
	rng  *rand.Rand
}

func NewRandom(name string, seed uint64) *Random {
	return &Random{
		name: name,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (p *Random) Name() string {
	return p.name
}

func (p *Random) ChooseMove(state *game.GameState) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, fmt.Errorf("%s: choose move: %w", p.name, game.ErrGameOver)
	}
	return moves[p.rng.Intn(len(moves))], nil
}
