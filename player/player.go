package player

import "sos/game"

// Player selects a move for the current game state. Implementations only
// read the state; the engine validates and applies whatever they return.
type Player interface {
	Name() string
	ChooseMove(state *game.GameState) (game.Move, error)
}
