package player

import "sos/game"

// MoveReader produces the next move a human wants to play. The console
// prompt lives with the caller; the engine re-validates the result and asks
// again on an invalid move.
type MoveReader func(state *game.GameState) (game.Move, error)

// Human defers move selection to an external input source.
type Human struct {
	name string
	read MoveReader
}

func NewHuman(name string, read MoveReader) *Human {
	return &Human{name: name, read: read}
}

func (p *Human) Name() string {
	return p.name
}

func (p *Human) ChooseMove(state *game.GameState) (game.Move, error) {
	return p.read(state)
}
