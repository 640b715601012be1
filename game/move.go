package game

import "fmt"

// Move places a sign at a board coordinate.
type Move struct {
	Row  int
	Col  int
	Sign Sign
}

func (m Move) String() string {
	return fmt.Sprintf("%s(%d,%d)", m.Sign, m.Row, m.Col)
}
