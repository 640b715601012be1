package game

import (
	"fmt"
	"strings"
)

// MinBoardSize is the smallest grid an S-O-S line fits in.
const MinBoardSize = 3

// Location is a board coordinate.
type Location struct {
	Row int
	Col int
}

// Board is an n×n grid of signs stored row-major. Cells start Empty and a
// placed sign is never overwritten.
type Board struct {
	size  int
	cells []Sign
}

// NewBoard creates an empty size×size board.
func NewBoard(size int) (*Board, error) {
	if size < MinBoardSize {
		return nil, fmt.Errorf("board size %d: minimum is %d", size, MinBoardSize)
	}
	return &Board{size: size, cells: make([]Sign, size*size)}, nil
}

func (b *Board) Size() int {
	return b.size
}

// InRange reports whether (r,c) is on the board.
func (b *Board) InRange(r, c int) bool {
	return r >= 0 && r < b.size && c >= 0 && c < b.size
}

// Get returns the sign at (r,c).
func (b *Board) Get(r, c int) (Sign, error) {
	if !b.InRange(r, c) {
		return Empty, fmt.Errorf("get (%d,%d): %w", r, c, ErrOutOfRange)
	}
	return b.cells[r*b.size+c], nil
}

// Place sets the sign at (r,c). The cell must be empty and the sign playable.
func (b *Board) Place(r, c int, sign Sign) error {
	if sign != S && sign != O {
		return fmt.Errorf("place (%d,%d): sign must be S or O: %w", r, c, ErrInvalidMove)
	}
	if !b.InRange(r, c) {
		return fmt.Errorf("place (%d,%d): %w", r, c, ErrInvalidMove)
	}
	if b.cells[r*b.size+c] != Empty {
		return fmt.Errorf("place (%d,%d): cell occupied: %w", r, c, ErrInvalidMove)
	}
	b.cells[r*b.size+c] = sign
	return nil
}

// IsFull reports whether no empty cell remains.
func (b *Board) IsFull() bool {
	for _, cell := range b.cells {
		if cell == Empty {
			return false
		}
	}
	return true
}

// EmptyCells returns every empty coordinate in row-major order, so move
// enumeration and random selection are reproducible.
func (b *Board) EmptyCells() []Location {
	var empty []Location
	for i, cell := range b.cells {
		if cell == Empty {
			empty = append(empty, Location{Row: i / b.size, Col: i % b.size})
		}
	}
	return empty
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() *Board {
	cells := make([]Sign, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

// String renders the grid for console play.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for c := 0; c < b.size; c++ {
		fmt.Fprintf(&sb, " %d  ", c)
	}
	sb.WriteByte('\n')
	for r := 0; r < b.size; r++ {
		fmt.Fprintf(&sb, "%d  ", r)
		for c := 0; c < b.size; c++ {
			fmt.Fprintf(&sb, "| %s ", b.cells[r*b.size+c])
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(strings.Repeat("—", b.size*4+4))
	return sb.String()
}
