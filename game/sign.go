package game

import (
	"fmt"
	"strings"
)

// Sign is the mark occupying a board cell.
type Sign byte

const (
	Empty Sign = iota
	S
	O
)

func (s Sign) String() string {
	switch s {
	case S:
		return "S"
	case O:
		return "O"
	default:
		return "_"
	}
}

// PlayableSigns lists the signs a move may place, in a fixed order.
func PlayableSigns() [2]Sign {
	return [2]Sign{S, O}
}

// ParseSign converts user input into a playable sign. Empty is not playable.
func ParseSign(input string) (Sign, error) {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case "S":
		return S, nil
	case "O":
		return O, nil
	default:
		return Empty, fmt.Errorf("invalid sign %q: must be S or O", input)
	}
}
