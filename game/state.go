package game

import "fmt"

// Player identifiers. SOS is always a two-player game.
const (
	Player1 = 1
	Player2 = 2
)

// Opponent returns the other player's ID.
func Opponent(player int) int {
	if player == Player1 {
		return Player2
	}
	return Player1
}

// GameState is the complete state of one SOS game: the board, whose turn it
// is, and each player's formation count. States are immutable - Play returns
// a new state and never mutates its receiver, so the search agent branches
// on snapshots instead of undoing moves.
type GameState struct {
	board      *Board
	current    int
	scores     [3]int // indexed by player ID
	moveCounts [3]int // indexed by player ID
}

// NewGameState starts a game on an empty size×size board with Player1 to move.
func NewGameState(size int) (*GameState, error) {
	board, err := NewBoard(size)
	if err != nil {
		return nil, err
	}
	return &GameState{board: board, current: Player1}, nil
}

// Board exposes the underlying board for read-only use.
func (gs *GameState) Board() *Board {
	return gs.board
}

func (gs *GameState) Size() int {
	return gs.board.Size()
}

// CurrentPlayer returns the ID of the player to move.
func (gs *GameState) CurrentPlayer() int {
	return gs.current
}

// Player returns the identifier of the current player.
func (gs *GameState) Player() string {
	return fmt.Sprintf("Player%d", gs.current)
}

// Score returns a player's accumulated formation count.
func (gs *GameState) Score(player int) int {
	return gs.scores[player]
}

// MoveCount returns how many placements a player has made.
func (gs *GameState) MoveCount(player int) int {
	return gs.moveCounts[player]
}

// LegalMoves returns every playable move: each empty cell combined with each
// playable sign, in row-major order so search and sampling are reproducible.
func (gs *GameState) LegalMoves() []Move {
	empty := gs.board.EmptyCells()
	moves := make([]Move, 0, 2*len(empty))
	for _, cell := range empty {
		for _, sign := range PlayableSigns() {
			moves = append(moves, Move{Row: cell.Row, Col: cell.Col, Sign: sign})
		}
	}
	return moves
}

// IsTerminal reports whether the board is full. Terminal is absorbing: Play
// always fails from here on.
func (gs *GameState) IsTerminal() bool {
	return gs.board.IsFull()
}

// Play applies move and returns the resulting state along with the
// formations the move completed. The mover keeps the turn when at least one
// formation was completed, otherwise the turn passes; the bonus can chain
// for as long as the mover keeps scoring. The receiver is never touched, so
// a failed move leaves the caller's state exactly as before.
func (gs *GameState) Play(move Move) (*GameState, []Formation, error) {
	if gs.IsTerminal() {
		return nil, nil, fmt.Errorf("play %s: %w", move, ErrGameOver)
	}

	next := gs.copy()
	if err := next.board.Place(move.Row, move.Col, move.Sign); err != nil {
		return nil, nil, err
	}

	formations := Formations(next.board, Location{Row: move.Row, Col: move.Col})
	next.scores[gs.current] += len(formations)
	next.moveCounts[gs.current]++
	if len(formations) == 0 {
		next.current = Opponent(gs.current)
	}
	return next, formations, nil
}

func (gs *GameState) copy() *GameState {
	return &GameState{
		board:      gs.board.Copy(),
		current:    gs.current,
		scores:     gs.scores,
		moveCounts: gs.moveCounts,
	}
}

// Winner names the leading player once the game is over, or "" while the
// game runs or when it ends tied. Ties are a valid outcome; Tied tells the
// two empty-string cases apart.
func (gs *GameState) Winner() string {
	if !gs.IsTerminal() {
		return ""
	}
	switch {
	case gs.scores[Player1] > gs.scores[Player2]:
		return "Player1"
	case gs.scores[Player2] > gs.scores[Player1]:
		return "Player2"
	default:
		return ""
	}
}

// Tied reports whether the game ended with equal scores.
func (gs *GameState) Tied() bool {
	return gs.IsTerminal() && gs.scores[Player1] == gs.scores[Player2]
}
