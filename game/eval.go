package game

// Evaluate scores a state from one player's perspective. Positive favors the
// player. Implementations must be zero-sum consistent:
// Evaluate(s, a) == -Evaluate(s, b) for the two players a and b.
type Evaluate func(gs *GameState, player int) float64

// Heuristic weights. The completed-formation margin dominates; open windows
// only separate quiet positions before the search horizon.
const (
	formationWeight  = 10.0
	openWindowWeight = 1.0
)

// EvaluateFormations is the default position evaluator: the formation margin
// plus a bonus for open S-O-S windows, credited to the side to move since
// that side has the next chance to convert one.
func EvaluateFormations(gs *GameState, player int) float64 {
	margin := float64(gs.Score(player) - gs.Score(Opponent(player)))
	value := formationWeight * margin
	if gs.IsTerminal() {
		return value
	}

	windows := openWindowWeight * float64(OpenWindows(gs.board))
	if gs.current == player {
		value += windows
	} else {
		value -= windows
	}
	return value
}

// EvaluateMargin ignores open windows and scores the formation margin alone.
// Weaker at equal depth than EvaluateFormations but useful as a baseline.
func EvaluateMargin(gs *GameState, player int) float64 {
	return formationWeight * float64(gs.Score(player)-gs.Score(Opponent(player)))
}
