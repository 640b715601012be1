package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestEvaluateFormations(t *testing.T) {
	t.Run("is zero-sum on every reachable state", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		gs, err := NewGameState(4)
		require.NoError(t, err)

		for !gs.IsTerminal() {
			require.Equal(t, EvaluateFormations(gs, Player1), -EvaluateFormations(gs, Player2))

			moves := gs.LegalMoves()
			gs, _, err = gs.Play(moves[rng.Intn(len(moves))])
			require.NoError(t, err)
		}
		require.Equal(t, EvaluateFormations(gs, Player1), -EvaluateFormations(gs, Player2))
	})

	t.Run("prefers a larger formation margin at terminal states", func(t *testing.T) {
		ahead := fullQuietBoard(t)
		aheadValue := EvaluateFormations(ahead, Player1)

		// A full board where Player1 scored once
		gs, _ := NewGameState(3)
		gs, _ = play(t, gs, 0, 0, S)
		gs, _ = play(t, gs, 0, 1, O)
		gs, _ = play(t, gs, 0, 2, S)
		for _, loc := range gs.Board().EmptyCells() {
			gs, _ = play(t, gs, loc.Row, loc.Col, O)
		}
		require.True(t, gs.IsTerminal())

		require.Greater(t, EvaluateFormations(gs, Player1), aheadValue)
		require.Less(t, EvaluateFormations(gs, Player2), EvaluateFormations(ahead, Player2))
	})

	t.Run("credits open windows to the side to move", func(t *testing.T) {
		gs, _ := NewGameState(3)
		gs, _ = play(t, gs, 0, 0, S) // Player2 to move
		gs, _ = play(t, gs, 0, 1, O) // Player1 to move, one open S,O,_ window

		require.Positive(t, EvaluateFormations(gs, Player1))
		require.Negative(t, EvaluateFormations(gs, Player2))
	})
}

func TestEvaluateMargin(t *testing.T) {
	t.Run("zero-sum and ignores open windows", func(t *testing.T) {
		gs, _ := NewGameState(3)
		gs, _ = play(t, gs, 0, 0, S)
		gs, _ = play(t, gs, 0, 1, O)

		require.Zero(t, EvaluateMargin(gs, Player1))
		require.Equal(t, EvaluateMargin(gs, Player1), -EvaluateMargin(gs, Player2))
	})
}
