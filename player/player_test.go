package player

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"sos/game"
)

func TestRandom(t *testing.T) {
	t.Run("chooses a legal move", func(t *testing.T) {
		gs, err := game.NewGameState(3)
		require.NoError(t, err)
		p := NewRandom("Player1", 42)

		move, err := p.ChooseMove(gs)

		require.NoError(t, err)
		require.Contains(t, gs.LegalMoves(), move)
	})

	t.Run("replays identically with the same seed", func(t *testing.T) {
		gs, err := game.NewGameState(4)
		require.NoError(t, err)

		first := NewRandom("Player1", 7)
		second := NewRandom("Player1", 7)
		for i := 0; i < 5; i++ {
			moveA, err := first.ChooseMove(gs)
			require.NoError(t, err)
			moveB, err := second.ChooseMove(gs)
			require.NoError(t, err)
			require.Equal(t, moveA, moveB)

			gs, _, err = gs.Play(moveA)
			require.NoError(t, err)
		}
	})

	t.Run("fails on a full board", func(t *testing.T) {
		gs, err := game.NewGameState(3)
		require.NoError(t, err)
		for _, loc := range gs.Board().EmptyCells() {
			gs, _, err = gs.Play(game.Move{Row: loc.Row, Col: loc.Col, Sign: game.O})
			require.NoError(t, err)
		}
		p := NewRandom("Player1", 1)

		_, err = p.ChooseMove(gs)

		require.ErrorIs(t, err, game.ErrGameOver)
	})
}

func TestHuman(t *testing.T) {
	t.Run("returns whatever the reader produced", func(t *testing.T) {
		want := game.Move{Row: 1, Col: 2, Sign: game.S}
		p := NewHuman("Player1", func(*game.GameState) (game.Move, error) {
			return want, nil
		})
		gs, err := game.NewGameState(3)
		require.NoError(t, err)

		move, err := p.ChooseMove(gs)

		require.NoError(t, err)
		require.Equal(t, want, move)
	})

	t.Run("propagates reader errors", func(t *testing.T) {
		wantErr := errors.New("input closed")
		p := NewHuman("Player1", func(*game.GameState) (game.Move, error) {
			return game.Move{}, wantErr
		})
		gs, err := game.NewGameState(3)
		require.NoError(t, err)

		_, err = p.ChooseMove(gs)

		require.ErrorIs(t, err, wantErr)
	})
}

func TestMinimax(t *testing.T) {
	t.Run("chooses a legal move and reports metrics", func(t *testing.T) {
		gs, err := game.NewGameState(3)
		require.NoError(t, err)
		p := NewMinimax("Player1", game.Player1, 2)

		move, err := p.ChooseMove(gs)

		require.NoError(t, err)
		require.Contains(t, gs.LegalMoves(), move)
		require.Positive(t, p.Metrics().Nodes)
	})
}
