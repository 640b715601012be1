package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fill(t *testing.T, b *Board, cells map[Location]Sign) {
	t.Helper()
	for loc, sign := range cells {
		require.NoError(t, b.Place(loc.Row, loc.Col, sign))
	}
}

func TestFormations(t *testing.T) {
	t.Run("detects a horizontal formation from either end", func(t *testing.T) {
		b, _ := NewBoard(3)
		fill(t, b, map[Location]Sign{
			{0, 0}: S, {0, 1}: O, {0, 2}: S,
		})
		want := Formation{{0, 0}, {0, 1}, {0, 2}}

		require.Equal(t, []Formation{want}, Formations(b, Location{0, 2}))
		require.Equal(t, []Formation{want}, Formations(b, Location{0, 0}))
		require.Equal(t, []Formation{want}, Formations(b, Location{0, 1}),
			"the middle cell lies in the same single window")
	})

	t.Run("detects a vertical formation", func(t *testing.T) {
		b, _ := NewBoard(3)
		fill(t, b, map[Location]Sign{
			{0, 1}: S, {1, 1}: O, {2, 1}: S,
		})

		got := Formations(b, Location{1, 1})

		require.Equal(t, []Formation{{{0, 1}, {1, 1}, {2, 1}}}, got)
	})

	t.Run("detects both diagonal orientations at once", func(t *testing.T) {
		b, _ := NewBoard(3)
		fill(t, b, map[Location]Sign{
			{0, 0}: S, {2, 2}: S, // down-right diagonal ends
			{0, 2}: S, {2, 0}: S, // down-left diagonal ends
			{1, 1}: O,
		})

		got := Formations(b, Location{1, 1})

		require.Len(t, got, 2, "the O completes two distinct formations")
		require.Contains(t, got, Formation{{0, 0}, {1, 1}, {2, 2}})
		require.Contains(t, got, Formation{{0, 2}, {1, 1}, {2, 0}})
	})

	t.Run("counts overlapping windows on the same line separately", func(t *testing.T) {
		// S O S O S: the middle S belongs to two formations
		b, _ := NewBoard(5)
		fill(t, b, map[Location]Sign{
			{0, 0}: S, {0, 1}: O, {0, 3}: O, {0, 4}: S,
		})
		require.NoError(t, b.Place(0, 2, S))

		got := Formations(b, Location{0, 2})

		require.Len(t, got, 2)
		require.Contains(t, got, Formation{{0, 0}, {0, 1}, {0, 2}})
		require.Contains(t, got, Formation{{0, 2}, {0, 3}, {0, 4}})
	})

	t.Run("never reports the same triple twice", func(t *testing.T) {
		b, _ := NewBoard(4)
		fill(t, b, map[Location]Sign{
			{1, 0}: S, {1, 1}: O, {1, 2}: S,
		})

		got := Formations(b, Location{1, 1})

		seen := map[Formation]bool{}
		for _, f := range got {
			require.False(t, seen[f], "duplicate formation %v", f)
			seen[f] = true
		}
	})

	t.Run("handles corner cells with truncated windows", func(t *testing.T) {
		b, _ := NewBoard(3)
		require.NoError(t, b.Place(0, 0, S))

		require.Empty(t, Formations(b, Location{0, 0}))
	})

	t.Run("finds nothing on a quiet board", func(t *testing.T) {
		b, _ := NewBoard(3)
		fill(t, b, map[Location]Sign{
			{0, 0}: S, {0, 1}: S, {0, 2}: S,
		})

		require.Empty(t, Formations(b, Location{0, 1}), "S,S,S is not a formation")
	})
}

func TestCountAll(t *testing.T) {
	t.Run("counts every formation on the board exactly once", func(t *testing.T) {
		b, _ := NewBoard(5)
		fill(t, b, map[Location]Sign{
			{0, 0}: S, {0, 1}: O, {0, 2}: S, {0, 3}: O, {0, 4}: S, // two horizontal
			{1, 1}: O, {2, 2}: S, // down-right from (0,0)
		})

		require.Equal(t, 3, CountAll(b))
	})

	t.Run("zero on an empty board", func(t *testing.T) {
		b, _ := NewBoard(4)

		require.Zero(t, CountAll(b))
	})
}

func TestOpenWindows(t *testing.T) {
	t.Run("counts windows one placement from completion", func(t *testing.T) {
		b, _ := NewBoard(3)
		fill(t, b, map[Location]Sign{
			{0, 0}: S, {0, 1}: O, // S,O,_ along the top row
		})

		got := OpenWindows(b)

		// Only the top-row S,O,_ window is a single placement away
		require.Equal(t, 1, got)
	})

	t.Run("completed formations are not open", func(t *testing.T) {
		b, _ := NewBoard(3)
		fill(t, b, map[Location]Sign{
			{0, 0}: S, {0, 1}: O, {0, 2}: S,
		})

		require.Zero(t, OpenWindows(b))
	})
}
