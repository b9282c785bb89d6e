package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, rows ...string) Grid {
	t.Helper()
	g, err := ParseGrid(rows...)
	require.NoError(t, err)
	return g
}

func TestParseGrid(t *testing.T) {
	t.Run("round trips through the key", func(t *testing.T) {
		g := mustParse(t, "X_O", "___", "OOX")

		require.Equal(t, 3, g.Dim())
		require.Equal(t, "X_O___OOX", g.Key())
		require.Equal(t, "X_O\n___\nOOX", g.String())
		require.Equal(t, SideB, g.At(Position{Row: 2, Col: 0}))
	})

	t.Run("rejects rows of the wrong length", func(t *testing.T) {
		_, err := ParseGrid("X__", "__", "___")
		require.ErrorIs(t, err, ErrMalformedGrid)
	})

	t.Run("rejects unknown markers", func(t *testing.T) {
		_, err := ParseGrid("X?", "__")
		require.ErrorIs(t, err, ErrMalformedGrid)
	})

	t.Run("rejects no rows", func(t *testing.T) {
		_, err := ParseGrid()
		require.ErrorIs(t, err, ErrMalformedGrid)
	})

	t.Run("builds from a cell matrix", func(t *testing.T) {
		g, err := FromCells([][]Cell{{SideA, Empty}, {Empty, SideB}})
		require.NoError(t, err)
		require.Equal(t, "X__O", g.Key())

		_, err = FromCells([][]Cell{{SideA, Empty}, {Empty}})
		require.ErrorIs(t, err, ErrMalformedGrid)
	})
}

func TestPlay(t *testing.T) {
	t.Run("placement without capture only fills the cell", func(t *testing.T) {
		g := NewGrid(4)

		next, err := g.Play(Position{Row: 1, Col: 1}, SideA)

		require.NoError(t, err)
		require.Equal(t, mustParse(t, "____", "_X__", "____", "____").Key(), next.Key())
		require.Equal(t, "________________", g.Key(), "Play must not modify the receiver")
	})

	t.Run("closing a corner captures it and grants the bonus placement", func(t *testing.T) {
		g := mustParse(t,
			"_X__",
			"____",
			"____",
			"____",
		)

		next, err := g.Play(Position{Row: 1, Col: 0}, SideA)

		require.NoError(t, err)
		want := mustParse(t,
			"XXX_",
			"X___",
			"____",
			"____",
		)
		require.Equal(t, want.Key(), next.Key(), "corner captured, bonus lands on the first empty cell")
	})

	t.Run("bonus placement can trigger one more capture", func(t *testing.T) {
		g := mustParse(t,
			"_X__",
			"__OX",
			"____",
			"____",
		)

		next, err := g.Play(Position{Row: 1, Col: 0}, SideA)

		require.NoError(t, err)
		want := mustParse(t,
			"XXXX",
			"X_OX",
			"____",
			"____",
		)
		require.Equal(t, want.Key(), next.Key())
	})

	t.Run("an already enclosed cell is captured by any move of its owner", func(t *testing.T) {
		g := mustParse(t,
			"_X__",
			"X___",
			"____",
			"____",
		)

		next, err := g.Play(Position{Row: 3, Col: 3}, SideA)

		require.NoError(t, err)
		want := mustParse(t,
			"XXX_",
			"X___",
			"____",
			"___X",
		)
		require.Equal(t, want.Key(), next.Key())
	})

	t.Run("the opponent does not capture cells enclosed by the other side", func(t *testing.T) {
		g := mustParse(t,
			"_X__",
			"X___",
			"____",
			"____",
		)

		next, err := g.Play(Position{Row: 3, Col: 3}, SideB)

		require.NoError(t, err)
		require.Equal(t, Empty, next.At(Position{Row: 0, Col: 0}))
		require.Equal(t, 1, next.Count(SideB))
	})

	t.Run("capture that fills the board skips the bonus", func(t *testing.T) {
		g := mustParse(t,
			"_X",
			"X_",
		)

		next, err := g.Play(Position{Row: 1, Col: 1}, SideA)

		require.NoError(t, err)
		require.Equal(t, "XXXX", next.Key())
		require.True(t, next.IsTerminal())
	})

	t.Run("rejects occupied cells", func(t *testing.T) {
		g := mustParse(t, "X_", "__")

		_, err := g.Play(Position{Row: 0, Col: 0}, SideB)

		require.ErrorIs(t, err, ErrInvalidMove)
	})

	t.Run("rejects positions off the grid", func(t *testing.T) {
		g := NewGrid(3)

		for _, p := range []Position{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
			_, err := g.Play(p, SideA)
			require.ErrorIs(t, err, ErrInvalidMove, "position %v", p)
		}
	})

	t.Run("rejects Empty as a side", func(t *testing.T) {
		_, err := NewGrid(2).Play(Position{}, Empty)
		require.ErrorIs(t, err, ErrInvalidMove)
	})
}

func TestTerminalAndWinner(t *testing.T) {
	t.Run("unfinished grid has no winner", func(t *testing.T) {
		g := mustParse(t, "XX", "X_")

		require.False(t, g.IsTerminal())
		require.Equal(t, NoWinner, g.Winner())
	})

	t.Run("more cells wins", func(t *testing.T) {
		g := mustParse(t, "XXO", "OXX", "OOX")

		require.True(t, g.IsTerminal())
		require.Equal(t, WinnerA, g.Winner())
		require.Equal(t, 5, g.Utility(SideA))
		require.Equal(t, 4, g.Utility(SideB))
	})

	t.Run("equal counts tie", func(t *testing.T) {
		g := mustParse(t, "XOXO", "OXOX", "XXOO", "OOXX")

		require.Equal(t, Tie, g.Winner())
		require.Equal(t, g.Utility(SideA), g.Utility(SideB))
	})

	t.Run("side B can win", func(t *testing.T) {
		g := mustParse(t, "OO", "OX")

		require.Equal(t, WinnerB, g.Winner())
		require.Equal(t, 3, g.Utility(SideB))
	})
}

func TestEmptyPositions(t *testing.T) {
	g := mustParse(t, "X_", "_O")

	require.Equal(t, []Position{{0, 1}, {1, 0}}, g.EmptyPositions())
	require.Empty(t, mustParse(t, "XO", "OX").EmptyPositions())
}

func TestCell(t *testing.T) {
	require.Equal(t, SideB, SideA.Opponent())
	require.Equal(t, SideA, SideB.Opponent())
	require.Equal(t, Empty, Empty.Opponent())
	require.Equal(t, "X", SideA.String())
	require.Equal(t, "_", Empty.String())
}
