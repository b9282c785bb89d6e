package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransformApply(t *testing.T) {
	g := mustParse(t,
		"XO_",
		"___",
		"__O",
	)

	tests := []struct {
		transform Transform
		want      []string
	}{
		{Transpose, []string{"X__", "O__", "__O"}},
		{AntiTranspose, []string{"O__", "__O", "__X"}},
		{Rotate90, []string{"__X", "__O", "O__"}},
		{Rotate180, []string{"O__", "___", "_OX"}},
		{MirrorColumns, []string{"_OX", "___", "O__"}},
		{MirrorRows, []string{"__O", "___", "XO_"}},
	}
	for _, tt := range tests {
		t.Run(tt.transform.String(), func(t *testing.T) {
			got := tt.transform.Apply(g)
			require.Equal(t, mustParse(t, tt.want...).Key(), got.Key())
			require.Equal(t, g.Count(SideA), got.Count(SideA), "transforms only move cells")
			require.Equal(t, g.Count(SideB), got.Count(SideB), "transforms only move cells")
		})
	}
}

func TestTransformClosure(t *testing.T) {
	grids := []Grid{
		mustParse(t, "XO__", "_X_O", "O___", "__XO"),
		mustParse(t, "X_", "OO"),
		mustParse(t, "XOX_O", "_____", "O__X_", "____X", "OX___"),
		NewGrid(4),
	}

	t.Run("inverse undoes every transform", func(t *testing.T) {
		for _, g := range grids {
			for _, tr := range Transforms() {
				back := tr.Inverse().Apply(tr.Apply(g))
				require.Equal(t, g.Key(), back.Key(), "%v on %q", tr, g.Key())
			}
		}
	})

	t.Run("reflections and the half turn are involutions", func(t *testing.T) {
		for _, g := range grids {
			for _, tr := range []Transform{Transpose, AntiTranspose, Rotate180, MirrorColumns, MirrorRows} {
				require.Equal(t, g.Key(), tr.Apply(tr.Apply(g)).Key(), "%v on %q", tr, g.Key())
			}
		}
	})

	t.Run("four quarter turns are the identity", func(t *testing.T) {
		for _, g := range grids {
			turned := g
			for i := 0; i < 4; i++ {
				turned = Rotate90.Apply(turned)
			}
			require.Equal(t, g.Key(), turned.Key())
		}
	})

	t.Run("compositions match their definitions", func(t *testing.T) {
		g := grids[0]
		require.Equal(t, Rotate180.Apply(g).Key(), AntiTranspose.Apply(Transpose.Apply(g)).Key())
		require.Equal(t, MirrorColumns.Apply(g).Key(), Rotate90.Apply(Transpose.Apply(g)).Key())
		require.Equal(t, MirrorRows.Apply(g).Key(), Rotate90.Apply(AntiTranspose.Apply(g)).Key())
	})
}

func TestVariants(t *testing.T) {
	g := mustParse(t, "XO_", "___", "__O")

	variants := Variants(g)
	keys := VariantKeys(g)

	require.Len(t, variants, 6)
	require.Len(t, keys, 6)
	for i, tr := range Transforms() {
		require.Equal(t, tr.Apply(g).Key(), variants[i].Key(), "variants keep the transform order")
		require.Equal(t, variants[i].Key(), keys[i])
	}
}

func TestAreSymmetricMoves(t *testing.T) {
	empty := NewGrid(4)

	t.Run("corners are symmetric", func(t *testing.T) {
		require.True(t, AreSymmetricMoves(empty, SideA, Position{3, 3}, Position{0, 0}))
		require.True(t, AreSymmetricMoves(empty, SideA, Position{0, 3}, Position{0, 0}))
	})

	t.Run("corner and centre are not", func(t *testing.T) {
		require.False(t, AreSymmetricMoves(empty, SideA, Position{1, 1}, Position{0, 0}))
	})

	t.Run("identity is not a variant", func(t *testing.T) {
		require.False(t, AreSymmetricMoves(empty, SideA, Position{0, 1}, Position{0, 1}))
		require.True(t, AreSymmetricMoves(empty, SideA, Position{0, 0}, Position{0, 0}), "a corner is fixed by the transpose")
	})

	t.Run("the quarter turn back is missing from the variants", func(t *testing.T) {
		require.True(t, AreSymmetricMoves(empty, SideA, Position{1, 3}, Position{0, 1}))
		require.False(t, AreSymmetricMoves(empty, SideA, Position{2, 0}, Position{0, 1}))
	})

	t.Run("cascades take part in the comparison", func(t *testing.T) {
		g := mustParse(t,
			"_X__",
			"X___",
			"____",
			"____",
		)
		// Both moves capture the corner and take the bonus on (0,2), but the
		// resulting grids are not images of each other.
		require.False(t, AreSymmetricMoves(g, SideA, Position{3, 3}, Position{3, 0}))
	})

	t.Run("invalid placements are never symmetric", func(t *testing.T) {
		g := mustParse(t, "X_", "__")
		require.False(t, AreSymmetricMoves(g, SideA, Position{0, 0}, Position{1, 1}))
	})
}
