package game

import "fmt"

// Transform is a rigid motion of the square grid. It moves cells around
// without touching their values.
type Transform int

const (
	Transpose     Transform = iota // reflect on the primary diagonal
	AntiTranspose                  // reflect on the anti diagonal
	Rotate90                       // quarter turn clockwise
	Rotate180                      // anti diagonal after primary diagonal
	MirrorColumns                  // quarter turn after primary diagonal
	MirrorRows                     // quarter turn after anti diagonal

	// rotate270 only exists as the inverse of Rotate90 and is not a variant.
	rotate270
)

var transforms = []Transform{Transpose, AntiTranspose, Rotate90, Rotate180, MirrorColumns, MirrorRows}

// Transforms returns the six symmetry transforms in their fixed order.
func Transforms() []Transform {
	out := make([]Transform, len(transforms))
	copy(out, transforms)
	return out
}

func (t Transform) String() string {
	switch t {
	case Transpose:
		return "transpose"
	case AntiTranspose:
		return "anti-transpose"
	case Rotate90:
		return "rotate-90"
	case Rotate180:
		return "rotate-180"
	case MirrorColumns:
		return "mirror-columns"
	case MirrorRows:
		return "mirror-rows"
	case rotate270:
		return "rotate-270"
	default:
		return fmt.Sprintf("transform(%d)", int(t))
	}
}

// source returns where the cell that lands on p comes from.
func (t Transform) source(dim int, p Position) Position {
	last := dim - 1
	switch t {
	case Transpose:
		return Position{Row: p.Col, Col: p.Row}
	case AntiTranspose:
		return Position{Row: last - p.Col, Col: last - p.Row}
	case Rotate90:
		return Position{Row: last - p.Col, Col: p.Row}
	case Rotate180:
		return Position{Row: last - p.Row, Col: last - p.Col}
	case MirrorColumns:
		return Position{Row: p.Row, Col: last - p.Col}
	case MirrorRows:
		return Position{Row: last - p.Row, Col: p.Col}
	case rotate270:
		return Position{Row: p.Col, Col: last - p.Row}
	default:
		panic(fmt.Sprintf("unknown transform %d", int(t)))
	}
}

// Inverse returns the transform that undoes t.
func (t Transform) Inverse() Transform {
	switch t {
	case Rotate90:
		return rotate270
	case rotate270:
		return Rotate90
	default:
		return t
	}
}

// Apply returns the transformed copy of g.
func (t Transform) Apply(g Grid) Grid {
	out := NewGrid(g.dim)
	for r := 0; r < g.dim; r++ {
		for c := 0; c < g.dim; c++ {
			p := Position{Row: r, Col: c}
			out.cells[out.index(p)] = g.At(t.source(g.dim, p))
		}
	}
	return out
}

// Variants returns the six symmetric images of g, identity excluded.
func Variants(g Grid) []Grid {
	variants := make([]Grid, len(transforms))
	for i, t := range transforms {
		variants[i] = t.Apply(g)
	}
	return variants
}

// VariantKeys returns the keys of Variants(g) in the same order.
func VariantKeys(g Grid) []string {
	keys := make([]string, len(transforms))
	for i, t := range transforms {
		keys[i] = t.Apply(g).Key()
	}
	return keys
}

// IsVariantOf reports whether a equals one of the six variants of b.
func IsVariantOf(a, b Grid) bool {
	if a.dim != b.dim {
		return false
	}
	key := a.Key()
	for _, t := range transforms {
		if t.Apply(b).Key() == key {
			return true
		}
	}
	return false
}

// AreSymmetricMoves reports whether playing p1 yields a variant of the grid
// produced by playing p2, both by side on g. Cascades are part of the
// compared grids.
func AreSymmetricMoves(g Grid, side Cell, p1, p2 Position) bool {
	first, err := g.Play(p1, side)
	if err != nil {
		return false
	}
	second, err := g.Play(p2, side)
	if err != nil {
		return false
	}
	return IsVariantOf(first, second)
}
