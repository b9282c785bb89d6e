package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidMove is returned when a move targets a cell that is off the
	// grid or already occupied.
	ErrInvalidMove = errors.New("invalid move")
	// ErrMalformedGrid is returned when rows do not describe a square grid.
	ErrMalformedGrid = errors.New("malformed grid")
)

var directions = [4]Position{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is an immutable N by N board. Transitions return a new Grid and
// never modify the receiver.
type Grid struct {
	dim   int
	cells []Cell
}

// NewGrid returns an empty grid of the given dimension.
func NewGrid(dim int) Grid {
	if dim < 1 {
		panic(fmt.Sprintf("grid dimension must be positive, got %d", dim))
	}
	return Grid{dim: dim, cells: make([]Cell, dim*dim)}
}

// ParseGrid builds a grid from rows of markers, e.g. ParseGrid("X__", "_O_", "___").
func ParseGrid(rows ...string) (Grid, error) {
	dim := len(rows)
	if dim == 0 {
		return Grid{}, fmt.Errorf("%w: no rows", ErrMalformedGrid)
	}
	g := NewGrid(dim)
	for r, row := range rows {
		if len(row) != dim {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, r, len(row), dim)
		}
		for c := 0; c < dim; c++ {
			cell, err := ParseCell(row[c])
			if err != nil {
				return Grid{}, fmt.Errorf("%w: row %d: %v", ErrMalformedGrid, r, err)
			}
			g.cells[r*dim+c] = cell
		}
	}
	return g, nil
}

// FromCells copies a square matrix of cells into a grid.
func FromCells(rows [][]Cell) (Grid, error) {
	dim := len(rows)
	if dim == 0 {
		return Grid{}, fmt.Errorf("%w: no rows", ErrMalformedGrid)
	}
	g := NewGrid(dim)
	for r, row := range rows {
		if len(row) != dim {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, r, len(row), dim)
		}
		copy(g.cells[r*dim:], row)
	}
	return g, nil
}

func (g Grid) Dim() int {
	return g.dim
}

func (g Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Col >= 0 && p.Row < g.dim && p.Col < g.dim
}

// At returns the cell at p. p must be in bounds.
func (g Grid) At(p Position) Cell {
	return g.cells[g.index(p)]
}

func (g Grid) index(p Position) int {
	return p.Row*g.dim + p.Col
}

func (g Grid) clone() Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return Grid{dim: g.dim, cells: cells}
}

// Play places side at p and resolves the capture cascade:
//
//  1. every Empty cell enclosed by side (edges count as enclosing) is filled at once;
//  2. if anything was captured, side gets one bonus placement on the first
//     Empty cell in row-major order;
//  3. cells enclosed after the bonus are filled once more, and the ply ends.
func (g Grid) Play(p Position, side Cell) (Grid, error) {
	if side != SideA && side != SideB {
		return Grid{}, fmt.Errorf("%w: %q is not a side", ErrInvalidMove, side.Marker())
	}
	if !g.InBounds(p) {
		return Grid{}, fmt.Errorf("%w: %v is off the %dx%d grid", ErrInvalidMove, p, g.dim, g.dim)
	}
	if g.At(p) != Empty {
		return Grid{}, fmt.Errorf("%w: %v is already held by %v", ErrInvalidMove, p, g.At(p))
	}

	next := g.clone()
	next.cells[next.index(p)] = side

	captured := next.capturable(side)
	if len(captured) == 0 {
		return next, nil
	}
	next.fill(captured, side)

	if i := next.firstEmpty(); i >= 0 {
		next.cells[i] = side
	}
	next.fill(next.capturable(side), side)
	return next, nil
}

// capturable lists the indexes of Empty cells whose four neighbours are all
// either off the grid or held by side.
func (g Grid) capturable(side Cell) []int {
	var indexes []int
	for i, cell := range g.cells {
		if cell != Empty {
			continue
		}
		if g.enclosedBy(Position{Row: i / g.dim, Col: i % g.dim}, side) {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

func (g Grid) enclosedBy(p Position, side Cell) bool {
	for _, d := range directions {
		n := Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if g.InBounds(n) && g.At(n) != side {
			return false
		}
	}
	return true
}

// fill is only called on a grid still under construction inside Play.
func (g Grid) fill(indexes []int, side Cell) {
	for _, i := range indexes {
		g.cells[i] = side
	}
}

func (g Grid) firstEmpty() int {
	for i, cell := range g.cells {
		if cell == Empty {
			return i
		}
	}
	return -1
}

// EmptyPositions lists the Empty cells in row-major order.
func (g Grid) EmptyPositions() []Position {
	var positions []Position
	for i, cell := range g.cells {
		if cell == Empty {
			positions = append(positions, Position{Row: i / g.dim, Col: i % g.dim})
		}
	}
	return positions
}

// IsTerminal reports whether the grid is full.
func (g Grid) IsTerminal() bool {
	return g.firstEmpty() < 0
}

func (g Grid) Count(side Cell) int {
	count := 0
	for _, cell := range g.cells {
		if cell == side {
			count++
		}
	}
	return count
}

// Utility is the number of cells held by side. It is the leaf value of the search.
func (g Grid) Utility(side Cell) int {
	return g.Count(side)
}

// Winner compares cell counts of a full grid. Unfinished grids have no winner.
func (g Grid) Winner() Outcome {
	if !g.IsTerminal() {
		return NoWinner
	}
	a, b := g.Count(SideA), g.Count(SideB)
	switch {
	case a > b:
		return WinnerA
	case b > a:
		return WinnerB
	default:
		return Tie
	}
}

// Key serializes the grid row by row. Two grids are equal iff their keys are.
func (g Grid) Key() string {
	key := make([]byte, len(g.cells))
	for i, cell := range g.cells {
		key[i] = cell.Marker()
	}
	return string(key)
}

func (g Grid) String() string {
	key := g.Key()
	rows := make([]string, g.dim)
	for r := range rows {
		rows[r] = key[r*g.dim : (r+1)*g.dim]
	}
	return strings.Join(rows, "\n")
}
