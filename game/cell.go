package game

import "fmt"

// Cell is the content of one square of the grid.
type Cell uint8

const (
	Empty Cell = iota
	SideA
	SideB
)

// Markers used when serializing a grid.
const (
	EmptyMarker = '_'
	SideAMarker = 'X'
	SideBMarker = 'O'
)

func (c Cell) Marker() byte {
	switch c {
	case SideA:
		return SideAMarker
	case SideB:
		return SideBMarker
	default:
		return EmptyMarker
	}
}

func (c Cell) String() string {
	return string(c.Marker())
}

// Opponent returns the other side. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case SideA:
		return SideB
	case SideB:
		return SideA
	default:
		return Empty
	}
}

// ParseCell maps a marker byte back to a cell.
func ParseCell(marker byte) (Cell, error) {
	switch marker {
	case EmptyMarker:
		return Empty, nil
	case SideAMarker:
		return SideA, nil
	case SideBMarker:
		return SideB, nil
	default:
		return Empty, fmt.Errorf("unknown cell marker %q", marker)
	}
}

// Position addresses a cell by row and column.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Outcome is the result of a finished (or unfinished) game.
type Outcome int

const (
	NoWinner Outcome = iota
	WinnerA
	WinnerB
	Tie
)

func (o Outcome) String() string {
	switch o {
	case WinnerA:
		return "X"
	case WinnerB:
		return "O"
	case Tie:
		return "tie"
	default:
		return "none"
	}
}
