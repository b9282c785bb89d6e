package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"og/game"
)

var ErrNoInput = errors.New("no more input")

// Human reads "row col" lines and asks again until the cell is on the grid
// and empty.
type Human struct {
	side game.Cell
	in   *bufio.Scanner
	out  io.Writer
}

func NewHuman(side game.Cell, in io.Reader, out io.Writer) *Human {
	return &Human{
		side: side,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

func (h *Human) Side() game.Cell {
	return h.side
}

func (h *Human) Move(g game.Grid) (game.Position, error) {
	fmt.Fprintf(h.out, "%s\n", g)
	for {
		fmt.Fprintf(h.out, "%s to move (row col): ", h.side)
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return game.Position{}, fmt.Errorf("reading move: %w", err)
			}
			return game.Position{}, ErrNoInput
		}

		var p game.Position
		if _, err := fmt.Sscan(h.in.Text(), &p.Row, &p.Col); err != nil {
			fmt.Fprintln(h.out, "enter two numbers: row and column")
			continue
		}
		if !g.InBounds(p) {
			fmt.Fprintf(h.out, "%v is off the %dx%d grid\n", p, g.Dim(), g.Dim())
			continue
		}
		if g.At(p) != game.Empty {
			fmt.Fprintf(h.out, "%v is taken\n", p)
			continue
		}
		return p, nil
	}
}
