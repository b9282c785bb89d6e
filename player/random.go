package player

import (
	"og/game"

	"golang.org/x/exp/rand"
)

// Random picks uniformly among the empty cells.
type Random struct {
	side game.Cell
	rng  *rand.Rand
}

func NewRandom(side game.Cell, seed uint64) *Random {
	return &Random{
		side: side,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (r *Random) Side() game.Cell {
	return r.side
}

func (r *Random) Move(g game.Grid) (game.Position, error) {
	empty := g.EmptyPositions()
	if len(empty) == 0 {
		return game.Position{}, game.ErrInvalidMove
	}
	return empty[r.rng.Intn(len(empty))], nil
}
