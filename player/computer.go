package player

import (
	"og/experiments/metrics"
	"og/game"
	"og/searcher"
)

// Computer plays the moves chosen by a searcher. The searcher's table is
// reused for every move of the game.
type Computer struct {
	side     game.Cell
	searcher *searcher.Searcher
	last     metrics.SearchMetric
}

func NewComputer(side game.Cell, s *searcher.Searcher) *Computer {
	if side == game.Empty {
		panic("computer player needs a side")
	}
	return &Computer{side: side, searcher: s}
}

func (c *Computer) Side() game.Cell {
	return c.side
}

func (c *Computer) Move(g game.Grid) (game.Position, error) {
	best, metric := c.searcher.Decide(g, c.side, c.side.Opponent())
	c.last = metric
	return best.Position, nil
}

// LastMetric returns the statistics of the most recent decision.
func (c *Computer) LastMetric() metrics.SearchMetric {
	return c.last
}
