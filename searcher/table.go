package searcher

import (
	"fmt"
	"og/game"
)

// Table is a transposition table from grid keys to search values, kept
// apart for each side that produced the grid: the same cells are worth
// different amounts depending on who moves next. Storing a grid also stores
// its six symmetry variants; lookups match the exact key only. Entries are
// never evicted.
type Table struct {
	entries [2]map[string]int // indexed by the side that just moved
}

func NewTable() *Table {
	return &Table{entries: [2]map[string]int{make(map[string]int), make(map[string]int)}}
}

func (t *Table) partition(mover game.Cell) map[string]int {
	switch mover {
	case game.SideA:
		return t.entries[0]
	case game.SideB:
		return t.entries[1]
	default:
		panic(fmt.Sprintf("transposition entries need a mover, got %v", mover))
	}
}

// Lookup returns the value stored for g reached by a move of mover.
func (t *Table) Lookup(g game.Grid, mover game.Cell) (int, bool) {
	v, ok := t.partition(mover)[g.Key()]
	return v, ok
}

// Store records value for g and every variant of g, all reached by a move
// of mover. Later stores win.
func (t *Table) Store(g game.Grid, mover game.Cell, value int) {
	entries := t.partition(mover)
	entries[g.Key()] = value
	for _, key := range game.VariantKeys(g) {
		entries[key] = value
	}
}

// Len returns the number of keys held by both partitions, variants included.
func (t *Table) Len() int {
	return len(t.entries[0]) + len(t.entries[1])
}
