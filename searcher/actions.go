package searcher

import (
	"fmt"
	"og/game"

	"golang.org/x/exp/slices"
)

// Action is a candidate placement, the grid it produces and, once searched,
// its value for the deciding side.
type Action struct {
	Position game.Position
	Value    int
	Result   game.Grid
}

// LegalActions scans g in row-major order and keeps one placement per
// symmetry class: a placement is dropped when its result is a variant of the
// result of a placement kept earlier.
func LegalActions(g game.Grid, side game.Cell) []Action {
	var actions []Action
	var accepted [][]string // variant keys of each kept result
	for _, p := range g.EmptyPositions() {
		result, err := g.Play(p, side)
		if err != nil {
			panic(fmt.Sprintf("playing empty cell %v: %v", p, err))
		}
		key := result.Key()
		if slices.ContainsFunc(accepted, func(variants []string) bool {
			return slices.Contains(variants, key)
		}) {
			continue
		}
		actions = append(actions, Action{Position: p, Result: result})
		accepted = append(accepted, game.VariantKeys(result))
	}
	return actions
}

// bestAction returns the first action holding the highest value.
func bestAction(actions []Action) Action {
	if len(actions) == 0 {
		panic("no actions to choose from")
	}
	best := actions[0]
	for _, a := range actions[1:] {
		if a.Value > best.Value {
			best = a
		}
	}
	return best
}
