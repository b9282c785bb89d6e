package searcher

import (
	"fmt"
	"strings"
)

// Strategy selects how the game tree is searched. Both strategies return
// moves of equal value; alpha-beta visits fewer states.
type Strategy int

const (
	Minimax Strategy = iota
	AlphaBeta
)

func (s Strategy) String() string {
	switch s {
	case Minimax:
		return "minimax"
	case AlphaBeta:
		return "alphabeta"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy accepts the names produced by Strategy.String, in any case.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "minimax":
		return Minimax, nil
	case "alphabeta", "alpha-beta":
		return AlphaBeta, nil
	default:
		return 0, fmt.Errorf("unknown search strategy %q", name)
	}
}
