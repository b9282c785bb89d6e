package searcher

import (
	"fmt"
	"og/experiments/metrics"
	"og/game"
	"og/meta"

	"github.com/rs/zerolog/log"
)

type Option func(s *Searcher)

// Searcher picks moves by exhaustive minimax over the remaining game tree.
// Its transposition table lives as long as the searcher, so one searcher
// should serve one side of one game.
type Searcher struct {
	dim      int
	strategy Strategy
	table    *Table
	metrics  metrics.Collector
}

func WithDim(dim int) Option {
	return func(s *Searcher) {
		if dim > 0 {
			s.dim = dim
		}
	}
}

func WithStrategy(strategy Strategy) Option {
	return func(s *Searcher) {
		s.strategy = strategy
	}
}

func WithTable(table *Table) Option {
	return func(s *Searcher) {
		if table != nil {
			s.table = table
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *Searcher) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		dim:      meta.DIM,
		strategy: AlphaBeta,
		table:    NewTable(),
		metrics:  metrics.NewCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Strategy() Strategy {
	return s.strategy
}

func (s *Searcher) Table() *Table {
	return s.table
}

// DecideMove returns the best placement for side on g.
func (s *Searcher) DecideMove(g game.Grid, side, opponent game.Cell) game.Position {
	best, _ := s.Decide(g, side, opponent)
	return best.Position
}

// Decide evaluates every root action and returns the first one with the
// highest value, together with the statistics of the decision.
func (s *Searcher) Decide(g game.Grid, side, opponent game.Cell) (Action, metrics.SearchMetric) {
	s.checkContract(g, side, opponent)

	bound := g.Dim() * g.Dim()
	n := &search{
		table:    s.table,
		metrics:  s.metrics,
		side:     side,
		opponent: opponent,
		bound:    bound,
		prune:    s.strategy == AlphaBeta,
	}

	s.metrics.Start(s.strategy.String())
	actions := LegalActions(g, side)
	alpha, beta := -bound, bound
	evaluated := actions
	for i := range actions {
		actions[i].Value = n.evaluate(actions[i].Result, side, func(child game.Grid) int {
			return n.minValue(child, alpha)
		})
		if !n.prune {
			continue
		}
		if actions[i].Value >= beta {
			evaluated = actions[:i+1]
			break
		}
		alpha = max(alpha, actions[i].Value)
	}
	best := bestAction(evaluated)
	s.metrics.SetTableSize(s.table.Len())
	metric := s.metrics.Complete()

	log.Debug().
		Str("side", side.String()).
		Str("strategy", s.strategy.String()).
		Stringer("move", best.Position).
		Int("value", best.Value).
		Int("states", metric.States).
		Int("unique_states", metric.UniqueStates).
		Msg("decided move")

	return best, metric
}

func (s *Searcher) checkContract(g game.Grid, side, opponent game.Cell) {
	if g.Dim() != s.dim {
		panic(fmt.Sprintf("%v: got a %dx%d grid, searcher expects %dx%d", game.ErrMalformedGrid, g.Dim(), g.Dim(), s.dim, s.dim))
	}
	if side == game.Empty || opponent == game.Empty || side == opponent {
		panic(fmt.Sprintf("side %v and opponent %v must be two distinct sides", side, opponent))
	}
	if g.IsTerminal() {
		panic("cannot decide a move on a full grid")
	}
}

// search holds the state of one decision. Values are always counted from
// side's point of view: side maximizes, opponent minimizes.
type search struct {
	table    *Table
	metrics  metrics.Collector
	side     game.Cell
	opponent game.Cell
	bound    int // no value can exceed the cell count
	prune    bool
}

// evaluate returns the value of child, produced by a move of mover, from the
// table when possible. A hit settles this child only; its siblings are still
// evaluated. Searched children are stored together with their variants.
func (n *search) evaluate(child game.Grid, mover game.Cell, value func(game.Grid) int) int {
	n.metrics.AddState()
	if v, ok := n.table.Lookup(child, mover); ok {
		return v
	}
	n.metrics.AddUniqueState()
	v := value(child)
	n.table.Store(child, mover, v)
	return v
}

// minValue is the value of g with the opponent to move. With pruning it
// returns as soon as the running minimum drops to alpha. The window is not
// passed on: every child is searched with the full [-bound, bound] window.
func (n *search) minValue(g game.Grid, alpha int) int {
	if g.IsTerminal() {
		return g.Utility(n.side)
	}
	val := n.bound
	for _, a := range LegalActions(g, n.opponent) {
		val = min(val, n.evaluate(a.Result, n.opponent, n.fullMax))
		if n.prune && val <= alpha {
			return val
		}
	}
	return val
}

// maxValue is the value of g with side to move. With pruning it returns as
// soon as the running maximum reaches beta.
func (n *search) maxValue(g game.Grid, beta int) int {
	if g.IsTerminal() {
		return g.Utility(n.side)
	}
	val := -n.bound
	for _, a := range LegalActions(g, n.side) {
		val = max(val, n.evaluate(a.Result, n.side, n.fullMin))
		if n.prune && val >= beta {
			return val
		}
	}
	return val
}

func (n *search) fullMin(g game.Grid) int {
	return n.minValue(g, -n.bound)
}

func (n *search) fullMax(g game.Grid) int {
	return n.maxValue(g, n.bound)
}
