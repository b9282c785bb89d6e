package engine

import (
	"og/experiments/metrics"
	"og/game"
)

const MaxMoves = 10000

type Engine interface {
	// Run plays until the grid is full and reports the outcome with its
	// game and per-move records.
	Run() (winner game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
