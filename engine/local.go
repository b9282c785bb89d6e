package engine

import (
	"fmt"
	"og/experiments/metrics"
	"og/game"
	"og/player"
	"time"

	"github.com/rs/zerolog/log"
)

// Local runs a game between two in-process players. X always moves first.
type Local struct {
	grid    game.Grid
	players [2]player.Player
}

// searchReporter is implemented by players that search for their moves.
type searchReporter interface {
	LastMetric() metrics.SearchMetric
}

func LocalEngine(start game.Grid, x, o player.Player) *Local {
	if x.Side() != game.SideA || o.Side() != game.SideB {
		panic(fmt.Sprintf("players must play %v and %v, got %v and %v", game.SideA, game.SideB, x.Side(), o.Side()))
	}
	return &Local{
		grid:    start,
		players: [2]player.Player{x, o},
	}
}

// Grid returns the current grid; after Run it is the final grid.
func (e *Local) Grid() game.Grid {
	return e.grid
}

// Run executes the turn loop until the grid is full.
func (e *Local) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingSide: game.SideA.String(),
		StartTime:    time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("starting %dx%d game, %v moves first", e.grid.Dim(), e.grid.Dim(), game.SideA)

	step := 1
	for ; !e.grid.IsTerminal() && step <= MaxMoves; step++ {
		p := e.players[(step-1)%2]
		side := p.Side()

		pos, err := p.Move(e.grid)
		if err != nil {
			return game.NoWinner, gameMetric, moveMetrics, fmt.Errorf("%v move %d: %w", side, step, err)
		}
		next, err := e.grid.Play(pos, side)
		if err != nil {
			return game.NoWinner, gameMetric, moveMetrics, fmt.Errorf("%v move %d: %w", side, step, err)
		}

		mm := metrics.MoveMetric{
			Step:     step,
			Side:     side.String(),
			Position: pos.String(),
		}
		if r, ok := p.(searchReporter); ok {
			mm.SearchMetric = r.LastMetric()
		}
		moveMetrics = append(moveMetrics, mm)

		log.Debug().
			Int("step", step).
			Str("side", side.String()).
			Stringer("move", pos).
			Int("cells_x", next.Count(game.SideA)).
			Int("cells_o", next.Count(game.SideB)).
			Msg("played")

		e.grid = next
	}

	winner := e.grid.Winner()
	gameMetric.Winner = winner.String()
	gameMetric.CellsX = e.grid.Count(game.SideA)
	gameMetric.CellsO = e.grid.Count(game.SideB)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step - 1

	log.Info().Msgf("game over after %d moves: X=%d O=%d winner=%v", gameMetric.TotalMoves, gameMetric.CellsX, gameMetric.CellsO, winner)

	return winner, gameMetric, moveMetrics, nil
}
