package experiments

import (
	"fmt"
	"og/engine"
	"og/experiments/metrics"
	"og/game"
	"og/player"
	"og/searcher"

	"github.com/rs/zerolog/log"
)

// Options configures a benchmark run.
type Options struct {
	Games    int
	OutDir   string
	Seed     uint64            // seeds random players, advanced once per game
	Exporter *metrics.Exporter // optional
}

// MatchUp pairs the agent playing X with the agent playing O.
type MatchUp struct {
	X metrics.AgentConfig
	O metrics.AgentConfig
}

// StrategyMatchUps pits both search strategies against each other from
// either side, and each of them against a random baseline.
func StrategyMatchUps(dim int) ([]metrics.AgentConfig, []MatchUp) {
	minimax := metrics.AgentConfig{ID: 1, Kind: string(player.ComputerKind), Strategy: searcher.Minimax.String(), Dim: dim}
	alphaBeta := metrics.AgentConfig{ID: 2, Kind: string(player.ComputerKind), Strategy: searcher.AlphaBeta.String(), Dim: dim}
	random := metrics.AgentConfig{ID: 3, Kind: string(player.RandomKind), Dim: dim}

	return []metrics.AgentConfig{minimax, alphaBeta, random}, []MatchUp{
		{X: minimax, O: alphaBeta},
		{X: alphaBeta, O: minimax},
		{X: alphaBeta, O: random},
		{X: random, O: alphaBeta},
	}
}

// Run plays opts.Games games per match up and writes the agent configs, game
// records and move records under opts.OutDir/name. It returns the directory
// the records were written to.
func Run(name string, configs []metrics.AgentConfig, matchUps []MatchUp, opts Options) (string, error) {
	if opts.Games <= 0 {
		return "", fmt.Errorf("%s experiment needs a positive number of games, got %d", name, opts.Games)
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between X=%+v and O=%+v...", mi+1, len(matchUps), matchUp.X, matchUp.O)

		for i := 0; i < opts.Games; i++ {
			seed := opts.Seed + uint64(count)
			winner, gameMetric, moveMetrics, err := runGame(matchUp, seed, opts.Exporter)
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     matchUp.X.ID,
				Agent2:     matchUp.O.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(opts.OutDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", err
	}
	log.Info().Msgf("stored %d game records in %s", len(gameRecords), writer.Dir())

	return writer.Dir(), nil
}

func runGame(matchUp MatchUp, seed uint64, exporter *metrics.Exporter) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	if matchUp.X.Dim != matchUp.O.Dim {
		return game.NoWinner, metrics.GameMetric{}, nil, fmt.Errorf("agents disagree on the grid size: %d and %d", matchUp.X.Dim, matchUp.O.Dim)
	}
	x, err := NewPlayer(matchUp.X, game.SideA, seed, exporter)
	if err != nil {
		return game.NoWinner, metrics.GameMetric{}, nil, err
	}
	o, err := NewPlayer(matchUp.O, game.SideB, seed+1, exporter)
	if err != nil {
		return game.NoWinner, metrics.GameMetric{}, nil, err
	}

	e := engine.LocalEngine(game.NewGrid(matchUp.X.Dim), x, o)
	return e.Run()
}

// NewPlayer builds a non-interactive player from its config. Computers get a
// fresh searcher, and with it a fresh transposition table.
func NewPlayer(config metrics.AgentConfig, side game.Cell, seed uint64, exporter *metrics.Exporter) (player.Player, error) {
	kind, err := player.ParseKind(config.Kind)
	if err != nil {
		return nil, err
	}

	switch kind {
	case player.ComputerKind:
		strategy, err := searcher.ParseStrategy(config.Strategy)
		if err != nil {
			return nil, err
		}
		collector := metrics.NewCollector()
		if exporter != nil {
			collector = exporter.Collector(side.String())
		}
		s := searcher.NewSearcher(
			searcher.WithDim(config.Dim),
			searcher.WithStrategy(strategy),
			searcher.WithMetrics(collector),
		)
		return player.NewComputer(side, s), nil
	case player.RandomKind:
		return player.NewRandom(side, seed), nil
	default:
		return nil, fmt.Errorf("%s players cannot take part in experiments", kind)
	}
}
