package main

import (
	"fmt"
	"og/config"
	"og/experiments"
	"og/experiments/metrics"
	"og/player"

	"github.com/spf13/cobra"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Play a series of games and record them as CSV",
	Long:  `Plays the configured match up, or with --compare every strategy match up, and writes agent configs, game records and move records.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		exporter, err := serveMetrics(cfg.MetricsAddr)
		if err != nil {
			return err
		}
		compare, _ := cmd.Flags().GetBool("compare")
		return runBench(cfg, compare, exporter)
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().Int("games", 0, "Games per match up")
	benchCmd.Flags().String("out", "", "Directory for experiment records")
	benchCmd.Flags().String("x", "", "Player for X (computer, random; human plays as computer)")
	benchCmd.Flags().String("o", "", "Player for O (computer, random; human plays as computer)")
	benchCmd.Flags().Uint64("seed", 0, "Seed for random players")
	benchCmd.Flags().Bool("compare", false, "Compare minimax, alpha-beta and random play")
}

func runBench(cfg config.Config, compare bool, exporter *metrics.Exporter) error {
	name := "matchup"
	configs, matchUps := configuredMatchUp(cfg)
	if compare {
		name = "strategies"
		configs, matchUps = experiments.StrategyMatchUps(cfg.Dim)
	}

	dir, err := experiments.Run(name, configs, matchUps, experiments.Options{
		Games:    cfg.Bench.Games,
		OutDir:   cfg.Bench.OutDir,
		Seed:     cfg.Seed,
		Exporter: exporter,
	})
	if err != nil {
		return err
	}
	fmt.Printf("records written to %s\n", dir)
	return nil
}

// configuredMatchUp pairs the configured players. Benchmarks cannot wait for
// input, so a human side is played by the computer.
func configuredMatchUp(cfg config.Config) ([]metrics.AgentConfig, []experiments.MatchUp) {
	newAgent := func(id int, kind string) metrics.AgentConfig {
		if player.Kind(kind) == player.HumanKind {
			kind = string(player.ComputerKind)
		}
		agent := metrics.AgentConfig{ID: id, Kind: kind, Dim: cfg.Dim}
		if player.Kind(kind) == player.ComputerKind {
			agent.Strategy = cfg.Strategy
		}
		return agent
	}
	x, o := newAgent(1, cfg.Players.X), newAgent(2, cfg.Players.O)
	return []metrics.AgentConfig{x, o}, []experiments.MatchUp{{X: x, O: o}}
}
