package main

import (
	"fmt"
	"og/config"
	"og/engine"
	"og/experiments"
	"og/experiments/metrics"
	"og/game"
	"og/player"
	"os"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one game",
	Long:  `Plays one game on an empty grid. Each side is a human reading moves from stdin, the computer, or a random player.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		exporter, err := serveMetrics(cfg.MetricsAddr)
		if err != nil {
			return err
		}
		return runPlay(cfg, exporter)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().String("x", "", "Player for X (human, computer, random)")
	playCmd.Flags().String("o", "", "Player for O (human, computer, random)")
	playCmd.Flags().Uint64("seed", 0, "Seed for random players")
}

func runPlay(cfg config.Config, exporter *metrics.Exporter) error {
	x, err := newPlayer(cfg, cfg.Players.X, game.SideA, exporter)
	if err != nil {
		return err
	}
	o, err := newPlayer(cfg, cfg.Players.O, game.SideB, exporter)
	if err != nil {
		return err
	}

	e := engine.LocalEngine(game.NewGrid(cfg.Dim), x, o)
	winner, gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}

	fmt.Printf("%s\n\nX: %d  O: %d\n", e.Grid(), gameMetric.CellsX, gameMetric.CellsO)
	if winner == game.Tie {
		fmt.Println("Tie!")
	} else {
		fmt.Printf("%v wins!\n", winner)
	}
	return nil
}

func newPlayer(cfg config.Config, kind string, side game.Cell, exporter *metrics.Exporter) (player.Player, error) {
	if player.Kind(kind) == player.HumanKind {
		return player.NewHuman(side, os.Stdin, os.Stdout), nil
	}
	agent := metrics.AgentConfig{Kind: kind, Strategy: cfg.Strategy, Dim: cfg.Dim}
	return experiments.NewPlayer(agent, side, cfg.Seed+uint64(side), exporter)
}
