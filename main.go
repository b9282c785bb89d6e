package main

import (
	"fmt"
	"net/http"
	"og/config"
	"og/experiments/metrics"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "og",
	Short:         "Og is a territory capture game with a perfect-play computer opponent",
	Long:          `Og is played on an N x N grid. Cells enclosed by one side are captured, captures grant a bonus placement, and the side holding more cells on the full grid wins.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "YAML config file")
	rootCmd.PersistentFlags().Int("dim", 0, "Grid dimension")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("strategy", "", "Search strategy (minimax, alphabeta)")
	rootCmd.PersistentFlags().String("metrics-addr", "", "Serve prometheus metrics on this address, e.g. :9090")
}

// loadConfig reads --config if given and applies the flags that were set on
// the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("dim") {
		cfg.Dim, _ = flags.GetInt("dim")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("strategy") {
		cfg.Strategy, _ = flags.GetString("strategy")
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr, _ = flags.GetString("metrics-addr")
	}
	if flags.Lookup("seed") != nil && flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Lookup("x") != nil && flags.Changed("x") {
		cfg.Players.X, _ = flags.GetString("x")
	}
	if flags.Lookup("o") != nil && flags.Changed("o") {
		cfg.Players.O, _ = flags.GetString("o")
	}
	if flags.Lookup("games") != nil && flags.Changed("games") {
		cfg.Bench.Games, _ = flags.GetInt("games")
	}
	if flags.Lookup("out") != nil && flags.Changed("out") {
		cfg.Bench.OutDir, _ = flags.GetString("out")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return cfg, nil
}

// serveMetrics exposes search statistics on addr. It returns nil when addr
// is empty.
func serveMetrics(addr string) (*metrics.Exporter, error) {
	if addr == "" {
		return nil, nil
	}
	exporter, err := metrics.NewExporter(prometheus.DefaultRegisterer)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		log.Info().Msgf("serving metrics on %s/metrics", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Error().Err(err).Msg("metrics server stopped")
		}
	}()
	return exporter, nil
}
