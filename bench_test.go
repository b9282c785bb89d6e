package main

import (
	"og/config"
	"og/player"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfiguredMatchUp(t *testing.T) {
	t.Run("human sides are played by the computer", func(t *testing.T) {
		cfg := config.Default()

		configs, matchUps := configuredMatchUp(cfg)

		require.Len(t, configs, 2)
		require.Len(t, matchUps, 1)
		for _, agent := range configs {
			require.Equal(t, string(player.ComputerKind), agent.Kind)
			require.Equal(t, cfg.Strategy, agent.Strategy)
			require.Equal(t, cfg.Dim, agent.Dim)
		}
	})

	t.Run("random players keep no strategy", func(t *testing.T) {
		cfg := config.Default()
		cfg.Players.O = string(player.RandomKind)

		configs, _ := configuredMatchUp(cfg)

		require.Equal(t, string(player.RandomKind), configs[1].Kind)
		require.Empty(t, configs[1].Strategy)
	})
}

func TestRunBench(t *testing.T) {
	for _, compare := range []bool{false, true} {
		cfg := config.Default()
		// Default players on a smaller grid keep the run short.
		cfg.Dim = 3
		cfg.Bench.Games = 1
		cfg.Bench.OutDir = t.TempDir()

		require.NoError(t, runBench(cfg, compare, nil))

		runs, err := filepath.Glob(filepath.Join(cfg.Bench.OutDir, "*", "*", "game_records.csv"))
		require.NoError(t, err)
		require.Len(t, runs, 1)
		info, err := os.Stat(runs[0])
		require.NoError(t, err)
		require.Positive(t, info.Size())
	}
}
