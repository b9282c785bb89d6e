package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"og/meta"
	"og/player"
	"og/searcher"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Dim         int     `yaml:"dim"`
	LogLevel    string  `yaml:"log_level"`
	Strategy    string  `yaml:"strategy"`
	Players     Players `yaml:"players"`
	Seed        uint64  `yaml:"seed"`
	MetricsAddr string  `yaml:"metrics_addr"`
	Bench       Bench   `yaml:"bench"`
}

// Players holds the kind of player on each side.
type Players struct {
	X string `yaml:"x"`
	O string `yaml:"o"`
}

type Bench struct {
	Games  int    `yaml:"games"`
	OutDir string `yaml:"out_dir"`
}

// Default is a human playing X against the computer.
func Default() Config {
	return Config{
		Dim:      meta.DIM,
		LogLevel: zerolog.InfoLevel.String(),
		Strategy: meta.STRATEGY,
		Players: Players{
			X: string(player.HumanKind),
			O: string(player.ComputerKind),
		},
		Seed: 1,
		Bench: Bench{
			Games:  meta.GAMES,
			OutDir: meta.OUT_DIR,
		},
	}
}

// Load reads a YAML file on top of Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.Dim < meta.MIN_DIM || c.Dim > meta.MAX_DIM {
		errs = append(errs, fmt.Errorf("dim must be between %d and %d, got %d", meta.MIN_DIM, meta.MAX_DIM, c.Dim))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if _, err := searcher.ParseStrategy(c.Strategy); err != nil {
		errs = append(errs, err)
	}
	if _, err := player.ParseKind(c.Players.X); err != nil {
		errs = append(errs, fmt.Errorf("players.x: %w", err))
	}
	if _, err := player.ParseKind(c.Players.O); err != nil {
		errs = append(errs, fmt.Errorf("players.o: %w", err))
	}
	if c.Bench.Games <= 0 {
		errs = append(errs, fmt.Errorf("bench.games must be positive, got %d", c.Bench.Games))
	}
	if c.Bench.OutDir == "" {
		errs = append(errs, errors.New("bench.out_dir must be set"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
