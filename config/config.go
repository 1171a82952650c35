// Package config loads driver settings from YAML files and command-line
// flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/plus3/cubefall/game"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable Load falls back to when no path is
// given.
const EnvPath = "CUBEFALL_CONFIG"

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid")

// Config holds everything a driver needs to start a session.
type Config struct {
	Length int    `yaml:"length"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Seed   uint64 `yaml:"seed"`

	DropDelay    time.Duration `yaml:"drop_delay"`
	TickInterval time.Duration `yaml:"tick_interval"`

	LogLevel    string `yaml:"log_level"`
	LogFile     string `yaml:"log_file"`
	MetricsAddr string `yaml:"metrics_addr"`

	Cheats CheatConfig `yaml:"cheats"`
}

type CheatConfig struct {
	VerticalMoves bool `yaml:"vertical_moves"`
	ManualLock    bool `yaml:"manual_lock"`
}

// DefaultConfig returns the settings of a standard game.
func DefaultConfig() *Config {
	return &Config{
		Length:       6,
		Width:        6,
		Height:       12,
		DropDelay:    game.DefaultDropDelay,
		TickInterval: 16 * time.Millisecond,
		LogLevel:     "info",
	}
}

// Load reads a YAML configuration file. With an empty path it tries the file
// named by CUBEFALL_CONFIG, and returns nil, nil when that is unset too.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
		if path == "" {
			return nil, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Flag names, shared by RegisterFlags and Merge.
const (
	FlagLength        = "length"
	FlagWidth         = "width"
	FlagHeight        = "height"
	FlagSeed          = "seed"
	FlagDropDelay     = "drop-delay"
	FlagTickInterval  = "tick-interval"
	FlagLogLevel      = "log-level"
	FlagLogFile       = "log-file"
	FlagMetricsAddr   = "metrics-addr"
	FlagVerticalMoves = "vertical-moves"
	FlagManualLock    = "manual-lock"
)

// RegisterFlags binds c's fields to flags on fs, using c's current values as
// defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Length, FlagLength, c.Length, "chamber length (X)")
	fs.IntVar(&c.Width, FlagWidth, c.Width, "chamber width (Y)")
	fs.IntVar(&c.Height, FlagHeight, c.Height, "chamber height (Z)")
	fs.Uint64Var(&c.Seed, FlagSeed, c.Seed, "piece sequence seed, 0 for random")
	fs.DurationVar(&c.DropDelay, FlagDropDelay, c.DropDelay, "gravity interval")
	fs.DurationVar(&c.TickInterval, FlagTickInterval, c.TickInterval, "frame interval")
	fs.StringVar(&c.LogLevel, FlagLogLevel, c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFile, FlagLogFile, c.LogFile, "write logs to this file instead of stderr")
	fs.StringVar(&c.MetricsAddr, FlagMetricsAddr, c.MetricsAddr, "serve Prometheus metrics on this address")
	fs.BoolVar(&c.Cheats.VerticalMoves, FlagVerticalMoves, c.Cheats.VerticalMoves, "allow moving the piece up and down")
	fs.BoolVar(&c.Cheats.ManualLock, FlagManualLock, c.Cheats.ManualLock, "only hard drops lock pieces")
}

// Explicit returns the names of the flags that were set on the command line.
func Explicit(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// Merge copies the non-zero settings of file into cfg, except those whose
// flag is in explicit: flags given on the command line win over the file.
// A nil file leaves cfg unchanged.
func Merge(cfg, file *Config, explicit map[string]bool) {
	if file == nil {
		return
	}

	mergeValue(&cfg.Length, file.Length, explicit[FlagLength])
	mergeValue(&cfg.Width, file.Width, explicit[FlagWidth])
	mergeValue(&cfg.Height, file.Height, explicit[FlagHeight])
	mergeValue(&cfg.Seed, file.Seed, explicit[FlagSeed])
	mergeValue(&cfg.DropDelay, file.DropDelay, explicit[FlagDropDelay])
	mergeValue(&cfg.TickInterval, file.TickInterval, explicit[FlagTickInterval])
	mergeValue(&cfg.LogLevel, file.LogLevel, explicit[FlagLogLevel])
	mergeValue(&cfg.LogFile, file.LogFile, explicit[FlagLogFile])
	mergeValue(&cfg.MetricsAddr, file.MetricsAddr, explicit[FlagMetricsAddr])
	mergeValue(&cfg.Cheats.VerticalMoves, file.Cheats.VerticalMoves, explicit[FlagVerticalMoves])
	mergeValue(&cfg.Cheats.ManualLock, file.Cheats.ManualLock, explicit[FlagManualLock])
}

func mergeValue[T comparable](dst *T, v T, explicit bool) {
	var zero T
	if explicit || v == zero {
		return
	}
	*dst = v
}

// Validate reports the first setting a session could not start with.
func (c *Config) Validate() error {
	switch {
	case c.Length <= 0 || c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: chamber %dx%dx%d must have positive dimensions", ErrInvalidConfig, c.Length, c.Width, c.Height)
	case c.DropDelay <= 0:
		return fmt.Errorf("%w: drop_delay %v must be positive", ErrInvalidConfig, c.DropDelay)
	case c.TickInterval <= 0:
		return fmt.Errorf("%w: tick_interval %v must be positive", ErrInvalidConfig, c.TickInterval)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Logger returns a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, err := c.Level()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// LogOutput returns where logs should go: LogFile opened for appending, or
// fallback when no file is configured. The returned close function is never
// nil.
func (c *Config) LogOutput(fallback io.Writer) (io.Writer, func() error, error) {
	if c.LogFile == "" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("config: open log file: %w", err)
	}
	return f, f.Close, nil
}

// SessionOptions converts the configuration into game options.
func (c *Config) SessionOptions(log *slog.Logger, metrics *game.Metrics) game.Options {
	return game.Options{
		Length:    c.Length,
		Width:     c.Width,
		Height:    c.Height,
		Seed:      c.Seed,
		DropDelay: c.DropDelay,
		Cheats: game.Cheats{
			VerticalMoves: c.Cheats.VerticalMoves,
			ManualLock:    c.Cheats.ManualLock,
		},
		Logger:  log,
		Metrics: metrics,
	}
}
