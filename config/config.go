// Package config loads and validates lvknap configuration from a YAML file
// with LVKNAP_* environment-variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvknap/knapsack"
)

// ErrInvalidConfig is returned by Validate and by Load when a value is out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the top-level configuration.
type Config struct {
	Solver  SolverConfig  `yaml:"solver"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// SolverConfig controls the search driver.
type SolverConfig struct {
	// Capacity is used for instances that do not declare their own. Nil means unset.
	Capacity         *int64 `yaml:"capacity"`
	IterationCap     int    `yaml:"iterationCap"`
	RatioTieBreak    string `yaml:"ratioTieBreak"`
	FrontierTieBreak string `yaml:"frontierTieBreak"`
	// Verify cross-checks small instances against exhaustive enumeration.
	Verify bool `yaml:"verify"`
	// Parallelism bounds concurrent solves; 0 means one per CPU.
	Parallelism int `yaml:"parallelism"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus textfile export. An empty Textfile disables it.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// Load reads a YAML config file (if provided), applies environment-variable
// overrides and validates the result. Missing values keep their defaults.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the configuration used when no file or environment is given.
func Default() *Config {
	return defaultConfig()
}

func defaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			IterationCap:     knapsack.DefaultIterationCap,
			RatioTieBreak:    knapsack.TieInputOrder.String(),
			FrontierTieBreak: knapsack.TieLIFO.String(),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// applyEnvOverrides reads LVKNAP_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("LVKNAP_CAPACITY"); v != "" {
		c, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: LVKNAP_CAPACITY=%q", ErrInvalidConfig, v)
		}
		cfg.Solver.Capacity = &c
	}
	if v := os.Getenv("LVKNAP_ITERATION_CAP"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: LVKNAP_ITERATION_CAP=%q", ErrInvalidConfig, v)
		}
		cfg.Solver.IterationCap = n
	}
	if v := os.Getenv("LVKNAP_RATIO_TIE_BREAK"); v != "" {
		cfg.Solver.RatioTieBreak = v
	}
	if v := os.Getenv("LVKNAP_FRONTIER_TIE_BREAK"); v != "" {
		cfg.Solver.FrontierTieBreak = v
	}
	if v := os.Getenv("LVKNAP_VERIFY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: LVKNAP_VERIFY=%q", ErrInvalidConfig, v)
		}
		cfg.Solver.Verify = b
	}
	if v := os.Getenv("LVKNAP_PARALLELISM"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: LVKNAP_PARALLELISM=%q", ErrInvalidConfig, v)
		}
		cfg.Solver.Parallelism = n
	}
	if v := os.Getenv("LVKNAP_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LVKNAP_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("LVKNAP_METRICS_TEXTFILE"); v != "" {
		cfg.Metrics.Textfile = v
	}

	return nil
}

// Validate checks every field and reports the first problem found.
func (c *Config) Validate() error {
	s := c.Solver
	if s.Capacity != nil && *s.Capacity < 0 {
		return fmt.Errorf("%w: solver.capacity %d must be >= 0", ErrInvalidConfig, *s.Capacity)
	}
	if s.IterationCap <= 0 {
		return fmt.Errorf("%w: solver.iterationCap %d must be > 0", ErrInvalidConfig, s.IterationCap)
	}
	if s.Parallelism < 0 {
		return fmt.Errorf("%w: solver.parallelism %d must be >= 0", ErrInvalidConfig, s.Parallelism)
	}
	if _, err := s.Options(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalidConfig, c.Logging.Format)
	}

	return nil
}

// Options translates the solver settings into knapsack options.
func (s SolverConfig) Options() ([]knapsack.Option, error) {
	ratio, err := knapsack.ParseRatioTieBreak(s.RatioTieBreak)
	if err != nil {
		return nil, err
	}
	frontier, err := knapsack.ParseFrontierTieBreak(s.FrontierTieBreak)
	if err != nil {
		return nil, err
	}

	return []knapsack.Option{
		knapsack.WithIterationCap(s.IterationCap),
		knapsack.WithRatioTieBreak(ratio),
		knapsack.WithFrontierTieBreak(frontier),
	}, nil
}
