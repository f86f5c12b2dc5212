// Package config loads and validates the solver's run configuration
// from a YAML file with environment-variable overrides, mirroring the
// enumerated keys of spec §6: grid size and minimum word length,
// inference/deadline/progress knobs, and oracle call budgets.
//
// Grounded on the teacher's cmd/{server,admin}/main.go use of
// github.com/joho/godotenv for .env loading, and on
// projectdiscovery-alterx's internal/runner/config.go use of
// github.com/goccy/go-yaml for struct-bound YAML parsing.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// GridConfig governs the GridModel the CLI builds or loads.
type GridConfig struct {
	Size          int `yaml:"size"`
	MinWordLength int `yaml:"min_word_length"`
}

// SolverConfig governs the Solver's search behavior.
type SolverConfig struct {
	UseInference            bool `yaml:"use_inference"`
	DeadlineSeconds         int  `yaml:"deadline_seconds"`
	ProgressIntervalSeconds int  `yaml:"progress_interval_seconds"`
}

// OracleConfig governs the Oracle Adapter's budget and transport.
type OracleConfig struct {
	Enabled        bool           `yaml:"enabled"`
	BaseURL        string         `yaml:"base_url"`
	APIKey         string         `yaml:"api_key"`
	MaxTotalCalls  int            `yaml:"max_total_calls"`
	PerKindCaps    map[string]int `yaml:"per_kind_caps"`
	OnLimitReached string         `yaml:"on_limit_reached"` // "fail" or "fallback"
}

// Config is the top-level configuration document, per spec §6.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Solver SolverConfig `yaml:"solver"`
	Oracle OracleConfig `yaml:"oracle"`
}

// Default returns the configuration a fresh CLI invocation uses when no
// file or overrides are present.
func Default() Config {
	return Config{
		Grid: GridConfig{Size: 15, MinWordLength: 3},
		Solver: SolverConfig{
			UseInference:            true,
			DeadlineSeconds:         30,
			ProgressIntervalSeconds: 2,
		},
		Oracle: OracleConfig{
			Enabled:        false,
			MaxTotalCalls:  -1,
			OnLimitReached: "fallback",
		},
	}
}

// Load reads a YAML config file (if path is non-empty) layered over
// Default(), then applies CROSSGEN_-prefixed environment variable
// overrides loaded via godotenv, and validates the result.
func Load(path string) (Config, error) {
	_ = godotenv.Load() // missing .env is not an error; env vars may come from elsewhere

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv("CROSSGEN_GRID_SIZE"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Grid.Size = n
		}
	}
	if v, ok := os.LookupEnv("CROSSGEN_ORACLE_ENABLED"); ok {
		cfg.Oracle.Enabled = v == "true" || v == "1"
	}
	if v, ok := os.LookupEnv("CROSSGEN_ORACLE_BASE_URL"); ok {
		cfg.Oracle.BaseURL = v
	}
	if v, ok := os.LookupEnv("CROSSGEN_ORACLE_API_KEY"); ok {
		cfg.Oracle.APIKey = v
	}
	if v, ok := os.LookupEnv("CROSSGEN_ORACLE_MAX_TOTAL_CALLS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Oracle.MaxTotalCalls = n
		}
	}
}

// Validate reports a descriptive error for any structurally invalid
// setting; no schema-validation library is used here (none in the pack
// validates Go structs bound at compile time, only generic JSON
// documents), so this is hand-written per field.
func (c Config) Validate() error {
	if c.Grid.Size <= 0 {
		return fmt.Errorf("config: grid.size must be positive, got %d", c.Grid.Size)
	}
	if c.Grid.MinWordLength <= 0 {
		return fmt.Errorf("config: grid.min_word_length must be positive, got %d", c.Grid.MinWordLength)
	}
	if c.Solver.DeadlineSeconds < 0 {
		return fmt.Errorf("config: solver.deadline_seconds must be >= 0, got %d", c.Solver.DeadlineSeconds)
	}
	if c.Solver.ProgressIntervalSeconds < 0 {
		return fmt.Errorf("config: solver.progress_interval_seconds must be >= 0, got %d", c.Solver.ProgressIntervalSeconds)
	}
	if c.Oracle.OnLimitReached != "" && c.Oracle.OnLimitReached != "fail" && c.Oracle.OnLimitReached != "fallback" {
		return fmt.Errorf("config: oracle.on_limit_reached must be 'fail' or 'fallback', got %q", c.Oracle.OnLimitReached)
	}
	return nil
}
