// Package config loads the settings shared by the flowdecomp, flowscore and
// flowgen commands.
//
// Precedence, lowest to highest:
//  1. Defaults (Default).
//  2. An optional YAML file; unknown keys are rejected.
//  3. FLOWDECOMP_* environment variables.
//
// The merged result is validated before it is returned.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/flowdecomp/verify"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "FLOWDECOMP_"

// Config is the full settings tree.
type Config struct {
	Logging   Logging       `yaml:"logging"`
	Decompose Decompose     `yaml:"decompose"`
	Score     Score         `yaml:"score"`
	Limits    verify.Limits `yaml:"limits"`
	Metrics   Metrics       `yaml:"metrics"`
}

// Logging selects the zap logger.
type Logging struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Decompose configures cmd/flowdecomp.
type Decompose struct {
	OutputDir     string `yaml:"output_dir" validate:"required"`
	MaxIterations int    `yaml:"max_iterations" validate:"gte=0"`
	Verbose       bool   `yaml:"verbose"`
}

// Score configures cmd/flowscore.
type Score struct {
	ScoreFile            string `yaml:"score_file" validate:"required"`
	Base                 int    `yaml:"base" validate:"gte=0"`
	Floor                int    `yaml:"floor" validate:"gte=0"`
	RejectedFixtureScore int    `yaml:"rejected_fixture_score" validate:"gte=0"`
}

// Scorer returns the verify.Scorer described by s.
func (s Score) Scorer() verify.Scorer {
	return verify.Scorer{Base: s.Base, Floor: s.Floor}
}

// Metrics configures the Prometheus textfile export; empty disables it.
type Metrics struct {
	Textfile string `yaml:"textfile"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Logging:   Logging{Level: "info"},
		Decompose: Decompose{OutputDir: "outputs"},
		Score: Score{
			ScoreFile:            "test_scores.txt",
			Base:                 verify.DefaultBase,
			Floor:                verify.DefaultFloor,
			RejectedFixtureScore: verify.DefaultBase,
		},
		Limits: verify.DefaultLimits(),
	}
}

// Load builds a Config from the defaults, the YAML file at path (skipped
// when path is empty) and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := decodeYAML(data, cfg); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg, os.LookupEnv); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// applyEnv overlays FLOWDECOMP_<SECTION>_<KEY> variables.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	integer := func(key string, dst *int) error {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = n

		return nil
	}
	boolean := func(key string, dst *bool) error {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = b

		return nil
	}

	int64Var := func(key string, dst *int64) error {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			return nil
		}
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = n

		return nil
	}

	str("LOGGING_LEVEL", &cfg.Logging.Level)
	str("DECOMPOSE_OUTPUT_DIR", &cfg.Decompose.OutputDir)
	str("SCORE_SCORE_FILE", &cfg.Score.ScoreFile)
	str("METRICS_TEXTFILE", &cfg.Metrics.Textfile)

	return multierr.Combine(
		boolean("LOGGING_DEVELOPMENT", &cfg.Logging.Development),
		integer("DECOMPOSE_MAX_ITERATIONS", &cfg.Decompose.MaxIterations),
		boolean("DECOMPOSE_VERBOSE", &cfg.Decompose.Verbose),
		integer("SCORE_BASE", &cfg.Score.Base),
		integer("SCORE_FLOOR", &cfg.Score.Floor),
		integer("SCORE_REJECTED_FIXTURE_SCORE", &cfg.Score.RejectedFixtureScore),
		integer("LIMITS_MAX_VERTICES", &cfg.Limits.MaxVertices),
		integer("LIMITS_MAX_EDGES", &cfg.Limits.MaxEdges),
		int64Var("LIMITS_MAX_EDGE_FLOW", &cfg.Limits.MaxEdgeFlow),
		integer("LIMITS_MAX_PATHS", &cfg.Limits.MaxPaths),
		integer("LIMITS_MAX_CYCLES", &cfg.Limits.MaxCycles),
	)
}
