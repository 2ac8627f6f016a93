// Package config loads gridarena settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const honeycombEndpoint = "https://api.honeycomb.io"

var (
	// ErrEmptyArena is returned when either arena extent is zero.
	ErrEmptyArena = errors.New("config: rows and columns must be at least 1")
	// ErrInvalidSteps is returned when the walk length is negative.
	ErrInvalidSteps = errors.New("config: steps must not be negative")
)

// Config holds the arena shape, the walk to run over it and the
// telemetry credentials.
type Config struct {
	Rows    uint `env:"GRIDARENA_ROWS" envDefault:"10"`
	Columns uint `env:"GRIDARENA_COLUMNS" envDefault:"10"`

	// Seed for random number generation. A seed of 0 means a random seed.
	Seed  int64 `env:"GRIDARENA_SEED" envDefault:"0"`
	Steps int   `env:"GRIDARENA_STEPS" envDefault:"25"`

	HoneycombAPIKey  string `env:"HONEYCOMB_GRIDARENA_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_GRIDARENA_DATASET" envDefault:"gridarena"`
}

// Load reads an optional .env file from the working directory, then parses
// and validates the environment.
func Load(filenames ...string) (Config, error) {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load dotenv: %w", err)
	}
	return Parse()
}

// Parse reads the environment without touching any .env file.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings that cannot drive a walk.
func (c Config) Validate() error {
	if c.Rows == 0 || c.Columns == 0 {
		return fmt.Errorf("%w: got %d x %d", ErrEmptyArena, c.Rows, c.Columns)
	}
	if c.Steps < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSteps, c.Steps)
	}
	return nil
}

// Rand returns a generator seeded from Seed, or from the clock when Seed is 0.
func (c Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// OTelEnv returns the OTEL_EXPORTER_OTLP_* variables that point the
// exporter at Honeycomb. Headers are only set when an API key is present.
func (c Config) OTelEnv() map[string]string {
	vars := map[string]string{
		"OTEL_EXPORTER_OTLP_ENDPOINT": honeycombEndpoint,
	}
	if c.HoneycombAPIKey != "" {
		vars["OTEL_EXPORTER_OTLP_HEADERS"] = fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s",
			c.HoneycombAPIKey, c.HoneycombDataset)
	}
	return vars
}
