// Package config loads process-wide configuration: a YAML file for the
// aspect tables and engine tuning, with environment-variable overrides
// for the deployment-specific knobs.
//
// The loaded Config is immutable by convention: it is built once at
// startup, validated, and handed to the rest of the process read-only.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/vekiano/mapa-astral-estrelas/internal/astro"
	"github.com/vekiano/mapa-astral-estrelas/internal/ephemeris"
)

// AspectConfig is one aspect-definition row in the YAML file.
type AspectConfig struct {
	Code  string  `yaml:"code"`
	Angle float64 `yaml:"angle"`
	Orb   float64 `yaml:"orb"`
}

// Config is the full process configuration.
type Config struct {
	// HTTPAddr is the listen address for the API server.
	HTTPAddr string `yaml:"http_addr" env:"ESTRELAS_HTTP_ADDR"`

	// CitiesFile is the path to the gazetteer. Empty disables city
	// search.
	CitiesFile string `yaml:"cities_file" env:"ESTRELAS_CITIES_FILE"`

	// StepDays is the scan sampling step in fractional days.
	StepDays float64 `yaml:"step_days" env:"ESTRELAS_STEP_DAYS"`

	// WindowMarginDays extends the timeline window around the chart
	// instant.
	WindowMarginDays float64 `yaml:"window_margin_days" env:"ESTRELAS_WINDOW_MARGIN_DAYS"`

	// Workers bounds the scan worker pool.
	Workers int `yaml:"workers" env:"ESTRELAS_WORKERS"`

	// HouseSystem selects the house-cusp scheme.
	HouseSystem string `yaml:"house_system" env:"ESTRELAS_HOUSE_SYSTEM"`

	// ScanAspects and NatalAspects override the built-in orb tables.
	ScanAspects  []AspectConfig `yaml:"scan_aspects"`
	NatalAspects []AspectConfig `yaml:"natal_aspects"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		HTTPAddr:         ":8080",
		StepDays:         0.1,
		WindowMarginDays: 2,
		Workers:          8,
		HouseSystem:      string(ephemeris.HouseSystemEqual),
	}
}

// Load builds the configuration: defaults, then the YAML file at path
// (skipped when path is empty or the file does not exist), then
// environment overrides, then validation.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Missing file is fine; defaults plus env apply.
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks tuning ranges and the aspect tables.
func (c Config) Validate() error {
	if c.StepDays <= 0 {
		return fmt.Errorf("step_days must be positive, got %v", c.StepDays)
	}
	if c.WindowMarginDays <= 0 {
		return fmt.Errorf("window_margin_days must be positive, got %v", c.WindowMarginDays)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if !ephemeris.HouseSystem(c.HouseSystem).Valid() {
		return fmt.Errorf("unknown house_system %q", c.HouseSystem)
	}
	for _, table := range [][]AspectConfig{c.ScanAspects, c.NatalAspects} {
		for _, a := range table {
			if err := (astro.AspectDefinition{Code: a.Code, Angle: a.Angle, Orb: a.Orb}).Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// ScanTable returns the scan aspect table, falling back to the default
// when the file configured none.
func (c Config) ScanTable() []astro.AspectDefinition {
	return toTable(c.ScanAspects, astro.DefaultScanAspects)
}

// NatalTable returns the natal aspect table, falling back to the default
// when the file configured none.
func (c Config) NatalTable() []astro.AspectDefinition {
	return toTable(c.NatalAspects, astro.DefaultNatalAspects)
}

func toTable(rows []AspectConfig, fallback func() []astro.AspectDefinition) []astro.AspectDefinition {
	if len(rows) == 0 {
		return fallback()
	}
	out := make([]astro.AspectDefinition, len(rows))
	for i, a := range rows {
		out[i] = astro.AspectDefinition{Code: a.Code, Angle: a.Angle, Orb: a.Orb}
	}
	return out
}
