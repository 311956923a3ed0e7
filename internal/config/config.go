// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Curated reference variants bundled under the data directory. The variant is
// an opaque choice from the engine's point of view; it only selects which
// curated table to load.
const (
	VariantID35 = "35"
	VariantID75 = "75"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags.
type Config struct {
	// Paths
	Input   string `json:"input,omitempty"`   // Path to input detection CSV
	DataDir string `json:"data_dir,omitempty"` // Directory holding curated tables and default weights
	Curated string `json:"curated,omitempty"` // Explicit curated reference CSV, overrides Variant
	Weights string `json:"weights,omitempty"` // Path to a weight override JSON document

	// Selection
	Variant string `json:"variant,omitempty"` // Curated variant: "35" or "75"

	// Thresholds
	ScoreThreshold float64 `json:"score_threshold,omitempty"` // Inclusive lower bound on the weighted score
	ReadsThreshold int     `json:"reads_threshold,omitempty"` // Inclusive lower bound for location presence

	// Behavior
	Reconcile bool `json:"reconcile,omitempty"` // Enable free-text label reconciliation
	Verbose   bool `json:"verbose,omitempty"`   // Print detailed stage summaries
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Curated != "" && c.Variant != "" {
		return fmt.Errorf("config error: 'curated' and 'variant' are mutually exclusive")
	}
	if c.Variant != "" && c.Variant != VariantID35 && c.Variant != VariantID75 {
		return fmt.Errorf("config error: unknown curated variant %q", c.Variant)
	}
	if c.ScoreThreshold < 0 {
		return fmt.Errorf("config error: 'score_threshold' must be non-negative")
	}
	if c.ReadsThreshold < 0 {
		return fmt.Errorf("config error: 'reads_threshold' must be non-negative")
	}
	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}
	if c.Curated != "" {
		if _, err := os.Stat(c.Curated); os.IsNotExist(err) {
			return fmt.Errorf("config error: curated reference not found: %s", c.Curated)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.Curated == "" {
		result.Curated = defaults.Curated
	}
	if result.Weights == "" {
		result.Weights = defaults.Weights
	}
	if result.Variant == "" {
		result.Variant = defaults.Variant
	}
	if result.ScoreThreshold == 0 {
		result.ScoreThreshold = defaults.ScoreThreshold
	}
	if result.ReadsThreshold == 0 {
		result.ReadsThreshold = defaults.ReadsThreshold
	}
	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// CuratedPath resolves the curated reference file to load: an explicit path if
// given, otherwise the bundled table for the selected variant.
func (c *Config) CuratedPath() string {
	if c.Curated != "" {
		return c.Curated
	}
	dataDir := c.DataDir
	if dataDir == "" {
		dataDir = "data"
	}
	if c.Variant == VariantID75 {
		return filepath.Join(dataDir, "curated_fungi_75.csv")
	}
	return filepath.Join(dataDir, "curated_fungi.csv")
}

// DefaultWeightsPath returns the bundled default weight configuration.
func (c *Config) DefaultWeightsPath() string {
	dataDir := c.DataDir
	if dataDir == "" {
		dataDir = "data"
	}
	return filepath.Join(dataDir, "score_weights.json")
}
