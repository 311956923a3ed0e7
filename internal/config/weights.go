package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/daniela/contamination-checker/internal/types"
)

// LoadWeights reads a flat {property: number} JSON document into a weight
// configuration, preserving document order.
func LoadWeights(path string) (*types.WeightConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read weights file %s: %w", path, err)
	}

	weights := types.NewWeightConfig()
	if err := json.Unmarshal(data, weights); err != nil {
		return nil, fmt.Errorf("failed to parse weights file %s: %w", path, err)
	}
	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("invalid weights in %s: %w", path, err)
	}
	return weights, nil
}

// ResolveWeights returns the effective weight configuration: the bundled
// defaults, replaced wholesale by an override document when one is configured.
func (c *Config) ResolveWeights() (*types.WeightConfig, error) {
	if c.Weights != "" {
		return LoadWeights(c.Weights)
	}
	return LoadWeights(c.DefaultWeightsPath())
}
