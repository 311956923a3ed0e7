package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daniela/contamination-checker/internal/config"
	"github.com/daniela/contamination-checker/internal/schemas"
)

var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Show and validate the effective weight configuration",
	Long:  "Prints the weight configuration the analysis would use: the bundled defaults, or an override document validated against the weight schema.",
	RunE:  runWeights,
}

var (
	weightsDataDir  string
	weightsOverride string
)

func init() {
	weightsCmd.Flags().StringVar(&weightsDataDir, "data-dir", "", "Directory with the default weights (default \"data\")")
	weightsCmd.Flags().StringVarP(&weightsOverride, "weights", "w", "", "Weight override JSON document to validate and show")

	rootCmd.AddCommand(weightsCmd)
}

func runWeights(_ *cobra.Command, _ []string) error {
	cfg := config.Config{DataDir: weightsDataDir, Weights: weightsOverride}

	if weightsOverride != "" {
		if schemaPath := schemas.ResolveSchemaPath(schemas.WeightsSchema); schemaPath != "" {
			if err := schemas.ValidateFile(schemaPath, weightsOverride); err != nil {
				return fmt.Errorf("weight document rejected: %w", err)
			}
		}
	}

	weights, err := cfg.ResolveWeights()
	if err != nil {
		return err
	}

	for _, property := range weights.Properties() {
		weight, _ := weights.Get(property)
		fmt.Printf("%-30s %v\n", property, weight)
	}
	return nil
}
