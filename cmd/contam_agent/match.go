package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daniela/contamination-checker/internal/config"
	"github.com/daniela/contamination-checker/internal/matching"
	"github.com/daniela/contamination-checker/internal/observability"
	"github.com/daniela/contamination-checker/internal/parsing"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match input labels against the curated reference",
	Long:  "Runs only the matching stage: reports the matched and unmatched partitions and group statistics. The unmatched export is the hand-off point for an external alignment pipeline.",
	RunE:  runMatch,
}

var (
	matchInput        string
	matchDataDir      string
	matchCurated      string
	matchVariant      string
	matchUnmatchedOut string
)

func init() {
	matchCmd.Flags().StringVarP(&matchInput, "input", "i", "", "Path to input detection CSV (required)")
	matchCmd.Flags().StringVar(&matchDataDir, "data-dir", "", "Directory with curated tables (default \"data\")")
	matchCmd.Flags().StringVar(&matchCurated, "curated", "", "Explicit curated reference CSV, overrides --variant")
	matchCmd.Flags().StringVar(&matchVariant, "variant", "", "Curated variant to use: 35 or 75 (default 35)")
	matchCmd.Flags().StringVar(&matchUnmatchedOut, "unmatched-out", "", "Optional path for an unmatched-rows JSON export")

	if err := matchCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Input:   matchInput,
		DataDir: matchDataDir,
		Curated: matchCurated,
		Variant: matchVariant,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	input, err := parsing.LoadInputTable(cfg.Input)
	if err != nil {
		return err
	}
	ref, err := parsing.LoadCuratedReference(cfg.CuratedPath())
	if err != nil {
		return err
	}
	parsing.PadSingleColumn(input)

	set := matching.Match(input, ref)

	fmt.Printf("Matched rows:   %d\n", len(set.Matched))
	fmt.Printf("Unmatched rows: %d\n", len(set.Unmatched))

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintGroupStats(set.GroupStats)

	if matchUnmatchedOut != "" {
		if err := writeJSON(matchUnmatchedOut, set.Unmatched); err != nil {
			return err
		}
		fmt.Printf("Unmatched partition written to %s\n", matchUnmatchedOut)
	}

	return nil
}
