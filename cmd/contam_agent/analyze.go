package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/daniela/contamination-checker/internal/config"
	"github.com/daniela/contamination-checker/internal/observability"
	"github.com/daniela/contamination-checker/internal/pipeline"
	"github.com/daniela/contamination-checker/internal/report"
	"github.com/daniela/contamination-checker/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full contamination analysis",
	Long:  "Matches an input detection table against the curated reference, scores weighted evidence per row, filters by the reads and score thresholds, and writes the result bundle as JSON.",
	RunE:  runAnalyze,
}

var (
	analyzeInput          string
	analyzeConfig         string
	analyzeDataDir        string
	analyzeCurated        string
	analyzeVariant        string
	analyzeWeights        string
	analyzeScoreThreshold float64
	analyzeReadsThreshold int
	analyzeReconcile      bool
	analyzeVerbose        bool
	analyzeOutput         string
	analyzeExport         string
)

// Fallback thresholds, applied only after flag and config-file values have
// been merged so a config file can lower them below the documented defaults.
const (
	defaultScoreThreshold = 3
	defaultReadsThreshold = 10
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "Path to input detection CSV (required unless set in config)")
	analyzeCmd.Flags().StringVarP(&analyzeConfig, "config", "c", "", "Path to JSON config file supplying flag defaults")
	analyzeCmd.Flags().StringVar(&analyzeDataDir, "data-dir", "", "Directory with curated tables and default weights (default \"data\")")
	analyzeCmd.Flags().StringVar(&analyzeCurated, "curated", "", "Explicit curated reference CSV, overrides --variant")
	analyzeCmd.Flags().StringVar(&analyzeVariant, "variant", "", "Curated variant to use: 35 or 75 (default 35)")
	analyzeCmd.Flags().StringVarP(&analyzeWeights, "weights", "w", "", "Weight override JSON document replacing the bundled defaults")
	analyzeCmd.Flags().Float64Var(&analyzeScoreThreshold, "score-threshold", 0, "Inclusive lower bound on the weighted score (default 3)")
	analyzeCmd.Flags().IntVar(&analyzeReadsThreshold, "reads-threshold", 0, "Inclusive lower bound for a location to count as present (default 10)")
	analyzeCmd.Flags().BoolVar(&analyzeReconcile, "reconcile", false, "Rewrite free-text labels to curated names before matching (best-effort heuristic)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print stage summaries and result tables")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to output AnalysisResult JSON file (required)")
	analyzeCmd.Flags().StringVar(&analyzeExport, "export", "", "Optional path for a forward-table CSV export")

	if err := analyzeCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

// resolveAnalyzeConfig merges CLI flags over the optional config file. The
// threshold flags default to zero so MergeWithDefaults can pick up config-file
// values; the documented 3/10 defaults apply last, and an explicitly passed
// flag wins even at zero.
func resolveAnalyzeConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Config{
		Input:          analyzeInput,
		DataDir:        analyzeDataDir,
		Curated:        analyzeCurated,
		Variant:        analyzeVariant,
		Weights:        analyzeWeights,
		ScoreThreshold: analyzeScoreThreshold,
		ReadsThreshold: analyzeReadsThreshold,
		Reconcile:      analyzeReconcile,
		Verbose:        analyzeVerbose,
	}

	if analyzeConfig != "" {
		fileCfg, err := config.LoadConfig(analyzeConfig)
		if err != nil {
			return nil, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
		if cmd.Flags().Changed("score-threshold") {
			cfg.ScoreThreshold = analyzeScoreThreshold
		}
		if cmd.Flags().Changed("reads-threshold") {
			cfg.ReadsThreshold = analyzeReadsThreshold
		}
	}

	if cfg.ScoreThreshold == 0 && !cmd.Flags().Changed("score-threshold") {
		cfg.ScoreThreshold = defaultScoreThreshold
	}
	if cfg.ReadsThreshold == 0 && !cmd.Flags().Changed("reads-threshold") {
		cfg.ReadsThreshold = defaultReadsThreshold
	}

	if cfg.Input == "" {
		return nil, fmt.Errorf("input is required: pass --input or set it in the config file")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveAnalyzeConfig(cmd)
	if err != nil {
		return err
	}

	// 1. Resolve the effective weight configuration
	weights, err := cfg.ResolveWeights()
	if err != nil {
		return err
	}

	// 2. Run the pipeline
	printer := observability.NewPrinter(os.Stdout)
	opts := pipeline.RunOptions{
		InputPath:      cfg.Input,
		CuratedPath:    cfg.CuratedPath(),
		Weights:        weights,
		ScoreThreshold: cfg.ScoreThreshold,
		ReadsThreshold: cfg.ReadsThreshold,
		Reconcile:      cfg.Reconcile,
	}
	if cfg.Verbose {
		opts.OnProgress = func(event pipeline.ProgressEvent) {
			fmt.Printf("[%s] %s\n", event.Stage, event.Message)
		}
	}

	result, err := pipeline.Run(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if cfg.Verbose {
		printer.PrintSummary(result)
		printer.PrintForwardTable(result.Table)
		printer.PrintReverseTable(result.ReverseTable)
		printer.PrintGroupStats(result.GroupStats)
	}

	// 3. Write the result bundle
	if err := writeJSON(analyzeOutput, result); err != nil {
		return err
	}

	// 4. Optional forward-table CSV export
	if analyzeExport != "" && result.Outcome == types.OutcomeOK {
		if err := exportForwardTable(analyzeExport, result.LabelColumn, result.Table); err != nil {
			return err
		}
	}

	return nil
}

// exportForwardTable writes the forward table CSV under the input's original
// label column header.
func exportForwardTable(path, labelColumn string, rows []types.ForwardRow) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file %s: %w", path, err)
	}
	defer out.Close()

	if err := report.WriteForwardCSV(out, labelColumn, rows); err != nil {
		return fmt.Errorf("failed to export forward table: %w", err)
	}
	return nil
}

// writeJSON marshals a value with indentation and writes it to path, creating
// parent directories as needed.
func writeJSON(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output JSON: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
