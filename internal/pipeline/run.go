// Package pipeline provides the high-level orchestration for one analysis
// invocation: load, reconcile, match, filter, score, threshold, report.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/daniela/contamination-checker/internal/matching"
	"github.com/daniela/contamination-checker/internal/parsing"
	"github.com/daniela/contamination-checker/internal/report"
	"github.com/daniela/contamination-checker/internal/scoring"
	"github.com/daniela/contamination-checker/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution.
type ProgressEvent struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called as each pipeline stage completes.
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for one analysis invocation. Either the
// *Path fields or the preloaded Input/Reference may be set; preloaded data
// wins, which is how the HTTP surface injects request bodies.
type RunOptions struct {
	InputPath   string
	CuratedPath string

	Input     *types.InputTable
	Reference *types.CuratedReference

	Weights        *types.WeightConfig
	ScoreThreshold float64
	ReadsThreshold int

	// Reconcile enables the best-effort free-text label rewrite before
	// matching. Off by default; see matching.Reconcile for its caveats.
	Reconcile bool

	OnProgress ProgressCallback
}

// emitProgress calls the progress callback if configured.
func emitProgress(opts *RunOptions, runID, stage, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Stage: stage, Message: message, RunID: runID})
	}
}

// Run executes the full analysis pipeline and returns the result bundle.
//
// The computation itself is single-threaded and deterministic: identical
// inputs and configuration produce an identical bundle. Empty results are
// normal outcomes, tagged NoMatches or BelowThreshold, never errors.
func Run(ctx context.Context, opts RunOptions) (*types.AnalysisResult, error) {
	runID := uuid.New().String()

	if opts.Weights == nil {
		return nil, fmt.Errorf("weight configuration is required")
	}
	if err := opts.Weights.Validate(); err != nil {
		return nil, fmt.Errorf("invalid weight configuration: %w", err)
	}

	input, ref, err := loadData(ctx, &opts)
	if err != nil {
		return nil, err
	}
	emitProgress(&opts, runID, "load", fmt.Sprintf("loaded %d input rows against %d curated species", len(input.Records), ref.Len()))

	parsing.PadSingleColumn(input)

	var replaced map[string]string
	if opts.Reconcile {
		replaced = matching.Reconcile(input, ref)
		emitProgress(&opts, runID, "reconcile", fmt.Sprintf("rewrote %d labels to curated names", len(replaced)))
	}

	matchSet := matching.Match(input, ref)
	emitProgress(&opts, runID, "match", fmt.Sprintf("%d matched, %d unmatched", len(matchSet.Matched), len(matchSet.Unmatched)))

	result := &types.AnalysisResult{
		LabelColumn:    input.LabelColumn,
		GroupStats:     matchSet.GroupStats,
		Unmatched:      matchSet.Unmatched,
		ReplacedLabels: replaced,
	}

	located := scoring.FilterLocations(matchSet.Matched, input, opts.ReadsThreshold)
	if len(located) == 0 {
		result.Outcome = types.OutcomeNoMatches
		emitProgress(&opts, runID, "locations", "no rows meet the reads threshold")
		return result, nil
	}
	emitProgress(&opts, runID, "locations", fmt.Sprintf("%d rows have at least one qualifying location", len(located)))

	engine := scoring.NewEngine(ref, opts.Weights)
	engine.Score(located)
	result.TotalMatches = len(located)
	emitProgress(&opts, runID, "score", fmt.Sprintf("scored %d rows over %d active properties", len(located), len(engine.ActiveProperties())))

	retained := scoring.ApplyThreshold(located, opts.ScoreThreshold)
	if len(retained) == 0 {
		result.Outcome = types.OutcomeBelowThreshold
		emitProgress(&opts, runID, "threshold", "all rows scored below the threshold")
		return result, nil
	}
	result.ThresholdRows = len(retained)
	emitProgress(&opts, runID, "threshold", fmt.Sprintf("%d rows at or above the score threshold", len(retained)))

	result.Outcome = types.OutcomeOK
	result.Table = report.BuildForward(retained)
	result.ReverseTable = report.BuildReverse(retained)
	emitProgress(&opts, runID, "report", fmt.Sprintf("%d forward rows, %d reverse entries", len(result.Table), len(result.ReverseTable)))

	return result, nil
}

// loadData resolves the input table and curated reference, reading any files
// concurrently. Preloaded data in the options takes precedence over paths.
func loadData(ctx context.Context, opts *RunOptions) (*types.InputTable, *types.CuratedReference, error) {
	input := opts.Input
	ref := opts.Reference

	g, _ := errgroup.WithContext(ctx)
	if input == nil {
		if opts.InputPath == "" {
			return nil, nil, fmt.Errorf("no input table provided")
		}
		g.Go(func() error {
			var err error
			input, err = parsing.LoadInputTable(opts.InputPath)
			return err
		})
	}
	if ref == nil {
		if opts.CuratedPath == "" {
			return nil, nil, fmt.Errorf("no curated reference provided")
		}
		g.Go(func() error {
			var err error
			ref, err = parsing.LoadCuratedReference(opts.CuratedPath)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return input, ref, nil
}
