// Package alignment defines the hand-off point to an external
// sequence-alignment pipeline for rows the matcher could not resolve. The
// engine never invokes it; callers decide whether and when to run it.
package alignment

import (
	"context"

	"github.com/daniela/contamination-checker/internal/types"
)

// Pipeline accepts the unmatched partition for secondary investigation,
// typically an alignment search against a broader database.
type Pipeline interface {
	Investigate(ctx context.Context, unmatched []types.InputRecord) error
}

// Noop is a Pipeline that discards the hand-off. It stands in wherever no
// external aligner is configured.
type Noop struct{}

// Investigate implements Pipeline.
func (Noop) Investigate(_ context.Context, _ []types.InputRecord) error {
	return nil
}
