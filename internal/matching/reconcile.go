package matching

import (
	"strconv"
	"strings"

	"github.com/daniela/contamination-checker/internal/types"
)

// Reconcile rewrites free-text input labels to curated names by best-effort
// substring matching, and drops rows whose label is a bare number.
//
// For each label with at least two whitespace tokens, the first two tokens are
// matched case-insensitively as a substring of each curated name; the first
// hit replaces the label. This is a heuristic with known false positives for
// short genus names, so the pipeline applies it only on explicit caller
// opt-in, never as part of the authoritative matcher.
//
// The returned map records replacements as curated name → original label.
func Reconcile(table *types.InputTable, ref *types.CuratedReference) map[string]string {
	replaced := make(map[string]string)
	kept := table.Records[:0]

	for _, record := range table.Records {
		if _, err := strconv.ParseFloat(strings.TrimSpace(record.Label), 64); err == nil {
			// Numeric labels are artifacts of upstream exports.
			continue
		}

		tokens := strings.Fields(record.Label)
		if len(tokens) >= 2 {
			needle := strings.ToLower(tokens[0] + " " + tokens[1])
			for _, sp := range ref.Species {
				if strings.Contains(strings.ToLower(sp.Species), needle) {
					// A label that already is the curated name is
					// not a rewrite.
					if record.Label != sp.Species {
						replaced[sp.Species] = record.Label
						record.Label = sp.Species
					}
					break
				}
			}
		}
		kept = append(kept, record)
	}

	table.Records = kept
	return replaced
}
