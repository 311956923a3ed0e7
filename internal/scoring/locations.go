// Package scoring computes location presence and weighted contamination
// scores for matched rows, and applies the score threshold.
package scoring

import "github.com/daniela/contamination-checker/internal/types"

// FilterLocations computes per-row location presence under the reads
// threshold and drops rows with no qualifying location.
//
// A location counts as present when its read count is at least
// readsThreshold. Every returned row has NumLocations >= 1.
func FilterLocations(matches []types.MatchResult, table *types.InputTable, readsThreshold int) []types.ScoredRecord {
	byIndex := make(map[int]types.InputRecord, len(table.Records))
	for _, record := range table.Records {
		byIndex[record.Index] = record
	}

	var kept []types.ScoredRecord
	for _, match := range matches {
		record, ok := byIndex[match.RecordIndex]
		if !ok {
			continue
		}

		locations := make(map[string]int)
		for _, loc := range table.Locations {
			if count := record.Reads[loc]; count >= readsThreshold {
				locations[loc] = count
			}
		}
		if len(locations) == 0 {
			continue
		}

		kept = append(kept, types.ScoredRecord{
			Match:        match,
			NumLocations: len(locations),
			Locations:    locations,
		})
	}

	return kept
}
