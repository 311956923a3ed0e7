// Package report derives the output tables of an analysis: the forward table
// (record → score and evidence), the reverse table (property → records), and
// the property set-membership index used for multi-set comparisons.
package report

import "github.com/daniela/contamination-checker/internal/types"

// BuildForward derives the forward table from the threshold survivors,
// preserving original input order.
func BuildForward(records []types.ScoredRecord) []types.ForwardRow {
	rows := make([]types.ForwardRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, types.ForwardRow{
			Label:                  record.Match.Label,
			Score:                  record.ScoreLabel,
			ContributingProperties: record.ContributingProperties,
			NumLocations:           record.NumLocations,
			Locations:              record.Locations,
		})
	}
	return rows
}

// BuildReverse derives the reverse table: one entry per property appearing in
// any row's contributing set, in first-seen order across the forward rows,
// listing the labels of the rows it contributed to.
func BuildReverse(records []types.ScoredRecord) []types.ReverseEntry {
	var order []string
	byProperty := make(map[string][]string)

	for _, record := range records {
		for _, property := range record.ContributingProperties {
			if _, seen := byProperty[property]; !seen {
				order = append(order, property)
			}
			byProperty[property] = append(byProperty[property], record.Match.Label)
		}
	}

	entries := make([]types.ReverseEntry, 0, len(order))
	for _, property := range order {
		labels := byProperty[property]
		entries = append(entries, types.ReverseEntry{
			Property: property,
			Count:    len(labels),
			Labels:   labels,
		})
	}
	return entries
}
