// Package matching resolves input taxon labels against the curated reference.
package matching

import (
	"strings"

	"github.com/daniela/contamination-checker/internal/parsing"
	"github.com/daniela/contamination-checker/internal/types"
)

// Match resolves every input row against the curated reference.
//
// Exact labels match by case-sensitive membership in the curated species list.
// Group labels ("Aspergillus sp.") match every curated species whose name
// starts with the genus followed by a space, case-insensitively; prefix
// matching on the delimited genus keeps "Aspergilloides" out of an
// "Aspergillus" group. Rows with blank labels are skipped outright and belong
// to neither partition.
func Match(table *types.InputTable, ref *types.CuratedReference) *types.MatchSet {
	set := &types.MatchSet{}
	seenGroups := make(map[string]bool)

	for _, record := range table.Records {
		key, isGroup, ok := parsing.NormalizeTaxonName(record.Label)
		if !ok {
			continue
		}

		if isGroup {
			species := matchGenus(ref, key)
			if len(species) == 0 {
				set.Unmatched = append(set.Unmatched, record)
				continue
			}
			set.Matched = append(set.Matched, types.MatchResult{
				RecordIndex: record.Index,
				Label:       record.Label,
				IsGroup:     true,
				Genus:       key,
				Species:     species,
			})
			if !seenGroups[record.Label] {
				seenGroups[record.Label] = true
				set.GroupStats = append(set.GroupStats, types.GroupStat{
					Group:      record.Label,
					Genus:      key,
					MatchCount: len(species),
					Species:    species,
				})
			}
			continue
		}

		if !ref.Contains(key) {
			set.Unmatched = append(set.Unmatched, record)
			continue
		}
		set.Matched = append(set.Matched, types.MatchResult{
			RecordIndex: record.Index,
			Label:       record.Label,
			Species:     []string{key},
		})
	}

	return set
}

// matchGenus returns every curated species under a genus, in curated-list
// order.
func matchGenus(ref *types.CuratedReference, genus string) []string {
	prefix := strings.ToLower(genus) + " "
	var matches []string
	for _, sp := range ref.Species {
		if strings.HasPrefix(strings.ToLower(sp.Species), prefix) {
			matches = append(matches, sp.Species)
		}
	}
	return matches
}
