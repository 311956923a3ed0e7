// Package parsing provides taxon label normalization and tabular input parsing
// for the contamination checker.
package parsing

import "strings"

// groupSuffixes are the trailing tokens that mark a genus-level group label,
// compared case-insensitively.
var groupSuffixes = []string{"sp.", "spp.", "sp", "spp"}

// NormalizeTaxonName classifies a raw taxon label.
//
// A label ending in a group suffix ("sp.", "spp.", "sp", "spp" as a trailing
// word) yields the genus (its first whitespace-delimited token) with
// isGroup=true; any other non-blank label yields the trimmed label itself with
// isGroup=false. A blank label yields ok=false and the row must be skipped
// entirely, counted as neither matched nor unmatched.
func NormalizeTaxonName(label string) (key string, isGroup bool, ok bool) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return "", false, false
	}

	lower := strings.ToLower(trimmed)
	for _, suffix := range groupSuffixes {
		if lower == suffix {
			// A bare suffix has no genus token in front of it; fall
			// back to an exact match on the whole label.
			return trimmed, false, true
		}
		if strings.HasSuffix(lower, " "+suffix) {
			genus := strings.Fields(trimmed)[0]
			return genus, true, true
		}
	}

	return trimmed, false, true
}
