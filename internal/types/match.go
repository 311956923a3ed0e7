package types

// MatchResult records how one input row resolved against the curated
// reference: exactly one species for an exact match, every species under the
// genus for a group match.
type MatchResult struct {
	RecordIndex int    `json:"record_index"`
	Label       string `json:"label"`
	IsGroup     bool   `json:"is_group"`
	// Genus is set only for group matches.
	Genus string `json:"genus,omitempty"`
	// Species lists the matched curated species in curated-list order.
	Species []string `json:"species"`
}

// GroupStat is one group-statistics entry, emitted once per distinct group
// label encountered during matching.
type GroupStat struct {
	Group      string   `json:"group"`
	Genus      string   `json:"genus"`
	MatchCount int      `json:"match_count"`
	Species    []string `json:"species"`
}

// MatchSet is the outcome of the matching stage: the matched results in input
// order, the unmatched partition for secondary investigation, and the group
// statistics accumulator. Rows with missing labels appear in neither list.
type MatchSet struct {
	Matched    []MatchResult `json:"matched"`
	Unmatched  []InputRecord `json:"unmatched"`
	GroupStats []GroupStat   `json:"group_stats"`
}
