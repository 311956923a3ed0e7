package types

// Outcome tags an analysis result so callers can tell an empty table apart
// from a run where nothing matched at all.
type Outcome string

const (
	// OutcomeOK means at least one row passed both thresholds.
	OutcomeOK Outcome = "ok"
	// OutcomeNoMatches means no row survived matching and location filtering.
	OutcomeNoMatches Outcome = "no_matches"
	// OutcomeBelowThreshold means rows matched but all scored below the
	// score threshold.
	OutcomeBelowThreshold Outcome = "below_threshold"
)

// ScoredRecord is a matched row carried through location filtering and
// scoring: presence stats, the weighted score, and the properties whose
// weighted contribution was strictly positive for at least one matched
// species.
type ScoredRecord struct {
	Match        MatchResult    `json:"match"`
	NumLocations int            `json:"num_locations"`
	Locations    map[string]int `json:"locations"`
	Score        float64        `json:"score"`
	// ContributingProperties is ordered by the active property list, so it
	// is stable across runs.
	ContributingProperties []string `json:"contributing_properties"`
	// ScoreLabel is the display form: "2.00" or "2.00 (avg)" for groups.
	ScoreLabel string `json:"score_label"`
}

// ForwardRow is one row of the forward table (record → score and evidence).
type ForwardRow struct {
	Label                  string         `json:"label"`
	Score                  string         `json:"score"`
	ContributingProperties []string       `json:"contributing_properties"`
	NumLocations           int            `json:"num_locations"`
	Locations              map[string]int `json:"locations"`
}

// ReverseEntry is one row of the reverse table (property → records it
// contributed to).
type ReverseEntry struct {
	Property string   `json:"property"`
	Count    int      `json:"count"`
	Labels   []string `json:"labels"`
}

// AnalysisResult is the full result bundle of one pipeline invocation.
type AnalysisResult struct {
	Outcome Outcome `json:"outcome"`
	// LabelColumn is the original header of the input's taxon label column,
	// carried through for display and export.
	LabelColumn string `json:"label_column"`
	// TotalMatches counts rows that matched the reference and had at least
	// one qualifying location, before score thresholding.
	TotalMatches int `json:"total_matches"`
	// ThresholdRows counts rows that also passed the score threshold.
	ThresholdRows int            `json:"threshold_rows"`
	Table         []ForwardRow   `json:"table"`
	ReverseTable  []ReverseEntry `json:"reverse_table"`
	GroupStats    []GroupStat    `json:"group_stats"`
	// Unmatched is the partition of rows that resolved to no curated
	// species, exposed for follow-up outside the engine.
	Unmatched []InputRecord `json:"unmatched"`
	// ReplacedLabels records reconciliation rewrites as curated name →
	// original label. Empty unless reconciliation was requested.
	ReplacedLabels map[string]string `json:"replaced_labels,omitempty"`
}
