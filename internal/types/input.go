package types

// InputRecord is one row of caller-supplied detection data. Index is the
// original row position in the uploaded table; it is preserved through every
// pipeline stage so downstream joins and the reverse table stay correct.
type InputRecord struct {
	Index int            `json:"index"`
	Label string         `json:"label"`
	Reads map[string]int `json:"reads"`
}

// InputTable is the caller-supplied detection table: a taxon label column
// followed by one read-count column per sequencing location.
type InputTable struct {
	// LabelColumn is the original header of the first column. Any header
	// name is accepted; it is kept only for display and export.
	LabelColumn string        `json:"label_column"`
	Locations   []string      `json:"locations"`
	Records     []InputRecord `json:"records"`
}
