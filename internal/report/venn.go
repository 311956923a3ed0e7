package report

import "github.com/daniela/contamination-checker/internal/types"

// Membership indexes which records each property contributed to, keyed by the
// record's original row index. Callers rendering two- or three-set
// comparisons build their subsets from these sets; rendering itself is
// outside the engine. With fewer than two distinct properties there is
// nothing to compare, which callers detect from Properties.
type Membership struct {
	properties []string
	rows       map[string]map[int]bool
}

// BuildMembership indexes the threshold survivors by contributing property,
// property order = first seen across the forward rows.
func BuildMembership(records []types.ScoredRecord) *Membership {
	m := &Membership{rows: make(map[string]map[int]bool)}
	for _, record := range records {
		for _, property := range record.ContributingProperties {
			set, ok := m.rows[property]
			if !ok {
				set = make(map[int]bool)
				m.rows[property] = set
				m.properties = append(m.properties, property)
			}
			set[record.Match.RecordIndex] = true
		}
	}
	return m
}

// Properties returns the distinct contributing properties in first-seen order.
func (m *Membership) Properties() []string {
	out := make([]string, len(m.properties))
	copy(out, m.properties)
	return out
}

// Rows returns the set of original row indices the property contributed to.
// The returned map is shared; callers must not mutate it.
func (m *Membership) Rows(property string) map[int]bool {
	return m.rows[property]
}

// Count returns how many records a property contributed to.
func (m *Membership) Count(property string) int {
	return len(m.rows[property])
}
