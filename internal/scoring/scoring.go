package scoring

import "github.com/daniela/contamination-checker/internal/types"

// Engine computes weighted contamination scores against a curated reference.
//
// The active property list is the weight configuration filtered to properties
// that exist as curated columns, in weight-declaration order. Weighted
// properties missing from the curated reference are silently excluded rather
// than treated as errors.
type Engine struct {
	ref     *types.CuratedReference
	active  []string
	weights []float64
}

// NewEngine builds a score engine for one reference/weights pairing.
func NewEngine(ref *types.CuratedReference, weights *types.WeightConfig) *Engine {
	e := &Engine{ref: ref}
	for _, property := range weights.Properties() {
		if !ref.HasColumn(property) {
			continue
		}
		weight, _ := weights.Get(property)
		e.active = append(e.active, property)
		e.weights = append(e.weights, weight)
	}
	return e
}

// ActiveProperties returns the active property list in scoring order.
func (e *Engine) ActiveProperties() []string {
	out := make([]string, len(e.active))
	copy(out, e.active)
	return out
}

// Score fills in the weighted score and contributing-properties set for every
// record in place.
//
// Each matched species contributes the sum of its property values multiplied
// elementwise by the active weights; the row score is the arithmetic mean over
// the matched species found in the reference (species missing from the
// reference are skipped, not counted as zero). A property contributes when its
// weighted value is strictly positive for at least one matched species.
func (e *Engine) Score(records []types.ScoredRecord) {
	for i := range records {
		records[i].Score, records[i].ContributingProperties = e.scoreRow(&records[i].Match)
	}
}

func (e *Engine) scoreRow(match *types.MatchResult) (float64, []string) {
	contributing := make(map[string]bool)
	total := 0.0
	found := 0

	for _, name := range match.Species {
		sp, ok := e.ref.Lookup(name)
		if !ok {
			continue
		}
		found++

		values := make([]float64, len(e.active))
		for j, property := range e.active {
			values[j] = sp.Properties[property]
		}
		// Guard against reference/weights schema drift; with a
		// well-formed reference both vectors have equal length.
		n := len(values)
		if len(e.weights) < n {
			n = len(e.weights)
		}
		for j := 0; j < n; j++ {
			weighted := values[j] * e.weights[j]
			total += weighted
			if weighted > 0 {
				contributing[e.active[j]] = true
			}
		}
	}

	if found == 0 {
		return 0, nil
	}

	// Emit the union in active-property order so results are stable.
	var properties []string
	for _, property := range e.active {
		if contributing[property] {
			properties = append(properties, property)
		}
	}
	return total / float64(found), properties
}
