package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniela/contamination-checker/internal/types"
)

func scoringReference(t *testing.T) *types.CuratedReference {
	t.Helper()
	ref, err := types.NewCuratedReference(
		[]string{"PropA", "PropB"},
		[]types.CuratedSpecies{
			{Species: "Aspergillus niger", Properties: map[string]float64{"PropA": 1, "PropB": 0}},
			{Species: "Aspergillus oryzae", Properties: map[string]float64{"PropA": 1, "PropB": 1}},
		},
	)
	require.NoError(t, err)
	return ref
}

func scoringWeights(pairs ...any) *types.WeightConfig {
	weights := types.NewWeightConfig()
	for i := 0; i < len(pairs); i += 2 {
		switch v := pairs[i+1].(type) {
		case int:
			weights.Set(pairs[i].(string), float64(v))
		case float64:
			weights.Set(pairs[i].(string), v)
		}
	}
	return weights
}

func TestEngine_ActivePropertiesFollowWeightOrder(t *testing.T) {
	weights := scoringWeights("PropB", 2, "PropMissing", 9, "PropA", 1)
	engine := NewEngine(scoringReference(t), weights)

	// Properties absent from the curated columns are silently excluded.
	assert.Equal(t, []string{"PropB", "PropA"}, engine.ActiveProperties())
}

func TestEngine_GroupAverageScenario(t *testing.T) {
	// Curated: niger {PropA:1, PropB:0}, oryzae {PropA:1, PropB:1};
	// weights {PropA:1, PropB:2}; "Aspergillus sp." matches both.
	weights := scoringWeights("PropA", 1, "PropB", 2)
	engine := NewEngine(scoringReference(t), weights)

	records := []types.ScoredRecord{{
		Match: types.MatchResult{
			RecordIndex: 0,
			Label:       "Aspergillus sp.",
			IsGroup:     true,
			Genus:       "Aspergillus",
			Species:     []string{"Aspergillus niger", "Aspergillus oryzae"},
		},
	}}

	engine.Score(records)

	// Per-species scores are 1 and 3; the row score is their mean.
	assert.InDelta(t, 2.0, records[0].Score, 1e-9)
	assert.Equal(t, []string{"PropA", "PropB"}, records[0].ContributingProperties)
}

func TestEngine_SingleSpeciesMeanIsNoOp(t *testing.T) {
	weights := scoringWeights("PropA", 1, "PropB", 2)
	engine := NewEngine(scoringReference(t), weights)

	records := []types.ScoredRecord{{
		Match: types.MatchResult{Species: []string{"Aspergillus oryzae"}},
	}}
	engine.Score(records)

	assert.InDelta(t, 3.0, records[0].Score, 1e-9)
	assert.Equal(t, []string{"PropA", "PropB"}, records[0].ContributingProperties)
}

func TestEngine_ZeroWeightDoesNotContribute(t *testing.T) {
	weights := scoringWeights("PropA", 0, "PropB", 2)
	engine := NewEngine(scoringReference(t), weights)

	records := []types.ScoredRecord{{
		Match: types.MatchResult{Species: []string{"Aspergillus oryzae"}},
	}}
	engine.Score(records)

	assert.InDelta(t, 2.0, records[0].Score, 1e-9)
	assert.Equal(t, []string{"PropB"}, records[0].ContributingProperties)
}

func TestEngine_MissingCuratedSpeciesSkippedNotZeroed(t *testing.T) {
	weights := scoringWeights("PropA", 1, "PropB", 2)
	engine := NewEngine(scoringReference(t), weights)

	records := []types.ScoredRecord{{
		Match: types.MatchResult{Species: []string{"Aspergillus oryzae", "Aspergillus ghost"}},
	}}
	engine.Score(records)

	// The mean runs over found species only, so the score stays 3, not 1.5.
	assert.InDelta(t, 3.0, records[0].Score, 1e-9)
}

func TestEngine_NoSpeciesFoundScoresZero(t *testing.T) {
	weights := scoringWeights("PropA", 1)
	engine := NewEngine(scoringReference(t), weights)

	records := []types.ScoredRecord{{
		Match: types.MatchResult{Species: []string{"Aspergillus ghost"}},
	}}
	engine.Score(records)

	assert.Equal(t, 0.0, records[0].Score)
	assert.Empty(t, records[0].ContributingProperties)
}

func TestEngine_ZeroColumnOverlapScoresZero(t *testing.T) {
	weights := scoringWeights("Nope1", 1, "Nope2", 2)
	engine := NewEngine(scoringReference(t), weights)

	records := []types.ScoredRecord{{
		Match: types.MatchResult{Species: []string{"Aspergillus oryzae"}},
	}}
	engine.Score(records)

	assert.Empty(t, engine.ActiveProperties())
	assert.Equal(t, 0.0, records[0].Score)
}

func TestEngine_ScoreMonotonicInWeights(t *testing.T) {
	base := scoringWeights("PropA", 1, "PropB", 1)
	raised := scoringWeights("PropA", 1, "PropB", 2)

	record := func(engine *Engine) float64 {
		records := []types.ScoredRecord{{
			Match: types.MatchResult{Species: []string{"Aspergillus oryzae"}},
		}}
		engine.Score(records)
		return records[0].Score
	}

	ref := scoringReference(t)
	assert.GreaterOrEqual(t, record(NewEngine(ref, raised)), record(NewEngine(ref, base)))
}
