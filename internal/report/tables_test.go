package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniela/contamination-checker/internal/types"
)

func sampleRecords() []types.ScoredRecord {
	return []types.ScoredRecord{
		{
			Match:                  types.MatchResult{RecordIndex: 0, Label: "Aspergillus sp.", IsGroup: true},
			NumLocations:           2,
			Locations:              map[string]int{"L2": 15, "L3": 20},
			Score:                  2.0,
			ContributingProperties: []string{"PropA", "PropB"},
			ScoreLabel:             "2.00 (avg)",
		},
		{
			Match:                  types.MatchResult{RecordIndex: 2, Label: "Candida albicans"},
			NumLocations:           1,
			Locations:              map[string]int{"L1": 55},
			Score:                  4.0,
			ContributingProperties: []string{"PropB", "PropC"},
			ScoreLabel:             "4.00",
		},
	}
}

func TestBuildForward(t *testing.T) {
	rows := BuildForward(sampleRecords())

	require.Len(t, rows, 2)
	assert.Equal(t, "Aspergillus sp.", rows[0].Label)
	assert.Equal(t, "2.00 (avg)", rows[0].Score)
	assert.Equal(t, 2, rows[0].NumLocations)
	assert.Equal(t, map[string]int{"L2": 15, "L3": 20}, rows[0].Locations)
	assert.Equal(t, "Candida albicans", rows[1].Label)
}

func TestBuildReverse_FirstSeenOrder(t *testing.T) {
	entries := BuildReverse(sampleRecords())

	require.Len(t, entries, 3)
	assert.Equal(t, "PropA", entries[0].Property)
	assert.Equal(t, "PropB", entries[1].Property)
	assert.Equal(t, "PropC", entries[2].Property)

	assert.Equal(t, 1, entries[0].Count)
	assert.Equal(t, []string{"Aspergillus sp."}, entries[0].Labels)

	assert.Equal(t, 2, entries[1].Count)
	assert.Equal(t, []string{"Aspergillus sp.", "Candida albicans"}, entries[1].Labels)
}

func TestBuildReverse_EmptyInput(t *testing.T) {
	assert.Empty(t, BuildReverse(nil))
}
