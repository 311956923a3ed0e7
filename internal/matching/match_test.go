package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniela/contamination-checker/internal/types"
)

func testReference(t *testing.T) *types.CuratedReference {
	t.Helper()
	ref, err := types.NewCuratedReference(
		[]string{"PropA"},
		[]types.CuratedSpecies{
			{Species: "Aspergillus niger", Properties: map[string]float64{"PropA": 1}},
			{Species: "Aspergillus oryzae", Properties: map[string]float64{"PropA": 1}},
			{Species: "Aspergilloides foo", Properties: map[string]float64{"PropA": 1}},
			{Species: "Candida albicans", Properties: map[string]float64{"PropA": 1}},
		},
	)
	require.NoError(t, err)
	return ref
}

func inputTable(labels ...string) *types.InputTable {
	table := &types.InputTable{LabelColumn: "#Datasets", Locations: []string{"loc1"}}
	for i, label := range labels {
		table.Records = append(table.Records, types.InputRecord{
			Index: i,
			Label: label,
			Reads: map[string]int{"loc1": 100},
		})
	}
	return table
}

func TestMatch_ExactMatch(t *testing.T) {
	set := Match(inputTable("Candida albicans"), testReference(t))

	require.Len(t, set.Matched, 1)
	assert.Equal(t, []string{"Candida albicans"}, set.Matched[0].Species)
	assert.False(t, set.Matched[0].IsGroup)
	assert.Empty(t, set.Unmatched)
}

func TestMatch_ExactMatchIsCaseSensitive(t *testing.T) {
	set := Match(inputTable("candida albicans"), testReference(t))

	assert.Empty(t, set.Matched)
	require.Len(t, set.Unmatched, 1)
}

func TestMatch_GroupMatchesGenusPrefixOnly(t *testing.T) {
	set := Match(inputTable("Aspergillus sp."), testReference(t))

	require.Len(t, set.Matched, 1)
	match := set.Matched[0]
	assert.True(t, match.IsGroup)
	assert.Equal(t, "Aspergillus", match.Genus)
	// "Aspergilloides foo" shares the prefix but not the delimited genus.
	assert.Equal(t, []string{"Aspergillus niger", "Aspergillus oryzae"}, match.Species)
}

func TestMatch_GroupMatchIsCaseInsensitive(t *testing.T) {
	set := Match(inputTable("ASPERGILLUS spp."), testReference(t))

	require.Len(t, set.Matched, 1)
	assert.Equal(t, []string{"Aspergillus niger", "Aspergillus oryzae"}, set.Matched[0].Species)
}

func TestMatch_GroupWithNoCuratedSpeciesIsUnmatched(t *testing.T) {
	set := Match(inputTable("Rhizopus sp."), testReference(t))

	assert.Empty(t, set.Matched)
	require.Len(t, set.Unmatched, 1)
	assert.Equal(t, "Rhizopus sp.", set.Unmatched[0].Label)
}

func TestMatch_BlankLabelInNeitherPartition(t *testing.T) {
	set := Match(inputTable("", "   ", "Candida albicans"), testReference(t))

	assert.Len(t, set.Matched, 1)
	assert.Empty(t, set.Unmatched)
}

func TestMatch_GroupStatsDeduplicatedByLabel(t *testing.T) {
	set := Match(inputTable("Aspergillus sp.", "Aspergillus sp.", "Aspergillus spp."), testReference(t))

	assert.Len(t, set.Matched, 3)
	require.Len(t, set.GroupStats, 2, "identical group labels collapse, distinct spellings do not")
	assert.Equal(t, "Aspergillus sp.", set.GroupStats[0].Group)
	assert.Equal(t, 2, set.GroupStats[0].MatchCount)
	assert.Equal(t, "Aspergillus spp.", set.GroupStats[1].Group)
}

func TestMatch_PreservesRecordIndices(t *testing.T) {
	set := Match(inputTable("nope", "Candida albicans"), testReference(t))

	require.Len(t, set.Matched, 1)
	assert.Equal(t, 1, set.Matched[0].RecordIndex)
	require.Len(t, set.Unmatched, 1)
	assert.Equal(t, 0, set.Unmatched[0].Index)
}
