package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCuratedReference(t *testing.T) {
	ref, err := NewCuratedReference(
		[]string{"PropA"},
		[]CuratedSpecies{
			{Species: "Aspergillus niger", Properties: map[string]float64{"PropA": 1}},
			{Species: "Candida albicans", Properties: map[string]float64{"PropA": 0}},
		},
	)
	require.NoError(t, err)

	assert.True(t, ref.Contains("Aspergillus niger"))
	assert.False(t, ref.Contains("aspergillus niger"), "exact matching is case-sensitive")

	sp, ok := ref.Lookup("Candida albicans")
	require.True(t, ok)
	assert.Equal(t, 0.0, sp.Properties["PropA"])
}

func TestNewCuratedReference_DuplicateSpecies(t *testing.T) {
	_, err := NewCuratedReference(
		[]string{"PropA"},
		[]CuratedSpecies{
			{Species: "Aspergillus niger"},
			{Species: "Aspergillus niger"},
		},
	)
	assert.Error(t, err)
}

func TestNewCuratedReference_EmptySpeciesName(t *testing.T) {
	_, err := NewCuratedReference([]string{"PropA"}, []CuratedSpecies{{Species: ""}})
	assert.Error(t, err)
}

func TestCuratedReference_HasColumn(t *testing.T) {
	ref, err := NewCuratedReference([]string{"PropA", "PropB"}, nil)
	require.NoError(t, err)

	assert.True(t, ref.HasColumn("PropB"))
	assert.False(t, ref.HasColumn("PropC"))
}

func TestCuratedReference_LookupAfterJSONDecode(t *testing.T) {
	original, err := NewCuratedReference(
		[]string{"PropA"},
		[]CuratedSpecies{{Species: "Aspergillus niger", Properties: map[string]float64{"PropA": 1}}},
	)
	require.NoError(t, err)

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded CuratedReference
	require.NoError(t, json.Unmarshal(data, &decoded))

	// The lookup index is rebuilt lazily after decoding.
	assert.True(t, decoded.Contains("Aspergillus niger"))
}
