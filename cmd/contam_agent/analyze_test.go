package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetAnalyzeFlags restores the analyze flag state between tests, since the
// flag variables and pflag's Changed markers are package-level.
func resetAnalyzeFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		analyzeInput = ""
		analyzeConfig = ""
		analyzeDataDir = ""
		analyzeCurated = ""
		analyzeVariant = ""
		analyzeWeights = ""
		analyzeScoreThreshold = 0
		analyzeReadsThreshold = 0
		analyzeReconcile = false
		analyzeVerbose = false
		for _, name := range []string{"score-threshold", "reads-threshold"} {
			flag := analyzeCmd.Flags().Lookup(name)
			require.NotNil(t, flag)
			flag.Changed = false
		}
	})
}

func writeAnalyzeFixtures(t *testing.T, configJSON string) (inputPath, configPath string) {
	t.Helper()
	dir := t.TempDir()

	inputPath = filepath.Join(dir, "input.csv")
	require.NoError(t, os.WriteFile(inputPath, []byte("#Datasets,L1\nAspergillus niger,50\n"), 0644))

	if configJSON != "" {
		configPath = filepath.Join(dir, "config.json")
		require.NoError(t, os.WriteFile(configPath, []byte(configJSON), 0644))
	}
	return inputPath, configPath
}

func TestResolveAnalyzeConfig_ConfigFileThresholds(t *testing.T) {
	resetAnalyzeFlags(t)
	analyzeInput, analyzeConfig = writeAnalyzeFixtures(t, `{"score_threshold": 5, "reads_threshold": 50}`)

	cfg, err := resolveAnalyzeConfig(analyzeCmd)
	require.NoError(t, err)

	assert.Equal(t, 5.0, cfg.ScoreThreshold)
	assert.Equal(t, 50, cfg.ReadsThreshold)
}

func TestResolveAnalyzeConfig_FallbackThresholds(t *testing.T) {
	resetAnalyzeFlags(t)
	analyzeInput, _ = writeAnalyzeFixtures(t, "")

	cfg, err := resolveAnalyzeConfig(analyzeCmd)
	require.NoError(t, err)

	assert.Equal(t, float64(defaultScoreThreshold), cfg.ScoreThreshold)
	assert.Equal(t, defaultReadsThreshold, cfg.ReadsThreshold)
}

func TestResolveAnalyzeConfig_ExplicitFlagBeatsConfigFile(t *testing.T) {
	resetAnalyzeFlags(t)
	analyzeInput, analyzeConfig = writeAnalyzeFixtures(t, `{"score_threshold": 5, "reads_threshold": 50}`)

	require.NoError(t, analyzeCmd.Flags().Set("score-threshold", "2"))
	require.NoError(t, analyzeCmd.Flags().Set("reads-threshold", "0"))

	cfg, err := resolveAnalyzeConfig(analyzeCmd)
	require.NoError(t, err)

	assert.Equal(t, 2.0, cfg.ScoreThreshold)
	// An explicit zero survives both the config file and the fallback.
	assert.Equal(t, 0, cfg.ReadsThreshold)
}

func TestResolveAnalyzeConfig_MissingInput(t *testing.T) {
	resetAnalyzeFlags(t)

	_, err := resolveAnalyzeConfig(analyzeCmd)
	assert.Error(t, err)
}
