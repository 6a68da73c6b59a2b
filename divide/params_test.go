package divide

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParams_ReferenceValues(t *testing.T) {
	p := DefaultParams()

	assert.Equal(t, 1.0, p.MaxScoreDiff)
	assert.Equal(t, 1.0, p.MaxSubjectScoreDiff)
	assert.Equal(t, 5, p.MaxClassSizeDiff)
	assert.Equal(t, 0.1, p.MaxGenderRatioDiff)
	assert.Equal(t, 1e9, p.TotalScorePenaltyWeight)
	assert.Equal(t, 1e11, p.GenderRatioPenaltyWeight)
	assert.Equal(t, 6, p.PenaltyPower)
	assert.Equal(t, 5000.0, p.GenderVarianceWeight)
	assert.Equal(t, 10_000.0, p.InitialTemperature)
	assert.Equal(t, 0.99990, p.CoolingRate)
	assert.Equal(t, 0.4, p.SameGenderSwapProb)
	assert.Equal(t, 1.0, p.GoodSolutionThreshold)
	assert.Equal(t, 1000, p.ReheatAfterIterations)
	assert.Equal(t, 0.5, p.ReheatTemperatureFactor)
	assert.Equal(t, 100, p.ReheatMinAcceptCount)
}

func TestAdaptiveParams_ScalesWithPopulation(t *testing.T) {
	small := AdaptiveParams(500)
	assert.Equal(t, DefaultParams(), small)

	large := AdaptiveParams(1500)
	assert.Equal(t, 20_000.0, large.InitialTemperature)
	assert.Equal(t, 0.99991, large.CoolingRate)

	huge := AdaptiveParams(3000)
	assert.Equal(t, 30_000.0, huge.InitialTemperature)
	assert.Equal(t, 0.99992, huge.CoolingRate)
}

func TestLoadParams_OverlaysOnlyPresentFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.yaml")
	content := "max_score_diff: 2.5\ncooling_rate: 0.995\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	p, err := LoadParams(path)
	require.NoError(t, err)

	assert.Equal(t, 2.5, p.MaxScoreDiff)
	assert.Equal(t, 0.995, p.CoolingRate)
	// Untouched fields keep their defaults.
	assert.Equal(t, 0.1, p.MaxGenderRatioDiff)
	assert.Equal(t, 6, p.PenaltyPower)
}

func TestLoadParams_MissingFile_Errors(t *testing.T) {
	_, err := LoadParams(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDivideConfig_Builders(t *testing.T) {
	cfg := NewDivideConfig(6).WithIterations(123).WithSeed(9).WithParams(StrictParams())

	assert.Equal(t, 6, cfg.NumClasses)
	assert.Equal(t, 123, cfg.MaxIterations)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, 0.5, cfg.Params.MaxScoreDiff)
}
