package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dhplan/dhplanner/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsOnly(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "street-following", cfg.InstallationStrategy)
	assert.Equal(t, 1000.0, cfg.HeatCapacity)
	assert.Equal(t, "single", cfg.PivotStrategy)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("heat-capacity: 2500\npivot-strategy: none\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2500.0, cfg.HeatCapacity)
	assert.Equal(t, "none", cfg.PivotStrategy)
	assert.Equal(t, "street-following", cfg.InstallationStrategy) // untouched default
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("heat-capacity: 2500\n"), 0o644))

	t.Setenv("DHPLANNER_HEAT_CAPACITY", "4000")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4000.0, cfg.HeatCapacity)
}

func TestLoad_MissingFileIsFatal(t *testing.T) {
	_, err := config.Load("/nonexistent/config.yaml")
	assert.ErrorIs(t, err, config.ErrConfigFileNotFound)
}

func TestValidate_RejectsUnknownEnums(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	cfg.PivotStrategy = "double"
	assert.Error(t, cfg.Validate())

	cfg.PivotStrategy = "single"
	cfg.InstallationStrategy = "bogus"
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsNonPositiveHeatCapacity(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.HeatCapacity = 0
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidValue)
}

func TestStreetTypeMultiplier_DefaultsToOne(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 1.0, cfg.StreetTypeMultiplier("residential"))

	cfg.StreetTypeMultipliers = map[string]float64{"highway": 1.5}
	assert.Equal(t, 1.5, cfg.StreetTypeMultiplier("highway"))
	assert.Equal(t, 1.0, cfg.StreetTypeMultiplier("unlisted"))
}

func TestMinSamplesAndShrinkFraction(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.HeatCapacity = 1000
	cfg.MinimumHeatCapacityExhaustion = 10
	assert.Equal(t, 100.0, cfg.MinSamples())

	cfg.DecreaseMaxClustersToFindPctg = 20
	assert.InDelta(t, 0.2, cfg.ShrinkFraction(), 1e-12)
}
