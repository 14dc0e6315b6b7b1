package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBuildings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "buildings.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"id": "b1", "x": 0, "y": 0, "peak_demand_kw": 10, "annual_demand_kwh": 1000},
		{"id": "b2", "x": 100, "y": 0, "peak_demand_kw": 20, "annual_demand_kwh": 2000}
	]`), 0o644))

	buildings, err := loadBuildings(path)
	require.NoError(t, err)
	require.Len(t, buildings, 2)
	assert.Equal(t, "b1", buildings[0].ID)
	assert.Equal(t, 10.0, buildings[0].PeakDemandKW)
	assert.Equal(t, 100.0, buildings[1].Pos.X)
}

func TestLoadRoads_EmptyPathReturnsNil(t *testing.T) {
	roads, err := loadRoads("")
	require.NoError(t, err)
	assert.Nil(t, roads)
}

func TestLoadRoads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roads.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"id": "r1", "ax": 0, "ay": 0, "bx": 10, "by": 0, "type": "residential"}
	]`), 0o644))

	roads, err := loadRoads(path)
	require.NoError(t, err)
	require.Len(t, roads, 1)
	assert.Equal(t, "r1", roads[0].ID)
	assert.Equal(t, "residential", roads[0].Type)
	assert.Equal(t, 10.0, roads[0].B.X)
}

func TestLoadBuildings_MissingFile(t *testing.T) {
	_, err := loadBuildings("/nonexistent/buildings.json")
	assert.Error(t, err)
}
