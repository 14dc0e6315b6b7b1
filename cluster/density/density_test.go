package density_test

import (
	"testing"

	"github.com/dhplan/dhplanner/cluster/density"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoDenseGroups builds two tight clusters of 3 points each plus one lone
// far-away noise point.
func twoDenseGroups(t *testing.T) ([]string, *density.DistanceMatrix, map[string]float64) {
	t.Helper()
	ids := []string{"a0", "a1", "a2", "b0", "b1", "b2", "n0"}
	coords := map[string][2]float64{
		"a0": {0, 0}, "a1": {1, 0}, "a2": {0, 1},
		"b0": {100, 100}, "b1": {101, 100}, "b2": {100, 101},
		"n0": {500, 500},
	}

	m, err := density.NewDistanceMatrix(len(ids))
	require.NoError(t, err)
	for i, a := range ids {
		for j, b := range ids {
			ca, cb := coords[a], coords[b]
			dx, dy := ca[0]-cb[0], ca[1]-cb[1]
			m.Set(i, j, dx*dx+dy*dy) // squared distance is fine as a monotone proxy here
		}
	}

	weight := map[string]float64{"a0": 1, "a1": 1, "a2": 1, "b0": 1, "b1": 1, "b2": 1, "n0": 1}
	return ids, m, weight
}

func TestRun_FindsTwoClustersDropsNoise(t *testing.T) {
	ids, m, weight := twoDenseGroups(t)
	clusters, err := density.Run(ids, m, weight, density.Options{Eps: 4, MinSamples: 2})
	require.NoError(t, err)

	require.Len(t, clusters, 2)
	var total int
	for _, members := range clusters {
		total += len(members)
		assert.GreaterOrEqual(t, len(members), 2)
	}
	assert.Equal(t, 6, total) // n0 never appears in any cluster
}

func TestRun_EmptyInput(t *testing.T) {
	m, err := density.NewDistanceMatrix(1)
	require.NoError(t, err)
	_, err = density.Run(nil, m, nil, density.Options{Eps: 1, MinSamples: 1})
	assert.ErrorIs(t, err, density.ErrEmptyInput)
}

func TestRun_NonPositiveEps(t *testing.T) {
	ids, m, weight := twoDenseGroups(t)
	_, err := density.Run(ids, m, weight, density.Options{Eps: 0, MinSamples: 1})
	assert.ErrorIs(t, err, density.ErrNonPositiveEps)
}

func TestRun_DimensionMismatch(t *testing.T) {
	ids, m, weight := twoDenseGroups(t)
	small, err := density.NewDistanceMatrix(3)
	require.NoError(t, err)
	_, err = density.Run(ids, small, weight, density.Options{Eps: 1, MinSamples: 1})
	assert.ErrorIs(t, err, density.ErrDimensionMismatch)
}

func TestRun_SingletonClusterDropped(t *testing.T) {
	ids := []string{"x0", "x1"}
	m, err := density.NewDistanceMatrix(2)
	require.NoError(t, err)
	m.Set(0, 1, 1000)
	// Each point alone meets MinSamples, so each forms its own
	// one-member cluster, which Run then drops.
	weight := map[string]float64{"x0": 2, "x1": 2}

	clusters, err := density.Run(ids, m, weight, density.Options{Eps: 1, MinSamples: 2})
	require.NoError(t, err)
	assert.Empty(t, clusters)
}
