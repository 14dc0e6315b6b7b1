package kmeans_test

import (
	"math/rand"
	"testing"

	"github.com/dhplan/dhplanner/cluster/kmeans"
	"github.com/dhplan/dhplanner/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fourCorners() []kmeans.Point {
	return []kmeans.Point{
		{ID: "a0", Pos: geometry.Point{X: 0, Y: 0}, Weight: 1},
		{ID: "a1", Pos: geometry.Point{X: 1, Y: 0}, Weight: 1},
		{ID: "b0", Pos: geometry.Point{X: 100, Y: 0}, Weight: 1},
		{ID: "b1", Pos: geometry.Point{X: 101, Y: 0}, Weight: 1},
		{ID: "c0", Pos: geometry.Point{X: 0, Y: 100}, Weight: 1},
		{ID: "c1", Pos: geometry.Point{X: 1, Y: 100}, Weight: 1},
		{ID: "d0", Pos: geometry.Point{X: 100, Y: 100}, Weight: 1},
		{ID: "d1", Pos: geometry.Point{X: 101, Y: 100}, Weight: 1},
	}
}

func TestBisectingKMeans_FourClusters(t *testing.T) {
	pts := fourCorners()
	rng := rand.New(rand.NewSource(7))

	res, err := kmeans.BisectingKMeans(pts, 4, rng)
	require.NoError(t, err)

	assert.Len(t, res.Centers, 4)

	byLabel := map[int][]string{}
	for id, l := range res.Labels {
		byLabel[l] = append(byLabel[l], id)
	}
	assert.Len(t, byLabel, 4)

	var total int
	for _, members := range byLabel {
		total += len(members)
	}
	assert.Equal(t, 8, total)
}

func TestBisectingKMeans_Deterministic(t *testing.T) {
	pts := fourCorners()

	res1, err := kmeans.BisectingKMeans(pts, 4, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	res2, err := kmeans.BisectingKMeans(pts, 4, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.Equal(t, res1.Labels, res2.Labels)
}

func TestBisectingKMeans_SingleCluster(t *testing.T) {
	pts := fourCorners()
	res, err := kmeans.BisectingKMeans(pts, 1, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.Len(t, res.Centers, 1)
	for _, l := range res.Labels {
		assert.Equal(t, 0, l)
	}
}

func TestBisectingKMeans_EmptyInput(t *testing.T) {
	_, err := kmeans.BisectingKMeans(nil, 1, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, kmeans.ErrEmptyInput)
}

func TestBisectingKMeans_NonPositiveK(t *testing.T) {
	_, err := kmeans.BisectingKMeans(fourCorners(), 0, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, kmeans.ErrNonPositiveK)
}

func TestBisectingKMeans_ZeroTotalWeight(t *testing.T) {
	pts := []kmeans.Point{
		{ID: "a", Pos: geometry.Point{X: 0, Y: 0}, Weight: 0},
		{ID: "b", Pos: geometry.Point{X: 1, Y: 1}, Weight: 0},
	}
	_, err := kmeans.BisectingKMeans(pts, 1, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, kmeans.ErrZeroTotalWeight)
}
