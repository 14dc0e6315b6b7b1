package metric_test

import (
	"bytes"
	"testing"

	"github.com/dhplan/dhplanner/internal/geometry"
	"github.com/dhplan/dhplanner/metric"
	"github.com/dhplan/dhplanner/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func straightStreetGraph(t *testing.T) *network.Graph {
	t.Helper()
	roads := []network.RoadSegment{
		{ID: "r0", A: geometry.Point{X: 0, Y: 0}, B: geometry.Point{X: 100, Y: 0}, Type: "residential"},
	}
	buildings := []network.Building{
		{ID: "b0", Pos: geometry.Point{X: 10, Y: 5}, PeakDemandKW: 10},
		{ID: "b1", Pos: geometry.Point{X: 50, Y: -5}, PeakDemandKW: 20},
		{ID: "b2", Pos: geometry.Point{X: 90, Y: 5}, PeakDemandKW: 15},
	}
	g, err := network.NewBuilder(network.StreetFollowing).Build(roads, buildings)
	require.NoError(t, err)
	return g
}

func TestBuildMetricGraph_CompleteOverBuildings(t *testing.T) {
	g := straightStreetGraph(t)
	mg, err := metric.BuildMetricGraph(g, nil)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"b0", "b1", "b2"}, mg.Nodes())
	for _, pair := range [][2]string{{"b0", "b1"}, {"b1", "b2"}, {"b0", "b2"}} {
		_, ok := mg.Edge(pair[0], pair[1])
		assert.True(t, ok, "expected edge between %s and %s", pair[0], pair[1])
	}
}

func TestBuildMetricGraph_ShortestPathConsistency(t *testing.T) {
	// Access points at x=10, x=50, x=90 on a 100m straight street: the
	// shortest path b0->b2 runs along the road between the two projections,
	// 80m, plus two zero-length access edges.
	g := straightStreetGraph(t)
	mg, err := metric.BuildMetricGraph(g, nil)
	require.NoError(t, err)

	e, ok := mg.Edge("b0", "b2")
	require.True(t, ok)
	assert.InDelta(t, 80.0, e.Weight, 1e-6)
}

func TestBuildMetricGraph_TriangleInequality(t *testing.T) {
	g := straightStreetGraph(t)
	mg, err := metric.BuildMetricGraph(g, nil)
	require.NoError(t, err)

	nodes := mg.Nodes()
	const eps = 1e-9
	for _, i := range nodes {
		for _, j := range nodes {
			for _, k := range nodes {
				if i == j || j == k || i == k {
					continue
				}
				eij, _ := mg.Edge(i, j)
				ejk, _ := mg.Edge(j, k)
				eik, _ := mg.Edge(i, k)
				if eij == nil || ejk == nil || eik == nil {
					continue
				}
				assert.GreaterOrEqual(t, eij.Weight+ejk.Weight, eik.Weight-eps)
			}
		}
	}
}

func TestBuildMetricGraph_CostFactorUnityWhenNoMultipliers(t *testing.T) {
	g := straightStreetGraph(t)
	mg, err := metric.BuildMetricGraph(g, nil)
	require.NoError(t, err)

	for _, e := range mg.Edges() {
		assert.Equal(t, 1.0, e.CostFactor)
		assert.Equal(t, e.Weight, e.CostWeight())
	}
}

func TestBuildMetricGraph_CostFactorAppliesMultiplier(t *testing.T) {
	g := straightStreetGraph(t)
	mg, err := metric.BuildMetricGraph(g, map[string]float64{"residential": 2.0})
	require.NoError(t, err)

	e, ok := mg.Edge("b0", "b2")
	require.True(t, ok)
	assert.InDelta(t, 2.0, e.CostFactor, 1e-9)
	assert.InDelta(t, e.Weight*2.0, e.CostWeight(), 1e-6)
}

func TestBuildMetricGraph_NilGraph(t *testing.T) {
	_, err := metric.BuildMetricGraph(nil, nil)
	assert.ErrorIs(t, err, metric.ErrNilGraph)
}

func TestMetricGraph_SaveLoadRoundTrip(t *testing.T) {
	g := straightStreetGraph(t)
	mg, err := metric.BuildMetricGraph(g, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, mg.Save(&buf))

	loaded, err := metric.Load(&buf)
	require.NoError(t, err)

	assert.ElementsMatch(t, mg.Nodes(), loaded.Nodes())
	for _, e := range mg.Edges() {
		got, ok := loaded.Edge(e.From, e.To)
		require.True(t, ok)
		assert.InDelta(t, e.Weight, got.Weight, 1e-9)
	}
}
