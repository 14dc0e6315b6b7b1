package fitness_test

import (
	"math"
	"strings"
	"testing"

	"github.com/dhplan/dhplanner/assignment"
	"github.com/dhplan/dhplanner/catalogue"
	"github.com/dhplan/dhplanner/fitness"
	"github.com/dhplan/dhplanner/internal/geometry"
	"github.com/dhplan/dhplanner/metric"
	"github.com/dhplan/dhplanner/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalogueAndPrices(t *testing.T) (*catalogue.Catalogue, catalogue.PriceTable) {
	t.Helper()
	const table = "Volumenstrom DN25 DN32 DN40\n" +
		"kg/s Pa/m Pa/m Pa/m\n" +
		"0,5 150 80 40\n" +
		"1,0 280 160 90\n" +
		"2,0 – 260 150\n"
	cat, err := catalogue.Parse(strings.NewReader(table))
	require.NoError(t, err)
	prices := catalogue.PriceTable{
		"DN25": {Type: catalogue.Uno, OuterDiameterM: 0.025, PricePerMeter: 40},
		"DN32": {Type: catalogue.Uno, OuterDiameterM: 0.032, PricePerMeter: 55},
		"DN40": {Type: catalogue.Duo, OuterDiameterM: 0.040, PricePerMeter: 70},
	}
	return cat, prices
}

// triangleMetricGraph builds the greenfield (complete Euclidean) metric
// graph for spec §8 seed scenario 1: three buildings at (0,0), (100,0),
// (50,87), each demanding 10 kW.
func triangleMetricGraph(t *testing.T) *metric.Graph {
	t.Helper()
	buildings := []network.Building{
		{ID: "b0", Pos: geometry.Point{X: 0, Y: 0}, PeakDemandKW: 10},
		{ID: "b1", Pos: geometry.Point{X: 100, Y: 0}, PeakDemandKW: 10},
		{ID: "b2", Pos: geometry.Point{X: 50, Y: 87}, PeakDemandKW: 10},
	}
	g, err := network.NewBuilder(network.Greenfield).Build(nil, buildings)
	require.NoError(t, err)
	mg, err := metric.BuildMetricGraph(g, nil)
	require.NoError(t, err)
	return mg
}

func TestClusterFitness_Triangle(t *testing.T) {
	mg := triangleMetricGraph(t)
	cat, prices := sampleCatalogueAndPrices(t)
	demand := map[string]float64{"b0": 10, "b1": 10, "b2": 10}

	c := &assignment.Cluster{ID: 0, Center: "b2", Members: []string{"b0", "b1", "b2"}}
	f, err := fitness.ClusterFitness(c, mg, demand, cat, prices)
	require.NoError(t, err)
	assert.Greater(t, f, 0.0)
	assert.False(t, math.IsInf(f, 1))
}

func TestClusterBreakdown_Triangle(t *testing.T) {
	mg := triangleMetricGraph(t)
	cat, prices := sampleCatalogueAndPrices(t)
	demand := map[string]float64{"b0": 10, "b1": 10, "b2": 10}

	c := &assignment.Cluster{ID: 0, Center: "b2", Members: []string{"b0", "b1", "b2"}}
	res, err := fitness.ClusterBreakdown(c, mg, demand, cat, prices)
	require.NoError(t, err)

	assert.Len(t, res.Edges, 2) // MST of 3 nodes has 2 edges
	assert.InDelta(t, 30.0, res.SuppliedPowerKW, 1e-9)
	assert.InDelta(t, res.Fitness, res.TotalCost/res.SuppliedPowerKW, 1e-9)
	for _, e := range res.Edges {
		assert.Greater(t, e.MassFlowKgS, 0.0)
		assert.NotEmpty(t, e.PipeClass)
	}
}

func TestClusterFitness_TwoBuildingClusterSplitsToSingles(t *testing.T) {
	// Spec §8 scenario 2: A (demand 40) and B (demand 70) joined by a
	// 50m road; the expected upstream outcome is two single-building
	// clusters, each costing FIXED_COST/demand.
	demand := map[string]float64{"a": 40, "b": 70}

	ca := &assignment.Cluster{ID: 0, Center: "a", Members: []string{"a"}}
	cb := &assignment.Cluster{ID: 1, Center: "b", Members: []string{"b"}}

	fa, err := fitness.ClusterFitness(ca, nil, demand, nil, nil)
	require.NoError(t, err)
	assert.InDelta(t, fitness.FixedCostPerCluster/40.0, fa, 1e-9)

	fb, err := fitness.ClusterFitness(cb, nil, demand, nil, nil)
	require.NoError(t, err)
	assert.InDelta(t, fitness.FixedCostPerCluster/70.0, fb, 1e-9)
}

func TestClusterFitness_NonPositiveDemandIsConstraintBroken(t *testing.T) {
	c := &assignment.Cluster{ID: 0, Center: "a", Members: []string{"a"}}
	f, err := fitness.ClusterFitness(c, nil, map[string]float64{"a": 0}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, fitness.ConstraintBrokenPenalty, f)
}

func TestClusterFitness_CatalogueMissIsConstraintBroken(t *testing.T) {
	// Spec §8 scenario 5: cumulative mass flow exceeds every catalogue row.
	mg := triangleMetricGraph(t)
	cat, prices := sampleCatalogueAndPrices(t)
	demand := map[string]float64{"b0": 1e9, "b1": 1e9, "b2": 1e9}

	c := &assignment.Cluster{ID: 0, Center: "b2", Members: []string{"b0", "b1", "b2"}}
	f, err := fitness.ClusterFitness(c, mg, demand, cat, prices)
	require.NoError(t, err)
	assert.Equal(t, fitness.ConstraintBrokenPenalty, f)
}

func TestClusterFitness_EmptyClusterErrors(t *testing.T) {
	c := &assignment.Cluster{ID: 0}
	_, err := fitness.ClusterFitness(c, nil, nil, nil, nil)
	assert.ErrorIs(t, err, fitness.ErrEmptyCluster)
}

func TestClusterFitness_CenterNotMemberErrors(t *testing.T) {
	c := &assignment.Cluster{ID: 0, Center: "x", Members: []string{"a"}}
	_, err := fitness.ClusterFitness(c, nil, map[string]float64{"a": 10}, nil, nil)
	assert.ErrorIs(t, err, fitness.ErrMissingCenter)
}

func TestEvaluate_SumsClusterContributions(t *testing.T) {
	demand := map[string]float64{"a": 40, "b": 70}
	a := assignment.NewAssignment()
	a.AddCluster(0, "a", []string{"a"})
	a.AddCluster(1, "b", []string{"b"})

	total, err := fitness.Evaluate(a, nil, demand, nil, nil)
	require.NoError(t, err)
	expected := fitness.FixedCostPerCluster/40.0 + fitness.FixedCostPerCluster/70.0
	assert.InDelta(t, expected, total, 1e-9)
}
