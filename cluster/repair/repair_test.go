package repair_test

import (
	"testing"

	"github.com/dhplan/dhplanner/assignment"
	"github.com/dhplan/dhplanner/cluster/repair"
	"github.com/dhplan/dhplanner/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// euclideanDist builds a DistanceFunc from a coordinate map, standing in
// for the metric graph distance in these unit tests.
func euclideanDist(coords map[string]geometry.Point) repair.DistanceFunc {
	return func(a, b string) float64 {
		return geometry.Dist(coords[a], coords[b])
	}
}

func TestRepair_FeasiblePartitionUnchanged(t *testing.T) {
	in := assignment.NewAssignment()
	in.AddCluster(0, "a0", []string{"a0", "a1"})
	demand := map[string]float64{"a0": 10, "a1": 10}
	coords := map[string]geometry.Point{"a0": {X: 0, Y: 0}, "a1": {X: 1, Y: 0}}

	out, err := repair.Repair(in, demand, 100, coords, euclideanDist(coords))
	require.NoError(t, err)

	require.Len(t, out.Clusters, 1)
	assert.ElementsMatch(t, []string{"a0", "a1"}, out.Clusters[0].Members)
	assert.Empty(t, out.NonMember)
}

func TestRepair_SwapsOverCapacityMemberToReceiver(t *testing.T) {
	in := assignment.NewAssignment()
	in.AddCluster(0, "a0", []string{"a0", "a1", "a2"})
	in.AddCluster(1, "b0", []string{"b0"})

	demand := map[string]float64{"a0": 10, "a1": 10, "a2": 10, "b0": 5}
	coords := map[string]geometry.Point{
		"a0": {X: 0, Y: 0}, "a1": {X: 1, Y: 0}, "a2": {X: 100, Y: 0},
		"b0": {X: 99, Y: 0},
	}

	// capacity 25: cluster 0 has 30 demand, residual -5. a2 is farthest from
	// center a0 and nearest to cluster 1 (which has plenty of residual).
	out, err := repair.Repair(in, demand, 25, coords, euclideanDist(coords))
	require.NoError(t, err)

	var c0, c1 *assignment.Cluster
	for _, c := range out.Clusters {
		if c.ID == 0 {
			c0 = c
		} else {
			c1 = c
		}
	}
	require.NotNil(t, c0)
	require.NotNil(t, c1)

	assert.NotContains(t, c0.Members, "a2")
	assert.Contains(t, c1.Members, "a2")
	assert.LessOrEqual(t, c0.TotalDemand(demand), 25.0)
}

func TestRepair_NoReceiverMovesToNonMember(t *testing.T) {
	in := assignment.NewAssignment()
	in.AddCluster(0, "a0", []string{"a0", "a1"})

	demand := map[string]float64{"a0": 10, "a1": 20}
	coords := map[string]geometry.Point{"a0": {X: 0, Y: 0}, "a1": {X: 1, Y: 0}}

	out, err := repair.Repair(in, demand, 15, coords, euclideanDist(coords))
	require.NoError(t, err)

	require.Len(t, out.Clusters, 1)
	assert.Contains(t, out.NonMember, "a1")
	assert.NotContains(t, out.Clusters[0].Members, "a1")
}

func TestRepair_ChoosesGeometricCenter(t *testing.T) {
	in := assignment.NewAssignment()
	in.AddCluster(0, "", []string{"a0", "a1", "a2"})
	demand := map[string]float64{"a0": 1, "a1": 1, "a2": 1}
	coords := map[string]geometry.Point{
		"a0": {X: 0, Y: 0}, "a1": {X: 10, Y: 0}, "a2": {X: 5, Y: 0},
	}

	out, err := repair.Repair(in, demand, 100, coords, euclideanDist(coords))
	require.NoError(t, err)
	assert.Equal(t, "a2", out.Clusters[0].Center) // centroid is (5,0), a2 is exactly there
}

func TestRepair_EmptyAssignment(t *testing.T) {
	_, err := repair.Repair(assignment.NewAssignment(), nil, 10, nil, nil)
	assert.ErrorIs(t, err, repair.ErrEmptyAssignment)
}
