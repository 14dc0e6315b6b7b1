package fitness

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimultaneityFactor_MonotonicAndBounded(t *testing.T) {
	prev := math.Inf(1)
	for k := 1; k <= 50; k++ {
		s := simultaneityFactor(k)
		assert.Less(t, s, prev, "s(k) must be strictly decreasing")
		assert.Greater(t, s, simultA)
		assert.LessOrEqual(t, s, simultA+simultB)
		prev = s
	}
}

func TestPropagate_MassFlowConservation(t *testing.T) {
	// A 3-node star rooted at "center", with two leaves.
	edges := []directedEdge{
		{From: "center", To: "leaf1", Weight: 10},
		{From: "center", To: "leaf2", Weight: 20},
	}
	postOrder := []string{"leaf1", "leaf2", "center"}
	demand := map[string]float64{"center": 5, "leaf1": 10, "leaf2": 15}

	prop, flow := propagate(postOrder, edges, demand)

	assert.Equal(t, 1, prop.n["leaf1"])
	assert.Equal(t, 1, prop.n["leaf2"])
	assert.Equal(t, 3, prop.n["center"])
	assert.InDelta(t, 30.0, prop.d["center"], 1e-9)

	// Both edges leaving the center carry a positive mass flow.
	intoCenter := flow[[2]string{"center", "leaf1"}] + flow[[2]string{"center", "leaf2"}]
	assert.Greater(t, intoCenter, 0.0)
}

func TestInducedMST_SingleMember(t *testing.T) {
	mst, err := inducedMST([]string{"a"}, nil)
	assert.NoError(t, err)
	assert.Nil(t, mst)
}

func TestInducedMST_EmptyErrors(t *testing.T) {
	_, err := inducedMST(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyCluster)
}

func TestOrient_PostOrderEndsAtCenter(t *testing.T) {
	mst := []treeEdge{
		{From: "center", To: "a", Weight: 1},
		{From: "a", To: "b", Weight: 1},
	}
	edges, postOrder := orient(mst, "center")
	assert.Len(t, edges, 2)
	assert.Equal(t, "center", postOrder[len(postOrder)-1])
	assert.Equal(t, "b", postOrder[0])
}
