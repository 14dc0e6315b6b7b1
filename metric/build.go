package metric

import (
	"fmt"
	"math"

	"github.com/dhplan/dhplanner/network"
)

var posInf = math.Inf(1)

// BuildMetricGraph computes G_m from the road graph: a complete graph over
// building nodes, with one Dijkstra run per building source (§4.2). Road
// types absent from multipliers (including the empty type used by
// zero-length access-point/mesh edges) default to a multiplier of 1.
func BuildMetricGraph(g *network.Graph, multipliers map[string]float64) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	buildingNodes := g.BuildingNodes()
	if len(buildingNodes) == 0 {
		return nil, ErrNoBuildingSources
	}

	ids := make([]string, len(buildingNodes))
	for i, n := range buildingNodes {
		ids[i] = n.ID
	}

	multiplier := func(roadType string) float64 {
		if roadType == "" {
			return 1.0
		}
		if m, ok := multipliers[roadType]; ok {
			return m
		}
		return 1.0
	}

	mg := newGraph(ids)
	uniformMultipliers := allUnity(multipliers)

	for i, src := range ids {
		dist, via, err := shortestPaths(g, src)
		if err != nil {
			return nil, fmt.Errorf("metric: building source %s: %w", src, err)
		}

		for j := i + 1; j < len(ids); j++ {
			dst := ids[j]
			w := dist[dst]
			if w == posInf {
				continue // unreachable pair: no edge in G_m
			}

			roadIDs, weightedSum := reconstructRoadIDs(via, src, dst, multiplier)
			e := &Edge{From: src, To: dst, Weight: w, RoadIDs: roadIDs, CostFactor: 1}
			if !uniformMultipliers && w > 0 {
				e.CostFactor = weightedSum / w
			}
			mg.setEdge(e)
		}
	}

	return mg, nil
}

// allUnity reports whether every configured multiplier equals 1, in which
// case f_ij is fixed at 1 and the weighted-sum walk can be skipped (§4.2:
// "no extra computation is performed").
func allUnity(multipliers map[string]float64) bool {
	for _, m := range multipliers {
		if m != 1 {
			return false
		}
	}
	return true
}
