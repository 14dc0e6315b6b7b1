package fitness

import (
	"sort"

	"github.com/dhplan/dhplanner/metric"
)

// treeEdge is one MST edge carried forward into orientation and cost.
type treeEdge struct {
	From, To string
	Weight   float64
	RoadIDs  []string
}

// inducedMST computes the minimum spanning tree of the subgraph of mg
// induced by members, via Kruskal's algorithm with union-find: a
// disjoint-set with path compression and union by rank, edges sorted
// ascending by weight, stable sort for deterministic tie-breaking.
func inducedMST(members []string, mg *metric.Graph) ([]treeEdge, error) {
	if len(members) == 0 {
		return nil, ErrEmptyCluster
	}
	if len(members) == 1 {
		return nil, nil
	}

	memberSet := make(map[string]struct{}, len(members))
	for _, m := range members {
		memberSet[m] = struct{}{}
	}

	var candidates []*metric.Edge
	for _, e := range mg.Edges() {
		_, okA := memberSet[e.From]
		_, okB := memberSet[e.To]
		if okA && okB {
			candidates = append(candidates, e)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Weight < candidates[j].Weight })

	parent := make(map[string]string, len(members))
	rank := make(map[string]int, len(members))
	for _, m := range members {
		parent[m] = m
	}

	var find func(string) string
	find = func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	union := func(u, v string) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	mst := make([]treeEdge, 0, len(members)-1)
	for _, e := range candidates {
		if find(e.From) != find(e.To) {
			union(e.From, e.To)
			mst = append(mst, treeEdge{From: e.From, To: e.To, Weight: e.Weight, RoadIDs: e.RoadIDs})
		}
	}

	if len(mst) != len(members)-1 {
		return nil, ErrDisconnectedCluster
	}
	return mst, nil
}
