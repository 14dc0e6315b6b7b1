package metric

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/dhplan/dhplanner/network"
)

// shortestPaths runs Dijkstra from source over g, returning the distance to
// every reachable node and, for each node, the incident edge used to reach
// it on the shortest path (nil for the source itself). The lazy
// decrease-key pattern below uses lazy decrease-key: stale
// heap entries are pushed rather than fixed up, and discarded on pop once a
// node is finalized.
func shortestPaths(g *network.Graph, source string) (map[string]float64, map[string]*network.Edge, error) {
	if source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, nil, fmt.Errorf("%w: %s", ErrSourceNotFound, source)
	}

	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s (%s→%s) weight=%g", ErrNegativeWeight, e.ID, e.From, e.To, e.Weight)
		}
	}

	dist := make(map[string]float64)
	via := make(map[string]*network.Edge)
	visited := make(map[string]bool)

	for _, n := range g.Nodes() {
		dist[n.ID] = math.Inf(1)
	}
	dist[source] = 0

	pq := make(nodePQ, 0, len(g.Nodes()))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.id, item.dist

		if visited[u] {
			continue
		}
		visited[u] = true

		for _, e := range g.IncidentEdges(u) {
			v := e.Other(u)
			newDist := d + e.Weight
			if newDist < dist[v] {
				dist[v] = newDist
				via[v] = e
				heap.Push(&pq, &nodeItem{id: v, dist: newDist})
			}
		}
	}

	return dist, via, nil
}

// reconstructRoadIDs walks via back from target to source, concatenating the
// RoadIDs of each traversed edge in source→target order, and returns the
// length-weighted multiplier sum needed for the cost factor.
func reconstructRoadIDs(via map[string]*network.Edge, source, target string, multiplier func(roadType string) float64) (roadIDs []string, weightedMultiplierSum float64) {
	type hop struct {
		ids    []string
		length float64
		mult   float64
	}
	var hops []hop
	cur := target
	for cur != source {
		e, ok := via[cur]
		if !ok {
			break
		}
		hops = append(hops, hop{ids: e.RoadIDs, length: e.Weight, mult: multiplier(e.RoadType)})
		cur = e.Other(cur)
	}

	// hops was collected target→source; reverse it to source→target order.
	for i := len(hops) - 1; i >= 0; i-- {
		h := hops[i]
		roadIDs = append(roadIDs, h.ids...)
		weightedMultiplierSum += h.length * h.mult
	}
	return roadIDs, weightedMultiplierSum
}

// nodeItem is a (node, distance) pair ordered by distance in the heap.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem, implementing container/heap.Interface.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
