package fitness

// directedEdge is one MST edge oriented outward from the cluster center.
type directedEdge struct {
	From, To string // From is the parent (upstream), To the child (downstream)
	Weight   float64
	RoadIDs  []string
}

// orient roots the MST at center and returns it as directed edges plus the
// node visitation order in post-order (children before their parent), via
// a plain recursive walk over the small in-memory MST adjacency built for
// one cluster — no cancellation, depth limit, or neighbor filtering needed
// for a walk this size.
func orient(mst []treeEdge, center string) (edges []directedEdge, postOrder []string) {
	adj := make(map[string][]treeEdge)
	for _, e := range mst {
		adj[e.From] = append(adj[e.From], e)
		adj[e.To] = append(adj[e.To], treeEdge{From: e.To, To: e.From, Weight: e.Weight, RoadIDs: e.RoadIDs})
	}

	visited := map[string]bool{center: true}

	var walk func(node string)
	walk = func(node string) {
		for _, e := range adj[node] {
			if visited[e.To] {
				continue
			}
			visited[e.To] = true
			walk(e.To)
			edges = append(edges, directedEdge{From: node, To: e.To, Weight: e.Weight, RoadIDs: e.RoadIDs})
			postOrder = append(postOrder, e.To)
		}
	}
	walk(center)
	postOrder = append(postOrder, center)

	return edges, postOrder
}
