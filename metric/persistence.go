package metric

import (
	"encoding/json"
	"io"
)

// snapshotEdge is the on-disk shape of one metric-graph edge (§6: "Serialized
// metric graph: JSON with nodes ... and edges (source, target, weight,
// edge_ids list, optional cost factor)").
type snapshotEdge struct {
	Source     string   `json:"source"`
	Target     string   `json:"target"`
	Weight     float64  `json:"weight"`
	EdgeIDs    []string `json:"edge_ids"`
	CostFactor float64  `json:"cost_factor,omitempty"`
}

type snapshot struct {
	Nodes []string       `json:"nodes"`
	Edges []snapshotEdge `json:"edges"`
}

// Save serializes G_m to w as JSON for warm restarts.
func (g *Graph) Save(w io.Writer) error {
	snap := snapshot{Nodes: g.nodes}
	for _, e := range g.Edges() {
		snap.Edges = append(snap.Edges, snapshotEdge{
			Source: e.From, Target: e.To, Weight: e.Weight,
			EdgeIDs: e.RoadIDs, CostFactor: e.CostFactor,
		})
	}
	return json.NewEncoder(w).Encode(snap)
}

// Load reconstructs a Graph previously written by Save.
func Load(r io.Reader) (*Graph, error) {
	var snap snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, err
	}

	g := newGraph(snap.Nodes)
	for _, se := range snap.Edges {
		g.setEdge(&Edge{
			From: se.Source, To: se.Target, Weight: se.Weight,
			RoadIDs: se.EdgeIDs, CostFactor: se.CostFactor,
		})
	}
	return g, nil
}
