// Package network builds the road graph G_r: road polylines and building
// centroids go in, an undirected weighted graph over road nodes and
// building nodes comes out, with buildings attached to the network
// through single-edge access points.
//
// It favors a narrower, arena-style graph purpose-built for this one
// construction pass over a general map-of-maps adjacency API built for
// concurrent mutation: nodes and edges are appended to slices and indexed
// by ID, then the graph is read-only for the rest of the pipeline
// (arena-allocated node/edge tables with indices, not pointer graphs).
package network

import "github.com/dhplan/dhplanner/internal/geometry"

// NodeKind tags the variant of a road-graph vertex (spec §3: "Road node").
type NodeKind int

const (
	// Internal is a plain road vertex with no building attached.
	Internal NodeKind = iota
	// AccessPoint is a point on the road network created by projecting a
	// building centroid onto its nearest segment and splitting it there.
	AccessPoint
	// Building is the node representing the building itself, connected to
	// its AccessPoint node by a zero-length edge.
	Building
)

// Node is a vertex of G_r.
type Node struct {
	ID  string
	Pos geometry.Point
	Kind NodeKind

	// BuildingID is set when Kind is AccessPoint (the building it serves)
	// or Building (the building itself).
	BuildingID string

	// PeakDemandKW and AnnualDemandKWh are populated only for Kind == Building.
	PeakDemandKW    float64
	AnnualDemandKWh float64
}

// Edge is an undirected, weighted connection in G_r.
type Edge struct {
	ID     string
	From   string
	To     string
	Weight float64 // length in meters; 0 for access-point→building edges

	// RoadIDs is the list of original road-segment IDs this edge derives
	// from. Empty for access-point→building edges and for the synthetic
	// building-to-building edges used by the greenfield/adjacent strategies.
	RoadIDs []string

	// RoadType carries the source segment's type tag, used to look up the
	// cost multiplier in the metric graph stage. Empty when RoadIDs is empty.
	RoadType string
}

// RoadSegment is a preprocessing-supplied road polyline, already exploded
// to exactly two points (spec §4.1 inputs).
type RoadSegment struct {
	ID       string
	A, B     geometry.Point
	Type     string
}

// Length returns the Euclidean length of the segment.
func (r RoadSegment) Length() float64 {
	return geometry.Dist(r.A, r.B)
}

// Building is a preprocessing-supplied building centroid with demand.
type Building struct {
	ID              string
	Pos             geometry.Point
	PeakDemandKW    float64
	AnnualDemandKWh float64
}

// Graph is the constructed G_r: road nodes plus one node per building.
type Graph struct {
	nodes     []*Node
	nodeIdx   map[string]int
	edges     []*Edge
	edgeIdx   map[string]int
	adjacency map[string][]string // node ID -> incident edge IDs
}

func newGraph() *Graph {
	return &Graph{
		nodeIdx:   make(map[string]int),
		edgeIdx:   make(map[string]int),
		adjacency: make(map[string][]string),
	}
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node { return g.nodes }

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []*Edge { return g.edges }

// Node looks up a node by ID.
func (g *Graph) Node(id string) (*Node, bool) {
	idx, ok := g.nodeIdx[id]
	if !ok {
		return nil, false
	}
	return g.nodes[idx], true
}

// HasNode reports whether id names a node in the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodeIdx[id]
	return ok
}

// Degree returns the number of edges incident to node id.
func (g *Graph) Degree(id string) int {
	return len(g.adjacency[id])
}

// IncidentEdges returns the edges incident to node id.
func (g *Graph) IncidentEdges(id string) []*Edge {
	ids := g.adjacency[id]
	out := make([]*Edge, 0, len(ids))
	for _, eid := range ids {
		if idx, ok := g.edgeIdx[eid]; ok {
			out = append(out, g.edges[idx])
		}
	}
	return out
}

// BuildingNodes returns the subset of nodes with Kind == Building.
func (g *Graph) BuildingNodes() []*Node {
	out := make([]*Node, 0)
	for _, n := range g.nodes {
		if n.Kind == Building {
			out = append(out, n)
		}
	}
	return out
}
