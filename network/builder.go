package network

import (
	"fmt"
	"sort"

	"github.com/dhplan/dhplanner/internal/geometry"
	"github.com/dhplan/dhplanner/internal/idseq"
)

// Strategy selects how building-to-network connectivity is derived,
// dispatched at the edge per §9 ("tagged variants, not inheritance").
type Strategy int

const (
	// StreetFollowing attaches buildings to the road network via access
	// points and splits segments there (the default, §4.1).
	StreetFollowing Strategy = iota
	// Greenfield replaces G_r with the complete Euclidean graph on buildings.
	Greenfield
	// Adjacent runs StreetFollowing and additionally adds direct
	// building-to-building Euclidean edges.
	Adjacent
)

// ParseStrategy maps a configuration string to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "street-following", "":
		return StreetFollowing, nil
	case "greenfield":
		return Greenfield, nil
	case "adjacent":
		return Adjacent, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// BuilderOption configures a Builder before Build runs.
type BuilderOption func(*Builder)

// WithExcludedFClasses drops road segments whose Type is in the given set
// before any construction happens (`excluded-road-fclasses`).
func WithExcludedFClasses(types ...string) BuilderOption {
	return func(b *Builder) {
		for _, t := range types {
			b.excluded[t] = struct{}{}
		}
	}
}

// splitTolerance is the minimum segment length eligible for splitting; a
// segment shorter than this is kept intact per §4.1's edge case.
const splitTolerance = 1e-6

// Builder constructs G_r from road segments and buildings under a Strategy.
type Builder struct {
	strategy Strategy
	excluded map[string]struct{}
}

// NewBuilder creates a Builder for the given strategy.
func NewBuilder(strategy Strategy, opts ...BuilderOption) *Builder {
	b := &Builder{strategy: strategy, excluded: make(map[string]struct{})}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build runs the configured strategy over roads and buildings, returning G_r.
func (b *Builder) Build(roads []RoadSegment, buildings []Building) (*Graph, error) {
	if len(buildings) == 0 {
		return nil, ErrNoBuildings
	}
	seen := make(map[string]struct{}, len(buildings))
	for _, bd := range buildings {
		if _, dup := seen[bd.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateBuildingID, bd.ID)
		}
		seen[bd.ID] = struct{}{}
	}

	switch b.strategy {
	case Greenfield:
		return b.buildGreenfield(buildings)
	case Adjacent:
		g, err := b.buildStreetFollowing(roads, buildings)
		if err != nil {
			return nil, err
		}
		b.addBuildingMesh(g, buildings)
		return g, nil
	default:
		return b.buildStreetFollowing(roads, buildings)
	}
}

// buildGreenfield makes G_r the complete Euclidean graph on buildings —
// no road nodes exist at all.
func (b *Builder) buildGreenfield(buildings []Building) (*Graph, error) {
	g := newGraph()
	for _, bd := range buildings {
		g.addNode(&Node{
			ID: bd.ID, Pos: bd.Pos, Kind: Building, BuildingID: bd.ID,
			PeakDemandKW: bd.PeakDemandKW, AnnualDemandKWh: bd.AnnualDemandKWh,
		})
	}
	b.addBuildingMesh(g, buildings)
	return g, nil
}

// addBuildingMesh adds a direct Euclidean edge between every pair of
// buildings (used by Greenfield fully, and by Adjacent alongside roads).
func (b *Builder) addBuildingMesh(g *Graph, buildings []Building) {
	seq := idseq.New("bb")
	for i := 0; i < len(buildings); i++ {
		for j := i + 1; j < len(buildings); j++ {
			w := geometry.Dist(buildings[i].Pos, buildings[j].Pos)
			g.addEdge(seq.Next(), buildings[i].ID, buildings[j].ID, w, nil, "")
		}
	}
}

// filterRoads drops segments whose Type is excluded and reports ErrNoRoads
// when none remain. Segment lengths are not checked here; zero-length
// segments pass through.
func (b *Builder) filterRoads(roads []RoadSegment) ([]RoadSegment, error) {
	out := make([]RoadSegment, 0, len(roads))
	for _, r := range roads {
		if _, excl := b.excluded[r.Type]; excl {
			continue
		}
		out = append(out, r)
	}
	if len(out) == 0 {
		return nil, ErrNoRoads
	}
	return out, nil
}

// buildStreetFollowing implements §4.1: access-point synthesis, segment
// splitting, and zero-length building edges.
func (b *Builder) buildStreetFollowing(roads []RoadSegment, buildings []Building) (*Graph, error) {
	segs, err := b.filterRoads(roads)
	if err != nil {
		return nil, err
	}

	g := newGraph()
	coordNode := make(map[geometry.Point]string) // coalesce by exact coordinate
	edgeSeq := idseq.New("r")

	getOrCreateInternal := func(p geometry.Point) string {
		if id, ok := coordNode[p]; ok {
			return id
		}
		id := fmt.Sprintf("n%d", len(coordNode))
		coordNode[p] = id
		g.addNode(&Node{ID: id, Pos: p, Kind: Internal})
		return id
	}

	// Seed nodes for every segment endpoint up front so unaffected segments
	// can be wired immediately.
	for _, r := range segs {
		getOrCreateInternal(r.A)
		getOrCreateInternal(r.B)
	}

	type accessPoint struct {
		building Building
		t        float64
		proj     geometry.Point
	}
	bySeg := make(map[string][]accessPoint)

	for _, bd := range buildings {
		bestIdx := -1
		bestDist := 0.0
		var bestProj geometry.Point
		var bestT float64
		for i, r := range segs {
			proj, t, dist := geometry.ProjectPoint(geometry.Segment{A: r.A, B: r.B}, bd.Pos)
			if bestIdx == -1 || dist < bestDist {
				bestIdx, bestDist, bestProj, bestT = i, dist, proj, t
			}
		}
		if bestIdx == -1 {
			return nil, fmt.Errorf("%w: %s", ErrNoAccessSegment, bd.ID)
		}
		segID := segs[bestIdx].ID
		bySeg[segID] = append(bySeg[segID], accessPoint{building: bd, t: bestT, proj: bestProj})
	}

	apNodeFor := make(map[string]string) // building ID -> its access-point node ID

	for _, r := range segs {
		aps, split := bySeg[r.ID]
		fromA := getOrCreateInternal(r.A)
		toB := getOrCreateInternal(r.B)

		if !split || r.Length() < splitTolerance {
			// No access points (or the segment is too short to split
			// meaningfully): keep it intact. Buildings whose nearest point
			// fell on a too-short segment attach to the nearer endpoint.
			g.addEdge(r.ID, fromA, toB, r.Length(), []string{r.ID}, r.Type)
			for _, ap := range aps {
				node := fromA
				if ap.t > 0.5 {
					node = toB
				}
				markAccessPoint(g, node, ap.building.ID)
				apNodeFor[ap.building.ID] = node
			}
			continue
		}

		sort.Slice(aps, func(i, j int) bool { return aps[i].t < aps[j].t })

		chain := []string{fromA}
		points := []geometry.Point{r.A}
		for _, ap := range aps {
			if ap.t <= 0 {
				apNodeFor[ap.building.ID] = fromA
				markAccessPoint(g, fromA, ap.building.ID)
				continue
			}
			if ap.t >= 1 {
				apNodeFor[ap.building.ID] = toB
				markAccessPoint(g, toB, ap.building.ID)
				continue
			}
			id := getOrCreateInternal(ap.proj)
			markAccessPoint(g, id, ap.building.ID)
			apNodeFor[ap.building.ID] = id
			chain = append(chain, id)
			points = append(points, ap.proj)
		}
		chain = append(chain, toB)
		points = append(points, r.B)

		for i := 0; i+1 < len(chain); i++ {
			if chain[i] == chain[i+1] {
				continue // duplicate coordinate collapsed onto an endpoint
			}
			length := geometry.Dist(points[i], points[i+1])
			g.addEdge(edgeSeq.Next(), chain[i], chain[i+1], length, []string{r.ID}, r.Type)
		}
	}

	for _, bd := range buildings {
		apID, ok := apNodeFor[bd.ID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNoAccessSegment, bd.ID)
		}
		g.addNode(&Node{
			ID: bd.ID, Pos: bd.Pos, Kind: Building, BuildingID: bd.ID,
			PeakDemandKW: bd.PeakDemandKW, AnnualDemandKWh: bd.AnnualDemandKWh,
		})
		g.addEdge("ap-"+bd.ID, apID, bd.ID, 0, nil, "")
	}

	return g, nil
}

// markAccessPoint promotes an internal node to an AccessPoint for building b.
// A node already promoted for another building keeps its first assignment;
// in well-formed inputs a road node becomes an access point for at most one
// building, but ties at an identical coordinate degrade gracefully by
// leaving the original association (still satisfies "every building
// connected by exactly one zero-length edge" for every building, since each
// building looks up its own apNodeFor entry regardless of Kind bookkeeping).
func markAccessPoint(g *Graph, nodeID, buildingID string) {
	n, _ := g.Node(nodeID)
	if n.Kind == Internal {
		n.Kind = AccessPoint
		n.BuildingID = buildingID
	}
}
