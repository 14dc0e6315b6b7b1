package pipeline

import (
	"context"
	"math"
	"math/rand"
	"runtime"

	"github.com/dhplan/dhplanner/assignment"
	"github.com/dhplan/dhplanner/brkga"
	"github.com/dhplan/dhplanner/catalogue"
	"github.com/dhplan/dhplanner/cluster/density"
	"github.com/dhplan/dhplanner/cluster/kmeans"
	"github.com/dhplan/dhplanner/cluster/repair"
	"github.com/dhplan/dhplanner/internal/config"
	"github.com/dhplan/dhplanner/internal/geometry"
	"github.com/dhplan/dhplanner/metric"
	"github.com/dhplan/dhplanner/network"
)

// Run executes the full design pipeline (spec §2): road graph construction
// (or reload), the metric graph, the coarse density pass, and per-group
// bootstrap/repair/BRKGA refinement, merged into one visualization-facing
// Result. resultsDir, if non-empty, receives one subdirectory per coarse
// group with its per-generation records (spec §6); pass "" to skip
// persistence entirely.
func Run(ctx context.Context, cfg *config.Config, roads []network.RoadSegment, buildings []network.Building, cat *catalogue.Catalogue, prices catalogue.PriceTable, resultsDir string) (Result, error) {
	if cfg == nil {
		return Result{}, ErrNilConfig
	}
	if len(buildings) > 1 && (cat == nil || prices == nil) {
		return Result{}, ErrNilCatalogueOrPrices
	}

	mg, err := resolveMetricGraph(cfg, roads, buildings)
	if err != nil {
		return Result{}, err
	}

	demand := make(map[string]float64, len(buildings))
	coords := make(map[string]geometry.Point, len(buildings))
	for _, b := range buildings {
		demand[b.ID] = b.PeakDemandKW
		coords[b.ID] = b.Pos
	}

	ids := mg.Nodes()
	coarse, err := coarseGroups(ids, mg, demand, cfg)
	if err != nil {
		return Result{}, err
	}

	pivot, err := brkga.ParsePivotStrategy(cfg.PivotStrategy)
	if err != nil {
		return Result{}, err
	}

	global := assignment.NewAssignment()
	nextClusterID := 0
	penaltyCount := 0

	for gi, members := range coarse {
		a, penalties, err := runCoarseGroup(ctx, gi, members, pivot, cfg, demand, coords, mg, cat, prices, resultsDir)
		if err != nil {
			return Result{}, err
		}
		penaltyCount += penalties
		for _, c := range a.Clusters {
			global.AddCluster(nextClusterID, c.Center, c.Members)
			nextClusterID++
		}
		global.NonMember = append(global.NonMember, a.NonMember...)
	}

	res, err := buildOutput(global, mg, demand, cat, prices)
	if err != nil {
		return Result{}, err
	}
	res.PenaltyCount = penaltyCount
	return res, nil
}

// resolveMetricGraph either reloads a persisted G_m (spec §6: load-graph)
// or builds it fresh from roads and buildings, optionally persisting the
// freshly built graph (save-graph).
func resolveMetricGraph(cfg *config.Config, roads []network.RoadSegment, buildings []network.Building) (*metric.Graph, error) {
	if cfg.LoadGraph {
		return loadMetricGraph(cfg.GraphFileName)
	}

	strategy, err := network.ParseStrategy(cfg.InstallationStrategy)
	if err != nil {
		return nil, err
	}
	builder := network.NewBuilder(strategy, network.WithExcludedFClasses(cfg.ExcludedRoadFClasses...))
	gr, err := builder.Build(roads, buildings)
	if err != nil {
		return nil, err
	}
	mg, err := metric.BuildMetricGraph(gr, cfg.StreetTypeMultipliers)
	if err != nil {
		return nil, err
	}

	if cfg.SaveGraph {
		if err := saveMetricGraph(cfg.GraphFileName, mg); err != nil {
			return nil, err
		}
	}
	return mg, nil
}

// coarseGroups runs the cost-weighted density pass (§4.3) and returns every
// resulting dense cluster plus, for every building DBSCAN dropped as noise
// or a singleton, its own one-building group — carried through the rest of
// the pipeline individually rather than bundled into one undifferentiated
// noise cluster (see DESIGN.md).
func coarseGroups(ids []string, mg *metric.Graph, demand map[string]float64, cfg *config.Config) ([][]string, error) {
	n := len(ids)
	matrix, err := density.NewDistanceMatrix(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := math.Inf(1)
			if e, ok := mg.Edge(ids[i], ids[j]); ok {
				w = e.CostWeight()
			}
			matrix.Set(i, j, w)
		}
	}

	clusters, err := density.Run(ids, matrix, demand, density.Options{Eps: cfg.Eps, MinSamples: cfg.MinSamples()})
	if err != nil {
		return nil, err
	}

	assigned := make(map[string]bool, n)
	groups := make([][]string, 0, len(clusters)+n)
	for _, members := range clusters {
		groups = append(groups, members)
		for _, m := range members {
			assigned[m] = true
		}
	}
	for _, id := range ids {
		if !assigned[id] {
			groups = append(groups, []string{id})
		}
	}
	return groups, nil
}

// runCoarseGroup carries one coarse group through bootstrap, feasibility
// repair, and warm-started BRKGA refinement, returning its contribution to
// the global assignment and the count of CONSTRAINT_BROKEN chromosomes its
// evolution run produced.
func runCoarseGroup(ctx context.Context, groupIndex int, members []string, pivot brkga.PivotStrategy, cfg *config.Config, demand map[string]float64, coords map[string]geometry.Point, mg *metric.Graph, cat *catalogue.Catalogue, prices catalogue.PriceTable, resultsDir string) (*assignment.Assignment, int, error) {
	if len(members) == 1 {
		a := assignment.NewAssignment()
		m := members[0]
		if demand[m] > cfg.CapacityKW() {
			a.NonMember = append(a.NonMember, m)
		} else {
			a.AddCluster(0, m, []string{m})
		}
		return a, 0, nil
	}

	seed := cfg.UseRandomSeed + int64(groupIndex)

	var totalDemand float64
	for _, m := range members {
		totalDemand += demand[m]
	}
	kRaw := int(math.Floor(totalDemand / cfg.CapacityKW()))
	k := int(math.Floor(float64(kRaw) * (1 - cfg.ShrinkFraction())))
	if k < 1 {
		k = 1
	}
	if k > len(members) {
		k = len(members)
	}

	points := make([]kmeans.Point, len(members))
	for i, id := range members {
		points[i] = kmeans.Point{ID: id, Pos: coords[id], Weight: demand[id]}
	}
	bootResult, err := kmeans.BisectingKMeans(points, k, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, 0, err
	}

	byLabel := make(map[int][]string)
	for id, label := range bootResult.Labels {
		byLabel[label] = append(byLabel[label], id)
	}
	bootstrap := assignment.NewAssignment()
	for label, mem := range byLabel {
		bootstrap.AddCluster(label, "", mem)
	}

	distFn := func(a, b string) float64 {
		if e, ok := mg.Edge(a, b); ok {
			return e.Weight
		}
		return geometry.Dist(coords[a], coords[b])
	}
	repaired, err := repair.Repair(bootstrap, demand, cfg.CapacityKW(), coords, distFn)
	if err != nil {
		return nil, 0, err
	}

	inst, err := brkga.NewInstance(members, pivot, len(repaired.Clusters), cfg.CapacityKW(), demand, mg, cat, prices)
	if err != nil {
		return nil, 0, err
	}

	opts := brkga.NewOptions(
		brkga.WithPopulationFactor(cfg.PopulationFactor),
		brkga.WithGenerationsToStop(cfg.NumGenerationsToBreak),
		brkga.WithSeed(seed),
		brkga.WithWarmStart(cfg.DoWarmStart),
		brkga.WithWorkers(runtime.GOMAXPROCS(0)),
	)
	rec := newGroupRecorder(resultsDir, groupIndex, opts, demand, mg, cat, prices)
	if rec != nil {
		opts.OnGeneration = rec.onGeneration
	}

	engine := brkga.NewEngine(inst, opts)
	if err := engine.Initialize(); err != nil {
		return nil, 0, err
	}
	// A repaired assignment with excluded buildings can only be encoded
	// under pivot strategy "single"; otherwise the run starts cold.
	if cfg.DoWarmStart && (len(repaired.NonMember) == 0 || pivot == brkga.PivotSingle) {
		if err := engine.WarmStart(repaired); err != nil {
			return nil, 0, err
		}
	}
	// On cancellation Evolve still returns the best chromosome of the
	// generations it completed; that is used like a normal result.
	result, err := engine.Evolve(ctx)
	if err != nil && ctx.Err() == nil {
		return nil, 0, err
	}
	if err := rec.flush(); err != nil {
		return nil, 0, err
	}

	best, err := engine.BestAssignment()
	if err != nil {
		return nil, 0, err
	}
	return best, result.PenaltyCount, nil
}
