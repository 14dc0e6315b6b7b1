package fitness

import (
	"github.com/dhplan/dhplanner/assignment"
	"github.com/dhplan/dhplanner/catalogue"
	"github.com/dhplan/dhplanner/metric"
)

// EdgeResult is the pipe-sizing and cost detail for one oriented MST edge,
// the per-edge shape spec §6's output `pipe_result` entries describe.
type EdgeResult struct {
	From, To       string
	RoadIDs        []string
	LengthM        float64
	PipeClass      string
	OuterDiameterM float64
	PricePerMeter  float64
	PipeType       catalogue.PipeType
	MassFlowKgS    float64
	PipeCost       float64
	TrenchCost     float64
}

// ClusterResult is the full evaluation detail for one cluster, the shape
// spec §6's output `clusters` entries need beyond the bare fitness scalar.
type ClusterResult struct {
	Center             string
	Members            []string
	Edges              []EdgeResult
	SuppliedPowerKW    float64
	PipeInvestmentCost float64
	TrenchCost         float64
	TotalPipeCost      float64
	TotalCost          float64
	Fitness            float64
}

// ClusterBreakdown evaluates one cluster with full per-edge detail (spec
// §4.7 steps 1-7). A catalogue miss, a disconnected cluster, or
// non-positive total demand return a ClusterResult whose Fitness is
// ConstraintBrokenPenalty and whose Edges is nil, rather than an error —
// the decoder and the output writer treat every such cluster identically,
// as an infeasible candidate rather than a program fault.
func ClusterBreakdown(c *assignment.Cluster, mg *metric.Graph, demand map[string]float64, cat *catalogue.Catalogue, prices catalogue.PriceTable) (ClusterResult, error) {
	if len(c.Members) == 0 {
		return ClusterResult{}, ErrEmptyCluster
	}
	if c.Center == "" {
		return ClusterResult{}, ErrMissingCenter
	}
	isCenter := false
	for _, m := range c.Members {
		if m == c.Center {
			isCenter = true
			break
		}
	}
	if !isCenter {
		return ClusterResult{}, ErrMissingCenter
	}

	totalDemand := c.TotalDemand(demand)
	res := ClusterResult{Center: c.Center, Members: append([]string(nil), c.Members...), SuppliedPowerKW: totalDemand}
	if totalDemand <= 0 {
		res.Fitness = ConstraintBrokenPenalty
		return res, nil
	}

	// A single-building cluster has no pipe to size: the fixed cost alone
	// is spread over the center's own demand (spec §4.7 step 7).
	if len(c.Members) == 1 {
		res.TotalCost = FixedCostPerCluster
		res.Fitness = FixedCostPerCluster / demand[c.Center]
		return res, nil
	}

	mst, err := inducedMST(c.Members, mg)
	if err != nil {
		res.Fitness = ConstraintBrokenPenalty
		return res, nil
	}

	directed, postOrder := orient(mst, c.Center)
	_, flow := propagate(postOrder, directed, demand)

	edges := make([]EdgeResult, 0, len(directed))
	var pipeCost, trenchCost float64
	for _, e := range directed {
		massFlow := flow[[2]string{e.From, e.To}]
		sel, err := sizePipe(cat, prices, massFlow)
		if err != nil {
			res.Fitness = ConstraintBrokenPenalty
			return res, nil
		}
		ec := sel.PricePerMeter * e.Weight
		tc := trenchUnitCostPerM2 * trenchCrossSectionM2(sel.OuterDiameterM, sel.Type) * e.Weight
		pipeCost += ec
		trenchCost += tc
		edges = append(edges, EdgeResult{
			From: e.From, To: e.To, RoadIDs: e.RoadIDs, LengthM: e.Weight,
			PipeClass: sel.Class, OuterDiameterM: sel.OuterDiameterM, PricePerMeter: sel.PricePerMeter,
			PipeType: sel.Type, MassFlowKgS: massFlow, PipeCost: ec, TrenchCost: tc,
		})
	}

	res.Edges = edges
	res.PipeInvestmentCost = pipeCost
	res.TrenchCost = trenchCost
	res.TotalPipeCost = pipeCost + trenchCost
	res.TotalCost = FixedCostPerCluster + res.TotalPipeCost
	res.Fitness = res.TotalCost / totalDemand
	return res, nil
}

// ClusterFitness evaluates one cluster: cost per unit demand (spec §4.7).
// A catalogue miss on any edge, a disconnected cluster, or non-positive
// total demand all return ConstraintBrokenPenalty rather than an error —
// the decoder treats every such cluster identically, as an infeasible
// candidate to be selected against rather than a program fault.
func ClusterFitness(c *assignment.Cluster, mg *metric.Graph, demand map[string]float64, cat *catalogue.Catalogue, prices catalogue.PriceTable) (float64, error) {
	res, err := ClusterBreakdown(c, mg, demand, cat, prices)
	if err != nil {
		return 0, err
	}
	return res.Fitness, nil
}

// Evaluate computes the aggregate fitness of a full assignment: the sum of
// every cluster's fitness contribution (spec §4.7 step 8). NonMember
// buildings carry no cost and do not contribute.
func Evaluate(a *assignment.Assignment, mg *metric.Graph, demand map[string]float64, cat *catalogue.Catalogue, prices catalogue.PriceTable) (float64, error) {
	var total float64
	for _, c := range a.Clusters {
		f, err := ClusterFitness(c, mg, demand, cat, prices)
		if err != nil {
			return 0, err
		}
		total += f
	}
	return total, nil
}
