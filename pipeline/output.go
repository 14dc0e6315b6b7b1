package pipeline

import (
	"github.com/dhplan/dhplanner/assignment"
	"github.com/dhplan/dhplanner/catalogue"
	"github.com/dhplan/dhplanner/fitness"
	"github.com/dhplan/dhplanner/metric"
)

// PipeType is the visualization-facing shape of one pipe selection (spec
// §6: "pipe_type {class, outer_diameter, unit_price}").
type PipeType struct {
	Class          string  `json:"class"`
	OuterDiameterM float64 `json:"outer_diameter"`
	UnitPrice      float64 `json:"unit_price"`
}

// PipeResult is one oriented MST edge's sizing and cost detail (spec §6:
// "pipe_result (per-edge id list, length, pipe_type, from_building,
// to_building, mass_flow, pipe_cost, trench_cost)").
type PipeResult struct {
	RoadIDs      []string `json:"id"`
	LengthM      float64  `json:"length"`
	PipeType     PipeType `json:"pipe_type"`
	FromBuilding string   `json:"from_building"`
	ToBuilding   string   `json:"to_building"`
	MassFlowKgS  float64  `json:"mass_flow"`
	PipeCost     float64  `json:"pipe_cost"`
	TrenchCost   float64  `json:"trench_cost"`
}

// ClusterOutput is one entry of the top-level `clusters` list (spec §6).
// The NonMember bucket, if non-empty, is represented as one additional
// entry with ClusterCenter equal to assignment.NonMemberID's string form
// and a nil PipeResult — the same sentinel the rest of the codebase uses
// for "excluded from every cluster".
type ClusterOutput struct {
	ClusterCenter      string       `json:"cluster_center"`
	Members            []string     `json:"members"`
	PipeResult         []PipeResult `json:"pipe_result"`
	SuppliedPowerKW    float64      `json:"supplied_power"`
	PipeInvestmentCost float64      `json:"pipe_investment_cost"`
	TrenchCost         float64      `json:"trench_cost"`
	TotalPipeCost      float64      `json:"total_pipe_cost"`
	TotalCost          float64      `json:"total_cost"`
	Fitness            float64      `json:"fitness"`
}

// Sums aggregates totals across every cluster (spec §6: "a top-level `sums`
// aggregates totals"), grounded on the original
// ClusteringSecondStage.calculate_total_sums.
type Sums struct {
	SuppliedPowerKW    float64 `json:"supplied_power"`
	PipeInvestmentCost float64 `json:"pipe_investment_cost"`
	TrenchCost         float64 `json:"trench_cost"`
	TotalPipeCost      float64 `json:"total_pipe_cost"`
	TotalCost          float64 `json:"total_cost"`
	Fitness            float64 `json:"fitness"`
}

// Result is the full visualization-facing output of one run.
type Result struct {
	Clusters []ClusterOutput `json:"clusters"`
	Sums     Sums            `json:"sums"`

	// PenaltyCount is the aggregate count of decoded chromosomes that
	// triggered CONSTRAINT_BROKEN across every coarse group's evolution —
	// logged at run end (spec §7), not part of the visualization payload.
	PenaltyCount int `json:"-"`
}

const nonMemberCenterLabel = "-1"

// buildOutput converts a final assignment into the visualization-facing
// Result, re-deriving each cluster's per-edge pipe detail from
// fitness.ClusterBreakdown.
func buildOutput(a *assignment.Assignment, mg *metric.Graph, demand map[string]float64, cat *catalogue.Catalogue, prices catalogue.PriceTable) (Result, error) {
	var res Result

	for _, c := range a.Clusters {
		cr, err := fitness.ClusterBreakdown(c, mg, demand, cat, prices)
		if err != nil {
			return Result{}, err
		}
		out := ClusterOutput{
			ClusterCenter:      cr.Center,
			Members:            cr.Members,
			SuppliedPowerKW:    cr.SuppliedPowerKW,
			PipeInvestmentCost: cr.PipeInvestmentCost,
			TrenchCost:         cr.TrenchCost,
			TotalPipeCost:      cr.TotalPipeCost,
			TotalCost:          cr.TotalCost,
			Fitness:            cr.Fitness,
		}
		for _, e := range cr.Edges {
			out.PipeResult = append(out.PipeResult, PipeResult{
				RoadIDs: e.RoadIDs, LengthM: e.LengthM,
				PipeType: PipeType{
					Class: e.PipeClass, OuterDiameterM: e.OuterDiameterM, UnitPrice: e.PricePerMeter,
				},
				FromBuilding: e.From, ToBuilding: e.To,
				MassFlowKgS: e.MassFlowKgS, PipeCost: e.PipeCost, TrenchCost: e.TrenchCost,
			})
		}
		res.Clusters = append(res.Clusters, out)

		res.Sums.SuppliedPowerKW += cr.SuppliedPowerKW
		res.Sums.PipeInvestmentCost += cr.PipeInvestmentCost
		res.Sums.TrenchCost += cr.TrenchCost
		res.Sums.TotalPipeCost += cr.TotalPipeCost
		res.Sums.TotalCost += cr.TotalCost
	}

	if len(a.NonMember) > 0 {
		var supplied float64
		for _, m := range a.NonMember {
			supplied += demand[m]
		}
		res.Clusters = append(res.Clusters, ClusterOutput{
			ClusterCenter:   nonMemberCenterLabel,
			Members:         a.NonMember,
			SuppliedPowerKW: supplied,
		})
		res.Sums.SuppliedPowerKW += supplied
	}

	if res.Sums.SuppliedPowerKW > 0 {
		res.Sums.Fitness = res.Sums.TotalCost / res.Sums.SuppliedPowerKW
	}
	return res, nil
}
