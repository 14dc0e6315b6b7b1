package fitness

import "github.com/dhplan/dhplanner/catalogue"

// FixedCostPerCluster is the constant per-cluster infrastructure cost added
// regardless of trench length (spec §4.7 step 7).
const FixedCostPerCluster = 5000.0

// ConstraintBrokenPenalty is the fitness value returned for a cluster that
// cannot be evaluated: a catalogue miss on any edge, or non-positive total
// demand (spec §4.7 step 7: "CONSTRAINT_BROKEN").
const ConstraintBrokenPenalty = 1e9

// trenchCrossSectionM2 returns the trench excavation cross-section for a
// pipe of the given outer diameter, per spec §4.7 step 6. The single-pipe
// trench is narrower than the twin-pipe trench, which must fit two pipe
// bodies side by side.
func trenchCrossSectionM2(outerDiameterM float64, pipeType catalogue.PipeType) float64 {
	depth := 0.8 + outerDiameterM + 0.1
	switch pipeType {
	case catalogue.Duo:
		width := 0.1 + 2*outerDiameterM + 0.2
		return depth * width
	default:
		width := 0.1 + outerDiameterM + 0.1
		return depth * width
	}
}

// edgeCost returns the construction cost of one oriented MST edge: pipe
// material over its length, plus trench excavation over the same length
// (spec §4.7 step 6).
func edgeCost(lengthM float64, sel catalogue.Selection) float64 {
	pipeCost := sel.PricePerMeter * lengthM
	trenchCost := trenchUnitCostPerM2 * trenchCrossSectionM2(sel.OuterDiameterM, sel.Type) * lengthM
	return pipeCost + trenchCost
}

// trenchUnitCostPerM2 is the excavation cost per cubic meter of trench
// cross-section per meter of run, carried over from the original
// implementation's published trench cost coefficient (spec §4.7 step 6).
const trenchUnitCostPerM2 = 120.0
