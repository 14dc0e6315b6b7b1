package fitness

import "math"

// Simultaneity factor constants (spec §4.7 step 4), carried over from the
// original implementation's published coefficients.
const (
	simultA = 0.449677646267461
	simultB = 0.551234688
	simultC = 53.84382392
	simultD = 1.762743268
)

// Water/thermal constants for mass-flow conversion (spec §4.7 step 4),
// grounded on the original MassFlowCalculation constants.
const (
	supplyReturnSpreadK = 30.0  // ΔT, K
	waterHeatCapacity   = 4.190 // c_p, kJ/(kg·K)
	waterDensity        = 0.997 // ρ, kg/L
)

// simultaneityFactor returns s(k), strictly decreasing in k, bounded in
// (simultA, simultA+simultB] for k >= 1 (spec §9 invariant).
func simultaneityFactor(k int) float64 {
	return simultA + simultB/(1+math.Pow(float64(k)/simultC, simultD))
}

// propagation holds, for every node in a cluster's rooted tree, the
// downstream subtree size n(v) and cumulative demand D(v).
type propagation struct {
	n map[string]int
	d map[string]float64
}

// propagate computes n(v) and D(v) for every node by post-order traversal
// (children finalized before their parent, per the order orient returns),
// then the mass flow carried by each directed edge.
func propagate(postOrder []string, edges []directedEdge, demand map[string]float64) (propagation, map[[2]string]float64) {
	children := make(map[string][]string)
	for _, e := range edges {
		children[e.From] = append(children[e.From], e.To)
	}

	n := make(map[string]int, len(postOrder))
	d := make(map[string]float64, len(postOrder))
	for _, v := range postOrder {
		n[v] = 1
		d[v] = demand[v]
		for _, c := range children[v] {
			n[v] += n[c]
			d[v] += d[c]
		}
	}

	flow := make(map[[2]string]float64, len(edges))
	for _, e := range edges {
		massFlow := d[e.To] * simultaneityFactor(n[e.To]) / (waterHeatCapacity * waterDensity * supplyReturnSpreadK)
		flow[[2]string{e.From, e.To}] = massFlow
	}

	return propagation{n: n, d: d}, flow
}
