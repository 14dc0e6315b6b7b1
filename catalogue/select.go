package catalogue

import "sort"

// classesByDiameter returns cat.Classes ordered by ascending outer diameter,
// the order pipe sizing scans in (spec §4.7 step 5: "smallest-diameter
// column").
func classesByDiameter(cat *Catalogue, prices PriceTable) []string {
	out := append([]string(nil), cat.Classes...)
	sort.Slice(out, func(i, j int) bool {
		return prices[out[i]].OuterDiameterM < prices[out[j]].OuterDiameterM
	})
	return out
}

// Selection is the outcome of sizing one pipe run.
type Selection struct {
	Class          string
	OuterDiameterM float64
	PricePerMeter  float64
	Type           PipeType
}

// Select sizes a pipe for the given required mass flow (kg/s), scanning
// catalogue rows with capacity at least massFlow and, within the nearest
// such row, returning the smallest diameter class whose pressure gradient
// stays strictly under pressureThresholdPaPerM.
//
// Rows are monotone in the catalogue's intended use (a larger assumed flow
// never improves a class's pressure gradient), so the nearest qualifying
// row dominates every later one — scanning only it is equivalent to
// scanning the full qualifying suffix and keeping the best answer, and
// avoids an otherwise-quadratic rescan.
func Select(cat *Catalogue, prices PriceTable, massFlow, pressureThresholdPaPerM float64) (Selection, error) {
	idx := sort.Search(len(cat.Rows), func(i int) bool { return cat.Rows[i].MassFlow >= massFlow })
	if idx == len(cat.Rows) {
		return Selection{}, ErrNoAcceptableDiameter
	}
	row := cat.Rows[idx]

	for _, class := range classesByDiameter(cat, prices) {
		grad, ok := row.Values[class]
		if !ok {
			continue
		}
		if grad < pressureThresholdPaPerM {
			p := prices[class]
			return Selection{
				Class:          class,
				OuterDiameterM: p.OuterDiameterM,
				PricePerMeter:  p.PricePerMeter,
				Type:           p.Type,
			}, nil
		}
	}

	return Selection{}, ErrNoAcceptableDiameter
}
