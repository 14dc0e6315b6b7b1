package fitness

import "github.com/dhplan/dhplanner/catalogue"

// PressureLossThresholdPaPerM is the fixed pressure-gradient ceiling every
// selected pipe class must stay strictly under (spec §4.7 step 5; resolved
// per §9 as Pa/m).
const PressureLossThresholdPaPerM = 250.0

// sizePipe selects a diameter class for the given mass flow, returning the
// catalogue miss sentinel unchanged so callers can translate it into the
// CONSTRAINT_BROKEN penalty.
func sizePipe(cat *catalogue.Catalogue, prices catalogue.PriceTable, massFlow float64) (catalogue.Selection, error) {
	return catalogue.Select(cat, prices, massFlow, PressureLossThresholdPaPerM)
}
