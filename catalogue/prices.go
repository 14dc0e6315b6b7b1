package catalogue

import (
	"encoding/json"
	"fmt"
	"io"
)

// priceRecord mirrors one entry of the prices JSON (§6): catalogue column
// name -> {type, outer_diameter (mm), price (currency/m)}.
type priceRecord struct {
	Type          string  `json:"type"`
	OuterDiamMM   float64 `json:"outer_diameter"`
	PricePerMeter float64 `json:"price"`
}

// LoadPrices reads the JSON price table, grounded on the original
// PipePrices.open_prices_json's trivial json.load.
func LoadPrices(r io.Reader) (PriceTable, error) {
	var raw map[string]priceRecord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}

	out := make(PriceTable, len(raw))
	for name, rec := range raw {
		t, err := ParsePipeType(rec.Type)
		if err != nil {
			return nil, fmt.Errorf("catalogue: price entry %q: %w", name, err)
		}
		out[name] = Price{
			Type:           t,
			OuterDiameterM: rec.OuterDiamMM / 1000.0,
			PricePerMeter:  rec.PricePerMeter,
		}
	}
	return out, nil
}

// Validate checks that every catalogue diameter class has a corresponding
// price entry.
func (pt PriceTable) Validate(cat *Catalogue) error {
	for _, class := range cat.Classes {
		if _, ok := pt[class]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownColumn, class)
		}
	}
	return nil
}
