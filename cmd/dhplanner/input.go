package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dhplan/dhplanner/internal/geometry"
	"github.com/dhplan/dhplanner/network"
)

// buildingRecord is the on-disk shape of one --buildings entry. GIS
// ingestion (shapefiles, GeoJSON, CRS reprojection) is an explicit
// non-goal, so the input format is a flat JSON array with centroid
// coordinates already projected to the planar CRS the rest of the run
// operates in.
type buildingRecord struct {
	ID              string  `json:"id"`
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	PeakDemandKW    float64 `json:"peak_demand_kw"`
	AnnualDemandKWh float64 `json:"annual_demand_kwh"`
}

// roadRecord is the on-disk shape of one --roads entry: a single
// two-point segment, already exploded from any source polyline (spec
// §4.1: "road segments, already exploded to exactly two points").
type roadRecord struct {
	ID string  `json:"id"`
	AX float64 `json:"ax"`
	AY float64 `json:"ay"`
	BX float64 `json:"bx"`
	BY float64 `json:"by"`
	Type string `json:"type"`
}

func loadBuildings(path string) ([]network.Building, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("buildings: %w", err)
	}
	defer f.Close()

	var records []buildingRecord
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("buildings: decoding %s: %w", path, err)
	}

	buildings := make([]network.Building, len(records))
	for i, r := range records {
		buildings[i] = network.Building{
			ID:              r.ID,
			Pos:             geometry.Point{X: r.X, Y: r.Y},
			PeakDemandKW:    r.PeakDemandKW,
			AnnualDemandKWh: r.AnnualDemandKWh,
		}
	}
	return buildings, nil
}

func loadRoads(path string) ([]network.RoadSegment, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("roads: %w", err)
	}
	defer f.Close()

	var records []roadRecord
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("roads: decoding %s: %w", path, err)
	}

	roads := make([]network.RoadSegment, len(records))
	for i, r := range records {
		roads[i] = network.RoadSegment{
			ID:   r.ID,
			A:    geometry.Point{X: r.AX, Y: r.AY},
			B:    geometry.Point{X: r.BX, Y: r.BY},
			Type: r.Type,
		}
	}
	return roads, nil
}
