package config

import (
	"fmt"

	"github.com/dhplan/dhplanner/brkga"
	"github.com/dhplan/dhplanner/network"
)

// DistanceMethod names the distance-measuring-method configuration value.
// Validate parses it and rejects unknown strings; no pipeline stage reads
// it, so every run measures distances the same way whichever value is set.
type DistanceMethod int

const (
	// Centroids measures from building centroid to road centroid.
	Centroids DistanceMethod = iota
	// NearestPoint measures from building centroid to the nearest point on
	// the road geometry.
	NearestPoint
	// Custom uses §4.2's cost-weighted adjacency (w_ij · f_ij) directly.
	Custom
)

// ParseDistanceMethod maps a configuration string to a DistanceMethod.
func ParseDistanceMethod(s string) (DistanceMethod, error) {
	switch s {
	case "centroids", "":
		return Centroids, nil
	case "nearest_point":
		return NearestPoint, nil
	case "custom":
		return Custom, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDistanceMethod, s)
	}
}

// Config is the full set of run parameters enumerated in spec §6, tagged
// for koanf the same way Hola-to-network_logistics_problem/pkg/config.Config
// tags its fields — one koanf tag per key, flat rather than nested, since
// none of these keys group into a sub-object the way that service's
// app/grpc/http sections do.
type Config struct {
	InstallationStrategy         string  `koanf:"installation-strategy"`
	DistanceMeasuringMethod      string  `koanf:"distance-measuring-method"`
	HeatCapacity                 float64 `koanf:"heat-capacity"`
	MinimumHeatCapacityExhaustion float64 `koanf:"minimum-heat-capacity-exhaustion"`
	FixedCost                    float64 `koanf:"fixed-cost"`
	TrenchCostPerCubicM          float64 `koanf:"trench-cost-per-cubic-m"`

	Eps                             float64 `koanf:"eps"`
	DecreaseMaxClustersToFindPctg   float64 `koanf:"decrease-max-clusters-to-find-pctg"`
	InsulationFactor                float64 `koanf:"insulation-factor"`
	LifeTimeInYears                 float64 `koanf:"life-time-in-years"`

	StreetTypeMultipliers map[string]float64 `koanf:"street-type-multipliers"`
	ExcludedRoadFClasses  []string           `koanf:"excluded-road-fclasses"`

	PivotStrategy         string `koanf:"pivot-strategy"`
	PopulationFactor      int    `koanf:"population-factor"`
	NumGenerationsToBreak int    `koanf:"num-generations-to-break"`
	DoWarmStart           bool   `koanf:"do-warm-start"`
	UseRandomSeed         int64  `koanf:"use-random-seed"`

	SaveGraph     bool   `koanf:"save-graph"`
	LoadGraph     bool   `koanf:"load-graph"`
	GraphFileName string `koanf:"graph-file-name"`
}

// CapacityKW is the heat-capacity threshold used as CAPACITY throughout
// §4.3-§4.7 (min_samples, K_raw, residual capacities, the repair pass).
func (c *Config) CapacityKW() float64 { return c.HeatCapacity }

// MinSamples is floor(CAPACITY · minimum-heat-capacity-exhaustion / 100),
// the DBSCAN density threshold (spec §4.3).
func (c *Config) MinSamples() float64 {
	return float64(int(c.HeatCapacity * c.MinimumHeatCapacityExhaustion / 100.0))
}

// ShrinkFraction is decrease-max-clusters-to-find-pctg expressed as a unit
// fraction rather than a percentage, for K = max(1, floor(K_raw·(1-shrink))).
func (c *Config) ShrinkFraction() float64 {
	return c.DecreaseMaxClustersToFindPctg / 100.0
}

// StreetTypeMultiplier returns the configured multiplier for a road type
// tag, defaulting to 1.0 when the tag is unlisted (spec §6: "mapping
// road-type tag -> positive real; default 1.0").
func (c *Config) StreetTypeMultiplier(roadType string) float64 {
	if c.StreetTypeMultipliers == nil {
		return 1.0
	}
	if v, ok := c.StreetTypeMultipliers[roadType]; ok {
		return v
	}
	return 1.0
}

// Validate checks every enumerated key against its documented domain,
// naming the offending key in every returned error (spec §7: "every fatal
// error names ... the config key involved").
func (c *Config) Validate() error {
	if _, err := network.ParseStrategy(c.InstallationStrategy); err != nil {
		return fmt.Errorf("installation-strategy: %w", err)
	}
	if _, err := ParseDistanceMethod(c.DistanceMeasuringMethod); err != nil {
		return fmt.Errorf("distance-measuring-method: %w", err)
	}
	if c.HeatCapacity <= 0 {
		return fmt.Errorf("heat-capacity: %w: must be positive, got %v", ErrInvalidValue, c.HeatCapacity)
	}
	if c.MinimumHeatCapacityExhaustion < 0 || c.MinimumHeatCapacityExhaustion > 100 {
		return fmt.Errorf("minimum-heat-capacity-exhaustion: %w: must be within [0,100], got %v", ErrInvalidValue, c.MinimumHeatCapacityExhaustion)
	}
	if c.FixedCost < 0 {
		return fmt.Errorf("fixed-cost: %w: must be non-negative, got %v", ErrInvalidValue, c.FixedCost)
	}
	if c.TrenchCostPerCubicM < 0 {
		return fmt.Errorf("trench-cost-per-cubic-m: %w: must be non-negative, got %v", ErrInvalidValue, c.TrenchCostPerCubicM)
	}
	if c.Eps <= 0 {
		return fmt.Errorf("eps: %w: must be positive, got %v", ErrInvalidValue, c.Eps)
	}
	if c.DecreaseMaxClustersToFindPctg < 0 || c.DecreaseMaxClustersToFindPctg >= 100 {
		return fmt.Errorf("decrease-max-clusters-to-find-pctg: %w: must be within [0,100), got %v", ErrInvalidValue, c.DecreaseMaxClustersToFindPctg)
	}
	if c.InsulationFactor < 0 || c.InsulationFactor > 100 {
		return fmt.Errorf("insulation-factor: %w: must be within [0,100], got %v", ErrInvalidValue, c.InsulationFactor)
	}
	if c.LifeTimeInYears <= 0 {
		return fmt.Errorf("life-time-in-years: %w: must be positive, got %v", ErrInvalidValue, c.LifeTimeInYears)
	}
	for _, m := range c.StreetTypeMultipliers {
		if m <= 0 {
			return fmt.Errorf("street-type-multipliers: %w: must be positive, got %v", ErrInvalidValue, m)
		}
	}
	if _, err := brkga.ParsePivotStrategy(c.PivotStrategy); err != nil {
		return fmt.Errorf("pivot-strategy: %w", err)
	}
	if c.PopulationFactor < 1 {
		return fmt.Errorf("population-factor: %w: must be at least 1, got %d", ErrInvalidValue, c.PopulationFactor)
	}
	if c.NumGenerationsToBreak < 1 {
		return fmt.Errorf("num-generations-to-break: %w: must be at least 1, got %d", ErrInvalidValue, c.NumGenerationsToBreak)
	}
	if c.LoadGraph && c.GraphFileName == "" {
		return fmt.Errorf("graph-file-name: %w: required when load-graph is true", ErrInvalidValue)
	}
	return nil
}
