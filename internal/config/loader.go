package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "DHPLANNER_"

// Loader loads a Config with three-tier precedence: defaults, then the
// config file, then environment variables — grounded on
// Hola-to-network_logistics_problem/pkg/config.Loader.
type Loader struct {
	k         *koanf.Koanf
	envPrefix string
}

// LoaderOption configures a Loader before Load runs.
type LoaderOption func(*Loader)

// WithEnvPrefix overrides the default DHPLANNER_ environment prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) { l.envPrefix = prefix }
}

// NewLoader creates a Loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{k: koanf.New("."), envPrefix: envPrefix}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// defaults mirrors the original pipeline's implicit fallbacks for every
// enumerated key (spec §6), expressed as koanf's flat dotted-path map.
func defaults() map[string]any {
	return map[string]any{
		"installation-strategy":              "street-following",
		"distance-measuring-method":          "centroids",
		"heat-capacity":                      1000.0,
		"minimum-heat-capacity-exhaustion":    10.0,
		"fixed-cost":                         5000.0,
		"trench-cost-per-cubic-m":            120.0,
		"eps":                                150.0,
		"decrease-max-clusters-to-find-pctg": 20.0,
		"insulation-factor":                  1.0,
		"life-time-in-years":                 25.0,
		"pivot-strategy":                     "single",
		"population-factor":                  10,
		"num-generations-to-break":           50,
		"do-warm-start":                      true,
		"use-random-seed":                    int64(1),
		"save-graph":                         false,
		"load-graph":                         false,
		"graph-file-name":                    "",
	}
}

// Load reads defaults, then path (if non-empty — a config file omitted is
// not itself a fatal error, the run falls back to defaults+env), then
// environment variables prefixed DHPLANNER_ (DHPLANNER_HEAT_CAPACITY ->
// heat-capacity), then unmarshals and validates the result.
func (l *Loader) Load(path string) (*Config, error) {
	if err := l.k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: loading defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
		}
		if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	transform := func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, l.envPrefix)), "_", "-")
	}
	if err := l.k.Load(env.Provider(l.envPrefix, ".", transform), nil); err != nil {
		return nil, fmt.Errorf("config: loading environment: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load is a convenience entry point equivalent to NewLoader().Load(path).
func Load(path string) (*Config, error) {
	return NewLoader().Load(path)
}
