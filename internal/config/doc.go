// Package config loads and validates the pipeline's run configuration: the
// enumerated keys of spec §6 (installation strategy, clustering parameters,
// cost coefficients, BRKGA parameters, graph persistence flags), read with
// koanf's three-tier precedence (defaults, then config file, then
// environment) the same way Hola-to-network_logistics_problem/pkg/config
// does it.
package config
