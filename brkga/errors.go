// Package brkga implements the biased random-key genetic algorithm that
// refines a coarse cluster group into a capacitated assignment: a
// population of real-valued chromosomes decoded into cluster assignments
// and scored by package fitness, evolved by elite/mutant/crossover
// generations with an improvement-based stop criterion (spec §4.6, §4.8).
package brkga

import "errors"

var (
	// ErrEmptyInstance indicates an Instance has no building tokens.
	ErrEmptyInstance = errors.New("brkga: instance has no buildings")

	// ErrInvalidK indicates K is less than 1 or exceeds the number of
	// buildings.
	ErrInvalidK = errors.New("brkga: K must be between 1 and the number of buildings")

	// ErrChromosomeLength indicates a chromosome's length doesn't match the
	// instance's token count.
	ErrChromosomeLength = errors.New("brkga: chromosome length does not match token count")

	// ErrUnsupportedPivotStrategy indicates a pivot-strategy other than
	// "none" or "single" was requested, including "double" (spec §9
	// REDESIGN FLAG: reject double at configuration time, not decode time).
	ErrUnsupportedPivotStrategy = errors.New("brkga: unsupported pivot strategy (only \"none\" and \"single\" are implemented)")

	// ErrEmptyPopulation indicates Options.PopulationFactor produced a
	// population size of zero.
	ErrEmptyPopulation = errors.New("brkga: population size must be at least 1")

	// ErrNoWarmStartTarget indicates Encode was called with an assignment
	// whose NonMember bucket is non-empty under pivot strategy "none",
	// which has no token that can represent an exclusion boundary.
	ErrNoWarmStartTarget = errors.New("brkga: pivot strategy \"none\" cannot encode a non-empty NonMember bucket")

	// ErrInvalidStateTransition indicates an Engine method was called out
	// of order relative to its state machine (spec §4.8).
	ErrInvalidStateTransition = errors.New("brkga: invalid engine state transition")
)
