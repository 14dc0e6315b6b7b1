package brkga

import "github.com/dhplan/dhplanner/assignment"

// PivotStrategy selects how the decoder interprets the synthetic pivot
// token in the chromosome's token sequence (spec §4.6 step 3, §9).
type PivotStrategy int

const (
	// PivotNone carries no pivot token; NON_MEMBER only arises from
	// capacity infeasibility during greedy assignment.
	PivotNone PivotStrategy = iota
	// PivotSingle carries exactly one pivot token. If it falls in the
	// K-center prefix the chromosome is CONSTRAINT_BROKEN; otherwise,
	// reaching it during assignment dumps every remaining token into
	// NON_MEMBER.
	PivotSingle
)

// ParsePivotStrategy maps a configuration string to a PivotStrategy.
// "double" is explicitly rejected: its semantics were never pinned down,
// so it is refused here rather than silently decoded as something
// undefined.
func ParsePivotStrategy(s string) (PivotStrategy, error) {
	switch s {
	case "none", "":
		return PivotNone, nil
	case "single":
		return PivotSingle, nil
	case "double":
		return 0, ErrUnsupportedPivotStrategy
	default:
		return 0, ErrUnsupportedPivotStrategy
	}
}

// pivotCount returns how many synthetic pivot tokens a strategy appends to
// the token sequence.
func (s PivotStrategy) pivotCount() int {
	if s == PivotSingle {
		return 1
	}
	return 0
}

// Chromosome is a vector of real-valued keys in [0,1], one per token in an
// Instance's token sequence (spec §4.6: "Chromosome X").
type Chromosome []float64

// Option configures Options before a run, following a functional-option
// convention.
type Option func(*Options)

// Options holds the evolution loop's tunable parameters (spec §4.6).
type Options struct {
	PopulationFactor  int     // population size = N * PopulationFactor
	EliteFraction     float64 // ρ_e
	MutantFraction    float64 // ρ_m
	CrossoverBias     float64 // probability a gene is drawn from the elite parent
	GenerationsToStop int     // G_stop
	MaxGenerations    int     // hard ceiling, independent of the stop criterion
	Seed              int64
	Workers           int // bound on parallel per-generation fitness evaluation
	DoWarmStart       bool

	// OnGeneration, if set, is called once per completed generation with
	// that generation's ranked best — the hook the pipeline's per-
	// generation persistence (spec §6: "brkga_generation_{k}.json") is
	// built on, rather than Evolve itself knowing anything about files.
	OnGeneration func(GenerationEvent)
}

// GenerationEvent is the snapshot passed to OnGeneration after a generation
// has been evaluated and ranked.
type GenerationEvent struct {
	Generation     int
	BestFitness    float64
	BestAssignment *assignment.Assignment
	PopulationSize int
}

// DefaultOptions returns the baseline evolution parameters.
func DefaultOptions() Options {
	return Options{
		PopulationFactor:  10,
		EliteFraction:     0.2,
		MutantFraction:    0.15,
		CrossoverBias:     0.7,
		GenerationsToStop: 50,
		MaxGenerations:    2000,
		Seed:              1,
		Workers:           4,
		DoWarmStart:       true,
	}
}

// NewOptions builds Options from DefaultOptions with the given overrides
// applied in order.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPopulationFactor overrides PopulationFactor.
func WithPopulationFactor(factor int) Option {
	return func(o *Options) { o.PopulationFactor = factor }
}

// WithEliteFraction overrides EliteFraction.
func WithEliteFraction(f float64) Option {
	return func(o *Options) { o.EliteFraction = f }
}

// WithMutantFraction overrides MutantFraction.
func WithMutantFraction(f float64) Option {
	return func(o *Options) { o.MutantFraction = f }
}

// WithCrossoverBias overrides CrossoverBias.
func WithCrossoverBias(f float64) Option {
	return func(o *Options) { o.CrossoverBias = f }
}

// WithGenerationsToStop overrides GenerationsToStop.
func WithGenerationsToStop(g int) Option {
	return func(o *Options) { o.GenerationsToStop = g }
}

// WithMaxGenerations overrides MaxGenerations.
func WithMaxGenerations(g int) Option {
	return func(o *Options) { o.MaxGenerations = g }
}

// WithSeed overrides Seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers overrides Workers.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithWarmStart overrides DoWarmStart.
func WithWarmStart(on bool) Option {
	return func(o *Options) { o.DoWarmStart = on }
}

// WithGenerationHook overrides OnGeneration.
func WithGenerationHook(fn func(GenerationEvent)) Option {
	return func(o *Options) { o.OnGeneration = fn }
}

// Result is the outcome of a completed evolution run.
type Result struct {
	BestChromosome Chromosome
	BestFitness    float64
	BestGeneration int
	Generations    int
	PenaltyCount   int // chromosomes decoded with CONSTRAINT_BROKEN across the run
}
