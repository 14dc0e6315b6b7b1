package brkga

import (
	"context"
	"math/rand"
	"sort"

	"github.com/dhplan/dhplanner/assignment"
	"github.com/dhplan/dhplanner/fitness"
	"golang.org/x/sync/errgroup"
)

// member is one decoded population slot: its chromosome, fitness, and
// decoded assignment, kept together so ranking never separates them.
type member struct {
	chromosome Chromosome
	fitness    float64
	assignment *assignment.Assignment
}

// Engine owns one coarse group's evolution run: population, state machine,
// and best-so-far tracking (spec §4.6 "Evolution loop", §4.8).
type Engine struct {
	inst  *Instance
	opts  Options
	state State

	population []member

	bestChromosome Chromosome
	bestFitness    float64
	bestGeneration int
	generation     int
	penaltyCount   int

	rng *rand.Rand
}

// NewEngine builds an Engine in state IDLE.
func NewEngine(inst *Instance, opts Options) *Engine {
	return &Engine{
		inst:  inst,
		opts:  opts,
		state: StateIdle,
		rng:   rngFromSeed(opts.Seed),
	}
}

// State returns the engine's current lifecycle state.
func (e *Engine) State() State { return e.state }

func (e *Engine) populationSize() int {
	n := e.inst.buildingCount * e.opts.PopulationFactor
	if n < 1 {
		n = 1
	}
	return n
}

func randomChromosome(rng *rand.Rand, n int) Chromosome {
	c := make(Chromosome, n)
	for i := range c {
		c[i] = rng.Float64()
	}
	return c
}

// Initialize populates the engine with a uniformly random population of
// the configured size (spec §4.6 evolution step 2) and transitions to
// INITIALIZED.
func (e *Engine) Initialize() error {
	if !e.state.canInitialize() {
		return ErrInvalidStateTransition
	}
	size := e.populationSize()
	if size < 1 {
		return ErrEmptyPopulation
	}

	e.population = make([]member, size)
	for i := range e.population {
		e.population[i].chromosome = randomChromosome(e.rng, e.inst.TokenCount())
	}
	e.state = StateInitialized
	return nil
}

// WarmStart injects a as the chromosome at population slot 0 (spec §4.6
// evolution step 1) and transitions to WARM_STARTED.
func (e *Engine) WarmStart(a *assignment.Assignment) error {
	if !e.state.canWarmStart() {
		return ErrInvalidStateTransition
	}
	chromosome, err := Encode(e.inst, a)
	if err != nil {
		return err
	}
	e.population[0].chromosome = chromosome
	e.state = StateWarmStarted
	return nil
}

// evaluateGeneration decodes and scores every chromosome in the current
// population in parallel, bounded by opts.Workers (spec §5). Cancelling ctx
// does not interrupt a generation already under way; only a decode error
// stops the remaining chromosomes.
func (e *Engine) evaluateGeneration(ctx context.Context) error {
	g, gctx := errgroup.WithContext(context.WithoutCancel(ctx))
	workers := e.opts.Workers
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)

	for i := range e.population {
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			f, a, err := e.inst.Decode(e.population[i].chromosome)
			if err != nil {
				return err
			}
			e.population[i].fitness = f
			e.population[i].assignment = a
			return nil
		})
	}
	return g.Wait()
}

func (e *Engine) rankPopulation() {
	sort.SliceStable(e.population, func(i, j int) bool {
		return e.population[i].fitness < e.population[j].fitness
	})
}

// nextGeneration builds the successor population from the current, ranked
// one: elites carried over verbatim, fresh random mutants, and the
// remainder filled by biased crossover (spec §4.6 evolution step 3).
func (e *Engine) nextGeneration() []member {
	size := len(e.population)
	eliteCount := int(e.opts.EliteFraction * float64(size))
	mutantCount := int(e.opts.MutantFraction * float64(size))
	if eliteCount < 1 {
		eliteCount = 1
	}
	if eliteCount > size {
		eliteCount = size
	}
	if eliteCount+mutantCount > size {
		mutantCount = size - eliteCount
	}

	rng := workerRNG(e.opts.Seed, e.generation, 0)
	next := make([]member, 0, size)

	for i := 0; i < eliteCount; i++ {
		next = append(next, member{chromosome: append(Chromosome(nil), e.population[i].chromosome...)})
	}
	for i := 0; i < mutantCount; i++ {
		next = append(next, member{chromosome: randomChromosome(rng, e.inst.TokenCount())})
	}
	for len(next) < size {
		elite := e.population[rng.Intn(eliteCount)]
		other := e.population[eliteCount+rng.Intn(size-eliteCount)]
		child := make(Chromosome, e.inst.TokenCount())
		for g := range child {
			if rng.Float64() < e.opts.CrossoverBias {
				child[g] = elite.chromosome[g]
			} else {
				child[g] = other.chromosome[g]
			}
		}
		next = append(next, member{chromosome: child})
	}
	return next
}

// Evolve runs the generation loop until the improvement-based stop
// criterion fires, the hard generation ceiling is reached, or ctx is
// cancelled between generations (spec §5: "finishes the current
// generation, then stops"; §4.6 evolution steps 3-5).
func (e *Engine) Evolve(ctx context.Context) (Result, error) {
	if !e.state.canEvolve() {
		return Result{}, ErrInvalidStateTransition
	}
	e.state = StateEvolving
	e.bestFitness = -1

	for {
		if err := e.evaluateGeneration(ctx); err != nil {
			return Result{}, err
		}
		e.rankPopulation()

		for _, m := range e.population {
			if m.fitness >= fitness.ConstraintBrokenPenalty {
				e.penaltyCount++
			}
		}

		best := e.population[0]
		if e.bestFitness < 0 || best.fitness < e.bestFitness {
			e.bestFitness = best.fitness
			e.bestChromosome = append(Chromosome(nil), best.chromosome...)
			e.bestGeneration = e.generation
		}

		if e.opts.OnGeneration != nil {
			e.opts.OnGeneration(GenerationEvent{
				Generation:     e.generation,
				BestFitness:    best.fitness,
				BestAssignment: best.assignment,
				PopulationSize: len(e.population),
			})
		}

		stalled := e.generation-e.bestGeneration >= e.opts.GenerationsToStop
		exhausted := e.generation >= e.opts.MaxGenerations
		if stalled || exhausted {
			break
		}

		select {
		case <-ctx.Done():
			e.state = StateStopped
			return e.result(), ctx.Err()
		default:
		}

		e.population = e.nextGeneration()
		e.generation++
	}

	e.state = StateStopped
	return e.result(), nil
}

func (e *Engine) result() Result {
	return Result{
		BestChromosome: e.bestChromosome,
		BestFitness:    e.bestFitness,
		BestGeneration: e.bestGeneration,
		Generations:    e.generation + 1,
		PenaltyCount:   e.penaltyCount,
	}
}

// BestAssignment decodes the best chromosome found, for callers that want
// the final cluster assignment rather than just its fitness.
func (e *Engine) BestAssignment() (*assignment.Assignment, error) {
	_, a, err := e.inst.Decode(e.bestChromosome)
	return a, err
}
