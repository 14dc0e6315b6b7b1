package brkga

import (
	"sort"

	"github.com/dhplan/dhplanner/assignment"
	"github.com/dhplan/dhplanner/catalogue"
	"github.com/dhplan/dhplanner/fitness"
	"github.com/dhplan/dhplanner/metric"
)

// pivotToken is the synthetic token representing the decoder's cut between
// served and excluded buildings (spec §4.6 step 3, glossary: "Pivot
// token"). The leading NUL byte keeps it disjoint from any real building
// ID, which are ordinary user-supplied strings.
const pivotToken = "\x00pivot"

// Instance is the static, read-only context a chromosome is decoded
// against: the token sequence, the capacitated-assignment parameters, and
// the shared graph/catalogue state the fitness evaluator needs. One
// Instance is built per coarse group and reused, read-only, by every
// decode call — including in parallel across generation workers (spec §5).
type Instance struct {
	tokens        []string
	tokenIndex    map[string]int
	buildingCount int
	pivotStrategy PivotStrategy
	k             int
	capacity      float64
	demand        map[string]float64
	mg            *metric.Graph
	cat           *catalogue.Catalogue
	prices        catalogue.PriceTable
}

// NewInstance builds a decoding Instance. buildingIDs is the canonical,
// caller-fixed order of member tokens; the same order must be used for
// every chromosome decoded against this Instance, since chromosome gene i
// corresponds to token i.
func NewInstance(buildingIDs []string, pivotStrategy PivotStrategy, k int, capacity float64, demand map[string]float64, mg *metric.Graph, cat *catalogue.Catalogue, prices catalogue.PriceTable) (*Instance, error) {
	if len(buildingIDs) == 0 {
		return nil, ErrEmptyInstance
	}
	if k < 1 || k > len(buildingIDs) {
		return nil, ErrInvalidK
	}

	tokens := make([]string, 0, len(buildingIDs)+pivotStrategy.pivotCount())
	tokens = append(tokens, buildingIDs...)
	if pivotStrategy == PivotSingle {
		tokens = append(tokens, pivotToken)
	}
	idx := make(map[string]int, len(tokens))
	for i, t := range tokens {
		idx[t] = i
	}

	return &Instance{
		tokens:        tokens,
		tokenIndex:    idx,
		buildingCount: len(buildingIDs),
		pivotStrategy: pivotStrategy,
		k:             k,
		capacity:      capacity,
		demand:        demand,
		mg:            mg,
		cat:           cat,
		prices:        prices,
	}, nil
}

// TokenCount is the chromosome length this Instance expects: N buildings
// plus any pivot tokens (spec §4.6: "length N = |B| (+ K_pivot)").
func (inst *Instance) TokenCount() int { return len(inst.tokens) }

// permutation returns the token indices sorted ascending by chromosome gene
// value (spec §4.6 decoder step 1).
func permutation(c Chromosome) []int {
	idx := make([]int, len(c))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return c[idx[i]] < c[idx[j]] })
	return idx
}

// nearestCenter returns the center among candidates with spare residual for
// demand, closest to member by metric-graph distance; ok is false if none
// qualifies (spec §4.6 step 5).
func nearestCenter(mg *metric.Graph, member string, candidates []string, residual map[string]float64, demand float64) (string, bool) {
	best := ""
	bestDist := 0.0
	found := false
	for _, c := range candidates {
		if residual[c] < demand {
			continue
		}
		e, ok := mg.Edge(member, c)
		dist := 0.0
		if ok {
			dist = e.Weight
		}
		if !found || dist < bestDist {
			best, bestDist, found = c, dist, true
		}
	}
	return best, found
}

// Decode maps a chromosome to (fitness, assignment). A structural mismatch
// (wrong chromosome length) is a Go error; an infeasible or unsizeable
// candidate is not — it decodes successfully to the CONSTRAINT_BROKEN
// penalty, so the evolution loop can rank it like any other chromosome.
func (inst *Instance) Decode(c Chromosome) (float64, *assignment.Assignment, error) {
	if len(c) != len(inst.tokens) {
		return 0, nil, ErrChromosomeLength
	}

	idx := permutation(c)
	ordered := make([]string, len(idx))
	for i, ix := range idx {
		ordered[i] = inst.tokens[ix]
	}

	prefix := ordered[:inst.k]
	if inst.pivotStrategy == PivotSingle {
		for _, t := range prefix {
			if t == pivotToken {
				return fitness.ConstraintBrokenPenalty, nil, nil
			}
		}
	}

	centers := append([]string(nil), prefix...)
	residual := make(map[string]float64, len(centers))
	for _, center := range centers {
		residual[center] = inst.capacity - inst.demand[center]
	}

	a := assignment.NewAssignment()
	clusterByCenter := make(map[string]*assignment.Cluster, len(centers))
	for i, center := range centers {
		clusterByCenter[center] = a.AddCluster(i, center, []string{center})
	}

	rest := ordered[inst.k:]
	dumping := false
	for _, token := range rest {
		if dumping {
			a.NonMember = append(a.NonMember, token)
			continue
		}
		if inst.pivotStrategy == PivotSingle && token == pivotToken {
			dumping = true
			continue
		}
		center, ok := nearestCenter(inst.mg, token, centers, residual, inst.demand[token])
		if !ok {
			a.NonMember = append(a.NonMember, token)
			continue
		}
		residual[center] -= inst.demand[token]
		cl := clusterByCenter[center]
		cl.Members = append(cl.Members, token)
	}

	f, err := fitness.Evaluate(a, inst.mg, inst.demand, inst.cat, inst.prices)
	if err != nil {
		return 0, nil, err
	}
	return f, a, nil
}
