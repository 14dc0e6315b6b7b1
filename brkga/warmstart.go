package brkga

import "github.com/dhplan/dhplanner/assignment"

// Encode turns a feasible assignment into a chromosome (spec §4.6 step 1):
// concatenate [centers, members, excluded] — with the pivot token inserted
// between members and excluded under PivotSingle, so the decoder's greedy
// walk dumps the same excluded set via the pivot cut — then assign strictly
// increasing keys so decode's ascending sort reproduces this exact order.
//
// Decoding the result gives back the same centers when a has exactly K
// clusters, and the same excluded set. Members are not pinned to their
// clusters: the decoder places each one at the nearest center that still
// has room for it, so a member returns to its original cluster only when
// that cluster's center is the one the decoder picks.
func Encode(inst *Instance, a *assignment.Assignment) (Chromosome, error) {
	if len(a.NonMember) > 0 && inst.pivotStrategy != PivotSingle {
		return nil, ErrNoWarmStartTarget
	}

	order := make([]string, 0, inst.TokenCount())
	for _, c := range a.Clusters {
		order = append(order, c.Center)
	}
	for _, c := range a.Clusters {
		for _, m := range c.Members {
			if m == c.Center {
				continue
			}
			order = append(order, m)
		}
	}
	if inst.pivotStrategy == PivotSingle {
		order = append(order, pivotToken)
	}
	order = append(order, a.NonMember...)

	if len(order) != inst.TokenCount() {
		return nil, ErrChromosomeLength
	}

	chromosome := make(Chromosome, inst.TokenCount())
	seen := make(map[string]bool, len(order))
	n := float64(len(order))
	for i, token := range order {
		if seen[token] {
			return nil, ErrChromosomeLength
		}
		seen[token] = true
		idx, ok := inst.tokenIndex[token]
		if !ok {
			return nil, ErrChromosomeLength
		}
		chromosome[idx] = float64(i+1) / (n + 1)
	}

	return chromosome, nil
}
