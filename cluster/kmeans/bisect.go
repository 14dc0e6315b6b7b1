package kmeans

import (
	"math/rand"

	"github.com/dhplan/dhplanner/internal/geometry"
)

// splitGroup is one in-progress bisection group: indices into the original
// points slice.
type splitGroup struct {
	members []int
}

// BisectingKMeans partitions points into at most k clusters by repeatedly
// splitting the largest current cluster into two with weighted k-means++
// until k clusters exist (spec §4.4: "splitting the largest cluster at
// each bisection"). It stops early, returning fewer than k clusters, when
// the largest cluster has a single point or a split leaves one side empty.
// rng must be seeded by the caller for reproducibility.
func BisectingKMeans(points []Point, k int, rng *rand.Rand) (*Result, error) {
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}
	if k <= 0 {
		return nil, ErrNonPositiveK
	}

	var total float64
	for _, p := range points {
		total += p.Weight
	}
	if total <= 0 {
		return nil, ErrZeroTotalWeight
	}

	groups := []splitGroup{{members: indices(len(points))}}

	for len(groups) < k {
		splitIdx := largestGroup(groups)
		target := groups[splitIdx]

		if len(target.members) < 2 {
			break // cannot split further; fewer natural clusters than requested k
		}

		sub := make([]Point, len(target.members))
		for i, idx := range target.members {
			sub[i] = points[idx]
		}

		labels, _ := twoMeans(sub, rng)

		var left, right []int
		for i, idx := range target.members {
			if labels[i] == 0 {
				left = append(left, idx)
			} else {
				right = append(right, idx)
			}
		}
		if len(left) == 0 || len(right) == 0 {
			break // degenerate split (all points coincide); stop bisecting
		}

		groups[splitIdx] = splitGroup{members: left}
		groups = append(groups, splitGroup{members: right})
	}

	labels := make(map[string]int, len(points))
	centers := make([]geometry.Point, len(groups))
	for gi, g := range groups {
		sumX, sumY, sumW := 0.0, 0.0, 0.0
		for _, idx := range g.members {
			labels[points[idx].ID] = gi
			p := points[idx]
			sumX += p.Pos.X * p.Weight
			sumY += p.Pos.Y * p.Weight
			sumW += p.Weight
		}
		if sumW > 0 {
			centers[gi] = geometry.Point{X: sumX / sumW, Y: sumY / sumW}
		}
	}

	return &Result{Labels: labels, Centers: centers}, nil
}

func indices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func largestGroup(groups []splitGroup) int {
	best, bestSize := 0, -1
	for i, g := range groups {
		if len(g.members) > bestSize {
			best, bestSize = i, len(g.members)
		}
	}
	return best
}
