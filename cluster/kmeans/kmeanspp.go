package kmeans

import (
	"math/rand"

	"github.com/dhplan/dhplanner/internal/geometry"
)

// seedPlusPlus picks k initial centers from points using weighted
// k-means++: the first center is chosen with probability proportional to
// weight, and each subsequent center with probability proportional to
// weight · (distance to the nearest already-chosen center)².
func seedPlusPlus(points []Point, k int, rng *rand.Rand) []geometry.Point {
	centers := make([]geometry.Point, 0, k)

	first := weightedChoice(points, nil, rng)
	centers = append(centers, points[first].Pos)

	nearestSq := make([]float64, len(points))
	for i, p := range points {
		d := geometry.Dist(p.Pos, centers[0])
		nearestSq[i] = d * d
	}

	for len(centers) < k {
		idx := weightedChoice(points, nearestSq, rng)
		centers = append(centers, points[idx].Pos)

		for i, p := range points {
			d := geometry.Dist(p.Pos, points[idx].Pos)
			if sq := d * d; sq < nearestSq[i] {
				nearestSq[i] = sq
			}
		}
	}

	return centers
}

// weightedChoice draws an index from points with probability proportional
// to weight · scale[i] (scale nil means uniform weight only).
func weightedChoice(points []Point, scale []float64, rng *rand.Rand) int {
	total := 0.0
	scores := make([]float64, len(points))
	for i, p := range points {
		s := p.Weight
		if scale != nil {
			s *= scale[i]
		}
		scores[i] = s
		total += s
	}

	if total <= 0 {
		return rng.Intn(len(points)) // degenerate: fall back to uniform
	}

	r := rng.Float64() * total
	var cum float64
	for i, s := range scores {
		cum += s
		if r <= cum {
			return i
		}
	}
	return len(points) - 1
}
