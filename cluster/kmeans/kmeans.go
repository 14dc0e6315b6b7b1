package kmeans

import (
	"math/rand"

	"github.com/dhplan/dhplanner/internal/geometry"
)

const maxLloydIterations = 100

// twoMeans runs weighted Lloyd's algorithm with k=2 over points, seeded by
// weighted k-means++, until labels stop changing or maxLloydIterations is
// reached.
func twoMeans(points []Point, rng *rand.Rand) (labels []int, centers []geometry.Point) {
	centers = seedPlusPlus(points, 2, rng)
	labels = make([]int, len(points))

	for iter := 0; iter < maxLloydIterations; iter++ {
		changed := false
		for i, p := range points {
			best := nearestCenter(p.Pos, centers)
			if best != labels[i] {
				labels[i] = best
				changed = true
			}
		}

		newCenters, hasMembers := weightedCentroids(points, labels, len(centers))
		for i := range centers {
			if hasMembers[i] {
				centers[i] = newCenters[i]
			}
		}

		if iter > 0 && !changed {
			break
		}
	}

	return labels, centers
}

func nearestCenter(p geometry.Point, centers []geometry.Point) int {
	best, bestDist := 0, geometry.Dist(p, centers[0])
	for i := 1; i < len(centers); i++ {
		if d := geometry.Dist(p, centers[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// weightedCentroids computes the demand-weighted centroid of each label
// group, reporting which groups received any members so the caller can
// leave an empty group's center untouched rather than collapsing it to the
// origin.
func weightedCentroids(points []Point, labels []int, k int) (centers []geometry.Point, hasMembers []bool) {
	sumX := make([]float64, k)
	sumY := make([]float64, k)
	sumW := make([]float64, k)

	for i, p := range points {
		l := labels[i]
		sumX[l] += p.Pos.X * p.Weight
		sumY[l] += p.Pos.Y * p.Weight
		sumW[l] += p.Weight
	}

	centers = make([]geometry.Point, k)
	hasMembers = make([]bool, k)
	for l := 0; l < k; l++ {
		if sumW[l] == 0 {
			continue
		}
		centers[l] = geometry.Point{X: sumX[l] / sumW[l], Y: sumY[l] / sumW[l]}
		hasMembers[l] = true
	}
	return centers, hasMembers
}
