// Package repair implements feasibility repair: nudging a k-means
// bootstrap partition until every cluster's summed demand fits within
// CAPACITY, and choosing each cluster's center building (spec §4.5).
package repair

import (
	"github.com/dhplan/dhplanner/assignment"
	"github.com/dhplan/dhplanner/internal/geometry"
)

// DistanceFunc returns the metric-graph distance between two buildings,
// used both to rank a deficit cluster's members by distance from its
// provisional center and to find the nearest receiving cluster for a swap.
type DistanceFunc func(a, b string) float64

// Repair returns a feasible assignment: every cluster's total demand is at
// most capacity, with infeasible members swapped to a nearer receiving
// cluster or, failing that, moved to the NonMember bucket. coords supplies
// each building's planar position, used only for the final center-selection
// step (nearest member to the cluster's geometric centroid).
func Repair(input *assignment.Assignment, demand map[string]float64, capacity float64, coords map[string]geometry.Point, dist DistanceFunc) (*assignment.Assignment, error) {
	if input == nil || len(input.Clusters) == 0 {
		return nil, ErrEmptyAssignment
	}

	members := make([][]string, len(input.Clusters))
	centerOf := make([]string, len(input.Clusters))
	for i, c := range input.Clusters {
		members[i] = append([]string(nil), c.Members...)
		centerOf[i] = c.Center
	}
	nonMember := append([]string(nil), input.NonMember...)

	residual := func(i int) float64 {
		r := capacity
		for _, m := range members[i] {
			r -= demand[m]
		}
		return r
	}

	provisionalCenter := func(i int) string {
		if centerOf[i] != "" {
			return centerOf[i]
		}
		if len(members[i]) > 0 {
			return members[i][0]
		}
		return ""
	}

	removeMember := func(i int, building string) {
		out := members[i][:0]
		for _, m := range members[i] {
			if m != building {
				out = append(out, m)
			}
		}
		members[i] = out
	}

	for i := range members {
		if residual(i) >= 0 {
			continue
		}

		center := provisionalCenter(i)
		ordered := append([]string(nil), members[i]...)
		sortByDistanceDesc(ordered, center, dist)

		for _, candidate := range ordered {
			if residual(i) >= 0 {
				break
			}

			receiver := nearestReceiver(i, candidate, members, centerOf, demand, residual, dist)
			if receiver == -1 {
				removeMember(i, candidate)
				nonMember = append(nonMember, candidate)
				continue
			}

			removeMember(i, candidate)
			members[receiver] = append(members[receiver], candidate)
		}
	}

	out := assignment.NewAssignment()
	for i, c := range input.Clusters {
		center := chooseCenter(members[i], coords)
		out.AddCluster(c.ID, center, members[i])
	}
	out.NonMember = nonMember
	return out, nil
}

// sortByDistanceDesc orders ids by dist(id, center) descending (insertion
// sort: partition sizes are small relative to the whole building set).
func sortByDistanceDesc(ids []string, center string, dist DistanceFunc) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && dist(ids[j-1], center) < dist(ids[j], center); j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}

// nearestReceiver finds the cluster (excluding from) with the smallest
// dist(candidate, its provisional center) among clusters whose residual
// exceeds the candidate's demand. Returns -1 if none qualifies.
func nearestReceiver(from int, candidate string, members [][]string, centerOf []string, demand map[string]float64, residual func(int) float64, dist DistanceFunc) int {
	best, bestDist := -1, 0.0
	need := demand[candidate]

	for j := range members {
		if j == from {
			continue
		}
		if residual(j) <= need {
			continue
		}
		representative := centerOf[j]
		if representative == "" {
			if len(members[j]) == 0 {
				continue
			}
			representative = members[j][0]
		}
		d := dist(candidate, representative)
		if best == -1 || d < bestDist {
			best, bestDist = j, d
		}
	}
	return best
}

// chooseCenter returns the member nearest to the geometric (unweighted)
// centroid of members, per §4.5 step 4.
func chooseCenter(members []string, coords map[string]geometry.Point) string {
	if len(members) == 0 {
		return ""
	}

	var sumX, sumY float64
	for _, m := range members {
		p := coords[m]
		sumX += p.X
		sumY += p.Y
	}
	centroid := geometry.Point{X: sumX / float64(len(members)), Y: sumY / float64(len(members))}

	best, bestDist := members[0], geometry.Dist(coords[members[0]], centroid)
	for _, m := range members[1:] {
		if d := geometry.Dist(coords[m], centroid); d < bestDist {
			best, bestDist = m, d
		}
	}
	return best
}
