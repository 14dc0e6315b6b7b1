package density

// Options configures a DBSCAN run (spec §4.3).
type Options struct {
	Eps        float64 // distance threshold, in cost units (w_ij · f_ij)
	MinSamples float64 // density threshold, compared against summed neighbor weight
}

const noise = -1

// Run executes weighted DBSCAN over ids, using dist as the symmetric
// cost-weighted distance matrix and weight as each point's sample weight
// (building demand). A point's neighborhood density is the summed weight
// of points within Eps, including itself; a point is a core point when that
// sum is at least MinSamples.
//
// Returns cluster_id -> member IDs, with singleton clusters and noise
// (label −1) already dropped per §4.3.
func Run(ids []string, dist *DistanceMatrix, weight map[string]float64, opts Options) (map[int][]string, error) {
	n := len(ids)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if err := dist.checkSize(n); err != nil {
		return nil, err
	}
	if opts.Eps <= 0 {
		return nil, ErrNonPositiveEps
	}
	if opts.MinSamples <= 0 {
		return nil, ErrNonPositiveMinSamples
	}

	neighbors := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || dist.Get(i, j) <= opts.Eps {
				neighbors[i] = append(neighbors[i], j)
			}
		}
	}

	neighborWeight := func(idx []int) float64 {
		var sum float64
		for _, j := range idx {
			sum += weight[ids[j]]
		}
		return sum
	}

	isCore := make([]bool, n)
	for i := 0; i < n; i++ {
		isCore[i] = neighborWeight(neighbors[i]) >= opts.MinSamples
	}

	label := make([]int, n)
	for i := range label {
		label[i] = noise
	}

	nextCluster := 0
	for i := 0; i < n; i++ {
		if label[i] != noise || !isCore[i] {
			continue
		}

		cid := nextCluster
		nextCluster++
		label[i] = cid

		expanded := make([]bool, n)
		expanded[i] = true
		queue := append([]int(nil), neighbors[i]...)
		for len(queue) > 0 {
			j := queue[0]
			queue = queue[1:]

			if label[j] == noise {
				label[j] = cid
			}
			if !isCore[j] || expanded[j] {
				continue // border point, or a core point already expanded
			}
			expanded[j] = true
			queue = append(queue, neighbors[j]...)
		}
	}

	clusters := make(map[int][]string)
	for i, l := range label {
		if l == noise {
			continue
		}
		clusters[l] = append(clusters[l], ids[i])
	}

	for id, members := range clusters {
		if len(members) <= 1 {
			delete(clusters, id)
		}
	}

	return clusters, nil
}
