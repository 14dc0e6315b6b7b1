// Package assignment defines the shared representation of a candidate
// cluster partition — the value every clustering stage (density, k-means,
// repair) and the BRKGA decoder produce or consume.
package assignment

// NonMemberID is the sentinel cluster ID for buildings excluded from every
// cluster (spec §4.5's NON_MEMBER bucket, and the decoder's "pivot in
// single mode" and "no receiving center" outcomes).
const NonMemberID = -1

// Cluster is one partition: a set of building IDs with a chosen center.
type Cluster struct {
	ID      int
	Center  string // building ID; empty until a center is chosen
	Members []string
}

// TotalDemand sums demand(b) for b in Members, given a demand lookup.
func (c *Cluster) TotalDemand(demand map[string]float64) float64 {
	var sum float64
	for _, m := range c.Members {
		sum += demand[m]
	}
	return sum
}

// Assignment is a full partition of buildings: zero or more Clusters plus
// the NonMember bucket.
type Assignment struct {
	Clusters  []*Cluster
	NonMember []string
}

// NewAssignment returns an empty Assignment.
func NewAssignment() *Assignment {
	return &Assignment{}
}

// AddCluster appends a new cluster and returns it.
func (a *Assignment) AddCluster(id int, center string, members []string) *Cluster {
	c := &Cluster{ID: id, Center: center, Members: append([]string(nil), members...)}
	a.Clusters = append(a.Clusters, c)
	return c
}

// ClusterOf returns the cluster containing building b, or nil if b is in
// NonMember or absent entirely.
func (a *Assignment) ClusterOf(b string) *Cluster {
	for _, c := range a.Clusters {
		for _, m := range c.Members {
			if m == b {
				return c
			}
		}
	}
	return nil
}
