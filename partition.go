package loop

import "sort"

// clusterPartition maps each cluster id to the ascending indices of its
// member observations. It is built once per Score call and looked up by
// every per-cluster stage; ids is sorted so iteration order (and thus
// floating-point accumulation order) is deterministic.
type clusterPartition struct {
	ids     []int
	members map[int][]int
}

func newClusterPartition(labels []int) *clusterPartition {
	members := make(map[int][]int)
	for i, c := range labels {
		members[c] = append(members[c], i)
	}
	ids := make([]int, 0, len(members))
	for c := range members {
		ids = append(ids, c)
	}
	sort.Ints(ids)
	return &clusterPartition{ids: ids, members: members}
}

// smallestSize returns the member count of the smallest cluster.
func (p *clusterPartition) smallestSize() int {
	smallest := 0
	for i, c := range p.ids {
		if n := len(p.members[c]); i == 0 || n < smallest {
			smallest = n
		}
	}
	return smallest
}
