package loop

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// clusterSumSquares fills dst with each cluster's sum of squared
// context distances, broadcast to all members. NaN members are excluded
// from the sum. A zero sum means the cluster has no usable dispersion;
// every later stage divides by it, so this is fatal.
func clusterSumSquares(p *clusterPartition, contextDist, dst []float64) error {
	for _, id := range p.ids {
		members := p.members[id]
		var sum float64
		for _, i := range members {
			if v := contextDist[i]; !math.IsNaN(v) {
				sum += v * v
			}
		}
		if sum == 0 {
			return &DegenerateClusterError{ClusterID: id, Field: "sum of squared context distances"}
		}
		for _, i := range members {
			dst[i] = sum
		}
	}
	return nil
}

// clusterMeans fills dst with each cluster's arithmetic mean of src
// over non-NaN members, broadcast to all members. A cluster with no
// non-NaN members broadcasts NaN.
func clusterMeans(p *clusterPartition, src, dst []float64) {
	var scratch []float64
	for _, id := range p.ids {
		members := p.members[id]
		scratch = scratch[:0]
		for _, i := range members {
			if v := src[i]; !math.IsNaN(v) {
				scratch = append(scratch, v)
			}
		}
		m := math.NaN()
		if len(scratch) > 0 {
			m = stat.Mean(scratch, nil)
		}
		for _, i := range members {
			dst[i] = m
		}
	}
}

// clusterMeanSquares fills dst with each cluster's mean of squared src
// values over non-NaN members, broadcast to all members. This is a
// second moment around zero, not a variance around the mean.
func clusterMeanSquares(p *clusterPartition, src, dst []float64) {
	var scratch []float64
	for _, id := range p.ids {
		members := p.members[id]
		scratch = scratch[:0]
		for _, i := range members {
			if v := src[i]; !math.IsNaN(v) {
				scratch = append(scratch, v*v)
			}
		}
		m := math.NaN()
		if len(scratch) > 0 {
			m = stat.Mean(scratch, nil)
		}
		for _, i := range members {
			dst[i] = m
		}
	}
}
