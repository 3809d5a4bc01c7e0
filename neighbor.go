package loop

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// neighborDistances computes the neighbor-distance statistics for one
// cluster. data is flat row-major with dims columns. For each member it
// sorts the distances to the other cluster members ascending, takes the
// first k as the neighborhood, and writes the mean of those distances
// into contextDist and the smallest into closestDist at the member's
// index. The caller guarantees len(members) > k.
//
// NaN distances (from missing feature values) order after every finite
// distance, so an observation with NaN features degrades only its own
// statistics unless the cluster runs out of finite neighbors.
func neighborDistances(data []float64, dims int, members []int, k int, metric DistanceMetric, contextDist, closestDist []float64) {
	dists := make([]float64, len(members)-1)
	for a, i := range members {
		row := data[i*dims : (i+1)*dims]
		d := dists[:0]
		for b, j := range members {
			if b == a {
				continue
			}
			d = append(d, metric.Distance(row, data[j*dims:(j+1)*dims]))
		}
		sortNaNLast(d)
		contextDist[i] = stat.Mean(d[:k], nil)
		closestDist[i] = d[0]
	}
}

// sortNaNLast sorts ascending with NaN values after all numbers,
// matching numpy's sort order so missing-value artifacts never displace
// real neighbors.
func sortNaNLast(d []float64) {
	sort.Slice(d, func(i, j int) bool {
		return d[i] < d[j] || (math.IsNaN(d[j]) && !math.IsNaN(d[i]))
	})
}

// allContextDistancesZero reports whether every non-NaN context
// distance is exactly zero, which means the dataset consists of
// duplicate points (or NNeighbors is too small) and every downstream
// dispersion statistic is undefined.
func allContextDistancesZero(contextDist []float64) bool {
	for _, v := range contextDist {
		if v != 0 {
			return false
		}
	}
	return true
}
