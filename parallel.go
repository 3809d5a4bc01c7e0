package loop

import "sync"

// neighborDistancesAll runs the neighbor-distance stage for every
// cluster, fanning clusters out across up to numWorkers goroutines.
// Clusters write disjoint ranges of contextDist and closestDist, so no
// synchronization is needed for writes and the result is bitwise
// identical to sequential execution. Falls back to a sequential loop
// when numWorkers <= 1 or there is only one cluster.
func neighborDistancesAll(data []float64, dims int, p *clusterPartition, k int, metric DistanceMetric, contextDist, closestDist []float64, numWorkers int) {
	if numWorkers <= 1 || len(p.ids) <= 1 {
		for _, id := range p.ids {
			neighborDistances(data, dims, p.members[id], k, metric, contextDist, closestDist)
		}
		return
	}

	if numWorkers > len(p.ids) {
		numWorkers = len(p.ids)
	}

	jobs := make(chan []int, len(p.ids))
	for _, id := range p.ids {
		jobs <- p.members[id]
	}
	close(jobs)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for members := range jobs {
				neighborDistances(data, dims, members, k, metric, contextDist, closestDist)
			}
		}()
	}
	wg.Wait()
}
