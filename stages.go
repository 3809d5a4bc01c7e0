package loop

import "math"

// The element-wise pipeline stages. Each is a pure transform from one
// or more columns of the statistics table to a new column; Inf and NaN
// follow IEEE semantics so missing-value artifacts propagate instead of
// aborting the run.

// StandardDistances computes sqrt(ssd / |contextDist|) element-wise.
// The absolute value guards against sign artifacts from floating-point
// division. A zero context distance yields +Inf; NaN propagates.
func StandardDistances(contextDist, clusterSSD []float64) []float64 {
	out := make([]float64, len(contextDist))
	for i, v := range contextDist {
		out[i] = math.Sqrt(clusterSSD[i] / math.Abs(v))
	}
	return out
}

// ProbSetDistances computes the probabilistic set distance
// 1 / (extent * standardDist) element-wise: a probabilistic analogue of
// neighborhood radius, monotonically decreasing in local dispersion.
func ProbSetDistances(extent float64, standardDist []float64) []float64 {
	out := make([]float64, len(standardDist))
	for i, v := range standardDist {
		out[i] = 1.0 / (extent * v)
	}
	return out
}

// PLOFs computes the probabilistic local outlier factor
// probSetDist/evProbSetDist - 1 element-wise. Zero means an
// observation's local density matches its cluster's expectation;
// positive means locally sparser, negative locally denser.
func PLOFs(probSetDist, evProbSetDist []float64) []float64 {
	out := make([]float64, len(probSetDist))
	for i, v := range probSetDist {
		out[i] = v/evProbSetDist[i] - 1.0
	}
	return out
}

// NPLOFs computes the normalization term extent * sqrt(evPlofSq)
// element-wise: the cluster's local scale for converting PLOF into a
// probability.
func NPLOFs(extent float64, evPlofSq []float64) []float64 {
	out := make([]float64, len(evPlofSq))
	for i, v := range evPlofSq {
		out[i] = extent * math.Sqrt(v)
	}
	return out
}

// LocalOutlierProbabilities computes the final LoOP score
// max(0, erf(plof / (nplof * sqrt(2)))) element-wise. Negative PLOF
// (denser than expected) clamps to zero; NaN propagates.
func LocalOutlierProbabilities(plof, nplof []float64) []float64 {
	out := make([]float64, len(plof))
	for i, v := range plof {
		out[i] = max(0, math.Erf(v/(nplof[i]*math.Sqrt2)))
	}
	return out
}
