// Package loop implements Local Outlier Probability (LoOP) scoring.
//
// LoOP assigns each observation a probability in [0, 1] that it is a
// density-based outlier relative to its local neighborhood. Unlike the
// unbounded factor produced by LOF, the score is directly interpretable
// as a probability, so results are comparable across datasets without
// per-dataset threshold tuning.
//
// Basic usage:
//
//	cfg := loop.DefaultConfig()
//	cfg.NNeighbors = 20
//	result, err := loop.Score(data, cfg)
//	// result.Scores[i] is the outlier probability of point i
//
// When a cluster assignment for the data already exists (for example
// from a prior clustering step), neighborhoods and aggregate statistics
// are computed within each cluster:
//
//	result, err := loop.ScoreClustered(data, labels, cfg)
//
// Missing values (NaN features) do not abort scoring: they surface as
// NaN in the affected observations' scores while the rest of the
// dataset is scored normally.
//
// Based on Kriegel, Kröger, Schubert, Zimek: "LoOP: Local Outlier
// Probabilities" (CIKM 2009).
package loop
