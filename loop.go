package loop

import (
	"fmt"
	"runtime"
)

// Config controls LoOP scoring behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Extent is the statistical extent parameter in (0, 1], analogous
	// to a number-of-standard-deviations cutoff: larger values make the
	// scoring less sensitive. Default: 0.997 (roughly three sigma).
	Extent float64

	// NNeighbors is the neighborhood size used for each observation.
	// Must be > 0 and strictly less than the size of the smallest
	// cluster, since a cluster cannot supply more neighbors than it has
	// other members. Default: 10.
	NNeighbors int

	// Metric is the distance function used to measure observation
	// similarity. Built-in: EuclideanMetric, ManhattanMetric,
	// ChebyshevMetric, MinkowskiMetric. Use DistanceFunc to wrap a
	// custom function. Default: EuclideanMetric.
	Metric DistanceMetric

	// Workers controls the number of goroutines used to process
	// clusters in the neighbor-distance stage. Results are identical
	// regardless of the value. 0 means use runtime.NumCPU().
	Workers int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Extent:     0.997,
		NNeighbors: 10,
		Metric:     EuclideanMetric{},
	}
}

// Result contains the output of LoOP scoring. All slices have one entry
// per observation, in input order.
type Result struct {
	// Scores holds the Local Outlier Probability of each observation:
	// a value in [0, 1], or NaN when the observation's input features
	// contained missing values.
	Scores []float64

	// ContextDistances holds each observation's mean distance to its
	// NNeighbors nearest neighbors within its cluster.
	ContextDistances []float64

	// ClosestNeighborDistances holds each observation's distance to its
	// single nearest neighbor within its cluster.
	ClosestNeighborDistances []float64
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.Extent <= 0 || cfg.Extent > 1 {
		return &ConfigError{Param: "Extent", Msg: fmt.Sprintf("must be in (0, 1], got %v", cfg.Extent)}
	}
	if cfg.NNeighbors <= 0 {
		return &ConfigError{Param: "NNeighbors", Msg: fmt.Sprintf("must be > 0, got %d", cfg.NNeighbors)}
	}
	return nil
}

// applyDefaults fills in zero-valued optional config fields with their defaults.
// Extent and NNeighbors are required and validated instead, so that a
// zero NNeighbors is reported as an error rather than silently replaced.
func applyDefaults(cfg *Config) {
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// emptyResult returns a Result with zero-length, non-nil slices.
func emptyResult() *Result {
	return &Result{
		Scores:                   []float64{},
		ContextDistances:         []float64{},
		ClosestNeighborDistances: []float64{},
	}
}

// statsTable is the pipeline's working state: one row per observation,
// one column per stage, all columns allocated upfront. It lives for a
// single Score call; cluster-level aggregates are broadcast to every
// member of their cluster.
type statsTable struct {
	contextDist   []float64
	closestDist   []float64
	clusterSSD    []float64
	standardDist  []float64
	probSetDist   []float64
	evProbSetDist []float64
	plof          []float64
	evPlofSq      []float64
	nplof         []float64
	scores        []float64
}

func newStatsTable(n int) *statsTable {
	return &statsTable{
		contextDist:   make([]float64, n),
		closestDist:   make([]float64, n),
		clusterSSD:    make([]float64, n),
		evProbSetDist: make([]float64, n),
		evPlofSq:      make([]float64, n),
	}
}

// Score computes the Local Outlier Probability of each observation,
// treating the whole dataset as a single neighborhood context. Each
// element of data is one observation; all observations must have the
// same number of features. Returns an error if the config is invalid.
func Score(data [][]float64, cfg Config) (*Result, error) {
	return ScoreClustered(data, nil, cfg)
}

// ScoreClustered computes the Local Outlier Probability of each
// observation within a pre-supplied cluster assignment: neighborhoods
// and aggregate statistics are restricted to each observation's own
// cluster. clusterLabels must have one entry per observation; nil
// assigns every observation to the same cluster, which is equivalent
// to Score.
func ScoreClustered(data [][]float64, clusterLabels []int, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	n := len(data)
	if clusterLabels != nil && len(clusterLabels) != n {
		return nil, &ConfigError{
			Param: "clusterLabels",
			Msg:   fmt.Sprintf("length %d does not match %d observations", len(clusterLabels), n),
		}
	}
	if n == 0 {
		return emptyResult(), nil
	}

	dims := len(data[0])
	if dims == 0 {
		return nil, &ConfigError{Param: "data", Msg: "observations must have at least one feature"}
	}
	for i, row := range data {
		if len(row) != dims {
			return nil, &ConfigError{
				Param: "data",
				Msg:   fmt.Sprintf("observation %d has %d features, want %d", i, len(row), dims),
			}
		}
	}

	if clusterLabels == nil {
		clusterLabels = make([]int, n)
	}
	part := newClusterPartition(clusterLabels)
	if smallest := part.smallestSize(); cfg.NNeighbors >= smallest {
		return nil, &ConfigError{
			Param: "NNeighbors",
			Msg:   fmt.Sprintf("must be < smallest cluster size %d, got %d", smallest, cfg.NNeighbors),
		}
	}

	flatData := make([]float64, n*dims)
	for i, row := range data {
		copy(flatData[i*dims:], row)
	}

	return fit(flatData, n, dims, part, cfg)
}

// fit runs the nine pipeline stages in dependency order over a fresh
// statistics table and extracts the final column. Degeneracy errors
// abort the run with no partial result; NaN from missing input values
// is carried through to the affected scores instead.
func fit(flatData []float64, n, dims int, part *clusterPartition, cfg Config) (*Result, error) {
	t := newStatsTable(n)

	neighborDistancesAll(flatData, dims, part, cfg.NNeighbors, cfg.Metric, t.contextDist, t.closestDist, cfg.Workers)
	if allContextDistancesZero(t.contextDist) {
		// Every cluster is degenerate in this case; name the first.
		return nil, &DegenerateClusterError{ClusterID: part.ids[0], Field: "context distance"}
	}

	if err := clusterSumSquares(part, t.contextDist, t.clusterSSD); err != nil {
		return nil, err
	}

	t.standardDist = StandardDistances(t.contextDist, t.clusterSSD)
	t.probSetDist = ProbSetDistances(cfg.Extent, t.standardDist)
	clusterMeans(part, t.probSetDist, t.evProbSetDist)
	t.plof = PLOFs(t.probSetDist, t.evProbSetDist)
	clusterMeanSquares(part, t.plof, t.evPlofSq)
	t.nplof = NPLOFs(cfg.Extent, t.evPlofSq)
	t.scores = LocalOutlierProbabilities(t.plof, t.nplof)

	return &Result{
		Scores:                   t.scores,
		ContextDistances:         t.contextDist,
		ClosestNeighborDistances: t.closestDist,
	}, nil
}
