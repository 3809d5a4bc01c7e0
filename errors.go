package loop

import "fmt"

// ConfigError reports an invalid configuration value or an input whose
// shape is incompatible with the configuration. It is always returned
// before any distance computation starts.
type ConfigError struct {
	Param string // the offending parameter or input
	Msg   string // description including the rejected value
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("loop: invalid %s: %s", e.Param, e.Msg)
}

// DegenerateClusterError reports a cluster whose dispersion statistics
// are uniformly zero, leaving every downstream stage of the pipeline
// undefined. Typical causes are duplicate points or an NNeighbors value
// too small for the data. The whole computation is aborted; there is no
// partial result.
type DegenerateClusterError struct {
	ClusterID int    // cluster whose statistic degenerated
	Field     string // the statistic that was uniformly zero
}

func (e *DegenerateClusterError) Error() string {
	return fmt.Sprintf("loop: degenerate cluster %d: %s is zero for every member", e.ClusterID, e.Field)
}
