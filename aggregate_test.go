package loop

import (
	"errors"
	"math"
	"testing"
)

func TestClusterSumSquares_HandComputed(t *testing.T) {
	part := newClusterPartition([]int{0, 0, 0, 1, 1})
	ctx := []float64{1, 2, math.NaN(), 3, 4}
	dst := make([]float64, 5)

	if err := clusterSumSquares(part, ctx, dst); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Cluster 0: 1 + 4 (NaN member excluded) = 5; cluster 1: 9 + 16 = 25.
	want := []float64{5, 5, 5, 25, 25}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("ssd[%d]: got %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestClusterSumSquares_ZeroIsDegenerate(t *testing.T) {
	part := newClusterPartition([]int{0, 0, 2, 2})
	ctx := []float64{1, 2, 0, 0}
	err := clusterSumSquares(part, ctx, make([]float64, 4))

	var degErr *DegenerateClusterError
	if !errors.As(err, &degErr) {
		t.Fatalf("expected *DegenerateClusterError, got %T: %v", err, err)
	}
	if degErr.ClusterID != 2 {
		t.Errorf("ClusterID: got %d, want 2", degErr.ClusterID)
	}
}

func TestClusterSumSquares_AllNaNClusterIsDegenerate(t *testing.T) {
	// Excluding every member leaves an empty sum, which is zero.
	part := newClusterPartition([]int{0, 0})
	err := clusterSumSquares(part, []float64{math.NaN(), math.NaN()}, make([]float64, 2))
	var degErr *DegenerateClusterError
	if !errors.As(err, &degErr) {
		t.Fatalf("expected *DegenerateClusterError, got %T: %v", err, err)
	}
}

func TestClusterMeans_ExcludesNaN(t *testing.T) {
	part := newClusterPartition([]int{0, 0, 0, 1, 1})
	src := []float64{1, 2, math.NaN(), 10, 20}
	dst := make([]float64, 5)

	clusterMeans(part, src, dst)
	want := []float64{1.5, 1.5, 1.5, 15, 15}
	for i := range want {
		if !almostEqual(dst[i], want[i], floatTol) {
			t.Errorf("mean[%d]: got %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestClusterMeans_AllNaNClusterBroadcastsNaN(t *testing.T) {
	part := newClusterPartition([]int{0, 0, 1})
	src := []float64{math.NaN(), math.NaN(), 7}
	dst := make([]float64, 3)

	clusterMeans(part, src, dst)
	if !math.IsNaN(dst[0]) || !math.IsNaN(dst[1]) {
		t.Errorf("cluster 0: got %v, %v, want NaN", dst[0], dst[1])
	}
	if dst[2] != 7 {
		t.Errorf("cluster 1: got %v, want 7", dst[2])
	}
}

func TestClusterMeanSquares_HandComputed(t *testing.T) {
	part := newClusterPartition([]int{0, 0, 0})
	src := []float64{-1, 2, math.NaN()}
	dst := make([]float64, 3)

	clusterMeanSquares(part, src, dst)
	// (1 + 4) / 2 = 2.5: second moment around zero, NaN excluded.
	for i := range dst {
		if !almostEqual(dst[i], 2.5, floatTol) {
			t.Errorf("meansq[%d]: got %v, want 2.5", i, dst[i])
		}
	}
}

func TestClusterPartition_SortedIDsAndMembers(t *testing.T) {
	part := newClusterPartition([]int{5, -1, 5, 0, -1, 5})

	wantIDs := []int{-1, 0, 5}
	if len(part.ids) != len(wantIDs) {
		t.Fatalf("ids: got %v, want %v", part.ids, wantIDs)
	}
	for i := range wantIDs {
		if part.ids[i] != wantIDs[i] {
			t.Fatalf("ids: got %v, want %v", part.ids, wantIDs)
		}
	}

	wantMembers := map[int][]int{-1: {1, 4}, 0: {3}, 5: {0, 2, 5}}
	for id, want := range wantMembers {
		got := part.members[id]
		if len(got) != len(want) {
			t.Fatalf("members[%d]: got %v, want %v", id, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("members[%d]: got %v, want %v", id, got, want)
			}
		}
	}

	if s := part.smallestSize(); s != 1 {
		t.Errorf("smallestSize: got %d, want 1", s)
	}
}
