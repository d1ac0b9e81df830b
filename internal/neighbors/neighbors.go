// Package neighbors drives the parallel top-K neighbor search: one
// worker-pool task per user, each filling a bounded min-heap over
// cosine similarities to every other user and draining it into that
// user's Neighborhood slot. Grounded on
// original_source/src/main.c:find_nearest_neighbors and the pool
// submission loop in main().
package neighbors

import (
	"fmt"

	"github.com/katalvlaran/pc3-recommend/internal/heap"
	"github.com/katalvlaran/pc3-recommend/internal/similarity"
	"github.com/katalvlaran/pc3-recommend/internal/sparse"
	"github.com/katalvlaran/pc3-recommend/internal/workerpool"
)

// Neighborhood is the ≤K (id, similarity) sequence for one user, sorted
// by Similarity descending (best neighbor first). Nil/empty if no other
// user shares a positive similarity, or if that user's task failed
// (§7's "errors inside worker tasks ... leave the slot empty").
type Neighborhood []heap.Neighbor

// FailureReporter receives a message when a user's task could not
// complete — the core's replacement for the source's fprintf(stderr,...)
// inside find_nearest_neighbors.
type FailureReporter func(user int, err error)

// SearchAll computes neighborhoods[u] for every user 0..nrows-1 in
// parallel, using a workerpool.Pool with the given worker count. K
// bounds each neighborhood's size. Returns once every task has been
// submitted and the pool has drained (Destroy is the join barrier that
// makes every neighborhoods[u] write visible to the caller).
func SearchAll(mat *sparse.Matrix, norms []float64, k, workers int, stats workerpool.Stats, onFailure FailureReporter) ([]Neighborhood, error) {
	if stats == nil {
		stats = noopStats{}
	}
	if onFailure == nil {
		onFailure = func(int, error) {}
	}

	pool, err := workerpool.New(workers, workerpool.WithStats(stats))
	if err != nil {
		return nil, err
	}

	neighborhoods := make([]Neighborhood, mat.MajorDim)

	for u := 0; u < mat.MajorDim; u++ {
		user := u
		submitErr := pool.Submit(func(arg any) {
			nb, err := findNearestNeighbors(mat, norms, user, k)
			if err != nil {
				onFailure(user, err)
				return
			}
			neighborhoods[user] = nb
		}, nil)
		if submitErr != nil {
			pool.Destroy()
			return nil, submitErr
		}
	}

	pool.Destroy()
	return neighborhoods, nil
}

func findNearestNeighbors(mat *sparse.Matrix, norms []float64, user, k int) (Neighborhood, error) {
	if k <= 0 {
		return nil, fmt.Errorf("neighbors: k must be positive, got %d", k)
	}

	h := heap.New(k)
	for candidate := 0; candidate < mat.MajorDim; candidate++ {
		if candidate == user {
			continue
		}

		sim := similarity.CosineSim(mat, norms, user, candidate)
		if sim <= 0 {
			continue
		}

		nb := heap.Neighbor{ID: candidate, Similarity: sim}
		if h.Len() < h.Cap() {
			h.Insert(nb)
		} else if h.Min().Similarity < sim {
			h.ReplaceMin(nb)
		}
	}

	return Neighborhood(h.Drain()), nil
}

type noopStats struct{}

func (noopStats) TaskCompleted()  {}
func (noopStats) QueueDepth(int) {}
