// Package heap implements the bounded min-heap used to keep the K
// highest-similarity neighbors seen in a single pass over candidate
// users. Grounded on original_source/src/main.c's heap_* family
// (heap_insert, heap_insert_remove_min, heap_extract_min, sift_up,
// sift_down), generalized to a reusable type instead of a file-local
// struct.
package heap

// Neighbor is a (candidate id, similarity) pair ordered by Similarity
// ascending inside a Heap.
type Neighbor struct {
	ID         int
	Similarity float64
}

// Heap is a binary min-heap over Neighbor, ordered by Similarity
// ascending, bounded at capacity K. It does not itself guarantee at
// most one entry per ID — the neighbor-search driver guarantees that by
// construction (a single pass, one candidate per iteration).
type Heap struct {
	cap   int
	items []Neighbor
}

// New allocates a Heap with the given capacity K.
func New(k int) *Heap {
	return &Heap{cap: k, items: make([]Neighbor, 0, k)}
}

// Len returns the current number of stored neighbors.
func (h *Heap) Len() int { return len(h.items) }

// Cap returns K, the heap's bound.
func (h *Heap) Cap() int { return h.cap }

// Min returns the current root (smallest similarity). Panics if empty;
// callers must check Len() > 0 first, matching the driver's own
// heap.size == k guard before consulting the root.
func (h *Heap) Min() Neighbor { return h.items[0] }

// Insert appends nb and sifts it up. Precondition: Len() < Cap().
func (h *Heap) Insert(nb Neighbor) {
	h.items = append(h.items, nb)
	h.siftUp(len(h.items) - 1)
}

// ReplaceMin overwrites the root with nb and sifts down. Precondition:
// Len() == Cap() and nb.Similarity > Min().Similarity — the driver
// never calls this otherwise, and the heap does not re-check the
// precondition itself (it mirrors the source's heap_insert_remove_min,
// which trusts its caller).
func (h *Heap) ReplaceMin(nb Neighbor) {
	h.items[0] = nb
	h.siftDown(0)
}

// ExtractMin removes and returns the root, restoring the heap property
// over the remaining Len()-1 elements.
func (h *Heap) ExtractMin() Neighbor {
	min := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]
	if len(h.items) > 0 {
		h.siftDown(0)
	}
	return min
}

// Drain repeatedly extracts the minimum and writes it into a fresh
// slice of length Len(), index Len()-1 down to 0, so the result is
// sorted by Similarity descending (best neighbor first) — matching the
// Neighborhood ordering §3 requires.
func (h *Heap) Drain() []Neighbor {
	out := make([]Neighbor, len(h.items))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = h.ExtractMin()
	}
	return out
}

func (h *Heap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[i].Similarity >= h.items[parent].Similarity {
			return
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *Heap) siftDown(i int) {
	for {
		left := 2*i + 1
		right := left + 1
		smallest := i

		if left < len(h.items) && h.items[left].Similarity < h.items[smallest].Similarity {
			smallest = left
		}
		if right < len(h.items) && h.items[right].Similarity < h.items[smallest].Similarity {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
