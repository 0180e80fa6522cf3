package balance

import (
	"container/heap"
	"sort"
	"sync"
)

type ranked struct {
	comp Composition
	key  float64
	ord  uint64
}

// better reports whether x should rank above y: lower combined key wins,
// ties keep discovery order.
func better(x, y ranked) bool {
	if x.key != y.key {
		return x.key < y.key
	}
	return x.ord < y.ord
}

// rankedHeap is a max-heap: the root is the worst retained composition.
type rankedHeap []ranked

func (h rankedHeap) Len() int            { return len(h) }
func (h rankedHeap) Less(i, j int) bool  { return better(h[j], h[i]) }
func (h rankedHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *rankedHeap) Push(x interface{}) { *h = append(*h, x.(ranked)) }
func (h *rankedHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// topN retains the n best compositions seen so far. Safe for concurrent
// use; ranking depends only on (key, ord), never on arrival order.
type topN struct {
	mu    sync.Mutex
	limit int
	h     rankedHeap
}

func newTopN(limit int) *topN {
	return &topN{
		limit: limit,
		h:     make(rankedHeap, 0, limit),
	}
}

// threshold returns the worst retained key. When the accumulator is not
// full yet every candidate is worth scoring, so ok is false.
func (t *topN) threshold() (worst float64, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.h) < t.limit {
		return 0, false
	}
	return t.h[0].key, true
}

func (t *topN) offer(comp Composition, key float64, ord uint64) {
	r := ranked{comp: comp, key: key, ord: ord}
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.h) < t.limit {
		heap.Push(&t.h, r)
		return
	}
	if better(r, t.h[0]) {
		t.h[0] = r
		heap.Fix(&t.h, 0)
	}
}

// results drains the accumulator, best first.
func (t *topN) results() []Composition {
	t.mu.Lock()
	defer t.mu.Unlock()
	sorted := make([]ranked, len(t.h))
	copy(sorted, t.h)
	sort.Slice(sorted, func(i, j int) bool { return better(sorted[i], sorted[j]) })
	out := make([]Composition, len(sorted))
	for i := range sorted {
		out[i] = sorted[i].comp
	}
	return out
}
