package dmysssp

import "container/heap"

// FrontierSet is a set of vertices, used for the frontier F passed
// between recursion levels and for BMSSP's working set S. Modeled on
// the teacher's NodeSet: a map gives O(1) membership and insertion at
// the cost of no intrinsic order, which is fine since every consumer
// that needs order (pivot selection, block partitioning, bounded
// extraction) sorts or heapifies explicitly.
type FrontierSet map[VertexID]struct{}

// NewFrontierSet builds a FrontierSet from the given vertices.
func NewFrontierSet(vertices ...VertexID) FrontierSet {
	s := make(FrontierSet, len(vertices))
	for _, v := range vertices {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts v into the set.
func (s FrontierSet) Add(v VertexID) { s[v] = struct{}{} }

// Remove deletes v from the set.
func (s FrontierSet) Remove(v VertexID) { delete(s, v) }

// Has reports whether v is in the set.
func (s FrontierSet) Has(v VertexID) bool {
	_, ok := s[v]
	return ok
}

// Len returns the set's size.
func (s FrontierSet) Len() int { return len(s) }

// ToSlice returns the set's members in unspecified order.
func (s FrontierSet) ToSlice() []VertexID {
	out := make([]VertexID, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	return out
}

// ExtractMinBounded returns the frontier vertex with the smallest d[v]
// satisfying d[v] < B, and true. If every member's distance is >= B (or
// the frontier is empty), it returns the zero VertexID and false. Spec
// §4.2 leaves the implementation free; this is a direct linear scan,
// which is the right choice when FrontierSet is used as the literal
// contract type. BMSSP's hot loop uses the heap-backed boundedQueue
// below instead, for the same contract at better amortized cost.
func ExtractMinBounded(frontier FrontierSet, d Distances, B float64) (VertexID, bool) {
	best := VertexID(0)
	bestDist := Inf
	found := false
	for v := range frontier {
		if d[v] < B && d[v] < bestDist {
			best, bestDist, found = v, d[v], true
		}
	}
	return best, found
}

// boundedQueueItem is one entry in the heap-backed working queue used by
// BMSSP. It records the distance snapshot at insertion time; a popped
// item is discarded if that snapshot no longer matches d[vertex]
// (lazy decrease-key; dijkstraHeap.update in dijkstra.go instead fixes
// the priority in place).
type boundedQueueItem struct {
	vertex VertexID
	dist   float64
	index  int
}

type boundedQueueHeap []*boundedQueueItem

func (h boundedQueueHeap) Len() int            { return len(h) }
func (h boundedQueueHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h boundedQueueHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *boundedQueueHeap) Push(x interface{}) {
	item := x.(*boundedQueueItem)
	item.index = len(*h)
	*h = append(*h, item)
}
func (h *boundedQueueHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// boundedQueue is the working set S of spec §4.5's bmssp_single_round:
// a min-priority queue over distance. Membership is not tracked: a
// vertex may be pushed more than once, and extractMin skips the stale
// copies.
type boundedQueue struct {
	h boundedQueueHeap
}

func newBoundedQueue() *boundedQueue {
	q := &boundedQueue{}
	heap.Init(&q.h)
	return q
}

func (q *boundedQueue) push(v VertexID, dist float64) {
	heap.Push(&q.h, &boundedQueueItem{vertex: v, dist: dist})
}

func (q *boundedQueue) empty() bool { return q.h.Len() == 0 }

// extractMin pops the minimum-distance entry whose snapshot still
// matches d, skipping stale entries left behind by relaxations that
// improved a vertex already sitting in the queue.
func (q *boundedQueue) extractMin(d Distances) (VertexID, bool) {
	for q.h.Len() > 0 {
		item := heap.Pop(&q.h).(*boundedQueueItem)
		if item.dist != d[item.vertex] {
			continue // stale: a better distance was pushed later
		}
		return item.vertex, true
	}
	return 0, false
}
