package dmysssp

import "container/heap"

// ReferenceDijkstra is a standard binary-heap Dijkstra kept alongside
// the DMY engine for cross-validation (spec §8 property 6, the
// equivalence law). It is adapted from the teacher's
// Dijkstra/DijkstraSingleSource, ported from its map-based Graph to this
// package's CSR-style Graph and an indexed heap with in-place
// decrease-key.
func ReferenceDijkstra(g *Graph, source VertexID) (Distances, error) {
	n := g.VertexCount()
	if int(source) < 1 || int(source) > n {
		return nil, ErrInvalidSource
	}

	d := NewDistances(n, source)
	visited := make([]bool, n+1)

	pq := make(dijkstraHeap, 0, n)
	items := make([]*dijkstraItem, n+1)
	for v := 1; v <= n; v++ {
		items[v] = &dijkstraItem{node: VertexID(v), dist: d[v]}
	}
	for v := 1; v <= n; v++ {
		heap.Push(&pq, items[v])
	}

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*dijkstraItem)
		u := item.node
		if visited[u] {
			continue
		}
		visited[u] = true

		for i, e := range g.OutEdges(u) {
			v := e.Target
			alt := d[u] + g.Weight(u, i)
			if alt < d[v] {
				d[v] = alt
				if !visited[v] && items[v].index >= 0 {
					pq.update(items[v], alt)
				}
			}
		}
	}

	return d, nil
}

type dijkstraItem struct {
	node  VertexID
	dist  float64
	index int
}

type dijkstraHeap []*dijkstraItem

func (h dijkstraHeap) Len() int           { return len(h) }
func (h dijkstraHeap) Less(i, j int) bool { return h[i].dist < h[j].dist }
func (h dijkstraHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *dijkstraHeap) Push(x interface{}) {
	item := x.(*dijkstraItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *dijkstraHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// update mirrors the teacher's dijkstraHeap.update: mutate the
// priority in place, then let heap.Fix restore the invariant in
// O(log n) instead of a push+lazy-pop cycle.
func (h *dijkstraHeap) update(item *dijkstraItem, dist float64) {
	item.dist = dist
	heap.Fix(h, item.index)
}
