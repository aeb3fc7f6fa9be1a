package pareto

import "container/heap"

// ComputeParetoFront runs the multi-objective label-setting search
// from source to target (spec §4.7). A global priority queue orders
// labels by their sense-adjusted lexicographic objective tuple; each
// extraction tries to extend the label along every outgoing edge,
// inserting the resulting candidate into the neighbor's label set
// only if nothing there already dominates it, and evicting anything
// the candidate itself dominates. The search ends when the queue
// empties or the target's label set reaches maxSolutions (zero means
// unbounded).
func ComputeParetoFront(g *MultiGraph, source, target VertexID, maxSolutions int) ([]ParetoSolution, error) {
	n := g.VertexCount()
	if int(source) < 1 || int(source) > n || int(target) < 1 || int(target) > n {
		return nil, ErrInvalidSource
	}

	labelSets := make([][]*label, n+1)
	pq := &labelHeap{senses: g.Senses()}
	seed := &label{objectives: make([]float64, g.Dimensions()), vertex: source}
	labelSets[source] = append(labelSets[source], seed)
	heap.Push(pq, seed)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*label)
		if !labelSetContains(labelSets[cur.vertex], cur) {
			continue // superseded by a label inserted after this one was enqueued
		}
		if maxSolutions > 0 && len(labelSets[target]) >= maxSolutions {
			break
		}

		for _, e := range g.OutEdges(cur.vertex) {
			next := make([]float64, len(cur.objectives))
			for i := range next {
				next[i] = cur.objectives[i] + e.Objectives[i]
			}
			if dominatedByAny(next, labelSets[e.Target], g.Senses()) {
				continue
			}
			labelSets[e.Target] = pruneDominated(labelSets[e.Target], next, g.Senses())
			newLabel := &label{objectives: next, vertex: e.Target, parent: cur, viaEdge: e.ID}
			labelSets[e.Target] = append(labelSets[e.Target], newLabel)
			heap.Push(pq, newLabel)
		}
	}

	front := labelSets[target]
	solutions := make([]ParetoSolution, 0, len(front))
	for _, l := range front {
		solutions = append(solutions, ParetoSolution{
			Objectives: append([]float64(nil), l.objectives...),
			Path:       l.path(),
			Edges:      l.edges(),
		})
	}
	return solutions, nil
}

func labelSetContains(set []*label, target *label) bool {
	for _, l := range set {
		if l == target {
			return true
		}
	}
	return false
}

// labelHeap is a container/heap priority queue over labels, ordered by
// sense-adjusted lexicographic objective tuple; ties fall back to
// insertion order (spec §9's determinism requirement).
type labelHeap struct {
	items  []*label
	senses []Sense
	seq    int
	order  map[*label]int
}

func (h *labelHeap) Len() int { return len(h.items) }

func (h *labelHeap) Less(i, j int) bool {
	a, b := h.items[i].objectives, h.items[j].objectives
	for d, s := range h.senses {
		av, bv := a[d], b[d]
		if s == Maximize {
			av, bv = -av, -bv
		}
		if av != bv {
			return av < bv
		}
	}
	return h.order[h.items[i]] < h.order[h.items[j]]
}

func (h *labelHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *labelHeap) Push(x any) {
	if h.order == nil {
		h.order = make(map[*label]int)
	}
	l := x.(*label)
	h.order[l] = h.seq
	h.seq++
	h.items = append(h.items, l)
}

func (h *labelHeap) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	delete(h.order, item)
	return item
}
