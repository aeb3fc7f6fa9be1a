package dmysssp

import "fmt"

// maxBudgetDoublings caps the internal budget-exhausted retry loop
// (spec §4.5 Failure / §7 BudgetExhausted recovery). A finite graph with
// non-negative weights always reaches a fixed point in a bounded number
// of relaxations, so this is only a guard against a logic bug, never a
// path a well-formed input can take (spec §7: "escalate to InvalidGraph
// if progress is impossible -- indicates a programming bug, not input").
const maxBudgetDoublings = 48

// bmsspSingleRound runs spec §4.5's bmssp_single_round: it drains a
// working set seeded from sources, relaxing edges bounded by B, until
// the set empties (round complete, returns false) or the relaxation
// budget reaches zero first (returns true, "budget exhausted"). On
// exhaustion it also returns pending: the vertex whose edges were being
// relaxed plus every vertex still queued. d and p carry state across
// calls, so a round seeded from pending continues where this one stopped.
func bmsspSingleRound(g *Graph, sources FrontierSet, B float64, d Distances, p Parents, budget *int, stats *runStats) (exhausted bool, pending FrontierSet) {
	q := newBoundedQueue()
	for v := range sources {
		if d[v] < B {
			q.push(v, d[v])
		}
	}

	for {
		u, ok := q.extractMin(d)
		if !ok {
			return false, nil
		}
		if d[u] >= B {
			return false, nil
		}

		for i, e := range g.OutEdges(u) {
			if *budget <= 0 {
				pending := NewFrontierSet(u)
				for _, item := range q.h {
					pending.Add(item.vertex)
				}
				return true, pending
			}
			*budget--
			if stats != nil {
				stats.relaxations++
			}

			w := g.Weight(u, i)
			alt := d[u] + w
			if alt < d[e.Target] && alt < B {
				d[e.Target] = alt
				if p != nil {
					p[e.Target] = u
				}
				if d[e.Target] < B {
					q.push(e.Target, d[e.Target])
				}
			}
		}
	}
}

// bmssp is the multi-round BMSSP of spec §4.5: it repeats
// bmsspSingleRound, raising the budget each time a round is cut short
// (spec §7: BudgetExhausted is recovered locally by retrying with a
// higher budget and seeding the next round from the vertices the cut-short
// round left pending), until a round completes without exhausting it.
// Every vertex reachable from sources with true distance < B then holds
// that distance in d.
func bmssp(g *Graph, sources FrontierSet, B float64, budget int, d Distances, p Parents, stats *runStats) error {
	if budget < 1 {
		budget = 1
	}
	for attempt := 0; attempt <= maxBudgetDoublings; attempt++ {
		if stats != nil {
			stats.pivotRounds++
		}
		remaining := budget
		exhausted, pending := bmsspSingleRound(g, sources, B, d, p, &remaining, stats)
		if !exhausted {
			return nil
		}
		sources = pending
		budget *= 2
	}
	return &InvalidGraphError{
		Reason: ReasonInternalInconsistency,
		Detail: fmt.Sprintf("bmssp did not converge after %d budget doublings; this indicates a driver bug, not a malformed input", maxBudgetDoublings),
	}
}
