package dmysssp

// Statistics reports the counters spec §6's sssp_statistics names.
type Statistics struct {
	Relaxations    int
	PivotRounds    int
	MaxFrontier    int
	RecursionDepth int
}

// runStats accumulates Statistics counters during a single dmySSSP run.
// dmySSSP only allocates one when its withStats argument is true (i.e.
// when the caller is SSSPStatistics); every other entry point threads a
// nil *runStats through instead, and a nil *runStats anywhere in this
// package is always safe to skip (see bmsspSingleRound, bmssp,
// recursiveLayer).
type runStats struct {
	relaxations    int
	pivotRounds    int
	maxFrontier    int
	recursionDepth int
}

func newRunStats() *runStats { return &runStats{} }

func (s *runStats) snapshot() Statistics {
	return Statistics{
		Relaxations:    s.relaxations,
		PivotRounds:    s.pivotRounds,
		MaxFrontier:    s.maxFrontier,
		RecursionDepth: s.recursionDepth,
	}
}
