package dmysssp

import (
	"math"
	"sort"
)

// Block is a distance-ordered, contiguous slice of the frontier (spec
// §3, §4.4): lower_bound <= d[v] < upper_bound for every member at the
// time the block was created.
type Block struct {
	Members    []VertexID
	LowerBound float64
	UpperBound float64
}

// CalculatePartitionParameter computes t, the bound on block count per
// level, per spec §4.3: t = max(2, ceil(log2(|F|+1))).
func CalculatePartitionParameter(frontierSize int) int {
	if frontierSize <= 0 {
		return 2
	}
	t := int(math.Ceil(math.Log2(float64(frontierSize) + 1)))
	if t < 2 {
		t = 2
	}
	return t
}

// PartitionBlocksAdaptive splits frontier F into up to t distance-ordered
// blocks bounded by B, per spec §4.4:
//
//  1. sort F by d ascending,
//  2. target block size s = ceil(|F|/t),
//  3. sweep taking at least s elements per block (fewer only for the
//     last), then extending the block while the distance gap to the next
//     element is at most delta, the median gap of the sorted sequence
//     (recomputed for this call); a gap larger than delta inside the
//     first s elements does not end the block,
//  4. each block's upper_bound is the next block's lower_bound, capped
//     at B; the last block's upper_bound is exactly B.
//
// The returned blocks are disjoint, distance-sorted, and their members
// union to exactly F.
func PartitionBlocksAdaptive(frontier FrontierSet, B float64, t int, d Distances) []Block {
	ordered := frontier.ToSlice()
	if len(ordered) == 0 {
		return nil
	}
	sort.Slice(ordered, func(i, j int) bool { return d[ordered[i]] < d[ordered[j]] })

	s := int(math.Ceil(float64(len(ordered)) / float64(t)))
	if s < 1 {
		s = 1
	}
	delta := medianGap(ordered, d)

	var blocks []Block
	start := 0
	for start < len(ordered) {
		end := start + s
		if end > len(ordered) {
			end = len(ordered)
		}
		// Extend past the size-s cut while consecutive elements are
		// within delta of each other (a dense run forms one block);
		// stop the moment a gap exceeds delta (a sparse gap forces a
		// boundary), never past the end of ordered.
		for end < len(ordered) && d[ordered[end]]-d[ordered[end-1]] <= delta {
			end++
		}
		members := make([]VertexID, end-start)
		copy(members, ordered[start:end])
		blocks = append(blocks, Block{
			Members:    members,
			LowerBound: d[ordered[start]],
		})
		start = end
	}

	for i := range blocks {
		if i+1 < len(blocks) {
			blocks[i].UpperBound = blocks[i+1].LowerBound
		} else {
			blocks[i].UpperBound = B
		}
		if blocks[i].UpperBound > B {
			blocks[i].UpperBound = B
		}
	}
	return blocks
}

// medianGap returns the median of consecutive-distance gaps in a
// distance-sorted slice; 0 if fewer than two elements (no gaps exist).
func medianGap(orderedByDist []VertexID, d Distances) float64 {
	n := len(orderedByDist)
	if n < 2 {
		return 0
	}
	gaps := make([]float64, n-1)
	for i := 1; i < n; i++ {
		gaps[i-1] = d[orderedByDist[i]] - d[orderedByDist[i-1]]
	}
	sort.Float64s(gaps)
	mid := len(gaps) / 2
	if len(gaps)%2 == 1 {
		return gaps[mid]
	}
	return (gaps[mid-1] + gaps[mid]) / 2
}
