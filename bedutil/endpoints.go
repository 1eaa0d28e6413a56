// Package bedutil intersects BED interval files with FlatGFA path
// coordinates. It is an external collaborator, not a core dependency: it
// consumes ops.Position results and never touches gfapool/flatgfa
// invariants directly.
package bedutil

import (
	"math"
	"sort"
)

// PosType is the coordinate type used by an Intervals endpoint list.
type PosType int32

// PosTypeMax is the largest representable PosType.
const PosTypeMax = math.MaxInt32

// searchPosType returns the index of x in a[], or the position where x
// would be inserted if x isn't present.
func searchPosType(a []PosType, x PosType) int {
	return sort.Search(len(a), func(i int) bool { return a[i] >= x })
}

// fwdsearchPosType checks a[idx], then a[idx+1], then a[idx+3], etc.,
// finishing with binary search. Better than searchPosType when the
// queried position only increases.
func fwdsearchPosType(a []PosType, x PosType, idx int) int {
	nextIncr := 1
	startIdx := idx
	endIdx := len(a)
	for idx < endIdx {
		if a[idx] >= x {
			endIdx = idx
			break
		}
		startIdx = idx + 1
		idx += nextIncr
		nextIncr *= 2
	}
	for startIdx < endIdx {
		midIdx := int(uint(startIdx+endIdx) >> 1)
		if a[midIdx] >= x {
			endIdx = midIdx
		} else {
			startIdx = midIdx + 1
		}
	}
	return startIdx
}

// Intervals is a sorted, disjoint interval-union over a single coordinate
// space (one path's worth of BED regions), stored as a flat sequence of
// endpoints: interval k occupies [endpoints[2k], endpoints[2k+1]).
type Intervals struct {
	endpoints []PosType

	lastPosPlus1 PosType
	lastIdx      int
	isSequential bool
}

// NewIntervals builds an Intervals from a list of [start, end) pairs
// sorted by start. Touching or overlapping pairs are merged.
func NewIntervals(starts, ends []PosType) *Intervals {
	iv := &Intervals{isSequential: true}
	var prevStart, prevEnd PosType = -1, -1
	for i := range starts {
		start, end := starts[i], ends[i]
		if end <= start {
			continue
		}
		if prevEnd == -1 {
			prevStart, prevEnd = start, end
			continue
		}
		if start > prevEnd {
			iv.endpoints = append(iv.endpoints, prevStart, prevEnd)
			prevStart, prevEnd = start, end
		} else if end > prevEnd {
			prevEnd = end
		}
	}
	if prevEnd != -1 {
		iv.endpoints = append(iv.endpoints, prevStart, prevEnd)
	}
	return iv
}

// Contains reports whether pos falls within one of the stored intervals.
// Queries are expected in nondecreasing order of pos for best performance,
// but out-of-order queries still return the correct answer.
func (iv *Intervals) Contains(pos PosType) bool {
	posPlus1 := pos + 1
	if iv.isSequential && posPlus1 >= iv.lastPosPlus1 {
		iv.lastIdx = fwdsearchPosType(iv.endpoints, posPlus1, iv.lastIdx)
	} else {
		iv.lastIdx = searchPosType(iv.endpoints, posPlus1)
		iv.isSequential = true
	}
	iv.lastPosPlus1 = posPlus1
	return iv.lastIdx&1 == 1
}
