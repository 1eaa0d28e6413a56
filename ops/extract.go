// Package ops implements the graph-transformation and graph-query
// operations built on top of a flatgfa.FlatGFA: neighborhood extraction,
// segment chopping, per-segment depth, path-offset lookup, and GAF path
// chunking.
package ops

import (
	"fmt"

	"github.com/grailbio/flatgfa"
	"github.com/grailbio/flatgfa/gfapool"
)

// SubgraphBuilder constructs a new graph holding some neighborhood of an
// existing one, translating every reference (segment, link endpoint,
// path step) from the old graph's Ids to freshly minted ones in the new
// graph as it goes.
type SubgraphBuilder struct {
	old    flatgfa.FlatGFA
	store  *flatgfa.GFAStore
	segMap map[gfapool.Id[flatgfa.Segment]]gfapool.Id[flatgfa.Segment]
}

// NewSubgraphBuilder starts an empty subgraph over old.
func NewSubgraphBuilder(old flatgfa.FlatGFA) *SubgraphBuilder {
	return &SubgraphBuilder{
		old:    old,
		store:  flatgfa.NewHeapGFAStore(),
		segMap: make(map[gfapool.Id[flatgfa.Segment]]gfapool.Id[flatgfa.Segment]),
	}
}

// Store returns the subgraph built so far.
func (b *SubgraphBuilder) Store() *flatgfa.GFAStore {
	return b.store
}

// AddHeader copies the source graph's header into the subgraph.
func (b *SubgraphBuilder) AddHeader() {
	if version := b.old.Header.All(); len(version) > 0 {
		b.store.AddHeader(version)
	}
}

func (b *SubgraphBuilder) includeSeg(segID gfapool.Id[flatgfa.Segment]) {
	seg := b.old.Segs.At(segID)
	newID := b.store.AddSeg(seg.Name, b.old.GetSeq(seg), b.old.GetOptionalData(seg))
	b.segMap[segID] = newID
}

func (b *SubgraphBuilder) includeLink(link flatgfa.Link) {
	from := b.trHandle(link.From)
	to := b.trHandle(link.To)
	b.store.AddLink(from, to, b.old.GetAlignment(link.Overlap))
}

func (b *SubgraphBuilder) trHandle(old flatgfa.Handle) flatgfa.Handle {
	newSeg, ok := b.segMap[old.Segment()]
	if !ok {
		panic("ops: handle refers to a segment outside the subgraph")
	}
	return flatgfa.NewHandle(newSeg, old.Orient())
}

func (b *SubgraphBuilder) contains(segID gfapool.Id[flatgfa.Segment]) bool {
	_, ok := b.segMap[segID]
	return ok
}

// subpathStart records where an included subpath of a path began, so that
// once it ends we know both its first new step and its original bp
// position (for the subpath's synthesized name).
type subpathStart struct {
	step gfapool.Id[flatgfa.Handle]
	pos  int
}

func (b *SubgraphBuilder) includeSubpath(path flatgfa.Path, start subpathStart, endPos int) {
	steps := gfapool.NewSpan(start.step, b.store.Steps.NextId())
	name := fmt.Sprintf("%s:%d-%d", b.old.GetPathName(path), start.pos, endPos)
	b.store.AddPath([]byte(name), steps, nil)
}

// mergeSubpaths walks a path from the source graph and, for any run of
// steps outside the neighborhood that is at most maxDistance base
// pairs long and is bracketed by steps already inside the neighborhood on both
// sides, pulls every segment along that run into the subgraph too --
// bridging short gaps instead of leaving the neighborhood fragmented.
func (b *SubgraphBuilder) mergeSubpaths(path flatgfa.Path, maxDistance int) {
	curSubpathStart := 0
	haveStart := true
	subpathLength := 0
	ignorePath := true

	steps := b.old.GetSteps(path)
	for idx, step := range steps {
		inNeighb := b.contains(step.Segment())

		if haveStart && inNeighb {
			if !ignorePath && subpathLength <= maxDistance {
				for _, gapStep := range steps[curSubpathStart:idx] {
					if !b.contains(gapStep.Segment()) {
						b.includeSeg(gapStep.Segment())
					}
				}
			}
			haveStart = false
			ignorePath = false
		} else if !haveStart && !inNeighb {
			curSubpathStart = idx
			haveStart = true
			subpathLength = 0
		}

		subpathLength += int(b.old.GetHandleSeg(step).Len())
	}
}

// findSubpaths walks a path from the source graph and records, as a new
// path in the subgraph, every maximal run of steps that lies entirely
// within the neighborhood.
func (b *SubgraphBuilder) findSubpaths(path flatgfa.Path) {
	var cur *subpathStart
	pathPos := 0

	for _, step := range b.old.GetSteps(path) {
		inNeighb := b.contains(step.Segment())

		if cur != nil && !inNeighb {
			b.includeSubpath(path, *cur, pathPos)
			cur = nil
		} else if cur == nil && inNeighb {
			cur = &subpathStart{step: b.store.Steps.NextId(), pos: pathPos}
		}

		if inNeighb {
			b.store.AddStep(b.trHandle(step))
		}

		pathPos += int(b.old.GetHandleSeg(step).Len())
	}

	if cur != nil {
		b.includeSubpath(path, *cur, pathPos)
	}
}

// Extract builds a subgraph consisting of the neighborhood of segments up
// to dist links away from origin in the source graph, including every
// link between segments in the neighborhood and every subpath of every
// source path that crosses through it. Gaps of at most maxDistanceSubpaths
// base pairs between two neighborhood-touching runs of a path are bridged
// by pulling in the intervening segments too, repeated numIterations
// times (each pass can bridge gaps that the previous pass's bridging
// newly made short enough to qualify).
func Extract(old flatgfa.FlatGFA, origin gfapool.Id[flatgfa.Segment], dist, maxDistanceSubpaths, numIterations int) *flatgfa.GFAStore {
	b := NewSubgraphBuilder(old)
	b.AddHeader()
	b.includeSeg(origin)

	frontier := []gfapool.Id[flatgfa.Segment]{origin}
	for i := 0; i < dist; i++ {
		var next []gfapool.Id[flatgfa.Segment]
		for len(frontier) > 0 {
			segID := frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]
			for _, link := range old.Links.All() {
				if other, ok := link.IncidentSeg(segID); ok {
					if !b.contains(other) {
						b.includeSeg(other)
						next = append(next, other)
					}
				}
			}
		}
		frontier = next
	}

	for i := 0; i < numIterations; i++ {
		for _, path := range old.Paths.All() {
			b.mergeSubpaths(path, maxDistanceSubpaths)
		}
	}

	for _, link := range old.Links.All() {
		if b.contains(link.From.Segment()) && b.contains(link.To.Segment()) {
			b.includeLink(link)
		}
	}

	for _, path := range old.Paths.All() {
		b.findSubpaths(path)
	}

	return b.store
}
