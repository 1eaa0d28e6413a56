package ops

import (
	"github.com/grailbio/flatgfa"
	"github.com/grailbio/flatgfa/gfapool"
)

// Chop subdivides every segment longer than maxSize into consecutive
// pieces of at most maxSize base pairs, renumbering every segment (chopped
// or not) with fresh sequential names starting at 1, and rewrites every
// path's steps to walk through the resulting pieces in the same order (in
// reverse, piece by piece, for a step that traversed the original segment
// backward). If inclLinks is set, the new graph also gets links joining
// consecutive pieces of a chopped segment and translated versions of
// every link in the source graph; chopping otherwise drops links
// entirely, since a link endpoint that pointed at the middle of a long
// segment no longer has an obvious piece to land on.
//
// Chopping invalidates segment optional-field data and path overlaps:
// neither is preserved in the new graph, since both describe the original,
// unchopped coordinate space.
func Chop(gfa flatgfa.FlatGFA, maxSize int, inclLinks bool) *flatgfa.GFAStore {
	flat := flatgfa.NewHeapGFAStore()

	// segMap[i] is the span of new segment Ids that segment i (by Id, i.e.
	// source order) was chopped into.
	segMap := make([]gfapool.Span[flatgfa.Segment], 0, gfa.Segs.Len())
	nextName := uint64(1)

	linkForward := func(span gfapool.Span[flatgfa.Segment]) {
		start, end := span.Range()
		for idx := start; idx < end-1; idx++ {
			from := flatgfa.NewHandle(gfapool.NewId[flatgfa.Segment](idx), flatgfa.Forward)
			to := flatgfa.NewHandle(gfapool.NewId[flatgfa.Segment](idx+1), flatgfa.Forward)
			flat.AddLink(from, to, nil)
		}
	}

	for _, seg := range gfa.Segs.All() {
		seq := gfa.GetSeq(seg)
		if len(seq) <= maxSize {
			id := flat.AddSeg(nextName, seq, nil)
			nextName++
			segMap = append(segMap, gfapool.NewSpan(id, flat.Segs.NextId()))
			continue
		}

		start := flat.Segs.NextId()
		offset := 0
		for len(seq)-offset > maxSize {
			flat.AddSeg(nextName, seq[offset:offset+maxSize], nil)
			offset += maxSize
			nextName++
		}
		flat.AddSeg(nextName, seq[offset:], nil)
		nextName++

		span := gfapool.NewSpan(start, flat.Segs.NextId())
		segMap = append(segMap, span)
		if inclLinks {
			linkForward(span)
		}
	}

	for _, path := range gfa.Paths.All() {
		pathStart := flat.Steps.NextId()
		pathEnd := pathStart
		for _, step := range gfa.GetSteps(path) {
			span := segMap[step.Segment().Index()]
			start, end := span.Range()
			switch step.Orient() {
			case flatgfa.Forward:
				for idx := start; idx < end; idx++ {
					pathEnd = flat.AddStep(flatgfa.NewHandle(gfapool.NewId[flatgfa.Segment](idx), flatgfa.Forward)) + 1
				}
			case flatgfa.Backward:
				for idx := end - 1; idx >= start; idx-- {
					pathEnd = flat.AddStep(flatgfa.NewHandle(gfapool.NewId[flatgfa.Segment](idx), flatgfa.Backward)) + 1
				}
			}
		}
		flat.AddPath(gfa.GetPathName(path), gfapool.NewSpan(pathStart, pathEnd), nil)
	}

	if inclLinks {
		for _, link := range gfa.Links.All() {
			newFrom := choppedEndpoint(segMap, link.From, true)
			newTo := choppedEndpoint(segMap, link.To, false)
			flat.AddLink(newFrom, newTo, nil)
		}
	}

	return flat
}

// choppedEndpoint finds the piece a link's endpoint now lands on: the
// outward-facing end of the chopped run if the handle points forward off
// of (isFrom) the run, or the inward-facing end otherwise. The "from" and
// "to" sides of a link pick opposite ends of their respective chopped
// runs: a forward "from" endpoint lands on the run's last piece (it flows
// out of the run), while a forward "to" endpoint lands on the run's first
// piece (it flows into the run).
func choppedEndpoint(segMap []gfapool.Span[flatgfa.Segment], h flatgfa.Handle, isFrom bool) flatgfa.Handle {
	span := segMap[h.Segment().Index()]
	start, end := span.Range()
	forwardLandsOnLast := isFrom
	var idx int
	switch {
	case h.Orient() == flatgfa.Forward && forwardLandsOnLast:
		idx = end - 1
	case h.Orient() == flatgfa.Forward && !forwardLandsOnLast:
		idx = start
	case h.Orient() == flatgfa.Backward && forwardLandsOnLast:
		idx = start
	default: // Backward, !forwardLandsOnLast
		idx = end - 1
	}
	return flatgfa.NewHandle(gfapool.NewId[flatgfa.Segment](idx), h.Orient())
}
