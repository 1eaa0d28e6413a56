package flatgfa

import (
	"github.com/grailbio/base/log"
	"github.com/grailbio/flatgfa/gfapool"
)

// GFAStore holds the eleven pools that back a FlatGFA, plus the builder
// operations needed to populate them while preserving cross-pool
// references. A store is exclusively owned by its builder until frozen
// into a read-only FlatGFA view via View.
//
// GFAStore is parameterized over the Store implementation for each pool,
// so the exact same builder logic works whether the pools live in
// ordinary heap-allocated slices (NewHeapGFAStore) or in a pre-sized,
// memory-mappable byte region (package gfafile's Init).
type GFAStore struct {
	Header       gfapool.Store[byte]
	Segs         gfapool.Store[Segment]
	Paths        gfapool.Store[Path]
	Links        gfapool.Store[Link]
	Steps        gfapool.Store[Handle]
	SeqData      gfapool.Store[byte]
	Overlaps     gfapool.Store[gfapool.Span[AlignOp]]
	Alignment    gfapool.Store[AlignOp]
	NameData     gfapool.Store[byte]
	OptionalData gfapool.Store[byte]
	LineOrder    gfapool.Store[byte]
}

// NewHeapGFAStore creates an empty, heap-backed store suitable for
// constructing a graph from scratch (used by the text parser and by every
// graph-transformation operation that emits a derived graph).
func NewHeapGFAStore() *GFAStore {
	return &GFAStore{
		Header:       gfapool.NewHeapStore[byte](),
		Segs:         gfapool.NewHeapStore[Segment](),
		Paths:        gfapool.NewHeapStore[Path](),
		Links:        gfapool.NewHeapStore[Link](),
		Steps:        gfapool.NewHeapStore[Handle](),
		SeqData:      gfapool.NewHeapStore[byte](),
		Overlaps:     gfapool.NewHeapStore[gfapool.Span[AlignOp]](),
		Alignment:    gfapool.NewHeapStore[AlignOp](),
		NameData:     gfapool.NewHeapStore[byte](),
		OptionalData: gfapool.NewHeapStore[byte](),
		LineOrder:    gfapool.NewHeapStore[byte](),
	}
}

// AddHeader records the GFA header line's version text. It may be called
// at most once per store.
func (s *GFAStore) AddHeader(version []byte) {
	if s.Header.Len() != 0 {
		log.Panicf("flatgfa: header already set")
	}
	s.Header.AddSlice(version)
}

// AddSeg appends a new segment, copying seq into SeqData and optional into
// OptionalData.
func (s *GFAStore) AddSeg(name uint64, seq []byte, optional []byte) gfapool.Id[Segment] {
	return s.Segs.Add(Segment{
		Name:     name,
		Seq:      s.SeqData.AddSlice(seq),
		Optional: s.OptionalData.AddSlice(optional),
	})
}

// AddLink appends a new link between two handles, copying cigar into
// Alignment.
func (s *GFAStore) AddLink(from, to Handle, cigar []AlignOp) gfapool.Id[Link] {
	return s.Links.Add(Link{
		From:    from,
		To:      to,
		Overlap: s.Alignment.AddSlice(cigar),
	})
}

// AddSteps appends a whole run of steps and returns the Span it occupies.
func (s *GFAStore) AddSteps(handles []Handle) gfapool.Span[Handle] {
	return s.Steps.AddSlice(handles)
}

// AddStep appends a single step.
func (s *GFAStore) AddStep(h Handle) gfapool.Id[Handle] {
	return s.Steps.Add(h)
}

// AddPath appends a new path: name and steps are as given, and overlaps is
// consumed as a sequence of per-step CIGAR op slices (each may be empty).
// If overlaps is empty, the path's Overlaps span is left empty, matching
// the GFA "*" shorthand.
func (s *GFAStore) AddPath(name []byte, steps gfapool.Span[Handle], overlaps [][]AlignOp) gfapool.Id[Path] {
	var overlapSpan gfapool.Span[gfapool.Span[AlignOp]]
	if len(overlaps) > 0 {
		spans := make([]gfapool.Span[AlignOp], len(overlaps))
		for i, ops := range overlaps {
			spans[i] = s.Alignment.AddSlice(ops)
		}
		overlapSpan = s.Overlaps.AddSlice(spans)
	}
	return s.Paths.Add(Path{
		Name:     s.NameData.AddSlice(name),
		Steps:    steps,
		Overlaps: overlapSpan,
	})
}

// RecordLine appends a marker recording the original position of a line of
// the given kind, used to reproduce a file's line order on printing.
func (s *GFAStore) RecordLine(kind LineKind) {
	s.LineOrder.Add(byte(kind))
}

// View freezes the store into a read-only FlatGFA, borrowing its
// underlying buffers.
func (s *GFAStore) View() FlatGFA {
	return FlatGFA{
		Header:       s.Header.View(),
		Segs:         s.Segs.View(),
		Paths:        s.Paths.View(),
		Links:        s.Links.View(),
		Steps:        s.Steps.View(),
		SeqData:      s.SeqData.View(),
		Overlaps:     s.Overlaps.View(),
		Alignment:    s.Alignment.View(),
		NameData:     s.NameData.View(),
		OptionalData: s.OptionalData.View(),
		LineOrder:    s.LineOrder.View(),
	}
}
