package flatgfa

import "github.com/grailbio/flatgfa/gfapool"

// FlatGFA is a read-only, borrowed view over the eleven pools that make up
// a flattened GFA graph. Every field has a fixed size; unlike the
// GFAStore that builds one up, a FlatGFA cannot grow. A FlatGFA may be
// backed by ordinary heap slices or by a memory-mapped file -- it doesn't
// know or care, which is exactly the point of the gfapool.View
// abstraction.
type FlatGFA struct {
	// Header holds the optional version string from an "H" line. Empty if
	// the graph has no header.
	Header gfapool.View[byte]
	// Segs holds every "S" line.
	Segs gfapool.View[Segment]
	// Paths holds every "P" line.
	Paths gfapool.View[Path]
	// Links holds every "L" line.
	Links gfapool.View[Link]
	// Steps is the flattened pool of path steps; each Path's Steps field
	// is a range into this pool.
	Steps gfapool.View[Handle]
	// SeqData is the flattened pool of segment sequence bytes.
	SeqData gfapool.View[byte]
	// Overlaps is the flattened pool of per-step CIGAR spans; each Path's
	// Overlaps field is a range into this pool.
	Overlaps gfapool.View[gfapool.Span[AlignOp]]
	// Alignment is the flattened pool of CIGAR operations that Overlaps
	// and Link.Overlap point into.
	Alignment gfapool.View[AlignOp]
	// NameData is the flattened pool of path name bytes.
	NameData gfapool.View[byte]
	// OptionalData is the flattened pool of segment optional-field bytes.
	OptionalData gfapool.View[byte]
	// LineOrder records the original interleaving of GFA line kinds, for
	// perfect round-trip printing. Empty means "emit in normalized order".
	LineOrder gfapool.View[byte]
}

// GetSeq returns a segment's base-pair sequence.
func (g FlatGFA) GetSeq(seg Segment) []byte {
	return g.SeqData.Slice(seg.Seq)
}

// GetOptionalData returns a segment's raw optional-fields text.
func (g FlatGFA) GetOptionalData(seg Segment) []byte {
	return g.OptionalData.Slice(seg.Optional)
}

// GetPathName returns a path's string name.
func (g FlatGFA) GetPathName(path Path) []byte {
	return g.NameData.Slice(path.Name)
}

// GetSteps returns a path's sequence of steps.
func (g FlatGFA) GetSteps(path Path) []Handle {
	return g.Steps.Slice(path.Steps)
}

// GetOverlaps returns a path's sequence of per-step overlap spans. Empty
// if the path used the "*" shorthand.
func (g FlatGFA) GetOverlaps(path Path) []gfapool.Span[AlignOp] {
	return g.Overlaps.Slice(path.Overlaps)
}

// GetHandleSeg returns the segment a handle refers to.
func (g FlatGFA) GetHandleSeg(h Handle) Segment {
	return g.Segs.At(h.Segment())
}

// GetAlignment returns the CIGAR operations a span refers to.
func (g FlatGFA) GetAlignment(span gfapool.Span[AlignOp]) []AlignOp {
	return g.Alignment.Slice(span)
}

// FindSeg looks up a segment by its integer name via a linear scan. It
// returns the Id of the first match; behavior is undefined (but will not
// panic) if more than one segment shares a name, since the format does
// not forbid that case but this system does not otherwise support it.
func (g FlatGFA) FindSeg(name uint64) (gfapool.Id[Segment], bool) {
	return g.Segs.Search(func(s Segment) bool { return s.Name == name })
}

// FindPath looks up a path by its string name via a linear scan.
func (g FlatGFA) FindPath(name []byte) (gfapool.Id[Path], bool) {
	return g.Paths.Search(func(p Path) bool {
		return string(g.GetPathName(p)) == string(name)
	})
}

// GetLineOrder returns the recorded sequence of line kinds, or nil if none
// was recorded (i.e. the graph should print in normalized order).
func (g FlatGFA) GetLineOrder() []LineKind {
	raw := g.LineOrder.All()
	if len(raw) == 0 {
		return nil
	}
	kinds := make([]LineKind, len(raw))
	for i, b := range raw {
		kinds[i] = LineKind(b)
	}
	return kinds
}
