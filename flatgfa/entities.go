// Package flatgfa implements the flat, arena-backed representation of a GFA
// assembly graph described in the project's design notes: every logical
// object (segment, path, link, ...) is a fixed-size record living in one of
// eleven typed pools, and every variable-length field is a Span into a
// shared byte or element pool.
package flatgfa

import "github.com/grailbio/flatgfa/gfapool"

// Segment is a GFA "S" line: a node carrying a base-pair sequence and,
// optionally, a tab-separated string of extra GFA tags.
//
// Segment names are assumed to be plain positive integers, so unlike path
// names they are stored inline rather than in a separate byte pool.
type Segment struct {
	// Name is the segment's integer name, as it appeared in the S line.
	Name uint64
	// Seq is the segment's base-pair sequence, a range in SeqData.
	Seq gfapool.Span[byte]
	// Optional is the segment's raw optional-fields text, a range in
	// OptionalData. Empty if the S line carried no extra fields.
	Optional gfapool.Span[byte]
}

// Len returns the length, in base pairs, of the segment's sequence.
func (s Segment) Len() int {
	return s.Seq.Len()
}

// Path is a GFA "P" line: a named, ordered sequence of oriented segment
// references (steps), with an optional parallel sequence of CIGAR
// overlaps.
type Path struct {
	// Name is the path's (arbitrary) string name, a range in NameData.
	Name gfapool.Span[byte]
	// Steps is the path's sequence of steps, a range in the Steps pool.
	Steps gfapool.Span[Handle]
	// Overlaps is either empty (the GFA "*" shorthand) or has the same
	// length as Steps; each element is a range in the Alignment pool.
	Overlaps gfapool.Span[gfapool.Span[AlignOp]]
}

// Link is a GFA "L" line: an allowed edge between two oriented segments,
// optionally carrying a CIGAR overlap.
type Link struct {
	From    Handle
	To      Handle
	Overlap gfapool.Span[AlignOp]
}

// IncidentSeg returns the link's other endpoint if segID is one of the
// link's two endpoints, or false if it touches neither.
func (l Link) IncidentSeg(segID gfapool.Id[Segment]) (gfapool.Id[Segment], bool) {
	switch segID {
	case l.From.Segment():
		return l.To.Segment(), true
	case l.To.Segment():
		return l.From.Segment(), true
	default:
		return 0, false
	}
}

// LineKind identifies the kind of a GFA text line, recorded in LineOrder to
// allow the text printer to reproduce a file's original line interleaving.
type LineKind byte

// The four kinds of GFA line this system understands.
const (
	LineHeader LineKind = iota
	LineSegment
	LinePath
	LineLink
)

func (k LineKind) String() string {
	switch k {
	case LineHeader:
		return "header"
	case LineSegment:
		return "segment"
	case LinePath:
		return "path"
	case LineLink:
		return "link"
	default:
		return "unknown"
	}
}
