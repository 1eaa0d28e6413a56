package flatgfa

import (
	"github.com/grailbio/base/log"
	"github.com/grailbio/flatgfa/gfapool"
)

// Orientation is the strand a Handle refers to: the segment's sequence as
// written (Forward, "+") or its reverse complement (Backward, "-").
type Orientation uint8

// The two orientations a handle can carry.
const (
	Forward Orientation = iota
	Backward
)

func (o Orientation) String() string {
	if o == Forward {
		return "+"
	}
	return "-"
}

// ParseOrientation converts a single-character GFA orientation ("+" or
// "-") to an Orientation.
func ParseOrientation(s string) (Orientation, bool) {
	switch s {
	case "+":
		return Forward, true
	case "-":
		return Backward, true
	default:
		return 0, false
	}
}

// segmentIndexBits is the number of bits of a Handle's word given to the
// segment index; the top bit is reserved so orient can be packed in
// without widening the word.
const segmentIndexBits = 31

// Handle is an oriented reference to a segment, packed into a single
// 32-bit word as (segmentIndex << 1) | orientBit. Packing keeps the
// densest pools in the file format -- Steps and, transitively,
// everything that points at a step -- to 4 bytes per element.
type Handle uint32

// NewHandle packs a segment Id and an Orientation into a Handle. It panics
// if segment's index does not fit in 31 bits, mirroring the original
// implementation's high-bit assertion.
func NewHandle(segment gfapool.Id[Segment], orient Orientation) Handle {
	segNum := uint32(segment.Index())
	if segNum&(1<<segmentIndexBits) != 0 {
		log.Panicf("flatgfa: segment index %d too large to pack into a Handle", segNum)
	}
	return Handle(segNum<<1 | uint32(orient&1))
}

// Segment returns the Id of the segment this handle refers to.
func (h Handle) Segment() gfapool.Id[Segment] {
	return gfapool.NewId[Segment](int(h >> 1))
}

// Orient returns the handle's orientation.
func (h Handle) Orient() Orientation {
	return Orientation(h & 1)
}

// HandleOf packs an Id and an Orientation together; convenience function
// mirroring the id.handle(orient) idiom used throughout the ops package.
func HandleOf(segment gfapool.Id[Segment], orient Orientation) Handle {
	return NewHandle(segment, orient)
}
