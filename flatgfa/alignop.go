package flatgfa

import (
	"fmt"
	"strings"

	"github.com/grailbio/base/log"
)

// AlignOpcode identifies the kind of a single CIGAR alignment operation.
type AlignOpcode uint8

// The four CIGAR operations a GFA overlap string can contain.
const (
	OpMatch     AlignOpcode = iota // M
	OpGap                          // N
	OpDeletion                     // D
	OpInsertion                    // I
)

func (op AlignOpcode) String() string {
	switch op {
	case OpMatch:
		return "M"
	case OpGap:
		return "N"
	case OpDeletion:
		return "D"
	case OpInsertion:
		return "I"
	default:
		return "?"
	}
}

// ParseAlignOpcode converts a single CIGAR letter to an AlignOpcode.
func ParseAlignOpcode(b byte) (AlignOpcode, bool) {
	switch b {
	case 'M':
		return OpMatch, true
	case 'N':
		return OpGap, true
	case 'D':
		return OpDeletion, true
	case 'I':
		return OpInsertion, true
	default:
		return 0, false
	}
}

// alignOpLenBits is the width given to the operation's length; the
// remaining byte holds the opcode.
const alignOpLenBits = 24

// AlignOp is a single CIGAR operation, like "3M" or "1D", packed into a
// 32-bit word as (length << 8) | opcode.
type AlignOp uint32

// NewAlignOp packs an opcode and a length into an AlignOp. It panics if
// length does not fit in 24 bits.
func NewAlignOp(op AlignOpcode, length uint32) AlignOp {
	if length&^((1<<alignOpLenBits)-1) != 0 {
		log.Panicf("flatgfa: CIGAR op length %d too large to pack into an AlignOp", length)
	}
	return AlignOp(length<<8 | uint32(op))
}

// Op returns the operation's opcode.
func (a AlignOp) Op() AlignOpcode {
	return AlignOpcode(a & 0xff)
}

// Len returns the operation's length.
func (a AlignOp) Len() uint32 {
	return uint32(a) >> 8
}

// IsEmpty reports whether the operation has zero length.
func (a AlignOp) IsEmpty() bool {
	return a.Len() == 0
}

func (a AlignOp) String() string {
	return fmt.Sprintf("%d%s", a.Len(), a.Op())
}

// FormatAlignment renders a sequence of AlignOps as a single CIGAR string,
// e.g. "3M1D2M". An empty slice renders as "*", matching the GFA
// convention for an absent overlap.
func FormatAlignment(ops []AlignOp) string {
	if len(ops) == 0 {
		return "*"
	}
	var b strings.Builder
	for _, op := range ops {
		b.WriteString(op.String())
	}
	return b.String()
}
