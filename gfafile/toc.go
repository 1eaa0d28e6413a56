// Package gfafile implements the FlatGFA binary file format: a packed
// table of contents followed by a concatenation of the eleven pool
// buffers, in a fixed order, with zero-copy load and in-place construction
// via direct memory mapping.
package gfafile

import (
	"encoding/binary"
	"unsafe"

	"github.com/grailbio/base/log"
	"github.com/grailbio/flatgfa"
	"github.com/grailbio/flatgfa/gfapool"
)

// MagicNumber identifies a FlatGFA binary file. It is checked on every
// load; a mismatch indicates a corrupt file or one written by an
// incompatible version.
const MagicNumber uint64 = 0xB1011054

// Size is a table-of-contents entry for a single pool: how many elements
// are live, and how many the allocated region can hold. capacity-len
// slots of padding follow the live prefix, which lets a fixed-region store
// grow (up to capacity) without relocating any other pool.
type Size struct {
	Len      uint64
	Capacity uint64
}

func sizeOfPool[T any](v gfapool.View[T]) Size {
	return Size{Len: uint64(v.Len()), Capacity: uint64(v.Len())}
}

func sizeEmpty(capacity uint64) Size {
	return Size{Len: 0, Capacity: capacity}
}

func (s Size) bytes(elemSize uintptr) uint64 {
	return s.Capacity * uint64(elemSize)
}

// tocEntryBytes is the on-disk size of a single Size entry: two uint64s.
const tocEntryBytes = 16

// tocPoolCount is the number of pools described by the table of contents.
const tocPoolCount = 11

// TocBytes is the total on-disk size of the table of contents: an 8-byte
// magic number followed by tocPoolCount Size entries.
const TocBytes = 8 + tocPoolCount*tocEntryBytes

// Toc is the table of contents at the start of a FlatGFA binary file. The
// pool entries appear in the same fixed order as the pools themselves are
// laid out in the file.
type Toc struct {
	Header       Size
	Segs         Size
	Paths        Size
	Links        Size
	Steps        Size
	SeqData      Size
	Overlaps     Size
	Alignment    Size
	NameData     Size
	OptionalData Size
	LineOrder    Size
}

// elemSizes holds sizeof() for each pool's element type, in TOC order.
var elemSizes = [tocPoolCount]uintptr{
	1, // Header: byte
	unsafe.Sizeof(flatgfa.Segment{}),
	unsafe.Sizeof(flatgfa.Path{}),
	unsafe.Sizeof(flatgfa.Link{}),
	unsafe.Sizeof(flatgfa.Handle(0)),
	1, // SeqData: byte
	unsafe.Sizeof(gfapool.Span[flatgfa.AlignOp]{}),
	unsafe.Sizeof(flatgfa.AlignOp(0)),
	1, // NameData: byte
	1, // OptionalData: byte
	1, // LineOrder: byte
}

// entries returns the TOC's eleven Size entries in file order.
func (t Toc) entries() [tocPoolCount]Size {
	return [tocPoolCount]Size{
		t.Header, t.Segs, t.Paths, t.Links, t.Steps, t.SeqData,
		t.Overlaps, t.Alignment, t.NameData, t.OptionalData, t.LineOrder,
	}
}

func tocFromEntries(e [tocPoolCount]Size) Toc {
	return Toc{
		Header: e[0], Segs: e[1], Paths: e[2], Links: e[3], Steps: e[4],
		SeqData: e[5], Overlaps: e[6], Alignment: e[7], NameData: e[8],
		OptionalData: e[9], LineOrder: e[10],
	}
}

// Size returns the total size in bytes of the file this TOC describes.
func (t Toc) Size() uint64 {
	total := uint64(TocBytes)
	entries := t.entries()
	for i, e := range entries {
		total += e.bytes(elemSizes[i])
	}
	return total
}

// FullToc returns a table of contents describing gfa with no spare
// capacity in any pool -- the tightest possible encoding, used by Dump.
func FullToc(gfa flatgfa.FlatGFA) Toc {
	return Toc{
		Header:       sizeOfPool(gfa.Header),
		Segs:         sizeOfPool(gfa.Segs),
		Paths:        sizeOfPool(gfa.Paths),
		Links:        sizeOfPool(gfa.Links),
		Steps:        sizeOfPool(gfa.Steps),
		SeqData:      sizeOfPool(gfa.SeqData),
		Overlaps:     sizeOfPool(gfa.Overlaps),
		Alignment:    sizeOfPool(gfa.Alignment),
		NameData:     sizeOfPool(gfa.NameData),
		OptionalData: sizeOfPool(gfa.OptionalData),
		LineOrder:    sizeOfPool(gfa.LineOrder),
	}
}

// Guess returns a reasonable set of empty-pool capacities for a fresh
// file when nothing is known about its eventual size (e.g. input read
// from stdin). factor scales every pool's capacity except the header's,
// which is fixed at 128 bytes; larger graphs need a larger factor.
func Guess(factor int) Toc {
	f := uint64(factor)
	return Toc{
		Header:       sizeEmpty(128),
		Segs:         sizeEmpty(32 * f * f),
		Paths:        sizeEmpty(f),
		Links:        sizeEmpty(32 * f * f),
		Steps:        sizeEmpty(1024 * f * f),
		SeqData:      sizeEmpty(512 * f * f),
		Overlaps:     sizeEmpty(256 * f),
		Alignment:    sizeEmpty(64 * f * f),
		NameData:     sizeEmpty(64 * f),
		OptionalData: sizeEmpty(512 * f * f),
		LineOrder:    sizeEmpty(64 * f * f),
	}
}

// EstimateParams summarizes a single linear scan over GFA text, as
// produced by EstimateToc's scanner.
type EstimateParams struct {
	Segs, Links, Paths                 uint64
	HeaderBytes, SegBytes, PathBytes   uint64
}

// Estimate derives a table of contents from counts and byte totals
// measured by a single pass over the input text (see EstimateToc). The
// formulas are empirical, carried over unchanged from the reference
// implementation: steps scale with a third of path-line bytes; overlaps
// and alignment scale with link/path counts; name_data assumes path names
// average well under 512 bytes; optional_data assumes 16 bytes per link
// (links, not segments, since segment optional fields dominate less than
// link tags in the graphs this was tuned against).
func Estimate(p EstimateParams) Toc {
	return Toc{
		Header:       sizeEmpty(p.HeaderBytes),
		Segs:         sizeEmpty(p.Segs),
		Paths:        sizeEmpty(p.Paths),
		Links:        sizeEmpty(p.Links),
		Steps:        sizeEmpty(p.PathBytes / 3),
		SeqData:      sizeEmpty(p.SegBytes),
		Overlaps:     sizeEmpty((p.Links + p.Paths) * 2),
		Alignment:    sizeEmpty(p.Links*2 + p.Paths*4),
		NameData:     sizeEmpty(p.Paths * 512),
		OptionalData: sizeEmpty(p.Links * 16),
		LineOrder:    sizeEmpty(p.Segs + p.Links + p.Paths + 8),
	}
}

// writeToc encodes a TOC (magic number plus entries) to the front of buf,
// which must be at least TocBytes long.
func writeToc(buf []byte, t Toc) {
	if len(buf) < TocBytes {
		log.Panicf("gfafile: buffer too small for table of contents")
	}
	binary.NativeEndian.PutUint64(buf[0:8], MagicNumber)
	off := 8
	for _, e := range t.entries() {
		binary.NativeEndian.PutUint64(buf[off:off+8], e.Len)
		binary.NativeEndian.PutUint64(buf[off+8:off+16], e.Capacity)
		off += tocEntryBytes
	}
}

// readToc decodes a TOC from the front of buf and returns it along with
// the remaining bytes. It panics (a corrupt-file invariant violation) if
// the magic number doesn't match.
func readToc(buf []byte) (Toc, []byte) {
	if len(buf) < TocBytes {
		log.Panicf("gfafile: input too short to contain a table of contents")
	}
	magic := binary.NativeEndian.Uint64(buf[0:8])
	if magic != MagicNumber {
		log.Panicf("gfafile: bad magic number %#x, want %#x", magic, MagicNumber)
	}
	var entries [tocPoolCount]Size
	off := 8
	for i := range entries {
		entries[i] = Size{
			Len:      binary.NativeEndian.Uint64(buf[off : off+8]),
			Capacity: binary.NativeEndian.Uint64(buf[off+8 : off+16]),
		}
		off += tocEntryBytes
	}
	return tocFromEntries(entries), buf[TocBytes:]
}
