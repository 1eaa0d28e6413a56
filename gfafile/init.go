package gfafile

import (
	"unsafe"

	"github.com/grailbio/flatgfa"
	"github.com/grailbio/flatgfa/gfapool"
)

// Init carves buf, a region of exactly toc.Size() bytes, into eleven fixed
// stores sized per toc's capacities and writes the table of contents into
// its front. The returned GFAStore builds a graph directly in place: every
// Add call writes straight into buf, so the region can be backed by a
// freshly created, truncated-to-size memory-mapped file (see MapNewFile)
// and the graph never needs a separate write-out pass.
func Init(buf []byte, toc Toc) *flatgfa.GFAStore {
	if uint64(len(buf)) < toc.Size() {
		panic("gfafile: buffer smaller than table of contents describes")
	}
	writeToc(buf, toc)
	rest := buf[TocBytes:]

	var s flatgfa.GFAStore
	s.Header, rest = takeFixedStore[byte](rest, toc.Header)
	s.Segs, rest = takeFixedStore[flatgfa.Segment](rest, toc.Segs)
	s.Paths, rest = takeFixedStore[flatgfa.Path](rest, toc.Paths)
	s.Links, rest = takeFixedStore[flatgfa.Link](rest, toc.Links)
	s.Steps, rest = takeFixedStore[flatgfa.Handle](rest, toc.Steps)
	s.SeqData, rest = takeFixedStore[byte](rest, toc.SeqData)
	s.Overlaps, rest = takeFixedStore[gfapool.Span[flatgfa.AlignOp]](rest, toc.Overlaps)
	s.Alignment, rest = takeFixedStore[flatgfa.AlignOp](rest, toc.Alignment)
	s.NameData, rest = takeFixedStore[byte](rest, toc.NameData)
	s.OptionalData, rest = takeFixedStore[byte](rest, toc.OptionalData)
	s.LineOrder, _ = takeFixedStore[byte](rest, toc.LineOrder)
	return &s
}

// takeFixedStore carves a single pool's region off the front of buf,
// wrapping it as a gfapool.FixedStore already populated with size.Len live
// elements (used when reopening a file that already has data in it, as
// opposed to building one from scratch, where size.Len is always zero).
func takeFixedStore[T any](buf []byte, size Size) (gfapool.Store[T], []byte) {
	var zero T
	elemSize := unsafe.Sizeof(zero)
	n := size.Capacity * uint64(elemSize)
	if n == 0 {
		return gfapool.WrapFixedStore[T](nil, 0), buf
	}
	region := unsafe.Slice((*T)(unsafe.Pointer(&buf[0])), size.Capacity)
	return gfapool.WrapFixedStore(region, int(size.Len)), buf[n:]
}

// Size returns the number of bytes Dump would need to write out gfa at
// full density (no spare pool capacity).
func Size(gfa flatgfa.FlatGFA) uint64 {
	return FullToc(gfa).Size()
}

// Dump serializes gfa into buf, which must be at least Size(gfa) bytes,
// writing a table of contents with no spare capacity in any pool followed
// by a tight concatenation of the pool contents. The result is valid
// input to View and to Init (with that TOC) alike.
func Dump(gfa flatgfa.FlatGFA, buf []byte) {
	toc := FullToc(gfa)
	if uint64(len(buf)) < toc.Size() {
		panic("gfafile: buffer too small to dump graph")
	}
	writeToc(buf, toc)
	rest := buf[TocBytes:]
	rest = dumpBytes(rest, gfa.Header.All())
	rest = dumpPool(rest, gfa.Segs.All())
	rest = dumpPool(rest, gfa.Paths.All())
	rest = dumpPool(rest, gfa.Links.All())
	rest = dumpPool(rest, gfa.Steps.All())
	rest = dumpBytes(rest, gfa.SeqData.All())
	rest = dumpPool(rest, gfa.Overlaps.All())
	rest = dumpPool(rest, gfa.Alignment.All())
	rest = dumpBytes(rest, gfa.NameData.All())
	rest = dumpBytes(rest, gfa.OptionalData.All())
	dumpBytes(rest, gfa.LineOrder.All())
}

func dumpBytes(buf []byte, data []byte) []byte {
	copy(buf, data)
	return buf[len(data):]
}

// dumpPool copies a typed pool's elements into buf byte-for-byte via
// unsafe reinterpretation, matching exactly how takeView/takeFixedStore
// read them back.
func dumpPool[T any](buf []byte, items []T) []byte {
	if len(items) == 0 {
		return buf
	}
	elemSize := unsafe.Sizeof(items[0])
	n := uintptr(len(items)) * elemSize
	src := unsafe.Slice((*byte)(unsafe.Pointer(&items[0])), n)
	copy(buf, src)
	return buf[n:]
}
