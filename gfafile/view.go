package gfafile

import (
	"unsafe"

	"github.com/grailbio/flatgfa"
	"github.com/grailbio/flatgfa/gfapool"
)

// View interprets data, a complete FlatGFA binary file (or an equivalently
// laid out memory-mapped region), as a FlatGFA in place: no parsing, no
// copying, no allocation beyond the View headers themselves. The returned
// graph borrows data for its entire lifetime.
func View(data []byte) flatgfa.FlatGFA {
	toc, rest := readToc(data)
	return viewPools(toc, rest)
}

// takeView reinterprets the front of buf as a []T spanning size.Capacity
// elements (consuming size.Capacity*sizeof(T) bytes of buf, padding
// included) and returns a View over its live size.Len-element prefix,
// along with whatever bytes remain for the next pool.
func takeView[T any](buf []byte, size Size) (gfapool.View[T], []byte) {
	var zero T
	elemSize := unsafe.Sizeof(zero)
	n := size.Capacity * uint64(elemSize)
	if n == 0 {
		return gfapool.NewView[T](nil), buf
	}
	full := unsafe.Slice((*T)(unsafe.Pointer(&buf[0])), size.Capacity)
	return gfapool.NewView(full[:size.Len]), buf[n:]
}

func viewPools(toc Toc, buf []byte) flatgfa.FlatGFA {
	var g flatgfa.FlatGFA
	g.Header, buf = takeView[byte](buf, toc.Header)
	g.Segs, buf = takeView[flatgfa.Segment](buf, toc.Segs)
	g.Paths, buf = takeView[flatgfa.Path](buf, toc.Paths)
	g.Links, buf = takeView[flatgfa.Link](buf, toc.Links)
	g.Steps, buf = takeView[flatgfa.Handle](buf, toc.Steps)
	g.SeqData, buf = takeView[byte](buf, toc.SeqData)
	g.Overlaps, buf = takeView[gfapool.Span[flatgfa.AlignOp]](buf, toc.Overlaps)
	g.Alignment, buf = takeView[flatgfa.AlignOp](buf, toc.Alignment)
	g.NameData, buf = takeView[byte](buf, toc.NameData)
	g.OptionalData, buf = takeView[byte](buf, toc.OptionalData)
	g.LineOrder, _ = takeView[byte](buf, toc.LineOrder)
	return g
}
