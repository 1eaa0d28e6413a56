package gfapool

import (
	"unsafe"

	"v.io/x/lib/vlog"
)

// FixedStore is a pool backed by a pre-allocated, fixed-capacity byte
// region. Unlike HeapStore, it can live directly inside a memory-mapped
// file: the byte region is reinterpreted in place as a []T via unsafe,
// without any parsing or copying, the same trick
// encoding/pam/unsafearena.go uses to hand out []byte slices from a single
// backing buffer.
//
// Every element of T must be a fixed-size, pointer-free value (Id, Span,
// Segment, Path, Link, Handle, AlignOp, byte all qualify); FixedStore does
// not and cannot verify this, so misuse with a pointer-containing T will
// corrupt memory.
type FixedStore[T any] struct {
	// region is the full capacity of the backing byte range, reinterpreted
	// as a []T. Only region[:length] is live.
	region []T
	length int
}

// NewFixedStore reinterprets buf, which must be exactly
// capacity*sizeof(T) bytes, as an empty fixed-capacity pool.
func NewFixedStore[T any](buf []byte, capacity int) *FixedStore[T] {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if capacity == 0 || elemSize == 0 {
		return &FixedStore[T]{}
	}
	if len(buf) < capacity*elemSize {
		vlog.Fatalf("gfapool: backing buffer too small: have %d bytes, need %d", len(buf), capacity*elemSize)
	}
	region := unsafe.Slice((*T)(unsafe.Pointer(&buf[0])), capacity)
	return &FixedStore[T]{region: region}
}

// WrapFixedStore builds a FixedStore directly from an already-typed slice
// (used when re-opening a file whose length prefix is already known, e.g.
// gfafile.MapFileMut).
func WrapFixedStore[T any](region []T, length int) *FixedStore[T] {
	return &FixedStore[T]{region: region, length: length}
}

// Capacity returns the maximum number of elements this store can hold.
func (s *FixedStore[T]) Capacity() int {
	return len(s.region)
}

// Len returns the number of elements added so far.
func (s *FixedStore[T]) Len() int {
	return s.length
}

// NextId returns the Id the next Add call would return.
func (s *FixedStore[T]) NextId() Id[T] {
	return Id[T](s.length)
}

func (s *FixedStore[T]) reserve(n int) int {
	if s.length+n > len(s.region) {
		vlog.Fatalf("gfapool: arena overflow, len=%d, request=%d, cap=%d", s.length, n, len(s.region))
	}
	start := s.length
	s.length += n
	return start
}

// Add appends a single item; fatal if the store is already at capacity.
func (s *FixedStore[T]) Add(item T) Id[T] {
	start := s.reserve(1)
	s.region[start] = item
	return Id[T](start)
}

// AddSlice appends a whole slice; fatal if it would exceed capacity.
func (s *FixedStore[T]) AddSlice(items []T) Span[T] {
	start := s.reserve(len(items))
	copy(s.region[start:], items)
	return NewSpan(Id[T](start), Id[T](s.length))
}

// AddIter appends every item produced by next; fatal if capacity runs out
// first.
func (s *FixedStore[T]) AddIter(next func() (T, bool)) Span[T] {
	start := s.length
	for {
		item, ok := next()
		if !ok {
			break
		}
		idx := s.reserve(1)
		s.region[idx] = item
	}
	return NewSpan(Id[T](start), Id[T](s.length))
}

// View returns a read-only view over the live prefix of the store.
func (s *FixedStore[T]) View() View[T] {
	return NewView(s.region[:s.length])
}
