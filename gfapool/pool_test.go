package gfapool

import (
	"reflect"
	"testing"
	"unsafe"
)

type rec struct {
	A uint32
	B uint32
}

func TestSpanLenAndEmpty(t *testing.T) {
	tests := []struct {
		span      Span[rec]
		wantLen   int
		wantEmpty bool
	}{
		{NewSpan(NewId[rec](0), NewId[rec](0)), 0, true},
		{NewSpan(NewId[rec](2), NewId[rec](5)), 3, false},
	}
	for _, test := range tests {
		if got := test.span.Len(); got != test.wantLen {
			t.Errorf("Len() = %d, want %d", got, test.wantLen)
		}
		if got := test.span.IsEmpty(); got != test.wantEmpty {
			t.Errorf("IsEmpty() = %v, want %v", got, test.wantEmpty)
		}
	}
}

func TestSpanContains(t *testing.T) {
	s := NewSpan(NewId[rec](2), NewId[rec](5))
	for i := 0; i < 8; i++ {
		want := i >= 2 && i < 5
		if got := s.Contains(NewId[rec](i)); got != want {
			t.Errorf("Contains(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestHeapStoreAddAndView(t *testing.T) {
	s := NewHeapStore[rec]()
	id0 := s.Add(rec{A: 1})
	id1 := s.Add(rec{A: 2})
	if id0 != 0 || id1 != 1 {
		t.Fatalf("unexpected ids: %v, %v", id0, id1)
	}
	span := s.AddSlice([]rec{{A: 3}, {A: 4}})
	if span.Len() != 2 {
		t.Fatalf("AddSlice span len = %d, want 2", span.Len())
	}

	v := s.View()
	if v.Len() != 4 {
		t.Fatalf("View len = %d, want 4", v.Len())
	}
	got := v.Slice(span)
	want := []rec{{A: 3}, {A: 4}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Slice(span) = %+v, want %+v", got, want)
	}
}

func TestHeapStoreAddIter(t *testing.T) {
	s := NewHeapStore[rec]()
	items := []rec{{A: 10}, {A: 20}, {A: 30}}
	i := 0
	span := s.AddIter(func() (rec, bool) {
		if i >= len(items) {
			return rec{}, false
		}
		item := items[i]
		i++
		return item, true
	})
	if span.Len() != 3 {
		t.Fatalf("span len = %d, want 3", span.Len())
	}
	if got := s.View().All(); !reflect.DeepEqual(got, items) {
		t.Errorf("All() = %+v, want %+v", got, items)
	}
}

func TestViewSearch(t *testing.T) {
	s := NewHeapStore[rec]()
	s.AddSlice([]rec{{A: 1}, {A: 2}, {A: 3}})
	v := s.View()

	id, ok := v.Search(func(r rec) bool { return r.A == 2 })
	if !ok || id != 1 {
		t.Errorf("Search(A==2) = (%v, %v), want (1, true)", id, ok)
	}

	_, ok = v.Search(func(r rec) bool { return r.A == 99 })
	if ok {
		t.Errorf("Search(A==99) found an element unexpectedly")
	}
}

func TestFixedStoreAddWithinCapacity(t *testing.T) {
	const cap = 4
	buf := make([]byte, cap*int(unsafe.Sizeof(rec{})))
	s := NewFixedStore[rec](buf, cap)

	for i := 0; i < cap; i++ {
		id := s.Add(rec{A: uint32(i)})
		if id.Index() != i {
			t.Fatalf("Add() id = %d, want %d", id.Index(), i)
		}
	}
	if s.Len() != cap {
		t.Fatalf("Len() = %d, want %d", s.Len(), cap)
	}
	if s.Capacity() != cap {
		t.Fatalf("Capacity() = %d, want %d", s.Capacity(), cap)
	}

	v := s.View()
	for i := 0; i < cap; i++ {
		if v.At(NewId[rec](i)).A != uint32(i) {
			t.Errorf("At(%d).A = %d, want %d", i, v.At(NewId[rec](i)).A, i)
		}
	}
}

func TestFixedStoreAddSliceAndWrap(t *testing.T) {
	const cap = 8
	buf := make([]byte, cap*int(unsafe.Sizeof(rec{})))
	s := NewFixedStore[rec](buf, cap)
	span := s.AddSlice([]rec{{A: 1}, {A: 2}, {A: 3}})
	if span.Len() != 3 {
		t.Fatalf("span len = %d, want 3", span.Len())
	}

	// WrapFixedStore should see the same live prefix without re-copying.
	wrapped := WrapFixedStore(s.region, s.Len())
	if wrapped.View().Len() != 3 {
		t.Fatalf("wrapped view len = %d, want 3", wrapped.View().Len())
	}
}
