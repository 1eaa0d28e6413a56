package gfapool

// Store is the common contract implemented by both pool backings: a
// growable heap store and a fixed-region store. Operations only ever
// append; nothing in this package supports removing or mutating an
// already-added element.
type Store[T any] interface {
	// Add appends a single item and returns its freshly minted Id.
	Add(item T) Id[T]

	// AddSlice appends a whole slice and returns the Span it now occupies.
	AddSlice(items []T) Span[T]

	// AddIter appends every item produced by repeatedly calling next until
	// it returns ok == false, and returns the Span the resulting run
	// occupies.
	AddIter(next func() (item T, ok bool)) Span[T]

	// Len returns the number of live elements.
	Len() int

	// NextId returns the Id that the next Add call would return.
	NextId() Id[T]

	// View returns a read-only view over the elements added so far.
	View() View[T]
}

// View is a read-only window onto a pool's contents. It never grows; it is
// a thin wrapper over a slice, safe to copy and to share across
// goroutines.
type View[T any] struct {
	data []T
}

// NewView wraps a slice as a View. Exported so the binary-format and
// in-place-construction code (package gfafile) can build views directly
// over memory-mapped byte ranges.
func NewView[T any](data []T) View[T] {
	return View[T]{data: data}
}

// Len returns the number of elements in the view.
func (v View[T]) Len() int {
	return len(v.data)
}

// IsEmpty reports whether the view has zero elements.
func (v View[T]) IsEmpty() bool {
	return len(v.data) == 0
}

// At returns the element at the given Id.
func (v View[T]) At(id Id[T]) T {
	return v.data[id]
}

// Slice returns the contiguous run of elements a Span covers.
func (v View[T]) Slice(span Span[T]) []T {
	start, end := span.Range()
	return v.data[start:end]
}

// All returns every element in the pool, in Id order.
func (v View[T]) All() []T {
	return v.data
}

// Search returns the Id of the first element matching pred, if any.
func (v View[T]) Search(pred func(T) bool) (Id[T], bool) {
	for i, item := range v.data {
		if pred(item) {
			return Id[T](i), true
		}
	}
	return 0, false
}

// Each invokes fn for every (Id, element) pair, in Id order.
func (v View[T]) Each(fn func(Id[T], T)) {
	for i, item := range v.data {
		fn(Id[T](i), item)
	}
}
