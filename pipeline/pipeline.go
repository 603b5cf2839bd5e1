package pipeline

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false) when exhausted.
	Next() (T, bool)
}

// Pipeline represents a lazy, pull-based sequence of values.
// No work happens until values are pulled via Collect, ForEach, or Count.
type Pipeline[T any] struct {
	create func() Iterator[T]
}

// --- Constructors ---

// From creates a pipeline that traverses an existing Iterator.
// The resulting pipeline is single-use: iterators carry position.
func From[T any](iter Iterator[T]) *Pipeline[T] {
	return &Pipeline[T]{
		create: func() Iterator[T] {
			return iter
		},
	}
}

// FromSlice creates a pipeline from a slice of values.
func FromSlice[T any](items []T) *Pipeline[T] {
	return &Pipeline[T]{
		create: func() Iterator[T] {
			return &sliceIter[T]{items: items}
		},
	}
}

// FromFunc creates a pipeline from a factory that produces an Iterator.
// The factory runs once per traversal, so any state it allocates is fresh
// for each traversal.
func FromFunc[T any](fn func() Iterator[T]) *Pipeline[T] {
	return &Pipeline[T]{create: fn}
}

// --- Terminals ---

// Collect pulls all values and returns them as a slice.
func Collect[T any](p *Pipeline[T]) []T {
	iter := p.create()
	var result []T
	for {
		val, ok := iter.Next()
		if !ok {
			return result
		}
		result = append(result, val)
	}
}

// ForEach pulls all values and calls fn for each.
func ForEach[T any](p *Pipeline[T], fn func(T)) {
	iter := p.create()
	for {
		val, ok := iter.Next()
		if !ok {
			return
		}
		fn(val)
	}
}

// Count pulls all values and returns how many were produced.
func Count[T any](p *Pipeline[T]) int {
	iter := p.create()
	n := 0
	for {
		if _, ok := iter.Next(); !ok {
			return n
		}
		n++
	}
}

// Iter returns a fresh Iterator over this pipeline.
func (p *Pipeline[T]) Iter() Iterator[T] {
	return p.create()
}

// --- Internal iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next() (T, bool) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false
	}
	val := it.items[it.index]
	it.index++
	return val, true
}
