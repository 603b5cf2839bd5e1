package pipeline

import "github.com/rschmukler/utopia/errors"

// Map transforms each value using fn.
func Map[I, O any](p *Pipeline[I], fn func(I) O) *Pipeline[O] {
	errors.MustFunc("fn", fn)
	return &Pipeline[O]{
		create: func() Iterator[O] {
			return &mapIter[I, O]{source: p.create(), fn: fn}
		},
	}
}

// Filter keeps only values that satisfy the predicate.
func Filter[T any](p *Pipeline[T], pred func(T) bool) *Pipeline[T] {
	errors.MustFunc("pred", pred)
	return &Pipeline[T]{
		create: func() Iterator[T] {
			return &filterIter[T]{source: p.create(), pred: pred}
		},
	}
}

// Remove drops values that satisfy the predicate. Complement of Filter.
func Remove[T any](p *Pipeline[T], pred func(T) bool) *Pipeline[T] {
	errors.MustFunc("pred", pred)
	return Filter(p, func(v T) bool { return !pred(v) })
}

// FlatMap transforms each value into a slice and flattens the results,
// preserving order.
func FlatMap[I, O any](p *Pipeline[I], fn func(I) []O) *Pipeline[O] {
	errors.MustFunc("fn", fn)
	return &Pipeline[O]{
		create: func() Iterator[O] {
			return &flatMapIter[I, O]{source: p.create(), fn: fn}
		},
	}
}

// Take truncates the pipeline after n values.
func Take[T any](p *Pipeline[T], n int) *Pipeline[T] {
	return &Pipeline[T]{
		create: func() Iterator[T] {
			return &takeIter[T]{source: p.create(), remaining: n}
		},
	}
}

// Concat joins multiple pipelines sequentially.
// All values from the first pipeline are yielded before the second, etc.
func Concat[T any](pipelines ...*Pipeline[T]) *Pipeline[T] {
	return &Pipeline[T]{
		create: func() Iterator[T] {
			iters := make([]Iterator[T], len(pipelines))
			for i, p := range pipelines {
				iters[i] = p.create()
			}
			return &concatIter[T]{iters: iters}
		},
	}
}

// Indistinct emits only values that have occurred earlier in the traversal:
// every second-and-later occurrence of a repeated value, in order. First
// occurrences are suppressed. The seen-set lives for exactly one traversal.
func Indistinct[T comparable](p *Pipeline[T]) *Pipeline[T] {
	return &Pipeline[T]{
		create: func() Iterator[T] {
			return &indistinctIter[T]{source: p.create(), seen: make(map[T]struct{})}
		},
	}
}

// DedupeBy drops values whose key equals the key of the previously emitted
// value, removing consecutive runs of equal-keyed values and keeping the
// first of each run. Non-consecutive repeats are retained.
func DedupeBy[T any, K comparable](p *Pipeline[T], key func(T) K) *Pipeline[T] {
	errors.MustFunc("key", key)
	return &Pipeline[T]{
		create: func() Iterator[T] {
			return &dedupeByIter[T, K]{source: p.create(), key: key}
		},
	}
}

// --- Iterator implementations ---

type mapIter[I, O any] struct {
	source Iterator[I]
	fn     func(I) O
}

func (it *mapIter[I, O]) Next() (O, bool) {
	val, ok := it.source.Next()
	if !ok {
		var zero O
		return zero, false
	}
	return it.fn(val), true
}

type filterIter[T any] struct {
	source Iterator[T]
	pred   func(T) bool
}

func (it *filterIter[T]) Next() (T, bool) {
	for {
		val, ok := it.source.Next()
		if !ok {
			var zero T
			return zero, false
		}
		if it.pred(val) {
			return val, true
		}
	}
}

type flatMapIter[I, O any] struct {
	source  Iterator[I]
	fn      func(I) []O
	current []O
	index   int
}

func (it *flatMapIter[I, O]) Next() (O, bool) {
	for {
		if it.index < len(it.current) {
			val := it.current[it.index]
			it.index++
			return val, true
		}
		src, ok := it.source.Next()
		if !ok {
			var zero O
			return zero, false
		}
		it.current = it.fn(src)
		it.index = 0
	}
}

type takeIter[T any] struct {
	source    Iterator[T]
	remaining int
}

func (it *takeIter[T]) Next() (T, bool) {
	if it.remaining <= 0 {
		var zero T
		return zero, false
	}
	val, ok := it.source.Next()
	if !ok {
		var zero T
		return zero, false
	}
	it.remaining--
	return val, true
}

type concatIter[T any] struct {
	iters []Iterator[T]
	index int
}

func (it *concatIter[T]) Next() (T, bool) {
	for it.index < len(it.iters) {
		if val, ok := it.iters[it.index].Next(); ok {
			return val, true
		}
		it.index++
	}
	var zero T
	return zero, false
}

type indistinctIter[T comparable] struct {
	source Iterator[T]
	seen   map[T]struct{}
}

func (it *indistinctIter[T]) Next() (T, bool) {
	for {
		val, ok := it.source.Next()
		if !ok {
			var zero T
			return zero, false
		}
		if _, dup := it.seen[val]; dup {
			return val, true
		}
		it.seen[val] = struct{}{}
	}
}

type dedupeByIter[T any, K comparable] struct {
	source  Iterator[T]
	key     func(T) K
	prev    K
	started bool
}

func (it *dedupeByIter[T, K]) Next() (T, bool) {
	for {
		val, ok := it.source.Next()
		if !ok {
			var zero T
			return zero, false
		}
		k := it.key(val)
		if it.started && k == it.prev {
			continue
		}
		it.prev = k
		it.started = true
		return val, true
	}
}
