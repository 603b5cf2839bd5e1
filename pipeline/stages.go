package pipeline

import "github.com/rschmukler/utopia/errors"

// Stage is a pipeline transformation packaged as a value: a function from one
// pipeline to another. Stages are built without any concrete input and
// composed with Compose, then applied to a source pipeline when one exists.
//
// A Stage is reusable: each application builds its state per traversal, so
// the same Stage may drive many independent pipelines.
type Stage[I, O any] func(*Pipeline[I]) *Pipeline[O]

// Compose chains two stages: the output of f feeds g.
func Compose[A, B, C any](f Stage[A, B], g Stage[B, C]) Stage[A, C] {
	return func(p *Pipeline[A]) *Pipeline[C] {
		return g(f(p))
	}
}

// MapStage returns a stage that transforms each value using fn.
func MapStage[I, O any](fn func(I) O) Stage[I, O] {
	errors.MustFunc("fn", fn)
	return func(p *Pipeline[I]) *Pipeline[O] {
		return Map(p, fn)
	}
}

// FilterStage returns a stage that keeps values satisfying the predicate.
func FilterStage[T any](pred func(T) bool) Stage[T, T] {
	errors.MustFunc("pred", pred)
	return func(p *Pipeline[T]) *Pipeline[T] {
		return Filter(p, pred)
	}
}

// RemoveStage returns a stage that drops values satisfying the predicate.
func RemoveStage[T any](pred func(T) bool) Stage[T, T] {
	errors.MustFunc("pred", pred)
	return func(p *Pipeline[T]) *Pipeline[T] {
		return Remove(p, pred)
	}
}

// FlatMapStage returns a stage that expands each value into zero or more.
func FlatMapStage[I, O any](fn func(I) []O) Stage[I, O] {
	errors.MustFunc("fn", fn)
	return func(p *Pipeline[I]) *Pipeline[O] {
		return FlatMap(p, fn)
	}
}

// IndistinctStage returns a stage that emits only repeat occurrences.
func IndistinctStage[T comparable]() Stage[T, T] {
	return func(p *Pipeline[T]) *Pipeline[T] {
		return Indistinct(p)
	}
}

// DedupeByStage returns a stage that drops consecutive values whose keys are
// equal under key, keeping the first of each run.
func DedupeByStage[T any, K comparable](key func(T) K) Stage[T, T] {
	errors.MustFunc("key", key)
	return func(p *Pipeline[T]) *Pipeline[T] {
		return DedupeBy(p, key)
	}
}
