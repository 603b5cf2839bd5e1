package util

import "github.com/rschmukler/utopia/pipeline"

// Indistinct returns the elements of slice that occurred earlier in it:
// every second-and-later occurrence of a repeated element, in order. First
// occurrences are suppressed. Complement of Unique. Nil in, nil out.
//
//	Indistinct([]int{1, 2, 1, 2, 2, 3, 4, 5, 1}) // [1 2 2 1]
func Indistinct[T comparable](slice []T) []T {
	if slice == nil {
		return nil
	}
	return pipeline.Collect(pipeline.Indistinct(pipeline.FromSlice(slice)))
}

// DedupeBy returns slice with consecutive runs of elements mapping to the
// same key under f collapsed to the first element of each run.
// Non-consecutive repeats are retained. Nil in, nil out.
func DedupeBy[T any, K comparable](f func(T) K, slice []T) []T {
	if slice == nil {
		return nil
	}
	return pipeline.Collect(pipeline.DedupeBy(pipeline.FromSlice(slice), f))
}
