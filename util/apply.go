package util

import "github.com/rschmukler/utopia/errors"

// When applies f to v when pred holds, and returns v unchanged otherwise.
func When[T any](v T, pred func(T) bool, f func(T) T) T {
	errors.MustFunc("pred", pred)
	errors.MustFunc("f", f)
	if pred(v) {
		return f(v)
	}
	return v
}

// Unless applies f to v when pred fails, and returns v unchanged otherwise.
func Unless[T any](v T, pred func(T) bool, f func(T) T) T {
	errors.MustFunc("pred", pred)
	errors.MustFunc("f", f)
	if !pred(v) {
		return f(v)
	}
	return v
}
