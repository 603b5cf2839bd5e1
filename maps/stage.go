package maps

import (
	"github.com/rschmukler/utopia/errors"
	"github.com/rschmukler/utopia/pipeline"
)

// Apply runs an entry stage eagerly over a concrete map and returns a
// brand-new map. A nil input map yields nil without building the pipeline or
// evaluating the stage's function. If the stage produces duplicate keys,
// later entries (in the source map's iteration order) win.
func Apply[K1, K2 comparable, V1, V2 any](st pipeline.Stage[Entry[K1, V1], Entry[K2, V2]], m map[K1]V1) map[K2]V2 {
	errors.MustFunc("st", st)
	if m == nil {
		return nil
	}
	out := make(map[K2]V2, len(m))
	pipeline.ForEach(st(pipeline.FromSlice(Entries(m))), func(e Entry[K2, V2]) {
		out[e.Key] = e.Value
	})
	return out
}

// KeysStage returns an entry stage that rewrites each entry's key with f,
// leaving values untouched.
func KeysStage[K1, K2 comparable, V any](f func(K1) K2) pipeline.Stage[Entry[K1, V], Entry[K2, V]] {
	errors.MustFunc("f", f)
	return pipeline.MapStage(func(e Entry[K1, V]) Entry[K2, V] {
		return Entry[K2, V]{Key: f(e.Key), Value: e.Value}
	})
}

// ValuesStage returns an entry stage that rewrites each entry's value with f,
// leaving keys untouched.
func ValuesStage[K comparable, V1, V2 any](f func(V1) V2) pipeline.Stage[Entry[K, V1], Entry[K, V2]] {
	errors.MustFunc("f", f)
	return pipeline.MapStage(func(e Entry[K, V1]) Entry[K, V2] {
		return Entry[K, V2]{Key: e.Key, Value: f(e.Value)}
	})
}

// LeavesStage returns an entry stage that rewrites each entry's value through
// the recursive leaf walk: nested map[K]any values are descended into and f
// is applied only to non-mapping leaves.
func LeavesStage[K comparable](f func(any) any) pipeline.Stage[Entry[K, any], Entry[K, any]] {
	errors.MustFunc("f", f)
	return ValuesStage[K](func(v any) any {
		return mapLeafValue[K](f, v)
	})
}

// FilterKeysStage returns an entry stage keeping entries whose key satisfies
// the predicate.
func FilterKeysStage[K comparable, V any](pred func(K) bool) pipeline.Stage[Entry[K, V], Entry[K, V]] {
	errors.MustFunc("pred", pred)
	return pipeline.FilterStage(func(e Entry[K, V]) bool { return pred(e.Key) })
}

// RemoveKeysStage returns an entry stage dropping entries whose key satisfies
// the predicate.
func RemoveKeysStage[K comparable, V any](pred func(K) bool) pipeline.Stage[Entry[K, V], Entry[K, V]] {
	errors.MustFunc("pred", pred)
	return pipeline.RemoveStage(func(e Entry[K, V]) bool { return pred(e.Key) })
}

// FilterValuesStage returns an entry stage keeping entries whose value
// satisfies the predicate.
func FilterValuesStage[K comparable, V any](pred func(V) bool) pipeline.Stage[Entry[K, V], Entry[K, V]] {
	errors.MustFunc("pred", pred)
	return pipeline.FilterStage(func(e Entry[K, V]) bool { return pred(e.Value) })
}

// RemoveValuesStage returns an entry stage dropping entries whose value
// satisfies the predicate.
func RemoveValuesStage[K comparable, V any](pred func(V) bool) pipeline.Stage[Entry[K, V], Entry[K, V]] {
	errors.MustFunc("pred", pred)
	return pipeline.RemoveStage(func(e Entry[K, V]) bool { return pred(e.Value) })
}
