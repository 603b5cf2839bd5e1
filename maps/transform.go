package maps

// MapKeys returns a new map where every key k is replaced by f(k); values are
// unchanged. If f maps two keys to the same output, the later entry in the
// source map's iteration order wins — Go randomizes that order, so colliding
// transforms are nondeterministic across runs. Nil in, nil out.
func MapKeys[K1, K2 comparable, V any](f func(K1) K2, m map[K1]V) map[K2]V {
	return Apply(KeysStage[K1, K2, V](f), m)
}

// MapValues returns a new map where every value v is replaced by f(v); keys
// are unchanged. Nil in, nil out.
func MapValues[K comparable, V1, V2 any](f func(V1) V2, m map[K]V1) map[K]V2 {
	return Apply(ValuesStage[K, V1, V2](f), m)
}

// MapVals is an alias for MapValues.
func MapVals[K comparable, V1, V2 any](f func(V1) V2, m map[K]V1) map[K]V2 {
	return MapValues(f, m)
}

// MapLeaves returns a new map where f has been applied to every leaf value,
// descending recursively into values that are themselves map[K]any. A
// mapping-typed value is always a branch, never passed to f; sequences and
// all other values are leaves. Depth is unbounded; the input must be acyclic.
// Nil in, nil out.
func MapLeaves[K comparable](f func(any) any, m map[K]any) map[K]any {
	return Apply(LeavesStage[K](f), m)
}

func mapLeafValue[K comparable](f func(any) any, v any) any {
	if branch, ok := v.(map[K]any); ok {
		out := make(map[K]any, len(branch))
		for k, child := range branch {
			out[k] = mapLeafValue[K](f, child)
		}
		return out
	}
	return f(v)
}
