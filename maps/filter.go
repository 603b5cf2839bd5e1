package maps

// FilterKeys returns a new map keeping only entries whose key satisfies the
// predicate. Nil in, nil out.
func FilterKeys[K comparable, V any](pred func(K) bool, m map[K]V) map[K]V {
	return Apply(FilterKeysStage[K, V](pred), m)
}

// RemoveKeys returns a new map dropping entries whose key satisfies the
// predicate. Complement of FilterKeys: for any total predicate the two
// partition m's entries. Nil in, nil out.
func RemoveKeys[K comparable, V any](pred func(K) bool, m map[K]V) map[K]V {
	return Apply(RemoveKeysStage[K, V](pred), m)
}

// FilterValues returns a new map keeping only entries whose value satisfies
// the predicate. Nil in, nil out.
func FilterValues[K comparable, V any](pred func(V) bool, m map[K]V) map[K]V {
	return Apply(FilterValuesStage[K, V](pred), m)
}

// RemoveValues returns a new map dropping entries whose value satisfies the
// predicate. Complement of FilterValues. Nil in, nil out.
func RemoveValues[K comparable, V any](pred func(V) bool, m map[K]V) map[K]V {
	return Apply(RemoveValuesStage[K, V](pred), m)
}

// PartitionKeys splits m into the entries whose keys appear in keys and the
// rest. Merging the two halves reproduces m. Nil in, nil halves out.
func PartitionKeys[K comparable, V any](m map[K]V, keys []K) (selected, rest map[K]V) {
	if m == nil {
		return nil, nil
	}
	want := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		want[k] = struct{}{}
	}
	selected = make(map[K]V)
	rest = make(map[K]V)
	for k, v := range m {
		if _, ok := want[k]; ok {
			selected[k] = v
		} else {
			rest[k] = v
		}
	}
	return selected, rest
}

// SelectKeys returns the entries of m whose keys appear in keys.
// Nil in, nil out.
func SelectKeys[K comparable, V any](m map[K]V, keys []K) map[K]V {
	if m == nil {
		return nil
	}
	selected, _ := PartitionKeys(m, keys)
	return selected
}
