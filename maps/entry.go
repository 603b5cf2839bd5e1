package maps

// Entry is a single key-value pair of a map, the element type flowing
// through entry stages.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Entries returns the entries of m as a slice, in map iteration order.
func Entries[K comparable, V any](m map[K]V) []Entry[K, V] {
	entries := make([]Entry[K, V], 0, len(m))
	for k, v := range m {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}
	return entries
}

// FromEntries builds a map from entries. Duplicate keys resolve
// last-write-wins in slice order.
func FromEntries[K comparable, V any](entries []Entry[K, V]) map[K]V {
	m := make(map[K]V, len(entries))
	for _, e := range entries {
		m[e.Key] = e.Value
	}
	return m
}
