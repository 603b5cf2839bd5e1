package maps

import "strings"

// NamespaceSeparator divides a qualified key into its namespace and local
// name components.
const NamespaceSeparator = "/"

// NamespaceKeys returns a new map where every key's namespace component is
// replaced with ns, or added when the key carries none; the local name is
// preserved. A key's namespace is everything before the last separator.
// Nil in, nil out.
//
//	NamespaceKeys("user", map[string]int{"name": 1, "db/id": 2})
//	// map[string]int{"user/name": 1, "user/id": 2}
func NamespaceKeys[V any](ns string, m map[string]V) map[string]V {
	return MapKeys(func(k string) string {
		return ns + NamespaceSeparator + LocalName(k)
	}, m)
}

// NsKeys is an alias for NamespaceKeys.
func NsKeys[V any](ns string, m map[string]V) map[string]V {
	return NamespaceKeys(ns, m)
}

// LocalName returns the local component of a qualified key: the part after
// the last separator, or the key itself when unqualified.
func LocalName(key string) string {
	if i := strings.LastIndex(key, NamespaceSeparator); i >= 0 {
		return key[i+1:]
	}
	return key
}

// Namespace returns the namespace component of a qualified key, or the empty
// string when unqualified.
func Namespace(key string) string {
	if i := strings.LastIndex(key, NamespaceSeparator); i >= 0 {
		return key[:i]
	}
	return ""
}
