package maps

// DeepMerge merges nested maps left to right. When a key holds a mapping on
// both sides the two are merged recursively; in every other conflict the
// right-hand value wins outright, even when that changes the value's type.
// Nested mappings must be map[K]any to participate in recursion.
//
// No input is ever mutated; merged branches are freshly allocated. With a
// single argument DeepMerge is the identity and returns it without copying.
// With no arguments it returns nil.
func DeepMerge[K comparable](ms ...map[K]any) map[K]any {
	if len(ms) == 0 {
		return nil
	}
	out := ms[0]
	for _, m := range ms[1:] {
		out = mergeMaps(out, m)
	}
	return out
}

func mergeMaps[K comparable](a, b map[K]any) map[K]any {
	out := make(map[K]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		if existing, ok := out[k]; ok {
			out[k] = mergeValues[K](existing, v)
		} else {
			out[k] = v
		}
	}
	return out
}

func mergeValues[K comparable](a, b any) any {
	am, aok := a.(map[K]any)
	bm, bok := b.(map[K]any)
	if aok && bok {
		return mergeMaps(am, bm)
	}
	return b
}
