package maps

import (
	"cmp"
	"slices"

	"github.com/rschmukler/utopia/errors"
	"github.com/rschmukler/utopia/util"
)

// Path locates a value within a nested structure: an ordered sequence of
// mapping keys (K) and 0-based sequence indices (int), outermost first.
type Path []any

// FindPaths walks root depth-first, pre-order, and returns the paths of all
// values matching pred, in traversal order. Mappings are map[K]any, sequences
// are []any, everything else is a scalar.
//
// At a mapping, pred is evaluated on each entry's value: a match emits the
// path extended by the entry's key and descent stops there; otherwise
// mapping- or sequence-valued entries are descended into. At a sequence,
// pred is never evaluated on the sequence itself; each element is visited
// with the path extended by its index. A matching scalar root emits the
// empty path.
//
// Mapping keys are visited in ascending order, so output order is
// deterministic. The input must be acyclic.
func FindPaths[K cmp.Ordered](pred func(any) bool, root any) []Path {
	errors.MustFunc("pred", pred)
	var found []Path
	findPaths[K](pred, root, Path{}, &found)
	return found
}

func findPaths[K cmp.Ordered](pred func(any) bool, node any, path Path, found *[]Path) {
	switch n := node.(type) {
	case map[K]any:
		keys := util.Keys(n)
		slices.Sort(keys)
		for _, k := range keys {
			v := n[k]
			child := extend(path, k)
			if pred(v) {
				*found = append(*found, child)
				continue
			}
			switch v.(type) {
			case map[K]any, []any:
				findPaths[K](pred, v, child, found)
			}
		}
	case []any:
		for i, v := range n {
			findPaths[K](pred, v, extend(path, i), found)
		}
	default:
		if pred(node) {
			*found = append(*found, slices.Clone(path))
		}
	}
}

// extend copies path with step appended; emitted paths must not share
// backing arrays.
func extend(path Path, step any) Path {
	child := make(Path, len(path)+1)
	copy(child, path)
	child[len(path)] = step
	return child
}
