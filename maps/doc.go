// Package maps provides higher-order transformations over Go maps: key,
// value, and leaf mappers, key/value filters, namespace-qualified key
// rewriting, deep merging, and a predicate-driven path finder over nested
// structures.
//
// Every transformation exists in two shapes. The eager shape takes a concrete
// map and returns a brand-new map:
//
//	upper := maps.MapKeys(strings.ToUpper, m)
//
// The stage shape returns a composable pipeline.Stage over map entries,
// built without any concrete input:
//
//	normalize := pipeline.Compose(
//	    maps.KeysStage[string, string, int](strings.ToLower),
//	    maps.FilterValuesStage[string](func(n int) bool { return n > 0 }),
//	)
//	out := maps.Apply(normalize, m)
//
// Eager operations nil-pun: a nil map in yields a nil map out, and the
// supplied function is never evaluated. This is part of the contract, not an
// optimization.
//
// Transform and predicate arguments must be non-nil; constructors panic with
// an *errors.AppError otherwise. Failures raised by the supplied function
// itself propagate unmodified.
//
// MapLeaves, DeepMerge, and FindPaths operate on nested trees shaped like
// decoded JSON: mappings are map[K]any, sequences are []any, everything else
// is a scalar leaf. All three assume acyclic input; behavior on
// self-referential structures is undefined.
package maps
