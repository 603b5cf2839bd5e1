// Package inspect provides pass-through value inspection for debugging.
//
// Inspect logs a deep rendering of a value and returns the value unchanged,
// so it drops into the middle of any expression or pipeline:
//
//	merged := maps.DeepMerge(inspect.Inspect("defaults", defaults), overrides)
//
// This is a debugging aid, not an observability layer; output goes through
// the package logger at debug level.
package inspect
