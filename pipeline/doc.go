// Package pipeline provides composable, pull-based sequence operators.
//
// Pipelines are lazy — no work happens until values are pulled via Collect,
// ForEach, or Count. Each operator pulls from the previous one on demand, so
// consuming a finite prefix of an infinite source is always safe.
//
// All operators are synchronous and single-goroutine. Stateful operators
// (Indistinct, DedupeBy) allocate their bookkeeping inside the iterator built
// for each traversal, so a Pipeline or Stage value may be reused and run
// concurrently; the traversals never share state.
//
// # Operators
//
//   - Map: transform each value
//   - Filter: keep values matching a predicate
//   - Remove: drop values matching a predicate
//   - FlatMap: transform each value into multiple values
//   - Take: truncate after n values
//   - Concat: join pipelines sequentially
//   - Indistinct: emit only repeat occurrences
//   - DedupeBy: drop consecutive values with equal derived keys
//
// # Stages
//
// A Stage is a pipeline transformation packaged as a value: a function from
// one pipeline to another, built without any concrete input and composed with
// Compose. Every operator has a Stage constructor counterpart.
//
// # Usage
//
//	src := pipeline.FromSlice([]int{1, 2, 3, 4, 5})
//	doubled := pipeline.Map(src, func(n int) int { return n * 2 })
//	evens := pipeline.Filter(doubled, func(n int) bool { return n%2 == 0 })
//	results := pipeline.Collect(evens)
//
// As a reusable stage:
//
//	repeats := pipeline.Compose(
//	    pipeline.MapStage(strings.ToLower),
//	    pipeline.IndistinctStage[string](),
//	)
//	results := pipeline.Collect(repeats(pipeline.FromSlice(words)))
package pipeline
