// Package slices provides generic helpers over slices: splitting, grouping,
// sampling, set-style operations and aggregations.
//
// Two helpers, Chunk and GroupBy, are configurable operations built on the
// op framework. Each comes in four shapes sharing one implementation:
//
//	chunks, err := slices.Chunk(data, slices.ChunkSize(2))      // data-first
//	res := slices.TryChunk(data, slices.ChunkSize(2))           // outcome-valued
//	pairs := slices.ChunkWith[int](slices.ChunkSize(2))         // data-last
//	tryPairs := slices.TryChunkWith[int](slices.ChunkSize(2))   // both
//
// The remaining helpers are plain functions: they have no options and no
// failure modes beyond what their signatures express.
//
// # Error Codes
//
// Chunk fails with code "invalid_size" when the configured size is not
// positive. GroupBy fails with "missing_group_key" when the selector reports
// no key for an element and missing keys are not allowed, and with
// "invalid_selector" when no selector is given. Codes are stable and can be
// matched with outcome.HasCode regardless of calling shape.
package slices
