// Package arena provides chunked storage with stable indices and stable addresses.
//
// A Slab hands out elements from fixed-size chunks that are never reallocated, so a
// pointer returned by Grow or Get stays valid until Reset. Reset does not release
// memory; elements are recycled on the next Grow.
//
// # Concurrency Model
//
// Slab is not safe for concurrent use. Callers serialize access, which matches the
// single-threaded engine that owns it.
package arena
