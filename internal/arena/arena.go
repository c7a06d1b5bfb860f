package arena

import (
	"iter"
	"math/bits"
)

const (
	// DefaultChunkSize is the default number of elements per chunk.
	DefaultChunkSize = 256
)

// Stats tracks slab usage.
//
// Note on semantics:
//   - ChunksAllocated: chunks ever created (chunks survive Reset)
//   - Live: elements handed out since the last Reset
//   - TotalAllocs: cumulative Grow calls
//   - Recycled: Grow calls that reused an element from a previous generation
type Stats struct {
	ChunksAllocated int
	Live            int
	TotalAllocs     uint64
	Recycled        uint64
}

// Slab is a growable sequence of T with stable indices and addresses.
type Slab[T any] struct {
	chunkBits int
	chunkMask int
	chunks    [][]T
	size      int
	// high-water mark of initialized elements, used to tell fresh from recycled
	touched int
	reset   func(*T)
	stats   Stats
}

// New creates a Slab whose chunks hold chunkSize elements, rounded up to a power of 2.
// reset, if non-nil, is called on a recycled element before Grow returns it; it
// should clear the element while keeping any owned capacity.
func New[T any](chunkSize int, reset func(*T)) *Slab[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	chunkBits := bits.Len(uint(chunkSize - 1)) //nolint:gosec // chunkSize > 0

	return &Slab[T]{
		chunkBits: chunkBits,
		chunkMask: (1 << chunkBits) - 1,
		reset:     reset,
	}
}

// Grow appends an element and returns its index and address.
func (s *Slab[T]) Grow() (int, *T) {
	idx := s.size
	chunk := idx >> s.chunkBits

	if chunk == len(s.chunks) {
		s.chunks = append(s.chunks, make([]T, 1<<s.chunkBits))
		s.stats.ChunksAllocated++
	}

	elem := &s.chunks[chunk][idx&s.chunkMask]
	if idx < s.touched {
		s.stats.Recycled++
		if s.reset != nil {
			s.reset(elem)
		} else {
			var zero T
			*elem = zero
		}
	} else {
		s.touched = idx + 1
	}

	s.size++
	s.stats.TotalAllocs++

	return idx, elem
}

// Get returns the element at idx. It panics if idx is out of range.
func (s *Slab[T]) Get(idx int) *T {
	if idx < 0 || idx >= s.size {
		panic("arena: index out of range")
	}

	return &s.chunks[idx>>s.chunkBits][idx&s.chunkMask]
}

// Len returns the number of live elements.
func (s *Slab[T]) Len() int {
	return s.size
}

// All iterates over live elements in index order.
func (s *Slab[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < s.size; i++ {
			if !yield(i, &s.chunks[i>>s.chunkBits][i&s.chunkMask]) {
				return
			}
		}
	}
}

// Reset forgets all elements. Chunks are kept and elements are recycled by Grow.
func (s *Slab[T]) Reset() {
	s.size = 0
}

// Stats returns a snapshot of the slab usage.
func (s *Slab[T]) Stats() Stats {
	st := s.stats
	st.Live = s.size
	return st
}
