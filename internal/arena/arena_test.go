package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	id   int
	tags []int
}

func TestSlab_GrowAndGet(t *testing.T) {
	s := New[item](4, nil)

	for i := 0; i < 10; i++ {
		idx, it := s.Grow()
		assert.Equal(t, i, idx)
		it.id = i * 10
	}

	require.Equal(t, 10, s.Len())
	for i := 0; i < 10; i++ {
		assert.Equal(t, i*10, s.Get(i).id)
	}

	st := s.Stats()
	assert.Equal(t, 3, st.ChunksAllocated)
	assert.Equal(t, 10, st.Live)
	assert.Equal(t, uint64(10), st.TotalAllocs)
}

func TestSlab_StableAddresses(t *testing.T) {
	s := New[item](2, nil)

	_, first := s.Grow()
	first.id = 42

	for i := 0; i < 100; i++ {
		s.Grow()
	}

	assert.Same(t, first, s.Get(0))
	assert.Equal(t, 42, first.id)
}

func TestSlab_ChunkSizeRoundsUp(t *testing.T) {
	s := New[int](5, nil)
	assert.Equal(t, 7, s.chunkMask)

	s = New[int](0, nil)
	assert.Equal(t, DefaultChunkSize-1, s.chunkMask)
}

func TestSlab_ResetRecycles(t *testing.T) {
	var resets int
	s := New[item](4, func(it *item) {
		resets++
		it.id = -1
		it.tags = it.tags[:0]
	})

	_, it := s.Grow()
	it.id = 7
	it.tags = append(it.tags, 1, 2, 3)

	s.Reset()
	assert.Equal(t, 0, s.Len())

	_, it = s.Grow()
	assert.Equal(t, 1, resets)
	assert.Equal(t, -1, it.id)
	assert.Empty(t, it.tags)
	assert.GreaterOrEqual(t, cap(it.tags), 3)

	// a fresh element past the high-water mark is not reset
	_, it = s.Grow()
	assert.Equal(t, 1, resets)
	assert.Equal(t, 0, it.id)

	st := s.Stats()
	assert.Equal(t, uint64(1), st.Recycled)
	assert.Equal(t, 1, st.ChunksAllocated)
}

func TestSlab_ResetZeroesWithoutResetFunc(t *testing.T) {
	s := New[item](4, nil)

	_, it := s.Grow()
	it.id = 9

	s.Reset()

	_, it = s.Grow()
	assert.Equal(t, 0, it.id)
}

func TestSlab_All(t *testing.T) {
	s := New[int](2, nil)
	for i := 0; i < 5; i++ {
		_, v := s.Grow()
		*v = i
	}

	var got []int
	for idx, v := range s.All() {
		assert.Equal(t, idx, *v)
		got = append(got, *v)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)

	got = got[:0]
	for _, v := range s.All() {
		got = append(got, *v)
		if len(got) == 2 {
			break
		}
	}
	assert.Len(t, got, 2)
}

func TestSlab_GetOutOfRange(t *testing.T) {
	s := New[int](2, nil)
	s.Grow()

	assert.Panics(t, func() { s.Get(1) })
	assert.Panics(t, func() { s.Get(-1) })
}
