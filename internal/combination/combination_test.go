package combination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(e *Enumerator) [][]int {
	var out [][]int
	for e.Next() {
		c := make([]int, e.Size())
		for i := range c {
			c[i] = e.Get(i)
		}
		out = append(out, c)
	}
	return out
}

func TestEnumerator(t *testing.T) {
	var e Enumerator
	e.Init(5, 3)

	combos := collect(&e)
	require.Len(t, combos, 10)

	seen := make(map[[3]int]bool)
	for _, c := range combos {
		assert.Less(t, c[0], c[1])
		assert.Less(t, c[1], c[2])
		seen[[3]int{c[0], c[1], c[2]}] = true
	}
	assert.Len(t, seen, 10)

	assert.False(t, e.Next(), "exhausted enumerator stays exhausted")
}

func TestEnumerator_Restart(t *testing.T) {
	var e Enumerator
	e.Init(4, 2)
	first := collect(&e)

	e.Init(4, 2)
	second := collect(&e)
	assert.Equal(t, first, second)

	e.Init(6, 5)
	assert.Len(t, collect(&e), 6)
}

func TestEnumerator_Degenerate(t *testing.T) {
	var e Enumerator

	e.Init(2, 3)
	assert.False(t, e.Next())

	e.Init(3, 0)
	assert.False(t, e.Next())

	e.Init(3, 3)
	assert.Equal(t, [][]int{{0, 1, 2}}, collect(&e))
}

func TestTotal(t *testing.T) {
	tests := []struct {
		n, k, want int
	}{
		{5, 3, 10},
		{8, 7, 8},
		{6, 6, 1},
		{3, 4, 0},
		{4, 0, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Total(tt.n, tt.k), "C(%d,%d)", tt.n, tt.k)
	}
}
