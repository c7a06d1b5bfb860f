package neighbor

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func randomPoints(rng *rand.Rand, n int) []r2.Vec {
	pts := make([]r2.Vec, n)
	for i := range pts {
		pts[i] = r2.Vec{X: rng.Float64() * 100, Y: rng.Float64() * 100}
	}
	return pts
}

func indexes() map[string]Factory {
	return map[string]Factory{
		"KDTree": func() Index { return NewKDTree() },
		"Flat":   func() Index { return NewFlat() },
	}
}

func TestFindNearest(t *testing.T) {
	pts := []r2.Vec{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 3}, {X: 5, Y: 5}}

	for name, factory := range indexes() {
		t.Run(name, func(t *testing.T) {
			idx := factory()
			idx.SetPoints(pts)

			got := idx.FindNearest(pts[0], -1, 3, nil)
			require.Len(t, got, 3)

			assert.Equal(t, 0, got[0].Index, "target itself comes first")
			assert.InDelta(t, 0.0, got[0].Distance, 1e-12)
			assert.Equal(t, 2, got[1].Index)
			assert.InDelta(t, 1.0, got[1].Distance, 1e-12)
			assert.Equal(t, 3, got[2].Index)
			assert.InDelta(t, 3.0, got[2].Distance, 1e-12)
			assert.Equal(t, pts[3], got[2].Point)
		})
	}
}

func TestFindNearest_MaxDistance(t *testing.T) {
	pts := []r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 3}, {X: 10, Y: 10}}

	for name, factory := range indexes() {
		t.Run(name, func(t *testing.T) {
			idx := factory()
			idx.SetPoints(pts)

			got := idx.FindNearest(r2.Vec{}, 2, 4, nil)
			require.Len(t, got, 2)
			assert.Equal(t, 0, got[0].Index)
			assert.Equal(t, 1, got[1].Index)
		})
	}
}

func TestFindNearest_FewerPointsThanK(t *testing.T) {
	pts := []r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 1}}

	for name, factory := range indexes() {
		t.Run(name, func(t *testing.T) {
			idx := factory()
			idx.SetPoints(pts)

			got := idx.FindNearest(r2.Vec{}, -1, 5, nil)
			assert.Len(t, got, 2)

			idx.SetPoints(nil)
			assert.Empty(t, idx.FindNearest(r2.Vec{}, -1, 5, nil))
		})
	}
}

func TestFindNearest_ZeroK(t *testing.T) {
	for name, factory := range indexes() {
		t.Run(name, func(t *testing.T) {
			idx := factory()
			idx.SetPoints([]r2.Vec{{X: 1, Y: 1}})
			assert.Empty(t, idx.FindNearest(r2.Vec{}, -1, 0, nil))
		})
	}
}

func TestKDTreeMatchesFlat(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pts := randomPoints(rng, 300)

	tree := NewKDTree()
	tree.SetPoints(pts)
	flat := NewFlat()
	flat.SetPoints(pts)

	var a, b []Neighbor
	for i := 0; i < 50; i++ {
		q := pts[rng.Intn(len(pts))]
		for _, k := range []int{1, 6, 9} {
			a = tree.FindNearest(q, -1, k, a)
			b = flat.FindNearest(q, -1, k, b)
			require.Len(t, a, k)
			require.Equal(t, len(b), len(a))
			for j := range a {
				assert.Equal(t, b[j].Index, a[j].Index)
				assert.InDelta(t, b[j].Distance, a[j].Distance, 1e-9)
			}
		}
	}
}

func TestKDTree_Rebuild(t *testing.T) {
	tree := NewKDTree()
	tree.SetPoints([]r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}})
	tree.SetPoints([]r2.Vec{{X: 5, Y: 5}})

	got := tree.FindNearest(r2.Vec{}, -1, 2, nil)
	require.Len(t, got, 1)
	assert.Equal(t, r2.Vec{X: 5, Y: 5}, got[0].Point)
}

func TestSetPointsDoesNotRetainInput(t *testing.T) {
	pts := []r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}

	for name, factory := range indexes() {
		t.Run(name, func(t *testing.T) {
			in := append([]r2.Vec(nil), pts...)
			idx := factory()
			idx.SetPoints(in)
			in[1] = r2.Vec{X: 100, Y: 100}

			got := idx.FindNearest(r2.Vec{}, -1, 2, nil)
			require.Len(t, got, 2)
			assert.Equal(t, r2.Vec{X: 1, Y: 0}, got[1].Point)
		})
	}
}
