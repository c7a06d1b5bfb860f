package testutil

import (
	"math"
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Points returns n points uniformly distributed in [0, size)².
// Locks only once per call.
func (r *RNG) Points(n int, size float64) []r2.Vec {
	r.mu.Lock()
	defer r.mu.Unlock()

	pts := make([]r2.Vec, n)
	for i := range pts {
		pts[i] = r2.Vec{X: r.rand.Float64() * size, Y: r.rand.Float64() * size}
	}
	return pts
}

// Markers returns count independent point sets of n points each.
func (r *RNG) Markers(count, n int, size float64) [][]r2.Vec {
	markers := make([][]r2.Vec, count)
	for i := range markers {
		markers[i] = r.Points(n, size)
	}
	return markers
}

// Shuffle permutes pts in place and returns perm with pts[i] = old[perm[i]].
func (r *RNG) Shuffle(pts []r2.Vec) []int {
	r.mu.Lock()
	perm := r.rand.Perm(len(pts))
	r.mu.Unlock()

	old := append([]r2.Vec(nil), pts...)
	for i, p := range perm {
		pts[i] = old[p]
	}
	return perm
}

// Occlude drops each point with probability fraction and returns the survivors
// in their original order.
func (r *RNG) Occlude(pts []r2.Vec, fraction float64) []r2.Vec {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]r2.Vec, 0, len(pts))
	for _, p := range pts {
		if r.rand.Float64() >= fraction {
			out = append(out, p)
		}
	}
	return out
}

// Jitter moves every point by a uniform offset in [-amount, amount)².
func (r *RNG) Jitter(pts []r2.Vec, amount float64) []r2.Vec {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]r2.Vec, len(pts))
	for i, p := range pts {
		out[i] = r2.Vec{
			X: p.X + (2*r.rand.Float64()-1)*amount,
			Y: p.Y + (2*r.rand.Float64()-1)*amount,
		}
	}
	return out
}

// Similarity rotates pts by theta around the origin, scales them and translates
// the result by offset.
func Similarity(pts []r2.Vec, theta, scale float64, offset r2.Vec) []r2.Vec {
	sin, cos := math.Sincos(theta)
	return Affine(pts, [4]float64{scale * cos, -scale * sin, scale * sin, scale * cos}, offset)
}

// Affine maps every point p to A·p + offset, with A given row-major.
func Affine(pts []r2.Vec, a [4]float64, offset r2.Vec) []r2.Vec {
	out := make([]r2.Vec, len(pts))
	for i, p := range pts {
		out[i] = r2.Vec{
			X: a[0]*p.X + a[1]*p.Y + offset.X,
			Y: a[2]*p.X + a[3]*p.Y + offset.Y,
		}
	}
	return out
}

// Nearest returns the indices of the k points closest to pts[i], excluding i,
// by brute force. It serves as ground truth for neighbor indexes.
func Nearest(pts []r2.Vec, i, k int) []int {
	idx := make([]int, 0, len(pts))
	for j := range pts {
		if j != i {
			idx = append(idx, j)
		}
	}

	dist := func(j int) float64 { return r2.Norm2(r2.Sub(pts[j], pts[i])) }
	for a := 1; a < len(idx); a++ {
		for b := a; b > 0 && dist(idx[b]) < dist(idx[b-1]); b-- {
			idx[b], idx[b-1] = idx[b-1], idx[b]
		}
	}

	return idx[:min(k, len(idx))]
}
