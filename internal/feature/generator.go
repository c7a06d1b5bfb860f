// Package feature enumerates the ordered neighbor tuples LLAH hashes for each point.
package feature

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/hupe1980/llah/internal/combination"
	"github.com/hupe1980/llah/neighbor"
)

// ProcessFunc receives one tuple for the point at anchor. The tuple slice is reused
// for the next call and must not be retained.
type ProcessFunc func(anchor int, tuple []r2.Vec)

// Generator produces, for every point, each cyclic rotation of each size-M
// combination of its N angle-sorted nearest neighbors.
// It is not safe for concurrent use.
type Generator struct {
	n, m int
	nn   neighbor.Index

	results   []neighbor.Neighbor
	neighbors []r2.Vec
	angles    []float64
	order     []int
	sorted    []r2.Vec
	combo     combination.Enumerator
	set       []r2.Vec
	tuple     []r2.Vec
}

// NewGenerator creates a Generator for n neighbors and combinations of size m.
func NewGenerator(n, m int, nn neighbor.Index) *Generator {
	return &Generator{
		n:     n,
		m:     m,
		nn:    nn,
		set:   make([]r2.Vec, m),
		tuple: make([]r2.Vec, m),
	}
}

// MaxTuplesPerPoint returns C(n, m)·m, the number of tuples one point emits when it
// has a full neighborhood.
func MaxTuplesPerPoint(n, m int) int {
	return combination.Total(n, m) * m
}

// Generate rebuilds the neighbor index over points and calls process for every
// tuple. Points with fewer than m neighbors emit nothing.
func (g *Generator) Generate(points []r2.Vec, process ProcessFunc) {
	g.nn.SetPoints(points)

	for anchor, p := range points {
		g.findNeighbors(anchor, p)

		g.combo.Init(len(g.sorted), g.m)
		for g.combo.Next() {
			for i := 0; i < g.m; i++ {
				g.set[i] = g.sorted[g.combo.Get(i)]
			}

			// the observer does not know which member comes first
			for shift := 0; shift < g.m; shift++ {
				for j := 0; j < g.m; j++ {
					g.tuple[j] = g.set[(shift+j)%g.m]
				}
				process(anchor, g.tuple)
			}
		}
	}
}

// Neighbors returns the angle-sorted neighbors found for the last anchor.
func (g *Generator) Neighbors() []r2.Vec {
	return g.sorted
}

// findNeighbors collects up to n nearest neighbors of the anchor, excluding the
// anchor itself, sorted by polar angle around it.
func (g *Generator) findNeighbors(anchor int, target r2.Vec) {
	g.results = g.nn.FindNearest(target, -1, g.n+1, g.results)

	g.neighbors = g.neighbors[:0]
	g.angles = g.angles[:0]
	for _, r := range g.results {
		if r.Index == anchor {
			continue
		}
		if len(g.neighbors) == g.n {
			break
		}
		g.neighbors = append(g.neighbors, r.Point)
		g.angles = append(g.angles, math.Atan2(r.Point.Y-target.Y, r.Point.X-target.X))
	}

	if cap(g.order) < len(g.angles) {
		g.order = make([]int, len(g.angles))
	}
	g.order = g.order[:len(g.angles)]
	floats.ArgsortStable(g.angles, g.order)

	g.sorted = g.sorted[:0]
	for _, i := range g.order {
		g.sorted = append(g.sorted, g.neighbors[i])
	}
}
