package neighbor

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Flat is a brute-force Index. Every query scans the whole set.
type Flat struct {
	points []r2.Vec
	queue  maxQueue
}

// NewFlat creates an empty Flat index.
func NewFlat() *Flat {
	return &Flat{}
}

// SetPoints implements Index.
func (f *Flat) SetPoints(points []r2.Vec) {
	f.points = append(f.points[:0], points...)
}

// FindNearest implements Index.
func (f *Flat) FindNearest(target r2.Vec, maxDistance float64, k int, dst []Neighbor) []Neighbor {
	dst = dst[:0]
	if k <= 0 {
		return dst
	}

	limit := squared(maxDistance)

	f.queue.reset()
	for i, p := range f.points {
		d := r2.Norm2(r2.Sub(p, target))
		if d > limit {
			continue
		}
		f.queue.pushBounded(queueItem{index: i, dist: d}, k)
	}

	for _, it := range f.queue.items {
		dst = append(dst, Neighbor{Index: it.index, Point: f.points[it.index], Distance: math.Sqrt(it.dist)})
	}

	sortNeighbors(dst)

	return dst
}
