package neighbor

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// Neighbor is a single search result.
type Neighbor struct {
	Index    int     // Index into the point set given to SetPoints.
	Point    r2.Vec  // Coordinates of the neighbor.
	Distance float64 // Euclidean distance to the target.
}

// Index is an exact nearest-neighbor index over a 2D point set.
type Index interface {
	// SetPoints replaces the indexed point set. The slice is not retained.
	SetPoints(points []r2.Vec)

	// FindNearest appends up to k neighbors of target to dst[:0], closest first.
	// Neighbors farther than maxDistance are dropped; a negative maxDistance means
	// unbounded. The target itself is returned if it is part of the point set.
	FindNearest(target r2.Vec, maxDistance float64, k int, dst []Neighbor) []Neighbor
}

// Factory creates a fresh Index.
type Factory func() Index

// DefaultFactory returns kd-tree indexes.
func DefaultFactory() Index {
	return NewKDTree()
}

func squared(maxDistance float64) float64 {
	if maxDistance < 0 {
		return math.Inf(1)
	}
	return maxDistance * maxDistance
}

// sortNeighbors orders by distance, then by index so equal distances are deterministic.
func sortNeighbors(ns []Neighbor) {
	sort.Slice(ns, func(i, j int) bool {
		if ns[i].Distance != ns[j].Distance {
			return ns[i].Distance < ns[j].Distance
		}
		return ns[i].Index < ns[j].Index
	})
}
