package neighbor

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r2"
)

// KDTree is an Index backed by gonum's kd-tree.
type KDTree struct {
	points indexedPoints
	tree   *kdtree.Tree
	keeper *kdtree.NKeeper
}

// NewKDTree creates an empty KDTree.
func NewKDTree() *KDTree {
	return &KDTree{}
}

// SetPoints implements Index.
func (t *KDTree) SetPoints(points []r2.Vec) {
	// kdtree.New partitions in place, so the tree gets its own copy.
	t.points = t.points[:0]
	for i, p := range points {
		t.points = append(t.points, indexedPoint{Vec: p, idx: i})
	}

	if len(t.points) == 0 {
		t.tree = nil
		return
	}

	t.tree = kdtree.New(t.points, false)
}

// FindNearest implements Index.
func (t *KDTree) FindNearest(target r2.Vec, maxDistance float64, k int, dst []Neighbor) []Neighbor {
	dst = dst[:0]
	if t.tree == nil || k <= 0 {
		return dst
	}

	t.resetKeeper(k)
	t.tree.NearestSet(t.keeper, indexedPoint{Vec: target, idx: -1})

	limit := squared(maxDistance)
	for _, c := range t.keeper.Heap {
		// the sentinel survives when the set holds fewer than k points
		if c.Comparable == nil || c.Dist > limit {
			continue
		}
		p := c.Comparable.(indexedPoint)
		dst = append(dst, Neighbor{Index: p.idx, Point: p.Vec, Distance: math.Sqrt(c.Dist)})
	}

	sortNeighbors(dst)

	return dst
}

func (t *KDTree) resetKeeper(k int) {
	if t.keeper == nil || cap(t.keeper.Heap) != k {
		t.keeper = kdtree.NewNKeeper(k)
		return
	}

	t.keeper.Heap = t.keeper.Heap[:1]
	t.keeper.Heap[0] = kdtree.ComparableDist{Dist: math.Inf(1)}
}

// indexedPoint is a kdtree.Comparable that remembers its input position.
type indexedPoint struct {
	r2.Vec
	idx int
}

func (p indexedPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(indexedPoint)
	if d == 0 {
		return p.X - q.X
	}
	return p.Y - q.Y
}

func (p indexedPoint) Dims() int { return 2 }

// Distance returns the squared Euclidean distance, as kdtree expects.
func (p indexedPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(indexedPoint)
	return r2.Norm2(r2.Sub(p.Vec, q.Vec))
}

// indexedPoints implements kdtree.Interface.
type indexedPoints []indexedPoint

func (p indexedPoints) Index(i int) kdtree.Comparable { return p[i] }
func (p indexedPoints) Len() int                      { return len(p) }
func (p indexedPoints) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}

func (p indexedPoints) Pivot(d kdtree.Dim) int {
	return plane{points: p, dim: d}.Pivot()
}

// plane sorts points along one dimension for median partitioning.
type plane struct {
	points indexedPoints
	dim    kdtree.Dim
}

func (p plane) Less(i, j int) bool {
	if p.dim == 0 {
		return p.points[i].X < p.points[j].X
	}
	return p.points[i].Y < p.points[j].Y
}

func (p plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }

func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.points = p.points[start:end]
	return p
}

func (p plane) Swap(i, j int) {
	p.points[i], p.points[j] = p.points[j], p.points[i]
}

func (p plane) Len() int { return len(p.points) }
