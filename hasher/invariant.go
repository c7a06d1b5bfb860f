package hasher

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Invariant selects the geometric invariant computed from each point subset.
type Invariant int

const (
	// Similarity uses 3 points: |p0p1| / |p0p2|. Invariant to translation, rotation and scale.
	Similarity Invariant = iota
	// Affine uses 4 points: area(p0,p2,p3) / area(p0,p1,p2).
	Affine
	// CrossRatio uses 5 points: the projective cross ratio of triangle areas
	// area(p0,p1,p3)·area(p0,p2,p4) / (area(p0,p1,p4)·area(p0,p2,p3)).
	CrossRatio
)

// Points returns the number of points each invariant value consumes.
func (inv Invariant) Points() int {
	switch inv {
	case Similarity:
		return 3
	case Affine:
		return 4
	case CrossRatio:
		return 5
	default:
		return 0
	}
}

func (inv Invariant) String() string {
	switch inv {
	case Similarity:
		return "similarity"
	case Affine:
		return "affine"
	case CrossRatio:
		return "cross-ratio"
	default:
		return "unknown"
	}
}

// compute evaluates the invariant on points selected by idx.
// Degenerate denominators yield +Inf, which discretizes into the last bin.
func (inv Invariant) compute(pts []r2.Vec, idx []int) float64 {
	switch inv {
	case Similarity:
		p0, p1, p2 := pts[idx[0]], pts[idx[1]], pts[idx[2]]
		return ratio(r2.Norm(r2.Sub(p1, p0)), r2.Norm(r2.Sub(p2, p0)))
	case Affine:
		p0, p1, p2, p3 := pts[idx[0]], pts[idx[1]], pts[idx[2]], pts[idx[3]]
		return ratio(area(p0, p2, p3), area(p0, p1, p2))
	case CrossRatio:
		p0, p1, p2, p3, p4 := pts[idx[0]], pts[idx[1]], pts[idx[2]], pts[idx[3]], pts[idx[4]]
		return ratio(area(p0, p1, p3)*area(p0, p2, p4), area(p0, p1, p4)*area(p0, p2, p3))
	default:
		return math.NaN()
	}
}

// area returns twice the unsigned area of triangle abc.
func area(a, b, c r2.Vec) float64 {
	return math.Abs(r2.Cross(r2.Sub(b, a), r2.Sub(c, a)))
}

func ratio(num, den float64) float64 {
	if den == 0 {
		if num == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return num / den
}
