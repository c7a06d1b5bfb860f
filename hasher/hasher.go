package hasher

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat/combin"
)

// DefaultHashSize is the default modulus of hash codes (2^31 - 1).
const DefaultHashSize = 1<<31 - 1

// Hasher computes invariants and hash codes for ordered point tuples.
type Hasher interface {
	// NumberOfInvariants returns how many invariants a tuple of m points yields.
	NumberOfInvariants(m int) int

	// ComputeInvariants writes the invariants of points into dst, which must have
	// length NumberOfInvariants(len(points)). Safe for concurrent use.
	ComputeInvariants(points []r2.Vec, dst []float64)

	// ComputeHash writes the invariants of points into invariants and returns the
	// discretized hash code.
	ComputeHash(points []r2.Vec, invariants []float64) int

	// LearnDiscretization fits the discretization from a histogram of invariant
	// values binned over [0, maxInvariantValue).
	LearnDiscretization(histogram []int, maxInvariantValue float64, numDiscrete int) error

	// Learned reports whether LearnDiscretization has succeeded.
	Learned() bool
}

// Options configures a Discrete hasher.
type Options struct {
	// HashSize is the modulus applied to hash codes. Defaults to DefaultHashSize.
	HashSize int
}

// Discrete is the reference Hasher: one Invariant evaluated on every subset of the
// tuple, equalized into numDiscrete levels and folded base numDiscrete.
type Discrete struct {
	invariant Invariant
	hashSize  uint64

	mu     sync.RWMutex
	combos map[int][][]int

	maxValue    float64
	numDiscrete int
	levels      []int // histogram bin -> level
}

// New creates a Discrete hasher for the given invariant.
func New(inv Invariant, optFns ...func(o *Options)) *Discrete {
	opts := Options{HashSize: DefaultHashSize}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.HashSize <= 0 {
		opts.HashSize = DefaultHashSize
	}

	return &Discrete{
		invariant: inv,
		hashSize:  uint64(opts.HashSize),
		combos:    make(map[int][][]int),
	}
}

// Invariant returns the configured invariant kind.
func (h *Discrete) Invariant() Invariant {
	return h.invariant
}

// NumDiscrete returns the number of learned levels, or 0 before learning.
func (h *Discrete) NumDiscrete() int {
	return h.numDiscrete
}

// NumberOfInvariants implements Hasher.
func (h *Discrete) NumberOfInvariants(m int) int {
	p := h.invariant.Points()
	if p == 0 || m < p {
		return 0
	}
	return combin.Binomial(m, p)
}

// ComputeInvariants implements Hasher.
func (h *Discrete) ComputeInvariants(points []r2.Vec, dst []float64) {
	for i, idx := range h.subsets(len(points)) {
		dst[i] = h.invariant.compute(points, idx)
	}
}

// ComputeHash implements Hasher. Before learning every invariant maps to level 0.
func (h *Discrete) ComputeHash(points []r2.Vec, invariants []float64) int {
	h.ComputeInvariants(points, invariants)

	base := uint64(h.numDiscrete)
	if base == 0 {
		base = 1
	}

	var code uint64
	for _, v := range invariants {
		code = (code*base + uint64(h.level(v))) % h.hashSize
	}

	return int(code)
}

// LearnDiscretization implements Hasher. The histogram is equalized: bin j gets the
// level floor(numDiscrete * samplesBelow(j) / total).
func (h *Discrete) LearnDiscretization(histogram []int, maxInvariantValue float64, numDiscrete int) error {
	if numDiscrete < 1 || maxInvariantValue <= 0 || len(histogram) == 0 {
		return fmt.Errorf("%w: levels=%d max=%g bins=%d", ErrInvalidDiscretization, numDiscrete, maxInvariantValue, len(histogram))
	}

	n := total(histogram)
	if n == 0 {
		return ErrEmptyHistogram
	}

	levels := make([]int, len(histogram))
	below := 0
	for j, c := range histogram {
		levels[j] = min(numDiscrete-1, numDiscrete*below/n)
		below += c
	}

	h.levels = levels
	h.maxValue = maxInvariantValue
	h.numDiscrete = numDiscrete

	return nil
}

// Learned implements Hasher.
func (h *Discrete) Learned() bool {
	return h.levels != nil
}

func (h *Discrete) level(v float64) int {
	if h.levels == nil {
		return 0
	}
	return h.levels[Bin(len(h.levels), h.maxValue, v)]
}

// subsets returns the point-index subsets the invariants are computed from, cached per m.
func (h *Discrete) subsets(m int) [][]int {
	h.mu.RLock()
	s, ok := h.combos[m]
	h.mu.RUnlock()
	if ok {
		return s
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if s, ok = h.combos[m]; ok {
		return s
	}

	p := h.invariant.Points()
	if p == 0 || m < p {
		s = nil
	} else {
		s = combin.Combinations(m, p)
	}
	h.combos[m] = s

	return s
}
