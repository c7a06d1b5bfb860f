// Package hasher turns ordered point tuples into geometric invariants and hash codes.
//
// A Hasher is the pluggable capability behind LLAH feature indexing. Given the M
// points of one cyclic rotation of a neighbor combination it computes a fixed number
// of scalar invariants and folds their discretized values into a single integer.
//
// # Contract
//
// Invariants must be unchanged by the transform class the hasher models (similarity,
// affine or projective) but may change when the tuple is rotated. Feature generation
// only emits cyclic rotations of each combination, never arbitrary permutations, so
// a replacement hasher must hold the same rotation-stability contract or lookups
// stop matching.
//
// # Discretization
//
// Raw invariant values are binned into a fine histogram over [0, maxInvariantValue).
// LearnDiscretization equalizes that histogram into numDiscrete levels so that each
// level receives roughly the same share of training samples, which spreads hash
// codes evenly over the table.
//
//	h := hasher.New(hasher.Affine)
//	hist := hasher.NewHistogram(100_000, 25)
//	// ... hist.Add(v) for every training invariant ...
//	err := h.LearnDiscretization(hist.Counts(), hist.MaxValue(), 7)
package hasher
