// Package neighbor provides exact k-nearest-neighbor search over 2D point sets.
//
// An Index is rebuilt with SetPoints every time the point set changes; there is no
// incremental insert. Two implementations are provided:
//
//   - KDTree: gonum kd-tree, the default for feature generation
//   - Flat: brute-force scan with a bounded max-heap, useful for small sets and as
//     a reference in tests
//
// Both return neighbors sorted by ascending Euclidean distance and identify each
// neighbor by its index in the slice passed to SetPoints, so a caller can exclude
// the query point itself by identity rather than by coordinates.
package neighbor
