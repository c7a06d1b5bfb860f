// Package testutil provides testing utilities for llah.
//
// This package is intended for use in tests, examples and benchmarks only.
// It generates random markers and simulates how a camera observes them.
//
// # Random Markers
//
//	rng := testutil.NewRNG(seed)
//	marker := rng.Points(40, 100)            // uniform in [0, 100)²
//	markers := rng.Markers(10, 40, 100)
//
// # Observation
//
//	dots := testutil.Similarity(marker, 0.3, 2, r2.Vec{X: 10})
//	dots = rng.Occlude(dots, 0.2)            // drop 20% of the dots
//	perm := rng.Shuffle(dots)                 // dots[i] was marker[perm[i]]
package testutil
