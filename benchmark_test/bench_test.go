package benchmark_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/llah"
	"github.com/hupe1980/llah/hasher"
	"github.com/hupe1980/llah/neighbor"
	"github.com/hupe1980/llah/testutil"
)

// ============================================================================
// ENGINE BENCHMARKS
// ============================================================================
//
// Run: go test -bench=. -run=^$ ./benchmark_test/...
//
// Markers are uniform random point sets; lookups observe one marker rotated,
// scaled and with 20% of its dots occluded.

const (
	markerSize = 40
	levels     = 8
	bins       = 100_000
	maxValue   = 25
)

func setup(b *testing.B, markers int, optFns ...llah.Option) (*llah.Engine, [][]llah.Point) {
	b.Helper()

	rng := testutil.NewRNG(4711)
	docs := rng.Markers(markers, markerSize, 100)

	eng, err := llah.New(7, 5, hasher.New(hasher.Affine), optFns...)
	if err != nil {
		b.Fatalf("new: %v", err)
	}
	if err := eng.LearnHashing(docs, levels, bins, maxValue); err != nil {
		b.Fatalf("learn: %v", err)
	}
	for _, d := range docs {
		if _, err := eng.CreateDocument(d); err != nil {
			b.Fatalf("create: %v", err)
		}
	}

	return eng, docs
}

func BenchmarkCreateDocument(b *testing.B) {
	eng, docs := setup(b, 10)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if i%100 == 0 {
			eng.ClearDocuments()
		}
		if _, err := eng.CreateDocument(docs[i%len(docs)]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLookupDocuments(b *testing.B) {
	for _, markers := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("markers=%d", markers), func(b *testing.B) {
			if testing.Short() && markers > 100 {
				b.Skip("short mode")
			}

			eng, docs := setup(b, markers)

			rng := testutil.NewRNG(42)
			queries := make([][]llah.Point, 32)
			for i := range queries {
				dots := testutil.Similarity(docs[rng.Intn(len(docs))], rng.Float64(), 1+rng.Float64(), llah.Point{})
				queries[i] = rng.Occlude(dots, 0.2)
			}

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				eng.LookupDocuments(queries[i%len(queries)], 8)
			}
		})
	}
}

func BenchmarkNeighborIndex(b *testing.B) {
	factories := map[string]neighbor.Factory{
		"kdtree": neighbor.DefaultFactory,
		"flat":   func() neighbor.Index { return neighbor.NewFlat() },
	}

	for name, factory := range factories {
		b.Run(name, func(b *testing.B) {
			eng, docs := setup(b, 50, llah.WithNeighborIndex(factory))

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				eng.LookupDocuments(docs[i%len(docs)], 8)
			}
		})
	}
}

func BenchmarkLearnHashing(b *testing.B) {
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			rng := testutil.NewRNG(4711)
			docs := rng.Markers(100, markerSize, 100)

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				eng, _ := llah.New(7, 5, hasher.New(hasher.Affine), llah.WithLearnWorkers(workers))
				if err := eng.LearnHashing(docs, levels, bins, maxValue); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
