package llah

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/hupe1980/llah/hasher"
	"github.com/hupe1980/llah/internal/feature"
)

// LearnHashing fits the hasher's discretization from representative point sets,
// usually the documents that will be registered.
//
// Every invariant of every tuple of every set is binned into a histogram of
// histogramLength bins over [0, maxInvariantValue) which is then equalized into
// numDiscrete levels. 100,000 bins work well; for affine invariants a
// maxInvariantValue around 25 is typical. When the last bin holds more than
// 0.5/numDiscrete of all samples a warning is logged, as maxInvariantValue is
// probably too small; learning still proceeds.
//
// Point sets with fewer than N+1 points are skipped. LearnHashing must run before
// CreateDocument.
func (e *Engine) LearnHashing(pointSets [][]Point, numDiscrete, histogramLength int, maxInvariantValue float64) error {
	return e.LearnHashingContext(context.Background(), pointSets, numDiscrete, histogramLength, maxInvariantValue)
}

// LearnHashingContext is LearnHashing with cancellation. It checks ctx between point
// sets; on cancellation the hasher keeps its previous discretization and ctx.Err()
// is returned.
func (e *Engine) LearnHashingContext(ctx context.Context, pointSets [][]Point, numDiscrete, histogramLength int, maxInvariantValue float64) error {
	start := time.Now()

	err := e.learnHashing(ctx, pointSets, numDiscrete, histogramLength, maxInvariantValue)

	e.metrics.RecordLearn(len(pointSets), time.Since(start), err)

	return err
}

func (e *Engine) learnHashing(ctx context.Context, pointSets [][]Point, numDiscrete, histogramLength int, maxInvariantValue float64) error {
	if numDiscrete < 1 || histogramLength < 1 || maxInvariantValue <= 0 {
		err := fmt.Errorf("%w: levels=%d bins=%d max=%g", hasher.ErrInvalidDiscretization, numDiscrete, histogramLength, maxInvariantValue)
		e.logger.LogLearn(ctx, len(pointSets), 0, numDiscrete, err)
		return err
	}

	if e.documents.Len() > 0 {
		e.logger.WarnContext(ctx, "learning hashing with registered documents; their hash codes are not recomputed",
			"documents", e.documents.Len(),
		)
	}

	hist, err := e.accumulate(ctx, pointSets, histogramLength, maxInvariantValue)
	if err != nil {
		e.logger.LogLearn(ctx, len(pointSets), 0, numDiscrete, err)
		return err
	}

	allowed := 0.5 / float64(numDiscrete)
	if frac := hist.LastBinFraction(); frac > allowed {
		e.logger.LogHistogramSaturated(ctx, frac, allowed, maxInvariantValue)
	}

	err = e.hasher.LearnDiscretization(hist.Counts(), maxInvariantValue, numDiscrete)
	e.logger.LogLearn(ctx, len(pointSets), hist.Total(), numDiscrete, err)

	return err
}

// accumulate bins the raw invariants of all point sets. With more than one worker
// the sets are split round-robin; every worker owns its generator and histogram.
func (e *Engine) accumulate(ctx context.Context, pointSets [][]Point, length int, maxValue float64) (*hasher.Histogram, error) {
	workers := min(e.opts.learnWorkers, len(pointSets))
	if workers <= 1 {
		hist := hasher.NewHistogram(length, maxValue)
		if err := e.histogramSets(ctx, e.gen, e.invariants, hist, pointSets, 0, 1); err != nil {
			return nil, err
		}
		return hist, nil
	}

	hists := make([]*hasher.Histogram, workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		hists[w] = hasher.NewHistogram(length, maxValue)
		gen := feature.NewGenerator(e.n, e.m, e.opts.neighborFactory())
		invariants := make([]float64, e.numInvariants)

		g.Go(func() error {
			return e.histogramSets(gctx, gen, invariants, hists[w], pointSets, w, workers)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	hist := hists[0]
	for _, h := range hists[1:] {
		hist.Merge(h)
	}

	return hist, nil
}

func (e *Engine) histogramSets(ctx context.Context, gen *feature.Generator, invariants []float64, hist *hasher.Histogram, pointSets [][]Point, first, stride int) error {
	for i := first; i < len(pointSets); i += stride {
		if err := ctx.Err(); err != nil {
			return err
		}

		points := pointSets[i]
		if len(points) < e.n+1 {
			e.logger.LogSkippedPointSet(ctx, i, len(points), e.n+1)
			continue
		}

		gen.Generate(points, func(_ int, tuple []r2.Vec) {
			e.hasher.ComputeInvariants(tuple, invariants)
			hist.AddAll(invariants)
		})
	}

	return nil
}
