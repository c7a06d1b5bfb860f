package llah

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordCreateDocument is called after each registration attempt.
	// features is the number of features indexed, err is nil if successful.
	RecordCreateDocument(features int, duration time.Duration, err error)

	// RecordLookup is called after each lookup. found is the number of
	// documents returned.
	RecordLookup(dots, found int, duration time.Duration)

	// RecordLearn is called after each discretization learning run.
	RecordLearn(pointSets int, duration time.Duration, err error)

	// RecordClear is called when all documents are dropped.
	RecordClear()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCreateDocument(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordLookup(int, int, time.Duration)           {}
func (NoopMetricsCollector) RecordLearn(int, time.Duration, error)          {}
func (NoopMetricsCollector) RecordClear()                                   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CreateCount      atomic.Int64
	CreateErrors     atomic.Int64
	FeaturesIndexed  atomic.Int64
	LookupCount      atomic.Int64
	LookupEmpty      atomic.Int64
	LookupDots       atomic.Int64
	LookupTotalNanos atomic.Int64
	LearnCount       atomic.Int64
	LearnErrors      atomic.Int64
	ClearCount       atomic.Int64
}

// RecordCreateDocument implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCreateDocument(features int, duration time.Duration, err error) {
	b.CreateCount.Add(1)
	if err != nil {
		b.CreateErrors.Add(1)
		return
	}
	b.FeaturesIndexed.Add(int64(features))
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(dots, found int, duration time.Duration) {
	b.LookupCount.Add(1)
	b.LookupDots.Add(int64(dots))
	b.LookupTotalNanos.Add(duration.Nanoseconds())
	if found == 0 {
		b.LookupEmpty.Add(1)
	}
}

// RecordLearn implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLearn(pointSets int, duration time.Duration, err error) {
	b.LearnCount.Add(1)
	if err != nil {
		b.LearnErrors.Add(1)
	}
}

// RecordClear implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClear() {
	b.ClearCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		CreateCount:     b.CreateCount.Load(),
		CreateErrors:    b.CreateErrors.Load(),
		FeaturesIndexed: b.FeaturesIndexed.Load(),
		LookupCount:     b.LookupCount.Load(),
		LookupEmpty:     b.LookupEmpty.Load(),
		LookupDots:      b.LookupDots.Load(),
		LookupAvgNanos:  b.getAvgLookupNanos(),
		LearnCount:      b.LearnCount.Load(),
		LearnErrors:     b.LearnErrors.Load(),
		ClearCount:      b.ClearCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgLookupNanos() int64 {
	count := b.LookupCount.Load()
	if count == 0 {
		return 0
	}
	return b.LookupTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	CreateCount     int64
	CreateErrors    int64
	FeaturesIndexed int64
	LookupCount     int64
	LookupEmpty     int64
	LookupDots      int64
	LookupAvgNanos  int64
	LearnCount      int64
	LearnErrors     int64
	ClearCount      int64
}
