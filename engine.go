package llah

import (
	"context"
	"fmt"
	"iter"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/hupe1980/llah/hasher"
	"github.com/hupe1980/llah/hashtable"
	"github.com/hupe1980/llah/internal/arena"
	"github.com/hupe1980/llah/internal/feature"
)

// Engine registers documents and looks them up from unordered observed dots.
//
// An Engine is NOT safe for concurrent use: registration, learning and lookup
// share scratch buffers and the voting table. Serialize calls per Engine.
type Engine struct {
	n             int
	m             int
	numInvariants int

	hasher  hasher.Hasher
	votes   *hashtable.Votes
	chained *hashtable.Chained // nil unless WithFeatureIndex

	documents *arena.Slab[Document]

	gen        *feature.Generator
	invariants []float64

	// lookup scratch, recycled on every call
	booths        []votingBooth
	landmarkVotes []int
	found         *arena.Slab[FoundDocument]
	foundByDoc    map[int]*FoundDocument
	results       []*FoundDocument

	opts    options
	logger  *Logger
	metrics MetricsCollector
}

// New creates an Engine that hashes combinations of m points out of the n nearest
// neighbors of each point.
func New(n, m int, h hasher.Hasher, optFns ...Option) (*Engine, error) {
	if h == nil {
		return nil, fmt.Errorf("%w: hasher is nil", ErrInvalidConfig)
	}
	if n < 1 || m < 1 || m > n {
		return nil, fmt.Errorf("%w: need 1 <= m <= n, got n=%d m=%d", ErrInvalidConfig, n, m)
	}

	numInvariants := h.NumberOfInvariants(m)
	if numInvariants < 1 {
		return nil, fmt.Errorf("%w: hasher yields no invariants for m=%d", ErrInvalidConfig, m)
	}

	opts := applyOptions(optFns)

	e := &Engine{
		n:             n,
		m:             m,
		numInvariants: numInvariants,
		hasher:        h,
		votes:         hashtable.NewVotes(),
		documents:     arena.New[Document](64, (*Document).reset),
		gen:           feature.NewGenerator(n, m, opts.neighborFactory()),
		invariants:    make([]float64, numInvariants),
		found:         arena.New[FoundDocument](16, func(*FoundDocument) {}),
		foundByDoc:    make(map[int]*FoundDocument),
		opts:          opts,
		logger:        opts.logger.WithShape(n, m),
		metrics:       opts.metricsCollector,
	}

	if opts.featureIndex {
		e.chained = hashtable.NewChained()
	}

	return e, nil
}

// NumberOfNeighbors returns N, the number of neighbors considered per point.
func (e *Engine) NumberOfNeighbors() int { return e.n }

// SizeOfCombination returns M, the size of each neighbor combination.
func (e *Engine) SizeOfCombination() int { return e.m }

// NumberOfInvariants returns the number of invariants per feature.
func (e *Engine) NumberOfInvariants() int { return e.numInvariants }

// Hasher returns the hasher used for all features.
func (e *Engine) Hasher() hasher.Hasher { return e.hasher }

// Votes returns the voting hash table. It must not be modified.
func (e *Engine) Votes() *hashtable.Votes { return e.votes }

// ComputeMaxUniqueHashPerPoint returns C(N, M)·M, the maximum number of distinct hash
// codes a single point can produce.
func (e *Engine) ComputeMaxUniqueHashPerPoint() int {
	return feature.MaxTuplesPerPoint(e.n, e.m)
}

// NumDocuments returns the number of registered documents.
func (e *Engine) NumDocuments() int {
	return e.documents.Len()
}

// Document returns the document with the given ID, or nil.
func (e *Engine) Document(id int) *Document {
	if id < 0 || id >= e.documents.Len() {
		return nil
	}
	return e.documents.Get(id)
}

// Documents iterates over registered documents in ID order.
func (e *Engine) Documents() iter.Seq[*Document] {
	return func(yield func(*Document) bool) {
		for _, d := range e.documents.All() {
			if !yield(d) {
				return
			}
		}
	}
}

// CreateDocument registers points as a new document and indexes its features.
//
// It fails with an *InsufficientPointsError when fewer than N+1 points are given
// and with ErrNotLearned before LearnHashing; in both cases nothing is modified.
// The returned document stays valid until ClearDocuments.
func (e *Engine) CreateDocument(points []Point) (*Document, error) {
	start := time.Now()

	doc, err := e.createDocument(points)

	logger, features := e.logger, 0
	if doc != nil {
		logger, features = e.logger.WithDocument(doc.DocumentID), len(doc.Features)
	}
	e.metrics.RecordCreateDocument(features, time.Since(start), err)
	logger.LogCreateDocument(context.Background(), len(points), features, err)

	return doc, err
}

func (e *Engine) createDocument(points []Point) (*Document, error) {
	if len(points) < e.n+1 {
		return nil, &InsufficientPointsError{Required: e.n + 1, Actual: len(points)}
	}
	if !e.hasher.Learned() {
		return nil, ErrNotLearned
	}

	idx, doc := e.documents.Grow()
	doc.reset()
	doc.DocumentID = idx
	doc.Landmarks = append(doc.Landmarks, points...)

	e.gen.Generate(points, func(anchor int, tuple []r2.Vec) {
		f := Feature{
			HashCode:   e.hasher.ComputeHash(tuple, e.invariants),
			DocumentID: doc.DocumentID,
			LandmarkID: anchor,
		}

		doc.addFeature(f)
		e.votes.Add(f)
		if e.chained != nil {
			e.chained.Insert(f)
		}
	})

	return doc, nil
}

// LookupFeatures returns every registered feature with the given hash code in
// registration order. It returns nil unless the engine was created with
// WithFeatureIndex(true).
func (e *Engine) LookupFeatures(hash int) []Feature {
	if e.chained == nil {
		return nil
	}

	ids := e.chained.Lookup(hash)
	if len(ids) == 0 {
		return nil
	}

	out := make([]Feature, len(ids))
	for i, id := range ids {
		out[i] = *e.chained.Feature(id)
	}

	return out
}

// ClearDocuments forgets every document and recycles their storage. The learned
// discretization is kept. Documents and lookup results obtained earlier become invalid.
func (e *Engine) ClearDocuments() {
	e.documents.Reset()
	e.votes.Reset()
	if e.chained != nil {
		e.chained.Reset()
	}

	e.found.Reset()
	clear(e.foundByDoc)
	e.results = e.results[:0]

	e.metrics.RecordClear()
	e.logger.DebugContext(context.Background(), "documents cleared")
}
