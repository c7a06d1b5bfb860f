package llah

import (
	"context"
	"fmt"
	"time"

	"gonum.org/v1/gonum/spatial/r2"
)

// votingBooth collects, for one observed dot, the document votes and the hash
// codes the dot produced.
type votingBooth struct {
	votes  []dotVote   // in the order documents were first voted for
	index  map[int]int // document ID -> position in votes
	hashes []int
}

type dotVote struct {
	documentID int
	count      int
}

func (b *votingBooth) reset() {
	b.votes = b.votes[:0]
	b.hashes = b.hashes[:0]
	if b.index == nil {
		b.index = make(map[int]int)
	}
	clear(b.index)
}

func (b *votingBooth) add(documentID, count int) {
	i, ok := b.index[documentID]
	if !ok {
		i = len(b.votes)
		b.index[documentID] = i
		b.votes = append(b.votes, dotVote{documentID: documentID})
	}
	b.votes[i].count += count
}

// winner returns the document with the most votes; the first one wins ties.
func (b *votingBooth) winner() dotVote {
	best := b.votes[0]
	for _, v := range b.votes[1:] {
		if v.count > best.count {
			best = v
		}
	}
	return best
}

// LookupDocuments finds the registered documents the observed dots belong to and
// assigns dots to landmarks.
//
// Each dot votes for documents through the hash codes of its neighborhood; the
// document with the most votes wins the dot, and the dot is then assigned to the
// landmark of that document sharing the most hash codes with it (lowest landmark ID
// on ties). When two dots claim the same landmark the one with more votes keeps it.
// Documents with fewer than minLandmarks assigned landmarks are dropped.
//
// Fewer than N+1 dots is not an error; the result is simply empty.
//
// WARNING: the returned slice and FoundDocuments are owned by the Engine and are
// overwritten by the next call to any mutating method. Copy what you need to keep.
func (e *Engine) LookupDocuments(dots []Point, minLandmarks int) []*FoundDocument {
	start := time.Now()

	e.results = e.results[:0]
	e.found.Reset()
	clear(e.foundByDoc)

	if len(dots) >= e.n+1 {
		e.lookupDocuments(dots, minLandmarks)
	}

	e.metrics.RecordLookup(len(dots), len(e.results), time.Since(start))
	e.logger.LogLookup(context.Background(), len(dots), minLandmarks, len(e.results))

	return e.results
}

func (e *Engine) lookupDocuments(dots []Point, minLandmarks int) {
	if cap(e.booths) < len(dots) {
		e.booths = append(e.booths[:cap(e.booths)], make([]votingBooth, len(dots)-cap(e.booths))...)
	}
	e.booths = e.booths[:len(dots)]
	for i := range e.booths {
		e.booths[i].reset()
	}

	e.gen.Generate(dots, e.castVotes)

	for dot := range dots {
		booth := &e.booths[dot]
		if len(booth.votes) == 0 {
			continue
		}

		best := booth.winner()
		doc := e.documents.Get(best.documentID)

		landmark, votes := e.electLandmark(doc, booth.hashes)
		if landmark < 0 {
			continue
		}

		found := e.foundByDoc[best.documentID]
		if found == nil {
			_, found = e.found.Grow()
			found.init(doc)
			e.foundByDoc[best.documentID] = found
		}

		found.assign(landmark, dot, votes)
	}

	for _, found := range e.found.All() {
		if found.CountSeenLandmarks() >= minLandmarks {
			e.results = append(e.results, found)
		}
	}
}

// castVotes hashes one tuple of a dot and adds the occurrence counts of every
// document sharing that hash code to the dot's booth.
func (e *Engine) castVotes(dot int, tuple []r2.Vec) {
	booth := &e.booths[dot]

	hash := e.hasher.ComputeHash(tuple, e.invariants)
	booth.hashes = append(booth.hashes, hash)

	bucket := e.votes.Lookup(hash)
	if bucket == nil {
		return
	}

	for _, hit := range bucket.Votes {
		if hit.Total <= 0 {
			panic(fmt.Sprintf("llah: vote bucket for hash %d holds count %d for document %d", hash, hit.Total, hit.DocumentID))
		}
		booth.add(hit.DocumentID, hit.Total)
	}
}

// electLandmark returns the landmark of doc that shares the most hash codes with
// the dot, and that count. It returns -1 when no hash code matches.
func (e *Engine) electLandmark(doc *Document, hashes []int) (int, int) {
	e.landmarkVotes = resize(e.landmarkVotes, len(doc.Landmarks), 0)

	for _, hash := range hashes {
		if f, ok := doc.FeatureByHash(hash); ok {
			e.landmarkVotes[f.LandmarkID]++
		}
	}

	best, bestVotes := -1, 0
	for i, v := range e.landmarkVotes {
		if v > bestVotes {
			best, bestVotes = i, v
		}
	}

	return best, bestVotes
}
