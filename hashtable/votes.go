package hashtable

import "github.com/hupe1980/llah/internal/arena"

// DocumentHits is the number of times a hash code occurs in one document.
type DocumentHits struct {
	DocumentID int
	Total      int
}

// VoteBucket holds the per-document occurrence counts of one hash code.
type VoteBucket struct {
	// Votes is in first-insertion order.
	Votes []DocumentHits
}

func (b *VoteBucket) reset() {
	b.Votes = b.Votes[:0]
}

// hit returns the slot for documentID, creating it if needed.
func (b *VoteBucket) hit(documentID int) *DocumentHits {
	for i := range b.Votes {
		if b.Votes[i].DocumentID == documentID {
			return &b.Votes[i]
		}
	}

	b.Votes = append(b.Votes, DocumentHits{DocumentID: documentID})

	return &b.Votes[len(b.Votes)-1]
}

// Votes maps hash codes to per-document occurrence counts.
// It is not safe for concurrent use.
type Votes struct {
	index   map[int]int // hash -> bucket index
	buckets *arena.Slab[VoteBucket]
}

// NewVotes creates an empty voting table.
func NewVotes() *Votes {
	return &Votes{
		index:   make(map[int]int),
		buckets: arena.New[VoteBucket](arena.DefaultChunkSize, (*VoteBucket).reset),
	}
}

// Add counts one more occurrence of f.HashCode in f.DocumentID.
func (v *Votes) Add(f Feature) {
	var bucket *VoteBucket
	if idx, ok := v.index[f.HashCode]; ok {
		bucket = v.buckets.Get(idx)
	} else {
		var idx int
		idx, bucket = v.buckets.Grow()
		v.index[f.HashCode] = idx
	}

	bucket.hit(f.DocumentID).Total++
}

// Lookup returns the bucket for hash, or nil if no document has that hash code.
func (v *Votes) Lookup(hash int) *VoteBucket {
	idx, ok := v.index[hash]
	if !ok {
		return nil
	}
	return v.buckets.Get(idx)
}

// Len returns the number of distinct hash codes.
func (v *Votes) Len() int {
	return len(v.index)
}

// Reset clears all buckets and recycles their storage.
func (v *Votes) Reset() {
	clear(v.index)
	v.buckets.Reset()
}
