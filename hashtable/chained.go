package hashtable

import (
	"errors"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/llah/internal/arena"
)

// ErrAlreadyLinked is returned by Add when the feature is already in a bucket.
var ErrAlreadyLinked = errors.New("hashtable: feature is already linked")

// Chained maps hash codes to the features that produced them.
// It is not safe for concurrent use.
type Chained struct {
	features *arena.Slab[Feature]
	buckets  map[int][]FeatureID
	linked   *roaring.Bitmap
}

// NewChained creates an empty Chained table.
func NewChained() *Chained {
	return &Chained{
		features: arena.New[Feature](arena.DefaultChunkSize, nil),
		buckets:  make(map[int][]FeatureID),
		linked:   roaring.New(),
	}
}

// Alloc stores f in the arena without linking it into a bucket.
func (c *Chained) Alloc(f Feature) FeatureID {
	idx, dst := c.features.Grow()
	*dst = f
	return FeatureID(idx) //nolint:gosec // arena indices are dense and small
}

// Add appends the feature to the end of the bucket for its hash code.
// The feature must not already be linked.
func (c *Chained) Add(id FeatureID) error {
	if c.linked.Contains(uint32(id)) {
		return ErrAlreadyLinked
	}

	f := c.features.Get(int(id))
	c.buckets[f.HashCode] = append(c.buckets[f.HashCode], id)
	c.linked.Add(uint32(id))

	return nil
}

// Insert allocates and links f in one step.
func (c *Chained) Insert(f Feature) FeatureID {
	id := c.Alloc(f)
	// a fresh id cannot be linked yet
	_ = c.Add(id)
	return id
}

// Remove unlinks the feature from its bucket, keeping the relative order of the
// rest. The bucket is deleted once empty. It reports whether the feature was found.
func (c *Chained) Remove(id FeatureID) bool {
	if !c.linked.Contains(uint32(id)) {
		return false
	}

	hash := c.features.Get(int(id)).HashCode
	bucket := c.buckets[hash]

	for i, other := range bucket {
		if other != id {
			continue
		}

		bucket = append(bucket[:i], bucket[i+1:]...)
		if len(bucket) == 0 {
			delete(c.buckets, hash)
		} else {
			c.buckets[hash] = bucket
		}
		c.linked.Remove(uint32(id))

		return true
	}

	return false
}

// Lookup returns every feature ID linked under hash, oldest first, or nil.
// The slice is owned by the table and is only valid until the next mutation.
func (c *Chained) Lookup(hash int) []FeatureID {
	return c.buckets[hash]
}

// Head returns the first feature linked under hash.
func (c *Chained) Head(hash int) (FeatureID, bool) {
	bucket := c.buckets[hash]
	if len(bucket) == 0 {
		return 0, false
	}
	return bucket[0], true
}

// Feature returns the stored feature for id.
func (c *Chained) Feature(id FeatureID) *Feature {
	return c.features.Get(int(id))
}

// Linked reports whether id is currently in a bucket.
func (c *Chained) Linked(id FeatureID) bool {
	return c.linked.Contains(uint32(id))
}

// Len returns the number of hash codes with at least one feature.
func (c *Chained) Len() int {
	return len(c.buckets)
}

// Reset clears all buckets and recycles feature storage.
func (c *Chained) Reset() {
	clear(c.buckets)
	c.linked.Clear()
	c.features.Reset()
}
