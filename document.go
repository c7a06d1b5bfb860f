package llah

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/hupe1980/llah/hashtable"
)

// Point is a 2D coordinate.
type Point = r2.Vec

// Feature is one hashed neighbor tuple of a document.
type Feature = hashtable.Feature

// Document is a registered point set, usually the dots of one printed marker.
// A Document is immutable after CreateDocument and stays valid until ClearDocuments.
type Document struct {
	// DocumentID is the index of the document in the engine, assigned in creation order.
	DocumentID int
	// Landmarks are the registered points; a landmark's ID is its index.
	Landmarks []Point
	// Features are all features of the document in generation order.
	Features []Feature

	hashToFeature map[int]int
}

func (d *Document) reset() {
	d.DocumentID = -1
	d.Landmarks = d.Landmarks[:0]
	d.Features = d.Features[:0]
	if d.hashToFeature == nil {
		d.hashToFeature = make(map[int]int)
	}
	clear(d.hashToFeature)
}

func (d *Document) addFeature(f Feature) {
	d.hashToFeature[f.HashCode] = len(d.Features)
	d.Features = append(d.Features, f)
}

// FeatureByHash returns the feature of this document with the given hash code.
// When several features share a hash code the most recently generated one wins.
func (d *Document) FeatureByHash(hash int) (Feature, bool) {
	idx, ok := d.hashToFeature[hash]
	if !ok {
		return Feature{}, false
	}
	return d.Features[idx], true
}

// NumLandmarks returns the number of landmarks.
func (d *Document) NumLandmarks() int {
	return len(d.Landmarks)
}
