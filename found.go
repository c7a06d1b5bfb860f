package llah

import "github.com/RoaringBitmap/roaring/v2"

// FoundDocument is a document matched by LookupDocuments together with the
// landmark each observed dot was assigned to.
//
// WARNING: FoundDocuments are owned by the Engine and recycled on the next call.
type FoundDocument struct {
	// Document is the matched document.
	Document *Document
	// LandmarkHits is, per landmark, the vote count of the dot assigned to it. Zero
	// means the landmark was not observed.
	LandmarkHits []int
	// LandmarkToDots is, per landmark, the index of the assigned dot or -1.
	LandmarkToDots []int

	seen *roaring.Bitmap
}

// LandmarkMatch pairs a document landmark with the dot observed for it.
type LandmarkMatch struct {
	LandmarkID int
	Landmark   Point
	DotIndex   int
}

func (f *FoundDocument) init(doc *Document) {
	f.Document = doc

	n := len(doc.Landmarks)
	f.LandmarkHits = resize(f.LandmarkHits, n, 0)
	f.LandmarkToDots = resize(f.LandmarkToDots, n, -1)

	if f.seen == nil {
		f.seen = roaring.New()
	}
	f.seen.Clear()
}

// assign records dot as the observation of landmark if votes beats the current holder.
func (f *FoundDocument) assign(landmark, dot, votes int) {
	if f.LandmarkHits[landmark] >= votes {
		return
	}
	f.LandmarkHits[landmark] = votes
	f.LandmarkToDots[landmark] = dot
	f.seen.Add(uint32(landmark)) //nolint:gosec // landmark IDs are small non-negative ints
}

// SeenLandmark reports whether any dot was assigned to the landmark.
func (f *FoundDocument) SeenLandmark(which int) bool {
	return which >= 0 && f.seen.Contains(uint32(which)) //nolint:gosec // checked non-negative
}

// CountSeenLandmarks returns the number of landmarks with at least one hit.
func (f *FoundDocument) CountSeenLandmarks() int {
	return int(f.seen.GetCardinality())
}

// CountHits returns the sum of all landmark hits.
func (f *FoundDocument) CountHits() int {
	total := 0
	for _, h := range f.LandmarkHits {
		total += h
	}
	return total
}

// LookupMatches returns the seen landmarks in ascending ID order.
func (f *FoundDocument) LookupMatches() []LandmarkMatch {
	matches := make([]LandmarkMatch, 0, f.seen.GetCardinality())

	it := f.seen.Iterator()
	for it.HasNext() {
		id := int(it.Next())
		matches = append(matches, LandmarkMatch{
			LandmarkID: id,
			Landmark:   f.Document.Landmarks[id],
			DotIndex:   f.LandmarkToDots[id],
		})
	}

	return matches
}

func resize(s []int, n, fill int) []int {
	if cap(s) < n {
		s = make([]int, n)
	}
	s = s[:n]
	for i := range s {
		s[i] = fill
	}
	return s
}
