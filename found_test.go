package llah

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoundDocument(t *testing.T) {
	doc := &Document{DocumentID: 3, Landmarks: []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}}

	var fd FoundDocument
	fd.init(doc)

	assert.Equal(t, []int{0, 0, 0, 0}, fd.LandmarkHits)
	assert.Equal(t, []int{-1, -1, -1, -1}, fd.LandmarkToDots)
	assert.Equal(t, 0, fd.CountSeenLandmarks())

	fd.assign(2, 7, 4)
	fd.assign(2, 8, 4) // tie keeps the first dot
	fd.assign(0, 1, 2)
	fd.assign(0, 5, 3) // stronger dot displaces

	assert.True(t, fd.SeenLandmark(0))
	assert.False(t, fd.SeenLandmark(1))
	assert.Equal(t, 2, fd.CountSeenLandmarks())
	assert.Equal(t, 7, fd.CountHits())
	assert.False(t, fd.SeenLandmark(-1))

	seen := map[int]bool{}
	for _, m := range fd.LookupMatches() {
		seen[m.LandmarkID] = true
	}
	for i := range doc.Landmarks {
		assert.Equal(t, seen[i], fd.SeenLandmark(i), "landmark %d", i)
	}

	matches := fd.LookupMatches()
	require.Len(t, matches, 2)
	assert.Equal(t, LandmarkMatch{LandmarkID: 0, Landmark: Point{X: 0, Y: 0}, DotIndex: 5}, matches[0])
	assert.Equal(t, LandmarkMatch{LandmarkID: 2, Landmark: Point{X: 0, Y: 1}, DotIndex: 7}, matches[1])

	t.Run("Reinit", func(t *testing.T) {
		fd.init(&Document{Landmarks: []Point{{X: 5, Y: 5}, {X: 6, Y: 6}}})
		assert.Equal(t, []int{0, 0}, fd.LandmarkHits)
		assert.Equal(t, []int{-1, -1}, fd.LandmarkToDots)
		assert.Equal(t, 0, fd.CountSeenLandmarks())
		assert.Empty(t, fd.LookupMatches())
	})
}

func TestDocument_FeatureByHash(t *testing.T) {
	var doc Document
	doc.reset()

	doc.addFeature(Feature{HashCode: 10, LandmarkID: 0})
	doc.addFeature(Feature{HashCode: 11, LandmarkID: 0})
	doc.addFeature(Feature{HashCode: 10, LandmarkID: 1})

	f, ok := doc.FeatureByHash(10)
	require.True(t, ok)
	assert.Equal(t, 1, f.LandmarkID, "latest feature wins on collision")

	_, ok = doc.FeatureByHash(12)
	assert.False(t, ok)
	assert.Len(t, doc.Features, 3)
}
