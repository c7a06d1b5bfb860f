package hashtable

// Feature is one hashed neighbor tuple of a document.
type Feature struct {
	HashCode   int // Discretized invariant hash.
	DocumentID int // Document the feature belongs to.
	LandmarkID int // Anchor landmark that generated the feature.
}

// FeatureID is the stable arena index of a feature in a Chained table.
type FeatureID uint32
