// Package llah matches observed 2D dot patterns against registered point sets
// using Locally Likely Arrangement Hashing.
//
// Every point is described by the N nearest neighbors around it. All M-point
// combinations of those neighbors, taken in angular order and in each of their M
// cyclic rotations, are turned into geometric invariants and hashed. Registration
// indexes these hash codes per document; lookup lets every observed dot vote for
// the documents sharing its hash codes and then recovers which landmark the dot is.
//
// # Quick Start
//
//	h := hasher.New(hasher.Affine)
//	eng, _ := llah.New(7, 5, h)
//
//	// Fit the discretization to the point sets about to be registered.
//	_ = eng.LearnHashing(markers, 8, 100_000, 25)
//
//	for _, pts := range markers {
//	    doc, _ := eng.CreateDocument(pts)
//	    fmt.Println("registered", doc.DocumentID)
//	}
//
//	for _, found := range eng.LookupDocuments(dots, 5) {
//	    for _, m := range found.LookupMatches() {
//	        fmt.Println(found.Document.DocumentID, m.LandmarkID, dots[m.DotIndex])
//	    }
//	}
//
// # Ownership
//
// Documents stay valid until ClearDocuments. The slice and FoundDocuments returned
// by LookupDocuments are overwritten by the next call to any mutating method of the
// same Engine.
//
// # Concurrency
//
// An Engine is not safe for concurrent use. Hashers are: one learned hasher can be
// shared by several engines.
//
// # Observability
//
// Engines log through a slog-based Logger and report to a MetricsCollector:
//
//	mc := &llah.BasicMetricsCollector{}
//	eng, _ := llah.New(7, 5, h,
//	    llah.WithLogger(llah.NewTextLogger(slog.LevelDebug)),
//	    llah.WithMetricsCollector(mc),
//	)
package llah
