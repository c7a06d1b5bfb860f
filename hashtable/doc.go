// Package hashtable provides the two hash tables used for LLAH lookups.
//
// Chained maps a hash code to the exact features that produced it, in insertion
// order. Features live in an arena with stable FeatureIDs and each hash code owns an
// explicit bucket of IDs, so removing a feature is a splice on that bucket.
//
// Votes is the specialized table for marker recognition. It does not keep feature
// identity; a bucket only records how many times a hash code occurs in each
// document, which is all the document vote needs.
package hashtable
