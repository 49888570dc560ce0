// Package docdelta compares two versions of a structured document and
// produces a classified list of differences.
//
// Two modes share one engine contract:
//
//	// document mode: marker-identified section trees
//	res, err := docdelta.Diff(oldDoc, newDoc)
//
//	// generic mode: arbitrary mapping/sequence trees with identity rules
//	res, err := docdelta.DiffData(oldVal, newVal, rules)
//
// Matching runs in two passes: exact key matching per level first, then
// greedy similarity-based move pairing over the global unmatched
// remainder. One logical node may yield several change records of
// distinct kinds (a moved section whose body also changed yields both
// MOVED and CONTENT_CHANGED), never two records of the same kind for
// one pair.
//
// Input trees are never mutated; all diff state is allocated per
// invocation, so independent diffs may run in parallel.
//
// # Related Packages
//
//   - github.com/docdelta/docdelta/section - document-mode tree model
//   - github.com/docdelta/docdelta/ir - generic-mode value trees
//   - github.com/docdelta/docdelta/identity - collection identity rules
//   - github.com/docdelta/docdelta/similarity - move-detection scoring
package docdelta
