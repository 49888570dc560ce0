// Package similarity provides the normalized content-similarity score
// used for move detection.
package similarity

import (
	"math"
	"unicode/utf8"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Score returns a normalized similarity in [0,1] between two payloads:
// 1 - editDistance/maxLen over runes. It is symmetric, Score(x,x) == 1,
// and any internal failure yields 0 (no match) rather than an error.
//
// The division is performed once, so a distance of 1 over 20 runes
// compares equal to a 0.95 threshold constant.
func Score(a, b string) (score float64) {
	defer func() {
		if recover() != nil {
			score = 0
		}
	}()
	if a == b {
		return 1
	}
	lenA := utf8.RuneCountInString(a)
	lenB := utf8.RuneCountInString(b)
	maxLen := max(lenA, lenB)
	if maxLen == 0 {
		return 1
	}
	if lenA == 0 || lenB == 0 {
		return 0
	}
	cfg := diffpatch.New()
	// no wall-clock cutoff: the same inputs must always score the same
	cfg.DiffTimeout = 0
	diffs := cfg.DiffMain(a, b, false)
	dist := cfg.DiffLevenshtein(diffs)
	if dist >= maxLen {
		return 0
	}
	score = float64(maxLen-dist) / float64(maxLen)
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0
	}
	return score
}
