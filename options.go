package docdelta

import "github.com/docdelta/docdelta/similarity"

// DefaultMoveThreshold is the minimum similarity score at which an
// unmatched old/new pair is accepted as a move. The comparison is
// inclusive: a score of exactly the threshold is a move.
const DefaultMoveThreshold = 0.95

type diffConfig struct {
	threshold   float64
	preferLabel bool
	orderedKeys bool
	scorer      func(a, b string) float64
}

type DiffOpt func(*diffConfig)

// DiffThreshold overrides the move acceptance threshold.
func DiffThreshold(v float64) DiffOpt {
	return func(c *diffConfig) { c.threshold = v }
}

// DiffLabelTieBreak controls whether label equality is preferred when
// several candidate pairs exceed the threshold at the same score.
func DiffLabelTieBreak(v bool) DiffOpt {
	return func(c *diffConfig) { c.preferLabel = v }
}

// DiffOrderedKeys makes object key order significant in generic mode:
// a key found at a different position emits KEY_MOVED.
func DiffOrderedKeys(v bool) DiffOpt {
	return func(c *diffConfig) { c.orderedKeys = v }
}

// DiffScorer replaces the similarity scorer used for move detection.
// The scorer must be symmetric and normalized to [0,1].
func DiffScorer(f func(a, b string) float64) DiffOpt {
	return func(c *diffConfig) { c.scorer = f }
}

func newDiffConfig(opts []DiffOpt) *diffConfig {
	cfg := &diffConfig{
		threshold:   DefaultMoveThreshold,
		preferLabel: true,
		scorer:      similarity.Score,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
