package docdelta

import (
	"math"
	"sort"

	"github.com/docdelta/docdelta/debug"
)

// poolItem is one unmatched node in the global move-detection pool,
// collected across all levels of both trees.
type poolItem struct {
	key     string
	label   string
	payload string
	order   int
	ref     any
}

type movePair struct {
	old, new *poolItem
	score    float64
}

type moveCand struct {
	oldIdx, newIdx int
	score          float64
	labelEq        bool
}

// pairMoves greedily pairs unmatched old and new entries by payload
// similarity. Candidates are processed in descending score order, label
// equality breaking ties, then pool order for determinism; each
// commitment removes both sides from further consideration. This is
// plain greedy bipartite matching, not max-weight assignment.
func pairMoves(cfg *diffConfig, olds, news []*poolItem) []movePair {
	var cands []moveCand
	for i, o := range olds {
		for j, n := range news {
			score, ok := moveScore(cfg, o, n)
			if !ok {
				continue
			}
			cands = append(cands, moveCand{
				oldIdx:  i,
				newIdx:  j,
				score:   score,
				labelEq: o.label == n.label,
			})
		}
	}
	sort.SliceStable(cands, func(a, b int) bool {
		ca, cb := &cands[a], &cands[b]
		if ca.score != cb.score {
			return ca.score > cb.score
		}
		if cfg.preferLabel && ca.labelEq != cb.labelEq {
			return ca.labelEq
		}
		if olds[ca.oldIdx].order != olds[cb.oldIdx].order {
			return olds[ca.oldIdx].order < olds[cb.oldIdx].order
		}
		return news[ca.newIdx].order < news[cb.newIdx].order
	})

	usedOld := make([]bool, len(olds))
	usedNew := make([]bool, len(news))
	var pairs []movePair
	for i := range cands {
		c := &cands[i]
		if usedOld[c.oldIdx] || usedNew[c.newIdx] {
			continue
		}
		usedOld[c.oldIdx] = true
		usedNew[c.newIdx] = true
		pairs = append(pairs, movePair{
			old:   olds[c.oldIdx],
			new:   news[c.newIdx],
			score: c.score,
		})
		if debug.Moves() {
			debug.Logf("move %q -> %q score %v\n",
				olds[c.oldIdx].key, news[c.newIdx].key, c.score)
		}
	}
	return pairs
}

// moveScore returns the similarity of a candidate pair and whether it
// qualifies as a move. Pure-container pairs (both payloads empty) never
// match by similarity; they relocate only under their exact key.
func moveScore(cfg *diffConfig, o, n *poolItem) (float64, bool) {
	if o.payload == "" && n.payload == "" {
		if o.key != "" && o.key == n.key {
			return 1, true
		}
		return 0, false
	}
	if o.payload == "" || n.payload == "" {
		return 0, false
	}
	score := cfg.scorer(o.payload, n.payload)
	if math.IsNaN(score) || math.IsInf(score, 0) {
		score = 0
	}
	if score >= cfg.threshold {
		return score, true
	}
	return 0, false
}
