package docdelta

import (
	"github.com/docdelta/docdelta/debug"
	"github.com/docdelta/docdelta/section"
)

// secEntry is one section together with its location in its tree.
type secEntry struct {
	sec    *section.Section
	path   Path
	idPath Path
}

type secMatch struct {
	old, new *secEntry
}

// docDiffer holds the per-invocation state of a document-mode diff:
// per-level matches, the global unmatched pools, and accepted moves.
type docDiffer struct {
	cfg *diffConfig

	oldInfo map[*section.Section]*secEntry
	newInfo map[*section.Section]*secEntry

	matches    map[*section.Section]*secMatch // by new section
	moved      map[*section.Section]*secMatch // by new section
	matchedOld map[*section.Section]bool
	movedOld   map[*section.Section]bool

	unmatchedOld []*secEntry
	unmatchedNew []*secEntry
}

func newDocDiffer(cfg *diffConfig) *docDiffer {
	return &docDiffer{
		cfg:        cfg,
		oldInfo:    map[*section.Section]*secEntry{},
		newInfo:    map[*section.Section]*secEntry{},
		matches:    map[*section.Section]*secMatch{},
		moved:      map[*section.Section]*secMatch{},
		matchedOld: map[*section.Section]bool{},
		movedOld:   map[*section.Section]bool{},
	}
}

// matchPair recurses into a matched pair's children, pairing them by
// exact marker equality. A match at one level says nothing about
// descendant matches. Unmatched remainders land in the global pools.
func (d *docDiffer) matchPair(o, n *secEntry) {
	if debug.Match() {
		debug.Logf("match %q <-> %q at %s\n",
			o.sec.Marker, n.sec.Marker, n.path)
	}
	for _, nc := range n.sec.Children {
		oc := o.sec.Child(nc.Marker)
		if oc == nil {
			d.collectNew(nc, n.path, n.idPath)
			continue
		}
		oe := d.entry(d.oldInfo, oc, o.path, o.idPath)
		ne := d.entry(d.newInfo, nc, n.path, n.idPath)
		d.matches[nc] = &secMatch{old: oe, new: ne}
		d.matchedOld[oc] = true
		d.matchPair(oe, ne)
	}
	for _, oc := range o.sec.Children {
		if !d.matchedOld[oc] {
			d.collectOld(oc, o.path, o.idPath)
		}
	}
}

func (d *docDiffer) entry(info map[*section.Section]*secEntry, s *section.Section, parentPath, parentIDPath Path) *secEntry {
	e := &secEntry{
		sec:    s,
		path:   parentPath.With(s.Marker),
		idPath: parentIDPath.With(s.StableID),
	}
	info[s] = e
	return e
}

// collectOld adds an unmatched old subtree to the pool, node by node,
// so a child of a removed parent can still be found as moved.
func (d *docDiffer) collectOld(s *section.Section, parentPath, parentIDPath Path) {
	e := d.entry(d.oldInfo, s, parentPath, parentIDPath)
	d.unmatchedOld = append(d.unmatchedOld, e)
	for _, c := range s.Children {
		d.collectOld(c, e.path, e.idPath)
	}
}

func (d *docDiffer) collectNew(s *section.Section, parentPath, parentIDPath Path) {
	e := d.entry(d.newInfo, s, parentPath, parentIDPath)
	d.unmatchedNew = append(d.unmatchedNew, e)
	for _, c := range s.Children {
		d.collectNew(c, e.path, e.idPath)
	}
}

// detectMoves runs after all per-level matching completes: a node's
// match status is not known until its whole level has been processed.
func (d *docDiffer) detectMoves() {
	olds := make([]*poolItem, len(d.unmatchedOld))
	for i, e := range d.unmatchedOld {
		olds[i] = &poolItem{
			key:     e.sec.Marker,
			label:   e.sec.Title,
			payload: e.sec.Body,
			order:   i,
			ref:     e,
		}
	}
	news := make([]*poolItem, len(d.unmatchedNew))
	for i, e := range d.unmatchedNew {
		news[i] = &poolItem{
			key:     e.sec.Marker,
			label:   e.sec.Title,
			payload: e.sec.Body,
			order:   i,
			ref:     e,
		}
	}
	for _, p := range pairMoves(d.cfg, olds, news) {
		oe := p.old.ref.(*secEntry)
		ne := p.new.ref.(*secEntry)
		d.moved[ne.sec] = &secMatch{old: oe, new: ne}
		d.movedOld[oe.sec] = true
	}
}

// emit produces the ordered change list: pre-order over the new tree
// for matched, added and moved nodes, then pre-order over the old tree
// for the remaining pure removals.
func (d *docDiffer) emit(oldRoot, newRoot *section.Section) []Change {
	var changes []Change
	newRoot.Walk(func(s *section.Section, _ int) bool {
		if s == newRoot {
			return true
		}
		switch {
		case d.matches[s] != nil:
			changes = append(changes, classifyPair(d.matches[s], false)...)
		case d.moved[s] != nil:
			changes = append(changes, classifyPair(d.moved[s], true)...)
		default:
			e := d.newInfo[s]
			changes = append(changes, Change{
				Kind:      Added,
				NewPath:   e.path,
				NewIDPath: e.idPath,
				NewTitle:  s.Title,
				NewBody:   s.Body,
			})
		}
		return true
	})
	oldRoot.Walk(func(s *section.Section, _ int) bool {
		if s == oldRoot {
			return true
		}
		if d.matchedOld[s] || d.movedOld[s] {
			return true
		}
		e := d.oldInfo[s]
		changes = append(changes, Change{
			Kind:      Removed,
			OldPath:   e.path,
			OldIDPath: e.idPath,
			OldTitle:  s.Title,
			OldBody:   s.Body,
		})
		return true
	})
	return changes
}

// classifyPair converts one matched or moved pair into its records.
// Move detection and content/title change detection are orthogonal:
// each fires independently, at most once per pair.
func classifyPair(m *secMatch, isMove bool) []Change {
	o, n := m.old, m.new
	base := Change{
		OldPath:   o.path,
		NewPath:   n.path,
		OldIDPath: o.idPath,
		NewIDPath: n.idPath,
		OldTitle:  o.sec.Title,
		NewTitle:  n.sec.Title,
		OldBody:   o.sec.Body,
		NewBody:   n.sec.Body,
	}
	var res []Change
	if isMove {
		mv := base
		mv.Kind = Moved
		res = append(res, mv)
	}
	if o.sec.Body != n.sec.Body {
		c := base
		c.Kind = ContentChanged
		res = append(res, c)
	}
	if o.sec.Title != n.sec.Title {
		c := base
		c.Kind = TitleChanged
		res = append(res, c)
	}
	if len(res) == 0 {
		c := base
		c.Kind = Unchanged
		res = append(res, c)
	}
	return res
}
