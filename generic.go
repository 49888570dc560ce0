package docdelta

import (
	"strconv"
	"strings"

	"github.com/docdelta/docdelta/identity"
	"github.com/docdelta/docdelta/ir"
)

// genItem is one slot in the generic-mode emission buffer. Additions
// and removals stay pending until the move pass has run; a pending add
// paired with a pending removal becomes a single MOVED record in the
// add's position.
type genItem struct {
	change Change
	node   *ir.Node // pending entries only
	moved  *Change  // replaces change when the entry was move-paired
	extra  []Change // companion records for a move (value change)
	taken  bool     // removal consumed by a move
}

type genDiffer struct {
	cfg      *diffConfig
	resolver *identity.Resolver

	items    []*genItem // new-side order: matched, added, moved
	removals []*genItem // appended after, old-side order
	diags    []Diagnostic
}

func (d *genDiffer) emit(c Change) {
	d.items = append(d.items, &genItem{change: c})
}

func (d *genDiffer) pendingAdd(c Change, node *ir.Node) {
	d.items = append(d.items, &genItem{change: c, node: node})
}

func (d *genDiffer) pendingRemove(c Change, node *ir.Node) {
	d.removals = append(d.removals, &genItem{change: c, node: node})
}

// walk matches one old/new value pair path-by-path.
func (d *genDiffer) walk(o, n *ir.Node, oldPath, newPath Path, fieldPath []string) {
	if o.Type.Kind() != n.Type.Kind() {
		d.emit(Change{
			Kind:    TypeChanged,
			OldPath: oldPath,
			NewPath: newPath,
			OldBody: o.Literal(),
			NewBody: n.Literal(),
		})
		return
	}
	switch o.Type.Kind() {
	case ir.MappingKind:
		d.walkObject(o, n, oldPath, newPath, fieldPath)
	case ir.SequenceKind:
		d.walkArray(o, n, oldPath, newPath, fieldPath)
	default:
		if !ir.Equal(o, n) {
			d.emit(Change{
				Kind:    ValueChanged,
				OldPath: oldPath,
				NewPath: newPath,
				OldBody: o.Literal(),
				NewBody: n.Literal(),
			})
		}
	}
}

// walkObject matches mapping fields by exact key. Keys present on only
// one side become pending adds/removals, except where a removed and an
// added key carry deep-equal values: that pair is a rename.
func (d *genDiffer) walkObject(o, n *ir.Node, oldPath, newPath Path, fieldPath []string) {
	var addedIdx []int
	for j, k := range n.Keys {
		i := o.IndexOf(k)
		if i < 0 {
			addedIdx = append(addedIdx, j)
			continue
		}
		if d.cfg.orderedKeys && i != j {
			d.emit(Change{
				Kind:    KeyMoved,
				OldPath: oldPath.With(k),
				NewPath: newPath.With(k),
			})
		}
		d.walk(o.Values[i], n.Values[j],
			oldPath.With(k), newPath.With(k), append(fieldPath, k))
	}
	var removedIdx []int
	for i, k := range o.Keys {
		if n.IndexOf(k) < 0 {
			removedIdx = append(removedIdx, i)
		}
	}

	// rename: same value under a different key
	usedRemoved := make(map[int]bool, len(removedIdx))
	for _, j := range addedIdx {
		renamed := false
		for _, i := range removedIdx {
			if usedRemoved[i] || !ir.Equal(o.Values[i], n.Values[j]) {
				continue
			}
			usedRemoved[i] = true
			renamed = true
			d.emit(Change{
				Kind:    KeyRenamed,
				OldPath: oldPath.With(o.Keys[i]),
				NewPath: newPath.With(n.Keys[j]),
				OldBody: o.Values[i].Literal(),
				NewBody: n.Values[j].Literal(),
			})
			break
		}
		if !renamed {
			d.pendingAdd(Change{
				Kind:    KeyAdded,
				NewPath: newPath.With(n.Keys[j]),
				NewBody: n.Values[j].Literal(),
			}, n.Values[j])
		}
	}
	for _, i := range removedIdx {
		if usedRemoved[i] {
			continue
		}
		d.pendingRemove(Change{
			Kind:    KeyRemoved,
			OldPath: oldPath.With(o.Keys[i]),
			OldBody: o.Values[i].Literal(),
		}, o.Values[i])
	}
}

// walkArray matches sequence elements under the identity strategy the
// resolver picks for this collection. Keyed elements pair by identity,
// the positional remainder pairs by order of appearance.
func (d *genDiffer) walkArray(o, n *ir.Node, oldPath, newPath Path, fieldPath []string) {
	res := d.resolver.Collection(newPath.String(), fieldPath, o.Values, n.Values)
	for _, diag := range res.Diagnostics {
		d.diags = append(d.diags, Diagnostic{
			Path:    diag.Path,
			Message: diag.Message,
		})
	}

	oldBySeg := make(map[string]int, len(o.Values))
	for i, k := range res.OldKeys {
		if k != "" {
			oldBySeg[keySeg(res.OldFields[i], k)] = i
		}
	}
	usedOld := make([]bool, len(o.Values))
	var unkeyedNew []int
	for j, k := range res.NewKeys {
		if k == "" {
			unkeyedNew = append(unkeyedNew, j)
			continue
		}
		seg := keySeg(res.NewFields[j], k)
		i, ok := oldBySeg[seg]
		if !ok {
			d.pendingAdd(Change{
				Kind:    ItemAdded,
				NewPath: newPath.With(seg),
				NewBody: n.Values[j].Literal(),
			}, n.Values[j])
			continue
		}
		usedOld[i] = true
		if i != j {
			d.emit(Change{
				Kind:    ItemMoved,
				OldPath: oldPath.With(seg),
				NewPath: newPath.With(seg),
			})
		}
		d.walk(o.Values[i], n.Values[j],
			oldPath.With(seg), newPath.With(seg), fieldPath)
	}

	var unkeyedOld []int
	for i := range o.Values {
		if res.OldKeys[i] == "" && !usedOld[i] {
			unkeyedOld = append(unkeyedOld, i)
		}
	}
	pairs := min(len(unkeyedOld), len(unkeyedNew))
	for t := 0; t < pairs; t++ {
		i, j := unkeyedOld[t], unkeyedNew[t]
		usedOld[i] = true
		d.walk(o.Values[i], n.Values[j],
			oldPath.With(indexSeg(i)), newPath.With(indexSeg(j)), fieldPath)
	}
	for _, j := range unkeyedNew[pairs:] {
		d.pendingAdd(Change{
			Kind:    ItemAdded,
			NewPath: newPath.With(indexSeg(j)),
			NewBody: n.Values[j].Literal(),
		}, n.Values[j])
	}
	for i := range o.Values {
		if usedOld[i] {
			continue
		}
		seg := indexSeg(i)
		if k := res.OldKeys[i]; k != "" {
			seg = keySeg(res.OldFields[i], k)
		}
		d.pendingRemove(Change{
			Kind:    ItemRemoved,
			OldPath: oldPath.With(seg),
			OldBody: o.Values[i].Literal(),
		}, o.Values[i])
	}
}

func indexSeg(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

func keySeg(field, key string) string {
	return "[" + field + "=" + key + "]"
}

// detectMoves pairs pending removals against pending adds across all
// levels. Scalar entries pair by payload similarity; container entries
// only relocate under their exact key.
func (d *genDiffer) detectMoves() {
	var olds, news []*poolItem
	for _, item := range d.removals {
		olds = append(olds, genPoolItem(item, item.change.OldPath, len(olds)))
	}
	for _, item := range d.items {
		if item.node == nil {
			continue
		}
		news = append(news, genPoolItem(item, item.change.NewPath, len(news)))
	}
	for _, p := range pairMoves(d.cfg, olds, news) {
		oldItem := p.old.ref.(*genItem)
		newItem := p.new.ref.(*genItem)
		oldItem.taken = true
		mv := Change{
			Kind:    Moved,
			OldPath: oldItem.change.OldPath,
			NewPath: newItem.change.NewPath,
			OldBody: oldItem.change.OldBody,
			NewBody: newItem.change.NewBody,
		}
		newItem.moved = &mv
		if !ir.Equal(oldItem.node, newItem.node) {
			newItem.extra = append(newItem.extra, Change{
				Kind:    ValueChanged,
				OldPath: oldItem.change.OldPath,
				NewPath: newItem.change.NewPath,
				OldBody: oldItem.change.OldBody,
				NewBody: newItem.change.NewBody,
			})
		}
	}
}

func genPoolItem(item *genItem, path Path, order int) *poolItem {
	payload := ""
	if item.node.Type.IsLeaf() {
		payload = item.node.Literal()
	}
	key := ""
	if len(path) > 0 {
		key = moveKey(path[len(path)-1])
	}
	return &poolItem{
		key:     key,
		payload: payload,
		order:   order,
		ref:     item,
	}
}

// moveKey returns the key a container entry can relocate under. Pure
// positional segments carry no identity and yield none.
func moveKey(seg string) string {
	if strings.HasPrefix(seg, "[") && !strings.Contains(seg, "=") {
		return ""
	}
	return seg
}

func (d *genDiffer) assemble() []Change {
	var changes []Change
	for _, item := range d.items {
		if item.moved != nil {
			changes = append(changes, *item.moved)
			changes = append(changes, item.extra...)
			continue
		}
		changes = append(changes, item.change)
	}
	for _, item := range d.removals {
		if item.taken {
			continue
		}
		changes = append(changes, item.change)
	}
	return changes
}
