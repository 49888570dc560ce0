package docdelta

import (
	"fmt"
	"strings"
)

// Kind classifies one change record.
type Kind int

const (
	Unchanged Kind = iota
	Added
	Removed
	ContentChanged
	TitleChanged
	Moved

	// generic mode
	KeyAdded
	KeyRemoved
	KeyRenamed
	KeyMoved
	ItemAdded
	ItemRemoved
	ItemMoved
	TypeChanged
	ValueChanged
)

var kindNames = map[Kind]string{
	Unchanged:      "UNCHANGED",
	Added:          "ADDED",
	Removed:        "REMOVED",
	ContentChanged: "CONTENT_CHANGED",
	TitleChanged:   "TITLE_CHANGED",
	Moved:          "MOVED",
	KeyAdded:       "KEY_ADDED",
	KeyRemoved:     "KEY_REMOVED",
	KeyRenamed:     "KEY_RENAMED",
	KeyMoved:       "KEY_MOVED",
	ItemAdded:      "ITEM_ADDED",
	ItemRemoved:    "ITEM_REMOVED",
	ItemMoved:      "ITEM_MOVED",
	TypeChanged:    "TYPE_CHANGED",
	ValueChanged:   "VALUE_CHANGED",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for kk, name := range kindNames {
		if name == string(d) {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("unrecognized change kind %q", d)
}

// Path locates a node as the sequence of keys from the root. In generic
// mode, array segments are bracketed ("[id=1]", "[0]") and attach to
// the preceding segment when rendered.
type Path []string

func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		if i > 0 && !strings.HasPrefix(seg, "[") {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

// With returns a copy of p extended by one segment.
func (p Path) With(seg string) Path {
	res := make(Path, len(p)+1)
	copy(res, p)
	res[len(p)] = seg
	return res
}

// Change is one detected difference. Paths absent on one side mean the
// node exists only on the other (additions and removals). The ID paths
// track sections by stable ID independently of key changes; they are
// empty in generic mode.
type Change struct {
	Kind Kind

	OldPath Path
	NewPath Path

	OldIDPath Path
	NewIDPath Path

	OldTitle string
	NewTitle string

	OldBody string
	NewBody string
}

// Diagnostic is a non-fatal problem absorbed during a diff, attached to
// the result rather than failing it.
type Diagnostic struct {
	Path    string
	Message string
}

// Counts aggregates a change list. One record counts toward exactly one
// bucket; UNCHANGED records count toward none.
type Counts struct {
	Added    int
	Removed  int
	Modified int
	Moved    int
}

// Tally reduces a change list to its aggregate counts.
func Tally(changes []Change) Counts {
	var c Counts
	for i := range changes {
		switch changes[i].Kind {
		case Added, KeyAdded, ItemAdded:
			c.Added++
		case Removed, KeyRemoved, ItemRemoved:
			c.Removed++
		case Moved, ItemMoved, KeyMoved:
			c.Moved++
		case ContentChanged, TitleChanged, ValueChanged, TypeChanged, KeyRenamed:
			c.Modified++
		}
	}
	return c
}

// Result is the ordered output of one diff invocation.
type Result struct {
	Changes     []Change
	Diagnostics []Diagnostic
	Counts      Counts
}

// Differs reports whether the result contains any non-UNCHANGED record.
func (r *Result) Differs() bool {
	for i := range r.Changes {
		if r.Changes[i].Kind != Unchanged {
			return true
		}
	}
	return false
}
