package identity

import (
	"fmt"

	"github.com/docdelta/docdelta/debug"
	"github.com/docdelta/docdelta/ir"
)

// Strategy names how a collection's elements were keyed.
type Strategy int

const (
	// ByPosition pairs elements by index.
	ByPosition Strategy = iota
	// ByAutoField pairs elements by an auto-detected common field.
	ByAutoField
	// ByRule pairs elements by an explicit identity rule.
	ByRule
)

func (s Strategy) String() string {
	switch s {
	case ByRule:
		return "rule"
	case ByAutoField:
		return "auto"
	default:
		return "position"
	}
}

// autoFields are tried in priority order when no rule applies.
var autoFields = []string{"id", "name", "key"}

// Diagnostic is a non-fatal identity-resolution problem. The diff
// proceeds with a positional fallback for the affected elements.
type Diagnostic struct {
	Path    string
	Message string
}

// Resolution carries the chosen keys for one collection. A key of ""
// means the element is paired positionally. The Fields slices name the
// identity field that produced each key: conditioned rules may key
// different elements of one collection by different fields, and an
// element whose conditions all fail may still be keyed by the auto
// field. Field holds the strongest field in use, for diagnostics.
type Resolution struct {
	Strategy    Strategy
	Field       string
	OldKeys     []string
	NewKeys     []string
	OldFields   []string
	NewFields   []string
	Diagnostics []Diagnostic
}

// Resolver selects identity strategies for collections. Rules are
// compiled once up front; a malformed rule is an error since diffing
// with a partially-applied rule set would be silently wrong.
type Resolver struct {
	rules []*compiledRule
}

func NewResolver(rules []Rule) (*Resolver, error) {
	r := &Resolver{rules: make([]*compiledRule, 0, len(rules))}
	for _, rule := range rules {
		c, err := compile(rule)
		if err != nil {
			return nil, err
		}
		r.rules = append(r.rules, c)
	}
	return r, nil
}

// Collection resolves keys for the collection at the given field path.
// path is the display path used in diagnostics; fieldPath is the
// selector path (field segments only, no array positions).
func (r *Resolver) Collection(path string, fieldPath []string, oldElems, newElems []*ir.Node) *Resolution {
	res := &Resolution{}

	var rules []*compiledRule
	for _, c := range r.rules {
		if c.matches(fieldPath) {
			rules = append(rules, c)
		}
	}
	auto := autoField(oldElems, newElems)

	res.OldKeys, res.OldFields = r.keyElems(res, path, rules, auto, oldElems)
	res.NewKeys, res.NewFields = r.keyElems(res, path, rules, auto, newElems)

	dedupe(res, path, res.OldKeys, res.OldFields)
	dedupe(res, path, res.NewKeys, res.NewFields)

	if debug.Identity() {
		debug.Logf("identity %s: strategy=%s field=%q old=%v new=%v\n",
			path, res.Strategy, res.Field, res.OldKeys, res.NewKeys)
	}
	return res
}

func (r *Resolver) keyElems(res *Resolution, path string, rules []*compiledRule, auto string, elems []*ir.Node) (keys, fields []string) {
	keys = make([]string, len(elems))
	fields = make([]string, len(elems))
	for i, elem := range elems {
		keys[i], fields[i] = r.keyElem(res, path, rules, auto, elem, i)
	}
	return keys, fields
}

// keyElem selects the identity for one element: the first
// selector-matching rule whose condition holds for this element, the
// auto field next, position last. Rule selection is per element, so
// several conditioned rules can key one collection by different fields.
func (r *Resolver) keyElem(res *Resolution, path string, rules []*compiledRule, auto string, elem *ir.Node, i int) (key, field string) {
	for _, rule := range rules {
		ok, err := rule.applies(elem)
		if err != nil {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Path: path,
				Message: fmt.Sprintf("element %d: condition %q failed: %v",
					i, rule.When, err),
			})
		}
		if !ok {
			continue
		}
		if v := elem.Get(rule.Field); v != nil && v.Type.IsLeaf() {
			if res.Strategy < ByRule {
				res.Strategy = ByRule
				res.Field = rule.Field
			}
			return v.Literal(), rule.Field
		}
		res.Diagnostics = append(res.Diagnostics, Diagnostic{
			Path: path,
			Message: fmt.Sprintf("element %d has no usable identity field %q",
				i, rule.Field),
		})
	}
	if auto != "" {
		if v := elem.Get(auto); v != nil && v.Type.IsLeaf() {
			if res.Strategy < ByAutoField {
				res.Strategy = ByAutoField
				res.Field = auto
			}
			return v.Literal(), auto
		}
	}
	return "", ""
}

// autoField returns the first of id, name, key present as a leaf field
// in every element on both sides, "" if none qualifies.
func autoField(oldElems, newElems []*ir.Node) string {
	if len(oldElems)+len(newElems) == 0 {
		return ""
	}
next:
	for _, f := range autoFields {
		for _, elems := range [][]*ir.Node{oldElems, newElems} {
			for _, elem := range elems {
				v := elem.Get(f)
				if v == nil || !v.Type.IsLeaf() {
					continue next
				}
			}
		}
		return f
	}
	return ""
}

// dedupe clears keys that tie within one side, degrading the tied
// subset to positional pairing. A tie is per field: equal keys from
// different identity fields do not collide.
func dedupe(res *Resolution, path string, keys, fields []string) {
	count := make(map[string]int, len(keys))
	for i, k := range keys {
		if k != "" {
			count[fields[i]+"="+k]++
		}
	}
	for i, k := range keys {
		if k != "" && count[fields[i]+"="+k] > 1 {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Path:    path,
				Message: fmt.Sprintf("ambiguous identity %q, falling back to position", k),
			})
			keys[i] = ""
			fields[i] = ""
		}
	}
}
