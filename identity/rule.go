// Package identity decides which matching key applies to the elements
// of a generic-mode collection: an explicit rule, an auto-detected
// common field, or position as a last resort.
package identity

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/docdelta/docdelta/ir"
)

// Rule declares which field distinguishes elements of a collection.
// Collection is a dot-separated field path; "*" matches any single
// segment ("spec.*.env" matches env under any field of spec). Array
// positions are not part of the selector: a rule for "items.ports"
// applies to the ports collection of every item.
//
// When is an optional expression evaluated against each element; the
// rule only applies to elements for which it is true.
type Rule struct {
	Collection string `json:"collection" yaml:"collection"`
	Field      string `json:"field" yaml:"field"`
	When       string `json:"when,omitempty" yaml:"when,omitempty"`
}

type compiledRule struct {
	Rule
	selector []string
	when     *vm.Program
}

func compile(r Rule) (*compiledRule, error) {
	if r.Collection == "" {
		return nil, fmt.Errorf("identity rule has no collection selector")
	}
	if r.Field == "" {
		return nil, fmt.Errorf("identity rule for %q has no field", r.Collection)
	}
	c := &compiledRule{
		Rule:     r,
		selector: strings.Split(r.Collection, "."),
	}
	if r.When != "" {
		prog, err := expr.Compile(r.When)
		if err != nil {
			return nil, fmt.Errorf("identity rule for %q: bad condition: %w",
				r.Collection, err)
		}
		c.when = prog
	}
	return c, nil
}

func (c *compiledRule) matches(fieldPath []string) bool {
	if len(c.selector) != len(fieldPath) {
		return false
	}
	for i, seg := range c.selector {
		if seg != "*" && seg != fieldPath[i] {
			return false
		}
	}
	return true
}

// applies evaluates the rule's condition against an element. A failing
// or erroring condition means the rule does not apply to this element.
func (c *compiledRule) applies(elem *ir.Node) (bool, error) {
	if c.when == nil {
		return true, nil
	}
	env, ok := elem.ToAny().(map[string]any)
	if !ok {
		return false, nil
	}
	res, err := expr.Run(c.when, env)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	return ok && b, nil
}
