package docdelta

import (
	"fmt"

	"github.com/docdelta/docdelta/identity"
	"github.com/docdelta/docdelta/ir"
	"github.com/docdelta/docdelta/section"
)

// Diff compares two document trees in marker mode. Both trees must be
// structurally valid; a validation failure aborts the diff before any
// matching, since no partial result is correct for a malformed tree.
// The given roots form an implicit matched pair and produce no record
// of their own.
func Diff(old, new *section.Section, opts ...DiffOpt) (*Result, error) {
	if err := section.Validate(old); err != nil {
		return nil, fmt.Errorf("old document: %w", err)
	}
	if err := section.Validate(new); err != nil {
		return nil, fmt.Errorf("new document: %w", err)
	}
	cfg := newDiffConfig(opts)
	d := newDocDiffer(cfg)
	d.matchPair(
		&secEntry{sec: old},
		&secEntry{sec: new},
	)
	d.detectMoves()
	changes := d.emit(old, new)
	return &Result{
		Changes: changes,
		Counts:  Tally(changes),
	}, nil
}

// DiffData compares two generic mapping/sequence trees. Collections
// without inherent identity are keyed by the given rules, auto-detected
// common fields, or position, in that order. A malformed rule aborts
// the diff; ambiguous identities degrade to positional pairing and are
// reported as diagnostics on the result.
func DiffData(old, new *ir.Node, rules []identity.Rule, opts ...DiffOpt) (*Result, error) {
	resolver, err := identity.NewResolver(rules)
	if err != nil {
		return nil, err
	}
	cfg := newDiffConfig(opts)
	d := &genDiffer{cfg: cfg, resolver: resolver}
	d.walk(old, new, nil, nil, nil)
	d.detectMoves()
	changes := d.assemble()
	return &Result{
		Changes:     changes,
		Diagnostics: d.diags,
		Counts:      Tally(changes),
	}, nil
}
