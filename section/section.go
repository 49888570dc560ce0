// Package section holds the document-mode tree model: a recursive tree
// of marker-identified sections. Trees are built once per document load
// and never mutated by a diff.
package section

import (
	"fmt"
	"strconv"
)

// Section is one structural unit of a document.
//
// Marker identifies the section among its siblings and is the matching
// key; it must be unique per level. StableID is an opaque tracking
// identifier assigned at load time and never used for matching. Body is
// this section's own content only, never an aggregation of descendants'.
type Section struct {
	StableID string
	Marker   string
	Title    string
	Body     string
	Children []*Section
}

// New returns a section with the given marker, title and body.
func New(marker, title, body string, children ...*Section) *Section {
	return &Section{
		Marker:   marker,
		Title:    title,
		Body:     body,
		Children: children,
	}
}

// Child returns the child with the given marker, nil if absent.
func (s *Section) Child(marker string) *Section {
	for _, c := range s.Children {
		if c.Marker == marker {
			return c
		}
	}
	return nil
}

// Walk visits s and its descendants depth-first, children in
// declaration order. Returning false from f prunes descent.
func (s *Section) Walk(f func(s *Section, depth int) bool) {
	s.walk(f, 0)
}

func (s *Section) walk(f func(s *Section, depth int) bool, depth int) {
	if !f(s, depth) {
		return
	}
	for _, c := range s.Children {
		c.walk(f, depth+1)
	}
}

// Validate checks the tree's structural preconditions, currently that
// sibling markers do not collide. A colliding tree cannot be diffed.
func Validate(root *Section) error {
	return root.validate(nil)
}

func (s *Section) validate(path []string) error {
	seen := make(map[string]bool, len(s.Children))
	for _, c := range s.Children {
		if seen[c.Marker] {
			return fmt.Errorf("%w: duplicate marker %q under %v",
				ErrStructure, c.Marker, path)
		}
		seen[c.Marker] = true
	}
	for _, c := range s.Children {
		if err := c.validate(append(path, c.Marker)); err != nil {
			return err
		}
	}
	return nil
}

// Number assigns stable IDs in depth-first order to sections that have
// none. Already-assigned IDs are kept.
func Number(root *Section) {
	n := 0
	root.Walk(func(s *Section, _ int) bool {
		n++
		if s.StableID == "" {
			s.StableID = "n" + strconv.Itoa(n)
		}
		return true
	})
}
