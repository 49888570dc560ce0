package load

import (
	"fmt"

	"github.com/docdelta/docdelta/ir"
	"github.com/docdelta/docdelta/section"
)

// Document decodes a YAML or JSON section layout into a section tree.
// The root mapping holds an optional title and a sections list; each
// section carries marker, title, body, and nested sections. The tree
// is validated and numbered before return.
//
//	title: Release Notes
//	sections:
//	  - marker: "1"
//	    title: Overview
//	    body: |
//	      ...
//	    sections: [...]
func Document(b []byte) (*section.Section, error) {
	node, err := Data(b)
	if err != nil {
		return nil, err
	}
	root, err := docSection(node, true)
	if err != nil {
		return nil, err
	}
	if err := section.Validate(root); err != nil {
		return nil, err
	}
	section.Number(root)
	return root, nil
}

func docSection(n *ir.Node, isRoot bool) (*section.Section, error) {
	if n.Type != ir.ObjectType {
		return nil, fmt.Errorf("section must be a mapping, got %s", n.Type)
	}
	marker, err := strField(n, "marker")
	if err != nil {
		return nil, err
	}
	if marker == "" && !isRoot {
		return nil, fmt.Errorf("section missing a marker")
	}
	title, err := strField(n, "title")
	if err != nil {
		return nil, err
	}
	body, err := strField(n, "body")
	if err != nil {
		return nil, err
	}
	id, err := strField(n, "id")
	if err != nil {
		return nil, err
	}
	res := section.New(marker, title, body)
	res.StableID = id
	if kids := n.Get("sections"); kids != nil {
		if kids.Type != ir.ArrayType {
			return nil, fmt.Errorf("sections under %q must be a list", marker)
		}
		for _, kid := range kids.Values {
			child, err := docSection(kid, false)
			if err != nil {
				return nil, err
			}
			res.Children = append(res.Children, child)
		}
	}
	return res, nil
}

func strField(n *ir.Node, key string) (string, error) {
	v := n.Get(key)
	if v == nil {
		return "", nil
	}
	if v.Type != ir.StringType {
		return "", fmt.Errorf("field %q must be a string, got %s", key, v.Type)
	}
	return v.String, nil
}
