package load

import (
	"errors"
	"testing"

	"github.com/docdelta/docdelta/ir"
	"github.com/docdelta/docdelta/section"
)

func TestDataKeyOrder(t *testing.T) {
	node, err := Data([]byte("z: 1\na: 2\nm: 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.ObjectType {
		t.Fatalf("type = %s", node.Type)
	}
	want := []string{"z", "a", "m"}
	for i, k := range want {
		if node.Keys[i] != k {
			t.Errorf("key[%d] = %q, want %q", i, node.Keys[i], k)
		}
	}
}

func TestDataScalars(t *testing.T) {
	node, err := Data([]byte(`{"s": "x", "i": 3, "f": 1.5, "b": true, "n": null}`))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		key  string
		typ  ir.Type
		want string
	}{
		{"s", ir.StringType, "x"},
		{"i", ir.NumberType, "3"},
		{"f", ir.NumberType, "1.5"},
		{"b", ir.BoolType, "true"},
		{"n", ir.NullType, "null"},
	}
	for _, tt := range tests {
		v := node.Get(tt.key)
		if v == nil || v.Type != tt.typ {
			t.Errorf("%s: got %v, want %s", tt.key, v, tt.typ)
			continue
		}
		if got := v.Literal(); got != tt.want {
			t.Errorf("%s: literal = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestDataNested(t *testing.T) {
	node, err := Data([]byte("items:\n  - id: 1\n  - id: 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	items := node.Get("items")
	if items == nil || items.Type != ir.ArrayType || len(items.Values) != 2 {
		t.Fatalf("items = %v", items)
	}
	if got := items.Values[1].Get("id"); got == nil || got.Int64 == nil || *got.Int64 != 2 {
		t.Errorf("items[1].id = %v", got)
	}
}

func TestDataBadInput(t *testing.T) {
	if _, err := Data([]byte("a: [unclosed")); err == nil {
		t.Fatal("malformed input accepted")
	}
}

const docYAML = `
title: Spec
sections:
  - marker: "1"
    title: Overview
    body: intro text
    sections:
      - marker: "1.1"
        body: details
  - marker: "2"
    title: Usage
`

func TestDocument(t *testing.T) {
	root, err := Document([]byte(docYAML))
	if err != nil {
		t.Fatal(err)
	}
	if root.Title != "Spec" || len(root.Children) != 2 {
		t.Fatalf("root = %+v", root)
	}
	s1 := root.Child("1")
	if s1 == nil || s1.Title != "Overview" || s1.Body != "intro text" {
		t.Fatalf("section 1 = %+v", s1)
	}
	sub := s1.Child("1.1")
	if sub == nil || sub.Body != "details" {
		t.Fatalf("section 1.1 = %+v", sub)
	}
	// numbered in depth-first order
	if root.StableID != "n1" || s1.StableID != "n2" || sub.StableID != "n3" {
		t.Errorf("ids = %q %q %q", root.StableID, s1.StableID, sub.StableID)
	}
}

func TestDocumentExplicitID(t *testing.T) {
	root, err := Document([]byte("sections:\n  - marker: a\n    id: sec-a\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := root.Child("a").StableID; got != "sec-a" {
		t.Errorf("id = %q, want sec-a", got)
	}
}

func TestDocumentDuplicateMarkers(t *testing.T) {
	in := "sections:\n  - marker: a\n  - marker: a\n"
	if _, err := Document([]byte(in)); !errors.Is(err, section.ErrStructure) {
		t.Errorf("err = %v, want ErrStructure", err)
	}
}

func TestDocumentMissingMarker(t *testing.T) {
	if _, err := Document([]byte("sections:\n  - title: no marker\n")); err == nil {
		t.Fatal("section without marker accepted")
	}
}

func TestRules(t *testing.T) {
	rules, err := Rules([]byte("rules:\n  - collection: items\n    field: id\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 1 || rules[0].Collection != "items" || rules[0].Field != "id" {
		t.Fatalf("rules = %+v", rules)
	}
}

func TestRulesBareList(t *testing.T) {
	rules, err := Rules([]byte("- collection: users.*\n  field: name\n  when: 'kind == \"person\"'\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 1 || rules[0].When == "" {
		t.Fatalf("rules = %+v", rules)
	}
}
