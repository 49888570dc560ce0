package section

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		root *Section
		ok   bool
	}{
		{
			"unique markers",
			New("", "", "",
				New("1", "One", "a"),
				New("2", "Two", "b")),
			true,
		},
		{
			"duplicate siblings",
			New("", "", "",
				New("1", "One", "a"),
				New("1", "Other", "b")),
			false,
		},
		{
			"duplicate at depth",
			New("", "", "",
				New("1", "One", "",
					New("x", "", ""),
					New("x", "", ""))),
			false,
		},
		{
			"same marker different levels",
			New("", "", "",
				New("1", "", "",
					New("1", "", ""))),
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.root)
			if tt.ok && err != nil {
				t.Errorf("Validate = %v, want nil", err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatal("Validate = nil, want error")
				}
				if !errors.Is(err, ErrStructure) {
					t.Errorf("error %v does not wrap ErrStructure", err)
				}
			}
		})
	}
}

func TestChild(t *testing.T) {
	root := New("", "", "",
		New("a", "A", ""),
		New("b", "B", ""))
	if c := root.Child("b"); c == nil || c.Title != "B" {
		t.Errorf("Child(b) = %v", c)
	}
	if c := root.Child("z"); c != nil {
		t.Errorf("Child(z) = %v, want nil", c)
	}
}

func TestWalkOrder(t *testing.T) {
	root := New("", "", "",
		New("1", "", "",
			New("1.1", "", ""),
			New("1.2", "", "")),
		New("2", "", ""))
	var order []string
	root.Walk(func(s *Section, _ int) bool {
		order = append(order, s.Marker)
		return true
	})
	got := strings.Join(order, ",")
	want := ",1,1.1,1.2,2"
	if got != want {
		t.Errorf("walk order = %q, want %q", got, want)
	}
}

func TestNumber(t *testing.T) {
	root := New("", "", "",
		New("1", "", ""),
		New("2", "", ""))
	root.Children[0].StableID = "keep"
	Number(root)
	if root.StableID != "n1" {
		t.Errorf("root id = %q", root.StableID)
	}
	if root.Children[0].StableID != "keep" {
		t.Errorf("existing id overwritten: %q", root.Children[0].StableID)
	}
	if root.Children[1].StableID != "n3" {
		t.Errorf("child id = %q, want n3", root.Children[1].StableID)
	}
}
