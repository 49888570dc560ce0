package ir

import "testing"

func obj(entries ...Entry) *Node {
	return FromEntries(entries)
}

func TestGet(t *testing.T) {
	n := obj(
		Entry{Key: "a", Val: FromInt(1)},
		Entry{Key: "b", Val: FromString("x")},
	)
	if v := n.Get("a"); v == nil || v.Int64 == nil || *v.Int64 != 1 {
		t.Errorf("Get(a) = %v", v)
	}
	if v := n.Get("missing"); v != nil {
		t.Errorf("Get(missing) = %v, want nil", v)
	}
	if i := n.IndexOf("b"); i != 1 {
		t.Errorf("IndexOf(b) = %d, want 1", i)
	}
	if i := FromString("x").IndexOf("b"); i != -1 {
		t.Errorf("IndexOf on scalar = %d, want -1", i)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		eq   bool
	}{
		{"ints", FromInt(1), FromInt(1), true},
		{"int vs float", FromInt(1), FromFloat(1.0), false},
		{"strings", FromString("a"), FromString("a"), true},
		{"string vs bool", FromString("true"), FromBool(true), false},
		{"nulls", Null(), Null(), true},
		{
			"arrays",
			FromSlice([]*Node{FromInt(1), FromInt(2)}),
			FromSlice([]*Node{FromInt(1), FromInt(2)}),
			true,
		},
		{
			"array length",
			FromSlice([]*Node{FromInt(1)}),
			FromSlice([]*Node{FromInt(1), FromInt(2)}),
			false,
		},
		{
			"objects",
			obj(Entry{Key: "a", Val: FromInt(1)}),
			obj(Entry{Key: "a", Val: FromInt(1)}),
			true,
		},
		{
			"object key order",
			obj(Entry{Key: "a", Val: FromInt(1)}, Entry{Key: "b", Val: FromInt(2)}),
			obj(Entry{Key: "b", Val: FromInt(2)}, Entry{Key: "a", Val: FromInt(1)}),
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.eq {
				t.Errorf("Equal = %v, want %v", got, tt.eq)
			}
			if got := Equal(tt.b, tt.a); got != tt.eq {
				t.Errorf("Equal reversed = %v, want %v", got, tt.eq)
			}
		})
	}
}

func TestClone(t *testing.T) {
	n := obj(
		Entry{Key: "a", Val: FromSlice([]*Node{FromInt(1), FromString("s")})},
		Entry{Key: "b", Val: Null()},
	)
	c := n.Clone()
	if !Equal(n, c) {
		t.Fatalf("clone not equal: %s vs %s", n.Literal(), c.Literal())
	}
	c.Values[0].Values[0] = FromInt(99)
	if Equal(n, c) {
		t.Fatal("mutating clone affected original")
	}
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		name string
		n    *Node
		want string
	}{
		{"int", FromInt(42), "42"},
		{"float", FromFloat(1.5), "1.5"},
		{"bool", FromBool(true), "true"},
		{"null", Null(), "null"},
		{"string", FromString("hi"), "hi"},
		{
			"array",
			FromSlice([]*Node{FromInt(1), FromString("a")}),
			"[1, a]",
		},
		{
			"object",
			obj(Entry{Key: "a", Val: FromInt(1)}, Entry{Key: "b", Val: Null()}),
			"{a: 1, b: null}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.n.Literal(); got != tt.want {
				t.Errorf("Literal = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKind(t *testing.T) {
	if FromInt(1).Type.Kind() != ScalarKind {
		t.Error("number kind")
	}
	if FromSlice(nil).Type.Kind() != SequenceKind {
		t.Error("array kind")
	}
	if obj().Type.Kind() != MappingKind {
		t.Error("object kind")
	}
}
