package ir

// Node is one value in a generic mapping/sequence tree.
//
// Objects keep their keys in declaration order: Keys[i] names Values[i].
// Arrays use Values only. Scalars use the String/Bool/Int64/Float64
// fields according to Type. Nodes are built once when a document is
// loaded and are not mutated afterwards.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string

	Keys   []string
	Values []*Node

	String  string
	Bool    bool
	Int64   *int64
	Float64 *float64
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

type Entry struct {
	Key string
	Val *Node
}

// FromEntries builds an object node, keys in the given order.
func FromEntries(entries []Entry) *Node {
	res := &Node{
		Type:   ObjectType,
		Keys:   make([]string, len(entries)),
		Values: make([]*Node, len(entries)),
	}
	for i := range entries {
		e := &entries[i]
		e.Val.Parent = res
		e.Val.ParentIndex = i
		e.Val.ParentField = e.Key
		res.Keys[i] = e.Key
		res.Values[i] = e.Val
	}
	return res
}

// FromSlice builds an array node.
func FromSlice(vals []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(vals)),
	}
	for i, v := range vals {
		v.Parent = res
		v.ParentIndex = i
		res.Values[i] = v
	}
	return res
}

// Get returns the value of field in an object node, nil if absent
// or if the node is not an object.
func (n *Node) Get(field string) *Node {
	if n.Type != ObjectType {
		return nil
	}
	for i := range n.Keys {
		if n.Keys[i] == field {
			return n.Values[i]
		}
	}
	return nil
}

// IndexOf returns the position of field among the object's keys, -1 if
// absent.
func (n *Node) IndexOf(field string) int {
	if n.Type != ObjectType {
		return -1
	}
	for i := range n.Keys {
		if n.Keys[i] == field {
			return i
		}
	}
	return -1
}

func (n *Node) Clone() *Node {
	res := &Node{}
	n.cloneTo(res)
	return res
}

func (n *Node) cloneTo(dst *Node) {
	dst.Type = n.Type
	dst.Parent = n.Parent
	dst.ParentIndex = n.ParentIndex
	dst.ParentField = n.ParentField
	dst.String = n.String
	dst.Bool = n.Bool
	if n.Int64 != nil {
		i := *n.Int64
		dst.Int64 = &i
	}
	if n.Float64 != nil {
		f := *n.Float64
		dst.Float64 = &f
	}
	if n.Keys != nil {
		dst.Keys = make([]string, len(n.Keys))
		copy(dst.Keys, n.Keys)
	}
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			c := &Node{}
			v.cloneTo(c)
			c.Parent = dst
			dst.Values[i] = c
		}
	}
}

// Visit walks the tree pre- and post-order. The callback's bool return
// controls descent on the pre-order call.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
