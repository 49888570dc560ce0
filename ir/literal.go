package ir

import (
	"strconv"
	"strings"
)

// Literal renders a node as a compact single-line literal, suitable for
// change-record snapshots and identity keys. Scalars render their value,
// containers render in a bracketed JSON-like form.
func (n *Node) Literal() string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	n.literalTo(&b)
	return b.String()
}

func (n *Node) literalTo(b *strings.Builder) {
	switch n.Type {
	case NullType:
		b.WriteString("null")
	case BoolType:
		b.WriteString(strconv.FormatBool(n.Bool))
	case NumberType:
		if n.Int64 != nil {
			b.WriteString(strconv.FormatInt(*n.Int64, 10))
			return
		}
		if n.Float64 != nil {
			b.WriteString(strconv.FormatFloat(*n.Float64, 'g', -1, 64))
			return
		}
		b.WriteString("0")
	case StringType:
		b.WriteString(n.String)
	case ArrayType:
		b.WriteByte('[')
		for i, v := range n.Values {
			if i > 0 {
				b.WriteString(", ")
			}
			v.literalTo(b)
		}
		b.WriteByte(']')
	case ObjectType:
		b.WriteByte('{')
		for i, k := range n.Keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(k)
			b.WriteString(": ")
			n.Values[i].literalTo(b)
		}
		b.WriteByte('}')
	}
}

// ToAny converts a node to plain Go values: map[string]any for objects
// (declaration order is lost), []any for arrays, scalars as themselves.
func (n *Node) ToAny() any {
	if n == nil {
		return nil
	}
	switch n.Type {
	case NullType:
		return nil
	case BoolType:
		return n.Bool
	case StringType:
		return n.String
	case NumberType:
		if n.Int64 != nil {
			return *n.Int64
		}
		if n.Float64 != nil {
			return *n.Float64
		}
		return int64(0)
	case ArrayType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = v.ToAny()
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(n.Keys))
		for i, k := range n.Keys {
			res[k] = n.Values[i].ToAny()
		}
		return res
	}
	return nil
}
