// Package load builds engine input trees from YAML or JSON text. It
// performs no schema validation beyond the structural preconditions the
// engine itself requires.
package load

import (
	"fmt"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/docdelta/docdelta/ir"
)

// Data decodes a YAML or JSON document into a generic value tree.
// Mapping key order is preserved.
func Data(b []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(b, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return fromAny(v)
}

func fromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		return ir.FromInt(int64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case yaml.MapSlice:
		entries := make([]ir.Entry, 0, len(x))
		for _, item := range x {
			val, err := fromAny(item.Value)
			if err != nil {
				return nil, err
			}
			entries = append(entries, ir.Entry{
				Key: fmt.Sprintf("%v", item.Key),
				Val: val,
			})
		}
		return ir.FromEntries(entries), nil
	case map[string]any:
		// unordered decode path: sort for reproducibility
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make([]ir.Entry, 0, len(keys))
		for _, k := range keys {
			val, err := fromAny(x[k])
			if err != nil {
				return nil, err
			}
			entries = append(entries, ir.Entry{Key: k, Val: val})
		}
		return ir.FromEntries(entries), nil
	case []any:
		vals := make([]*ir.Node, 0, len(x))
		for _, item := range x {
			val, err := fromAny(item)
			if err != nil {
				return nil, err
			}
			vals = append(vals, val)
		}
		return ir.FromSlice(vals), nil
	default:
		return nil, fmt.Errorf("unsupported value of type %T", v)
	}
}
