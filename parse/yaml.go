package parse

import (
	"fmt"
	"strconv"

	"github.com/scala-steward/circe-jackson/node"

	"github.com/goccy/go-yaml"
)

// YAML parses a single YAML document into a node tree. Mappings decode as
// ordered maps so field order survives.
func YAML(data []byte) (*node.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}
	return fromYAML(v)
}

func fromYAML(v any) (*node.Node, error) {
	switch t := v.(type) {
	case nil:
		return node.Null(), nil
	case bool:
		return node.FromBool(t), nil
	case string:
		return node.FromString(t), nil
	case int:
		return node.FromLong(int64(t)), nil
	case int64:
		return node.FromLong(t), nil
	case uint64:
		if t <= 1<<63-1 {
			return node.FromLong(int64(t)), nil
		}
		return numberNode(strconv.FormatUint(t, 10)), nil
	case float64:
		return node.FromDouble(t), nil
	case []any:
		arr := node.NewArray()
		for _, item := range t {
			child, err := fromYAML(item)
			if err != nil {
				return nil, err
			}
			arr.Append(child)
		}
		return arr, nil
	case yaml.MapSlice:
		obj := node.NewObject()
		for _, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}
			child, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			obj.SetField(key, child)
		}
		return obj, nil
	}
	return nil, fmt.Errorf("%w: unsupported YAML value %T", ErrParse, v)
}
