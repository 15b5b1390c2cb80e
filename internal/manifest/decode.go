package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/marmotlang/marmot/internal/object"
)

// ParseValue parses a standalone YAML literal into a runtime value,
// e.g. `[1, 2, 3]` or `{sequence: GATTACA}`. The console uses this for
// object literals.
func ParseValue(data []byte) (object.Object, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("value parse error: %v", err)
	}
	return inferValue(raw)
}

// decodeValue converts a YAML node to a runtime value. Mappings become
// Records, sequences become Lists, scalars become
// Integer/Float/Boolean/String/Nil as appropriate. yaml.v3 decodes
// integers as int, not float64.
func decodeValue(node *yaml.Node) (object.Object, error) {
	if node == nil || node.Kind == 0 {
		return object.NIL, nil
	}
	var data interface{}
	if err := node.Decode(&data); err != nil {
		return nil, fmt.Errorf("value decode error: %v", err)
	}
	return inferValue(data)
}

func inferValue(data interface{}) (object.Object, error) {
	switch v := data.(type) {
	case nil:
		return object.NIL, nil
	case bool:
		return &object.Boolean{Value: v}, nil
	case int:
		return &object.Integer{Value: int64(v)}, nil
	case int64:
		return &object.Integer{Value: v}, nil
	case float64:
		return &object.Float{Value: v}, nil
	case string:
		return &object.String{Value: v}, nil
	case []interface{}:
		elements := make([]object.Object, len(v))
		for i, item := range v {
			el, err := inferValue(item)
			if err != nil {
				return nil, err
			}
			elements[i] = el
		}
		return object.NewList(elements), nil
	case map[string]interface{}:
		fields := make(map[string]object.Object, len(v))
		for key, item := range v {
			val, err := inferValue(item)
			if err != nil {
				return nil, err
			}
			fields[key] = val
		}
		return object.NewRecord(fields), nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}
