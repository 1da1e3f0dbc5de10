package value

import (
	"fmt"
	"math"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Serialize renders v as JSON text, for diagnostics.
//
// Rendering follows the conventions of JavaScript's JSON.stringify, as
// error messages of the matcher are expected to look that way: NaN and
// infinities render as null, negative zero as 0. Undefined, funcs and
// symbols render as "undefined" at top level, are dropped from records and
// render as null inside sequences.
func Serialize(v any) string {
	x, ok := jsonable(v)
	if !ok {
		return "undefined"
	}
	b, err := json.Marshal(x)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

func jsonable(v any) (any, bool) {
	switch KindOf(v) {
	case KindUndefined, KindFunc, KindSymbol:
		return nil, false
	case KindNull:
		return nil, true
	case KindBool:
		b, _ := AsBool(v)
		return b, true
	case KindText:
		s, _ := AsText(v)
		return s, true
	case KindNumber:
		n, _ := AsNumber(v)
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, true
		}
		if n == 0 {
			return 0, true
		}
		return n, true
	case KindSequence:
		seq, _ := AsSequence(v)
		out := make([]any, len(seq))
		for i, el := range seq {
			out[i], _ = jsonable(el)
		}
		return out, true
	case KindRecord:
		rec, _ := AsRecord(v)
		out := make(map[string]any)
		for _, k := range rec.Keys() {
			if x, ok := jsonable(Field(rec, k)); ok {
				out[k] = x
			}
		}
		return out, true
	}
	return v, true
}

// FromJSON decodes a JSON document into a subject tree of map[string]any,
// []any, float64, string, bool and nil.
func FromJSON(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("value: cannot decode JSON: %w", err)
	}
	return v, nil
}

// FromYAML decodes a YAML document into the same shapes FromJSON produces.
// Mapping keys are stringified and integers become float64.
func FromYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("value: cannot decode YAML: %w", err)
	}
	return normalizeYAML(v), nil
}

func normalizeYAML(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, el := range x {
			x[k] = normalizeYAML(el)
		}
		return x
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, el := range x {
			m[fmt.Sprint(k)] = normalizeYAML(el)
		}
		return m
	case []any:
		for i, el := range x {
			x[i] = normalizeYAML(el)
		}
		return x
	case int, int64, uint64:
		n, _ := AsNumber(x)
		return n
	}
	return v
}
