package coercion

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// DecodeVariablesJSON parses a request's raw `variables` JSON document into
// the map[string]interface{} CoerceVariableValues expects, without
// requiring the caller to pre-decode it themselves (spec.md §1 non-goal
// "no built-in caching of parsed documents" leaves request decoding itself
// very much in scope — this is the convenience the domain stack wires
// gjson in for). Using gjson rather than encoding/json avoids an
// intermediate interface{} allocation pass for documents most callers never
// fully traverse (a request providing ten variables when only three are
// declared).
func DecodeVariablesJSON(raw []byte) (map[string]interface{}, error) {
	if len(raw) == 0 {
		return map[string]interface{}{}, nil
	}
	result := gjson.ParseBytes(raw)
	if !result.IsObject() {
		return nil, fmt.Errorf("variables document must be a JSON object, got %s", result.Type)
	}
	value := gjsonToGo(result)
	m, _ := value.(map[string]interface{})
	return m, nil
}

func gjsonToGo(r gjson.Result) interface{} {
	switch {
	case r.IsObject():
		out := make(map[string]interface{})
		r.ForEach(func(key, value gjson.Result) bool {
			out[key.String()] = gjsonToGo(value)
			return true
		})
		return out
	case r.IsArray():
		var out []interface{}
		r.ForEach(func(_, value gjson.Result) bool {
			out = append(out, gjsonToGo(value))
			return true
		})
		return out
	case r.Type == gjson.Null:
		return nil
	case r.Type == gjson.String:
		return r.String()
	case r.Type == gjson.Number:
		return r.Num
	case r.Type == gjson.True, r.Type == gjson.False:
		return r.Bool()
	default:
		return nil
	}
}

// PatchResultJSON sets value at path inside an existing serialized response
// document, used by streaming/incremental-delivery callers that maintain a
// running JSON buffer rather than re-marshaling the whole `data` map after
// every field completes. Path elements become dotted/bracketed sjson path
// segments in the same order Serialize's own Path values are produced.
func PatchResultJSON(base []byte, path Path, value interface{}) ([]byte, error) {
	out, err := sjson.SetBytes(base, sjsonPath(path), value)
	if err != nil {
		return nil, fmt.Errorf("patching result JSON at %s: %w", path, err)
	}
	return out, nil
}

func sjsonPath(path Path) string {
	var b []byte
	for i, key := range path {
		switch k := key.(type) {
		case string:
			if i > 0 {
				b = append(b, '.')
			}
			b = append(b, k...)
		case int:
			b = append(b, '.')
			b = append(b, []byte(fmt.Sprintf("%d", k))...)
		}
	}
	return string(b)
}
