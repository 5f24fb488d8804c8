package coercion

import "github.com/lexigraph/graphql/pkg/types"

// Serialize converts an internal completed value back to a wire-ready leaf
// (spec.md §4.6 "Output serialization: call the scalar's serialize; for
// enums map internal value back to its name; for lists/non-nulls
// recurse"). nil always serializes to nil regardless of t, matching
// pkg/execution's own null-propagation having already decided a position is
// allowed to be null before Serialize is ever called.
func Serialize(t types.Type, internal interface{}) (interface{}, error) {
	if internal == nil {
		return nil, nil
	}
	switch vt := t.(type) {
	case *types.NonNull:
		return Serialize(vt.Type, internal)
	case *types.List:
		slice, ok := internal.([]interface{})
		if !ok {
			return Serialize(vt.Type, internal)
		}
		out := make([]interface{}, len(slice))
		for i, elem := range slice {
			sv, err := Serialize(vt.Type, elem)
			if err != nil {
				return nil, err
			}
			out[i] = sv
		}
		return out, nil
	case *types.Scalar:
		return vt.Serialize(internal)
	case *types.Enum:
		for _, ev := range vt.Values.All() {
			if ev.Value == internal {
				return ev.Name, nil
			}
		}
		return nil, &Error{Message: "Enum " + vt.Name + " cannot represent value: " + vt.String()}
	default:
		// Object/Interface/Union completion recurses through
		// pkg/execution's own selection-set walk, never through
		// Serialize — reaching here means a leaf type was expected.
		return internal, nil
	}
}
