package types

import (
	"fmt"
	"math"
	"strconv"
)

// undefinedType is the sentinel type of Undefined: a singleton distinct from
// nil (Go's `nil` already stands for a GraphQL `null`, so "no value was
// supplied at all" — e.g. an absent optional argument — needs its own
// marker, per spec.md §9's "Global singletons" note).
type undefinedType struct{}

func (undefinedType) String() string { return "<undefined>" }

// Undefined marks the absence of a value, distinct from an explicit null.
// pkg/coercion returns Undefined for an omitted argument/variable that has
// no default, so callers can distinguish "not provided" from "provided as
// null".
var Undefined = undefinedType{}

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v interface{}) bool {
	_, ok := v.(undefinedType)
	return ok
}

// InspectValue renders v the way GraphQL's reference coercion messages do:
// strings single-quoted, everything else via its default formatting. Used
// by the built-in scalars' ParseValue/Serialize error text and reused by
// pkg/coercion to format the offending value in a variable coercion error.
func InspectValue(v interface{}) string {
	if s, ok := v.(string); ok {
		return "'" + s + "'"
	}
	return fmt.Sprintf("%v", v)
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Int is the built-in 32-bit signed integer scalar.
var Int = &Scalar{
	Name: "Int",
	Desc: "The `Int` scalar type represents non-fractional signed whole numeric values.",
	Serialize: func(v interface{}) (interface{}, error) {
		f, ok := asFloat(v)
		if !ok || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
			return nil, fmt.Errorf("Int cannot represent non-integer value: %s", InspectValue(v))
		}
		return int(f), nil
	},
	ParseValue: func(v interface{}) (interface{}, error) {
		switch n := v.(type) {
		case int:
			return n, nil
		default:
			f, ok := asFloat(v)
			if !ok || f != math.Trunc(f) {
				return nil, fmt.Errorf("Int cannot represent non-integer value: %s", InspectValue(v))
			}
			return int(f), nil
		}
	},
}

// Float is the built-in double-precision scalar.
var Float = &Scalar{
	Name: "Float",
	Desc: "The `Float` scalar type represents signed double-precision fractional values.",
	Serialize: func(v interface{}) (interface{}, error) {
		f, ok := asFloat(v)
		if !ok {
			return nil, fmt.Errorf("Float cannot represent non-numeric value: %s", InspectValue(v))
		}
		return f, nil
	},
	ParseValue: func(v interface{}) (interface{}, error) {
		f, ok := asFloat(v)
		if !ok {
			return nil, fmt.Errorf("Float cannot represent non-numeric value: %s", InspectValue(v))
		}
		return f, nil
	},
}

// String is the built-in UTF-8 string scalar.
var String = &Scalar{
	Name: "String",
	Desc: "The `String` scalar type represents textual data.",
	Serialize: func(v interface{}) (interface{}, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("String cannot represent a non string value: %s", InspectValue(v))
		}
		return s, nil
	},
	ParseValue: func(v interface{}) (interface{}, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("String cannot represent a non string value: %s", InspectValue(v))
		}
		return s, nil
	},
}

// Boolean is the built-in true/false scalar.
var Boolean = &Scalar{
	Name: "Boolean",
	Desc: "The `Boolean` scalar type represents true or false.",
	Serialize: func(v interface{}) (interface{}, error) {
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("Boolean cannot represent a non boolean value: %s", InspectValue(v))
		}
		return b, nil
	},
	ParseValue: func(v interface{}) (interface{}, error) {
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("Boolean cannot represent a non boolean value: %s", InspectValue(v))
		}
		return b, nil
	},
}

// ID is the built-in opaque identifier scalar, serialized/accepted as
// either a string or an integer (graphql-js's well-known ID coercion
// behavior).
var ID = &Scalar{
	Name: "ID",
	Desc: "The `ID` scalar type represents a unique identifier.",
	Serialize: func(v interface{}) (interface{}, error) {
		switch n := v.(type) {
		case string:
			return n, nil
		case int:
			return strconv.Itoa(n), nil
		default:
			if f, ok := asFloat(v); ok && f == math.Trunc(f) {
				return strconv.FormatInt(int64(f), 10), nil
			}
			return nil, fmt.Errorf("ID cannot represent value: %s", InspectValue(v))
		}
	},
	ParseValue: func(v interface{}) (interface{}, error) {
		switch n := v.(type) {
		case string:
			return n, nil
		case int:
			return strconv.Itoa(n), nil
		default:
			if f, ok := asFloat(v); ok && f == math.Trunc(f) {
				return strconv.FormatInt(int64(f), 10), nil
			}
			return nil, fmt.Errorf("ID cannot represent value: %s", InspectValue(v))
		}
	},
}
