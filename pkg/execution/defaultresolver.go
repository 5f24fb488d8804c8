package execution

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/lexigraph/graphql/pkg/types"
)

// DefaultFieldResolver implements spec.md §4.7's fallback resolver: "fetch
// the attribute/mapping key equal to the field name [from source]; if the
// property is a function, invoke it and use its result". Go has no single
// "attribute or mapping key" notion, so this tries, in order: an
// *OrderedMap or map[string]interface{} keyed by field name, an exported
// struct field matching the field name case-insensitively, and a like-named
// method taking no arguments (invoked, with its error return if any
// propagated as a resolver error). strict, when true (internal/config.Config's
// DefaultFieldResolverStrict), turns "no such key/field/method" into an
// error instead of silently resolving to nil.
func DefaultFieldResolver(strict bool) types.FieldResolveFunc {
	return func(ctx context.Context, source interface{}, args map[string]interface{}, info types.ResolveInfo) (interface{}, error) {
		if source == nil {
			return nil, nil
		}
		if v, ok := lookupByKey(source, info.FieldName); ok {
			return v, nil
		}
		if v, ok, err := lookupByReflection(source, info.FieldName); ok || err != nil {
			return v, err
		}
		if strict {
			return nil, fmt.Errorf("no field %q on value of type %T", info.FieldName, source)
		}
		return nil, nil
	}
}

func lookupByKey(source interface{}, name string) (interface{}, bool) {
	switch s := source.(type) {
	case *OrderedMap:
		return s.Get(name)
	case map[string]interface{}:
		v, ok := s[name]
		return v, ok
	default:
		return nil, false
	}
}

func lookupByReflection(source interface{}, name string) (interface{}, bool, error) {
	val := reflect.ValueOf(source)
	for val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil, false, nil
		}
		val = val.Elem()
	}

	switch val.Kind() {
	case reflect.Struct:
		t := val.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			if strings.EqualFold(f.Name, name) {
				return val.Field(i).Interface(), true, nil
			}
		}
	}

	method := reflect.ValueOf(source).MethodByName(strings.ToUpper(name[:1]) + name[1:])
	if !method.IsValid() {
		return nil, false, nil
	}
	mt := method.Type()
	if mt.NumIn() != 0 {
		return nil, false, nil
	}
	out := method.Call(nil)
	switch len(out) {
	case 1:
		return out[0].Interface(), true, nil
	case 2:
		var err error
		if e, ok := out[1].Interface().(error); ok {
			err = e
		}
		return out[0].Interface(), true, err
	default:
		return nil, false, nil
	}
}
