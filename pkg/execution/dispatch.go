package execution

import (
	"context"
	"fmt"
	"reflect"

	"github.com/pkg/errors"

	"github.com/lexigraph/graphql/internal/log"
	"github.com/lexigraph/graphql/pkg/ast"
	"github.com/lexigraph/graphql/pkg/coercion"
	"github.com/lexigraph/graphql/pkg/types"
)

// result is returned by every value-completing step. Bubble marks a value
// that is null because a non-nullable position below it produced null
// (spec.md §4.7's "nullability propagates to the nearest nullable parent");
// when Bubble is true, Value is always nil and the caller must itself
// become null and re-propagate Bubble unless it is the very root of the
// response, mirroring the teacher's own "never let one data-source panic
// escape a walk" instinct applied to GraphQL's null-bubbling rule instead.
type result struct {
	Value   interface{}
	Errors  []*FieldError
	Bubble  bool
}

// requestCtx carries everything a single Execute/ExecuteSync call threads
// through field collection, argument coercion and value completion — built
// once per call and read-only thereafter (spec.md §5 "the schema and
// parsed document are read-only during execution").
type requestCtx struct {
	schema          *types.Schema
	doc             *ast.Document
	operationRef    int
	variableValues  map[string]interface{}
	rootValue       interface{}
	concurrency     int
	logger          log.Logger
	correlationID   string
	resolverStrict  bool
	syncOnly        bool
}

func (rc *requestCtx) executeGroupedFieldSet(ctx context.Context, parentType *types.Object, source interface{}, groups []FieldGroup, basePath Path, sequential bool) result {
	work := func(ctx context.Context, i int, g FieldGroup) result {
		return rc.executeField(ctx, parentType, source, g, basePath)
	}
	var results []result
	if sequential {
		results = zipOrdered(ctx, groups, work)
	} else {
		results = zipParallel(ctx, rc.concurrency, groups, work)
	}

	out := NewOrderedMap(len(groups))
	var errs []*FieldError
	bubble := false
	for i, r := range results {
		errs = append(errs, r.Errors...)
		if r.Bubble {
			bubble = true
		}
		out.Set(groups[i].ResponseKey, r.Value)
	}
	if bubble {
		return result{Value: nil, Errors: errs, Bubble: true}
	}
	return result{Value: out, Errors: errs}
}

func (rc *requestCtx) executeField(ctx context.Context, parentType *types.Object, source interface{}, group FieldGroup, basePath Path) result {
	fieldRef := group.Fields[0]
	field := rc.doc.Fields[fieldRef]
	fieldName := rc.doc.FieldNameString(fieldRef)
	path := basePath.Append(group.ResponseKey)

	if fieldName == "__typename" {
		return result{Value: parentType.Name}
	}

	fieldDef, ok := parentType.Fields.Lookup(fieldName)
	if !ok {
		return result{Errors: []*FieldError{fieldErrorf(rc.doc, fieldRef, path, "Cannot query field %q on type %q.", fieldName, parentType.Name)}}
	}

	args, cerrs := coercion.CoerceArgumentValues(rc.doc, field.Arguments, fieldDef.Args, rc.variableValues)
	if len(cerrs) > 0 {
		errs := make([]*FieldError, len(cerrs))
		for i, e := range cerrs {
			errs[i] = locatedFieldError(rc.doc, fieldRef, e, path)
		}
		return result{Errors: errs, Bubble: isNonNull(fieldDef.Type)}
	}

	info := types.ResolveInfo{
		FieldName:      fieldName,
		FieldNodes:     group.Fields,
		ReturnType:     fieldDef.Type,
		ParentType:     parentType,
		Path:           []interface{}(path),
		Schema:         rc.schema,
		Operation:      rc.operationRef,
		VariableValues: rc.variableValues,
		RootValue:      rc.rootValue,
		Context:        ctx,
	}

	resolve := fieldDef.Resolve
	if resolve == nil {
		resolve = DefaultFieldResolver(rc.resolverStrict)
	}

	value, err := rc.invokeResolver(ctx, resolve, source, args, info)
	if err != nil {
		return result{Errors: []*FieldError{locatedFieldError(rc.doc, fieldRef, err, path)}, Bubble: isNonNull(fieldDef.Type)}
	}

	if d, ok := value.(Deferred); ok {
		if rc.syncOnly {
			return result{Errors: []*FieldError{fieldErrorf(rc.doc, fieldRef, path, "GraphQL execution failed to complete synchronously.")}, Bubble: isNonNull(fieldDef.Type)}
		}
		value, err = d.Await(ctx)
		if err != nil {
			return result{Errors: []*FieldError{locatedFieldError(rc.doc, fieldRef, err, path)}, Bubble: isNonNull(fieldDef.Type)}
		}
	}

	return absorbBubble(rc.completeValue(ctx, fieldDef.Type, group, value, path, parentType.Name, fieldName), fieldDef.Type)
}

// absorbBubble stops null propagation at the first type that can legally
// hold it: a Bubble produced underneath a type that is itself not NonNull
// is this unit's own business, not its caller's (spec.md §4.7 "nullability
// propagates to the nearest nullable parent" — t here is the full declared
// type of the field or list element this result belongs to, so "nearest
// nullable parent" is exactly "stop here if t isn't NonNull").
func absorbBubble(r result, t types.Type) result {
	if r.Bubble && !isNonNull(t) {
		return result{Value: nil, Errors: r.Errors}
	}
	return r
}

// invokeResolver recovers a panicking resolver at exactly this boundary
// (SPEC_FULL.md §7 "internal invariant violation ... converted to a located
// field error", the teacher's "never let one data-source panic escape a
// walk" pattern generalized from datasource fetches to resolver calls).
func (rc *requestCtx) invokeResolver(ctx context.Context, resolve types.FieldResolveFunc, source interface{}, args map[string]interface{}, info types.ResolveInfo) (value interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			rc.logger.Error(fmt.Sprintf("recovered panic in field resolver (correlation id %s)", rc.correlationID))
			err = errors.Wrapf(fmt.Errorf("%v", r), "internal error resolving field %q", info.FieldName)
		}
	}()
	return resolve(ctx, source, args, info)
}

func (rc *requestCtx) completeValue(ctx context.Context, t types.Type, group FieldGroup, value interface{}, path Path, ownerType, ownerField string) result {
	fieldRef := group.Fields[0]
	switch vt := t.(type) {
	case *types.NonNull:
		inner := rc.completeValue(ctx, vt.Type, group, value, path, ownerType, ownerField)
		if inner.Value == nil {
			errs := inner.Errors
			if !inner.Bubble {
				errs = append(errs, fieldErrorf(rc.doc, fieldRef, path, "Cannot return null for non-nullable field %s.%s.", ownerType, ownerField))
			}
			return result{Value: nil, Errors: errs, Bubble: true}
		}
		return inner

	case *types.List:
		if value == nil {
			return result{}
		}
		slice, ok := toSlice(value)
		if !ok {
			return result{Errors: []*FieldError{fieldErrorf(rc.doc, fieldRef, path, "Expected an iterable value for list field %q, got %T.", group.ResponseKey, value)}}
		}
		items := zipParallel(ctx, rc.concurrency, slice, func(ctx context.Context, i int, item interface{}) result {
			return absorbBubble(rc.completeValue(ctx, vt.Type, group, item, path.Append(i), ownerType, ownerField), vt.Type)
		})
		out := make([]interface{}, len(items))
		var errs []*FieldError
		bubble := false
		for i, r := range items {
			errs = append(errs, r.Errors...)
			if r.Bubble {
				bubble = true
			}
			out[i] = r.Value
		}
		if bubble {
			return result{Value: nil, Errors: errs, Bubble: true}
		}
		return result{Value: out, Errors: errs}

	case *types.Scalar, *types.Enum:
		if value == nil {
			return result{}
		}
		serialized, err := coercion.Serialize(t, value)
		if err != nil {
			return result{Errors: []*FieldError{locatedFieldError(rc.doc, fieldRef, err, path)}}
		}
		return result{Value: serialized}

	case *types.Object:
		if value == nil {
			return result{}
		}
		return rc.completeObjectValue(ctx, vt, value, group, path)

	case *types.Interface, *types.Union:
		if value == nil {
			return result{}
		}
		obj := rc.resolveAbstractType(t, value)
		if obj == nil {
			return result{Errors: []*FieldError{fieldErrorf(rc.doc, fieldRef, path, "Could not resolve the runtime type of abstract type %q for field %q.", types.NamedOf(t).TypeName(), group.ResponseKey)}}
		}
		return rc.completeObjectValue(ctx, obj, value, group, path)

	default:
		return result{Errors: []*FieldError{fieldErrorf(rc.doc, fieldRef, path, "Unknown output type at field %q.", group.ResponseKey)}}
	}
}

func (rc *requestCtx) completeObjectValue(ctx context.Context, objType *types.Object, value interface{}, group FieldGroup, path Path) result {
	subGroups := CollectSubFields(rc.doc, rc.schema, objType, group.Fields, rc.variableValues)
	return rc.executeGroupedFieldSet(ctx, objType, value, subGroups, path, false)
}

// resolveAbstractType uses the Interface/Union's ResolveType hook (spec.md
// §4.7 "resolve abstract type"); a hook returning a name the schema cannot
// map to an Object is treated the same as a missing hook — both are
// execution errors, not internal invariant violations, since a misbehaving
// user-supplied ResolveType is an ordinary runtime fault.
func (rc *requestCtx) resolveAbstractType(t types.Type, value interface{}) *types.Object {
	var resolve func(interface{}) string
	switch vt := t.(type) {
	case *types.Interface:
		resolve = vt.ResolveType
	case *types.Union:
		resolve = vt.ResolveType
	}
	if resolve == nil {
		return nil
	}
	name := resolve(value)
	obj, _ := rc.schema.TypeByName(name).(*types.Object)
	return obj
}

func isNonNull(t types.Type) bool {
	_, ok := t.(*types.NonNull)
	return ok
}

func toSlice(v interface{}) ([]interface{}, bool) {
	if s, ok := v.([]interface{}); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]interface{}, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	default:
		return nil, false
	}
}
