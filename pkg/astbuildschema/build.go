// Package astbuildschema builds a runtime types.Schema from a parsed SDL
// ast.Document (spec.md §6: "Schema [is] usually built once from an SDL
// document or programmatically"). It is the external collaborator pkg/types
// treats as opaque and the bridge pkg/astvalidation's own direct
// ast.Document-based schema lookups deliberately avoid depending on.
//
// Every named type is registered as a placeholder before any field, arg or
// interface list is resolved, and those lists are built as types.Thunk-backed
// lazy sets (via types.NewLazyNamedSet) closing over the placeholder map —
// the same "declare all types, then wire their fields lazily" two-pass shape
// graphql-js's buildASTSchema uses to support forward and mutually recursive
// type references, grounded on pkg/types' own Thunk/NamedSet generic
// memoization primitives built for exactly this (see DESIGN.md pkg/types).
package astbuildschema

import (
	"github.com/pkg/errors"

	"github.com/lexigraph/graphql/pkg/ast"
	"github.com/lexigraph/graphql/pkg/operationreport"
	"github.com/lexigraph/graphql/pkg/types"
)

// Build constructs a *types.Schema from doc, an SDL ast.Document. Resolver
// wiring (Field.Resolve, Scalar.Serialize, etc.) is left zero-valued; a
// caller that wants a fully executable schema should walk schema.Types()
// after Build returns and attach resolvers by name, matching the teacher's
// "build structurally, wire behavior afterward" split between
// asttransform's base schema and the engine/resolve package's runtime
// plumbing.
func Build(doc *ast.Document, report *operationreport.Report) *types.Schema {
	b := &builder{doc: doc, byName: make(map[string]types.NamedType)}
	b.declarePlaceholders()
	schema := b.buildSchema()
	if report != nil && len(b.errs) > 0 {
		for _, err := range b.errs {
			report.AddExternalError(operationreport.ExternalError{Message: err.Error()})
		}
	}
	return schema
}

type builder struct {
	doc    *ast.Document
	byName map[string]types.NamedType
	errs   []error
}

// seedBuiltinScalars registers the five always-available scalars so a
// reference to "String"/"Int"/"Float"/"Boolean"/"ID" resolves to the real
// types.String/types.Int/... singleton (with working Serialize/ParseValue)
// rather than to a nameless placeholder, even though the SDL document never
// declares a ScalarTypeDefinition for them.
func (b *builder) seedBuiltinScalars() {
	for _, s := range []*types.Scalar{types.Int, types.Float, types.String, types.Boolean, types.ID} {
		b.byName[s.Name] = s
	}
}

func (b *builder) declarePlaceholders() {
	b.seedBuiltinScalars()
	for i := range b.doc.ScalarTypeDefinitions {
		d := b.doc.ScalarTypeDefinitions[i]
		name := b.doc.Input.ByteSliceString(d.Name)
		b.byName[name] = &types.Scalar{Name: name, Desc: b.description(d.Description, d.HasDescription)}
	}
	for i := range b.doc.EnumTypeDefinitions {
		d := b.doc.EnumTypeDefinitions[i]
		name := b.doc.Input.ByteSliceString(d.Name)
		idx := i
		b.byName[name] = &types.Enum{
			Name: name,
			Desc: b.description(d.Description, d.HasDescription),
			Values: types.NewLazyNamedSet(func() []*types.EnumValue {
				return b.buildEnumValues(b.doc.EnumTypeDefinitions[idx].EnumValuesDefinition)
			}),
		}
	}
	for i := range b.doc.ObjectTypeDefinitions {
		d := b.doc.ObjectTypeDefinitions[i]
		name := b.doc.Input.ByteSliceString(d.Name)
		idx := i
		b.byName[name] = &types.Object{
			Name: name,
			Desc: b.description(d.Description, d.HasDescription),
			Interfaces: types.NewLazyNamedSet(func() []*types.Interface {
				return b.buildImplementedInterfaces(b.doc.ObjectTypeDefinitions[idx].ImplementsInterfaces)
			}),
			Fields: types.NewLazyNamedSet(func() []*types.Field {
				return b.buildFields(b.doc.ObjectTypeDefinitions[idx].FieldsDefinition)
			}),
		}
	}
	for i := range b.doc.InterfaceTypeDefinitions {
		d := b.doc.InterfaceTypeDefinitions[i]
		name := b.doc.Input.ByteSliceString(d.Name)
		idx := i
		b.byName[name] = &types.Interface{
			Name: name,
			Desc: b.description(d.Description, d.HasDescription),
			Interfaces: types.NewLazyNamedSet(func() []*types.Interface {
				return b.buildImplementedInterfaces(b.doc.InterfaceTypeDefinitions[idx].ImplementsInterfaces)
			}),
			Fields: types.NewLazyNamedSet(func() []*types.Field {
				return b.buildFields(b.doc.InterfaceTypeDefinitions[idx].FieldsDefinition)
			}),
		}
	}
	for i := range b.doc.UnionTypeDefinitions {
		d := b.doc.UnionTypeDefinitions[i]
		name := b.doc.Input.ByteSliceString(d.Name)
		idx := i
		b.byName[name] = &types.Union{
			Name: name,
			Desc: b.description(d.Description, d.HasDescription),
			Types: types.NewLazyNamedSet(func() []*types.Object {
				return b.buildUnionMembers(b.doc.UnionTypeDefinitions[idx].UnionMemberTypes)
			}),
		}
	}
	for i := range b.doc.InputObjectTypeDefinitions {
		d := b.doc.InputObjectTypeDefinitions[i]
		name := b.doc.Input.ByteSliceString(d.Name)
		idx := i
		b.byName[name] = &types.InputObject{
			Name: name,
			Desc: b.description(d.Description, d.HasDescription),
			Fields: types.NewLazyNamedSet(func() []*types.InputField {
				return b.buildInputFields(b.doc.InputObjectTypeDefinitions[idx].InputFieldsDefinition)
			}),
		}
	}
}

func (b *builder) description(ref ast.ByteSliceReference, has bool) string {
	if !has {
		return ""
	}
	return b.doc.Input.ByteSliceString(ref)
}

func (b *builder) resolveNamed(name string) types.NamedType {
	if t, ok := b.byName[name]; ok {
		return t
	}
	b.errs = append(b.errs, errors.Errorf("Unknown type %q.", name))
	return nil
}

func (b *builder) resolveType(t ast.Type) types.Type {
	switch t.Kind {
	case ast.TypeKindNonNull:
		inner, _ := b.doc.UnwrapNonNull(t)
		return &types.NonNull{Type: b.resolveType(inner)}
	case ast.TypeKindList:
		return &types.List{Type: b.resolveType(b.doc.ListTypes[t.Ref].Type)}
	case ast.TypeKindNamed:
		name := b.doc.Input.ByteSliceString(b.doc.NamedTypes[t.Ref].Name)
		if named := b.resolveNamed(name); named != nil {
			return named
		}
		return &types.Scalar{Name: name} // keep building with a stand-in so one bad reference doesn't cascade
	default:
		return nil
	}
}

func (b *builder) buildImplementedInterfaces(refs []ast.ByteSliceReference) []*types.Interface {
	out := make([]*types.Interface, 0, len(refs))
	for _, ref := range refs {
		name := b.doc.Input.ByteSliceString(ref)
		if iface, ok := b.resolveNamed(name).(*types.Interface); ok {
			out = append(out, iface)
		}
	}
	return out
}

func (b *builder) buildUnionMembers(refs []ast.ByteSliceReference) []*types.Object {
	out := make([]*types.Object, 0, len(refs))
	for _, ref := range refs {
		name := b.doc.Input.ByteSliceString(ref)
		if obj, ok := b.resolveNamed(name).(*types.Object); ok {
			out = append(out, obj)
		}
	}
	return out
}

func (b *builder) buildEnumValues(refs []int) []*types.EnumValue {
	out := make([]*types.EnumValue, 0, len(refs))
	for _, ref := range refs {
		d := b.doc.EnumValueDefinitions[ref]
		name := b.doc.Input.ByteSliceString(d.EnumValue)
		out = append(out, &types.EnumValue{
			Name:  name,
			Value: name,
			Desc:  b.description(d.Description, d.HasDescription),
		})
	}
	return out
}

func (b *builder) buildFields(refs []int) []*types.Field {
	out := make([]*types.Field, 0, len(refs))
	for _, ref := range refs {
		d := b.doc.FieldDefinitions[ref]
		argsDef := d.ArgumentsDefinition
		out = append(out, &types.Field{
			Name: b.doc.Input.ByteSliceString(d.Name),
			Desc: b.description(d.Description, d.HasDescription),
			Type: b.resolveType(d.Type),
			Args: types.NewNamedSet(b.buildArguments(argsDef)),
		})
	}
	return out
}

func (b *builder) buildArguments(refs []int) []*types.Argument {
	out := make([]*types.Argument, 0, len(refs))
	for _, ref := range refs {
		d := b.doc.InputValueDefinitions[ref]
		out = append(out, &types.Argument{
			Name:         b.doc.Input.ByteSliceString(d.Name),
			Desc:         b.description(d.Description, d.HasDescription),
			Type:         b.resolveType(d.Type),
			DefaultValue: b.literalValue(d.DefaultValue),
			HasDefault:   d.HasDefaultValue,
		})
	}
	return out
}

func (b *builder) buildInputFields(refs []int) []*types.InputField {
	out := make([]*types.InputField, 0, len(refs))
	for _, ref := range refs {
		d := b.doc.InputValueDefinitions[ref]
		out = append(out, &types.InputField{
			Name:         b.doc.Input.ByteSliceString(d.Name),
			Desc:         b.description(d.Description, d.HasDescription),
			Type:         b.resolveType(d.Type),
			DefaultValue: b.literalValue(d.DefaultValue),
			HasDefault:   d.HasDefaultValue,
		})
	}
	return out
}

// literalValue renders an SDL default-value literal into a plain Go value,
// mirroring pkg/coercion's own literal handling but intentionally
// unexported and unexposed: a default value exists only to seed coercion
// when an argument/variable is entirely absent, never as a value coercion
// itself reasons about structurally.
func (b *builder) literalValue(v ast.Value) interface{} {
	switch v.Kind {
	case ast.ValueKindInt:
		return b.doc.Input.ByteSliceString(b.doc.IntValues[v.Ref].Raw)
	case ast.ValueKindFloat:
		return b.doc.Input.ByteSliceString(b.doc.FloatValues[v.Ref].Raw)
	case ast.ValueKindString:
		return b.doc.Input.ByteSliceString(b.doc.StringValues[v.Ref].Content)
	case ast.ValueKindBoolean:
		return b.doc.BooleanValues[v.Ref].Value
	case ast.ValueKindEnum:
		return b.doc.Input.ByteSliceString(b.doc.EnumValues[v.Ref].Name)
	case ast.ValueKindNull:
		return nil
	case ast.ValueKindList:
		items := b.doc.ListValues[v.Ref].Values
		out := make([]interface{}, len(items))
		for i, item := range items {
			out[i] = b.literalValue(item)
		}
		return out
	case ast.ValueKindObject:
		fields := b.doc.ObjectValues[v.Ref].Fields
		out := make(map[string]interface{}, len(fields))
		for _, fRef := range fields {
			of := b.doc.ObjectFields[fRef]
			out[b.doc.Input.ByteSliceString(of.Name)] = b.literalValue(of.Value)
		}
		return out
	default:
		return nil
	}
}

func (b *builder) buildDirectives() []*types.Directive {
	out := make([]*types.Directive, 0, len(b.doc.DirectiveDefinitions))
	for i := range b.doc.DirectiveDefinitions {
		d := b.doc.DirectiveDefinitions[i]
		name := b.doc.Input.ByteSliceString(d.Name)
		if name == "skip" || name == "include" || name == "deprecated" {
			continue // built into every types.Schema by NewSchema; avoid a duplicate
		}
		locs := make([]types.DirectiveLocation, 0, len(d.DirectiveLocations))
		for _, l := range d.DirectiveLocations {
			locs = append(locs, types.DirectiveLocation(l))
		}
		out = append(out, &types.Directive{
			Name:       name,
			Desc:       b.description(d.Description, d.HasDescription),
			Args:       types.NewNamedSet(b.buildArguments(d.ArgumentsDefinition)),
			Locations:  locs,
			Repeatable: d.Repeatable,
		})
	}
	return out
}

func (b *builder) buildSchema() *types.Schema {
	var query, mutation, subscription *types.Object
	if name, ok := b.doc.RootOperationTypeName(ast.OperationTypeQuery); ok {
		query, _ = b.resolveNamed(name).(*types.Object)
	}
	if name, ok := b.doc.RootOperationTypeName(ast.OperationTypeMutation); ok {
		mutation, _ = b.resolveNamed(name).(*types.Object)
	}
	if name, ok := b.doc.RootOperationTypeName(ast.OperationTypeSubscription); ok {
		subscription, _ = b.resolveNamed(name).(*types.Object)
	}

	extra := make([]types.NamedType, 0, len(b.byName))
	for _, t := range b.byName {
		extra = append(extra, t)
	}

	return types.NewSchema(query, mutation, subscription, extra, b.buildDirectives())
}
