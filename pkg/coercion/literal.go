package coercion

import (
	"strconv"

	"github.com/lexigraph/graphql/pkg/ast"
	"github.com/lexigraph/graphql/pkg/types"
)

// literalToGo converts an AST literal value from doc into a plain Go value
// (string/float64/int64/bool/nil/[]interface{}/map[string]interface{}),
// resolving variable references against variableValues. This mirrors
// graphql-js's valueFromASTUntyped: the result is then run through the same
// coerceValue used for externally supplied JSON variables, so a custom
// scalar without a dedicated literal-parsing hook still gets a sensible
// value — the one simplification this package makes against spec.md §4.6's
// "call parse_literal (for AST literals)" wording, noted in DESIGN.md.
func literalToGo(doc *ast.Document, v ast.Value, variableValues map[string]interface{}) interface{} {
	switch v.Kind {
	case ast.ValueKindVariable:
		name := doc.Input.ByteSliceString(doc.VariableValues[v.Ref].Name)
		if val, ok := variableValues[name]; ok {
			return val
		}
		return types.Undefined
	case ast.ValueKindInt:
		text := doc.Input.ByteSliceString(doc.IntValues[v.Ref].Raw)
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return types.Undefined
		}
		return n
	case ast.ValueKindFloat:
		text := doc.Input.ByteSliceString(doc.FloatValues[v.Ref].Raw)
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return types.Undefined
		}
		return f
	case ast.ValueKindString:
		return doc.Input.ByteSliceString(doc.StringValues[v.Ref].Content)
	case ast.ValueKindBoolean:
		return doc.BooleanValues[v.Ref].Value
	case ast.ValueKindNull:
		return nil
	case ast.ValueKindEnum:
		return doc.Input.ByteSliceString(doc.EnumValues[v.Ref].Name)
	case ast.ValueKindList:
		items := doc.ListValues[v.Ref].Values
		out := make([]interface{}, len(items))
		for i, item := range items {
			out[i] = literalToGo(doc, item, variableValues)
		}
		return out
	case ast.ValueKindObject:
		fieldRefs := doc.ObjectValues[v.Ref].Fields
		out := make(map[string]interface{}, len(fieldRefs))
		for _, fRef := range fieldRefs {
			f := doc.ObjectFields[fRef]
			out[doc.Input.ByteSliceString(f.Name)] = literalToGo(doc, f.Value, variableValues)
		}
		return out
	default:
		return types.Undefined
	}
}

// resolveASTType maps an ast.Type (as declared on a VariableDefinition in
// an executable document) to the equivalent types.Type already registered
// on schema, wrapping List/NonNull exactly as the AST type nests them.
func resolveASTType(schema *types.Schema, doc *ast.Document, t ast.Type) types.Type {
	switch t.Kind {
	case ast.TypeKindNonNull:
		inner, _ := doc.UnwrapNonNull(t)
		return &types.NonNull{Type: resolveASTType(schema, doc, inner)}
	case ast.TypeKindList:
		return &types.List{Type: resolveASTType(schema, doc, doc.ListTypes[t.Ref].Type)}
	case ast.TypeKindNamed:
		name := doc.Input.ByteSliceString(doc.NamedTypes[t.Ref].Name)
		return schema.TypeByName(name)
	default:
		return nil
	}
}
