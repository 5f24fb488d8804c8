package astvalidation

import "github.com/lexigraph/graphql/pkg/ast"

// overlappingFieldsCanBeMergeRule rejects two fields in the same selection
// set that respond under the same key but cannot be merged into one
// response value (spec.md §4.5 "overlapping-fields-can-be-merged"). The
// full algorithm also reasons about fields reached through different
// fragments/type conditions; this covers the directly-selected case every
// implementation treats as the common path: two sibling fields sharing a
// response key must call the same field name with the same arguments.
type overlappingFieldsCanBeMergeRule struct{ ctx *ValidationContext }

type fieldShape struct {
	fieldName string
	argsKey   string
}

func (r *overlappingFieldsCanBeMergeRule) EnterSelectionSet(set int) {
	doc := r.ctx.Operation
	seen := make(map[string]fieldShape)
	for _, sel := range doc.SelectionSets[set].SelectionRefs {
		if sel.Kind != ast.SelectionKindField {
			continue
		}
		responseKey := doc.FieldResponseKey(sel.Ref)
		shape := fieldShape{
			fieldName: doc.FieldNameString(sel.Ref),
			argsKey:   r.argsKey(doc.Fields[sel.Ref].Arguments),
		}
		if prior, ok := seen[responseKey]; ok {
			if prior.fieldName != shape.fieldName {
				r.ctx.reportf("Fields %q conflict because %s and %s are different fields.", responseKey, prior.fieldName, shape.fieldName)
			} else if prior.argsKey != shape.argsKey {
				r.ctx.reportf("Fields %q conflict because they have differing arguments.", responseKey)
			}
			continue
		}
		seen[responseKey] = shape
	}
}

func (r *overlappingFieldsCanBeMergeRule) argsKey(argRefs []int) string {
	doc := r.ctx.Operation
	key := ""
	for _, argRef := range argRefs {
		arg := doc.Arguments[argRef]
		key += doc.Input.ByteSliceString(arg.Name) + ":" + valueKey(doc, arg.Value) + ";"
	}
	return key
}

// valueKey renders a literal Value into a comparable string. Two arguments
// are only the "same" for merge purposes if their literal shapes are
// identical; a variable reference is keyed by name, not by runtime value,
// which matches the GraphQL spec's "identical" requirement being about the
// syntactic argument, not its resolved value.
func valueKey(doc *ast.Document, v ast.Value) string {
	switch v.Kind {
	case ast.ValueKindVariable:
		return "$" + doc.Input.ByteSliceString(doc.VariableValues[v.Ref].Name)
	case ast.ValueKindInt:
		return doc.Input.ByteSliceString(doc.IntValues[v.Ref].Raw)
	case ast.ValueKindFloat:
		return doc.Input.ByteSliceString(doc.FloatValues[v.Ref].Raw)
	case ast.ValueKindString:
		return "\"" + doc.Input.ByteSliceString(doc.StringValues[v.Ref].Content) + "\""
	case ast.ValueKindBoolean:
		if doc.BooleanValues[v.Ref].Value {
			return "true"
		}
		return "false"
	case ast.ValueKindNull:
		return "null"
	case ast.ValueKindEnum:
		return doc.Input.ByteSliceString(doc.EnumValues[v.Ref].Name)
	case ast.ValueKindList:
		out := "["
		for _, item := range doc.ListValues[v.Ref].Values {
			out += valueKey(doc, item) + ","
		}
		return out + "]"
	case ast.ValueKindObject:
		out := "{"
		for _, fRef := range doc.ObjectValues[v.Ref].Fields {
			of := doc.ObjectFields[fRef]
			out += doc.Input.ByteSliceString(of.Name) + ":" + valueKey(doc, of.Value) + ","
		}
		return out + "}"
	default:
		return ""
	}
}
