package astvalidation

import "github.com/lexigraph/graphql/pkg/ast"

// knownTypeNamesRule rejects a variable declaration or fragment type
// condition naming a type absent from the schema entirely (spec.md §4.5
// "known-type-names") — distinct from fragmentsOnCompositeTypesRule, which
// assumes the name exists and only checks its kind.
type knownTypeNamesRule struct{ ctx *ValidationContext }

func (r *knownTypeNamesRule) EnterVariableDefinition(ref int) {
	name := r.ctx.Operation.NamedTypeName(r.ctx.Operation.VariableDefinitions[ref].Type)
	if !r.ctx.typeExists(name) {
		r.ctx.reportf("Unknown type %q.", name)
	}
}

func (r *knownTypeNamesRule) EnterFragmentDefinition(ref int) {
	name := r.ctx.Operation.Input.ByteSliceString(r.ctx.Operation.FragmentDefinitions[ref].TypeCondition.Name)
	if !r.ctx.typeExists(name) {
		r.ctx.reportf("Unknown type %q.", name)
	}
}

func (r *knownTypeNamesRule) EnterInlineFragment(ref int) {
	inf := r.ctx.Operation.InlineFragments[ref]
	if !inf.HasTypeCondition {
		return
	}
	name := r.ctx.Operation.Input.ByteSliceString(inf.TypeCondition.Name)
	if !r.ctx.typeExists(name) {
		r.ctx.reportf("Unknown type %q.", name)
	}
}

func (c *ValidationContext) typeExists(name string) bool {
	switch name {
	case "Int", "Float", "String", "Boolean", "ID":
		return true
	}
	s := c.Schema
	return s.ObjectTypeDefinitionByName(name) != -1 ||
		s.InterfaceTypeDefinitionByName(name) != -1 ||
		s.UnionTypeDefinitionByName(name) != -1 ||
		s.EnumTypeDefinitionByName(name) != -1 ||
		s.ScalarTypeDefinitionByName(name) != -1 ||
		s.InputObjectTypeDefinitionByName(name) != -1
}

// uniqueInputFieldNamesRule rejects an input object literal that sets the
// same field twice (spec.md §4.5 "unique-input-field-names"): whichever
// occurrence coercion picked would silently discard the other.
type uniqueInputFieldNamesRule struct{ ctx *ValidationContext }

func (r *uniqueInputFieldNamesRule) EnterArgument(ref int) {
	r.checkValue(r.ctx.Operation.Arguments[ref].Value)
}

func (r *uniqueInputFieldNamesRule) checkValue(v ast.Value) {
	doc := r.ctx.Operation
	switch v.Kind {
	case ast.ValueKindList:
		for _, item := range doc.ListValues[v.Ref].Values {
			r.checkValue(item)
		}
	case ast.ValueKindObject:
		seen := make(map[string]bool)
		for _, fRef := range doc.ObjectValues[v.Ref].Fields {
			of := doc.ObjectFields[fRef]
			name := doc.Input.ByteSliceString(of.Name)
			if seen[name] {
				r.ctx.reportf("There can be only one input field named %q.", name)
				continue
			}
			seen[name] = true
			r.checkValue(of.Value)
		}
	}
}

// valuesOfCorrectTypeRule rejects a literal argument value whose shape
// cannot satisfy the argument's declared type: an enum literal naming an
// unknown enum value, a list literal where a scalar was expected without a
// wrapping list, an input object literal missing a required field or
// setting a field the input type never declared, or a `null` literal where
// the type is NonNull (spec.md §4.5 "values-of-correct-type"). Variable
// references are exempted here — their runtime value is checked against
// the argument type during coercion (spec.md §4.6), not during static
// validation, since a variable's value isn't known until execution time.
type valuesOfCorrectTypeRule struct{ ctx *ValidationContext }

func (r *valuesOfCorrectTypeRule) EnterField(ref int) {
	fdRef := r.ctx.fieldDefinitionFor(ref)
	if fdRef == -1 {
		return
	}
	r.checkArgs(r.ctx.Operation.Fields[ref].Arguments, r.ctx.Schema.FieldDefinitions[fdRef].ArgumentsDefinition)
}

func (r *valuesOfCorrectTypeRule) EnterDirective(ref int) {
	ddRef := r.ctx.Schema.DirectiveDefinitionByName(r.ctx.Operation.DirectiveNameString(ref))
	if ddRef == -1 {
		return
	}
	r.checkArgs(r.ctx.Operation.Directives[ref].Arguments, r.ctx.Schema.DirectiveDefinitions[ddRef].ArgumentsDefinition)
}

func (r *valuesOfCorrectTypeRule) checkArgs(argRefs []int, argsDef []int) {
	for _, argRef := range argRefs {
		arg := r.ctx.Operation.Arguments[argRef]
		name := r.ctx.Operation.Input.ByteSliceString(arg.Name)
		ivRef := r.ctx.Schema.InputValueDefinitionByName(argsDef, name)
		if ivRef == -1 {
			continue // knownArgumentNamesRule already reports this
		}
		r.checkValue(arg.Value, r.ctx.Schema.InputValueDefinitions[ivRef].Type, name)
	}
}

func (r *valuesOfCorrectTypeRule) checkValue(v ast.Value, t ast.Type, argName string) {
	doc := r.ctx.Operation
	schema := r.ctx.Schema

	if v.Kind == ast.ValueKindVariable {
		return
	}

	if t.Kind == ast.TypeKindNonNull {
		if v.Kind == ast.ValueKindNull {
			r.ctx.reportf("Argument %q has invalid value: expected %s, found null.", argName, schema.PrintType(t))
			return
		}
		inner, _ := schema.UnwrapNonNull(t)
		r.checkValue(v, inner, argName)
		return
	}
	if v.Kind == ast.ValueKindNull {
		return
	}

	if t.Kind == ast.TypeKindList {
		if v.Kind != ast.ValueKindList {
			// GraphQL allows a bare value to coerce into a single-element list.
			r.checkValue(v, schema.ListTypes[t.Ref].Type, argName)
			return
		}
		for _, item := range doc.ListValues[v.Ref].Values {
			r.checkValue(item, schema.ListTypes[t.Ref].Type, argName)
		}
		return
	}

	typeName := schema.NamedTypeName(t)
	switch {
	case v.Kind == ast.ValueKindEnum:
		evRef := schema.EnumTypeDefinitionByName(typeName)
		if evRef == -1 {
			r.ctx.reportf("Argument %q has invalid value: enum value given for non-enum type %q.", argName, typeName)
			return
		}
		name := doc.Input.ByteSliceString(doc.EnumValues[v.Ref].Name)
		if !enumHasValue(schema, evRef, name) {
			r.ctx.reportf("Argument %q has invalid value: %q is not a valid value for enum %q.", argName, name, typeName)
		}
	case v.Kind == ast.ValueKindObject:
		ioRef := schema.InputObjectTypeDefinitionByName(typeName)
		if ioRef == -1 {
			r.ctx.reportf("Argument %q has invalid value: object literal given for non-input-object type %q.", argName, typeName)
			return
		}
		r.checkInputObject(v, schema.InputObjectTypeDefinitions[ioRef], argName)
	default:
		if !scalarLiteralMatches(typeName, v.Kind) {
			r.ctx.reportf("Argument %q has invalid value: expected type %q.", argName, typeName)
		}
	}
}

func (r *valuesOfCorrectTypeRule) checkInputObject(v ast.Value, io ast.InputObjectTypeDefinition, argName string) {
	doc := r.ctx.Operation
	schema := r.ctx.Schema

	provided := make(map[string]ast.Value)
	for _, fRef := range doc.ObjectValues[v.Ref].Fields {
		of := doc.ObjectFields[fRef]
		provided[doc.Input.ByteSliceString(of.Name)] = of.Value
	}
	for name, val := range provided {
		ivRef := schema.InputValueDefinitionByName(io.InputFieldsDefinition, name)
		if ivRef == -1 {
			r.ctx.reportf("Argument %q has invalid value: field %q is not defined on input type %q.",
				argName, name, schema.Input.ByteSliceString(io.Name))
			continue
		}
		r.checkValue(val, schema.InputValueDefinitions[ivRef].Type, argName)
	}
	for _, ivRef := range io.InputFieldsDefinition {
		iv := schema.InputValueDefinitions[ivRef]
		if iv.Type.Kind != ast.TypeKindNonNull || iv.HasDefaultValue {
			continue
		}
		name := schema.Input.ByteSliceString(iv.Name)
		if _, ok := provided[name]; !ok {
			r.ctx.reportf("Argument %q has invalid value: field %q of required type %s was not provided.",
				argName, name, schema.PrintType(iv.Type))
		}
	}
}

func enumHasValue(schema *ast.Document, enumRef int, name string) bool {
	for _, evRef := range schema.EnumTypeDefinitions[enumRef].EnumValuesDefinition {
		if schema.Input.ByteSliceString(schema.EnumValueDefinitions[evRef].EnumValue) == name {
			return true
		}
	}
	return false
}

// scalarLiteralMatches reports whether a literal of kind k is an acceptable
// shape for built-in scalar typeName. Custom scalars accept any literal
// shape here — their own coercion function (spec.md §4.6) is the real
// gatekeeper, executed later through types.Scalar's ParseValue.
func scalarLiteralMatches(typeName string, k ast.ValueKind) bool {
	switch typeName {
	case "Int":
		return k == ast.ValueKindInt
	case "Float":
		return k == ast.ValueKindInt || k == ast.ValueKindFloat
	case "String", "ID":
		return k == ast.ValueKindString || (typeName == "ID" && k == ast.ValueKindInt)
	case "Boolean":
		return k == ast.ValueKindBoolean
	default:
		return true
	}
}
