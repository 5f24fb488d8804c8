package astvalidation

import "github.com/lexigraph/graphql/pkg/ast"

// fieldsOnCorrectTypeRule rejects a field selected against a type that
// doesn't declare it (spec.md §4.5 "fields-on-correct-type"). `__typename`
// is exempted: it is an implicit meta-field present on every composite
// type, never listed in a FieldsDefinition.
type fieldsOnCorrectTypeRule struct{ ctx *ValidationContext }

func (r *fieldsOnCorrectTypeRule) EnterField(ref int) {
	enclosing := r.ctx.Walker.EnclosingTypeDefinition
	if enclosing.Kind == ast.NodeKindUnknown {
		return // no schema cross-reference available; nothing to check against
	}
	name := r.ctx.Operation.FieldNameString(ref)
	if name == "__typename" {
		return
	}
	fieldsDef := r.ctx.Walker.FieldsDefinitionOf(enclosing)
	if fieldsDef == nil {
		r.ctx.reportf("Cannot query field %q on type %q.", name, r.ctx.enclosingTypeName(enclosing))
		return
	}
	if r.ctx.Schema.FieldDefinitionByName(fieldsDef, name) == -1 {
		r.ctx.reportf("Cannot query field %q on type %q.", name, r.ctx.enclosingTypeName(enclosing))
	}
}

func (c *ValidationContext) enclosingTypeName(n ast.Node) string {
	switch n.Kind {
	case ast.NodeKindObjectTypeDefinition:
		return c.Schema.Input.ByteSliceString(c.Schema.ObjectTypeDefinitions[n.Ref].Name)
	case ast.NodeKindInterfaceTypeDefinition:
		return c.Schema.Input.ByteSliceString(c.Schema.InterfaceTypeDefinitions[n.Ref].Name)
	case ast.NodeKindUnionTypeDefinition:
		return c.Schema.Input.ByteSliceString(c.Schema.UnionTypeDefinitions[n.Ref].Name)
	case ast.NodeKindEnumTypeDefinition:
		return c.Schema.Input.ByteSliceString(c.Schema.EnumTypeDefinitions[n.Ref].Name)
	case ast.NodeKindScalarTypeDefinition:
		return c.Schema.Input.ByteSliceString(c.Schema.ScalarTypeDefinitions[n.Ref].Name)
	case ast.NodeKindInputObjectTypeDefinition:
		return c.Schema.Input.ByteSliceString(c.Schema.InputObjectTypeDefinitions[n.Ref].Name)
	default:
		return "<unknown>"
	}
}

// fieldDefinitionFor resolves ref's FieldDefinition against the current
// enclosing type, or -1 if either the enclosing type or the field itself is
// unresolvable — the shared lookup behind scalarLeafsRule,
// knownArgumentNamesRule and the other rules that need a field's
// definition.
func (c *ValidationContext) fieldDefinitionFor(fieldRef int) int {
	enclosing := c.Walker.EnclosingTypeDefinition
	if enclosing.Kind == ast.NodeKindUnknown {
		return -1
	}
	fieldsDef := c.Walker.FieldsDefinitionOf(enclosing)
	if fieldsDef == nil {
		return -1
	}
	return c.Schema.FieldDefinitionByName(fieldsDef, c.Operation.FieldNameString(fieldRef))
}

// scalarLeafsRule enforces that a field returning a scalar or enum has no
// selection set, and a field returning a composite type has one (spec.md
// §4.5 "scalar-leafs"): otherwise the response shape a client expects
// cannot be built.
type scalarLeafsRule struct{ ctx *ValidationContext }

func (r *scalarLeafsRule) EnterField(ref int) {
	name := r.ctx.Operation.FieldNameString(ref)
	if name == "__typename" {
		if r.ctx.Operation.Fields[ref].HasSelectionSet {
			r.ctx.reportf("Field %q must not have a selection since type String has no subfields.", name)
		}
		return
	}
	fdRef := r.ctx.fieldDefinitionFor(ref)
	if fdRef == -1 {
		return
	}
	returnNode := r.ctx.Walker.ResolveNamedTypeNode(r.ctx.Schema.FieldDefinitions[fdRef].Type)
	isLeaf := returnNode.Kind == ast.NodeKindScalarTypeDefinition || returnNode.Kind == ast.NodeKindEnumTypeDefinition
	switch r.ctx.Schema.NamedTypeName(r.ctx.Schema.FieldDefinitions[fdRef].Type) {
	case "Int", "Float", "String", "Boolean", "ID":
		isLeaf = true // built-in scalars need no SDL declaration
	}
	hasSel := r.ctx.Operation.Fields[ref].HasSelectionSet
	typeName := r.ctx.Schema.PrintType(r.ctx.Schema.FieldDefinitions[fdRef].Type)
	if isLeaf && hasSel {
		r.ctx.reportf("Field %q must not have a selection since type %s has no subfields.", name, typeName)
	}
	if !isLeaf && !hasSel {
		r.ctx.reportf("Field %q of type %s must have a selection of subfields.", name, typeName)
	}
}

// knownArgumentNamesRule rejects an argument name the called field or
// directive never declares (spec.md §4.5 "known-argument-names").
type knownArgumentNamesRule struct{ ctx *ValidationContext }

func (r *knownArgumentNamesRule) EnterField(ref int) {
	fdRef := r.ctx.fieldDefinitionFor(ref)
	if fdRef == -1 {
		return
	}
	fieldName := r.ctx.Operation.FieldNameString(ref)
	argsDef := r.ctx.Schema.FieldDefinitions[fdRef].ArgumentsDefinition
	for _, argRef := range r.ctx.Operation.Fields[ref].Arguments {
		argName := r.ctx.Operation.Input.ByteSliceString(r.ctx.Operation.Arguments[argRef].Name)
		if r.ctx.Schema.InputValueDefinitionByName(argsDef, argName) == -1 {
			r.ctx.reportf("Unknown argument %q on field %q.", argName, fieldName)
		}
	}
}

func (r *knownArgumentNamesRule) EnterDirective(ref int) {
	dirName := r.ctx.Operation.DirectiveNameString(ref)
	ddRef := r.ctx.Schema.DirectiveDefinitionByName(dirName)
	if ddRef == -1 {
		return // knownDirectiveNamesRule already reports this
	}
	argsDef := r.ctx.Schema.DirectiveDefinitions[ddRef].ArgumentsDefinition
	for _, argRef := range r.ctx.Operation.Directives[ref].Arguments {
		argName := r.ctx.Operation.Input.ByteSliceString(r.ctx.Operation.Arguments[argRef].Name)
		if r.ctx.Schema.InputValueDefinitionByName(argsDef, argName) == -1 {
			r.ctx.reportf("Unknown argument %q on directive %q.", argName, dirName)
		}
	}
}

// uniqueArgumentNamesRule rejects the same argument name passed twice to one
// field or directive (spec.md §4.5 "unique-argument-names"). A field set
// twice inside an input object literal is uniqueInputFieldNamesRule's check.
type uniqueArgumentNamesRule struct{ ctx *ValidationContext }

func (r *uniqueArgumentNamesRule) EnterField(ref int) {
	r.check(r.ctx.Operation.Fields[ref].Arguments, "field", r.ctx.Operation.FieldNameString(ref))
}

func (r *uniqueArgumentNamesRule) EnterDirective(ref int) {
	r.check(r.ctx.Operation.Directives[ref].Arguments, "directive", r.ctx.Operation.DirectiveNameString(ref))
}

func (r *uniqueArgumentNamesRule) check(argRefs []int, ownerKind, ownerName string) {
	seen := make(map[string]bool, len(argRefs))
	for _, argRef := range argRefs {
		name := r.ctx.Operation.Input.ByteSliceString(r.ctx.Operation.Arguments[argRef].Name)
		if seen[name] {
			r.ctx.reportf("There can be only one argument named %q on %s %q.", name, ownerKind, ownerName)
			continue
		}
		seen[name] = true
	}
}

// requiredArgumentsProvidedRule rejects a field or directive invocation
// missing an argument whose definition is NonNull with no default (spec.md
// §4.5 "required-arguments-provided").
type requiredArgumentsProvidedRule struct{ ctx *ValidationContext }

func (r *requiredArgumentsProvidedRule) EnterField(ref int) {
	fdRef := r.ctx.fieldDefinitionFor(ref)
	if fdRef == -1 {
		return
	}
	provided := make(map[string]bool, len(r.ctx.Operation.Fields[ref].Arguments))
	for _, argRef := range r.ctx.Operation.Fields[ref].Arguments {
		provided[r.ctx.Operation.Input.ByteSliceString(r.ctx.Operation.Arguments[argRef].Name)] = true
	}
	fieldName := r.ctx.Operation.FieldNameString(ref)
	for _, ivRef := range r.ctx.Schema.FieldDefinitions[fdRef].ArgumentsDefinition {
		iv := r.ctx.Schema.InputValueDefinitions[ivRef]
		if iv.Type.Kind != ast.TypeKindNonNull || iv.HasDefaultValue {
			continue
		}
		name := r.ctx.Schema.Input.ByteSliceString(iv.Name)
		if !provided[name] {
			r.ctx.reportf("Field %q argument %q of type %s is required, but it was not provided.",
				fieldName, name, r.ctx.Schema.PrintType(iv.Type))
		}
	}
}

// fragmentsOnCompositeTypesRule rejects a fragment (named or inline) whose
// type condition names a scalar, enum or input object (spec.md §4.5
// "fragments-on-composite-types"): a selection set only makes sense against
// an object, interface or union.
type fragmentsOnCompositeTypesRule struct{ ctx *ValidationContext }

func (r *fragmentsOnCompositeTypesRule) EnterFragmentDefinition(ref int) {
	fd := r.ctx.Operation.FragmentDefinitions[ref]
	name := r.ctx.Operation.Input.ByteSliceString(fd.Name)
	typeName := r.ctx.Operation.Input.ByteSliceString(fd.TypeCondition.Name)
	if !r.ctx.isCompositeTypeName(typeName) {
		r.ctx.reportf("Fragment %q cannot condition on non composite type %q.", name, typeName)
	}
}

func (r *fragmentsOnCompositeTypesRule) EnterInlineFragment(ref int) {
	inf := r.ctx.Operation.InlineFragments[ref]
	if !inf.HasTypeCondition {
		return
	}
	typeName := r.ctx.Operation.Input.ByteSliceString(inf.TypeCondition.Name)
	if !r.ctx.isCompositeTypeName(typeName) {
		r.ctx.reportf("Fragment cannot condition on non composite type %q.", typeName)
	}
}

func (c *ValidationContext) isCompositeTypeName(name string) bool {
	if c.Schema.ObjectTypeDefinitionByName(name) != -1 {
		return true
	}
	if c.Schema.InterfaceTypeDefinitionByName(name) != -1 {
		return true
	}
	if c.Schema.UnionTypeDefinitionByName(name) != -1 {
		return true
	}
	return false
}
