package astvalidation

import "github.com/lexigraph/graphql/pkg/ast"

// variableUsagesAllowedRule rejects a variable used where its declared type
// cannot satisfy the location's expected type (spec.md §4.5
// "variable-usages-allowed"): e.g. a `$id: ID` variable passed to an
// argument typed `ID!` with no default value anywhere to fall back on.
type variableUsagesAllowedRule struct {
	ctx         *ValidationContext
	varTypes    map[string]ast.Type
	varDefaults map[string]bool
}

func (r *variableUsagesAllowedRule) EnterOperationDefinition(ref int) {
	r.varTypes = make(map[string]ast.Type)
	r.varDefaults = make(map[string]bool)
	doc := r.ctx.Operation
	for _, vdRef := range doc.OperationDefinitions[ref].VariableDefinitions {
		vd := doc.VariableDefinitions[vdRef]
		name := doc.Input.ByteSliceString(vd.VariableName)
		r.varTypes[name] = vd.Type
		r.varDefaults[name] = vd.HasDefaultValue && vd.DefaultValue.Kind != ast.ValueKindNull
	}
}

func (r *variableUsagesAllowedRule) EnterField(ref int) {
	fdRef := r.ctx.fieldDefinitionFor(ref)
	if fdRef == -1 {
		return
	}
	argsDef := r.ctx.Schema.FieldDefinitions[fdRef].ArgumentsDefinition
	r.checkArgs(r.ctx.Operation.Fields[ref].Arguments, argsDef)
}

func (r *variableUsagesAllowedRule) EnterDirective(ref int) {
	ddRef := r.ctx.Schema.DirectiveDefinitionByName(r.ctx.Operation.DirectiveNameString(ref))
	if ddRef == -1 {
		return
	}
	r.checkArgs(r.ctx.Operation.Directives[ref].Arguments, r.ctx.Schema.DirectiveDefinitions[ddRef].ArgumentsDefinition)
}

func (r *variableUsagesAllowedRule) checkArgs(argRefs, argsDef []int) {
	doc := r.ctx.Operation
	for _, argRef := range argRefs {
		arg := doc.Arguments[argRef]
		if arg.Value.Kind != ast.ValueKindVariable {
			continue
		}
		varName := doc.Input.ByteSliceString(doc.VariableValues[arg.Value.Ref].Name)
		varType, ok := r.varTypes[varName]
		if !ok {
			continue // not declared on this operation; a different rule catches that elsewhere
		}
		argName := doc.Input.ByteSliceString(arg.Name)
		ivRef := r.ctx.Schema.InputValueDefinitionByName(argsDef, argName)
		if ivRef == -1 {
			continue
		}
		locationType := r.ctx.Schema.InputValueDefinitions[ivRef].Type
		locationHasDefault := r.ctx.Schema.InputValueDefinitions[ivRef].HasDefaultValue
		if !r.ctx.isVariableUsageAllowed(varType, r.varDefaults[varName], locationType, locationHasDefault) {
			r.ctx.reportf("Variable %q of type %q used in position expecting type %q.",
				varName, doc.PrintType(varType), r.ctx.Schema.PrintType(locationType))
		}
	}
}

// isVariableUsageAllowed implements graphql-js's allowedVariableUsage: a
// nullable variable may still satisfy a NonNull location if either side
// supplies a non-null default, since the effective value received is then
// never actually null.
func (c *ValidationContext) isVariableUsageAllowed(varType ast.Type, varHasNonNullDefault bool, locationType ast.Type, locationHasDefault bool) bool {
	if locationType.Kind == ast.TypeKindNonNull && varType.Kind != ast.TypeKindNonNull {
		if !varHasNonNullDefault && !locationHasDefault {
			return false
		}
		nullableLocation, _ := c.Schema.UnwrapNonNull(locationType)
		return c.isASTSubType(varType, nullableLocation)
	}
	return c.isASTSubType(varType, locationType)
}

// isASTSubType mirrors types.IsTypeSubTypeOf over the raw SDL ast.Type
// representation, since variable usage checking runs before any
// types.Schema exists. sub is resolved against c.Operation (a variable's
// declared type lives in the executable document's own type arena) while
// super is resolved against c.Schema (an argument/input-field's declared
// type lives in the SDL document's type arena) — the two Type{Kind,Ref}
// values are never interchangeable despite having the same Go type.
func (c *ValidationContext) isASTSubType(sub, super ast.Type) bool {
	if super.Kind == ast.TypeKindNonNull {
		if sub.Kind != ast.TypeKindNonNull {
			return false
		}
		subInner, _ := c.Operation.UnwrapNonNull(sub)
		superInner, _ := c.Schema.UnwrapNonNull(super)
		return c.isASTSubType(subInner, superInner)
	}
	if sub.Kind == ast.TypeKindNonNull {
		subInner, _ := c.Operation.UnwrapNonNull(sub)
		return c.isASTSubType(subInner, super)
	}
	if super.Kind == ast.TypeKindList {
		if sub.Kind != ast.TypeKindList {
			return false
		}
		return c.isASTSubType(c.Operation.ListTypes[sub.Ref].Type, c.Schema.ListTypes[super.Ref].Type)
	}
	if sub.Kind == ast.TypeKindList {
		return false
	}

	subName := c.Operation.NamedTypeName(sub)
	superName := c.Schema.NamedTypeName(super)
	if subName == superName {
		return true
	}
	if c.Schema.ObjectTypeDefinitionByName(subName) != -1 {
		return c.possibleTypeNames(superName)[subName]
	}
	return false
}
