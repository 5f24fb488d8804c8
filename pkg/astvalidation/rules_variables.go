package astvalidation

import "github.com/lexigraph/graphql/pkg/ast"

// uniqueVariableNamesRule rejects one operation declaring the same variable
// twice (spec.md §4.5 "unique-variable-names").
type uniqueVariableNamesRule struct{ ctx *ValidationContext }

func (r *uniqueVariableNamesRule) EnterOperationDefinition(ref int) {
	seen := make(map[string]bool)
	for _, vdRef := range r.ctx.Operation.OperationDefinitions[ref].VariableDefinitions {
		name := r.ctx.Operation.Input.ByteSliceString(r.ctx.Operation.VariableDefinitions[vdRef].VariableName)
		if seen[name] {
			r.ctx.reportf("There can be only one variable named %q.", name)
			continue
		}
		seen[name] = true
	}
}

// variablesAreInputTypesRule rejects a variable declared with an output-only
// type — an object, interface or union — since a variable's value always
// comes from outside as data, never as resolved objects (spec.md §4.5
// "variables-are-input-types").
type variablesAreInputTypesRule struct{ ctx *ValidationContext }

func (r *variablesAreInputTypesRule) EnterVariableDefinition(ref int) {
	vd := r.ctx.Operation.VariableDefinitions[ref]
	typeName := r.ctx.Operation.NamedTypeName(vd.Type)
	if r.ctx.isInputTypeName(typeName) {
		return
	}
	name := r.ctx.Operation.Input.ByteSliceString(vd.VariableName)
	r.ctx.reportf("Variable %q cannot be non-input type %q.", name, r.ctx.Operation.PrintType(vd.Type))
}

func (c *ValidationContext) isInputTypeName(name string) bool {
	switch name {
	case "Int", "Float", "String", "Boolean", "ID":
		return true
	}
	if c.Schema.ScalarTypeDefinitionByName(name) != -1 {
		return true
	}
	if c.Schema.EnumTypeDefinitionByName(name) != -1 {
		return true
	}
	if c.Schema.InputObjectTypeDefinitionByName(name) != -1 {
		return true
	}
	return false
}

// noUnusedVariablesRule rejects an operation declaring a variable no field
// or directive argument in its selection set (including through spread
// fragments) ever references (spec.md §4.5 "no-unused-variables").
type noUnusedVariablesRule struct{ ctx *ValidationContext }

func (r *noUnusedVariablesRule) LeaveOperationDefinition(ref int) {
	for _, vdRef := range r.ctx.Operation.OperationDefinitions[ref].VariableDefinitions {
		name := r.ctx.Operation.Input.ByteSliceString(r.ctx.Operation.VariableDefinitions[vdRef].VariableName)
		if !r.ctx.usedVariables[name] {
			r.ctx.reportf("Variable %q is never used.", name)
		}
	}
	r.ctx.usedVariables = nil
}

// recordVariableUsagesRule marks every variable an argument value (on a
// field or directive) references as used, so noUnusedVariablesRule sees the
// full usage set once the operation's selection set has been walked.
type recordVariableUsagesRule struct{ ctx *ValidationContext }

func (r *recordVariableUsagesRule) EnterArgument(ref int) {
	v := r.ctx.Operation.Arguments[ref].Value
	r.recordValue(v)
}

func (r *recordVariableUsagesRule) recordValue(v ast.Value) {
	switch v.Kind {
	case ast.ValueKindVariable:
		r.ctx.markVariableUsed(r.ctx.Operation.Input.ByteSliceString(r.ctx.Operation.VariableValues[v.Ref].Name))
	case ast.ValueKindList:
		for _, item := range r.ctx.Operation.ListValues[v.Ref].Values {
			r.recordValue(item)
		}
	case ast.ValueKindObject:
		for _, fRef := range r.ctx.Operation.ObjectValues[v.Ref].Fields {
			r.recordValue(r.ctx.Operation.ObjectFields[fRef].Value)
		}
	}
}
