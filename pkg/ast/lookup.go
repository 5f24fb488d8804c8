package ast

// This file collects the name-based lookups every later package
// (astvisitor, astvalidation, types, execution) needs to cross-reference an
// executable document against the SDL document describing its schema.
// spec.md §6 treats "the schema" as an opaque collaborator; these are the
// concrete lookups a Go implementation needs to honor that contract over a
// plain *Document.

// ObjectTypeDefinitionByName returns the ref of the named object type, or
// -1 if none exists.
func (d *Document) ObjectTypeDefinitionByName(name string) int {
	for i := range d.ObjectTypeDefinitions {
		if d.Input.ByteSliceString(d.ObjectTypeDefinitions[i].Name) == name {
			return i
		}
	}
	return -1
}

// InterfaceTypeDefinitionByName returns the ref of the named interface
// type, or -1 if none exists.
func (d *Document) InterfaceTypeDefinitionByName(name string) int {
	for i := range d.InterfaceTypeDefinitions {
		if d.Input.ByteSliceString(d.InterfaceTypeDefinitions[i].Name) == name {
			return i
		}
	}
	return -1
}

// UnionTypeDefinitionByName returns the ref of the named union type, or -1.
func (d *Document) UnionTypeDefinitionByName(name string) int {
	for i := range d.UnionTypeDefinitions {
		if d.Input.ByteSliceString(d.UnionTypeDefinitions[i].Name) == name {
			return i
		}
	}
	return -1
}

// EnumTypeDefinitionByName returns the ref of the named enum type, or -1.
func (d *Document) EnumTypeDefinitionByName(name string) int {
	for i := range d.EnumTypeDefinitions {
		if d.Input.ByteSliceString(d.EnumTypeDefinitions[i].Name) == name {
			return i
		}
	}
	return -1
}

// ScalarTypeDefinitionByName returns the ref of the named scalar type, or -1.
func (d *Document) ScalarTypeDefinitionByName(name string) int {
	for i := range d.ScalarTypeDefinitions {
		if d.Input.ByteSliceString(d.ScalarTypeDefinitions[i].Name) == name {
			return i
		}
	}
	return -1
}

// InputObjectTypeDefinitionByName returns the ref of the named input object
// type, or -1.
func (d *Document) InputObjectTypeDefinitionByName(name string) int {
	for i := range d.InputObjectTypeDefinitions {
		if d.Input.ByteSliceString(d.InputObjectTypeDefinitions[i].Name) == name {
			return i
		}
	}
	return -1
}

// DirectiveDefinitionByName returns the ref of the named directive
// definition, or -1.
func (d *Document) DirectiveDefinitionByName(name string) int {
	for i := range d.DirectiveDefinitions {
		if d.Input.ByteSliceString(d.DirectiveDefinitions[i].Name) == name {
			return i
		}
	}
	return -1
}

// FieldDefinitionByName searches a FieldsDefinition ref list (as found on
// ObjectTypeDefinition/InterfaceTypeDefinition) for a field named name,
// returning its ref into d.FieldDefinitions or -1.
func (d *Document) FieldDefinitionByName(fieldRefs []int, name string) int {
	for _, ref := range fieldRefs {
		if d.Input.ByteSliceString(d.FieldDefinitions[ref].Name) == name {
			return ref
		}
	}
	return -1
}

// InputValueDefinitionByName searches an InputValueDefinition ref list (an
// ArgumentsDefinition or InputFieldsDefinition) for one named name.
func (d *Document) InputValueDefinitionByName(refs []int, name string) int {
	for _, ref := range refs {
		if d.Input.ByteSliceString(d.InputValueDefinitions[ref].Name) == name {
			return ref
		}
	}
	return -1
}

// RootOperationTypeName resolves the object type name serving as root for
// opType: an explicit `schema { ... }` definition's mapping takes
// precedence, falling back to the type-system's default root names (Query,
// Mutation, Subscription) per the GraphQL spec.
func (d *Document) RootOperationTypeName(opType OperationType) (string, bool) {
	if len(d.SchemaDefinitions) > 0 {
		sd := d.SchemaDefinitions[0]
		for _, ref := range sd.RootOperationTypeDefinitions {
			rt := d.RootOperationTypeDefinitions[ref]
			if rt.OperationType == opType {
				return d.Input.ByteSliceString(rt.NamedType.Name), true
			}
		}
		return "", false
	}
	var defaultName string
	switch opType {
	case OperationTypeQuery:
		defaultName = "Query"
	case OperationTypeMutation:
		defaultName = "Mutation"
	case OperationTypeSubscription:
		defaultName = "Subscription"
	default:
		return "", false
	}
	if d.ObjectTypeDefinitionByName(defaultName) == -1 {
		return "", false
	}
	return defaultName, true
}
