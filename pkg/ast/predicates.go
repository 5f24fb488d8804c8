package ast

// IsExecutableDefinition reports whether kind is one a query document (as
// opposed to an SDL document) is allowed to contain. Used by the
// astvalidation "executable-definitions only" rule.
func IsExecutableDefinition(kind NodeKind) bool {
	switch kind {
	case NodeKindOperationDefinition, NodeKindFragmentDefinition:
		return true
	default:
		return false
	}
}

// IsTypeSystemDefinition reports whether kind belongs to the SDL half of
// the closed AST family.
func IsTypeSystemDefinition(kind NodeKind) bool {
	switch kind {
	case NodeKindSchemaDefinition,
		NodeKindScalarTypeDefinition,
		NodeKindObjectTypeDefinition,
		NodeKindInterfaceTypeDefinition,
		NodeKindUnionTypeDefinition,
		NodeKindEnumTypeDefinition,
		NodeKindInputObjectTypeDefinition,
		NodeKindDirectiveDefinition:
		return true
	default:
		return false
	}
}

// IsTypeSystemExtension reports whether kind is one of the *TypeExtension
// kinds.
func IsTypeSystemExtension(kind NodeKind) bool {
	switch kind {
	case NodeKindSchemaExtension,
		NodeKindScalarTypeExtension,
		NodeKindObjectTypeExtension,
		NodeKindInterfaceTypeExtension,
		NodeKindUnionTypeExtension,
		NodeKindEnumTypeExtension,
		NodeKindInputObjectTypeExtension:
		return true
	default:
		return false
	}
}
