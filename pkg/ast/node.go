package ast

// NodeKind discriminates the closed family of AST node kinds described in
// spec.md §3. A Node is never more than this tag plus a Ref into the
// Document slice that owns the concrete payload; child relationships are
// expressed as []int / int ref lists rather than pointers so that Document
// values stay flat, cheap to copy, and safe to walk concurrently for
// read-only traversals.
type NodeKind int

const (
	NodeKindUnknown NodeKind = iota

	NodeKindName
	NodeKindDocument

	NodeKindOperationDefinition
	NodeKindVariableDefinition
	NodeKindVariable
	NodeKindSelectionSet
	NodeKindField
	NodeKindArgument
	NodeKindFragmentSpread
	NodeKindInlineFragment
	NodeKindFragmentDefinition

	NodeKindIntValue
	NodeKindFloatValue
	NodeKindStringValue
	NodeKindBooleanValue
	NodeKindNullValue
	NodeKindEnumValue
	NodeKindListValue
	NodeKindObjectValue
	NodeKindObjectField

	NodeKindDirective

	NodeKindNamedType
	NodeKindListType
	NodeKindNonNullType

	NodeKindSchemaDefinition
	NodeKindRootOperationTypeDefinition
	NodeKindScalarTypeDefinition
	NodeKindObjectTypeDefinition
	NodeKindInterfaceTypeDefinition
	NodeKindUnionTypeDefinition
	NodeKindEnumTypeDefinition
	NodeKindEnumValueDefinition
	NodeKindInputObjectTypeDefinition
	NodeKindInputValueDefinition
	NodeKindFieldDefinition
	NodeKindDirectiveDefinition

	NodeKindSchemaExtension
	NodeKindScalarTypeExtension
	NodeKindObjectTypeExtension
	NodeKindInterfaceTypeExtension
	NodeKindUnionTypeExtension
	NodeKindEnumTypeExtension
	NodeKindInputObjectTypeExtension
)

func (k NodeKind) String() string {
	switch k {
	case NodeKindName:
		return "Name"
	case NodeKindDocument:
		return "Document"
	case NodeKindOperationDefinition:
		return "OperationDefinition"
	case NodeKindVariableDefinition:
		return "VariableDefinition"
	case NodeKindVariable:
		return "Variable"
	case NodeKindSelectionSet:
		return "SelectionSet"
	case NodeKindField:
		return "Field"
	case NodeKindArgument:
		return "Argument"
	case NodeKindFragmentSpread:
		return "FragmentSpread"
	case NodeKindInlineFragment:
		return "InlineFragment"
	case NodeKindFragmentDefinition:
		return "FragmentDefinition"
	case NodeKindIntValue:
		return "IntValue"
	case NodeKindFloatValue:
		return "FloatValue"
	case NodeKindStringValue:
		return "StringValue"
	case NodeKindBooleanValue:
		return "BooleanValue"
	case NodeKindNullValue:
		return "NullValue"
	case NodeKindEnumValue:
		return "EnumValue"
	case NodeKindListValue:
		return "ListValue"
	case NodeKindObjectValue:
		return "ObjectValue"
	case NodeKindObjectField:
		return "ObjectField"
	case NodeKindDirective:
		return "Directive"
	case NodeKindNamedType:
		return "NamedType"
	case NodeKindListType:
		return "ListType"
	case NodeKindNonNullType:
		return "NonNullType"
	case NodeKindSchemaDefinition:
		return "SchemaDefinition"
	case NodeKindRootOperationTypeDefinition:
		return "RootOperationTypeDefinition"
	case NodeKindScalarTypeDefinition:
		return "ScalarTypeDefinition"
	case NodeKindObjectTypeDefinition:
		return "ObjectTypeDefinition"
	case NodeKindInterfaceTypeDefinition:
		return "InterfaceTypeDefinition"
	case NodeKindUnionTypeDefinition:
		return "UnionTypeDefinition"
	case NodeKindEnumTypeDefinition:
		return "EnumTypeDefinition"
	case NodeKindEnumValueDefinition:
		return "EnumValueDefinition"
	case NodeKindInputObjectTypeDefinition:
		return "InputObjectTypeDefinition"
	case NodeKindInputValueDefinition:
		return "InputValueDefinition"
	case NodeKindFieldDefinition:
		return "FieldDefinition"
	case NodeKindDirectiveDefinition:
		return "DirectiveDefinition"
	case NodeKindSchemaExtension:
		return "SchemaExtension"
	case NodeKindScalarTypeExtension:
		return "ScalarTypeExtension"
	case NodeKindObjectTypeExtension:
		return "ObjectTypeExtension"
	case NodeKindInterfaceTypeExtension:
		return "InterfaceTypeExtension"
	case NodeKindUnionTypeExtension:
		return "UnionTypeExtension"
	case NodeKindEnumTypeExtension:
		return "EnumTypeExtension"
	case NodeKindInputObjectTypeExtension:
		return "InputObjectTypeExtension"
	default:
		return "Unknown"
	}
}

// Node is the uniform handle every visitor and printer operates on: a kind
// tag plus an index into the Document slice owning that kind's payload.
type Node struct {
	Kind NodeKind
	Ref  int
}

func (n Node) String() string {
	return n.Kind.String()
}
