package ast

// This file models the type-system definition/extension half of the closed
// AST family (spec.md §3: SchemaDefinition, *TypeDefinition, *TypeExtension,
// DirectiveDefinition). These are only ever produced when parsing SDL text
// (pkg/astparser's type-system definition branch); executable documents
// never populate these slices.

type RootOperationTypeDefinition struct {
	Loc           Location
	OperationType OperationType
	NamedType     NamedType
}

type SchemaDefinition struct {
	Loc                          Location
	Directives                   []int
	RootOperationTypeDefinitions []int
}

type ScalarTypeDefinition struct {
	Loc         Location
	Description ByteSliceReference
	HasDescription bool
	Name        ByteSliceReference
	Directives  []int
}

type FieldDefinition struct {
	Loc                 Location
	Description         ByteSliceReference
	HasDescription      bool
	Name                ByteSliceReference
	ArgumentsDefinition []int // refs into Document.InputValueDefinitions
	Type                Type
	Directives          []int
}

type ObjectTypeDefinition struct {
	Loc                  Location
	Description          ByteSliceReference
	HasDescription       bool
	Name                 ByteSliceReference
	ImplementsInterfaces []ByteSliceReference
	Directives           []int
	FieldsDefinition     []int // refs into Document.FieldDefinitions
}

type InterfaceTypeDefinition struct {
	Loc                  Location
	Description          ByteSliceReference
	HasDescription       bool
	Name                 ByteSliceReference
	ImplementsInterfaces []ByteSliceReference
	Directives           []int
	FieldsDefinition     []int
}

type UnionTypeDefinition struct {
	Loc            Location
	Description    ByteSliceReference
	HasDescription bool
	Name           ByteSliceReference
	Directives     []int
	UnionMemberTypes []ByteSliceReference
}

type EnumValueDefinition struct {
	Loc            Location
	Description    ByteSliceReference
	HasDescription bool
	EnumValue      ByteSliceReference
	Directives     []int
}

type EnumTypeDefinition struct {
	Loc                  Location
	Description          ByteSliceReference
	HasDescription       bool
	Name                 ByteSliceReference
	Directives           []int
	EnumValuesDefinition []int // refs into Document.EnumValueDefinitions
}

type InputValueDefinition struct {
	Loc            Location
	Description    ByteSliceReference
	HasDescription bool
	Name           ByteSliceReference
	Type           Type
	DefaultValue   Value
	HasDefaultValue bool
	Directives     []int
}

type InputObjectTypeDefinition struct {
	Loc                   Location
	Description           ByteSliceReference
	HasDescription        bool
	Name                  ByteSliceReference
	Directives            []int
	InputFieldsDefinition []int // refs into Document.InputValueDefinitions
}

// DirectiveLocation enumerates where a directive definition declares itself
// valid to appear (spec.md §6 "Directive defaults").
type DirectiveLocation string

const (
	LocationQuery                DirectiveLocation = "QUERY"
	LocationMutation              DirectiveLocation = "MUTATION"
	LocationSubscription         DirectiveLocation = "SUBSCRIPTION"
	LocationField                 DirectiveLocation = "FIELD"
	LocationFragmentDefinition   DirectiveLocation = "FRAGMENT_DEFINITION"
	LocationFragmentSpread       DirectiveLocation = "FRAGMENT_SPREAD"
	LocationInlineFragment       DirectiveLocation = "INLINE_FRAGMENT"
	LocationVariableDefinition   DirectiveLocation = "VARIABLE_DEFINITION"
	LocationSchema                DirectiveLocation = "SCHEMA"
	LocationScalar                DirectiveLocation = "SCALAR"
	LocationObject                DirectiveLocation = "OBJECT"
	LocationFieldDefinition       DirectiveLocation = "FIELD_DEFINITION"
	LocationArgumentDefinition   DirectiveLocation = "ARGUMENT_DEFINITION"
	LocationInterface             DirectiveLocation = "INTERFACE"
	LocationUnion                 DirectiveLocation = "UNION"
	LocationEnum                  DirectiveLocation = "ENUM"
	LocationEnumValue             DirectiveLocation = "ENUM_VALUE"
	LocationInputObject           DirectiveLocation = "INPUT_OBJECT"
	LocationInputFieldDefinition DirectiveLocation = "INPUT_FIELD_DEFINITION"
)

type DirectiveDefinition struct {
	Loc                 Location
	Description         ByteSliceReference
	HasDescription      bool
	Name                ByteSliceReference
	ArgumentsDefinition []int
	Repeatable          bool
	DirectiveLocations  []DirectiveLocation
}

// Extensions reuse the corresponding *TypeDefinition payload shape (SDL
// extensions add the same kinds of children a definition has); Document
// stores them in their own slices so NodeKind dispatch stays exhaustive.
type ScalarTypeExtension struct{ ScalarTypeDefinition }
type ObjectTypeExtension struct{ ObjectTypeDefinition }
type InterfaceTypeExtension struct{ InterfaceTypeDefinition }
type UnionTypeExtension struct{ UnionTypeDefinition }
type EnumTypeExtension struct{ EnumTypeDefinition }
type InputObjectTypeExtension struct{ InputObjectTypeDefinition }
type SchemaExtension struct{ SchemaDefinition }
