package ast

// Document is the immutable-after-construction AST root (spec.md §3
// "Document"). Every concrete node kind lives in its own slice; a Node or
// Selection/Value/Type {Kind,Ref} pair is the only way to reach into one of
// them, so the whole tree can be copied, hashed or walked without pointer
// chasing. The same Document type is used for both executable documents
// (operations/fragments) and SDL documents (type-system definitions) per
// spec.md §3, distinguished only by which RootNodes kinds are populated.
type Document struct {
	Input Input

	RootNodes []Node

	Names []Name

	OperationDefinitions []OperationDefinition
	VariableDefinitions  []VariableDefinition
	SelectionSets        []SelectionSet
	Fields               []Field
	Arguments            []Argument
	FragmentSpreads      []FragmentSpread
	InlineFragments      []InlineFragment
	FragmentDefinitions  []FragmentDefinition
	Directives           []Directive

	VariableValues []VariableValue
	IntValues      []IntValue
	FloatValues    []FloatValue
	StringValues   []StringValue
	BooleanValues  []BooleanValue
	NullValues     []NullValue
	EnumValues     []EnumValue
	ListValues     []ListValue
	ObjectValues   []ObjectValue
	ObjectFields   []ObjectField

	NamedTypes   []NamedType
	ListTypes    []ListType
	NonNullTypes []NonNullType

	SchemaDefinitions            []SchemaDefinition
	RootOperationTypeDefinitions []RootOperationTypeDefinition
	ScalarTypeDefinitions        []ScalarTypeDefinition
	ObjectTypeDefinitions        []ObjectTypeDefinition
	InterfaceTypeDefinitions     []InterfaceTypeDefinition
	UnionTypeDefinitions         []UnionTypeDefinition
	EnumTypeDefinitions          []EnumTypeDefinition
	EnumValueDefinitions         []EnumValueDefinition
	InputObjectTypeDefinitions   []InputObjectTypeDefinition
	InputValueDefinitions        []InputValueDefinition
	FieldDefinitions             []FieldDefinition
	DirectiveDefinitions         []DirectiveDefinition

	SchemaExtensions           []SchemaExtension
	ScalarTypeExtensions       []ScalarTypeExtension
	ObjectTypeExtensions       []ObjectTypeExtension
	InterfaceTypeExtensions    []InterfaceTypeExtension
	UnionTypeExtensions        []UnionTypeExtension
	EnumTypeExtensions         []EnumTypeExtension
	InputObjectTypeExtensions  []InputObjectTypeExtension
}

// NewDocument returns an empty Document ready for the parser to populate.
func NewDocument() *Document {
	return &Document{
		RootNodes: make([]Node, 0, 8),
	}
}

// Reset clears every node slice to length zero (retaining capacity) and
// leaves the input arena untouched, so a Document can be reused across
// repeated Parse calls
// without reallocating its backing arrays — the allocation-reuse pattern
// the teacher's astparser.Parser.Parse(document, report) relies on.
func (d *Document) Reset() {
	d.RootNodes = d.RootNodes[:0]
	d.Names = d.Names[:0]
	d.OperationDefinitions = d.OperationDefinitions[:0]
	d.VariableDefinitions = d.VariableDefinitions[:0]
	d.SelectionSets = d.SelectionSets[:0]
	d.Fields = d.Fields[:0]
	d.Arguments = d.Arguments[:0]
	d.FragmentSpreads = d.FragmentSpreads[:0]
	d.InlineFragments = d.InlineFragments[:0]
	d.FragmentDefinitions = d.FragmentDefinitions[:0]
	d.Directives = d.Directives[:0]
	d.VariableValues = d.VariableValues[:0]
	d.IntValues = d.IntValues[:0]
	d.FloatValues = d.FloatValues[:0]
	d.StringValues = d.StringValues[:0]
	d.BooleanValues = d.BooleanValues[:0]
	d.NullValues = d.NullValues[:0]
	d.EnumValues = d.EnumValues[:0]
	d.ListValues = d.ListValues[:0]
	d.ObjectValues = d.ObjectValues[:0]
	d.ObjectFields = d.ObjectFields[:0]
	d.NamedTypes = d.NamedTypes[:0]
	d.ListTypes = d.ListTypes[:0]
	d.NonNullTypes = d.NonNullTypes[:0]
	d.SchemaDefinitions = d.SchemaDefinitions[:0]
	d.RootOperationTypeDefinitions = d.RootOperationTypeDefinitions[:0]
	d.ScalarTypeDefinitions = d.ScalarTypeDefinitions[:0]
	d.ObjectTypeDefinitions = d.ObjectTypeDefinitions[:0]
	d.InterfaceTypeDefinitions = d.InterfaceTypeDefinitions[:0]
	d.UnionTypeDefinitions = d.UnionTypeDefinitions[:0]
	d.EnumTypeDefinitions = d.EnumTypeDefinitions[:0]
	d.EnumValueDefinitions = d.EnumValueDefinitions[:0]
	d.InputObjectTypeDefinitions = d.InputObjectTypeDefinitions[:0]
	d.InputValueDefinitions = d.InputValueDefinitions[:0]
	d.FieldDefinitions = d.FieldDefinitions[:0]
	d.DirectiveDefinitions = d.DirectiveDefinitions[:0]
	d.SchemaExtensions = d.SchemaExtensions[:0]
	d.ScalarTypeExtensions = d.ScalarTypeExtensions[:0]
	d.ObjectTypeExtensions = d.ObjectTypeExtensions[:0]
	d.InterfaceTypeExtensions = d.InterfaceTypeExtensions[:0]
	d.UnionTypeExtensions = d.UnionTypeExtensions[:0]
	d.EnumTypeExtensions = d.EnumTypeExtensions[:0]
	d.InputObjectTypeExtensions = d.InputObjectTypeExtensions[:0]
}

// --- builder helpers -------------------------------------------------
//
// Grounded on v2/pkg/asttransform/baseschema.go's style: Add<Kind>
// constructors append to the relevant slice and return the new ref, the
// parser and astbuildschema package build documents purely through these
// rather than literal slice indexing.

func (d *Document) AddOperationDefinition(op OperationDefinition) (ref int) {
	d.OperationDefinitions = append(d.OperationDefinitions, op)
	return len(d.OperationDefinitions) - 1
}

func (d *Document) AddSelectionSet(set SelectionSet) (ref int) {
	d.SelectionSets = append(d.SelectionSets, set)
	return len(d.SelectionSets) - 1
}

func (d *Document) AddField(f Field) (ref int) {
	d.Fields = append(d.Fields, f)
	return len(d.Fields) - 1
}

func (d *Document) AddArgument(a Argument) (ref int) {
	d.Arguments = append(d.Arguments, a)
	return len(d.Arguments) - 1
}

func (d *Document) AddDirective(dir Directive) (ref int) {
	d.Directives = append(d.Directives, dir)
	return len(d.Directives) - 1
}

func (d *Document) AddFragmentSpread(f FragmentSpread) (ref int) {
	d.FragmentSpreads = append(d.FragmentSpreads, f)
	return len(d.FragmentSpreads) - 1
}

func (d *Document) AddInlineFragment(f InlineFragment) (ref int) {
	d.InlineFragments = append(d.InlineFragments, f)
	return len(d.InlineFragments) - 1
}

func (d *Document) AddFragmentDefinition(f FragmentDefinition) (ref int) {
	d.FragmentDefinitions = append(d.FragmentDefinitions, f)
	return len(d.FragmentDefinitions) - 1
}

func (d *Document) AddVariableDefinition(v VariableDefinition) (ref int) {
	d.VariableDefinitions = append(d.VariableDefinitions, v)
	return len(d.VariableDefinitions) - 1
}

func (d *Document) AddNamedType(name []byte) Type {
	return d.AddNamedTypeRef(d.Input.AppendInputBytes(name))
}

// AddNamedTypeRef is AddNamedType for a name that already lives in the
// Input arena, avoiding a redundant copy.
func (d *Document) AddNamedTypeRef(name ByteSliceReference) Type {
	d.NamedTypes = append(d.NamedTypes, NamedType{Name: name})
	return Type{Kind: TypeKindNamed, Ref: len(d.NamedTypes) - 1}
}

func (d *Document) AddNonNullType(of Type) Type {
	d.NonNullTypes = append(d.NonNullTypes, NonNullType{Type: of})
	return Type{Kind: TypeKindNonNull, Ref: len(d.NonNullTypes) - 1}
}

func (d *Document) AddListType(of Type) Type {
	d.ListTypes = append(d.ListTypes, ListType{Type: of})
	return Type{Kind: TypeKindList, Ref: len(d.ListTypes) - 1}
}

func (d *Document) AddNonNullNamedType(name []byte) Type {
	return d.AddNonNullType(d.AddNamedType(name))
}

// DocumentOperationNames returns every named operation's name, in document
// order, skipping anonymous operations.
func (d *Document) DocumentOperationNames() []string {
	names := make([]string, 0, len(d.OperationDefinitions))
	for i := range d.OperationDefinitions {
		if d.OperationDefinitions[i].HasName {
			names = append(names, d.Input.ByteSliceString(d.OperationDefinitions[i].Name))
		}
	}
	return names
}

// OperationByName returns the ref of the named operation, or -1.
func (d *Document) OperationByName(name string) int {
	for i := range d.OperationDefinitions {
		if d.OperationDefinitions[i].HasName && d.Input.ByteSliceString(d.OperationDefinitions[i].Name) == name {
			return i
		}
	}
	return -1
}

// FragmentByName returns the ref of the named fragment definition, or -1.
func (d *Document) FragmentByName(name string) int {
	for i := range d.FragmentDefinitions {
		if d.Input.ByteSliceString(d.FragmentDefinitions[i].Name) == name {
			return i
		}
	}
	return -1
}
