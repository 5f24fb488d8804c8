package ast

// ValueKind discriminates which slice on Document a Value's Ref indexes
// into. A Value is itself just {Kind ValueKind, Ref int} so that argument
// default values, list/object value elements and variable default values
// can all share one representation without an interface allocation.
type ValueKind int

const (
	ValueKindUnknown ValueKind = iota
	ValueKindVariable
	ValueKindInt
	ValueKindFloat
	ValueKindString
	ValueKindBoolean
	ValueKindNull
	ValueKindEnum
	ValueKindList
	ValueKindObject
)

type Value struct {
	Kind ValueKind
	Ref  int
}

// Name is a validated identifier; its text lives in the Document's Input
// arena so that equality checks and hashing never need to revisit the
// source text.
type Name struct {
	Loc   Location
	Value ByteSliceReference
}

type VariableValue struct {
	Loc  Location
	Name ByteSliceReference
}

type IntValue struct {
	Loc     Location
	Raw     ByteSliceReference
	Negative bool
}

type FloatValue struct {
	Loc Location
	Raw ByteSliceReference
}

type StringValue struct {
	Loc          Location
	Content      ByteSliceReference
	BlockString  bool
}

type BooleanValue struct {
	Loc   Location
	Value bool
}

type NullValue struct {
	Loc Location
}

type EnumValue struct {
	Loc  Location
	Name ByteSliceReference
}

// ListValue holds a flat []Value so that nested lists (list of lists) work
// without recursion through Document slices beyond the Value indirection
// itself.
type ListValue struct {
	Loc    Location
	Values []Value
}

type ObjectField struct {
	Loc   Location
	Name  ByteSliceReference
	Value Value
}

type ObjectValue struct {
	Loc    Location
	Fields []int // refs into Document.ObjectFields
}
