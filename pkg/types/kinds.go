package types

import "fmt"

// Type is the runtime counterpart of spec.md §3's closed Type family
// (NamedType/ListType/NonNullType), but over constructed schema types
// rather than AST refs. isType is an unexported marker method (grounded on
// the teacher's identical IsType() pattern) that closes the set to this
// package's eight kinds.
type Type interface {
	fmt.Stringer
	isType()
}

// NamedType is any Type with its own name — every kind except List and
// NonNull, which wrap another Type instead of introducing one.
type NamedType interface {
	Type
	TypeName() string
	Description() string
}

var (
	_ Type = (*Scalar)(nil)
	_ Type = (*Object)(nil)
	_ Type = (*Interface)(nil)
	_ Type = (*Union)(nil)
	_ Type = (*Enum)(nil)
	_ Type = (*InputObject)(nil)
	_ Type = (*List)(nil)
	_ Type = (*NonNull)(nil)

	_ NamedType = (*Scalar)(nil)
	_ NamedType = (*Object)(nil)
	_ NamedType = (*Interface)(nil)
	_ NamedType = (*Union)(nil)
	_ NamedType = (*Enum)(nil)
	_ NamedType = (*InputObject)(nil)
)

// Scalar is a leaf type with caller-supplied serialize/coercion functions
// (spec.md §4.6 hands these to pkg/coercion as the "scalar leaf" fallback).
type Scalar struct {
	Name       string
	Desc       string
	Serialize  func(interface{}) (interface{}, error)
	ParseValue func(interface{}) (interface{}, error)
}

// Object describes a concrete, selectable type: a field set and the
// interfaces it claims to implement, both lazy per spec.md §9.
type Object struct {
	Name       string
	Desc       string
	Interfaces *NamedSet[*Interface]
	Fields     *NamedSet[*Field]
}

// Interface describes a field set shared by every Object that implements
// it, plus an optional runtime type-resolution hook for abstract dispatch
// (spec.md §4.7 "resolve abstract type").
type Interface struct {
	Name        string
	Desc        string
	Interfaces  *NamedSet[*Interface]
	Fields      *NamedSet[*Field]
	ResolveType func(value interface{}) string
}

// Union describes a set of possible Object member types with an optional
// runtime type-resolution hook.
type Union struct {
	Name        string
	Desc        string
	Types       *NamedSet[*Object]
	ResolveType func(value interface{}) string
}

// EnumValue is one member of an Enum — Value is the internal representation
// (often just the name itself, per spec.md §9's "if absent, defaults to the
// name").
type EnumValue struct {
	Name               string
	Value              interface{}
	Desc               string
	DeprecationReason  string
	IsDeprecated       bool
}

func (v *EnumValue) typeName() string { return v.Name }

// Enum is a closed set of named values, serialized over the wire as their
// Name.
type Enum struct {
	Name   string
	Desc   string
	Values *NamedSet[*EnumValue]
}

// InputObject describes a structured collection of input fields that may
// be supplied as an argument or variable value (spec.md §4.6 input
// coercion).
type InputObject struct {
	Name   string
	Desc   string
	Fields *NamedSet[*InputField]
}

// List wraps another Type: a value of this type is a (possibly empty)
// ordered sequence of values of Type.
type List struct {
	Type Type
}

// NonNull wraps another Type, forbidding null at this position. NonNull may
// not itself be wrapped in NonNull or appear as a List's element without an
// intervening position — for types built from SDL, pkg/astparser's grammar
// enforces that invariant; neither this type nor pkg/schemavalidate checks
// it.
type NonNull struct {
	Type Type
}

func (t *Scalar) String() string      { return t.Name }
func (t *Object) String() string      { return t.Name }
func (t *Interface) String() string   { return t.Name }
func (t *Union) String() string       { return t.Name }
func (t *Enum) String() string        { return t.Name }
func (t *InputObject) String() string { return t.Name }
func (t *List) String() string        { return "[" + t.Type.String() + "]" }
func (t *NonNull) String() string     { return t.Type.String() + "!" }

func (t *Scalar) isType()      {}
func (t *Object) isType()      {}
func (t *Interface) isType()   {}
func (t *Union) isType()       {}
func (t *Enum) isType()        {}
func (t *InputObject) isType() {}
func (t *List) isType()        {}
func (t *NonNull) isType()     {}

func (t *Scalar) TypeName() string      { return t.Name }
func (t *Object) TypeName() string      { return t.Name }
func (t *Interface) TypeName() string   { return t.Name }
func (t *Union) TypeName() string       { return t.Name }
func (t *Enum) TypeName() string        { return t.Name }
func (t *InputObject) TypeName() string { return t.Name }

func (t *Scalar) Description() string      { return t.Desc }
func (t *Object) Description() string      { return t.Desc }
func (t *Interface) Description() string   { return t.Desc }
func (t *Union) Description() string       { return t.Desc }
func (t *Enum) Description() string        { return t.Desc }
func (t *InputObject) Description() string { return t.Desc }

// typeName implements the named constraint so *Object can live inside a
// Union's NamedSet.
func (t *Object) typeName() string    { return t.Name }
func (t *Interface) typeName() string { return t.Name }

// UnwrapNonNull strips a single NonNull layer, mirroring
// ast.Document.UnwrapNonNull for runtime types.
func UnwrapNonNull(t Type) (Type, bool) {
	if nn, ok := t.(*NonNull); ok {
		return nn.Type, true
	}
	return t, false
}

// NamedOf unwraps List and NonNull any number of times and returns the
// innermost NamedType, or nil if t is somehow neither (should not happen
// for a type built through this package's constructors).
func NamedOf(t Type) NamedType {
	for {
		switch v := t.(type) {
		case *List:
			t = v.Type
		case *NonNull:
			t = v.Type
		case NamedType:
			return v
		default:
			return nil
		}
	}
}

// IsInputType reports whether t can legally appear as a variable type or
// argument/input-field type (spec.md §4.5 "variables are input types").
func IsInputType(t Type) bool {
	switch NamedOf(t).(type) {
	case *Scalar, *Enum, *InputObject:
		return true
	default:
		return false
	}
}

// IsOutputType reports whether t can legally appear as a field's return
// type.
func IsOutputType(t Type) bool {
	switch NamedOf(t).(type) {
	case *Scalar, *Object, *Interface, *Union, *Enum:
		return true
	default:
		return false
	}
}

// IsCompositeType reports whether t's named form selects fields (spec.md
// §4.5 "fragments on composite types").
func IsCompositeType(t NamedType) bool {
	switch t.(type) {
	case *Object, *Interface, *Union:
		return true
	default:
		return false
	}
}

// IsAbstractType reports whether t's named form may resolve to more than
// one concrete Object at runtime.
func IsAbstractType(t NamedType) bool {
	switch t.(type) {
	case *Interface, *Union:
		return true
	default:
		return false
	}
}

// IsLeafType reports whether t's named form has no sub-selections (spec.md
// §4.5 "scalar leafs").
func IsLeafType(t NamedType) bool {
	switch t.(type) {
	case *Scalar, *Enum:
		return true
	default:
		return false
	}
}
