package ast

// TypeKind discriminates which slice on Document a Type's Ref indexes
// into, mirroring Value's {Kind,Ref} shape.
type TypeKind int

const (
	TypeKindUnknown TypeKind = iota
	TypeKindNamed
	TypeKindList
	TypeKindNonNull
)

type Type struct {
	Kind TypeKind
	Ref  int
}

type NamedType struct {
	Loc  Location
	Name ByteSliceReference
}

type ListType struct {
	Loc  Location
	Type Type
}

type NonNullType struct {
	Loc  Location
	Type Type
}

// UnwrapNonNull strips a single NonNull wrapper, returning the inner type
// and true, or t itself and false if t was not NonNull. Used by value
// coercion (spec.md §4.6) and covariance checks (spec.md invariant 4) which
// both need "the type minus at most one NonNull layer".
func (d *Document) UnwrapNonNull(t Type) (Type, bool) {
	if t.Kind != TypeKindNonNull {
		return t, false
	}
	return d.NonNullTypes[t.Ref].Type, true
}

// NamedTypeName returns the innermost NamedType's name, unwrapping List and
// NonNull wrappers any number of times.
func (d *Document) NamedTypeName(t Type) string {
	for {
		switch t.Kind {
		case TypeKindList:
			t = d.ListTypes[t.Ref].Type
		case TypeKindNonNull:
			t = d.NonNullTypes[t.Ref].Type
		case TypeKindNamed:
			return d.Input.ByteSliceString(d.NamedTypes[t.Ref].Name)
		default:
			return ""
		}
	}
}

// PrintType renders a Type back to GraphQL type syntax, e.g. "[String!]!".
// Kept here (rather than only in astprinter) because coercion error
// messages need it too and pulling in the printer package from coercion
// would invert the dependency order in SPEC_FULL.md §2.
func (d *Document) PrintType(t Type) string {
	switch t.Kind {
	case TypeKindNamed:
		return d.Input.ByteSliceString(d.NamedTypes[t.Ref].Name)
	case TypeKindList:
		return "[" + d.PrintType(d.ListTypes[t.Ref].Type) + "]"
	case TypeKindNonNull:
		return d.PrintType(d.NonNullTypes[t.Ref].Type) + "!"
	default:
		return "<unknown type>"
	}
}
