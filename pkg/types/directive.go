package types

// DirectiveLocation mirrors ast.DirectiveLocation's string values but is
// redeclared here so pkg/types has no dependency on pkg/ast's executable
// grammar — only pkg/astbuildschema (the SDL-to-runtime bridge) needs to
// know both representations, and it does the string-for-string conversion.
type DirectiveLocation string

const (
	LocationQuery                DirectiveLocation = "QUERY"
	LocationMutation             DirectiveLocation = "MUTATION"
	LocationSubscription         DirectiveLocation = "SUBSCRIPTION"
	LocationField                DirectiveLocation = "FIELD"
	LocationFragmentDefinition   DirectiveLocation = "FRAGMENT_DEFINITION"
	LocationFragmentSpread       DirectiveLocation = "FRAGMENT_SPREAD"
	LocationInlineFragment       DirectiveLocation = "INLINE_FRAGMENT"
	LocationVariableDefinition   DirectiveLocation = "VARIABLE_DEFINITION"
	LocationSchema               DirectiveLocation = "SCHEMA"
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

// Directive describes a directive definition's shape (spec.md §6 "Directive
// defaults"): @skip, @include and @deprecated are always present on a
// constructed Schema (see NewSchema), matching every reference
// implementation's built-in directive set.
type Directive struct {
	Name        string
	Desc        string
	Args        *NamedSet[*Argument]
	Locations   []DirectiveLocation
	Repeatable  bool
}

func (d *Directive) typeName() string { return d.Name }

func includesLocation(locs []DirectiveLocation, loc DirectiveLocation) bool {
	for _, l := range locs {
		if l == loc {
			return true
		}
	}
	return false
}

// HasLocation reports whether d declares loc among its valid locations.
func (d *Directive) HasLocation(loc DirectiveLocation) bool {
	return includesLocation(d.Locations, loc)
}

func skipIncludeArgs() *NamedSet[*Argument] {
	return NewNamedSet([]*Argument{{
		Name: "if",
		Desc: "Skipped when true.",
		Type: &NonNull{Type: Boolean},
	}})
}

// SkipDirective, IncludeDirective and DeprecatedDirective are the three
// always-present directive singletons spec.md §9's "Global singletons" note
// names alongside the built-in scalars; NewSchema's builtinDirectives()
// returns exactly these three rather than re-allocating equivalents, so
// callers comparing a resolved directive by pointer get a stable identity.
var (
	SkipDirective = &Directive{
		Name:      "skip",
		Desc:      "Directs the executor to skip this field or fragment when the `if` argument is true.",
		Args:      skipIncludeArgs(),
		Locations: []DirectiveLocation{LocationField, LocationFragmentSpread, LocationInlineFragment},
	}
	IncludeDirective = &Directive{
		Name:      "include",
		Desc:      "Directs the executor to include this field or fragment only when the `if` argument is true.",
		Args:      skipIncludeArgs(),
		Locations: []DirectiveLocation{LocationField, LocationFragmentSpread, LocationInlineFragment},
	}
	DeprecatedDirective = &Directive{
		Name: "deprecated",
		Desc: "Marks an element of a GraphQL schema as no longer supported.",
		Args: NewNamedSet([]*Argument{{
			Name:         "reason",
			Desc:         "Explains why this element was deprecated.",
			Type:         String,
			DefaultValue: "No longer supported",
			HasDefault:   true,
		}}),
		Locations: []DirectiveLocation{
			LocationFieldDefinition, LocationArgumentDefinition, LocationInputFieldDefinition,
			LocationEnumValue,
		},
	}
)

// builtinDirectives returns @skip, @include and @deprecated, the three
// directives spec.md §6 says "always present" on a constructed schema.
func builtinDirectives() []*Directive {
	return []*Directive{SkipDirective, IncludeDirective, DeprecatedDirective}
}
