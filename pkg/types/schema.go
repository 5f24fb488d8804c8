package types

import "sync"

// Schema is the root of a constructed type system (spec.md §4.4 "Schema
// Model"): the three root operation types plus every named type and
// directive reachable from them. Schema is meant to be built once (by
// pkg/astbuildschema or by hand) and then shared read-only across many
// concurrent validations/executions — spec.md §5 "the schema and parsed
// document are read-only during execution".
type Schema struct {
	Query        *Object
	Mutation     *Object
	Subscription *Object
	Directives   []*Directive

	typeOrder   []NamedType
	typesByName map[string]NamedType

	implOnce sync.Once
	implMap  map[string][]*Object // interface name -> implementing Objects, spec.md §5 "_implementations"

	validateOnce sync.Once
	validateErrs []error
}

// NewSchema collects every NamedType reachable from query/mutation/
// subscription (which may be nil) plus any extraTypes the caller wants
// included even if unreferenced (e.g. an Object only reachable via a
// resolver's runtime type-name result), and attaches the three built-in
// directives (@skip, @include, @deprecated) alongside any caller-supplied
// ones.
func NewSchema(query, mutation, subscription *Object, extraTypes []NamedType, directives []*Directive) *Schema {
	s := &Schema{
		Query:        query,
		Mutation:     mutation,
		Subscription: subscription,
		Directives:   append(builtinDirectives(), directives...),
		typesByName:  make(map[string]NamedType),
	}

	var roots []NamedType
	if query != nil {
		roots = append(roots, query)
	}
	if mutation != nil {
		roots = append(roots, mutation)
	}
	if subscription != nil {
		roots = append(roots, subscription)
	}
	roots = append(roots, extraTypes...)
	for _, t := range roots {
		s.collectType(t)
	}
	return s
}

func (s *Schema) collectType(t NamedType) {
	if t == nil {
		return
	}
	if _, seen := s.typesByName[t.TypeName()]; seen {
		return
	}
	s.typesByName[t.TypeName()] = t
	s.typeOrder = append(s.typeOrder, t)

	switch v := t.(type) {
	case *Object:
		for _, iface := range v.Interfaces.All() {
			s.collectType(iface)
		}
		for _, f := range v.Fields.All() {
			s.collectFieldTypes(f)
		}
	case *Interface:
		for _, parent := range v.Interfaces.All() {
			s.collectType(parent)
		}
		for _, f := range v.Fields.All() {
			s.collectFieldTypes(f)
		}
	case *Union:
		for _, member := range v.Types.All() {
			s.collectType(member)
		}
	case *InputObject:
		for _, f := range v.Fields.All() {
			s.collectArgLikeType(f.Type)
		}
	}
}

func (s *Schema) collectFieldTypes(f *Field) {
	if named := NamedOf(f.Type); named != nil {
		s.collectType(named)
	}
	for _, arg := range f.Args.All() {
		s.collectArgLikeType(arg.Type)
	}
}

func (s *Schema) collectArgLikeType(t Type) {
	if named := NamedOf(t); named != nil {
		s.collectType(named)
	}
}

// TypeByName returns the schema's NamedType with the given name, or nil.
func (s *Schema) TypeByName(name string) NamedType {
	return s.typesByName[name]
}

// Types returns every NamedType in the schema, in the order first
// discovered from the root types (deterministic given deterministic root
// type construction, which golden-file printer/introspection tests rely
// on).
func (s *Schema) Types() []NamedType {
	return s.typeOrder
}

// DirectiveByName returns the named directive, or nil.
func (s *Schema) DirectiveByName(name string) *Directive {
	for _, d := range s.Directives {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// RootForOperation returns the root Object for the given GraphQL operation
// keyword ("query", "mutation" or "subscription"), or nil.
func (s *Schema) RootForOperation(operationType string) *Object {
	switch operationType {
	case "query":
		return s.Query
	case "mutation":
		return s.Mutation
	case "subscription":
		return s.Subscription
	default:
		return nil
	}
}

// Implementations returns every Object type that declares iface among its
// Interfaces, computed once on first call and cached thereafter (spec.md §5
// "Memoized ... _implementations ... written once on first access").
func (s *Schema) Implementations(iface *Interface) []*Object {
	s.implOnce.Do(func() {
		s.implMap = make(map[string][]*Object)
		for _, t := range s.typeOrder {
			obj, ok := t.(*Object)
			if !ok {
				continue
			}
			for _, implemented := range obj.Interfaces.All() {
				s.implMap[implemented.Name] = append(s.implMap[implemented.Name], obj)
			}
		}
	})
	return s.implMap[iface.Name]
}

// ValidationErrors runs compute exactly once across the lifetime of s and
// caches the result, so repeated calls to validate the same Schema (e.g.
// from many concurrently-validated operations) pay the cost once (spec.md
// §9 "Schemas memoize validation errors on first call"). pkg/schemavalidate
// is the only intended caller.
func (s *Schema) ValidationErrors(compute func() []error) []error {
	s.validateOnce.Do(func() {
		s.validateErrs = compute()
	})
	return s.validateErrs
}

// IsPossibleType reports whether obj is a valid runtime type for abstract
// (spec.md §4.5 "fragment spread is possible").
func (s *Schema) IsPossibleType(abstract NamedType, obj *Object) bool {
	switch a := abstract.(type) {
	case *Object:
		return a.Name == obj.Name
	case *Interface:
		for _, candidate := range s.Implementations(a) {
			if candidate.Name == obj.Name {
				return true
			}
		}
		return false
	case *Union:
		_, ok := a.Types.Lookup(obj.Name)
		return ok
	default:
		return false
	}
}
