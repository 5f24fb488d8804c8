package types

import "context"

// ResolveInfo is the second positional argument every resolver receives
// (spec.md §4.7 "info = { field_name, field_nodes, return_type,
// parent_type, path, schema, fragments, root_value, operation,
// variable_values, context }"). FieldNodes holds every Field ref (there may
// be more than one if the same response key is requested on multiple
// fragments that got merged into one selection) so a resolver can inspect
// arguments/directives as written.
type ResolveInfo struct {
	FieldName     string
	FieldNodes    []int // refs into Operation.Fields
	ReturnType    Type
	ParentType    *Object
	Path          []interface{} // string response keys and int list indices
	Schema        *Schema
	Operation     int // ref into Operation.OperationDefinitions
	VariableValues map[string]interface{}
	RootValue     interface{}
	Context       context.Context
}

// FieldResolveFunc is a field resolver: spec.md §6 "Field resolver: fn(source,
// info, **arguments) → value | deferred<value>". A deferred value is simply
// any value returned asynchronously; pkg/execution represents that as a
// value satisfying its own Deferred interface rather than
// requiring resolvers to return a particular concrete async type — plain
// Go resolvers just return (value, error) synchronously, and resolvers that
// need to suspend return something pkg/execution recognizes as deferred.
type FieldResolveFunc func(ctx context.Context, source interface{}, args map[string]interface{}, info ResolveInfo) (interface{}, error)

// SubscribeFunc backs a subscription root field: spec.md §6 "Subscribe
// resolver: fn(source, info, **args) → async_iterable<event>". SourceStream
// is defined in pkg/subscription; it's referenced here only as an
// interface{} return to avoid an import cycle (pkg/subscription depends on
// pkg/types, not the reverse) — pkg/subscription type-asserts the result to
// its own SourceStream interface.
type SubscribeFunc func(ctx context.Context, source interface{}, args map[string]interface{}, info ResolveInfo) (interface{}, error)

// TypeResolveFunc resolves an abstract (Interface/Union) value to the
// concrete Object type name that should be used to complete it (spec.md §6
// "Type resolver: fn(value, info, abstract_type) → type_name | ...").
type TypeResolveFunc func(value interface{}, info ResolveInfo, abstractType NamedType) (string, error)

// Field describes one selectable field of an Object or Interface.
type Field struct {
	Name              string
	Desc              string
	Type              Type
	Args              *NamedSet[*Argument]
	DeprecationReason string
	IsDeprecated      bool
	Resolve           FieldResolveFunc
	Subscribe         SubscribeFunc
}

func (f *Field) typeName() string { return f.Name }

// Argument describes one named, typed input accepted by a Field or
// Directive.
type Argument struct {
	Name         string
	Desc         string
	Type         Type
	DefaultValue interface{}
	HasDefault   bool
}

func (a *Argument) typeName() string { return a.Name }

// InputField describes one member of an InputObject.
type InputField struct {
	Name         string
	Desc         string
	Type         Type
	DefaultValue interface{}
	HasDefault   bool
}

func (f *InputField) typeName() string { return f.Name }
