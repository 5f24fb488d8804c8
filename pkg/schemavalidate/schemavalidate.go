// Package schemavalidate implements the one-shot schema invariant checker
// described in spec.md §4.4: root types present and of object kind, every
// directive well-formed, every named type properly structured, interface
// implementation both covariant and acyclic, and input objects free of
// cyclic non-null references. The check ordering and error wording follow
// original_source/graphql/type/validate.py's SchemaValidationContext.
//
// The result is memoized on the types.Schema instance itself
// (types.Schema.ValidationErrors), matching
// original_source/graphql/type/validate.py's "schema._validation_errors"
// persisted-on-first-call behavior (spec.md §3 Lifecycle, §9 "Schemas
// memoize validation errors on first call").
package schemavalidate

import (
	"regexp"

	"github.com/pkg/errors"

	"github.com/lexigraph/graphql/pkg/types"
)

var nameRegexp = regexp.MustCompile(`^[_A-Za-z][_A-Za-z0-9]*$`)

// Validate runs every schema invariant check and returns the accumulated
// error list (nil if the schema is valid). Calling Validate again on the
// same *types.Schema returns the cached result without re-running any
// check.
func Validate(schema *types.Schema) []error {
	return schema.ValidationErrors(func() []error {
		ctx := &context{schema: schema}
		ctx.validateRootTypes()
		ctx.validateDirectives()
		ctx.validateTypes()
		ctx.validateInterfaceImplementations()
		ctx.validateInputObjectsAreNotCyclicallyNonNull()
		return ctx.errs
	})
}

// AssertValid panics with every accumulated message if schema is invalid —
// the Go analogue of original_source's assert_valid_schema, for callers
// that construct a schema once at startup and want to fail fast.
func AssertValid(schema *types.Schema) {
	if errs := Validate(schema); len(errs) > 0 {
		msg := errs[0].Error()
		for _, e := range errs[1:] {
			msg += "\n\n" + e.Error()
		}
		panic(msg)
	}
}

type context struct {
	schema *types.Schema
	errs   []error
}

func (c *context) reportf(format string, args ...interface{}) {
	c.errs = append(c.errs, errors.Errorf(format, args...))
}

func (c *context) validateName(kind, name string) {
	if !nameRegexp.MatchString(name) {
		c.reportf("%s name %q must match /^[_A-Za-z][_A-Za-z0-9]*$/.", kind, name)
	}
}

func (c *context) validateRootTypes() {
	if c.schema.Query == nil {
		c.reportf("Query root type must be provided.")
	}
	// Mutation/Subscription are optional; when present they are always
	// *types.Object by construction (Schema.Mutation/Subscription are
	// statically typed), so there is nothing further to check here — unlike
	// the dynamically-typed original, our Go API cannot construct a schema
	// whose root type is the wrong kind.
}

func (c *context) validateDirectives() {
	seen := make(map[string]bool)
	for _, d := range c.schema.Directives {
		if seen[d.Name] {
			c.reportf("Directive @%s defined more than once.", d.Name)
			continue
		}
		seen[d.Name] = true
		c.validateName("Directive", d.Name)
		for _, arg := range d.Args.All() {
			c.validateName("Argument", arg.Name)
			if !types.IsInputType(arg.Type) {
				c.reportf("The type of @%s(%s:) must be an input type but got: %s.", d.Name, arg.Name, arg.Type)
			}
		}
	}
}

func (c *context) validateTypes() {
	for _, t := range c.schema.Types() {
		c.validateName("Type", t.TypeName())
		switch v := t.(type) {
		case *types.Object:
			c.validateFieldsOf(v.TypeName(), v.Fields)
		case *types.Interface:
			c.validateFieldsOf(v.TypeName(), v.Fields)
		case *types.Union:
			if v.Types.Len() == 0 {
				c.reportf("Union type %s must define one or more member types.", v.Name)
			}
		case *types.Enum:
			if v.Values.Len() == 0 {
				c.reportf("Enum type %s must define one or more values.", v.Name)
			}
			for _, ev := range v.Values.All() {
				c.validateName("Enum value", ev.Name)
				if ev.Name == "true" || ev.Name == "false" || ev.Name == "null" {
					c.reportf("Enum type %s cannot include value: %s.", v.Name, ev.Name)
				}
			}
		case *types.InputObject:
			if v.Fields.Len() == 0 {
				c.reportf("Input Object type %s must define one or more fields.", v.Name)
			}
			for _, f := range v.Fields.All() {
				c.validateName("Input field", f.Name)
				if !types.IsInputType(f.Type) {
					c.reportf("The type of %s.%s must be an input type but got: %s.", v.Name, f.Name, f.Type)
				}
			}
		case *types.Scalar:
			// a name is the whole contract for a Scalar.
		}
	}
}

func (c *context) validateFieldsOf(typeName string, fields *types.NamedSet[*types.Field]) {
	if fields.Len() == 0 {
		c.reportf("Type %s must define one or more fields.", typeName)
		return
	}
	for _, f := range fields.All() {
		c.validateName("Field", f.Name)
		if !types.IsOutputType(f.Type) {
			c.reportf("The type of %s.%s must be Output Type but got: %s.", typeName, f.Name, f.Type)
		}
		for _, arg := range f.Args.All() {
			c.validateName("Argument", arg.Name)
			if !types.IsInputType(arg.Type) {
				c.reportf("The type of %s.%s(%s:) must be an input type but got: %s.", typeName, f.Name, arg.Name, arg.Type)
			}
		}
	}
}

// validateInterfaceImplementations checks, for every Object, that each
// interface it claims is actually satisfied: every interface field must
// exist on the object with a covariant return type and the same required
// arguments (spec.md §4.4 "object implements each declared interface"), and
// checks that interface-implements-interface declarations are acyclic
// (spec.md §4.4 "interface implementation is acyclic").
func (c *context) validateInterfaceImplementations() {
	for _, t := range c.schema.Types() {
		obj, ok := t.(*types.Object)
		if !ok {
			continue
		}
		for _, iface := range obj.Interfaces.All() {
			c.validateObjectImplementsInterface(obj, iface)
		}
	}

	for _, t := range c.schema.Types() {
		iface, ok := t.(*types.Interface)
		if !ok {
			continue
		}
		c.checkInterfaceCycle(iface, map[string]bool{})
	}
}

func (c *context) validateObjectImplementsInterface(obj *types.Object, iface *types.Interface) {
	for _, ifaceField := range iface.Fields.All() {
		objField, ok := obj.Fields.Lookup(ifaceField.Name)
		if !ok {
			c.reportf("Interface field %s.%s expected but %s does not provide it.", iface.Name, ifaceField.Name, obj.Name)
			continue
		}
		if !types.IsTypeSubTypeOf(c.schema, objField.Type, ifaceField.Type) {
			c.reportf("Interface field %s.%s expects type %s but %s.%s is type %s.",
				iface.Name, ifaceField.Name, ifaceField.Type, obj.Name, ifaceField.Name, objField.Type)
		}
		for _, ifaceArg := range ifaceField.Args.All() {
			objArg, ok := objField.Args.Lookup(ifaceArg.Name)
			if !ok {
				c.reportf("Interface field argument %s.%s(%s:) expected but %s.%s does not provide it.",
					iface.Name, ifaceField.Name, ifaceArg.Name, obj.Name, ifaceField.Name)
				continue
			}
			if !types.IsEqualType(ifaceArg.Type, objArg.Type) {
				c.reportf("Interface field argument %s.%s(%s:) expects type %s but %s.%s(%s:) is type %s.",
					iface.Name, ifaceField.Name, ifaceArg.Name, ifaceArg.Type,
					obj.Name, ifaceField.Name, objArg.Name, objArg.Type)
			}
		}
	}
}

func (c *context) checkInterfaceCycle(iface *types.Interface, onPath map[string]bool) {
	if onPath[iface.Name] {
		c.reportf("Type %s cannot implement itself because it would create a circular reference.", iface.Name)
		return
	}
	onPath[iface.Name] = true
	for _, parent := range iface.Interfaces.All() {
		c.checkInterfaceCycle(parent, onPath)
	}
	delete(onPath, iface.Name)
}

// validateInputObjectsAreNotCyclicallyNonNull rejects an input object that
// requires an infinitely deep value: a chain of required (NonNull, no
// default) fields that returns to its starting input object (spec.md §4.4
// "input objects are not cyclically non-null").
func (c *context) validateInputObjectsAreNotCyclicallyNonNull() {
	for _, t := range c.schema.Types() {
		io, ok := t.(*types.InputObject)
		if !ok {
			continue
		}
		c.checkInputObjectCycle(io, map[string]bool{}, nil)
	}
}

func (c *context) checkInputObjectCycle(io *types.InputObject, onPath map[string]bool, fieldPath []string) {
	if onPath[io.Name] {
		c.reportf("Cannot reference Input Object %q within itself through a series of non-null fields: %q.",
			io.Name, joinPath(fieldPath))
		return
	}
	onPath[io.Name] = true
	for _, f := range io.Fields.All() {
		nn, ok := f.Type.(*types.NonNull)
		if !ok || f.HasDefault {
			continue
		}
		named, ok := types.NamedOf(nn).(*types.InputObject)
		if !ok {
			continue
		}
		c.checkInputObjectCycle(named, onPath, append(fieldPath, f.Name))
	}
	delete(onPath, io.Name)
}

func joinPath(path []string) string {
	out := ""
	for i, p := range path {
		if i > 0 {
			out += "."
		}
		out += p
	}
	return out
}
