package astvalidation

import "github.com/lexigraph/graphql/pkg/ast"

// knownDirectiveNamesRule rejects a directive the schema never declared
// (spec.md §4.5 "known-directive-names"): @skip, @include and @deprecated
// are expected to exist on every schema (types.builtinDirectives mirrors
// this on the runtime side) but this rule only trusts what the schema
// document itself declares, so a hand-built *ast.Document missing them
// would (correctly) fail here too.
type knownDirectiveNamesRule struct{ ctx *ValidationContext }

func (r *knownDirectiveNamesRule) EnterDirective(ref int) {
	name := r.ctx.Operation.DirectiveNameString(ref)
	if r.ctx.Schema.DirectiveDefinitionByName(name) == -1 {
		r.ctx.reportf("Unknown directive %q.", name)
	}
}

// directiveLocationRule rejects a directive used somewhere its own
// definition doesn't list (spec.md §4.5, folded into known-directive-names
// in the common implementation lineage): @skip on a FRAGMENT_DEFINITION is
// a location mismatch even though @skip itself is known.
type directiveLocationRule struct{ ctx *ValidationContext }

func (r *directiveLocationRule) EnterDirective(ref int) {
	name := r.ctx.Operation.DirectiveNameString(ref)
	ddRef := r.ctx.Schema.DirectiveDefinitionByName(name)
	if ddRef == -1 {
		return
	}
	want := r.currentDirectiveLocation()
	if want == "" {
		return
	}
	dd := r.ctx.Schema.DirectiveDefinitions[ddRef]
	for _, loc := range dd.DirectiveLocations {
		if string(loc) == want {
			return
		}
	}
	r.ctx.reportf("Directive %q may not be used on %s.", name, want)
}

// currentDirectiveLocation maps the Walker's innermost ancestor to the SDL
// DirectiveLocation keyword describing where the directive currently being
// visited was written.
func (r *directiveLocationRule) currentDirectiveLocation() string {
	ancestors := r.ctx.Walker.Ancestors()
	if len(ancestors) == 0 {
		return ""
	}
	switch ancestors[len(ancestors)-1].Kind {
	case ast.NodeKindOperationDefinition:
		switch r.ctx.Operation.OperationDefinitions[ancestors[len(ancestors)-1].Ref].OperationType {
		case ast.OperationTypeQuery:
			return "QUERY"
		case ast.OperationTypeMutation:
			return "MUTATION"
		case ast.OperationTypeSubscription:
			return "SUBSCRIPTION"
		}
		return ""
	case ast.NodeKindField:
		return "FIELD"
	case ast.NodeKindFragmentDefinition:
		return "FRAGMENT_DEFINITION"
	case ast.NodeKindInlineFragment:
		return "INLINE_FRAGMENT"
	default:
		return ""
	}
}
