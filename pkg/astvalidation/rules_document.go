package astvalidation

import "github.com/lexigraph/graphql/pkg/ast"

// executableDefinitionsRule rejects any root node that is not an
// OperationDefinition or FragmentDefinition (spec.md §4.5
// "executable-definitions-only"): a document accidentally containing SDL
// text, e.g. from a client sending a schema file as a query.
type executableDefinitionsRule struct{ ctx *ValidationContext }

func (r *executableDefinitionsRule) EnterDocument(operation, _ *ast.Document) {
	for _, node := range operation.RootNodes {
		if !ast.IsExecutableDefinition(node.Kind) {
			r.ctx.reportf("%s definitions are not executable.", node.Kind)
		}
	}
}

// loneAnonymousOperationRule enforces that an anonymous operation is the
// document's only operation (spec.md §4.5 "single-anonymous-operation"): an
// anonymous operation has no name to disambiguate it from siblings when a
// server is asked to run "the" operation in a multi-operation document.
type loneAnonymousOperationRule struct{ ctx *ValidationContext }

func (r *loneAnonymousOperationRule) EnterDocument(operation, _ *ast.Document) {
	if len(operation.OperationDefinitions) <= 1 {
		return
	}
	for _, op := range operation.OperationDefinitions {
		if !op.HasName {
			r.ctx.reportf("This anonymous operation must be the only defined operation.")
		}
	}
}

// uniqueOperationNamesRule rejects two operations sharing a name (spec.md
// §4.5 "unique-operation-names"): a document executor selects an operation
// to run by name, so a duplicate makes that selection ambiguous.
type uniqueOperationNamesRule struct{ ctx *ValidationContext }

func (r *uniqueOperationNamesRule) EnterDocument(operation, _ *ast.Document) {
	seen := make(map[string]bool)
	for _, op := range operation.OperationDefinitions {
		if !op.HasName {
			continue
		}
		name := operation.Input.ByteSliceString(op.Name)
		if seen[name] {
			r.ctx.reportf("There can be only one operation named %q.", name)
			continue
		}
		seen[name] = true
	}
}

// uniqueFragmentNamesRule rejects two fragment definitions sharing a name
// (spec.md §4.5, the FragmentDefinition analogue of unique-operation-names):
// FragmentSpread resolves its target purely by name, so a duplicate
// definition makes that resolution ambiguous.
type uniqueFragmentNamesRule struct{ ctx *ValidationContext }

func (r *uniqueFragmentNamesRule) EnterDocument(operation, _ *ast.Document) {
	seen := make(map[string]bool)
	for _, fd := range operation.FragmentDefinitions {
		name := operation.Input.ByteSliceString(fd.Name)
		if seen[name] {
			r.ctx.reportf("There can be only one fragment named %q.", name)
			continue
		}
		seen[name] = true
	}
}

// noUnusedFragmentsRule rejects a fragment definition that no operation in
// the document transitively spreads (spec.md §4.5 "no-unused-fragments"):
// an unused fragment is very likely a typo'd spread name or dead code the
// author meant to remove. Runs after the shared traversal has recorded
// every FragmentSpread it saw, since only then is "used" fully known.
type noUnusedFragmentsRule struct{ ctx *ValidationContext }

func (r *noUnusedFragmentsRule) LeaveDocument(operation, _ *ast.Document) {
	for _, fd := range operation.FragmentDefinitions {
		name := operation.Input.ByteSliceString(fd.Name)
		if !r.ctx.usedFragments[name] {
			r.ctx.reportf("Fragment %q is never used.", name)
		}
	}
}

// recordFragmentSpreadsRule marks every spread target as used, transitively
// expanding through fragments that themselves spread other fragments, so
// noUnusedFragmentsRule sees the full reachable set rather than just
// operations' direct spreads.
type recordFragmentSpreadsRule struct{ ctx *ValidationContext }

func (r *recordFragmentSpreadsRule) EnterFragmentSpread(ref int) {
	if anc := r.ctx.Walker.Ancestors(); len(anc) > 0 && anc[0].Kind == ast.NodeKindFragmentDefinition {
		return // only spreads reachable from an operation count as uses
	}
	name := r.ctx.Operation.Input.ByteSliceString(r.ctx.Operation.FragmentSpreads[ref].FragmentName)
	if r.ctx.usedFragments[name] {
		return // already expanded, or mid-expansion: avoid infinite recursion on a cyclic spread
	}
	r.ctx.markFragmentUsed(name)

	fragRef := r.ctx.fragment(name)
	if fragRef == -1 {
		return
	}
	fd := r.ctx.Operation.FragmentDefinitions[fragRef]
	r.walkSelectionSetForSpreads(fd.SelectionSet)
}

func (r *recordFragmentSpreadsRule) walkSelectionSetForSpreads(set int) {
	if set == -1 {
		return
	}
	for _, sel := range r.ctx.Operation.SelectionSets[set].SelectionRefs {
		switch sel.Kind {
		case ast.SelectionKindField:
			f := r.ctx.Operation.Fields[sel.Ref]
			if f.HasSelectionSet {
				r.walkSelectionSetForSpreads(f.SelectionSet)
			}
		case ast.SelectionKindInlineFragment:
			r.walkSelectionSetForSpreads(r.ctx.Operation.InlineFragments[sel.Ref].SelectionSet)
		case ast.SelectionKindFragmentSpread:
			r.EnterFragmentSpread(sel.Ref)
		}
	}
}

// fragmentSpreadTargetDefinedRule rejects a FragmentSpread naming a fragment
// that was never declared (spec.md §4.5, the existence half of
// "fragment-spread-is-possible").
type fragmentSpreadTargetDefinedRule struct{ ctx *ValidationContext }

func (r *fragmentSpreadTargetDefinedRule) EnterFragmentSpread(ref int) {
	name := r.ctx.Operation.Input.ByteSliceString(r.ctx.Operation.FragmentSpreads[ref].FragmentName)
	if r.ctx.fragment(name) == -1 {
		r.ctx.reportf("Unknown fragment %q.", name)
	}
}
