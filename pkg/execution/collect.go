package execution

import (
	"github.com/lexigraph/graphql/pkg/ast"
	"github.com/lexigraph/graphql/pkg/types"
)

// FieldGroup is every Field ref across the selection set (after fragment
// spreads and inline fragments are expanded) that share a response key —
// spec.md §4.7 "grouped field set ... fields with the same response key are
// merged, in source order".
type FieldGroup struct {
	ResponseKey string
	Fields      []int // refs into Document.Fields
}

// groupedFields preserves response-key discovery order, since spec.md §3
// requires the response object's key order to match the first time each
// key was encountered in the request.
type groupedFields struct {
	order []string
	byKey map[string][]int
}

func newGroupedFields() *groupedFields {
	return &groupedFields{byKey: make(map[string][]int)}
}

func (g *groupedFields) add(key string, fieldRef int) {
	if _, ok := g.byKey[key]; !ok {
		g.order = append(g.order, key)
	}
	g.byKey[key] = append(g.byKey[key], fieldRef)
}

func (g *groupedFields) list() []FieldGroup {
	out := make([]FieldGroup, len(g.order))
	for i, key := range g.order {
		out[i] = FieldGroup{ResponseKey: key, Fields: g.byKey[key]}
	}
	return out
}

// CollectFields walks selectionSetRef depth-first, expanding fragment
// spreads and inline fragments whose type condition is possible for
// objectType (spec.md §4.5 "fragment spread is possible") and honoring
// @skip/@include on fields, fragment spreads and inline fragments (spec.md
// §4.7 step "collect fields, skipping/including per directive"). The
// visited-fragments set prevents infinite recursion on a cyclic fragment
// spread that operation validation would otherwise have already rejected,
// but the executor must not assume a caller always validates first.
func CollectFields(doc *ast.Document, schema *types.Schema, objectType *types.Object, selectionSetRef int, variableValues map[string]interface{}) []FieldGroup {
	groups := newGroupedFields()
	visited := make(map[string]bool)
	collectFieldsInto(doc, schema, objectType, selectionSetRef, variableValues, visited, groups)
	return groups.list()
}

func collectFieldsInto(doc *ast.Document, schema *types.Schema, objectType *types.Object, selectionSetRef int, variableValues map[string]interface{}, visited map[string]bool, groups *groupedFields) {
	set := doc.SelectionSets[selectionSetRef]
	for _, sel := range set.SelectionRefs {
		switch sel.Kind {
		case ast.SelectionKindField:
			field := doc.Fields[sel.Ref]
			if directivesSkip(doc, field.Directives, variableValues) {
				continue
			}
			groups.add(doc.FieldResponseKey(sel.Ref), sel.Ref)

		case ast.SelectionKindFragmentSpread:
			spread := doc.FragmentSpreads[sel.Ref]
			if directivesSkip(doc, spread.Directives, variableValues) {
				continue
			}
			name := doc.Input.ByteSliceString(spread.FragmentName)
			if visited[name] {
				continue
			}
			fragRef := doc.FragmentByName(name)
			if fragRef == -1 {
				continue
			}
			visited[name] = true
			frag := doc.FragmentDefinitions[fragRef]
			condName := doc.Input.ByteSliceString(frag.TypeCondition.Name)
			cond := schema.TypeByName(condName)
			if cond == nil || !schema.IsPossibleType(cond, objectType) {
				continue
			}
			collectFieldsInto(doc, schema, objectType, frag.SelectionSet, variableValues, visited, groups)

		case ast.SelectionKindInlineFragment:
			inline := doc.InlineFragments[sel.Ref]
			if directivesSkip(doc, inline.Directives, variableValues) {
				continue
			}
			if inline.HasTypeCondition {
				condName := doc.Input.ByteSliceString(inline.TypeCondition.Name)
				cond := schema.TypeByName(condName)
				if cond == nil || !schema.IsPossibleType(cond, objectType) {
					continue
				}
			}
			collectFieldsInto(doc, schema, objectType, inline.SelectionSet, variableValues, visited, groups)
		}
	}
}

// CollectSubFields merges the sub-selection sets of every Field ref in
// fieldRefs (spec.md §4.7 "the grouped field set for an object position
// comes from every field node that contributed to the merged field, not
// just the first") — necessary because two fragments can both select the
// same response key on an object field with different, complementary
// sub-selections that validation guarantees are mergeable.
func CollectSubFields(doc *ast.Document, schema *types.Schema, objectType *types.Object, fieldRefs []int, variableValues map[string]interface{}) []FieldGroup {
	groups := newGroupedFields()
	visited := make(map[string]bool)
	for _, ref := range fieldRefs {
		f := doc.Fields[ref]
		if !f.HasSelectionSet {
			continue
		}
		collectFieldsInto(doc, schema, objectType, f.SelectionSet, variableValues, visited, groups)
	}
	return groups.list()
}

// directivesSkip evaluates @skip/@include against directiveRefs, reporting
// true if the selection should be excluded (spec.md §6 "@skip(if: true)
// excludes, @include(if: false) excludes"). Unknown directives and
// directives other than skip/include are ignored here — execution-time
// directive validity was already checked by operation validation.
func directivesSkip(doc *ast.Document, directiveRefs []int, variableValues map[string]interface{}) bool {
	for _, ref := range directiveRefs {
		dir := doc.Directives[ref]
		name := doc.DirectiveNameString(ref)
		switch name {
		case "skip":
			if v, ok := directiveIfArg(doc, dir, variableValues); ok && v {
				return true
			}
		case "include":
			if v, ok := directiveIfArg(doc, dir, variableValues); ok && !v {
				return true
			}
		}
	}
	return false
}

func directiveIfArg(doc *ast.Document, dir ast.Directive, variableValues map[string]interface{}) (bool, bool) {
	for _, argRef := range dir.Arguments {
		arg := doc.Arguments[argRef]
		if doc.Input.ByteSliceString(arg.Name) != "if" {
			continue
		}
		return resolveBooleanValue(doc, arg.Value, variableValues)
	}
	return false, false
}

func resolveBooleanValue(doc *ast.Document, v ast.Value, variableValues map[string]interface{}) (bool, bool) {
	switch v.Kind {
	case ast.ValueKindBoolean:
		return doc.BooleanValues[v.Ref].Value, true
	case ast.ValueKindVariable:
		name := doc.Input.ByteSliceString(doc.VariableValues[v.Ref].Name)
		raw, ok := variableValues[name]
		if !ok {
			return false, false
		}
		b, ok := raw.(bool)
		return b, ok
	default:
		return false, false
	}
}
