package astvalidation

import "github.com/lexigraph/graphql/pkg/ast"

// fragmentSpreadIsPossibleRule rejects a fragment spread (named or inline)
// whose type condition can never overlap with the type it's spread into —
// e.g. spreading a `... on Dog` fragment inside a selection set enclosed by
// `Cat` (spec.md §4.5 "fragment-spread-is-possible"): no runtime object
// could ever satisfy both conditions at once, so the spread can never
// contribute anything to the response.
type fragmentSpreadIsPossibleRule struct{ ctx *ValidationContext }

func (r *fragmentSpreadIsPossibleRule) EnterFragmentSpread(ref int) {
	name := r.ctx.Operation.Input.ByteSliceString(r.ctx.Operation.FragmentSpreads[ref].FragmentName)
	fragRef := r.ctx.fragment(name)
	if fragRef == -1 {
		return // fragmentSpreadTargetDefinedRule already reports this
	}
	conditionName := r.ctx.Operation.Input.ByteSliceString(r.ctx.Operation.FragmentDefinitions[fragRef].TypeCondition.Name)
	r.check(conditionName, "fragment "+quote(name))
}

func (r *fragmentSpreadIsPossibleRule) EnterInlineFragment(ref int) {
	inf := r.ctx.Operation.InlineFragments[ref]
	if !inf.HasTypeCondition {
		return
	}
	conditionName := r.ctx.Operation.Input.ByteSliceString(inf.TypeCondition.Name)
	r.check(conditionName, "inline fragment")
}

func (r *fragmentSpreadIsPossibleRule) check(conditionName, describe string) {
	enclosing := r.ctx.Walker.EnclosingTypeDefinition
	if enclosing.Kind == ast.NodeKindUnknown || !r.ctx.isCompositeTypeName(conditionName) {
		return
	}
	enclosingName := r.ctx.enclosingTypeName(enclosing)
	if conditionName == enclosingName {
		return
	}
	conditionTypes := r.ctx.possibleTypeNames(conditionName)
	enclosingTypes := r.ctx.possibleTypeNames(enclosingName)
	for name := range conditionTypes {
		if enclosingTypes[name] {
			return
		}
	}
	r.ctx.reportf("Fragment %s cannot be spread here as objects of type %q can never be of type %q.",
		describe, enclosingName, conditionName)
}

// possibleTypeNames returns the set of concrete Object type names typeName
// could resolve to at runtime: itself if already an Object, every declared
// member if a Union, or every Object that lists it among
// ImplementsInterfaces if an Interface.
func (c *ValidationContext) possibleTypeNames(typeName string) map[string]bool {
	if c.possibleTypesCache != nil {
		if cached, ok := c.possibleTypesCache.Get(typeName); ok {
			return cached.(map[string]bool)
		}
	}
	out := c.computePossibleTypeNames(typeName)
	if c.possibleTypesCache != nil {
		c.possibleTypesCache.Add(typeName, out)
	}
	return out
}

func (c *ValidationContext) computePossibleTypeNames(typeName string) map[string]bool {
	out := make(map[string]bool)
	s := c.Schema
	if s.ObjectTypeDefinitionByName(typeName) != -1 {
		out[typeName] = true
		return out
	}
	if ref := s.UnionTypeDefinitionByName(typeName); ref != -1 {
		for _, m := range s.UnionTypeDefinitions[ref].UnionMemberTypes {
			out[s.Input.ByteSliceString(m)] = true
		}
		return out
	}
	if s.InterfaceTypeDefinitionByName(typeName) != -1 {
		for i := range s.ObjectTypeDefinitions {
			obj := s.ObjectTypeDefinitions[i]
			for _, iref := range obj.ImplementsInterfaces {
				if s.Input.ByteSliceString(iref) == typeName {
					out[s.Input.ByteSliceString(obj.Name)] = true
					break
				}
			}
		}
	}
	return out
}

func quote(s string) string { return "\"" + s + "\"" }
