// Package astvalidation implements the operation validator described in
// spec.md §4.5: a ValidationContext shared by every rule, one
// astvisitor.Walker pass that dispatches every rule's Enter/Leave hooks, and
// the static validation rules GraphQL requires before an operation may
// execute.
//
// Grounded on
// other_examples/.../botobag-artemis__graphql-validator-validation_context.go.go
// for the ValidationContext shape (schema + document + per-rule memoized
// lookup caches) and on the teacher's own astvalidation-shaped packages for
// the "register every rule on one Walker, run it once" driver idiom.
package astvalidation

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/lexigraph/graphql/pkg/ast"
	"github.com/lexigraph/graphql/pkg/astvisitor"
	"github.com/lexigraph/graphql/pkg/operationreport"
)

// possibleTypesCacheSize bounds the per-validation memoization of
// possibleTypeNames: a schema rarely has more than a few hundred abstract
// types, and fragment-spread-is-possible/variable-usages-allowed both
// recompute the same abstract type's possible set repeatedly across a
// large document, so caching pays for itself past a handful of fields.
const possibleTypesCacheSize = 256

// ValidationContext carries the schema document and operation document
// through a single validation pass, plus the lazily built name indexes
// several rules share (spec.md §4.5 "owns the schema, document, type-info
// traversal, variable usages, and an error list"). The schema here is the
// SDL ast.Document directly — the same document astvisitor.Walker already
// cross-references for EnclosingTypeDefinition resolution — rather than a
// built runtime types.Schema, so operation validation has no dependency on
// pkg/astbuildschema (spec.md §2's dependency order runs astvalidation
// before schema construction is assumed to exist).
type ValidationContext struct {
	Schema    *ast.Document
	Operation *ast.Document
	Report    *operationreport.Report
	Walker    *astvisitor.Walker

	fragmentsByName map[string]int
	usedFragments   map[string]bool
	usedVariables   map[string]bool

	possibleTypesCache *lru.Cache
}

func newContext(schema, operation *ast.Document, report *operationreport.Report, walker *astvisitor.Walker) *ValidationContext {
	cache, _ := lru.New(possibleTypesCacheSize)
	return &ValidationContext{
		Schema:             schema,
		Operation:          operation,
		Report:             report,
		Walker:             walker,
		possibleTypesCache: cache,
	}
}

// fragment returns the ref of the named fragment definition, or -1.
func (c *ValidationContext) fragment(name string) int {
	if c.fragmentsByName == nil {
		c.fragmentsByName = make(map[string]int, len(c.Operation.FragmentDefinitions))
		for i := range c.Operation.FragmentDefinitions {
			fname := c.Operation.Input.ByteSliceString(c.Operation.FragmentDefinitions[i].Name)
			c.fragmentsByName[fname] = i
		}
	}
	if ref, ok := c.fragmentsByName[name]; ok {
		return ref
	}
	return -1
}

func (c *ValidationContext) markFragmentUsed(name string) {
	if c.usedFragments == nil {
		c.usedFragments = make(map[string]bool)
	}
	c.usedFragments[name] = true
}

func (c *ValidationContext) markVariableUsed(name string) {
	if c.usedVariables == nil {
		c.usedVariables = make(map[string]bool)
	}
	c.usedVariables[name] = true
}

func (c *ValidationContext) reportf(format string, args ...interface{}) {
	c.Report.AddExternalError(operationreport.ExternalError{
		Message: fmt.Sprintf(format, args...),
	})
}
