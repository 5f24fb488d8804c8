// Package operationreport carries errors accumulated while lexing, parsing
// or validating a document (spec.md §7). A Report is threaded by reference
// through parser and visitor calls rather than returned eagerly, so that a
// single pass can keep going after the first error and report everything
// wrong with a document at once (spec.md §7: "other errors are returned
// as-is (schema/operation/coercion errors accumulate without short-
// circuiting at their phase)").
package operationreport

import (
	"fmt"
	"strings"
)

// Position is a one-based line/column pair, duplicated here (rather than
// imported from pkg/ast) so this leaf package has no dependency on the AST
// — operationreport is consumed by every later package and must not
// create an import cycle.
type Position struct {
	Line   uint32
	Column uint32
}

// ExternalError is a located error suitable for direct translation into
// the wire-stable GraphQLError object (spec.md §6). Path elements are
// either a string (response key) or an int (list index).
type ExternalError struct {
	Message   string
	Locations []Position
	Path      []interface{}
}

func (e ExternalError) Error() string {
	return e.Message
}

// Report aggregates every error produced in one pass. ExternalErrors are
// reported to the caller; InternalErr (singular — only the first internal
// invariant violation is kept, since anything past that point is
// unreliable) is logged and never exposed directly to API consumers.
type Report struct {
	ExternalErrors []ExternalError
	InternalErr    error
}

// HasErrors reports whether anything went wrong in this pass.
func (r *Report) HasErrors() bool {
	return len(r.ExternalErrors) > 0 || r.InternalErr != nil
}

// AddExternalError appends a located error to the report.
func (r *Report) AddExternalError(err ExternalError) {
	r.ExternalErrors = append(r.ExternalErrors, err)
}

// AddInternalError records an invariant violation. Only the first one is
// kept; subsequent calls are ignored since a second internal error during
// unwinding from the first is rarely informative.
func (r *Report) AddInternalError(err error) {
	if r.InternalErr == nil {
		r.InternalErr = err
	}
}

// Reset clears the report for reuse (mirrors ast.Document.Reset, so a
// caller can reuse both across repeated Parse/Validate calls).
func (r *Report) Reset() {
	r.ExternalErrors = r.ExternalErrors[:0]
	r.InternalErr = nil
}

// Error implements the error interface so a *Report can be returned
// directly from functions like astbuildschema.Build, matching the
// teacher's `return report` idiom in asttransform.MergeDefinitionWithBaseSchema.
func (r *Report) Error() string {
	var b strings.Builder
	for i, e := range r.ExternalErrors {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.Message)
	}
	if r.InternalErr != nil {
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "internal error: %s", r.InternalErr)
	}
	return b.String()
}
