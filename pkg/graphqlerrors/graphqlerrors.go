// Package graphqlerrors defines the wire-stable GraphQLError object (spec.md
// §6 "Error object (wire-stable)": {message, locations?, path?, extensions?})
// that every other error kind in this module (operationreport.ExternalError,
// coercion.Error, schemavalidate's plain errors, execution.FieldError)
// converts into at the API boundary, so a caller serializing a response
// never has to know which phase an error came from.
package graphqlerrors

import (
	"github.com/lexigraph/graphql/pkg/ast"
	"github.com/lexigraph/graphql/pkg/coercion"
	"github.com/lexigraph/graphql/pkg/execution"
	"github.com/lexigraph/graphql/pkg/operationreport"
)

// Location is a one-based line/column pair, JSON-shaped per spec.md §6.
type Location struct {
	Line   uint32 `json:"line"`
	Column uint32 `json:"column"`
}

// Error is the wire-stable error object. Locations and Path are omitted
// from JSON when empty rather than marshaled as `null` or `[]`, matching
// the spec's "locations?"/"path?" optionality.
type Error struct {
	Message    string                 `json:"message"`
	Locations  []Location             `json:"locations,omitempty"`
	Path       []interface{}          `json:"path,omitempty"`
	Extensions map[string]interface{} `json:"extensions,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// FromFieldError converts a located execution error (spec.md §7 kinds 5-6)
// at the resolver/completion boundary.
func FromFieldError(e *execution.FieldError) *Error {
	if e == nil {
		return nil
	}
	return &Error{
		Message:   e.Message,
		Locations: fromASTPositions(e.Locations),
		Path:      e.Path,
	}
}

// FromFieldErrors converts a whole response's worth of execution errors.
func FromFieldErrors(errs []*execution.FieldError) []*Error {
	if len(errs) == 0 {
		return nil
	}
	out := make([]*Error, len(errs))
	for i, e := range errs {
		out[i] = FromFieldError(e)
	}
	return out
}

// FromExternalError converts a syntax or operation-validation error (spec.md
// §7 kinds 1 and 3), both carried as operationreport.ExternalError.
func FromExternalError(e operationreport.ExternalError) *Error {
	return &Error{
		Message:   e.Message,
		Locations: fromReportPositions(e.Locations),
		Path:      e.Path,
	}
}

// FromExternalErrors converts a whole operationreport.Report's
// ExternalErrors slice.
func FromExternalErrors(errs []operationreport.ExternalError) []*Error {
	if len(errs) == 0 {
		return nil
	}
	out := make([]*Error, len(errs))
	for i, e := range errs {
		out[i] = FromExternalError(e)
	}
	return out
}

// FromCoercionError converts a variable/argument/input coercion error
// (spec.md §7 kind 4). coercion.Path has no AST location attached — the
// failure is discovered against the variable/argument value tree, not a
// single source position — so Locations is always empty here.
func FromCoercionError(e *coercion.Error) *Error {
	if e == nil {
		return nil
	}
	return &Error{Message: e.Message, Path: []interface{}(e.Path)}
}

// FromError wraps any other error (e.g. one of schemavalidate.Validate's
// plain []error results, spec.md §7 kind 2) with no location or path,
// since schema validation errors describe a type definition, not a
// position in an executed document.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Message: err.Error()}
}

// FromErrors converts a slice of plain errors, as returned by
// schemavalidate.Validate.
func FromErrors(errs []error) []*Error {
	if len(errs) == 0 {
		return nil
	}
	out := make([]*Error, len(errs))
	for i, e := range errs {
		out[i] = FromError(e)
	}
	return out
}

func fromASTPositions(positions []ast.Position) []Location {
	if len(positions) == 0 {
		return nil
	}
	out := make([]Location, len(positions))
	for i, p := range positions {
		out[i] = Location{Line: p.Line, Column: p.Column}
	}
	return out
}

func fromReportPositions(positions []operationreport.Position) []Location {
	if len(positions) == 0 {
		return nil
	}
	out := make([]Location, len(positions))
	for i, p := range positions {
		out[i] = Location{Line: p.Line, Column: p.Column}
	}
	return out
}
