package execution

import (
	"fmt"

	"github.com/lexigraph/graphql/pkg/ast"
)

// Path is an ordered list of response keys (string) and list indices (int)
// locating a value inside the response (spec.md §4.7 "path tracking"). It
// is its own type rather than an alias of coercion.Path: the two packages'
// paths are conceptually the same shape but serve different errors, and
// keeping them distinct avoids execution depending on coercion's error
// type for something as load-bearing as response-shape tracking.
type Path []interface{}

// Append returns a new Path with key appended, never mutating p — sibling
// fields resolved concurrently each need their own tail frame (spec.md §5
// "paths are built by structural sharing, each concurrent branch appends to
// its own copy").
func (p Path) Append(key interface{}) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = key
	return out
}

func (p Path) clone() []interface{} {
	if len(p) == 0 {
		return nil
	}
	out := make([]interface{}, len(p))
	copy(out, p)
	return out
}

// FieldError is a located, response-shaped error (spec.md §7 kind 5
// "Resolver error" and kind 6 "Internal invariant violation", both of which
// surface through here once caught at the per-field dispatch boundary).
type FieldError struct {
	Message   string
	Locations []ast.Position
	Path      []interface{}
}

func (e *FieldError) Error() string {
	if len(e.Path) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (path %v)", e.Message, e.Path)
}

func fieldErrorf(doc *ast.Document, fieldRef int, path Path, format string, args ...interface{}) *FieldError {
	return &FieldError{
		Message:   fmt.Sprintf(format, args...),
		Locations: fieldLocations(doc, fieldRef),
		Path:      path.clone(),
	}
}

// locatedFieldError wraps err's message with path and the field's source
// location, keeping the resolver's original message intact (spec.md §7
// "the resolver's error message is preserved, only location/path are
// added").
func locatedFieldError(doc *ast.Document, fieldRef int, err error, path Path) *FieldError {
	return &FieldError{
		Message:   err.Error(),
		Locations: fieldLocations(doc, fieldRef),
		Path:      path.clone(),
	}
}

func fieldLocations(doc *ast.Document, fieldRef int) []ast.Position {
	if doc == nil || fieldRef < 0 {
		return nil
	}
	loc := doc.Fields[fieldRef].Loc
	if !loc.HasLocation() {
		return nil
	}
	return []ast.Position{doc.Input.Position(loc.Start)}
}

// responseKeyOf mirrors ast.Document.FieldResponseKey for callers that only
// have the ref.
func responseKeyOf(doc *ast.Document, fieldRef int) string {
	return doc.FieldResponseKey(fieldRef)
}
