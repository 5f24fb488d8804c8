package lexer

// Source wraps input text with a name and a logical origin offset
// (spec.md §3 "Source"), used to translate lexer byte offsets into
// user-facing line/column pairs and, for embedded GraphQL (e.g. a query
// string inside a larger file), to shift those positions by the embedding
// location.
type Source struct {
	Body           []byte
	Name           string
	LocationOffset LocationOffset
}

// LocationOffset is {line>=1, column>=1} per spec.md §3.
type LocationOffset struct {
	Line   uint32
	Column uint32
}

// NewSource builds a Source with the default name "GraphQL request" and no
// location offset, matching the common case of a top-level request body.
func NewSource(body []byte) *Source {
	return &Source{
		Body:           body,
		Name:           "GraphQL request",
		LocationOffset: LocationOffset{Line: 1, Column: 1},
	}
}

// Error is a lexer-level syntax error: (source, position, message) per
// spec.md §4.1 "Errors", prior to being translated into a located,
// user-facing error by the caller (pkg/astparser / pkg/operationreport).
type Error struct {
	Message string
	Source  *Source
	Position uint32
}

func (e *Error) Error() string {
	return e.Message
}
