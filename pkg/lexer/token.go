// Package lexer tokenizes GraphQL source text into a doubly linked token
// stream (spec.md §4.1). Tokens are arena-allocated: the Lexer owns a
// growing []Token and every Token carries Prev/Next indices into that
// arena rather than pointers, matching spec.md §9's "Token linked list"
// design note.
package lexer

import "github.com/lexigraph/graphql/pkg/ast"

// Kind discriminates a Token's lexical category (spec.md §3 "Token").
type Kind int

const (
	SOF Kind = iota
	EOF
	BANG
	DOLLAR
	AMP
	PAREN_L
	PAREN_R
	SPREAD
	COLON
	EQUALS
	AT
	BRACKET_L
	BRACKET_R
	BRACE_L
	BRACE_R
	PIPE
	NAME
	INT
	FLOAT
	STRING
	BLOCK_STRING
	COMMENT
)

func (k Kind) String() string {
	switch k {
	case SOF:
		return "<SOF>"
	case EOF:
		return "<EOF>"
	case BANG:
		return "!"
	case DOLLAR:
		return "$"
	case AMP:
		return "&"
	case PAREN_L:
		return "("
	case PAREN_R:
		return ")"
	case SPREAD:
		return "..."
	case COLON:
		return ":"
	case EQUALS:
		return "="
	case AT:
		return "@"
	case BRACKET_L:
		return "["
	case BRACKET_R:
		return "]"
	case BRACE_L:
		return "{"
	case BRACE_R:
		return "}"
	case PIPE:
		return "|"
	case NAME:
		return "Name"
	case INT:
		return "Int"
	case FLOAT:
		return "Float"
	case STRING:
		return "String"
	case BLOCK_STRING:
		return "BlockString"
	case COMMENT:
		return "Comment"
	default:
		return "Unknown"
	}
}

// -1 is the null sentinel for Prev/Next, standing in for the teacher's
// arena-index convention (no nil pointers in the token arena).
const NoToken = -1

// Token is one entry in the lexer's arena. Literal is only meaningful for
// NAME, INT, FLOAT, STRING, BLOCK_STRING and COMMENT kinds and, for STRING
// and BLOCK_STRING, holds the *cooked* value (escapes resolved, block
// indentation stripped) rather than the raw source slice.
type Token struct {
	Kind    Kind
	Start   uint32 // byte offset into the Source body, inclusive
	End     uint32 // byte offset into the Source body, exclusive
	Line    uint32
	Column  uint32
	Literal ast.ByteSliceReference
	Prev    int
	Next    int
}
