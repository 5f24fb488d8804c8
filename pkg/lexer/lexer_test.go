package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexigraph/graphql/pkg/ast"
)

func allTokens(t *testing.T, src string) []Token {
	t.Helper()
	input := &ast.Input{}
	l := NewLexer(NewSource([]byte(src)), input)
	var toks []Token
	for {
		idx, err := l.Advance()
		require.NoError(t, err)
		tok := l.Token(idx)
		toks = append(toks, tok)
		if tok.Kind == EOF {
			break
		}
	}
	return toks
}

func TestLexer_Punctuators(t *testing.T) {
	toks := allTokens(t, "!$&():=@[]{}|...")
	kinds := make([]Kind, 0, len(toks))
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []Kind{BANG, DOLLAR, AMP, PAREN_L, PAREN_R, COLON, EQUALS, AT, BRACKET_L, BRACKET_R, BRACE_L, BRACE_R, PIPE, SPREAD, EOF}, kinds)
}

func TestLexer_NamesAndNumbers(t *testing.T) {
	input := &ast.Input{}
	l := NewLexer(NewSource([]byte("hero _private42 0 -9 3.14 6.022e23")), input)

	idx, err := l.Advance()
	require.NoError(t, err)
	tok := l.Token(idx)
	assert.Equal(t, NAME, tok.Kind)
	assert.Equal(t, "hero", l.Literal(tok))

	idx, _ = l.Advance()
	tok = l.Token(idx)
	assert.Equal(t, NAME, tok.Kind)
	assert.Equal(t, "_private42", l.Literal(tok))

	idx, _ = l.Advance()
	tok = l.Token(idx)
	assert.Equal(t, INT, tok.Kind)
	assert.Equal(t, "0", l.Literal(tok))

	idx, _ = l.Advance()
	tok = l.Token(idx)
	assert.Equal(t, INT, tok.Kind)
	assert.Equal(t, "-9", l.Literal(tok))

	idx, _ = l.Advance()
	tok = l.Token(idx)
	assert.Equal(t, FLOAT, tok.Kind)
	assert.Equal(t, "3.14", l.Literal(tok))

	idx, _ = l.Advance()
	tok = l.Token(idx)
	assert.Equal(t, FLOAT, tok.Kind)
	assert.Equal(t, "6.022e23", l.Literal(tok))
}

func TestLexer_LeadingZeroIsError(t *testing.T) {
	input := &ast.Input{}
	l := NewLexer(NewSource([]byte("01")), input)
	_, err := l.Advance()
	require.Error(t, err)
}

func TestLexer_NameImmediatelyAfterNumberIsError(t *testing.T) {
	input := &ast.Input{}
	l := NewLexer(NewSource([]byte("1x")), input)
	_, err := l.Advance()
	require.Error(t, err)
}

func TestLexer_StringEscapes(t *testing.T) {
	input := &ast.Input{}
	l := NewLexer(NewSource([]byte(`"hello\nworld!\t\\\""`)), input)
	idx, err := l.Advance()
	require.NoError(t, err)
	tok := l.Token(idx)
	assert.Equal(t, STRING, tok.Kind)
	assert.Equal(t, "hello\nworld!\t\\\"", l.Literal(tok))
}

func TestLexer_SurrogatePairEscape(t *testing.T) {
	input := &ast.Input{}
	// U+1F600 GRINNING FACE encoded as a UTF-16 surrogate pair.
	l := NewLexer(NewSource([]byte("\"\\uD83D\\uDE00\"")), input)
	idx, err := l.Advance()
	require.NoError(t, err)
	tok := l.Token(idx)
	assert.Equal(t, STRING, tok.Kind)
	assert.Equal(t, "😀", l.Literal(tok))
}

func TestLexer_UnterminatedStringOnNewline(t *testing.T) {
	input := &ast.Input{}
	l := NewLexer(NewSource([]byte("\"abc\ndef\"")), input)
	_, err := l.Advance()
	require.Error(t, err)
}

func TestLexer_BlockString(t *testing.T) {
	src := "\"\"\"\n    Hello,\n      World!\n\n    Yours,\n      GraphQL.\n  \"\"\""
	input := &ast.Input{}
	l := NewLexer(NewSource([]byte(src)), input)
	idx, err := l.Advance()
	require.NoError(t, err)
	tok := l.Token(idx)
	require.Equal(t, BLOCK_STRING, tok.Kind)
	assert.Equal(t, "Hello,\n  World!\n\nYours,\n  GraphQL.", l.Literal(tok))
}

func TestBlockStringValue_IndependentOfIndentDepth(t *testing.T) {
	shallow := BlockStringValue("\n  a\n  b\n")
	deep := BlockStringValue("\n      a\n      b\n")
	assert.Equal(t, shallow, deep)
}

func TestLexer_CommentsAreSkippedButLinked(t *testing.T) {
	input := &ast.Input{}
	l := NewLexer(NewSource([]byte("# a comment\nhero")), input)
	idx, err := l.Advance()
	require.NoError(t, err)
	tok := l.Token(idx)
	assert.Equal(t, NAME, tok.Kind)
	assert.Equal(t, "hero", l.Literal(tok))

	// Walk backwards from the NAME token through Prev links; a COMMENT
	// token must be reachable even though Advance() never returned it.
	cur := tok.Prev
	found := false
	for cur != NoToken {
		if l.Token(cur).Kind == COMMENT {
			found = true
			break
		}
		cur = l.Token(cur).Prev
	}
	assert.True(t, found, "comment token should remain reachable via the linked list")
}

func TestLexer_LookaheadDoesNotConsume(t *testing.T) {
	input := &ast.Input{}
	l := NewLexer(NewSource([]byte("hero name")), input)

	peekIdx, err := l.Lookahead()
	require.NoError(t, err)
	assert.Equal(t, "hero", l.Literal(l.Token(peekIdx)))

	peekIdx2, err := l.Lookahead()
	require.NoError(t, err)
	assert.Equal(t, peekIdx, peekIdx2)

	advIdx, err := l.Advance()
	require.NoError(t, err)
	assert.Equal(t, peekIdx, advIdx)

	nextIdx, err := l.Advance()
	require.NoError(t, err)
	assert.Equal(t, "name", l.Literal(l.Token(nextIdx)))
}

func TestLexer_EOFIsStable(t *testing.T) {
	input := &ast.Input{}
	l := NewLexer(NewSource([]byte("")), input)
	first, err := l.Advance()
	require.NoError(t, err)
	assert.Equal(t, EOF, l.Token(first).Kind)
	second, err := l.Advance()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestLexer_RoundTrip exercises the lex round-trip property from spec.md
// §8: concatenating body[t.Start:t.End] across every non-synthetic token
// reproduces the significant (non-whitespace) structure of the source.
func TestLexer_RoundTrip(t *testing.T) {
	src := `{ hero(episode: EMPIRE) { name friends { name } } }`
	input := &ast.Input{}
	source := NewSource([]byte(src))
	l := NewLexer(source, input)
	var rebuilt []byte
	for {
		idx, err := l.Advance()
		require.NoError(t, err)
		tok := l.Token(idx)
		if tok.Kind == SOF {
			continue
		}
		if tok.Kind == EOF {
			break
		}
		rebuilt = append(rebuilt, source.Body[tok.Start:tok.End]...)
		rebuilt = append(rebuilt, ' ')
	}
	assert.Equal(t, "{ hero ( episode : EMPIRE ) { name friends { name } } } ", string(rebuilt))
}
