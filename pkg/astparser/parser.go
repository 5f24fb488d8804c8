// Package astparser implements the recursive-descent parser described in
// spec.md §4.2: one token of lookahead over pkg/lexer, building an
// immutable pkg/ast.Document and reporting precise syntax errors with
// source locations via pkg/operationreport.
package astparser

import (
	"fmt"

	"github.com/lexigraph/graphql/pkg/ast"
	"github.com/lexigraph/graphql/pkg/lexer"
	"github.com/lexigraph/graphql/pkg/operationreport"
)

// Parser is reusable across documents: Parse resets its internal state
// (but not the *ast.Document it's given, which the caller owns) on every
// call, mirroring the teacher's astparser.NewParser()/parser.Parse(doc,
// report) allocation-reuse idiom (v2/pkg/asttransform/baseschema.go).
type Parser struct {
	lex    *lexer.Lexer
	doc    *ast.Document
	report *operationreport.Report

	curIdx int
	cur    lexer.Token
}

// NewParser returns a Parser with no document bound yet; call Parse to
// bind one.
func NewParser() *Parser {
	return &Parser{}
}

// bail unwinds the current Parse call after the first syntax error has
// already been recorded on p.report. Recursive-descent parsers that stop
// at the first error (rather than attempting error recovery) commonly use
// panic/recover to avoid threading an error return through every
// production; spec.md §4.2 only requires the *first* syntax error's
// location, so no recovery strategy is needed here.
type bail struct{}

// Parse parses doc.Input.RawBytes (which the caller must have already
// populated, e.g. via doc.Input.ResetInputBytes) as a GraphQL document and
// appends every node it builds onto doc. Errors are reported on report;
// Parse never returns an error value itself, matching
// astparser.Parser.Parse(document, report) in the teacher sample.
func (p *Parser) Parse(doc *ast.Document, report *operationreport.Report) {
	p.ParseSource(lexer.NewSource(doc.Input.RawBytes), doc, report)
}

// ParseSource is Parse but with an explicit Source (name + location
// offset), used for embedded GraphQL or to get accurate error positions
// for documents built outside doc.Input.RawBytes.
func (p *Parser) ParseSource(source *lexer.Source, doc *ast.Document, report *operationreport.Report) {
	p.doc = doc
	p.report = report
	p.lex = lexer.NewLexer(source, &doc.Input)

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bail); !ok {
				panic(r)
			}
		}
	}()

	p.advance()
	p.parseDocument()
}

func (p *Parser) advance() {
	idx, err := p.lex.Advance()
	if err != nil {
		p.syntaxErrorAt(err.Error(), p.lex.Token(p.curIdx))
	}
	p.curIdx = idx
	p.cur = p.lex.Token(idx)
}

func (p *Parser) lookaheadKind() lexer.Kind {
	idx, err := p.lex.Lookahead()
	if err != nil {
		return lexer.EOF
	}
	return p.lex.Token(idx).Kind
}

func (p *Parser) literal() string {
	return p.lex.Literal(p.cur)
}

func (p *Parser) atKeyword(keyword string) bool {
	return p.cur.Kind == lexer.NAME && p.literal() == keyword
}

func (p *Parser) loc(startIdx int) ast.Location {
	return ast.Location{Start: uint32(startIdx), End: uint32(p.curIdx)}
}

func (p *Parser) syntaxErrorAt(message string, tok lexer.Token) {
	p.report.AddExternalError(operationreport.ExternalError{
		Message:   message,
		Locations: []operationreport.Position{{Line: tok.Line, Column: tok.Column}},
	})
	panic(bail{})
}

func (p *Parser) unexpected() {
	p.syntaxErrorAt(fmt.Sprintf("Syntax Error: Unexpected %s.", p.describe(p.cur)), p.cur)
}

func (p *Parser) expectedButFound(expected string) {
	p.syntaxErrorAt(fmt.Sprintf("Syntax Error: Expected %s, found %s.", expected, p.describe(p.cur)), p.cur)
}

func (p *Parser) describe(tok lexer.Token) string {
	switch tok.Kind {
	case lexer.EOF:
		return "<EOF>"
	case lexer.NAME, lexer.INT, lexer.FLOAT, lexer.STRING, lexer.BLOCK_STRING:
		return fmt.Sprintf("%s \"%s\"", tok.Kind, p.lex.Literal(tok))
	default:
		return fmt.Sprintf("\"%s\"", tok.Kind)
	}
}

// expect consumes the current token if it has the given kind, reporting a
// syntax error otherwise.
func (p *Parser) expect(kind lexer.Kind) lexer.Token {
	if p.cur.Kind != kind {
		p.expectedButFound(kind.String())
	}
	tok := p.cur
	p.advance()
	return tok
}

// expectKeyword consumes a NAME token whose literal equals keyword.
func (p *Parser) expectKeyword(keyword string) {
	if !p.atKeyword(keyword) {
		p.expectedButFound(fmt.Sprintf("%q", keyword))
	}
	p.advance()
}

// expectOptionalKeyword consumes a NAME token whose literal equals keyword
// if present, reporting whether it did.
func (p *Parser) expectOptionalKeyword(keyword string) bool {
	if p.atKeyword(keyword) {
		p.advance()
		return true
	}
	return false
}

// parseNameRef consumes a NAME token and returns the ByteSliceReference of
// its literal; nothing is added to doc.Names.
func (p *Parser) parseNameRef() ast.ByteSliceReference {
	tok := p.expect(lexer.NAME)
	return tok.Literal
}
