package astparser

import (
	"github.com/lexigraph/graphql/pkg/ast"
	"github.com/lexigraph/graphql/pkg/lexer"
)

// parseDocument implements spec.md §4.2 "parse_document → { definitions+ }".
func (p *Parser) parseDocument() {
	p.expect(lexer.SOF)
	if p.cur.Kind == lexer.EOF {
		p.unexpected()
	}
	for p.cur.Kind != lexer.EOF {
		p.parseDefinition()
	}
}

// parseDefinition dispatches on the leading token exactly as spec.md §4.2
// describes: braces or the query/mutation/subscription/fragment keywords
// select an executable definition; the type-system keywords (including
// "extend") select an SDL definition.
func (p *Parser) parseDefinition() {
	switch {
	case p.cur.Kind == lexer.BRACE_L:
		p.parseOperationDefinition(true)
	case p.atKeyword("query"), p.atKeyword("mutation"), p.atKeyword("subscription"):
		p.parseOperationDefinition(false)
	case p.atKeyword("fragment"):
		p.parseFragmentDefinition()
	case p.atKeyword("schema"):
		p.parseSchemaDefinition(ast.ByteSliceReference{})
	case p.atKeyword("scalar"):
		p.parseScalarTypeDefinition(ast.ByteSliceReference{})
	case p.atKeyword("type"):
		p.parseObjectTypeDefinition(ast.ByteSliceReference{})
	case p.atKeyword("interface"):
		p.parseInterfaceTypeDefinition(ast.ByteSliceReference{})
	case p.atKeyword("union"):
		p.parseUnionTypeDefinition(ast.ByteSliceReference{})
	case p.atKeyword("enum"):
		p.parseEnumTypeDefinition(ast.ByteSliceReference{})
	case p.atKeyword("input"):
		p.parseInputObjectTypeDefinition(ast.ByteSliceReference{})
	case p.atKeyword("directive"):
		p.parseDirectiveDefinition(ast.ByteSliceReference{})
	case p.atKeyword("extend"):
		p.parseTypeExtension()
	case p.cur.Kind == lexer.STRING || p.cur.Kind == lexer.BLOCK_STRING:
		// A leading string literal is a description; re-dispatch once it's
		// consumed, passing it down to whichever definition follows.
		p.parseDescribedDefinition()
	default:
		p.unexpected()
	}
}

func (p *Parser) parseDescribedDefinition() {
	desc := p.cur.Literal
	p.advance()
	switch {
	case p.atKeyword("schema"):
		p.parseSchemaDefinition(desc)
	case p.atKeyword("scalar"):
		p.parseScalarTypeDefinition(desc)
	case p.atKeyword("type"):
		p.parseObjectTypeDefinition(desc)
	case p.atKeyword("interface"):
		p.parseInterfaceTypeDefinition(desc)
	case p.atKeyword("union"):
		p.parseUnionTypeDefinition(desc)
	case p.atKeyword("enum"):
		p.parseEnumTypeDefinition(desc)
	case p.atKeyword("input"):
		p.parseInputObjectTypeDefinition(desc)
	case p.atKeyword("directive"):
		p.parseDirectiveDefinition(desc)
	default:
		p.expectedButFound("a type system definition")
	}
}
