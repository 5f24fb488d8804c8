package astparser

import (
	"github.com/lexigraph/graphql/pkg/ast"
	"github.com/lexigraph/graphql/pkg/lexer"
)

// parseOperationDefinition handles both the shorthand `{ ... }` query form
// and the full `query Name(...) @dir { ... }` form (spec.md §3
// OperationDefinition, §4.2).
func (p *Parser) parseOperationDefinition(shorthand bool) {
	start := p.curIdx
	opType := ast.OperationTypeQuery
	var name ast.ByteSliceReference
	hasName := false
	var varDefs, directives []int

	if !shorthand {
		switch p.literal() {
		case "query":
			opType = ast.OperationTypeQuery
		case "mutation":
			opType = ast.OperationTypeMutation
		case "subscription":
			opType = ast.OperationTypeSubscription
		}
		p.advance()
		if p.cur.Kind == lexer.NAME {
			name = p.cur.Literal
			hasName = true
			p.advance()
		}
		varDefs = p.parseVariableDefinitions()
		directives = p.parseDirectives()
	}

	selectionSet := p.parseSelectionSet()

	ref := p.doc.AddOperationDefinition(ast.OperationDefinition{
		Loc:                 p.loc(start),
		OperationType:       opType,
		Name:                name,
		HasName:             hasName,
		VariableDefinitions: varDefs,
		Directives:          directives,
		SelectionSet:        selectionSet,
	})
	p.doc.RootNodes = append(p.doc.RootNodes, ast.Node{Kind: ast.NodeKindOperationDefinition, Ref: ref})
}

func (p *Parser) parseVariableDefinitions() []int {
	if p.cur.Kind != lexer.PAREN_L {
		return nil
	}
	p.advance()
	var refs []int
	for p.cur.Kind != lexer.PAREN_R {
		refs = append(refs, p.parseVariableDefinition())
	}
	p.advance()
	return refs
}

func (p *Parser) parseVariableDefinition() int {
	start := p.curIdx
	p.expect(lexer.DOLLAR)
	name := p.parseNameRef()
	p.expect(lexer.COLON)
	typ := p.parseType()

	var def ast.Value
	hasDefault := false
	if p.cur.Kind == lexer.EQUALS {
		p.advance()
		def = p.parseValue(true)
		hasDefault = true
	}
	directives := p.parseDirectives()

	return p.doc.AddVariableDefinition(ast.VariableDefinition{
		Loc:             p.loc(start),
		VariableName:    name,
		Type:            typ,
		DefaultValue:    def,
		HasDefaultValue: hasDefault,
		Directives:      directives,
	})
}

// parseSelectionSet implements spec.md §4.2 "parse_selection_set requires
// `{`, one or more selections, `}`."
func (p *Parser) parseSelectionSet() int {
	start := p.curIdx
	p.expect(lexer.BRACE_L)
	var sels []ast.Selection
	for p.cur.Kind != lexer.BRACE_R {
		sels = append(sels, p.parseSelection())
	}
	if len(sels) == 0 {
		p.expectedButFound("at least one selection")
	}
	p.advance() // consume '}'
	return p.doc.AddSelectionSet(ast.SelectionSet{Loc: p.loc(start), SelectionRefs: sels})
}

func (p *Parser) parseSelection() ast.Selection {
	if p.cur.Kind == lexer.SPREAD {
		return p.parseFragment()
	}
	return ast.Selection{Kind: ast.SelectionKindField, Ref: p.parseField()}
}

func (p *Parser) parseFragment() ast.Selection {
	start := p.curIdx
	p.expect(lexer.SPREAD)
	if p.atKeyword("on") || p.cur.Kind == lexer.AT || p.cur.Kind == lexer.BRACE_L {
		return p.parseInlineFragment(start)
	}
	if p.cur.Kind == lexer.NAME {
		name := p.cur.Literal
		p.advance()
		directives := p.parseDirectives()
		ref := p.doc.AddFragmentSpread(ast.FragmentSpread{
			Loc:          p.loc(start),
			FragmentName: name,
			Directives:   directives,
		})
		return ast.Selection{Kind: ast.SelectionKindFragmentSpread, Ref: ref}
	}
	p.expectedButFound("fragment name or inline fragment")
	return ast.Selection{}
}

func (p *Parser) parseInlineFragment(start int) ast.Selection {
	var cond ast.NamedType
	hasCond := false
	if p.expectOptionalKeyword("on") {
		nameRef := p.parseNameRef()
		cond = ast.NamedType{Name: nameRef}
		hasCond = true
	}
	directives := p.parseDirectives()
	selectionSet := p.parseSelectionSet()
	ref := p.doc.AddInlineFragment(ast.InlineFragment{
		Loc:              p.loc(start),
		HasTypeCondition: hasCond,
		TypeCondition:    cond,
		Directives:       directives,
		SelectionSet:     selectionSet,
	})
	return ast.Selection{Kind: ast.SelectionKindInlineFragment, Ref: ref}
}

// parseField implements spec.md §4.2 "parse_field handles optional alias
// (alias:name), arguments, directives, nested selection set."
func (p *Parser) parseField() int {
	start := p.curIdx
	first := p.parseNameRef()

	var alias, name ast.ByteSliceReference
	hasAlias := false
	if p.cur.Kind == lexer.COLON {
		p.advance()
		name = p.parseNameRef()
		alias = first
		hasAlias = true
	} else {
		name = first
	}

	args := p.parseArguments()
	directives := p.parseDirectives()

	hasSelectionSet := false
	selectionSet := -1
	if p.cur.Kind == lexer.BRACE_L {
		hasSelectionSet = true
		selectionSet = p.parseSelectionSet()
	}

	return p.doc.AddField(ast.Field{
		Loc:             p.loc(start),
		Alias:           alias,
		HasAlias:        hasAlias,
		Name:            name,
		Arguments:       args,
		Directives:      directives,
		HasSelectionSet: hasSelectionSet,
		SelectionSet:    selectionSet,
	})
}

func (p *Parser) parseArguments() []int {
	if p.cur.Kind != lexer.PAREN_L {
		return nil
	}
	p.advance()
	var refs []int
	for p.cur.Kind != lexer.PAREN_R {
		refs = append(refs, p.parseArgument())
	}
	p.advance()
	return refs
}

func (p *Parser) parseArgument() int {
	start := p.curIdx
	name := p.parseNameRef()
	p.expect(lexer.COLON)
	value := p.parseValue(false)
	return p.doc.AddArgument(ast.Argument{Loc: p.loc(start), Name: name, Value: value})
}

func (p *Parser) parseDirectives() []int {
	var refs []int
	for p.cur.Kind == lexer.AT {
		refs = append(refs, p.parseDirective())
	}
	return refs
}

func (p *Parser) parseDirective() int {
	start := p.curIdx
	p.expect(lexer.AT)
	name := p.parseNameRef()
	args := p.parseArguments()
	return p.doc.AddDirective(ast.Directive{Loc: p.loc(start), Name: name, Arguments: args})
}

func (p *Parser) parseFragmentDefinition() {
	start := p.curIdx
	p.expectKeyword("fragment")
	name := p.parseNameRef()
	p.expectKeyword("on")
	typeCondName := p.parseNameRef()
	directives := p.parseDirectives()
	selectionSet := p.parseSelectionSet()

	ref := p.doc.AddFragmentDefinition(ast.FragmentDefinition{
		Loc:           p.loc(start),
		Name:          name,
		TypeCondition: ast.NamedType{Name: typeCondName},
		Directives:    directives,
		SelectionSet:  selectionSet,
	})
	p.doc.RootNodes = append(p.doc.RootNodes, ast.Node{Kind: ast.NodeKindFragmentDefinition, Ref: ref})
}

// parseType implements spec.md §4.2 "parse_type recursive: [T] or T! or
// Name."
func (p *Parser) parseType() ast.Type {
	var t ast.Type
	if p.cur.Kind == lexer.BRACKET_L {
		p.advance()
		inner := p.parseType()
		p.expect(lexer.BRACKET_R)
		t = p.doc.AddListType(inner)
	} else {
		name := p.parseNameRef()
		t = p.doc.AddNamedTypeRef(name)
	}
	if p.cur.Kind == lexer.BANG {
		p.advance()
		t = p.doc.AddNonNullType(t)
	}
	return t
}
