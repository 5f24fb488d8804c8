package astparser

import (
	"github.com/lexigraph/graphql/pkg/ast"
	"github.com/lexigraph/graphql/pkg/lexer"
)

func (p *Parser) parseSchemaDefinition(desc ast.ByteSliceReference) {
	start := p.curIdx
	p.expectKeyword("schema")
	directives := p.parseDirectives()
	p.expect(lexer.BRACE_L)
	var roots []int
	for p.cur.Kind != lexer.BRACE_R {
		roots = append(roots, p.parseRootOperationTypeDefinition())
	}
	p.advance()
	ref := len(p.doc.SchemaDefinitions)
	p.doc.SchemaDefinitions = append(p.doc.SchemaDefinitions, ast.SchemaDefinition{
		Loc:                          p.loc(start),
		Directives:                   directives,
		RootOperationTypeDefinitions: roots,
	})
	_ = desc
	p.doc.RootNodes = append(p.doc.RootNodes, ast.Node{Kind: ast.NodeKindSchemaDefinition, Ref: ref})
}

func (p *Parser) parseRootOperationTypeDefinition() int {
	start := p.curIdx
	var opType ast.OperationType
	switch p.literal() {
	case "query":
		opType = ast.OperationTypeQuery
	case "mutation":
		opType = ast.OperationTypeMutation
	case "subscription":
		opType = ast.OperationTypeSubscription
	default:
		p.expectedButFound("\"query\", \"mutation\" or \"subscription\"")
	}
	p.advance()
	p.expect(lexer.COLON)
	name := p.parseNameRef()
	p.doc.RootOperationTypeDefinitions = append(p.doc.RootOperationTypeDefinitions, ast.RootOperationTypeDefinition{
		Loc:           p.loc(start),
		OperationType: opType,
		NamedType:     ast.NamedType{Name: name},
	})
	return len(p.doc.RootOperationTypeDefinitions) - 1
}

func (p *Parser) parseImplementsInterfaces() []ast.ByteSliceReference {
	if !p.atKeyword("implements") {
		return nil
	}
	p.advance()
	if p.cur.Kind == lexer.AMP {
		p.advance()
	}
	var names []ast.ByteSliceReference
	names = append(names, p.parseNameRef())
	for p.cur.Kind == lexer.AMP {
		p.advance()
		names = append(names, p.parseNameRef())
	}
	return names
}

func (p *Parser) parseScalarTypeDefinition(desc ast.ByteSliceReference) {
	start := p.curIdx
	p.expectKeyword("scalar")
	name := p.parseNameRef()
	directives := p.parseDirectives()
	ref := len(p.doc.ScalarTypeDefinitions)
	p.doc.ScalarTypeDefinitions = append(p.doc.ScalarTypeDefinitions, ast.ScalarTypeDefinition{
		Loc: p.loc(start), Description: desc, HasDescription: desc != (ast.ByteSliceReference{}),
		Name: name, Directives: directives,
	})
	p.doc.RootNodes = append(p.doc.RootNodes, ast.Node{Kind: ast.NodeKindScalarTypeDefinition, Ref: ref})
}

func (p *Parser) parseObjectTypeDefinition(desc ast.ByteSliceReference) {
	start := p.curIdx
	p.expectKeyword("type")
	name := p.parseNameRef()
	interfaces := p.parseImplementsInterfaces()
	directives := p.parseDirectives()
	fields := p.parseFieldsDefinition()
	ref := len(p.doc.ObjectTypeDefinitions)
	p.doc.ObjectTypeDefinitions = append(p.doc.ObjectTypeDefinitions, ast.ObjectTypeDefinition{
		Loc: p.loc(start), Description: desc, HasDescription: desc != (ast.ByteSliceReference{}),
		Name: name, ImplementsInterfaces: interfaces, Directives: directives, FieldsDefinition: fields,
	})
	p.doc.RootNodes = append(p.doc.RootNodes, ast.Node{Kind: ast.NodeKindObjectTypeDefinition, Ref: ref})
}

func (p *Parser) parseInterfaceTypeDefinition(desc ast.ByteSliceReference) {
	start := p.curIdx
	p.expectKeyword("interface")
	name := p.parseNameRef()
	interfaces := p.parseImplementsInterfaces()
	directives := p.parseDirectives()
	fields := p.parseFieldsDefinition()
	ref := len(p.doc.InterfaceTypeDefinitions)
	p.doc.InterfaceTypeDefinitions = append(p.doc.InterfaceTypeDefinitions, ast.InterfaceTypeDefinition{
		Loc: p.loc(start), Description: desc, HasDescription: desc != (ast.ByteSliceReference{}),
		Name: name, ImplementsInterfaces: interfaces, Directives: directives, FieldsDefinition: fields,
	})
	p.doc.RootNodes = append(p.doc.RootNodes, ast.Node{Kind: ast.NodeKindInterfaceTypeDefinition, Ref: ref})
}

func (p *Parser) parseFieldsDefinition() []int {
	if p.cur.Kind != lexer.BRACE_L {
		return nil
	}
	p.advance()
	var refs []int
	for p.cur.Kind != lexer.BRACE_R {
		refs = append(refs, p.parseFieldDefinition())
	}
	p.advance()
	return refs
}

func (p *Parser) parseFieldDefinition() int {
	start := p.curIdx
	desc := p.maybeDescription()
	name := p.parseNameRef()
	args := p.parseArgumentsDefinition()
	p.expect(lexer.COLON)
	typ := p.parseType()
	directives := p.parseDirectives()
	p.doc.FieldDefinitions = append(p.doc.FieldDefinitions, ast.FieldDefinition{
		Loc: p.loc(start), Description: desc, HasDescription: desc != (ast.ByteSliceReference{}),
		Name: name, ArgumentsDefinition: args, Type: typ, Directives: directives,
	})
	return len(p.doc.FieldDefinitions) - 1
}

func (p *Parser) parseArgumentsDefinition() []int {
	if p.cur.Kind != lexer.PAREN_L {
		return nil
	}
	p.advance()
	var refs []int
	for p.cur.Kind != lexer.PAREN_R {
		refs = append(refs, p.parseInputValueDefinition())
	}
	p.advance()
	return refs
}

func (p *Parser) parseInputValueDefinition() int {
	start := p.curIdx
	desc := p.maybeDescription()
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
	p.doc.InputValueDefinitions = append(p.doc.InputValueDefinitions, ast.InputValueDefinition{
		Loc: p.loc(start), Description: desc, HasDescription: desc != (ast.ByteSliceReference{}),
		Name: name, Type: typ, DefaultValue: def, HasDefaultValue: hasDefault, Directives: directives,
	})
	return len(p.doc.InputValueDefinitions) - 1
}

func (p *Parser) maybeDescription() ast.ByteSliceReference {
	if p.cur.Kind == lexer.STRING || p.cur.Kind == lexer.BLOCK_STRING {
		ref := p.cur.Literal
		p.advance()
		return ref
	}
	return ast.ByteSliceReference{}
}

func (p *Parser) parseUnionTypeDefinition(desc ast.ByteSliceReference) {
	start := p.curIdx
	p.expectKeyword("union")
	name := p.parseNameRef()
	directives := p.parseDirectives()
	var members []ast.ByteSliceReference
	if p.cur.Kind == lexer.EQUALS {
		p.advance()
		if p.cur.Kind == lexer.PIPE {
			p.advance()
		}
		members = append(members, p.parseNameRef())
		for p.cur.Kind == lexer.PIPE {
			p.advance()
			members = append(members, p.parseNameRef())
		}
	}
	ref := len(p.doc.UnionTypeDefinitions)
	p.doc.UnionTypeDefinitions = append(p.doc.UnionTypeDefinitions, ast.UnionTypeDefinition{
		Loc: p.loc(start), Description: desc, HasDescription: desc != (ast.ByteSliceReference{}),
		Name: name, Directives: directives, UnionMemberTypes: members,
	})
	p.doc.RootNodes = append(p.doc.RootNodes, ast.Node{Kind: ast.NodeKindUnionTypeDefinition, Ref: ref})
}

func (p *Parser) parseEnumTypeDefinition(desc ast.ByteSliceReference) {
	start := p.curIdx
	p.expectKeyword("enum")
	name := p.parseNameRef()
	directives := p.parseDirectives()
	var values []int
	if p.cur.Kind == lexer.BRACE_L {
		p.advance()
		for p.cur.Kind != lexer.BRACE_R {
			values = append(values, p.parseEnumValueDefinition())
		}
		p.advance()
	}
	ref := len(p.doc.EnumTypeDefinitions)
	p.doc.EnumTypeDefinitions = append(p.doc.EnumTypeDefinitions, ast.EnumTypeDefinition{
		Loc: p.loc(start), Description: desc, HasDescription: desc != (ast.ByteSliceReference{}),
		Name: name, Directives: directives, EnumValuesDefinition: values,
	})
	p.doc.RootNodes = append(p.doc.RootNodes, ast.Node{Kind: ast.NodeKindEnumTypeDefinition, Ref: ref})
}

func (p *Parser) parseEnumValueDefinition() int {
	start := p.curIdx
	desc := p.maybeDescription()
	name := p.parseNameRef()
	directives := p.parseDirectives()
	p.doc.EnumValueDefinitions = append(p.doc.EnumValueDefinitions, ast.EnumValueDefinition{
		Loc: p.loc(start), Description: desc, HasDescription: desc != (ast.ByteSliceReference{}),
		EnumValue: name, Directives: directives,
	})
	return len(p.doc.EnumValueDefinitions) - 1
}

func (p *Parser) parseInputObjectTypeDefinition(desc ast.ByteSliceReference) {
	start := p.curIdx
	p.expectKeyword("input")
	name := p.parseNameRef()
	directives := p.parseDirectives()
	var fields []int
	if p.cur.Kind == lexer.BRACE_L {
		p.advance()
		for p.cur.Kind != lexer.BRACE_R {
			fields = append(fields, p.parseInputValueDefinition())
		}
		p.advance()
	}
	ref := len(p.doc.InputObjectTypeDefinitions)
	p.doc.InputObjectTypeDefinitions = append(p.doc.InputObjectTypeDefinitions, ast.InputObjectTypeDefinition{
		Loc: p.loc(start), Description: desc, HasDescription: desc != (ast.ByteSliceReference{}),
		Name: name, Directives: directives, InputFieldsDefinition: fields,
	})
	p.doc.RootNodes = append(p.doc.RootNodes, ast.Node{Kind: ast.NodeKindInputObjectTypeDefinition, Ref: ref})
}

func (p *Parser) parseDirectiveDefinition(desc ast.ByteSliceReference) {
	start := p.curIdx
	p.expectKeyword("directive")
	p.expect(lexer.AT)
	name := p.parseNameRef()
	args := p.parseArgumentsDefinition()
	repeatable := p.expectOptionalKeyword("repeatable")
	p.expectKeyword("on")
	locs := p.parseDirectiveLocations()
	ref := len(p.doc.DirectiveDefinitions)
	p.doc.DirectiveDefinitions = append(p.doc.DirectiveDefinitions, ast.DirectiveDefinition{
		Loc: p.loc(start), Description: desc, HasDescription: desc != (ast.ByteSliceReference{}),
		Name: name, ArgumentsDefinition: args, Repeatable: repeatable, DirectiveLocations: locs,
	})
	p.doc.RootNodes = append(p.doc.RootNodes, ast.Node{Kind: ast.NodeKindDirectiveDefinition, Ref: ref})
}

func (p *Parser) parseDirectiveLocations() []ast.DirectiveLocation {
	if p.cur.Kind == lexer.PIPE {
		p.advance()
	}
	var locs []ast.DirectiveLocation
	locs = append(locs, ast.DirectiveLocation(p.parseNameString()))
	for p.cur.Kind == lexer.PIPE {
		p.advance()
		locs = append(locs, ast.DirectiveLocation(p.parseNameString()))
	}
	return locs
}

func (p *Parser) parseNameString() string {
	tok := p.expect(lexer.NAME)
	return p.lex.Literal(tok)
}

// parseTypeExtension implements the "extend" branch of spec.md §4.2's
// definition dispatch table.
func (p *Parser) parseTypeExtension() {
	start := p.curIdx
	p.expectKeyword("extend")
	switch {
	case p.atKeyword("schema"):
		p.advance()
		directives := p.parseDirectives()
		var roots []int
		if p.cur.Kind == lexer.BRACE_L {
			p.advance()
			for p.cur.Kind != lexer.BRACE_R {
				roots = append(roots, p.parseRootOperationTypeDefinition())
			}
			p.advance()
		}
		ref := len(p.doc.SchemaExtensions)
		p.doc.SchemaExtensions = append(p.doc.SchemaExtensions, ast.SchemaExtension{SchemaDefinition: ast.SchemaDefinition{
			Loc: p.loc(start), Directives: directives, RootOperationTypeDefinitions: roots,
		}})
		p.doc.RootNodes = append(p.doc.RootNodes, ast.Node{Kind: ast.NodeKindSchemaExtension, Ref: ref})
	case p.atKeyword("scalar"):
		p.advance()
		name := p.parseNameRef()
		directives := p.parseDirectives()
		ref := len(p.doc.ScalarTypeExtensions)
		p.doc.ScalarTypeExtensions = append(p.doc.ScalarTypeExtensions, ast.ScalarTypeExtension{ScalarTypeDefinition: ast.ScalarTypeDefinition{
			Loc: p.loc(start), Name: name, Directives: directives,
		}})
		p.doc.RootNodes = append(p.doc.RootNodes, ast.Node{Kind: ast.NodeKindScalarTypeExtension, Ref: ref})
	case p.atKeyword("type"):
		p.advance()
		name := p.parseNameRef()
		interfaces := p.parseImplementsInterfaces()
		directives := p.parseDirectives()
		fields := p.parseFieldsDefinition()
		ref := len(p.doc.ObjectTypeExtensions)
		p.doc.ObjectTypeExtensions = append(p.doc.ObjectTypeExtensions, ast.ObjectTypeExtension{ObjectTypeDefinition: ast.ObjectTypeDefinition{
			Loc: p.loc(start), Name: name, ImplementsInterfaces: interfaces, Directives: directives, FieldsDefinition: fields,
		}})
		p.doc.RootNodes = append(p.doc.RootNodes, ast.Node{Kind: ast.NodeKindObjectTypeExtension, Ref: ref})
	case p.atKeyword("interface"):
		p.advance()
		name := p.parseNameRef()
		interfaces := p.parseImplementsInterfaces()
		directives := p.parseDirectives()
		fields := p.parseFieldsDefinition()
		ref := len(p.doc.InterfaceTypeExtensions)
		p.doc.InterfaceTypeExtensions = append(p.doc.InterfaceTypeExtensions, ast.InterfaceTypeExtension{InterfaceTypeDefinition: ast.InterfaceTypeDefinition{
			Loc: p.loc(start), Name: name, ImplementsInterfaces: interfaces, Directives: directives, FieldsDefinition: fields,
		}})
		p.doc.RootNodes = append(p.doc.RootNodes, ast.Node{Kind: ast.NodeKindInterfaceTypeExtension, Ref: ref})
	case p.atKeyword("union"):
		p.advance()
		name := p.parseNameRef()
		directives := p.parseDirectives()
		var members []ast.ByteSliceReference
		if p.cur.Kind == lexer.EQUALS {
			p.advance()
			if p.cur.Kind == lexer.PIPE {
				p.advance()
			}
			members = append(members, p.parseNameRef())
			for p.cur.Kind == lexer.PIPE {
				p.advance()
				members = append(members, p.parseNameRef())
			}
		}
		ref := len(p.doc.UnionTypeExtensions)
		p.doc.UnionTypeExtensions = append(p.doc.UnionTypeExtensions, ast.UnionTypeExtension{UnionTypeDefinition: ast.UnionTypeDefinition{
			Loc: p.loc(start), Name: name, Directives: directives, UnionMemberTypes: members,
		}})
		p.doc.RootNodes = append(p.doc.RootNodes, ast.Node{Kind: ast.NodeKindUnionTypeExtension, Ref: ref})
	case p.atKeyword("enum"):
		p.advance()
		name := p.parseNameRef()
		directives := p.parseDirectives()
		var values []int
		if p.cur.Kind == lexer.BRACE_L {
			p.advance()
			for p.cur.Kind != lexer.BRACE_R {
				values = append(values, p.parseEnumValueDefinition())
			}
			p.advance()
		}
		ref := len(p.doc.EnumTypeExtensions)
		p.doc.EnumTypeExtensions = append(p.doc.EnumTypeExtensions, ast.EnumTypeExtension{EnumTypeDefinition: ast.EnumTypeDefinition{
			Loc: p.loc(start), Name: name, Directives: directives, EnumValuesDefinition: values,
		}})
		p.doc.RootNodes = append(p.doc.RootNodes, ast.Node{Kind: ast.NodeKindEnumTypeExtension, Ref: ref})
	case p.atKeyword("input"):
		p.advance()
		name := p.parseNameRef()
		directives := p.parseDirectives()
		var fields []int
		if p.cur.Kind == lexer.BRACE_L {
			p.advance()
			for p.cur.Kind != lexer.BRACE_R {
				fields = append(fields, p.parseInputValueDefinition())
			}
			p.advance()
		}
		ref := len(p.doc.InputObjectTypeExtensions)
		p.doc.InputObjectTypeExtensions = append(p.doc.InputObjectTypeExtensions, ast.InputObjectTypeExtension{InputObjectTypeDefinition: ast.InputObjectTypeDefinition{
			Loc: p.loc(start), Name: name, Directives: directives, InputFieldsDefinition: fields,
		}})
		p.doc.RootNodes = append(p.doc.RootNodes, ast.Node{Kind: ast.NodeKindInputObjectTypeExtension, Ref: ref})
	default:
		p.expectedButFound("a type system definition after \"extend\"")
	}
}
