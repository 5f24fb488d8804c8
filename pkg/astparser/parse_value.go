package astparser

import (
	"github.com/lexigraph/graphql/pkg/ast"
	"github.com/lexigraph/graphql/pkg/lexer"
)

// parseValue implements spec.md §4.2 "parse_value(is_const): const
// disallows $var." isConst is true inside default-value position (variable
// defaults, input-object-type field defaults, directive-definition
// argument defaults), where a $variable reference is a syntax error.
func (p *Parser) parseValue(isConst bool) ast.Value {
	switch p.cur.Kind {
	case lexer.BRACKET_L:
		return p.parseListValue(isConst)
	case lexer.BRACE_L:
		return p.parseObjectValue(isConst)
	case lexer.INT:
		ref := p.cur.Literal
		p.advance()
		idx := len(p.doc.IntValues)
		p.doc.IntValues = append(p.doc.IntValues, ast.IntValue{Raw: ref})
		return ast.Value{Kind: ast.ValueKindInt, Ref: idx}
	case lexer.FLOAT:
		ref := p.cur.Literal
		p.advance()
		idx := len(p.doc.FloatValues)
		p.doc.FloatValues = append(p.doc.FloatValues, ast.FloatValue{Raw: ref})
		return ast.Value{Kind: ast.ValueKindFloat, Ref: idx}
	case lexer.STRING, lexer.BLOCK_STRING:
		ref := p.cur.Literal
		block := p.cur.Kind == lexer.BLOCK_STRING
		p.advance()
		idx := len(p.doc.StringValues)
		p.doc.StringValues = append(p.doc.StringValues, ast.StringValue{Content: ref, BlockString: block})
		return ast.Value{Kind: ast.ValueKindString, Ref: idx}
	case lexer.NAME:
		switch p.literal() {
		case "true":
			p.advance()
			idx := len(p.doc.BooleanValues)
			p.doc.BooleanValues = append(p.doc.BooleanValues, ast.BooleanValue{Value: true})
			return ast.Value{Kind: ast.ValueKindBoolean, Ref: idx}
		case "false":
			p.advance()
			idx := len(p.doc.BooleanValues)
			p.doc.BooleanValues = append(p.doc.BooleanValues, ast.BooleanValue{Value: false})
			return ast.Value{Kind: ast.ValueKindBoolean, Ref: idx}
		case "null":
			p.advance()
			idx := len(p.doc.NullValues)
			p.doc.NullValues = append(p.doc.NullValues, ast.NullValue{})
			return ast.Value{Kind: ast.ValueKindNull, Ref: idx}
		default:
			name := p.cur.Literal
			p.advance()
			idx := len(p.doc.EnumValues)
			p.doc.EnumValues = append(p.doc.EnumValues, ast.EnumValue{Name: name})
			return ast.Value{Kind: ast.ValueKindEnum, Ref: idx}
		}
	case lexer.DOLLAR:
		if isConst {
			p.expectedButFound("value (variables not allowed in a const context)")
		}
		p.advance()
		name := p.parseNameRef()
		idx := len(p.doc.VariableValues)
		p.doc.VariableValues = append(p.doc.VariableValues, ast.VariableValue{Name: name})
		return ast.Value{Kind: ast.ValueKindVariable, Ref: idx}
	default:
		p.expectedButFound("value")
		return ast.Value{}
	}
}

func (p *Parser) parseListValue(isConst bool) ast.Value {
	p.expect(lexer.BRACKET_L)
	var values []ast.Value
	for p.cur.Kind != lexer.BRACKET_R {
		values = append(values, p.parseValue(isConst))
	}
	p.advance()
	idx := len(p.doc.ListValues)
	p.doc.ListValues = append(p.doc.ListValues, ast.ListValue{Values: values})
	return ast.Value{Kind: ast.ValueKindList, Ref: idx}
}

func (p *Parser) parseObjectValue(isConst bool) ast.Value {
	p.expect(lexer.BRACE_L)
	var fields []int
	for p.cur.Kind != lexer.BRACE_R {
		fields = append(fields, p.parseObjectField(isConst))
	}
	p.advance()
	idx := len(p.doc.ObjectValues)
	p.doc.ObjectValues = append(p.doc.ObjectValues, ast.ObjectValue{Fields: fields})
	return ast.Value{Kind: ast.ValueKindObject, Ref: idx}
}

func (p *Parser) parseObjectField(isConst bool) int {
	name := p.parseNameRef()
	p.expect(lexer.COLON)
	value := p.parseValue(isConst)
	p.doc.ObjectFields = append(p.doc.ObjectFields, ast.ObjectField{Name: name, Value: value})
	return len(p.doc.ObjectFields) - 1
}
