package astprinter

import (
	"strconv"

	"github.com/lexigraph/graphql/pkg/ast"
)

func (p *printer) printValue(v ast.Value) {
	switch v.Kind {
	case ast.ValueKindVariable:
		p.buf.WriteByte('$')
		p.buf.WriteString(p.name(p.doc.VariableValues[v.Ref].Name))
	case ast.ValueKindInt:
		iv := p.doc.IntValues[v.Ref]
		if iv.Negative {
			p.buf.WriteByte('-')
		}
		p.buf.WriteString(p.name(iv.Raw))
	case ast.ValueKindFloat:
		p.buf.WriteString(p.name(p.doc.FloatValues[v.Ref].Raw))
	case ast.ValueKindString:
		p.printStringValue(p.doc.StringValues[v.Ref])
	case ast.ValueKindBoolean:
		p.buf.WriteString(strconv.FormatBool(p.doc.BooleanValues[v.Ref].Value))
	case ast.ValueKindNull:
		p.buf.WriteString("null")
	case ast.ValueKindEnum:
		p.buf.WriteString(p.name(p.doc.EnumValues[v.Ref].Name))
	case ast.ValueKindList:
		p.printListValue(v.Ref)
	case ast.ValueKindObject:
		p.printObjectValue(v.Ref)
	}
}

func (p *printer) printListValue(ref int) {
	list := p.doc.ListValues[ref]
	p.buf.WriteByte('[')
	for i, elem := range list.Values {
		if i > 0 {
			p.buf.WriteString(", ")
		}
		p.printValue(elem)
	}
	p.buf.WriteByte(']')
}

func (p *printer) printObjectValue(ref int) {
	obj := p.doc.ObjectValues[ref]
	p.buf.WriteByte('{')
	for i, fref := range obj.Fields {
		if i > 0 {
			p.buf.WriteString(", ")
		}
		field := p.doc.ObjectFields[fref]
		p.buf.WriteString(p.name(field.Name))
		p.buf.WriteString(": ")
		p.printValue(field.Value)
	}
	p.buf.WriteByte('}')
}
