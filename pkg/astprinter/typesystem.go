package astprinter

import "github.com/lexigraph/graphql/pkg/ast"

func (p *printer) printSchemaDefinition(ref int) {
	sd := p.doc.SchemaDefinitions[ref]
	p.buf.WriteString("schema")
	p.printDirectives(sd.Directives)
	p.buf.WriteString(" {\n")
	for _, rref := range sd.RootOperationTypeDefinitions {
		rt := p.doc.RootOperationTypeDefinitions[rref]
		p.indent(1)
		p.buf.WriteString(rt.OperationType.String())
		p.buf.WriteString(": ")
		p.buf.WriteString(p.name(rt.NamedType.Name))
		p.buf.WriteByte('\n')
	}
	p.buf.WriteByte('}')
}

func (p *printer) printScalarTypeDefinition(ref int) {
	sd := p.doc.ScalarTypeDefinitions[ref]
	p.printDescription(sd.Description, sd.HasDescription, 0)
	p.buf.WriteString("scalar ")
	p.buf.WriteString(p.name(sd.Name))
	p.printDirectives(sd.Directives)
}

func (p *printer) printObjectTypeDefinition(ref int, keyword string) {
	od := p.doc.ObjectTypeDefinitions[ref]
	p.printDescription(od.Description, od.HasDescription, 0)
	p.buf.WriteString(keyword)
	p.buf.WriteByte(' ')
	p.buf.WriteString(p.name(od.Name))
	p.printImplementsInterfaces(od.ImplementsInterfaces)
	p.printDirectives(od.Directives)
	p.printFieldsDefinitionBlock(od.FieldsDefinition)
}

func (p *printer) printInterfaceTypeDefinition(ref int) {
	id := p.doc.InterfaceTypeDefinitions[ref]
	p.printDescription(id.Description, id.HasDescription, 0)
	p.buf.WriteString("interface ")
	p.buf.WriteString(p.name(id.Name))
	p.printImplementsInterfaces(id.ImplementsInterfaces)
	p.printDirectives(id.Directives)
	p.printFieldsDefinitionBlock(id.FieldsDefinition)
}

func (p *printer) printImplementsInterfaces(refs []ast.ByteSliceReference) {
	if len(refs) == 0 {
		return
	}
	p.buf.WriteString(" implements ")
	for i, ref := range refs {
		if i > 0 {
			p.buf.WriteString(" & ")
		}
		p.buf.WriteString(p.name(ref))
	}
}

func (p *printer) printFieldsDefinitionBlock(refs []int) {
	if len(refs) == 0 {
		return
	}
	p.buf.WriteString(" {\n")
	for _, ref := range refs {
		p.printFieldDefinition(ref)
	}
	p.buf.WriteByte('}')
}

func (p *printer) printFieldDefinition(ref int) {
	fd := p.doc.FieldDefinitions[ref]
	p.printDescription(fd.Description, fd.HasDescription, 1)
	p.indent(1)
	p.buf.WriteString(p.name(fd.Name))
	if len(fd.ArgumentsDefinition) > 0 {
		p.buf.WriteByte('(')
		for i, aref := range fd.ArgumentsDefinition {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			p.printInputValueDefinition(aref)
		}
		p.buf.WriteByte(')')
	}
	p.buf.WriteString(": ")
	p.buf.WriteString(p.doc.PrintType(fd.Type))
	p.printDirectives(fd.Directives)
	p.buf.WriteByte('\n')
}

func (p *printer) printInputValueDefinition(ref int) {
	iv := p.doc.InputValueDefinitions[ref]
	p.buf.WriteString(p.name(iv.Name))
	p.buf.WriteString(": ")
	p.buf.WriteString(p.doc.PrintType(iv.Type))
	if iv.HasDefaultValue {
		p.buf.WriteString(" = ")
		p.printValue(iv.DefaultValue)
	}
	p.printDirectives(iv.Directives)
}

func (p *printer) printUnionTypeDefinition(ref int) {
	ud := p.doc.UnionTypeDefinitions[ref]
	p.printDescription(ud.Description, ud.HasDescription, 0)
	p.buf.WriteString("union ")
	p.buf.WriteString(p.name(ud.Name))
	p.printDirectives(ud.Directives)
	if len(ud.UnionMemberTypes) > 0 {
		p.buf.WriteString(" = ")
		for i, ref := range ud.UnionMemberTypes {
			if i > 0 {
				p.buf.WriteString(" | ")
			}
			p.buf.WriteString(p.name(ref))
		}
	}
}

func (p *printer) printEnumTypeDefinition(ref int) {
	ed := p.doc.EnumTypeDefinitions[ref]
	p.printDescription(ed.Description, ed.HasDescription, 0)
	p.buf.WriteString("enum ")
	p.buf.WriteString(p.name(ed.Name))
	p.printDirectives(ed.Directives)
	if len(ed.EnumValuesDefinition) == 0 {
		return
	}
	p.buf.WriteString(" {\n")
	for _, vref := range ed.EnumValuesDefinition {
		v := p.doc.EnumValueDefinitions[vref]
		p.printDescription(v.Description, v.HasDescription, 1)
		p.indent(1)
		p.buf.WriteString(p.name(v.EnumValue))
		p.printDirectives(v.Directives)
		p.buf.WriteByte('\n')
	}
	p.buf.WriteByte('}')
}

func (p *printer) printInputObjectTypeDefinition(ref int) {
	id := p.doc.InputObjectTypeDefinitions[ref]
	p.printDescription(id.Description, id.HasDescription, 0)
	p.buf.WriteString("input ")
	p.buf.WriteString(p.name(id.Name))
	p.printDirectives(id.Directives)
	if len(id.InputFieldsDefinition) == 0 {
		return
	}
	p.buf.WriteString(" {\n")
	for _, fref := range id.InputFieldsDefinition {
		p.indent(1)
		p.printInputValueDefinition(fref)
		p.buf.WriteByte('\n')
	}
	p.buf.WriteByte('}')
}

func (p *printer) printDirectiveDefinition(ref int) {
	dd := p.doc.DirectiveDefinitions[ref]
	p.printDescription(dd.Description, dd.HasDescription, 0)
	p.buf.WriteString("directive @")
	p.buf.WriteString(p.name(dd.Name))
	if len(dd.ArgumentsDefinition) > 0 {
		p.buf.WriteByte('(')
		for i, aref := range dd.ArgumentsDefinition {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			p.printInputValueDefinition(aref)
		}
		p.buf.WriteByte(')')
	}
	if dd.Repeatable {
		p.buf.WriteString(" repeatable")
	}
	p.buf.WriteString(" on ")
	for i, loc := range dd.DirectiveLocations {
		if i > 0 {
			p.buf.WriteString(" | ")
		}
		p.buf.WriteString(string(loc))
	}
}
