// Package astprinter renders an ast.Document back to canonical GraphQL
// text (spec.md §4.9): two-space indentation, block-string formatting,
// source directive order preserved, argument lists parenthesized only when
// non-empty. It is a leaf package — nothing in pkg/execution or
// pkg/coercion depends on it — used for error-message formatting
// (ast.Document.PrintType, reused as-is rather than reimplemented here) and
// by the print-round-trip testable property (spec.md §8).
//
// No printer-shaped file survived corpus filtering (the teacher repo's
// federation/gateway code never needs to print a document back to text),
// so this package follows spec.md §4.9's prose directly, in the general
// indent-writer style the rest of this repo's hand-rolled leaf packages
// use (operationreport.Report.Error, ast.Document.PrintType).
package astprinter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/lexigraph/graphql/pkg/ast"
)

// Print renders every root definition in doc, in source order, as
// canonical GraphQL text.
func Print(doc *ast.Document) (string, error) {
	p := &printer{doc: doc}
	for i, node := range doc.RootNodes {
		if i > 0 {
			p.buf.WriteString("\n\n")
		}
		if err := p.printNode(node); err != nil {
			return "", err
		}
	}
	return p.buf.String(), nil
}

type printer struct {
	doc *ast.Document
	buf bytes.Buffer
}

func (p *printer) indent(depth int) {
	for i := 0; i < depth; i++ {
		p.buf.WriteString("  ")
	}
}

func (p *printer) name(ref ast.ByteSliceReference) string {
	return p.doc.Input.ByteSliceString(ref)
}

func (p *printer) printNode(node ast.Node) error {
	switch node.Kind {
	case ast.NodeKindOperationDefinition:
		p.printOperationDefinition(node.Ref)
	case ast.NodeKindFragmentDefinition:
		p.printFragmentDefinition(node.Ref)
	case ast.NodeKindSchemaDefinition:
		p.printSchemaDefinition(node.Ref)
	case ast.NodeKindScalarTypeDefinition:
		p.printScalarTypeDefinition(node.Ref)
	case ast.NodeKindObjectTypeDefinition:
		p.printObjectTypeDefinition(node.Ref, "type")
	case ast.NodeKindInterfaceTypeDefinition:
		p.printInterfaceTypeDefinition(node.Ref)
	case ast.NodeKindUnionTypeDefinition:
		p.printUnionTypeDefinition(node.Ref)
	case ast.NodeKindEnumTypeDefinition:
		p.printEnumTypeDefinition(node.Ref)
	case ast.NodeKindInputObjectTypeDefinition:
		p.printInputObjectTypeDefinition(node.Ref)
	case ast.NodeKindDirectiveDefinition:
		p.printDirectiveDefinition(node.Ref)
	default:
		return fmt.Errorf("astprinter: cannot print root node of kind %s", node.Kind)
	}
	return nil
}

func (p *printer) printDescription(desc ast.ByteSliceReference, has bool, depth int) {
	if !has {
		return
	}
	p.indent(depth)
	p.printStringValue(ast.StringValue{Content: desc, BlockString: true})
	p.buf.WriteByte('\n')
}

func (p *printer) printOperationDefinition(ref int) {
	op := p.doc.OperationDefinitions[ref]
	p.buf.WriteString(op.OperationType.String())
	if op.HasName {
		p.buf.WriteByte(' ')
		p.buf.WriteString(p.name(op.Name))
	}
	if len(op.VariableDefinitions) > 0 {
		p.buf.WriteByte('(')
		for i, vref := range op.VariableDefinitions {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			p.printVariableDefinition(vref)
		}
		p.buf.WriteByte(')')
	}
	p.printDirectives(op.Directives)
	p.buf.WriteByte(' ')
	p.printSelectionSet(op.SelectionSet, 0)
}

func (p *printer) printVariableDefinition(ref int) {
	def := p.doc.VariableDefinitions[ref]
	p.buf.WriteByte('$')
	p.buf.WriteString(p.name(def.VariableName))
	p.buf.WriteString(": ")
	p.buf.WriteString(p.doc.PrintType(def.Type))
	if def.HasDefaultValue {
		p.buf.WriteString(" = ")
		p.printValue(def.DefaultValue)
	}
	p.printDirectives(def.Directives)
}

func (p *printer) printFragmentDefinition(ref int) {
	frag := p.doc.FragmentDefinitions[ref]
	p.buf.WriteString("fragment ")
	p.buf.WriteString(p.name(frag.Name))
	p.buf.WriteString(" on ")
	p.buf.WriteString(p.name(frag.TypeCondition.Name))
	p.printDirectives(frag.Directives)
	p.buf.WriteByte(' ')
	p.printSelectionSet(frag.SelectionSet, 0)
}

func (p *printer) printSelectionSet(ref int, depth int) {
	set := p.doc.SelectionSets[ref]
	p.buf.WriteString("{\n")
	for _, sel := range set.SelectionRefs {
		p.indent(depth + 1)
		switch sel.Kind {
		case ast.SelectionKindField:
			p.printField(sel.Ref, depth+1)
		case ast.SelectionKindFragmentSpread:
			p.printFragmentSpread(sel.Ref)
		case ast.SelectionKindInlineFragment:
			p.printInlineFragment(sel.Ref, depth+1)
		}
		p.buf.WriteByte('\n')
	}
	p.indent(depth)
	p.buf.WriteByte('}')
}

func (p *printer) printField(ref int, depth int) {
	f := p.doc.Fields[ref]
	if f.HasAlias {
		p.buf.WriteString(p.name(f.Alias))
		p.buf.WriteString(": ")
	}
	p.buf.WriteString(p.name(f.Name))
	if len(f.Arguments) > 0 {
		p.buf.WriteByte('(')
		for i, aref := range f.Arguments {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			p.printArgument(aref)
		}
		p.buf.WriteByte(')')
	}
	p.printDirectives(f.Directives)
	if f.HasSelectionSet {
		p.buf.WriteByte(' ')
		p.printSelectionSet(f.SelectionSet, depth)
	}
}

func (p *printer) printFragmentSpread(ref int) {
	spread := p.doc.FragmentSpreads[ref]
	p.buf.WriteString("...")
	p.buf.WriteString(p.name(spread.FragmentName))
	p.printDirectives(spread.Directives)
}

func (p *printer) printInlineFragment(ref int, depth int) {
	inline := p.doc.InlineFragments[ref]
	p.buf.WriteString("...")
	if inline.HasTypeCondition {
		p.buf.WriteString(" on ")
		p.buf.WriteString(p.name(inline.TypeCondition.Name))
	}
	p.printDirectives(inline.Directives)
	p.buf.WriteByte(' ')
	p.printSelectionSet(inline.SelectionSet, depth)
}

func (p *printer) printArgument(ref int) {
	arg := p.doc.Arguments[ref]
	p.buf.WriteString(p.name(arg.Name))
	p.buf.WriteString(": ")
	p.printValue(arg.Value)
}

func (p *printer) printDirectives(refs []int) {
	for _, ref := range refs {
		p.buf.WriteByte(' ')
		p.printDirective(ref)
	}
}

func (p *printer) printDirective(ref int) {
	dir := p.doc.Directives[ref]
	p.buf.WriteByte('@')
	p.buf.WriteString(p.name(dir.Name))
	if len(dir.Arguments) > 0 {
		p.buf.WriteByte('(')
		for i, aref := range dir.Arguments {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			p.printArgument(aref)
		}
		p.buf.WriteByte(')')
	}
}

func (p *printer) printStringValue(sv ast.StringValue) {
	content := p.doc.Input.ByteSliceString(sv.Content)
	if sv.BlockString {
		p.buf.WriteString(`"""`)
		p.buf.WriteString(strings.ReplaceAll(content, `"""`, `\"""`))
		p.buf.WriteString(`"""`)
		return
	}
	p.buf.WriteByte('"')
	p.buf.WriteString(strings.ReplaceAll(content, `"`, `\"`))
	p.buf.WriteByte('"')
}
