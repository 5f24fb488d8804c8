package astvisitor

import (
	"github.com/lexigraph/graphql/pkg/ast"
	"github.com/lexigraph/graphql/pkg/operationreport"
)

// Walk runs the registered visitors once, depth-first, over every
// OperationDefinition and FragmentDefinition appearing in operation.RootNodes
// (spec.md §4.3). It does not inline fragment spreads: a FragmentSpread
// fires its own Enter/Leave hooks but does not recurse into the spread
// fragment's selection set, matching how graphql-js's validator keeps
// TypeInfo scoped to the literal document and leaves fragment-spread
// expansion to a dedicated collector (grounded on
// botobag-artemis's collect_fields_and_fragments.go — see
// pkg/astvalidation's recordFragmentSpreadsRule, which follows each spread
// target by looping over its selection sets itself rather than re-entering
// this Walker).
//
// definition may be nil for walks that don't need type information (e.g. the
// printer never calls Walk at all, but tooling that only needs structural
// traversal can pass a nil definition and skip any EnclosingTypeDefinition
// bookkeeping).
func (w *Walker) Walk(operation, definition *ast.Document, report *operationreport.Report) {
	w.Operation = operation
	w.Definition = definition
	w.Report = report
	w.ancestors = w.ancestors[:0]
	w.path = w.path[:0]
	w.stopped = false
	w.stopErr = nil

	for _, v := range w.enterDocument {
		v.EnterDocument(operation, definition)
	}

	for _, node := range operation.RootNodes {
		if w.stopped {
			break
		}
		switch node.Kind {
		case ast.NodeKindOperationDefinition:
			w.walkOperationDefinition(node.Ref)
		case ast.NodeKindFragmentDefinition:
			w.walkFragmentDefinition(node.Ref)
		}
	}

	for _, v := range w.leaveDocument {
		v.LeaveDocument(operation, definition)
	}
}

// ResolveNamedTypeNode resolves t's innermost named type against Definition,
// returning the *TypeDefinition node it names (zero Node if Definition is
// nil or the name is unknown). Exported for pkg/astvalidation, which needs
// the same type-name-to-definition lookup the walk performs internally when
// descending into a field's selection set.
func (w *Walker) ResolveNamedTypeNode(t ast.Type) ast.Node {
	return w.resolveNamedTypeNode(t)
}

// ResolveNamedTypeByName is ResolveNamedTypeNode for an already-known type
// name (used for fragment/inline-fragment type conditions).
func (w *Walker) ResolveNamedTypeByName(name string) ast.Node {
	return w.resolveNamedTypeByName(name)
}

func (w *Walker) resolveNamedTypeNode(t ast.Type) ast.Node {
	if w.Definition == nil {
		return ast.Node{}
	}
	name := w.Definition.NamedTypeName(t)
	if ref := w.Definition.ObjectTypeDefinitionByName(name); ref != -1 {
		return ast.Node{Kind: ast.NodeKindObjectTypeDefinition, Ref: ref}
	}
	if ref := w.Definition.InterfaceTypeDefinitionByName(name); ref != -1 {
		return ast.Node{Kind: ast.NodeKindInterfaceTypeDefinition, Ref: ref}
	}
	if ref := w.Definition.UnionTypeDefinitionByName(name); ref != -1 {
		return ast.Node{Kind: ast.NodeKindUnionTypeDefinition, Ref: ref}
	}
	if ref := w.Definition.EnumTypeDefinitionByName(name); ref != -1 {
		return ast.Node{Kind: ast.NodeKindEnumTypeDefinition, Ref: ref}
	}
	if ref := w.Definition.ScalarTypeDefinitionByName(name); ref != -1 {
		return ast.Node{Kind: ast.NodeKindScalarTypeDefinition, Ref: ref}
	}
	if ref := w.Definition.InputObjectTypeDefinitionByName(name); ref != -1 {
		return ast.Node{Kind: ast.NodeKindInputObjectTypeDefinition, Ref: ref}
	}
	return ast.Node{}
}

func (w *Walker) resolveNamedTypeByName(name string) ast.Node {
	if w.Definition == nil {
		return ast.Node{}
	}
	if ref := w.Definition.ObjectTypeDefinitionByName(name); ref != -1 {
		return ast.Node{Kind: ast.NodeKindObjectTypeDefinition, Ref: ref}
	}
	if ref := w.Definition.InterfaceTypeDefinitionByName(name); ref != -1 {
		return ast.Node{Kind: ast.NodeKindInterfaceTypeDefinition, Ref: ref}
	}
	if ref := w.Definition.UnionTypeDefinitionByName(name); ref != -1 {
		return ast.Node{Kind: ast.NodeKindUnionTypeDefinition, Ref: ref}
	}
	return ast.Node{}
}

// FieldsDefinitionOf returns the FieldsDefinition ref list owned by an
// Object or Interface type definition node, or nil for any other kind
// (including the zero Node) — exported for pkg/astvalidation's rules, which
// need the same enclosing-type-to-fields lookup the walk itself uses.
func (w *Walker) FieldsDefinitionOf(n ast.Node) []int {
	return w.fieldsDefinitionOf(n)
}

func (w *Walker) fieldsDefinitionOf(n ast.Node) []int {
	if w.Definition == nil {
		return nil
	}
	switch n.Kind {
	case ast.NodeKindObjectTypeDefinition:
		return w.Definition.ObjectTypeDefinitions[n.Ref].FieldsDefinition
	case ast.NodeKindInterfaceTypeDefinition:
		return w.Definition.InterfaceTypeDefinitions[n.Ref].FieldsDefinition
	default:
		return nil
	}
}

func (w *Walker) walkOperationDefinition(ref int) {
	op := w.Operation.OperationDefinitions[ref]

	var enclosing ast.Node
	if w.Definition != nil {
		if rootName, ok := w.Definition.RootOperationTypeName(op.OperationType); ok {
			enclosing = w.resolveNamedTypeByName(rootName)
		}
	}
	w.EnclosingTypeDefinition = enclosing

	for _, v := range w.enterOperation {
		v.EnterOperationDefinition(ref)
		if w.stopped {
			return
		}
	}

	node := ast.Node{Kind: ast.NodeKindOperationDefinition, Ref: ref}
	w.pushAncestor(node)

	for _, vdRef := range op.VariableDefinitions {
		w.walkVariableDefinition(vdRef)
		if w.stopped {
			break
		}
	}
	for _, dRef := range op.Directives {
		w.walkDirective(dRef)
		if w.stopped {
			break
		}
	}
	if !w.stopped {
		w.walkSelectionSet(op.SelectionSet, enclosing)
	}

	w.popAncestor()

	for _, v := range w.leaveOperation {
		v.LeaveOperationDefinition(ref)
	}
}

func (w *Walker) walkFragmentDefinition(ref int) {
	fd := w.Operation.FragmentDefinitions[ref]

	var enclosing ast.Node
	if w.Definition != nil {
		enclosing = w.resolveNamedTypeByName(w.Operation.Input.ByteSliceString(fd.TypeCondition.Name))
	}
	w.EnclosingTypeDefinition = enclosing

	for _, v := range w.enterFragDef {
		v.EnterFragmentDefinition(ref)
		if w.stopped {
			return
		}
	}

	node := ast.Node{Kind: ast.NodeKindFragmentDefinition, Ref: ref}
	w.pushAncestor(node)
	for _, dRef := range fd.Directives {
		w.walkDirective(dRef)
		if w.stopped {
			break
		}
	}
	if !w.stopped {
		w.walkSelectionSet(fd.SelectionSet, enclosing)
	}
	w.popAncestor()

	for _, v := range w.leaveFragDef {
		v.LeaveFragmentDefinition(ref)
	}
}

func (w *Walker) walkVariableDefinition(ref int) {
	for _, v := range w.enterVarDef {
		v.EnterVariableDefinition(ref)
		if w.stopped {
			return
		}
	}
	for _, v := range w.leaveVarDef {
		v.LeaveVariableDefinition(ref)
	}
}

func (w *Walker) walkDirective(ref int) {
	for _, v := range w.enterDirective {
		v.EnterDirective(ref)
		if w.stopped {
			return
		}
	}
	dir := w.Operation.Directives[ref]
	for _, aRef := range dir.Arguments {
		w.walkArgument(aRef)
		if w.stopped {
			return
		}
	}
	for _, v := range w.leaveDirective {
		v.LeaveDirective(ref)
	}
}

func (w *Walker) walkArgument(ref int) {
	for _, v := range w.enterArgument {
		v.EnterArgument(ref)
		if w.stopped {
			return
		}
	}
	for _, v := range w.leaveArgument {
		v.LeaveArgument(ref)
	}
}

// walkSelectionSet descends into set's selections. enclosing is the type
// definition node (object or interface) that set's selections are resolved
// against.
func (w *Walker) walkSelectionSet(set int, enclosing ast.Node) {
	if set == -1 {
		return
	}
	prevEnclosing := w.EnclosingTypeDefinition
	w.EnclosingTypeDefinition = enclosing

	for _, v := range w.enterSelSet {
		v.EnterSelectionSet(set)
		if w.stopped {
			w.EnclosingTypeDefinition = prevEnclosing
			return
		}
	}

	sels := w.Operation.SelectionSets[set].SelectionRefs
	fieldsDef := w.fieldsDefinitionOf(enclosing)

	for _, sel := range sels {
		if w.stopped {
			break
		}
		switch sel.Kind {
		case ast.SelectionKindField:
			w.walkField(sel.Ref, fieldsDef)
		case ast.SelectionKindFragmentSpread:
			w.walkFragmentSpread(sel.Ref)
		case ast.SelectionKindInlineFragment:
			w.walkInlineFragment(sel.Ref, enclosing)
		}
	}

	for _, v := range w.leaveSelSet {
		v.LeaveSelectionSet(set)
	}
	w.EnclosingTypeDefinition = prevEnclosing
}

func (w *Walker) walkField(ref int, fieldsDef []int) {
	f := w.Operation.Fields[ref]
	w.pushPath(PathItem{Kind: PathKindField, Field: w.Operation.FieldResponseKey(ref)})

	w.skip = false
	for _, v := range w.enterField {
		v.EnterField(ref)
		if w.stopped {
			w.popPath()
			return
		}
	}
	skip := w.skip
	w.skip = false

	if !skip {
		node := ast.Node{Kind: ast.NodeKindField, Ref: ref}
		w.pushAncestor(node)

		for _, aRef := range f.Arguments {
			w.walkArgument(aRef)
			if w.stopped {
				break
			}
		}
		if !w.stopped {
			for _, dRef := range f.Directives {
				w.walkDirective(dRef)
				if w.stopped {
					break
				}
			}
		}

		if !w.stopped && f.HasSelectionSet {
			var fieldEnclosing ast.Node
			if fieldsDef != nil {
				fieldName := w.Operation.FieldNameString(ref)
				if fdRef := w.Definition.FieldDefinitionByName(fieldsDef, fieldName); fdRef != -1 {
					fieldEnclosing = w.resolveNamedTypeNode(w.Definition.FieldDefinitions[fdRef].Type)
				}
			}
			w.walkSelectionSet(f.SelectionSet, fieldEnclosing)
		}

		w.popAncestor()
	}

	for _, v := range w.leaveField {
		v.LeaveField(ref)
	}
	w.popPath()
}

func (w *Walker) walkFragmentSpread(ref int) {
	for _, v := range w.enterFragSpread {
		v.EnterFragmentSpread(ref)
		if w.stopped {
			return
		}
	}
	for _, v := range w.leaveFragSpread {
		v.LeaveFragmentSpread(ref)
	}
}

func (w *Walker) walkInlineFragment(ref int, parentEnclosing ast.Node) {
	inf := w.Operation.InlineFragments[ref]

	enclosing := parentEnclosing
	if inf.HasTypeCondition && w.Definition != nil {
		enclosing = w.resolveNamedTypeByName(w.Operation.Input.ByteSliceString(inf.TypeCondition.Name))
	}

	for _, v := range w.enterInlineFrag {
		v.EnterInlineFragment(ref)
		if w.stopped {
			return
		}
	}

	node := ast.Node{Kind: ast.NodeKindInlineFragment, Ref: ref}
	w.pushAncestor(node)
	for _, dRef := range inf.Directives {
		w.walkDirective(dRef)
		if w.stopped {
			break
		}
	}
	if !w.stopped {
		w.walkSelectionSet(inf.SelectionSet, enclosing)
	}
	w.popAncestor()

	for _, v := range w.leaveInlineFrag {
		v.LeaveInlineFragment(ref)
	}
}
