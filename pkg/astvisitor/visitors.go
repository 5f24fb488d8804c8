package astvisitor

import "github.com/lexigraph/graphql/pkg/ast"

// These narrow single-method interfaces let a rule visitor implement only
// the kinds it cares about; Register<Kind>Visitor type-asserts once at
// registration time rather than every visit.

type EnterDocumentVisitor interface{ EnterDocument(operation, definition *ast.Document) }
type LeaveDocumentVisitor interface{ LeaveDocument(operation, definition *ast.Document) }

type EnterOperationDefinitionVisitor interface{ EnterOperationDefinition(ref int) }
type LeaveOperationDefinitionVisitor interface{ LeaveOperationDefinition(ref int) }

type EnterVariableDefinitionVisitor interface{ EnterVariableDefinition(ref int) }
type LeaveVariableDefinitionVisitor interface{ LeaveVariableDefinition(ref int) }

type EnterSelectionSetVisitor interface{ EnterSelectionSet(ref int) }
type LeaveSelectionSetVisitor interface{ LeaveSelectionSet(ref int) }

type EnterFieldVisitor interface{ EnterField(ref int) }
type LeaveFieldVisitor interface{ LeaveField(ref int) }

type EnterArgumentVisitor interface{ EnterArgument(ref int) }
type LeaveArgumentVisitor interface{ LeaveArgument(ref int) }

type EnterFragmentSpreadVisitor interface{ EnterFragmentSpread(ref int) }
type LeaveFragmentSpreadVisitor interface{ LeaveFragmentSpread(ref int) }

type EnterInlineFragmentVisitor interface{ EnterInlineFragment(ref int) }
type LeaveInlineFragmentVisitor interface{ LeaveInlineFragment(ref int) }

type EnterFragmentDefinitionVisitor interface{ EnterFragmentDefinition(ref int) }
type LeaveFragmentDefinitionVisitor interface{ LeaveFragmentDefinition(ref int) }

type EnterDirectiveVisitor interface{ EnterDirective(ref int) }
type LeaveDirectiveVisitor interface{ LeaveDirective(ref int) }

// RegisterAllNodesVisitor registers v for every Enter/Leave hook it
// implements — the common case for validation rules that want document and
// selection-set level bookkeeping alongside their specific kind of interest.
func (w *Walker) RegisterAllNodesVisitor(v interface{}) {
	if x, ok := v.(EnterDocumentVisitor); ok {
		w.enterDocument = append(w.enterDocument, x)
	}
	if x, ok := v.(LeaveDocumentVisitor); ok {
		w.leaveDocument = append(w.leaveDocument, x)
	}
	if x, ok := v.(EnterOperationDefinitionVisitor); ok {
		w.enterOperation = append(w.enterOperation, x)
	}
	if x, ok := v.(LeaveOperationDefinitionVisitor); ok {
		w.leaveOperation = append(w.leaveOperation, x)
	}
	if x, ok := v.(EnterVariableDefinitionVisitor); ok {
		w.enterVarDef = append(w.enterVarDef, x)
	}
	if x, ok := v.(LeaveVariableDefinitionVisitor); ok {
		w.leaveVarDef = append(w.leaveVarDef, x)
	}
	if x, ok := v.(EnterSelectionSetVisitor); ok {
		w.enterSelSet = append(w.enterSelSet, x)
	}
	if x, ok := v.(LeaveSelectionSetVisitor); ok {
		w.leaveSelSet = append(w.leaveSelSet, x)
	}
	if x, ok := v.(EnterFieldVisitor); ok {
		w.enterField = append(w.enterField, x)
	}
	if x, ok := v.(LeaveFieldVisitor); ok {
		w.leaveField = append(w.leaveField, x)
	}
	if x, ok := v.(EnterArgumentVisitor); ok {
		w.enterArgument = append(w.enterArgument, x)
	}
	if x, ok := v.(LeaveArgumentVisitor); ok {
		w.leaveArgument = append(w.leaveArgument, x)
	}
	if x, ok := v.(EnterFragmentSpreadVisitor); ok {
		w.enterFragSpread = append(w.enterFragSpread, x)
	}
	if x, ok := v.(LeaveFragmentSpreadVisitor); ok {
		w.leaveFragSpread = append(w.leaveFragSpread, x)
	}
	if x, ok := v.(EnterInlineFragmentVisitor); ok {
		w.enterInlineFrag = append(w.enterInlineFrag, x)
	}
	if x, ok := v.(LeaveInlineFragmentVisitor); ok {
		w.leaveInlineFrag = append(w.leaveInlineFrag, x)
	}
	if x, ok := v.(EnterFragmentDefinitionVisitor); ok {
		w.enterFragDef = append(w.enterFragDef, x)
	}
	if x, ok := v.(LeaveFragmentDefinitionVisitor); ok {
		w.leaveFragDef = append(w.leaveFragDef, x)
	}
	if x, ok := v.(EnterDirectiveVisitor); ok {
		w.enterDirective = append(w.enterDirective, x)
	}
	if x, ok := v.(LeaveDirectiveVisitor); ok {
		w.leaveDirective = append(w.leaveDirective, x)
	}
}

func (w *Walker) RegisterEnterDocumentVisitor(v EnterDocumentVisitor) {
	w.enterDocument = append(w.enterDocument, v)
}
func (w *Walker) RegisterLeaveDocumentVisitor(v LeaveDocumentVisitor) {
	w.leaveDocument = append(w.leaveDocument, v)
}
func (w *Walker) RegisterEnterFieldVisitor(v EnterFieldVisitor) {
	w.enterField = append(w.enterField, v)
}
func (w *Walker) RegisterLeaveFieldVisitor(v LeaveFieldVisitor) {
	w.leaveField = append(w.leaveField, v)
}
func (w *Walker) RegisterEnterSelectionSetVisitor(v EnterSelectionSetVisitor) {
	w.enterSelSet = append(w.enterSelSet, v)
}
func (w *Walker) RegisterLeaveSelectionSetVisitor(v LeaveSelectionSetVisitor) {
	w.leaveSelSet = append(w.leaveSelSet, v)
}
func (w *Walker) RegisterEnterOperationDefinitionVisitor(v EnterOperationDefinitionVisitor) {
	w.enterOperation = append(w.enterOperation, v)
}
func (w *Walker) RegisterLeaveOperationDefinitionVisitor(v LeaveOperationDefinitionVisitor) {
	w.leaveOperation = append(w.leaveOperation, v)
}
func (w *Walker) RegisterEnterFragmentDefinitionVisitor(v EnterFragmentDefinitionVisitor) {
	w.enterFragDef = append(w.enterFragDef, v)
}
func (w *Walker) RegisterEnterArgumentVisitor(v EnterArgumentVisitor) {
	w.enterArgument = append(w.enterArgument, v)
}
func (w *Walker) RegisterEnterDirectiveVisitor(v EnterDirectiveVisitor) {
	w.enterDirective = append(w.enterDirective, v)
}
func (w *Walker) RegisterEnterVariableDefinitionVisitor(v EnterVariableDefinitionVisitor) {
	w.enterVarDef = append(w.enterVarDef, v)
}
func (w *Walker) RegisterEnterFragmentSpreadVisitor(v EnterFragmentSpreadVisitor) {
	w.enterFragSpread = append(w.enterFragSpread, v)
}
func (w *Walker) RegisterEnterInlineFragmentVisitor(v EnterInlineFragmentVisitor) {
	w.enterInlineFrag = append(w.enterInlineFrag, v)
}
