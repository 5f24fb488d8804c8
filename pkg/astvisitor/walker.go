// Package astvisitor implements the generic depth-first traversal described
// in spec.md §4.3: enter/leave callbacks keyed by node kind, with skip and
// stop control signals, ancestor and key-path tracking,
// and support for composing many rules over a single traversal pass (as
// pkg/astvalidation does).
//
// The interface shape is grounded on
// v2/pkg/engine/plan/datasource_filter_visitor.go's findUsedDataSourceVisitor:
// visitors are structs implementing narrow Enter<Kind>/Leave<Kind>
// interfaces, registered on a Walker, and control flow (skip/stop) is
// signalled by calling back into the Walker rather than returning an enum —
// that is the idiomatic Go rendition of spec.md §4.3's abstract
// enter-hook-returns-a-signal description (see DESIGN.md, Open Question:
// visitor control flow).
package astvisitor

import (
	"github.com/lexigraph/graphql/pkg/ast"
	"github.com/lexigraph/graphql/pkg/operationreport"
)

// PathKind discriminates a PathItem's key type.
type PathKind int

const (
	// PathKindField keys into a selection set by response key.
	PathKindField PathKind = iota
	// PathKindFragment keys into the current selection set by fragment name.
	PathKindFragment
)

// PathItem is one element of the Walker's current key-path (spec.md §4.3
// "key-path is available to hooks").
type PathItem struct {
	Kind  PathKind
	Field string
}

// Path is a snapshot-safe slice of PathItem; Walker.Path() returns a copy so
// visitors can retain it past the current callback.
type Path []PathItem

// Walker drives a single depth-first pass over an operation document,
// optionally cross-referencing a schema definition document to resolve the
// enclosing type of each field (spec.md §4.3, §4.5's shared-traversal
// requirement for validation rules).
type Walker struct {
	Operation  *ast.Document
	Definition *ast.Document
	Report     *operationreport.Report

	ancestors []ast.Node
	path      []PathItem

	// EnclosingTypeDefinition is the Definition type definition (object,
	// interface or union; the Node's Kind says which Definition slice Ref
	// indexes) that owns the field currently being visited.
	EnclosingTypeDefinition ast.Node

	skip    bool
	stopped bool
	stopErr error

	enterDocument   []EnterDocumentVisitor
	leaveDocument   []LeaveDocumentVisitor
	enterOperation  []EnterOperationDefinitionVisitor
	leaveOperation  []LeaveOperationDefinitionVisitor
	enterVarDef     []EnterVariableDefinitionVisitor
	leaveVarDef     []LeaveVariableDefinitionVisitor
	enterSelSet     []EnterSelectionSetVisitor
	leaveSelSet     []LeaveSelectionSetVisitor
	enterField      []EnterFieldVisitor
	leaveField      []LeaveFieldVisitor
	enterArgument   []EnterArgumentVisitor
	leaveArgument   []LeaveArgumentVisitor
	enterFragSpread []EnterFragmentSpreadVisitor
	leaveFragSpread []LeaveFragmentSpreadVisitor
	enterInlineFrag []EnterInlineFragmentVisitor
	leaveInlineFrag []LeaveInlineFragmentVisitor
	enterFragDef    []EnterFragmentDefinitionVisitor
	leaveFragDef    []LeaveFragmentDefinitionVisitor
	enterDirective  []EnterDirectiveVisitor
	leaveDirective  []LeaveDirectiveVisitor
}

// NewWalker returns a Walker with its ancestor stack preallocated to
// ancestorSize entries — callers that know the rough nesting depth of the
// documents they'll walk can avoid reallocation, mirroring
// astvisitor.NewWalker(32) in the teacher sample.
func NewWalker(ancestorSize int) Walker {
	return Walker{
		ancestors: make([]ast.Node, 0, ancestorSize),
		path:      make([]PathItem, 0, ancestorSize),
	}
}

// SkipNode tells the Walker not to descend into the field whose EnterField
// hook is currently running. Only fields honour it: called from any other
// hook, it has no effect.
func (w *Walker) SkipNode() { w.skip = true }

// Stop aborts the remainder of the walk immediately; Walk returns after the
// current hook returns. A nil err just means "stop early", e.g. once a rule
// visitor has already recorded a violation and further traversal is
// pointless.
func (w *Walker) Stop(err error) {
	w.stopped = true
	w.stopErr = err
}

// Ancestors returns the chain of nodes strictly containing the node
// currently being visited, outermost first.
func (w *Walker) Ancestors() []ast.Node { return w.ancestors }

// Path returns a copy of the current key-path.
func (w *Walker) Path() Path {
	p := make(Path, len(w.path))
	copy(p, w.path)
	return p
}

func (w *Walker) pushAncestor(n ast.Node) { w.ancestors = append(w.ancestors, n) }
func (w *Walker) popAncestor()            { w.ancestors = w.ancestors[:len(w.ancestors)-1] }
func (w *Walker) pushPath(item PathItem)  { w.path = append(w.path, item) }
func (w *Walker) popPath()                { w.path = w.path[:len(w.path)-1] }
