package astvisitor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lexigraph/graphql/pkg/ast"
	"github.com/lexigraph/graphql/pkg/astparser"
	"github.com/lexigraph/graphql/pkg/astvisitor"
	"github.com/lexigraph/graphql/pkg/operationreport"
)

func parse(t *testing.T, src string) *ast.Document {
	t.Helper()
	doc := ast.NewDocument()
	doc.Input.ResetInputBytes([]byte(src))
	report := &operationreport.Report{}
	astparser.NewParser().Parse(doc, report)
	require.False(t, report.HasErrors(), "%v", report)
	return doc
}

const testSchema = `
schema { query: Query }
type Query { hero(episode: String): Character }
interface Character { name: String, friends: [Character] }
type Human implements Character { name: String, friends: [Character], homePlanet: String }
`

func TestWalker_VisitsEveryField(t *testing.T) {
	operation := parse(t, `{ hero(episode: "EMPIRE") { name friends { name } } }`)
	definition := parse(t, testSchema)

	var visited []string
	walker := astvisitor.NewWalker(8)
	recorder := recordingVisitor{operation: operation, visited: &visited}
	walker.RegisterEnterFieldVisitor(&recorder)
	walker.Walk(operation, definition, &operationreport.Report{})

	require.Equal(t, []string{"hero", "name", "friends", "name"}, visited)
}

type recordingVisitor struct {
	operation *ast.Document
	visited   *[]string
}

func (r *recordingVisitor) EnterField(ref int) {
	*r.visited = append(*r.visited, r.operation.FieldNameString(ref))
}

func TestWalker_EnclosingTypeDefinitionTracksFieldReturnType(t *testing.T) {
	operation := parse(t, `{ hero(episode: "EMPIRE") { name friends { name } } }`)
	definition := parse(t, testSchema)

	var enclosingAtName []string
	walker := astvisitor.NewWalker(8)
	visitor := &enclosingRecorder{w: &walker, definition: definition, operation: operation, out: &enclosingAtName}
	walker.RegisterEnterFieldVisitor(visitor)
	walker.Walk(operation, definition, &operationreport.Report{})

	require.Equal(t, []string{"Query", "Character", "Character", "Character"}, enclosingAtName)
}

type enclosingRecorder struct {
	w          *astvisitor.Walker
	definition *ast.Document
	operation  *ast.Document
	out        *[]string
}

func (e *enclosingRecorder) EnterField(ref int) {
	n := e.w.EnclosingTypeDefinition
	var name string
	switch n.Kind {
	case ast.NodeKindObjectTypeDefinition:
		name = e.definition.Input.ByteSliceString(e.definition.ObjectTypeDefinitions[n.Ref].Name)
	case ast.NodeKindInterfaceTypeDefinition:
		name = e.definition.Input.ByteSliceString(e.definition.InterfaceTypeDefinitions[n.Ref].Name)
	}
	*e.out = append(*e.out, name)
}

func TestWalker_SkipNodeStopsDescent(t *testing.T) {
	operation := parse(t, `{ hero(episode: "EMPIRE") { name friends { name } } }`)
	definition := parse(t, testSchema)

	var visited []string
	walker := astvisitor.NewWalker(8)
	skipper := &skipFriendsVisitor{operation: operation, visited: &visited, w: &walker}
	walker.RegisterEnterFieldVisitor(skipper)
	walker.Walk(operation, definition, &operationreport.Report{})

	require.Equal(t, []string{"hero", "name", "friends"}, visited)
}

type skipFriendsVisitor struct {
	operation *ast.Document
	visited   *[]string
	w         *astvisitor.Walker
}

func (s *skipFriendsVisitor) EnterField(ref int) {
	name := s.operation.FieldNameString(ref)
	*s.visited = append(*s.visited, name)
	if name == "friends" {
		s.w.SkipNode()
	}
}

func TestWalker_VisitsFragmentDefinitionsAtRootLevel(t *testing.T) {
	operation := parse(t, `
		query Q { hero(episode: "EMPIRE") { ...Fields } }
		fragment Fields on Character { name }
	`)
	definition := parse(t, testSchema)

	var fragDefs []string
	walker := astvisitor.NewWalker(8)
	walker.RegisterEnterFragmentDefinitionVisitor(fragDefVisitor{operation: operation, out: &fragDefs})
	walker.Walk(operation, definition, &operationreport.Report{})

	require.Equal(t, []string{"Fields"}, fragDefs)
}

type fragDefVisitor struct {
	operation *ast.Document
	out       *[]string
}

func (v fragDefVisitor) EnterFragmentDefinition(ref int) {
	*v.out = append(*v.out, v.operation.Input.ByteSliceString(v.operation.FragmentDefinitions[ref].Name))
}
