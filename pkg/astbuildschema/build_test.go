package astbuildschema_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lexigraph/graphql/pkg/ast"
	"github.com/lexigraph/graphql/pkg/astbuildschema"
	"github.com/lexigraph/graphql/pkg/astparser"
	"github.com/lexigraph/graphql/pkg/operationreport"
	"github.com/lexigraph/graphql/pkg/types"
)

func parseSDL(t *testing.T, src string) *ast.Document {
	t.Helper()
	doc := ast.NewDocument()
	doc.Input.ResetInputBytes([]byte(src))
	var report operationreport.Report
	astparser.NewParser().Parse(doc, &report)
	require.False(t, report.HasErrors(), report.Error())
	return doc
}

const starWarsSDL = `
schema { query: Query }

"""The query root."""
type Query {
  hero(episode: Episode): Character
  human(id: ID!): Human
  droid(id: ID!): Droid
}

interface Character {
  id: ID!
  name: String!
  friends: [Character]
}

type Human implements Character {
  id: ID!
  name: String!
  friends: [Character]
  homePlanet: String
}

type Droid implements Character {
  id: ID!
  name: String!
  friends: [Character]
  primaryFunction: String
}

union SearchResult = Human | Droid

enum Episode {
  NEWHOPE
  EMPIRE
  JEDI
}

input ReviewInput {
  stars: Int!
  commentary: String
}

directive @confidential(reason: String = "classified") on FIELD_DEFINITION
`

func TestBuild_RootsAndNamedTypes(t *testing.T) {
	doc := parseSDL(t, starWarsSDL)
	var report operationreport.Report
	schema := astbuildschema.Build(doc, &report)
	require.False(t, report.HasErrors(), report.Error())

	require.NotNil(t, schema.Query)
	require.Equal(t, "Query", schema.Query.Name)
	require.NotNil(t, schema.TypeByName("Human"))
	require.NotNil(t, schema.TypeByName("Droid"))
	require.NotNil(t, schema.TypeByName("Character"))
	require.NotNil(t, schema.TypeByName("SearchResult"))
	require.NotNil(t, schema.TypeByName("Episode"))
	require.NotNil(t, schema.TypeByName("ReviewInput"))
}

func TestBuild_MutuallyRecursiveFieldsResolveLazily(t *testing.T) {
	doc := parseSDL(t, starWarsSDL)
	schema := astbuildschema.Build(doc, nil)

	human, ok := schema.TypeByName("Human").(*types.Object)
	require.True(t, ok)
	friends, ok := human.Fields.Lookup("friends")
	require.True(t, ok)
	list, ok := friends.Type.(*types.List)
	require.True(t, ok)
	character, ok := list.Type.(*types.Interface)
	require.True(t, ok)
	require.Equal(t, "Character", character.Name)

	ifaces := human.Interfaces.All()
	require.Len(t, ifaces, 1)
	require.Equal(t, "Character", ifaces[0].Name)
}

func TestBuild_InterfaceImplementationsAreDiscoverable(t *testing.T) {
	doc := parseSDL(t, starWarsSDL)
	schema := astbuildschema.Build(doc, nil)

	character, ok := schema.TypeByName("Character").(*types.Interface)
	require.True(t, ok)
	impls := schema.Implementations(character)
	names := make([]string, len(impls))
	for i, o := range impls {
		names[i] = o.Name
	}
	require.ElementsMatch(t, []string{"Human", "Droid"}, names)
}

func TestBuild_UnionMembersResolveToObjects(t *testing.T) {
	doc := parseSDL(t, starWarsSDL)
	schema := astbuildschema.Build(doc, nil)

	sr, ok := schema.TypeByName("SearchResult").(*types.Union)
	require.True(t, ok)
	members := sr.Types.All()
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name
	}
	require.ElementsMatch(t, []string{"Human", "Droid"}, names)
}

func TestBuild_EnumValuesAndDirectivesArePopulated(t *testing.T) {
	doc := parseSDL(t, starWarsSDL)
	schema := astbuildschema.Build(doc, nil)

	require.NotNil(t, schema.TypeByName("Episode"))
	d := schema.DirectiveByName("confidential")
	require.NotNil(t, d)
	require.True(t, d.HasLocation("FIELD_DEFINITION"))
}

func TestBuild_UnknownTypeReferenceIsReported(t *testing.T) {
	doc := parseSDL(t, `
schema { query: Query }
type Query { hero: Missing }
`)
	var report operationreport.Report
	astbuildschema.Build(doc, &report)
	require.True(t, report.HasErrors())
	require.Contains(t, report.Error(), `Unknown type "Missing"`)
}
