package execution_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lexigraph/graphql/pkg/ast"
	"github.com/lexigraph/graphql/pkg/astbuildschema"
	"github.com/lexigraph/graphql/pkg/astparser"
	"github.com/lexigraph/graphql/pkg/execution"
	"github.com/lexigraph/graphql/pkg/operationreport"
	"github.com/lexigraph/graphql/pkg/types"
)

const heroSDL = `
schema { query: Query mutation: Mutation }

type Query {
  hero: Character
  heroes: [Character!]!
  failing: String!
}

interface Character {
  name: String!
}

type Human implements Character {
  name: String!
  friends: [Human!]
}

type Mutation {
  addHero(name: String!): Human!
}
`

func parse(t *testing.T, src string) *ast.Document {
	t.Helper()
	doc := ast.NewDocument()
	doc.Input.ResetInputBytes([]byte(src))
	var report operationreport.Report
	astparser.NewParser().Parse(doc, &report)
	require.False(t, report.HasErrors(), report.Error())
	return doc
}

func buildSchema(t *testing.T) *types.Schema {
	t.Helper()
	sdl := parse(t, heroSDL)
	var report operationreport.Report
	schema := astbuildschema.Build(sdl, &report)
	require.False(t, report.HasErrors(), report.Error())
	return schema
}

func mustField(t *testing.T, schema *types.Schema, typeName, fieldName string) *types.Field {
	t.Helper()
	obj, ok := schema.TypeByName(typeName).(*types.Object)
	require.True(t, ok, "type %q is not an object", typeName)
	f, ok := obj.Fields.Lookup(fieldName)
	require.True(t, ok, "type %q has no field %q", typeName, fieldName)
	return f
}

func TestExecute_ResolvesNestedObjectAndInterfaceViaDefaultResolver(t *testing.T) {
	schema := buildSchema(t)
	mustField(t, schema, "Query", "hero").Resolve = func(ctx context.Context, source interface{}, args map[string]interface{}, info types.ResolveInfo) (interface{}, error) {
		return map[string]interface{}{
			"name": "Luke Skywalker",
			"friends": []interface{}{
				map[string]interface{}{"name": "Han Solo"},
			},
		}, nil
	}
	characterIface := schema.TypeByName("Character").(*types.Interface)
	characterIface.ResolveType = func(value interface{}) string { return "Human" }

	op := parse(t, `query { hero { name friends { name } } }`)
	resp := execution.Execute(&execution.Request{Schema: schema, Document: op})

	require.Empty(t, resp.Errors)
	require.True(t, resp.HasData)
	hero, ok := resp.Data.Get("hero")
	require.True(t, ok)
	heroMap := hero.(*execution.OrderedMap)
	name, _ := heroMap.Get("name")
	require.Equal(t, "Luke Skywalker", name)
}

func TestExecute_SkipDirectiveOmitsField(t *testing.T) {
	schema := buildSchema(t)
	mustField(t, schema, "Query", "hero").Resolve = func(ctx context.Context, source interface{}, args map[string]interface{}, info types.ResolveInfo) (interface{}, error) {
		return map[string]interface{}{"name": "Leia Organa"}, nil
	}
	characterIface := schema.TypeByName("Character").(*types.Interface)
	characterIface.ResolveType = func(value interface{}) string { return "Human" }

	op := parse(t, `query($skip: Boolean!) { hero { name @skip(if: $skip) } }`)
	resp := execution.Execute(&execution.Request{
		Schema:            schema,
		Document:          op,
		RawVariableValues: map[string]interface{}{"skip": true},
	})

	require.Empty(t, resp.Errors)
	hero, _ := resp.Data.Get("hero")
	heroMap := hero.(*execution.OrderedMap)
	require.Equal(t, 0, heroMap.Len())
}

func TestExecute_NonNullResolverErrorNullsParentAndReports(t *testing.T) {
	schema := buildSchema(t)
	mustField(t, schema, "Query", "failing").Resolve = func(ctx context.Context, source interface{}, args map[string]interface{}, info types.ResolveInfo) (interface{}, error) {
		return nil, errors.New("boom")
	}
	mustField(t, schema, "Query", "hero").Resolve = func(ctx context.Context, source interface{}, args map[string]interface{}, info types.ResolveInfo) (interface{}, error) {
		return map[string]interface{}{"name": "Rey"}, nil
	}
	characterIface := schema.TypeByName("Character").(*types.Interface)
	characterIface.ResolveType = func(value interface{}) string { return "Human" }

	op := parse(t, `query { failing hero { name } }`)
	resp := execution.Execute(&execution.Request{Schema: schema, Document: op})

	require.True(t, resp.HasData)
	require.Nil(t, resp.Data)
	require.Len(t, resp.Errors, 1)
	require.Equal(t, "boom", resp.Errors[0].Message)
	require.Equal(t, []interface{}{"failing"}, resp.Errors[0].Path)
}

func TestExecute_VariableCoercionFailureUsesStandardVariableErrorMessage(t *testing.T) {
	sdl := parse(t, `schema { query: Query } type Query { echo(x: Int!): Int }`)
	var report operationreport.Report
	schema := astbuildschema.Build(sdl, &report)
	require.False(t, report.HasErrors(), report.Error())

	op := parse(t, `query($x:Int!){echo(x:$x)}`)
	resp := execution.Execute(&execution.Request{
		Schema:            schema,
		Document:          op,
		RawVariableValues: map[string]interface{}{"x": "meow"},
	})

	require.False(t, resp.HasData)
	require.Len(t, resp.Errors, 1)
	require.Equal(t, "Variable '$x' got invalid value 'meow'; Int cannot represent non-integer value: 'meow'", resp.Errors[0].Message)
}

func TestExecute_NonNullFieldReturningNullReportsOwnerTypeAndFieldAndStopsAtNearestNullableParent(t *testing.T) {
	sdl := parse(t, `
schema { query: Query }
type Query { nested: Nested }
type Nested { val: String! }
`)
	var report operationreport.Report
	schema := astbuildschema.Build(sdl, &report)
	require.False(t, report.HasErrors(), report.Error())

	mustField(t, schema, "Query", "nested").Resolve = func(ctx context.Context, source interface{}, args map[string]interface{}, info types.ResolveInfo) (interface{}, error) {
		return map[string]interface{}{"val": nil}, nil
	}

	op := parse(t, `{ nested { val } }`)
	resp := execution.Execute(&execution.Request{Schema: schema, Document: op})

	require.True(t, resp.HasData)
	require.NotNil(t, resp.Data)
	nested, ok := resp.Data.Get("nested")
	require.True(t, ok)
	require.Nil(t, nested)
	require.Len(t, resp.Errors, 1)
	require.Equal(t, "Cannot return null for non-nullable field Nested.val.", resp.Errors[0].Message)
	require.Equal(t, []interface{}{"nested", "val"}, resp.Errors[0].Path)
}

func TestExecute_ListOfObjectsCompletesEachElement(t *testing.T) {
	schema := buildSchema(t)
	mustField(t, schema, "Query", "heroes").Resolve = func(ctx context.Context, source interface{}, args map[string]interface{}, info types.ResolveInfo) (interface{}, error) {
		return []interface{}{
			map[string]interface{}{"name": "Finn"},
			map[string]interface{}{"name": "Poe"},
		}, nil
	}
	characterIface := schema.TypeByName("Character").(*types.Interface)
	characterIface.ResolveType = func(value interface{}) string { return "Human" }

	op := parse(t, `query { heroes { name } }`)
	resp := execution.Execute(&execution.Request{Schema: schema, Document: op})

	require.Empty(t, resp.Errors)
	heroes, _ := resp.Data.Get("heroes")
	list := heroes.([]interface{})
	require.Len(t, list, 2)
	first := list[0].(*execution.OrderedMap)
	name, _ := first.Get("name")
	require.Equal(t, "Finn", name)
}

func TestExecute_MutationRootFieldsRunInSourceOrder(t *testing.T) {
	schema := buildSchema(t)
	var order []string
	mustField(t, schema, "Mutation", "addHero").Resolve = func(ctx context.Context, source interface{}, args map[string]interface{}, info types.ResolveInfo) (interface{}, error) {
		name := args["name"].(string)
		order = append(order, name)
		return map[string]interface{}{"name": name}, nil
	}

	op := parse(t, `mutation { first: addHero(name: "A") { name } second: addHero(name: "B") { name } }`)
	resp := execution.Execute(&execution.Request{Schema: schema, Document: op})

	require.Empty(t, resp.Errors)
	require.Equal(t, []string{"A", "B"}, order)
}

func TestExecuteSync_DeferredResolverIsAnError(t *testing.T) {
	schema := buildSchema(t)
	mustField(t, schema, "Query", "failing").Resolve = func(ctx context.Context, source interface{}, args map[string]interface{}, info types.ResolveInfo) (interface{}, error) {
		return deferredStub{}, nil
	}

	op := parse(t, `query { failing }`)
	resp := execution.ExecuteSync(&execution.Request{Schema: schema, Document: op})

	require.NotEmpty(t, resp.Errors)
	require.Contains(t, resp.Errors[0].Message, "synchronously")
}

type deferredStub struct{}

func (deferredStub) Await(ctx context.Context) (interface{}, error) {
	return "late", nil
}
