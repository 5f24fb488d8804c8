package coercion_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lexigraph/graphql/pkg/ast"
	"github.com/lexigraph/graphql/pkg/astbuildschema"
	"github.com/lexigraph/graphql/pkg/astparser"
	"github.com/lexigraph/graphql/pkg/coercion"
	"github.com/lexigraph/graphql/pkg/operationreport"
	"github.com/lexigraph/graphql/pkg/types"
)

func parse(t *testing.T, src string) *ast.Document {
	t.Helper()
	doc := ast.NewDocument()
	doc.Input.ResetInputBytes([]byte(src))
	var report operationreport.Report
	astparser.NewParser().Parse(doc, &report)
	require.False(t, report.HasErrors(), report.Error())
	return doc
}

const reviewSDL = `
schema { query: Query }
type Query { hero(episode: Episode): String }
enum Episode { NEWHOPE EMPIRE JEDI }
input ReviewInput { stars: Int! commentary: String tags: [String!] }
`

func buildSchema(t *testing.T, sdl string) *types.Schema {
	t.Helper()
	doc := parse(t, sdl)
	var report operationreport.Report
	schema := astbuildschema.Build(doc, &report)
	require.False(t, report.HasErrors(), report.Error())
	return schema
}

func TestCoerceVariableValues_AppliesDefaultWhenAbsent(t *testing.T) {
	schema := buildSchema(t, reviewSDL)
	op := parse(t, `query Hero($ep: Episode = JEDI) { hero(episode: $ep) }`)

	opDef := op.OperationDefinitions[0]
	values, errs := coercion.CoerceVariableValues(schema, op, opDef.VariableDefinitions, map[string]interface{}{})
	require.Empty(t, errs)
	require.Equal(t, "JEDI", values["ep"])
}

func TestCoerceVariableValues_RejectsUnknownEnumValue(t *testing.T) {
	schema := buildSchema(t, reviewSDL)
	op := parse(t, `query Hero($ep: Episode!) { hero(episode: $ep) }`)

	opDef := op.OperationDefinitions[0]
	_, errs := coercion.CoerceVariableValues(schema, op, opDef.VariableDefinitions, map[string]interface{}{"ep": "BADGUY"})
	require.NotEmpty(t, errs)
}

func TestCoerceVariableValues_RequiredMissingIsError(t *testing.T) {
	schema := buildSchema(t, reviewSDL)
	op := parse(t, `query Hero($ep: Episode!) { hero(episode: $ep) }`)

	opDef := op.OperationDefinitions[0]
	_, errs := coercion.CoerceVariableValues(schema, op, opDef.VariableDefinitions, map[string]interface{}{})
	require.NotEmpty(t, errs)
}

func TestCoerceVariableValues_ScalarMismatchGetsStandardVariableErrorPrefix(t *testing.T) {
	schema := buildSchema(t, `
schema { query: Query }
type Query { echo(x: Int!): Int }
`)
	op := parse(t, `query($x:Int!){echo(x:$x)}`)

	opDef := op.OperationDefinitions[0]
	_, errs := coercion.CoerceVariableValues(schema, op, opDef.VariableDefinitions, map[string]interface{}{"x": "meow"})
	require.Len(t, errs, 1)
	require.Equal(t, "Variable '$x' got invalid value 'meow'; Int cannot represent non-integer value: 'meow'", errs[0].Error())
}

func TestCoerceArgumentValues_LiteralAndInputObject(t *testing.T) {
	schema := buildSchema(t, `
schema { query: Query }
type Query { submit(review: ReviewInput!): String }
input ReviewInput { stars: Int! commentary: String }
`)
	op := parse(t, `{ submit(review: { stars: 5, commentary: "Great" }) }`)

	field := op.Fields[0]
	queryType := schema.Query
	fieldDef, _ := queryType.Fields.Lookup("submit")
	values, errs := coercion.CoerceArgumentValues(op, field.Arguments, fieldDef.Args, nil)
	require.Empty(t, errs)
	review, ok := values["review"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, 5, review["stars"])
	require.Equal(t, "Great", review["commentary"])
}

func TestCoerceArgumentValues_BareValueBecomesSingleElementList(t *testing.T) {
	schema := buildSchema(t, `
schema { query: Query }
type Query { search(tags: [String!]): String }
`)
	op := parse(t, `{ search(tags: "bar") }`)

	field := op.Fields[0]
	fieldDef, _ := schema.Query.Fields.Lookup("search")
	values, errs := coercion.CoerceArgumentValues(op, field.Arguments, fieldDef.Args, nil)
	require.Empty(t, errs)
	require.Equal(t, []interface{}{"bar"}, values["tags"])
}

func TestSerialize_EnumRoundTripsToName(t *testing.T) {
	schema := buildSchema(t, reviewSDL)
	episode := schema.TypeByName("Episode").(*types.Enum)
	out, err := coercion.Serialize(episode, "JEDI")
	require.NoError(t, err)
	require.Equal(t, "JEDI", out)
}

func TestSerialize_NonNullListRecurses(t *testing.T) {
	listType := &types.NonNull{Type: &types.List{Type: types.String}}
	out, err := coercion.Serialize(listType, []interface{}{"a", "b"})
	require.NoError(t, err)
	require.Equal(t, []interface{}{"a", "b"}, out)
}

func TestDecodeVariablesJSON(t *testing.T) {
	values, err := coercion.DecodeVariablesJSON([]byte(`{"ep": "JEDI", "n": 3}`))
	require.NoError(t, err)
	require.Equal(t, "JEDI", values["ep"])
	require.EqualValues(t, 3, values["n"])
}

func TestPatchResultJSON(t *testing.T) {
	out, err := coercion.PatchResultJSON([]byte(`{"data":{}}`), coercion.Path{"data", "hero", "name"}, "Luke")
	require.NoError(t, err)
	require.JSONEq(t, `{"data":{"hero":{"name":"Luke"}}}`, string(out))
}
