package astvalidation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lexigraph/graphql/pkg/ast"
	"github.com/lexigraph/graphql/pkg/astparser"
	"github.com/lexigraph/graphql/pkg/astvalidation"
	"github.com/lexigraph/graphql/pkg/operationreport"
)

const testSchema = `
schema { query: Query }

type Query {
  hero(episode: Episode): Character
  human(id: ID!): Human
}

interface Character {
  name: String!
}

type Human implements Character {
  name: String!
  homePlanet: String
}

type Droid implements Character {
  name: String!
  primaryFunction: String
}

enum Episode { NEWHOPE, EMPIRE, JEDI }
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

func parseSDL(t *testing.T, src string) *ast.Document { return parse(t, src) }
func parseOp(t *testing.T, src string) *ast.Document   { return parse(t, src) }

func TestValidate_ValidQueryHasNoErrors(t *testing.T) {
	schema := parseSDL(t, testSchema)
	op := parseOp(t, `query Hero($ep: Episode) { hero(episode: $ep) { name } }`)
	var report operationreport.Report
	astvalidation.Validate(schema, op, &report)
	require.False(t, report.HasErrors(), report.Error())
}

func TestValidate_UnknownFieldIsRejected(t *testing.T) {
	schema := parseSDL(t, testSchema)
	op := parseOp(t, `{ hero { nickname } }`)
	var report operationreport.Report
	astvalidation.Validate(schema, op, &report)
	require.True(t, report.HasErrors())
	require.Contains(t, report.ExternalErrors[0].Message, `Cannot query field "nickname"`)
}

func TestValidate_UnusedVariableIsRejected(t *testing.T) {
	schema := parseSDL(t, testSchema)
	op := parseOp(t, `query Hero($ep: Episode) { hero { name } }`)
	var report operationreport.Report
	astvalidation.Validate(schema, op, &report)
	require.True(t, report.HasErrors())
	found := false
	for _, e := range report.ExternalErrors {
		if e.Message == `Variable "ep" is never used.` {
			found = true
		}
	}
	require.True(t, found)
}

func TestValidate_UnknownFragmentSpreadIsRejected(t *testing.T) {
	schema := parseSDL(t, testSchema)
	op := parseOp(t, `{ hero { ...Missing } }`)
	var report operationreport.Report
	astvalidation.Validate(schema, op, &report)
	require.True(t, report.HasErrors())
	require.Contains(t, report.ExternalErrors[0].Message, `Unknown fragment "Missing"`)
}

func TestValidate_FragmentTypeMismatchIsRejected(t *testing.T) {
	schema := parseSDL(t, testSchema)
	op := parseOp(t, `{ human(id: "1") { ... on Droid { primaryFunction } } }`)
	var report operationreport.Report
	astvalidation.Validate(schema, op, &report)
	require.True(t, report.HasErrors())
}

func TestValidate_ScalarLeafMustNotHaveSelection(t *testing.T) {
	schema := parseSDL(t, testSchema)
	op := parseOp(t, `{ human(id: "1") { name { nope } } }`)
	var report operationreport.Report
	astvalidation.Validate(schema, op, &report)
	require.True(t, report.HasErrors())
}

func TestValidate_RequiredArgumentMustBeProvided(t *testing.T) {
	schema := parseSDL(t, testSchema)
	op := parseOp(t, `{ human { name } }`)
	var report operationreport.Report
	astvalidation.Validate(schema, op, &report)
	require.True(t, report.HasErrors())
	require.Contains(t, report.ExternalErrors[0].Message, `required`)
}
