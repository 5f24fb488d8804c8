package astprinter_test

import (
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/sebdah/goldie/v2"

	"github.com/lexigraph/graphql/pkg/ast"
	"github.com/lexigraph/graphql/pkg/astparser"
	"github.com/lexigraph/graphql/pkg/astprinter"
	"github.com/lexigraph/graphql/pkg/operationreport"
)

func parse(t *testing.T, src string) *ast.Document {
	t.Helper()
	doc := ast.NewDocument()
	doc.Input.ResetInputBytes([]byte(src))
	var report operationreport.Report
	astparser.NewParser().Parse(doc, &report)
	if report.HasErrors() {
		t.Fatalf("parse error: %s", report.Error())
	}
	return doc
}

func TestPrint_OperationRoundTripsThroughDiffComparison(t *testing.T) {
	doc := parse(t, `query Hero($id: ID!) { hero(id: $id) { name friends { name } } }`)
	out, err := astprinter.Print(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := "query Hero($id: ID!) {\n  hero(id: $id) {\n    name\n    friends {\n      name\n    }\n  }\n}"
	if diff := pretty.Compare(out, want); diff != "" {
		t.Errorf("unexpected diff (-got +want):\n%s", diff)
	}
}

func TestPrint_ReparsingOutputProducesAnIdenticalSecondPrint(t *testing.T) {
	doc := parse(t, `{ hero { name } }`)
	first, err := astprinter.Print(doc)
	if err != nil {
		t.Fatal(err)
	}
	reparsed := parse(t, first)
	second, err := astprinter.Print(reparsed)
	if err != nil {
		t.Fatal(err)
	}
	if diff := pretty.Compare(first, second); diff != "" {
		t.Errorf("print is not idempotent across a reparse (-first +second):\n%s", diff)
	}
}

func TestPrint_SchemaDocumentGolden(t *testing.T) {
	doc := parse(t, `
"""A hero"""
type Hero implements Character {
  name: String!
  friends(first: Int = 10): [Hero!]
}

interface Character {
  name: String!
}

union SearchResult = Hero

enum Episode {
  NEWHOPE
  EMPIRE
}

input HeroFilter {
  name: String
}

directive @auth(role: String!) on FIELD_DEFINITION
`)
	out, err := astprinter.Print(doc)
	if err != nil {
		t.Fatal(err)
	}
	g := goldie.New(t)
	g.Assert(t, "schema_document", []byte(out))
}
