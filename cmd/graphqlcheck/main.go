// Command graphqlcheck is a small in-process demo binary (SPEC_FULL.md
// §4.12/§10): parse an SDL schema file and a GraphQL operation file,
// validate both, and optionally execute the operation against a JSON root
// value, printing the wire-stable {data, errors} response. It is not a
// host transport or server — no HTTP, no persistence — only a thin CLI
// wiring the rest of the module together end to end, the same role the
// teacher's own small `cmd/` tools play for their respective packages.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jensneuse/abstractlogger"

	"github.com/lexigraph/graphql/internal/config"
	"github.com/lexigraph/graphql/internal/log"
	"github.com/lexigraph/graphql/pkg/ast"
	"github.com/lexigraph/graphql/pkg/astbuildschema"
	"github.com/lexigraph/graphql/pkg/astparser"
	"github.com/lexigraph/graphql/pkg/astvalidation"
	"github.com/lexigraph/graphql/pkg/execution"
	"github.com/lexigraph/graphql/pkg/graphqlerrors"
	"github.com/lexigraph/graphql/pkg/operationreport"
	"github.com/lexigraph/graphql/pkg/schemavalidate"
)

func main() {
	var (
		schemaPath    string
		operationPath string
		configPath    string
		rootPath      string
		variablesPath string
		operationName string
		execute       bool
	)

	flag.StringVar(&schemaPath, "schema", "", "Path to an SDL schema file")
	flag.StringVar(&operationPath, "operation", "", "Path to a GraphQL operation document")
	flag.StringVar(&configPath, "config", "", "Path to a YAML engine config file (defaults applied if omitted)")
	flag.StringVar(&rootPath, "root", "", "Path to a JSON file used as the root value (requires -execute)")
	flag.StringVar(&variablesPath, "variables", "", "Path to a JSON file of variable values")
	flag.StringVar(&operationName, "operation-name", "", "Operation name to execute, if the document defines more than one")
	flag.BoolVar(&execute, "execute", false, "Execute the operation after validating it")
	flag.Parse()

	os.Exit(run(schemaPath, operationPath, configPath, rootPath, variablesPath, operationName, execute, os.Stdout, os.Stderr))
}

func run(schemaPath, operationPath, configPath, rootPath, variablesPath, operationName string, execute bool, stdout, stderr io.Writer) int {
	if schemaPath == "" || operationPath == "" {
		fmt.Fprintln(stderr, "graphqlcheck: -schema and -operation are required")
		return 2
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(stderr, "graphqlcheck: load config: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	logger, err := log.NewZap(abstractlogger.ErrorLevel)
	if err != nil {
		fmt.Fprintf(stderr, "graphqlcheck: init logger: %v\n", err)
		return 1
	}

	schemaDoc, ok := parseFile(schemaPath, stderr)
	if !ok {
		return 1
	}
	var buildReport operationreport.Report
	schema := astbuildschema.Build(schemaDoc, &buildReport)
	if buildReport.HasErrors() {
		printErrors(stdout, graphqlerrors.FromExternalErrors(buildReport.ExternalErrors))
		return 1
	}
	if errs := schemavalidate.Validate(schema); len(errs) > 0 {
		printErrors(stdout, graphqlerrors.FromErrors(errs))
		return 1
	}

	operationDoc, ok := parseFile(operationPath, stderr)
	if !ok {
		return 1
	}
	var validateReport operationreport.Report
	astvalidation.Validate(schemaDoc, operationDoc, &validateReport)
	if validateReport.HasErrors() {
		printErrors(stdout, graphqlerrors.FromExternalErrors(validateReport.ExternalErrors))
		return 1
	}

	if !execute {
		fmt.Fprintln(stdout, "ok")
		return 0
	}

	rootValue, err := readJSONFile(rootPath)
	if err != nil {
		fmt.Fprintf(stderr, "graphqlcheck: read root value: %v\n", err)
		return 1
	}
	variables, err := readJSONFile(variablesPath)
	if err != nil {
		fmt.Fprintf(stderr, "graphqlcheck: read variables: %v\n", err)
		return 1
	}
	variableValues, _ := variables.(map[string]interface{})

	resp := execution.Execute(&execution.Request{
		Schema:                     schema,
		Document:                   operationDoc,
		OperationName:              operationName,
		RawVariableValues:          variableValues,
		RootValue:                  rootValue,
		Logger:                     logger,
		Concurrency:                cfg.ExecutorConcurrency,
		DefaultFieldResolverStrict: cfg.DefaultFieldResolverStrict,
	})

	out, err := marshalResponse(resp)
	if err != nil {
		fmt.Fprintf(stderr, "graphqlcheck: marshal response: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, string(out))
	if len(resp.Errors) > 0 {
		return 1
	}
	return 0
}

func parseFile(path string, stderr io.Writer) (*ast.Document, bool) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "graphqlcheck: read %s: %v\n", path, err)
		return nil, false
	}
	doc := ast.NewDocument()
	doc.Input.ResetInputBytes(src)
	var report operationreport.Report
	astparser.NewParser().Parse(doc, &report)
	if report.HasErrors() {
		fmt.Fprintf(stderr, "graphqlcheck: parse %s: %s\n", path, report.Error())
		return nil, false
	}
	return doc, true
}

func readJSONFile(path string) (interface{}, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// marshalResponse renders spec.md §6's {data, errors} shape exactly,
// distinguishing an absent "data" key (validation never reached execution)
// from an explicit "data": null (a non-null violation bubbled to the
// root) — a distinction encoding/json's struct tags cannot express on
// their own, so this builds the object by hand the way
// execution.OrderedMap.MarshalJSON already does for the same reason.
func marshalResponse(resp *execution.Response) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	wrote := false
	if resp.HasData {
		buf.WriteString(`"data":`)
		if resp.Data == nil {
			buf.WriteString("null")
		} else {
			b, err := resp.Data.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		wrote = true
	}
	if len(resp.Errors) > 0 {
		if wrote {
			buf.WriteByte(',')
		}
		buf.WriteString(`"errors":`)
		b, err := json.Marshal(graphqlerrors.FromFieldErrors(resp.Errors))
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func printErrors(stdout io.Writer, errs []*graphqlerrors.Error) {
	b, err := json.Marshal(struct {
		Errors []*graphqlerrors.Error `json:"errors"`
	}{Errors: errs})
	if err != nil {
		fmt.Fprintf(stdout, "graphqlcheck: marshal errors: %v\n", err)
		return
	}
	fmt.Fprintln(stdout, string(b))
}
