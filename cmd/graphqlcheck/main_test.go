package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const heroSDL = `
schema { query: Query }

type Query {
  hero: Hero!
}

type Hero {
  name: String!
}
`

func TestRun_ValidatesAndExitsCleanWithoutExecute(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTemp(t, dir, "schema.graphql", heroSDL)
	opPath := writeTemp(t, dir, "op.graphql", `{ hero { name } }`)

	var stdout, stderr bytes.Buffer
	code := run(schemaPath, opPath, "", "", "", "", false, &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Equal(t, "ok\n", stdout.String())
}

func TestRun_ReportsOperationValidationErrors(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTemp(t, dir, "schema.graphql", heroSDL)
	opPath := writeTemp(t, dir, "op.graphql", `{ hero { missingField } }`)

	var stdout, stderr bytes.Buffer
	code := run(schemaPath, opPath, "", "", "", "", false, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stdout.String(), `"errors"`)
}

func TestRun_ExecutesAgainstJSONRootValue(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTemp(t, dir, "schema.graphql", heroSDL)
	opPath := writeTemp(t, dir, "op.graphql", `{ hero { name } }`)
	rootPath := writeTemp(t, dir, "root.json", `{"hero":{"name":"Luke"}}`)

	var stdout, stderr bytes.Buffer
	code := run(schemaPath, opPath, "", rootPath, "", "", true, &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), `"name":"Luke"`)
	require.NotContains(t, stdout.String(), `"errors"`)
}
