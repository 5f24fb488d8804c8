package graphqlerrors_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lexigraph/graphql/pkg/ast"
	"github.com/lexigraph/graphql/pkg/coercion"
	"github.com/lexigraph/graphql/pkg/execution"
	"github.com/lexigraph/graphql/pkg/graphqlerrors"
	"github.com/lexigraph/graphql/pkg/operationreport"
)

func TestFromFieldError_CarriesLocationAndPath(t *testing.T) {
	src := &execution.FieldError{
		Message:   "boom",
		Locations: []ast.Position{{Line: 2, Column: 5}},
		Path:      []interface{}{"hero", 0, "name"},
	}
	got := graphqlerrors.FromFieldError(src)
	require.Equal(t, "boom", got.Message)
	require.Equal(t, []graphqlerrors.Location{{Line: 2, Column: 5}}, got.Locations)
	require.Equal(t, []interface{}{"hero", 0, "name"}, got.Path)
}

func TestFromFieldError_OmitsEmptyLocationsAndPathFromJSON(t *testing.T) {
	got := graphqlerrors.FromFieldError(&execution.FieldError{Message: "boom"})
	b, err := json.Marshal(got)
	require.NoError(t, err)
	require.JSONEq(t, `{"message":"boom"}`, string(b))
}

func TestFromExternalError_ConvertsReportPosition(t *testing.T) {
	src := operationreport.ExternalError{
		Message:   "Unexpected Name \"frog\"",
		Locations: []operationreport.Position{{Line: 1, Column: 3}},
	}
	got := graphqlerrors.FromExternalError(src)
	require.Equal(t, []graphqlerrors.Location{{Line: 1, Column: 3}}, got.Locations)
}

func TestFromCoercionError_HasPathButNoLocation(t *testing.T) {
	got := graphqlerrors.FromCoercionError(&coercion.Error{Message: "Int cannot represent non-integer value", Path: coercion.Path{"limit"}})
	require.Nil(t, got.Locations)
	require.Equal(t, []interface{}{"limit"}, got.Path)
}

func TestFromError_WrapsPlainErrorWithNoLocationOrPath(t *testing.T) {
	got := graphqlerrors.FromError(errors.New("Type \"Foo\" must define one or more fields."))
	require.Equal(t, `Type "Foo" must define one or more fields.`, got.Message)
	require.Nil(t, got.Locations)
	require.Nil(t, got.Path)
}

func TestFromFieldErrors_PreservesOrder(t *testing.T) {
	errs := []*execution.FieldError{
		{Message: "first"},
		{Message: "second"},
	}
	got := graphqlerrors.FromFieldErrors(errs)
	require.Len(t, got, 2)
	require.Equal(t, "first", got[0].Message)
	require.Equal(t, "second", got[1].Message)
}
