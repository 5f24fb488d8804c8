package schemavalidate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lexigraph/graphql/pkg/schemavalidate"
	"github.com/lexigraph/graphql/pkg/types"
)

func TestValidate_ValidSchema(t *testing.T) {
	query := &types.Object{
		Name:   "Query",
		Fields: types.NewNamedSet([]*types.Field{{Name: "hello", Type: &types.Scalar{Name: "String"}}}),
	}
	schema := types.NewSchema(query, nil, nil, nil, nil)
	require.Empty(t, schemavalidate.Validate(schema))
}

func TestValidate_MissingQueryType(t *testing.T) {
	schema := types.NewSchema(nil, nil, nil, nil, nil)
	errs := schemavalidate.Validate(schema)
	require.NotEmpty(t, errs)
	require.Contains(t, errs[0].Error(), "Query root type must be provided")
}

func TestValidate_ObjectWithNoFields(t *testing.T) {
	query := &types.Object{Name: "Query", Fields: types.NewNamedSet[*types.Field](nil)}
	schema := types.NewSchema(query, nil, nil, nil, nil)
	errs := schemavalidate.Validate(schema)
	require.NotEmpty(t, errs)
	require.Contains(t, errs[0].Error(), "must define one or more fields")
}

func TestValidate_ObjectMustSatisfyInterfaceFields(t *testing.T) {
	character := &types.Interface{
		Name:   "Character",
		Fields: types.NewNamedSet([]*types.Field{{Name: "name", Type: &types.NonNull{Type: &types.Scalar{Name: "String"}}}}),
	}
	human := &types.Object{
		Name:       "Human",
		Interfaces: types.NewNamedSet([]*types.Interface{character}),
		Fields:     types.NewNamedSet([]*types.Field{{Name: "name", Type: &types.Scalar{Name: "String"}}}),
	}
	query := &types.Object{
		Name:   "Query",
		Fields: types.NewNamedSet([]*types.Field{{Name: "hero", Type: human}}),
	}
	schema := types.NewSchema(query, nil, nil, []types.NamedType{character}, nil)
	errs := schemavalidate.Validate(schema)
	require.NotEmpty(t, errs)
	require.Contains(t, errs[0].Error(), "Interface field Character.name expects type String!")
}

func TestValidate_InputObjectCyclicNonNullIsRejected(t *testing.T) {
	var self *types.InputObject
	self = &types.InputObject{
		Name: "Recursive",
		Fields: types.NewLazyNamedSet(func() []*types.InputField {
			return []*types.InputField{{Name: "child", Type: &types.NonNull{Type: self}}}
		}),
	}
	query := &types.Object{
		Name: "Query",
		Fields: types.NewNamedSet([]*types.Field{{
			Name: "hello",
			Type: &types.Scalar{Name: "String"},
			Args: types.NewNamedSet([]*types.Argument{{Name: "in", Type: self}}),
		}}),
	}
	schema := types.NewSchema(query, nil, nil, nil, nil)
	errs := schemavalidate.Validate(schema)
	require.NotEmpty(t, errs)
	all := ""
	for _, e := range errs {
		all += e.Error() + "\n"
	}
	require.Contains(t, all, "Cannot reference Input Object")
}
