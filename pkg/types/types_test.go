package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lexigraph/graphql/pkg/types"
)

// TestMutuallyRecursiveObjects exercises spec.md §9's lazy thunk
// requirement: Human references Character (its own interface) and vice
// versa through a self-referential "friends" field, which would be
// impossible to construct with eagerly-evaluated fields.
func TestMutuallyRecursiveObjects(t *testing.T) {
	var human *types.Object
	var character *types.Interface

	character = &types.Interface{
		Name: "Character",
		Fields: types.NewLazyNamedSet(func() []*types.Field {
			return []*types.Field{
				{Name: "name", Type: &types.Scalar{Name: "String"}},
				{Name: "friends", Type: &types.List{Type: character}},
			}
		}),
	}

	human = &types.Object{
		Name:       "Human",
		Interfaces: types.NewNamedSet([]*types.Interface{character}),
		Fields: types.NewLazyNamedSet(func() []*types.Field {
			return []*types.Field{
				{Name: "name", Type: &types.Scalar{Name: "String"}},
				{Name: "friends", Type: &types.List{Type: human}},
			}
		}),
	}

	fields := human.Fields.All()
	require.Len(t, fields, 2)
	friends, ok := human.Fields.Lookup("friends")
	require.True(t, ok)
	list, ok := friends.Type.(*types.List)
	require.True(t, ok)
	require.Same(t, human, list.Type.(*types.Object))

	ifaceFields := character.Fields.All()
	require.Len(t, ifaceFields, 2)
}

func buildTestSchema() *types.Schema {
	character := &types.Interface{
		Name:   "Character",
		Fields: types.NewNamedSet([]*types.Field{{Name: "name", Type: &types.Scalar{Name: "String"}}}),
	}
	human := &types.Object{
		Name:       "Human",
		Interfaces: types.NewNamedSet([]*types.Interface{character}),
		Fields:     types.NewNamedSet([]*types.Field{{Name: "name", Type: &types.Scalar{Name: "String"}}}),
	}
	droid := &types.Object{
		Name:       "Droid",
		Interfaces: types.NewNamedSet([]*types.Interface{character}),
		Fields:     types.NewNamedSet([]*types.Field{{Name: "name", Type: &types.Scalar{Name: "String"}}}),
	}
	query := &types.Object{
		Name: "Query",
		Fields: types.NewNamedSet([]*types.Field{
			{Name: "hero", Type: character},
		}),
	}
	return types.NewSchema(query, nil, nil, []types.NamedType{human, droid}, nil)
}

func TestSchema_ImplementationsAndPossibleTypes(t *testing.T) {
	schema := buildTestSchema()
	character := schema.TypeByName("Character").(*types.Interface)
	human := schema.TypeByName("Human").(*types.Object)

	impls := schema.Implementations(character)
	require.Len(t, impls, 2)

	require.True(t, schema.IsPossibleType(character, human))

	droid := schema.TypeByName("Droid").(*types.Object)
	require.True(t, schema.IsPossibleType(character, droid))
}

func TestSchema_BuiltinDirectivesAlwaysPresent(t *testing.T) {
	schema := buildTestSchema()
	require.NotNil(t, schema.DirectiveByName("skip"))
	require.NotNil(t, schema.DirectiveByName("include"))
	require.NotNil(t, schema.DirectiveByName("deprecated"))
}

func TestSchema_ValidationErrorsMemoizedOnce(t *testing.T) {
	schema := buildTestSchema()
	calls := 0
	compute := func() []error {
		calls++
		return nil
	}
	schema.ValidationErrors(compute)
	schema.ValidationErrors(compute)
	require.Equal(t, 1, calls)
}
