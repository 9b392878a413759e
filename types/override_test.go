package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cottand/reify/generr"
	"github.com/cottand/reify/types"
)

func greeterDecl() *types.Declaration {
	return &types.Declaration{
		Name: "Greeter", Kind: types.KindClass,
		Methods: []*types.Declaration{{
			Name: "greet", Kind: types.KindMethod,
			Params: []types.TypeParam{{Name: "T", Bound: ref("Boxable")}},
		}},
	}
}

func TestOverrideParity(t *testing.T) {
	ctx := newZooCtx(t)
	require.NoError(t, ctx.Load(greeterDecl()))

	err := ctx.Load(&types.Declaration{
		Name: "PoliteGreeter", Kind: types.KindClass,
		Extends: ref("Greeter"),
		Methods: []*types.Declaration{{
			Name: "greet", Kind: types.KindMethod,
			Params: []types.TypeParam{{Name: "T", Bound: ref("Boxable")}},
		}},
	})
	assert.NoError(t, err)
}

func TestOverrideRenamedParameter(t *testing.T) {
	ctx := newZooCtx(t)
	require.NoError(t, ctx.Load(greeterDecl()))

	// the overriding parameter may be named differently; only the bound
	// at its position matters
	err := ctx.Load(&types.Declaration{
		Name: "CasualGreeter", Kind: types.KindClass,
		Extends: ref("Greeter"),
		Methods: []*types.Declaration{{
			Name: "greet", Kind: types.KindMethod,
			Params: []types.TypeParam{{Name: "U", Bound: ref("Boxable")}},
		}},
	})
	assert.NoError(t, err)
}

func TestOverrideBoundMismatch(t *testing.T) {
	ctx := newZooCtx(t)
	require.NoError(t, ctx.Load(greeterDecl()))

	err := ctx.Load(&types.Declaration{
		Name: "NarrowGreeter", Kind: types.KindClass,
		Extends: ref("Greeter"),
		Methods: []*types.Declaration{{
			Name: "greet", Kind: types.KindMethod,
			// Feline is a narrower bound, but even a compatible-by-subtyping
			// bound is rejected: the match must be structural
			Params: []types.TypeParam{{Name: "T", Bound: ref("Feline")}},
		}},
	})
	require.Error(t, err)
	assert.Equal(t, generr.OverrideSignature, generr.CodeOf(err))
}

func TestOverrideCountMismatch(t *testing.T) {
	ctx := newZooCtx(t)
	require.NoError(t, ctx.Load(greeterDecl()))

	err := ctx.Load(&types.Declaration{
		Name: "DoubleGreeter", Kind: types.KindClass,
		Extends: ref("Greeter"),
		Methods: []*types.Declaration{{
			Name: "greet", Kind: types.KindMethod,
			Params: []types.TypeParam{
				{Name: "T", Bound: ref("Boxable")},
				{Name: "U"},
			},
		}},
	})
	require.Error(t, err)
	assert.Equal(t, generr.OverrideSignature, generr.CodeOf(err))
}

func TestOverrideMissingBound(t *testing.T) {
	ctx := newZooCtx(t)
	require.NoError(t, ctx.Load(greeterDecl()))

	err := ctx.Load(&types.Declaration{
		Name: "LaxGreeter", Kind: types.KindClass,
		Extends: ref("Greeter"),
		Methods: []*types.Declaration{{
			Name: "greet", Kind: types.KindMethod,
			Params: []types.TypeParam{{Name: "T"}},
		}},
	})
	require.Error(t, err)
	assert.Equal(t, generr.OverrideSignature, generr.CodeOf(err))
}

func TestOverrideThroughInterface(t *testing.T) {
	ctx := newZooCtx(t)
	require.NoError(t, ctx.Load(&types.Declaration{
		Name: "Greets", Kind: types.KindInterface,
		Methods: []*types.Declaration{{
			Name: "greet", Kind: types.KindMethod,
			Params: []types.TypeParam{{Name: "T", Bound: ref("Boxable")}},
		}},
	}))

	err := ctx.Load(&types.Declaration{
		Name: "Shopkeeper", Kind: types.KindClass,
		Implements: []types.TypeExpr{expr("Greets")},
		Methods: []*types.Declaration{{
			Name: "greet", Kind: types.KindMethod,
			Params: []types.TypeParam{{Name: "T", Bound: ref("Feline")}},
		}},
	})
	require.Error(t, err)
	assert.Equal(t, generr.OverrideSignature, generr.CodeOf(err))
}

func TestOverrideUnrelatedMethodNames(t *testing.T) {
	ctx := newZooCtx(t)
	require.NoError(t, ctx.Load(greeterDecl()))

	// a method that overrides nothing carries whatever parameters it wants
	err := ctx.Load(&types.Declaration{
		Name: "WavingGreeter", Kind: types.KindClass,
		Extends: ref("Greeter"),
		Methods: []*types.Declaration{{
			Name: "wave", Kind: types.KindMethod,
			Params: []types.TypeParam{{Name: "A"}, {Name: "B"}},
		}},
	})
	assert.NoError(t, err)
}
