package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cottand/reify/generr"
	"github.com/cottand/reify/types"
)

func mustConstruct(t *testing.T, ctx *types.TypeCtx, name string, typeArgs ...types.TypeExpr) *types.Instance {
	t.Helper()
	inst, err := ctx.Construct(name, typeArgs, nil)
	require.NoError(t, err)
	return inst
}

func TestSubtypeReflexivity(t *testing.T) {
	ctx := newZooCtx(t)
	box := mustDecl(t, ctx, "Box")

	boxCat, err := ctx.Instantiate(box, []types.TypeExpr{expr("Cat")})
	require.NoError(t, err)
	assert.True(t, ctx.IsSubtypeReified(boxCat, boxCat))
}

func TestIsInstanceCovariance(t *testing.T) {
	ctx := newZooCtx(t)
	boxCat := mustConstruct(t, ctx, "Box", expr("Cat"))

	for _, tt := range []struct {
		target types.TypeExpr
		want   bool
	}{
		{expr("Box", expr("Cat")), true},
		{expr("Box", expr("Feline")), true},
		{expr("Box", expr("Boxable")), true},
		{expr("Box", expr("Hat")), false},
		{expr("Entry", expr("Cat"), expr("Cat")), false},
	} {
		t.Run(tt.target.String(), func(t *testing.T) {
			got, err := ctx.IsInstance(boxCat, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsInstanceErasedCheck(t *testing.T) {
	ctx := newZooCtx(t)
	boxCat := mustConstruct(t, ctx, "Box", expr("Cat"))
	boxHat := mustConstruct(t, ctx, "Box", expr("Hat"))

	// a bare target ignores reified arguments entirely
	for _, inst := range []*types.Instance{boxCat, boxHat} {
		got, err := ctx.IsInstance(inst, expr("Box"))
		require.NoError(t, err)
		assert.True(t, got)
	}
}

func TestIsInstanceThroughSuperChain(t *testing.T) {
	ctx := newZooCtx(t)

	// CatBox extends Box<Cat>: its arguments re-align with Box's
	catBox := mustConstruct(t, ctx, "CatBox")
	got, err := ctx.IsInstance(catBox, expr("Box", expr("Feline")))
	require.NoError(t, err)
	assert.True(t, got)

	got, err = ctx.IsInstance(catBox, expr("Box", expr("Hat")))
	require.NoError(t, err)
	assert.False(t, got)

	// OpenBox<T> extends Box<T>: substitution follows the chain
	openBox := mustConstruct(t, ctx, "OpenBox", expr("Cat"))
	got, err = ctx.IsInstance(openBox, expr("Box", expr("Feline")))
	require.NoError(t, err)
	assert.True(t, got)

	got, err = ctx.IsInstance(openBox, expr("Box"))
	require.NoError(t, err)
	assert.True(t, got)
}

func TestIsInstanceBaseInterface(t *testing.T) {
	ctx := newZooCtx(t)
	cat := mustConstruct(t, ctx, "Cat")

	for target, want := range map[string]bool{
		"Feline":  true,
		"Boxable": true,
		"Cat":     true,
		"Hat":     false,
	} {
		got, err := ctx.IsInstance(cat, expr(target))
		require.NoError(t, err)
		assert.Equal(t, want, got, "Cat instanceof %s", target)
	}
}

func TestIsInstanceRejectsTraitTarget(t *testing.T) {
	ctx := newZooCtx(t)
	cat := mustConstruct(t, ctx, "Cat")

	_, err := ctx.IsInstance(cat, expr("Sneaky"))
	require.Error(t, err)
	assert.Equal(t, generr.InvalidBoundTarget, generr.CodeOf(err))
}

func TestIsInstanceNestedCovariance(t *testing.T) {
	ctx := newZooCtx(t)

	// Box<Box<Cat>> would fail Box's own bound (Box is not Boxable), so
	// nest through Entry which is unbounded
	nested, err := ctx.Instantiate(mustDecl(t, ctx, "Entry"), []types.TypeExpr{expr("Box", expr("Cat")), expr("int")})
	require.NoError(t, err)
	target, err := ctx.Instantiate(mustDecl(t, ctx, "Entry"), []types.TypeExpr{expr("Box", expr("Feline")), expr("int")})
	require.NoError(t, err)
	assert.True(t, ctx.IsSubtypeReified(nested, target))

	unrelated, err := ctx.Instantiate(mustDecl(t, ctx, "Entry"), []types.TypeExpr{expr("Box", expr("Hat")), expr("int")})
	require.NoError(t, err)
	assert.False(t, ctx.IsSubtypeReified(unrelated, target))
}

func TestPrimitiveSubtyping(t *testing.T) {
	ctx := newZooCtx(t)

	assert.True(t, ctx.IsSubtypeBase("string", "string"))
	assert.False(t, ctx.IsSubtypeBase("string", "int"))
	assert.False(t, ctx.IsSubtypeBase("string", "Boxable"))
}
