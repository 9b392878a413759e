package types

import (
	"github.com/benbjohnson/immutable"
	"github.com/cottand/reify/util"
)

// Oracle answers nominal subtyping between base (unparameterized) type
// names. It is the single abstraction boundary over the host's concrete
// inheritance representation; TypeCtx implements it from the loaded
// extends/implements edges.
type Oracle interface {
	IsSubtypeBase(sub, super string) bool
}

var _ Oracle = (*TypeCtx)(nil)

// IsSubtypeBase reports whether sub names a base type equal to, or a
// transitive descendant of, super. Traits never participate: they leave
// no identity in the lattice.
func (ctx *TypeCtx) IsSubtypeBase(sub, super string) bool {
	if sub == super {
		subDecl, ok := ctx.lookup(sub)
		return ok && subDecl.Kind != KindTrait
	}
	closure, ok := ctx.superSet(sub)
	return ok && closure.Has(super)
}

// superClosure computes the transitive supertype names of decl. The
// direct supertypes must already be loaded, so their own closures are
// available and the walk needs a single level of indirection.
func (ctx *TypeCtx) superClosure(decl *Declaration) immutable.Set[typeName] {
	builder := util.NewEmptySet[typeName]()
	for expr := range decl.superExprs() {
		builder.Add(expr.Base)
		if parent, ok := ctx.superSet(expr.Base); ok {
			for name := range util.SetIterator(parent) {
				builder.Add(name)
			}
		}
	}
	return builder.Immutable(immutable.NewHasher(""))
}
