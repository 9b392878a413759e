package types

import "github.com/cottand/reify/generr"

// checkBound validates a resolved argument against its parameter's upper
// bound. A nil bound accepts anything. env holds the declaration's full
// resolved tuple keyed by parameter name, so a bound may reference any
// sibling.
func (ctx *TypeCtx) checkBound(param TypeParam, arg *Reified, env map[typeName]*Reified) error {
	if arg.decl.Kind == KindTrait {
		return generr.New(generr.NewInvalidBoundTarget{Name: arg.decl.Name, Use: "argument"})
	}
	if param.Bound == nil {
		return nil
	}

	if param.Bound.Bare() {
		if sibling, ok := env[param.Bound.Base]; ok {
			if !ctx.IsSubtypeReified(arg, sibling) {
				return ctx.boundViolation(param, arg)
			}
			return nil
		}
		boundDecl, err := ctx.resolveName(param.Bound.Base)
		if err != nil {
			return err
		}
		if boundDecl.Kind == KindTrait {
			return generr.New(generr.NewInvalidBoundTarget{Name: boundDecl.Name, Use: "bound"})
		}
		if !ctx.IsSubtypeBase(arg.decl.Name, boundDecl.Name) {
			return ctx.boundViolation(param, arg)
		}
		return nil
	}

	// a parameterized bound recurses into nested arguments with the same
	// covariant matching as the runtime subtype check
	target, err := ctx.evalExpr(*param.Bound, env)
	if err != nil {
		return err
	}
	if !ctx.IsSubtypeReified(arg, target) {
		return ctx.boundViolation(param, arg)
	}
	return nil
}

func (ctx *TypeCtx) boundViolation(param TypeParam, arg *Reified) error {
	return generr.New(generr.NewBoundViolation{
		Param:    param.Name,
		Argument: arg.String(),
		Bound:    param.Bound.String(),
	})
}
