package types

import "github.com/cottand/reify/generr"

// IsSubtypeReified decides whether candidate is a runtime subtype of
// target. Matching over nested arguments is covariant: Box<Cat> is a
// subtype of Box<Feline> whenever Cat is a subtype of Feline. No
// contravariant or invariant modes exist.
func (ctx *TypeCtx) IsSubtypeReified(candidate, target *Reified) bool {
	if candidate == target {
		// interning makes reference equality the structural fast path
		return true
	}
	if !ctx.IsSubtypeBase(candidate.decl.Name, target.decl.Name) {
		return false
	}
	if len(target.args) == 0 {
		return true
	}
	candidateArgs, ok := ctx.argumentsAsAncestor(candidate, target.decl)
	if !ok || len(candidateArgs) != len(target.args) {
		return false
	}
	for i := range target.args {
		if !ctx.IsSubtypeReified(candidateArgs[i], target.args[i]) {
			return false
		}
	}
	return true
}

// argumentsAsAncestor re-aligns r's arguments with ancestor's
// parameterization by substituting r's arguments through the supertype
// expressions down the declaration chain. CatBox extends Box<Cat> views
// itself as Box with arguments [Cat]; MyBox<T> extends Box<T> applied to
// Cat does the same.
func (ctx *TypeCtx) argumentsAsAncestor(r *Reified, ancestor *Declaration) ([]*Reified, bool) {
	if r.decl == ancestor {
		return r.args, true
	}
	env := make(map[typeName]*Reified, len(r.decl.Params))
	for i, p := range r.decl.Params {
		env[p.Name] = r.args[i]
	}
	for expr := range r.decl.superExprs() {
		super, err := ctx.evalExpr(expr, env)
		if err != nil {
			// an erased supertype use cannot be re-aligned
			continue
		}
		if args, ok := ctx.argumentsAsAncestor(super, ancestor); ok {
			return args, true
		}
	}
	return nil, false
}

// IsInstance is the runtime form of instanceof: does inst satisfy the
// type reference expr? A bare expr is an erased check, deciding on base
// types alone regardless of reified arguments. Traits are not admissible
// targets.
func (ctx *TypeCtx) IsInstance(inst *Instance, expr TypeExpr) (bool, error) {
	decl, err := ctx.resolveName(expr.Base)
	if err != nil {
		return false, err
	}
	if decl.Kind == KindTrait {
		return false, generr.New(generr.NewInvalidBoundTarget{Name: decl.Name, Use: "target"})
	}
	if inst == nil || inst.reified == nil {
		return false, nil
	}
	if expr.Bare() {
		return ctx.IsSubtypeBase(inst.reified.decl.Name, decl.Name), nil
	}
	target, instErr := ctx.Instantiate(decl, expr.Args)
	if instErr != nil {
		return false, instErr
	}
	return ctx.IsSubtypeReified(inst.reified, target), nil
}
