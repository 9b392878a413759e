package types

import (
	"strings"

	"github.com/cottand/reify/generr"
)

// Reified is the canonical runtime form of one parameterization: a
// declaration applied to a full, bound-checked argument tuple. Reified
// values are interned, so reference equality coincides with structural
// equality, and one object is shared by every instance constructed with
// that parameterization.
type Reified struct {
	decl *Declaration
	args []*Reified
	str  string
}

func (r *Reified) Decl() *Declaration { return r.decl }

// Args returns the resolved argument tuple, default-filled to the full
// parameter count. Callers must not modify it.
func (r *Reified) Args() []*Reified { return r.args }

func (r *Reified) String() string { return r.str }

func canonicalKey(decl *Declaration, args []*Reified) string {
	if len(args) == 0 {
		return decl.Name
	}
	sb := strings.Builder{}
	sb.WriteString(decl.Name)
	sb.WriteByte('<')
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.str)
	}
	sb.WriteByte('>')
	return sb.String()
}

// intern returns the one canonical Reified for (decl, args). The check
// and insert happen under internMu so that concurrent instantiations of
// the same key converge on the first winner; everything leading up to
// here (bound checks, oracle queries) runs unsynchronized.
func (ctx *TypeCtx) intern(decl *Declaration, args []*Reified) *Reified {
	key := canonicalKey(decl, args)
	ctx.internMu.Lock()
	defer ctx.internMu.Unlock()
	if existing, ok := ctx.interned[key]; ok {
		return existing
	}
	r := &Reified{decl: decl, args: args, str: key}
	ctx.interned[key] = r
	ctx.logger.Debug("interned new parameterization", "section", "instantiate", "type", key)
	return r
}

// Instantiate produces the canonical Reified for decl applied to the
// explicit type arguments. With no explicit arguments every parameter
// falls back to its default. All arguments are bound-checked before the
// Reified exists; an unchecked Reified is never observable.
func (ctx *TypeCtx) Instantiate(decl *Declaration, explicit []TypeExpr) (*Reified, error) {
	args, err := ctx.argTuple(decl, explicit, nil, false, nil)
	if err != nil {
		return nil, err
	}
	return ctx.intern(decl, args), nil
}

// argTuple resolves the full argument tuple for decl and bound-checks
// it. Exactly one source applies, in priority order: explicit arguments
// (which must match the parameter count), inference from call argument
// values, or per-parameter defaults.
//
// env is the use-site scope: in-scope type parameter names mapped to
// their resolved arguments. It applies to explicit expressions only;
// bounds and defaults belong to decl and resolve against decl's own
// parameters.
func (ctx *TypeCtx) argTuple(decl *Declaration, explicit []TypeExpr, callArgs []Value, haveCallArgs bool, env map[typeName]*Reified) ([]*Reified, error) {
	var args []*Reified
	switch {
	case len(explicit) > 0:
		if len(explicit) != len(decl.Params) {
			return nil, generr.New(generr.NewArityMismatch{TypeName: decl.Name, Want: len(decl.Params), Got: len(explicit)})
		}
		args = make([]*Reified, len(explicit))
		for i, expr := range explicit {
			resolved, err := ctx.evalExpr(expr, env)
			if err != nil {
				return nil, err
			}
			args[i] = resolved
		}
	case haveCallArgs:
		inferred, err := ctx.inferTypeArgs(decl, callArgs)
		if err != nil {
			return nil, err
		}
		args = inferred
	default:
		args = make([]*Reified, len(decl.Params))
		ownScope := make(map[typeName]*Reified, len(decl.Params))
		for i, p := range decl.Params {
			if p.Default == nil {
				return nil, generr.New(generr.NewMissingTypeArgument{TypeName: decl.Name, Param: p.Name})
			}
			resolved, err := ctx.evalExpr(*p.Default, ownScope)
			if err != nil {
				return nil, err
			}
			args[i] = resolved
			ownScope[p.Name] = resolved
		}
	}

	// bounds see the whole resolved tuple, so a bound may reference any
	// sibling parameter regardless of position; first failure
	// short-circuits
	ownScope := make(map[typeName]*Reified, len(decl.Params))
	for i, p := range decl.Params {
		ownScope[p.Name] = args[i]
	}
	for i, p := range decl.Params {
		if err := ctx.checkBound(p, args[i], ownScope); err != nil {
			return nil, err
		}
	}
	return args, nil
}

// evalExpr resolves a type expression to its canonical Reified. A bare
// name found in env is an in-scope type parameter and resolves to its
// argument; anything else must name a declaration. Traits cannot appear
// as an argument base.
func (ctx *TypeCtx) evalExpr(expr TypeExpr, env map[typeName]*Reified) (*Reified, error) {
	if r, ok := env[expr.Base]; ok && expr.Bare() {
		return r, nil
	}
	decl, resolveErr := ctx.resolveName(expr.Base)
	if resolveErr != nil {
		return nil, resolveErr
	}
	if decl.Kind == KindTrait {
		return nil, generr.New(generr.NewInvalidBoundTarget{Name: decl.Name, Use: "argument"})
	}
	args, err := ctx.argTuple(decl, expr.Args, nil, false, env)
	if err != nil {
		return nil, err
	}
	return ctx.intern(decl, args), nil
}
