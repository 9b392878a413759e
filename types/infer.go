package types

import "github.com/cottand/reify/generr"

// inferTypeArgs derives the full argument tuple for decl from the
// runtime types of the supplied call argument values. For each type
// parameter, the first formal whose declared type is exactly a bare
// reference to it decides; the runtime type of the value at that
// position becomes the argument. Inference is purely positional: a
// formal typed Container<T> is not an inference site for T.
func (ctx *TypeCtx) inferTypeArgs(decl *Declaration, callArgs []Value) ([]*Reified, error) {
	args := make([]*Reified, len(decl.Params))
	ownScope := make(map[typeName]*Reified, len(decl.Params))
	for i, p := range decl.Params {
		pos, inferable := inferencePosition(decl, p.Name)
		switch {
		case inferable:
			if pos >= len(callArgs) {
				// the call supplied no value at all for this position; only
				// an actual null gets the null-specific error
				return nil, generr.New(generr.NewMissingTypeArgument{TypeName: decl.Name, Param: p.Name})
			}
			reified, hasType := runtimeTypeOf(ctx, callArgs[pos])
			if !hasType {
				// nulls carry no runtime type
				return nil, generr.New(generr.NewNullInference{TypeName: decl.Name, Param: p.Name, Position: pos})
			}
			args[i] = reified
		case p.Default != nil:
			resolved, err := ctx.evalExpr(*p.Default, ownScope)
			if err != nil {
				return nil, err
			}
			args[i] = resolved
		default:
			return nil, generr.New(generr.NewUninferableParameter{TypeName: decl.Name, Param: p.Name})
		}
		ownScope[p.Name] = args[i]
	}
	ctx.logger.Debug("inferred type arguments", "section", "infer", "decl", decl.Name, "args", canonicalKey(decl, args))
	return args, nil
}

// inferencePosition finds the first formal whose declared type is a bare
// reference to param.
func inferencePosition(decl *Declaration, param typeName) (int, bool) {
	for i, f := range decl.Formals {
		if f.Type.Bare() && f.Type.Base == param {
			return i, true
		}
	}
	return 0, false
}
