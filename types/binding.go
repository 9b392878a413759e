package types

import (
	"fmt"
	"strings"

	"github.com/cottand/reify/util"
)

// Binding is the ephemeral type-argument context of one generic function
// or method call. It is freshly computed every invocation and never
// cached: unlike a class parameterization, a call has no persistent
// identity to hang a cache on.
type Binding struct {
	decl *Declaration
	args []*Reified
}

func (b *Binding) Decl() *Declaration { return b.decl }

// TypeArgs returns the resolved type arguments of the call, in parameter
// order. Callers must not modify the slice.
func (b *Binding) TypeArgs() []*Reified { return b.args }

// ArgFor resolves one of the call's type parameters by name, for in-body
// references to it.
func (b *Binding) ArgFor(param string) (*Reified, bool) {
	for i, p := range b.decl.Params {
		if p.Name == param {
			return b.args[i], true
		}
	}
	return nil, false
}

func (b *Binding) pairs() []util.Pair[typeName, *Reified] {
	pairs := make([]util.Pair[typeName, *Reified], len(b.args))
	for i, p := range b.decl.Params {
		pairs[i] = util.NewPair(p.Name, b.args[i])
	}
	return pairs
}

func (b *Binding) String() string {
	sb := strings.Builder{}
	sb.WriteString(b.decl.Name)
	sb.WriteByte('<')
	for i, pair := range b.pairs() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(pair.Fst)
		sb.WriteString(" = ")
		sb.WriteString(pair.Snd.String())
	}
	sb.WriteByte('>')
	return sb.String()
}

// env exposes the binding as a use-site scope for type expressions
// evaluated inside the call body.
func (b *Binding) env() map[typeName]*Reified {
	env := make(map[typeName]*Reified, len(b.args))
	for i, p := range b.decl.Params {
		env[p.Name] = b.args[i]
	}
	return env
}

// InstantiateIn resolves a type expression in the scope of this call's
// type arguments, for in-body new expressions and instanceof checks that
// mention the call's type parameters.
func (ctx *TypeCtx) InstantiateIn(expr TypeExpr, binding *Binding) (*Reified, error) {
	var env map[typeName]*Reified
	if binding != nil {
		env = binding.env()
	}
	return ctx.evalExpr(expr, env)
}

// Construct builds an instance of the named class. Type arguments come
// from exactly one source: explicit arguments always win and are
// independently bound-checked, otherwise they are inferred from
// ctorArgs, otherwise defaults fill in. The Reified is attached to the
// instance before the constructor body observes it.
func (ctx *TypeCtx) Construct(name string, explicit []TypeExpr, ctorArgs []Value) (*Instance, error) {
	decl, resolveErr := ctx.resolveName(name)
	if resolveErr != nil {
		return nil, resolveErr
	}
	if decl.Kind != KindClass {
		return nil, fmt.Errorf("cannot construct %s '%s'", decl.Kind, decl.Name)
	}
	args, err := ctx.argTuple(decl, explicit, ctorArgs, len(ctorArgs) > 0, nil)
	if err != nil {
		return nil, err
	}
	inst := &Instance{
		reified: ctx.intern(decl, args),
		Fields:  make(map[string]Value),
	}
	if decl.Body != nil {
		binding := &Binding{decl: decl, args: args}
		if _, err := decl.Body(binding, inst, ctorArgs); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

// BindCall resolves the type-argument context for one function or method
// call without running its body.
func (ctx *TypeCtx) BindCall(decl *Declaration, explicit []TypeExpr, callArgs []Value) (*Binding, error) {
	if decl.Kind != KindFunction && decl.Kind != KindMethod {
		return nil, fmt.Errorf("cannot bind type arguments of %s '%s'", decl.Kind, decl.Name)
	}
	args, err := ctx.argTuple(decl, explicit, callArgs, len(callArgs) > 0, nil)
	if err != nil {
		return nil, err
	}
	return &Binding{decl: decl, args: args}, nil
}

// Invoke runs one generic call end to end and returns the binding
// alongside the result, so a reflection layer can answer "type arguments
// of the current call".
func (ctx *TypeCtx) Invoke(decl *Declaration, explicit []TypeExpr, callArgs []Value) (Value, *Binding, error) {
	binding, err := ctx.BindCall(decl, explicit, callArgs)
	if err != nil {
		return nil, nil, err
	}
	var ret Value = Null{}
	if decl.Body != nil {
		ret, err = decl.Body(binding, nil, callArgs)
		if err != nil {
			return nil, binding, err
		}
	}
	return ret, binding, nil
}
