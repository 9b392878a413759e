// Package reify is the host-facing surface of the generic type engine:
// load parameterized declarations once, then construct, type-check and
// invoke against them.
package reify

import (
	"log/slog"

	"github.com/cottand/reify/internal/log"
	"github.com/cottand/reify/types"
)

// Engine wraps one TypeCtx as the host's process-wide generics
// subsystem. Declarations go in through LoadDeclaration during a load
// phase; afterwards every entry point is safe for concurrent use.
type Engine struct {
	ctx    *types.TypeCtx
	logger *slog.Logger
}

// NewEngine creates an engine with the primitive universe pre-loaded.
// resolver may be nil; otherwise it is consulted for names that have not
// been loaded yet, autoloader style.
func NewEngine(resolver types.Resolver) *Engine {
	return &Engine{
		ctx:    types.NewTypeCtx(resolver),
		logger: log.DefaultLogger.With("section", "load"),
	}
}

// Ctx exposes the underlying type context for reflection collaborators.
func (e *Engine) Ctx() *types.TypeCtx { return e.ctx }

// LoadDeclaration validates decl and commits it. It fails closed: a
// rejected declaration leaves no partial effects on the engine.
func (e *Engine) LoadDeclaration(decl *types.Declaration) error {
	if err := e.ctx.Load(decl); err != nil {
		e.logger.Debug("declaration rejected", "name", decl.Name, "err", err)
		return err
	}
	return nil
}

// Construct is the entry point behind both new X(...) and new X<...>(...)
// call forms. The resulting instance carries its reified type before any
// constructor body runs.
func (e *Engine) Construct(typeName string, typeArgs []types.TypeExpr, ctorArgs []types.Value) (*types.Instance, error) {
	return e.ctx.Construct(typeName, typeArgs, ctorArgs)
}

// IsInstance is the runtime form of the host's instanceof.
func (e *Engine) IsInstance(inst *types.Instance, expr types.TypeExpr) (bool, error) {
	return e.ctx.IsInstance(inst, expr)
}

// Invoke runs a generic function or method call and returns the call's
// type-argument binding alongside the result, for a reflection layer to
// expose as the type arguments of the current call.
func (e *Engine) Invoke(decl *types.Declaration, typeArgs []types.TypeExpr, callArgs []types.Value) (types.Value, *types.Binding, error) {
	return e.ctx.Invoke(decl, typeArgs, callArgs)
}

// Instantiate resolves and canonicalizes a parameterization without
// constructing an instance.
func (e *Engine) Instantiate(typeName string, typeArgs []types.TypeExpr) (*types.Reified, error) {
	decl, ok := e.ctx.DeclarationOf(typeName)
	if !ok {
		// route through the full expression path so the resolver gets
		// a chance to supply the declaration
		r, err := e.ctx.InstantiateIn(types.TypeExpr{Base: typeName, Args: typeArgs}, nil)
		return r, err
	}
	return e.ctx.Instantiate(decl, typeArgs)
}
