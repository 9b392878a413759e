package types

import (
	"log/slog"
	"maps"
	"sync"
	"sync/atomic"

	"github.com/benbjohnson/immutable"
	"github.com/cottand/reify/generr"
	"github.com/cottand/reify/internal/log"
)

// TypeCtx owns the declaration tables, the supertype closure backing the
// oracle, and the instantiation cache. The tables are published as an
// immutable snapshot: loads build a fresh copy under loadMu and swap it
// in atomically, so call-time readers never lock and never observe a
// partial write, even when a resolver autoload commits mid-flight.
type TypeCtx struct {
	tables   atomic.Pointer[declTables]
	resolver Resolver
	logger   *slog.Logger

	internMu sync.Mutex
	interned map[string]*Reified

	loadMu sync.Mutex
	// loading marks declarations whose load is in progress, so a
	// resolution cycle through the external resolver surfaces as a
	// CyclicBound instead of unbounded recursion. Guarded by loadMu.
	loading map[typeName]bool
}

// declTables is one immutable snapshot of the declaration table and the
// supertype closures. Never mutated after ctx.tables publishes it.
type declTables struct {
	defs   map[typeName]*Declaration
	supers map[typeName]immutable.Set[typeName]
}

// NewTypeCtx returns a context pre-seeded with the primitive universe.
// resolver may be nil; it is consulted for names not yet loaded.
func NewTypeCtx(resolver Resolver) *TypeCtx {
	ctx := &TypeCtx{
		resolver: resolver,
		logger:   log.DefaultLogger,
		interned: make(map[string]*Reified),
		loading:  make(map[typeName]bool),
	}
	seed := &declTables{
		defs:   make(map[typeName]*Declaration),
		supers: make(map[typeName]immutable.Set[typeName]),
	}
	for _, decl := range universe() {
		seed.defs[decl.Name] = decl
		seed.supers[decl.Name] = emptySetTypeName
	}
	ctx.tables.Store(seed)
	return ctx
}

var emptySetTypeName = immutable.NewSet[typeName](immutable.NewHasher(""))

// lookup reads a declaration from the current snapshot.
func (ctx *TypeCtx) lookup(name typeName) (*Declaration, bool) {
	decl, ok := ctx.tables.Load().defs[name]
	return decl, ok
}

// superSet reads a supertype closure from the current snapshot.
func (ctx *TypeCtx) superSet(name typeName) (immutable.Set[typeName], bool) {
	closure, ok := ctx.tables.Load().supers[name]
	return closure, ok
}

// DeclarationOf looks up a loaded declaration by name.
func (ctx *TypeCtx) DeclarationOf(name string) (*Declaration, bool) {
	return ctx.lookup(name)
}

// Load validates decl and commits it to the context. It fails closed: a
// rejected declaration leaves no partial effects. The checks performed
// here are one-time checks, never repeated per call:
//
//   - name and parameter-name collisions
//   - name resolution of every bound, default and supertype expression
//   - cyclic bounds, cyclic defaults, cyclic supertype chains
//   - override compatibility of generic methods
func (ctx *TypeCtx) Load(decl *Declaration) error {
	ctx.loadMu.Lock()
	defer ctx.loadMu.Unlock()
	return ctx.loadLocked(decl)
}

// loadLocked must run under loadMu, or re-entrantly from a resolution
// triggered by a load already holding it.
func (ctx *TypeCtx) loadLocked(decl *Declaration) error {
	logger := ctx.logger.With("section", "load", "decl", decl.Name)

	if _, exists := ctx.lookup(decl.Name); exists {
		return generr.New(generr.NewDuplicateDeclaration{Name: decl.Name})
	}
	if ctx.loading[decl.Name] {
		return generr.New(generr.NewCyclicBound{TypeName: decl.Name, Chain: []string{decl.Name}})
	}
	ctx.loading[decl.Name] = true
	defer delete(ctx.loading, decl.Name)

	// cycle detection needs no name resolution, so it runs first: a bound
	// that refers back to its own declaration is a cycle, not an unknown
	// name
	if err := ctx.checkParamCycles(decl); err != nil {
		return err
	}
	if err := ctx.validateShape(decl); err != nil {
		return err
	}
	if err := ctx.checkHierarchyCycles(decl); err != nil {
		return err
	}
	if err := ctx.checkOverrides(decl); err != nil {
		return err
	}

	// commit by publishing a fresh snapshot; readers keep whichever one
	// they already loaded
	old := ctx.tables.Load()
	next := &declTables{
		defs:   maps.Clone(old.defs),
		supers: maps.Clone(old.supers),
	}
	next.defs[decl.Name] = decl
	next.supers[decl.Name] = ctx.superClosure(decl)
	ctx.tables.Store(next)
	logger.Debug("declaration loaded", "kind", decl.Kind.String(), "params", len(decl.Params))
	return nil
}

// validateShape checks parameter-name uniqueness and resolves every type
// expression the declaration carries, without checking arity.
func (ctx *TypeCtx) validateShape(decl *Declaration) error {
	seen := make(map[typeName]struct{}, len(decl.Params))
	for _, p := range decl.Params {
		if _, dup := seen[p.Name]; dup {
			return generr.New(generr.NewDuplicateDeclaration{Name: decl.Name, Param: p.Name})
		}
		seen[p.Name] = struct{}{}
	}

	scope := paramScope(decl, nil)
	for expr := range decl.paramExprs() {
		if err := ctx.resolveExprIn(expr, scope); err != nil {
			return err
		}
	}
	for expr := range decl.superExprs() {
		if err := ctx.resolveExprIn(expr, scope); err != nil {
			return err
		}
		if superDecl, ok := ctx.lookup(expr.Base); ok && superDecl.Kind == KindTrait {
			return generr.New(generr.NewInvalidBoundTarget{Name: expr.Base, Use: "supertype"})
		}
	}
	for _, f := range decl.Formals {
		if err := ctx.resolveExprIn(f.Type, scope); err != nil {
			return err
		}
	}
	for _, m := range decl.Methods {
		methodScope := paramScope(m, scope)
		for expr := range m.paramExprs() {
			if err := ctx.resolveExprIn(expr, methodScope); err != nil {
				return err
			}
		}
		for _, f := range m.Formals {
			if err := ctx.resolveExprIn(f.Type, methodScope); err != nil {
				return err
			}
		}
		if err := ctx.checkParamCycles(m); err != nil {
			return err
		}
	}
	return nil
}

// paramScope returns the set of type parameter names in scope for decl,
// layered over an enclosing scope.
func paramScope(decl *Declaration, outer map[typeName]struct{}) map[typeName]struct{} {
	scope := make(map[typeName]struct{}, len(decl.Params)+len(outer))
	for name := range outer {
		scope[name] = struct{}{}
	}
	for _, p := range decl.Params {
		scope[p.Name] = struct{}{}
	}
	return scope
}
