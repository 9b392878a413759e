package types

import (
	"strings"

	"github.com/cottand/reify/generr"
)

// TypeExpr is a syntactic type reference: a base name plus optional
// nested arguments. An empty argument list denotes a bare use: for a
// generic declaration that is the erased, unparameterized form, which is
// distinct from a zero-parameter declaration.
type TypeExpr struct {
	Base typeName
	Args []TypeExpr
}

func (e TypeExpr) Bare() bool {
	return len(e.Args) == 0
}

func (e TypeExpr) String() string {
	if e.Bare() {
		return e.Base
	}
	sb := strings.Builder{}
	sb.WriteString(e.Base)
	sb.WriteByte('<')
	for i, arg := range e.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.String())
	}
	sb.WriteByte('>')
	return sb.String()
}

// Equal is structural equality, used by the override checker where
// compatible-by-subtyping is not enough.
func (e TypeExpr) Equal(other TypeExpr) bool {
	if e.Base != other.Base || len(e.Args) != len(other.Args) {
		return false
	}
	for i := range e.Args {
		if !e.Args[i].Equal(other.Args[i]) {
			return false
		}
	}
	return true
}

// referencedNames walks the expression tree yielding every base name.
func (e TypeExpr) referencedNames(visit func(typeName)) {
	visit(e.Base)
	for _, arg := range e.Args {
		arg.referencedNames(visit)
	}
}

// Resolver resolves type names the TypeCtx has not seen yet, such as via
// the host's autoloader. It may return nil, nil when the name is simply
// unknown. A successfully resolved declaration is committed to the
// context through the same validation as an explicit Load. ResolveType
// is called with the context's load lock held and must not call Load
// itself.
type Resolver interface {
	ResolveType(name string) (*Declaration, error)
}

// resolveName looks a base name up in the loaded declarations, falling
// back to the external resolver. The fast path reads the current
// snapshot without locking; a miss with a resolver present takes the
// load lock, so an autoload triggered from a call-time entry point
// commits like any other load.
func (ctx *TypeCtx) resolveName(name typeName) (*Declaration, generr.TypeError) {
	if decl, ok := ctx.lookup(name); ok {
		return decl, nil
	}
	if ctx.resolver == nil {
		return nil, generr.New(generr.NewUnresolvedType{Name: name})
	}
	ctx.loadMu.Lock()
	defer ctx.loadMu.Unlock()
	return ctx.resolveNameLocked(name)
}

// resolveNameLocked is resolveName for callers already holding loadMu,
// such as shape validation during a load. It re-checks the table first:
// a concurrent caller may have won the autoload.
func (ctx *TypeCtx) resolveNameLocked(name typeName) (*Declaration, generr.TypeError) {
	if decl, ok := ctx.lookup(name); ok {
		return decl, nil
	}
	if ctx.resolver != nil {
		decl, err := ctx.resolver.ResolveType(name)
		if err == nil && decl != nil {
			if loadErr := ctx.loadLocked(decl); loadErr != nil {
				ctx.logger.Warn("autoloaded declaration failed validation", "section", "load", "name", name, "err", loadErr)
				return nil, generr.New(generr.NewUnresolvedType{Name: name})
			}
			return decl, nil
		}
	}
	return nil, generr.New(generr.NewUnresolvedType{Name: name})
}

// ResolveExpr validates that every base name in expr resolves to a known
// declaration. Arity is deliberately not checked here; that is the
// instantiator's concern.
func (ctx *TypeCtx) ResolveExpr(expr TypeExpr) generr.TypeError {
	if _, err := ctx.resolveName(expr.Base); err != nil {
		return err
	}
	for _, arg := range expr.Args {
		if err := ctx.ResolveExpr(arg); err != nil {
			return err
		}
	}
	return nil
}

// resolveExprIn is ResolveExpr with a set of type parameter names that
// are in scope and so need no declaration. It runs under loadMu as part
// of a load.
func (ctx *TypeCtx) resolveExprIn(expr TypeExpr, scope map[typeName]struct{}) generr.TypeError {
	if _, ok := scope[expr.Base]; !ok {
		if _, err := ctx.resolveNameLocked(expr.Base); err != nil {
			return err
		}
	}
	for _, arg := range expr.Args {
		if err := ctx.resolveExprIn(arg, scope); err != nil {
			return err
		}
	}
	return nil
}
