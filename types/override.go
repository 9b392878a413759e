package types

import (
	"fmt"
	"strconv"

	set "github.com/hashicorp/go-set/v3"

	"github.com/cottand/reify/generr"
)

// checkOverrides validates, for every method of decl, that its
// type-parameter list structurally matches the nearest method of the
// same name up the supertype graph. This runs once at load; it is never
// repeated per call.
func (ctx *TypeCtx) checkOverrides(decl *Declaration) error {
	for _, m := range decl.Methods {
		super, superIn := ctx.findSuperMethod(decl, m.Name)
		if super == nil {
			continue
		}
		if reason := overrideMismatch(m, super); reason != "" {
			return generr.New(generr.NewOverrideSignature{
				TypeName:  decl.Name,
				Method:    m.Name,
				SuperType: superIn,
				Reason:    reason,
			})
		}
	}
	return nil
}

// findSuperMethod walks the supertype graph breadth-first for the
// nearest declaration carrying a method of the given name.
func (ctx *TypeCtx) findSuperMethod(decl *Declaration, method string) (*Declaration, string) {
	visited := set.New[typeName](4)
	queue := make([]typeName, 0, 4)
	for expr := range decl.superExprs() {
		queue = append(queue, expr.Base)
	}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if !visited.Insert(name) {
			continue
		}
		superDecl, ok := ctx.lookup(name)
		if !ok {
			continue
		}
		if m := superDecl.methodNamed(method); m != nil {
			return m, name
		}
		for expr := range superDecl.superExprs() {
			queue = append(queue, expr.Base)
		}
	}
	return nil, ""
}

// overrideMismatch returns a human-readable reason when the overriding
// method's type parameters do not match the overridden ones: same count,
// and per position a structurally equal bound. The parameter names
// themselves may differ, so bounds are compared modulo positional
// renaming.
func overrideMismatch(m, super *Declaration) string {
	if len(m.Params) != len(super.Params) {
		return fmt.Sprintf("declares %d type parameter(s) where the overridden method declares %d", len(m.Params), len(super.Params))
	}
	for i := range m.Params {
		a := normalizeBound(m.Params[i].Bound, m.Params)
		b := normalizeBound(super.Params[i].Bound, super.Params)
		switch {
		case (a == nil) != (b == nil):
			return fmt.Sprintf("type parameter '%s' disagrees with the overridden method on having a bound", m.Params[i].Name)
		case a != nil && !a.Equal(*b):
			return fmt.Sprintf("bound '%s' of type parameter '%s' is not structurally equal to the overridden bound '%s'",
				m.Params[i].Bound.String(), m.Params[i].Name, super.Params[i].Bound.String())
		}
	}
	return ""
}

// normalizeBound rewrites references to the method's own type parameters
// into positional placeholders, so that greet<T is Box<T>> and
// greet<U is Box<U>> compare equal position by position.
func normalizeBound(bound *TypeExpr, params []TypeParam) *TypeExpr {
	if bound == nil {
		return nil
	}
	index := make(map[typeName]int, len(params))
	for i, p := range params {
		index[p.Name] = i
	}
	var rewrite func(TypeExpr) TypeExpr
	rewrite = func(e TypeExpr) TypeExpr {
		base := e.Base
		if i, ok := index[base]; ok {
			base = "#" + strconv.Itoa(i)
		}
		args := make([]TypeExpr, len(e.Args))
		for i, arg := range e.Args {
			args[i] = rewrite(arg)
		}
		if len(args) == 0 {
			args = nil
		}
		return TypeExpr{Base: base, Args: args}
	}
	normalized := rewrite(*bound)
	return &normalized
}
