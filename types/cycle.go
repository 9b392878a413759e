package types

import (
	set "github.com/hashicorp/go-set/v3"

	"github.com/cottand/reify/generr"
)

// checkParamCycles rejects a type parameter whose bound or default
// refers back to itself, directly or through sibling parameters. A
// reference to the enclosing declaration's own name is rejected the same
// way: bound resolution could not be shown to terminate, so the engine
// refuses it rather than relying on a runtime recursion limit.
func (ctx *TypeCtx) checkParamCycles(decl *Declaration) error {
	for _, p := range decl.Params {
		if chain, cyclic := paramCycleFrom(decl, p); cyclic {
			return generr.New(generr.NewCyclicBound{TypeName: decl.Name, Param: p.Name, Chain: chain})
		}
	}
	return nil
}

func paramCycleFrom(decl *Declaration, start TypeParam) ([]string, bool) {
	visited := set.New[typeName](len(decl.Params))
	var walk func(p TypeParam, path []string) ([]string, bool)
	walk = func(p TypeParam, path []string) ([]string, bool) {
		for _, ref := range paramRefs(p) {
			if ref == start.Name || ref == decl.Name {
				return append(path, ref), true
			}
			sibling, isParam := decl.paramNamed(ref)
			if !isParam || !visited.Insert(ref) {
				continue
			}
			if chain, cyclic := walk(sibling, append(path, ref)); cyclic {
				return chain, true
			}
		}
		return nil, false
	}
	return walk(start, []string{start.Name})
}

// paramRefs collects every base name referenced by p's bound and default
// expressions.
func paramRefs(p TypeParam) []typeName {
	var refs []typeName
	collect := func(name typeName) { refs = append(refs, name) }
	if p.Bound != nil {
		p.Bound.referencedNames(collect)
	}
	if p.Default != nil {
		p.Default.referencedNames(collect)
	}
	return refs
}

// checkHierarchyCycles rejects two load-time cycles involving decl:
// supertype chains that reach back to decl, and bound/default chains
// that recurse through other declarations' bounds and defaults back to
// decl.
func (ctx *TypeCtx) checkHierarchyCycles(decl *Declaration) error {
	visited := set.New[typeName](8)
	var walkSupers func(name typeName, path []string) ([]string, bool)
	walkSupers = func(name typeName, path []string) ([]string, bool) {
		if name == decl.Name {
			return append(path, name), true
		}
		if !visited.Insert(name) {
			return nil, false
		}
		superDecl, ok := ctx.lookup(name)
		if !ok {
			return nil, false
		}
		for expr := range superDecl.superExprs() {
			if chain, cyclic := walkSupers(expr.Base, append(path, name)); cyclic {
				return chain, true
			}
		}
		return nil, false
	}
	for expr := range decl.superExprs() {
		if chain, cyclic := walkSupers(expr.Base, []string{decl.Name}); cyclic {
			return generr.New(generr.NewCyclicBound{TypeName: decl.Name, Chain: chain})
		}
	}

	// bounds and defaults that mention another generic declaration pull
	// that declaration's own bounds and defaults into resolution; that
	// chain must not lead back here either
	visitedRefs := set.New[typeName](8)
	var walkRefs func(name typeName, path []string) ([]string, bool)
	walkRefs = func(name typeName, path []string) ([]string, bool) {
		if name == decl.Name {
			return append(path, name), true
		}
		if !visitedRefs.Insert(name) {
			return nil, false
		}
		refDecl, ok := ctx.lookup(name)
		if !ok {
			return nil, false
		}
		for expr := range refDecl.paramExprs() {
			found := false
			var chain []string
			expr.referencedNames(func(ref typeName) {
				if found {
					return
				}
				if _, isParam := refDecl.paramNamed(ref); isParam {
					return
				}
				if c, cyclic := walkRefs(ref, append(path, name)); cyclic {
					chain, found = c, true
				}
			})
			if found {
				return chain, true
			}
		}
		return nil, false
	}
	for expr := range decl.paramExprs() {
		var chain []string
		found := false
		expr.referencedNames(func(ref typeName) {
			if found {
				return
			}
			if _, isParam := decl.paramNamed(ref); isParam {
				return
			}
			if c, cyclic := walkRefs(ref, []string{decl.Name}); cyclic {
				chain, found = c, true
			}
		})
		if found {
			return generr.New(generr.NewCyclicBound{TypeName: decl.Name, Chain: chain})
		}
	}
	return nil
}
