package types

import (
	"github.com/cottand/reify/util"
	"iter"
)

type typeName = string

type DeclKind uint8

const (
	_ DeclKind = iota
	KindClass
	KindInterface
	KindTrait
	KindFunction
	KindMethod
	KindPrimitive
)

func (k DeclKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindTrait:
		return "trait"
	case KindFunction:
		return "function"
	case KindMethod:
		return "method"
	case KindPrimitive:
		return "primitive"
	default:
		return "invalid"
	}
}

// TypeParam is a named placeholder declared by a parameterized
// declaration. Bound and Default are nil when absent; an absent bound
// accepts any argument.
type TypeParam struct {
	Name    typeName
	Bound   *TypeExpr
	Default *TypeExpr
}

// Formal is a value parameter of a function, method or constructor. Its
// Type may reference the enclosing declaration's type parameters: a bare
// reference (no arguments) to a type parameter makes the formal an
// inference site for that parameter.
type Formal struct {
	Name string
	Type TypeExpr
}

// BodyFunc is the opaque handle to host semantics. self is nil unless the
// body is a constructor or a method body observing its receiver.
type BodyFunc func(binding *Binding, self *Instance, args []Value) (Value, error)

// Declaration describes a parameterized type or function as authored.
// It is immutable once loaded into a TypeCtx; the engine never writes to
// it after Load returns.
type Declaration struct {
	Name       typeName
	Kind       DeclKind
	Params     []TypeParam
	Extends    *TypeExpr
	Implements []TypeExpr
	Formals    []Formal
	Methods    []*Declaration
	Body       BodyFunc
}

func (d *Declaration) Generic() bool {
	return len(d.Params) > 0
}

func (d *Declaration) paramNamed(name typeName) (TypeParam, bool) {
	for _, p := range d.Params {
		if p.Name == name {
			return p, true
		}
	}
	return TypeParam{}, false
}

func (d *Declaration) methodNamed(name string) *Declaration {
	for _, m := range d.Methods {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// superExprs iterates the declaration's direct supertype expressions,
// extends edge first.
func (d *Declaration) superExprs() iter.Seq[TypeExpr] {
	implements := func(yield func(TypeExpr) bool) {
		for _, expr := range d.Implements {
			if !yield(expr) {
				return
			}
		}
	}
	if d.Extends == nil {
		return implements
	}
	return util.ConcatIter(util.SingleIter(*d.Extends), implements)
}

// paramExprs iterates every bound and default expression of the
// declaration's own parameter list.
func (d *Declaration) paramExprs() iter.Seq[TypeExpr] {
	return func(yield func(TypeExpr) bool) {
		for _, p := range d.Params {
			if p.Bound != nil && !yield(*p.Bound) {
				return
			}
			if p.Default != nil && !yield(*p.Default) {
				return
			}
		}
	}
}
