package generr

import (
	"fmt"
	"strings"
)

type NewUnresolvedType struct {
	Name  string
	stack []byte
}

func (e NewUnresolvedType) Error() string {
	return fmt.Sprintf("type '%s' does not resolve to any known declaration", e.Name)
}
func (e NewUnresolvedType) Code() ErrCode    { return UnresolvedType }
func (e NewUnresolvedType) getStack() []byte { return e.stack }
func (e NewUnresolvedType) withStack(stack []byte) TypeError {
	e.stack = stack
	return e
}

type NewDuplicateDeclaration struct {
	Name string
	// Param is set when the collision is between two type parameters of the
	// same declaration rather than two declarations.
	Param string
	stack []byte
}

func (e NewDuplicateDeclaration) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("type parameter '%s' declared more than once in '%s'", e.Param, e.Name)
	}
	return fmt.Sprintf("declaration '%s' collides with an existing declaration of the same name", e.Name)
}
func (e NewDuplicateDeclaration) Code() ErrCode    { return DuplicateDeclaration }
func (e NewDuplicateDeclaration) getStack() []byte { return e.stack }
func (e NewDuplicateDeclaration) withStack(stack []byte) TypeError {
	e.stack = stack
	return e
}

type NewArityMismatch struct {
	TypeName string
	Want     int
	Got      int
	stack    []byte
}

func (e NewArityMismatch) Error() string {
	return fmt.Sprintf("'%s' declares %d type parameter(s) but %d argument(s) were supplied", e.TypeName, e.Want, e.Got)
}
func (e NewArityMismatch) Code() ErrCode    { return ArityMismatch }
func (e NewArityMismatch) getStack() []byte { return e.stack }
func (e NewArityMismatch) withStack(stack []byte) TypeError {
	e.stack = stack
	return e
}

type NewMissingTypeArgument struct {
	TypeName string
	Param    string
	stack    []byte
}

func (e NewMissingTypeArgument) Error() string {
	return fmt.Sprintf("no type argument, and no default, for parameter '%s' of '%s'", e.Param, e.TypeName)
}
func (e NewMissingTypeArgument) Code() ErrCode    { return MissingTypeArgument }
func (e NewMissingTypeArgument) getStack() []byte { return e.stack }
func (e NewMissingTypeArgument) withStack(stack []byte) TypeError {
	e.stack = stack
	return e
}

type NewBoundViolation struct {
	Param    string
	Argument string
	Bound    string
	stack    []byte
}

func (e NewBoundViolation) Error() string {
	return fmt.Sprintf("type argument '%s' for parameter '%s' is not a subtype of its bound '%s'", e.Argument, e.Param, e.Bound)
}
func (e NewBoundViolation) Code() ErrCode    { return BoundViolation }
func (e NewBoundViolation) getStack() []byte { return e.stack }
func (e NewBoundViolation) withStack(stack []byte) TypeError {
	e.stack = stack
	return e
}

type NewInvalidBoundTarget struct {
	Name string
	// Use describes the position the trait appeared in: "bound", "argument",
	// "target" or "supertype".
	Use   string
	stack []byte
}

func (e NewInvalidBoundTarget) Error() string {
	return fmt.Sprintf("trait '%s' is not a valid %s: traits have no identity in the subtype lattice", e.Name, e.Use)
}
func (e NewInvalidBoundTarget) Code() ErrCode    { return InvalidBoundTarget }
func (e NewInvalidBoundTarget) getStack() []byte { return e.stack }
func (e NewInvalidBoundTarget) withStack(stack []byte) TypeError {
	e.stack = stack
	return e
}

type NewUninferableParameter struct {
	TypeName string
	Param    string
	stack    []byte
}

func (e NewUninferableParameter) Error() string {
	return fmt.Sprintf("cannot infer type argument for parameter '%s' of '%s': no formal is typed as bare '%s' and it has no default", e.Param, e.TypeName, e.Param)
}
func (e NewUninferableParameter) Code() ErrCode    { return UninferableParameter }
func (e NewUninferableParameter) getStack() []byte { return e.stack }
func (e NewUninferableParameter) withStack(stack []byte) TypeError {
	e.stack = stack
	return e
}

type NewNullInference struct {
	TypeName string
	Param    string
	Position int
	stack    []byte
}

func (e NewNullInference) Error() string {
	return fmt.Sprintf("cannot infer type argument for parameter '%s' of '%s' from null argument at position %d", e.Param, e.TypeName, e.Position)
}
func (e NewNullInference) Code() ErrCode    { return NullInference }
func (e NewNullInference) getStack() []byte { return e.stack }
func (e NewNullInference) withStack(stack []byte) TypeError {
	e.stack = stack
	return e
}

type NewOverrideSignature struct {
	TypeName  string
	Method    string
	SuperType string
	Reason    string
	stack     []byte
}

func (e NewOverrideSignature) Error() string {
	return fmt.Sprintf("method '%s::%s' does not match the type parameters of the method it overrides in '%s': %s", e.TypeName, e.Method, e.SuperType, e.Reason)
}
func (e NewOverrideSignature) Code() ErrCode    { return OverrideSignature }
func (e NewOverrideSignature) getStack() []byte { return e.stack }
func (e NewOverrideSignature) withStack(stack []byte) TypeError {
	e.stack = stack
	return e
}

type NewCyclicBound struct {
	TypeName string
	// Param is empty for supertype-chain cycles.
	Param string
	Chain []string
	stack []byte
}

func (e NewCyclicBound) Error() string {
	chain := strings.Join(e.Chain, " -> ")
	if e.Param == "" {
		return fmt.Sprintf("cyclic supertype chain for '%s': %s", e.TypeName, chain)
	}
	return fmt.Sprintf("bound of type parameter '%s' of '%s' refers back to itself: %s", e.Param, e.TypeName, chain)
}
func (e NewCyclicBound) Code() ErrCode    { return CyclicBound }
func (e NewCyclicBound) getStack() []byte { return e.stack }
func (e NewCyclicBound) withStack(stack []byte) TypeError {
	e.stack = stack
	return e
}
