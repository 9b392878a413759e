package generr

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// enableDebugErrorPrinting makes errors include their stacktrace when printed
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None           ErrCode = iota
	UnresolvedType ErrCode = iota
	DuplicateDeclaration
	ArityMismatch
	MissingTypeArgument
	BoundViolation
	InvalidBoundTarget
	UninferableParameter
	NullInference
	OverrideSignature
	CyclicBound
)

// TypeError is the single catchable failure kind the engine surfaces to the
// host. Every member of the taxonomy implements it; Code distinguishes them
// machine-readably.
type TypeError interface {
	Error() string
	Code() ErrCode

	withStack([]byte) TypeError
	getStack() []byte
}

func FormatWithCode(e TypeError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

func New[E TypeError](err E) TypeError {
	return err.withStack(debug.Stack())
}

// CodeOf returns the taxonomy code of err, or None when err is not a
// TypeError (or is nil).
func CodeOf(err error) ErrCode {
	if typeErr, ok := err.(TypeError); ok {
		return typeErr.Code()
	}
	return None
}
