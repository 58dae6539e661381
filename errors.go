package symbolicmath

import (
	"errors"
	"fmt"
)

var (
	// ErrUndefinedVariable is matched by errors returned from Substitute
	// when a variable has no binding.
	ErrUndefinedVariable = errors.New("undefined variable")
	// ErrUnsupportedOperator is the panic cause for an operator or node
	// kind that has no handler.
	ErrUnsupportedOperator = errors.New("unsupported operator")
	// ErrInvariantViolation is the panic cause for internal states the
	// call sites rule out.
	ErrInvariantViolation = errors.New("invariant violation")
)

// UndefinedVariableError reports the name of a variable missing from the
// bindings passed to Substitute.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("symbolicmath: %v %q", ErrUndefinedVariable, e.Name)
}

func (e *UndefinedVariableError) Unwrap() error { return ErrUndefinedVariable }

func invariant(format string, args ...interface{}) {
	panic(fmt.Sprintf("symbolicmath: %v: %s", ErrInvariantViolation, fmt.Sprintf(format, args...)))
}
