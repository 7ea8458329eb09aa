package matcher

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrAssertion is matched by every *AssertionError.
	ErrAssertion = errors.New("assertion failed")

	// ErrTypeMismatch is matched by every *TypeError.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrUnknownVerb is returned when a verb is neither a
	// registered canonical verb nor an alias.
	ErrUnknownVerb = errors.New("unknown verb")
)

// AssertionError reports a qualified predicate that did not hold.
type AssertionError struct {
	Verb      string
	Operation string
	Actual    any
	Expected  any
	Qualifier Qualifier
	Message   string
}

func (e *AssertionError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrAssertion) true.
func (e *AssertionError) Is(target error) bool {
	return target == ErrAssertion
}

// TypeError reports an operation that is undefined for the type of
// its operands. It is never folded into a plain pass or fail.
type TypeError struct {
	Operation string
	Type      string
	Value     any
	Reason    string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Operation, e.Reason)
}

// Is makes errors.Is(err, ErrTypeMismatch) true.
func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// NewTypeError builds a TypeError for op. subject is the operand
// whose type the operation rejects.
func NewTypeError(
	op string, subject, value any, format string, args ...any,
) *TypeError {
	return &TypeError{
		Operation: op,
		Type:      typeName(subject),
		Value:     value,
		Reason:    fmt.Sprintf(format, args...),
	}
}

// typeName returns a printable name for the dynamic type of v.
func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
