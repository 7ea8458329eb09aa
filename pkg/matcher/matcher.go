// Package matcher provides the predicate units behind every
// expectation verb, their failure message templates and the
// verb registry that maps canonical verbs and aliases to matcher
// factories.
package matcher

// Qualifier selects whether a matcher result is taken as-is or
// negated before it is asserted.
type Qualifier int

const (
	// Affirmative asserts the raw predicate result.
	Affirmative Qualifier = iota
	// Negated asserts the complement of the predicate result.
	Negated
)

// String returns the verb phrase used in failure messages.
func (q Qualifier) String() string {
	if q == Negated {
		return "to not"
	}
	return "to"
}

// Apply adjusts a raw predicate result for the qualifier.
func (q Qualifier) Apply(result bool) bool {
	return result != (q == Negated)
}

// Matcher evaluates one assertion verb against a bound actual
// value. Match returns a non-nil error only when the operation is
// undefined for the operand types, and that error is always a
// *TypeError.
type Matcher interface {
	// Operation is the stable name used to select the message
	// template.
	Operation() string

	// Match runs the predicate. expected is nil for nullary
	// matchers.
	Match(actual, expected any) (bool, error)
}

// Nullary is implemented by matchers that take no expected value,
// such as be_empty or be_numeric.
type Nullary interface {
	Matcher
	NoExpected()
}

// Factory builds a fresh Matcher. Construction parameters such as
// strictness or inclusive comparison are closed over by the
// factory.
type Factory func() Matcher

// IsNullary reports whether m takes no expected value.
func IsNullary(m Matcher) bool {
	_, ok := m.(Nullary)
	return ok
}
