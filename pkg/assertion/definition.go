// Package assertion evaluates declarative assertions: a verb, a
// target naming the value under test, an expected value and an
// optional negation. Definitions run through the expect DSL, so
// every verb the matcher registry knows is available, including
// verbs added by plugins.
package assertion

// Definition describes a single assertion to evaluate against a
// named value or a path into a JSON document.
type Definition struct {
	// Verb is a canonical verb or alias (e.g., "contain",
	// "be_empty", "be_greater_than").
	Verb string `json:"verb" yaml:"verb"`

	// Target names the value to check. In EvaluateDocument it is
	// a gjson path.
	Target string `json:"target" yaml:"target"`

	// Value is the expected value. Nullary verbs ignore it.
	Value any `json:"value,omitempty" yaml:"value,omitempty"`

	// Not negates the assertion.
	Not bool `json:"not,omitempty" yaml:"not,omitempty"`

	// Message is a human-readable description shown on
	// failure.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Result captures the outcome of evaluating a single assertion.
type Result struct {
	// Verb is the verb that was evaluated, as written in the
	// definition.
	Verb string `json:"verb"`

	// Target is the name of the value checked.
	Target string `json:"target"`

	// Negated is true for "to not" assertions.
	Negated bool `json:"negated,omitempty"`

	// Expected is the value the assertion expected.
	Expected any `json:"expected,omitempty"`

	// Actual is the value that was observed.
	Actual any `json:"actual"`

	// Passed indicates whether the assertion succeeded.
	Passed bool `json:"passed"`

	// TypeMismatch is set when the verb is undefined for the
	// operand types. Passed is false in that case.
	TypeMismatch bool `json:"type_mismatch,omitempty"`

	// Message is a human-readable description of the outcome.
	Message string `json:"message"`
}
