package matcher

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Operation names of the built-in matchers. Each one keys a
// message template.
const (
	OpEqual                = "equal"
	OpBe                   = "be"
	OpContain              = "contain"
	OpContainedIn          = "be_contained_in"
	OpEmpty                = "be_empty"
	OpTrue                 = "be_true"
	OpTruthy               = "be_truthy"
	OpFalse                = "be_false"
	OpFalsey               = "be_falsey"
	OpOfType               = "be_of_type"
	OpNumeric              = "be_numeric"
	OpInherit              = "inherit"
	OpGreaterThan          = "be_greater_than"
	OpGreaterThanOrEqualTo = "be_greater_than_or_equal_to"
	OpLesserThan           = "be_lesser_than"
	OpLesserThanOrEqualTo  = "be_lesser_than_or_equal_to"
)

var templates = map[string]string{
	OpEqual:                "Expected {actual} {to} equal {expected}",
	OpBe:                   "Expected {actual} {to} be {expected}",
	OpContain:              "Expected {actual} {to} contain {expected}",
	OpContainedIn:          "Expected {actual} {to} be contained in {expected}",
	OpEmpty:                "Expected {actual} {to} be empty",
	OpTrue:                 "Expected {actual} {to} be true",
	OpTruthy:               "Expected {actual} {to} be truthy",
	OpFalse:                "Expected {actual} {to} be false",
	OpFalsey:               "Expected {actual} {to} be falsey",
	OpOfType:               "Expected {actual} {to} be of type {expected}",
	OpNumeric:              "Expected {actual} {to} be numeric",
	OpInherit:              "Expected {actual} {to} inherit {expected}",
	OpGreaterThan:          "Expected {actual} {to} be greater than {expected}",
	OpGreaterThanOrEqualTo: "Expected {actual} {to} be greater than or equal to {expected}",
	OpLesserThan:           "Expected {actual} {to} be lesser than {expected}",
	OpLesserThanOrEqualTo:  "Expected {actual} {to} be lesser than or equal to {expected}",
}

// Template returns the built-in message template for an operation.
func Template(op string) (string, bool) {
	t, ok := templates[op]
	return t, ok
}

// GenericTemplate derives a template from a verb name for matchers
// registered without one, e.g. "start_with" becomes
// "Expected {actual} {to} start with {expected}".
func GenericTemplate(verb string, nullary bool) string {
	phrase := strings.ReplaceAll(verb, "_", " ")
	if nullary {
		return "Expected {actual} {to} " + phrase
	}
	return "Expected {actual} {to} " + phrase + " {expected}"
}

// Render substitutes {actual}, {expected} and {to} in template.
func Render(
	template string, actual, expected any, q Qualifier,
) string {
	r := strings.NewReplacer(
		"{actual}", Format(actual),
		"{expected}", Format(expected),
		"{to}", q.String(),
	)
	return r.Replace(template)
}

// Format prints a value the way it appears in failure messages.
// Strings are quoted so that "" and "x" stay visible.
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return strconv.Quote(x)
	case reflect.Type:
		return x.String()
	}
	return fmt.Sprintf("%v", v)
}
