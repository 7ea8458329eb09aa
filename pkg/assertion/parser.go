package assertion

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// negationPrefix marks a negated compact assertion.
const negationPrefix = "not:"

// ParseAssertionString parses a compact assertion string of the
// form "[not:]verb[:value]" into its components. The value is
// decoded as a YAML scalar or flow collection, so "3" becomes an
// int and "[1, 2]" a []any; anything that does not decode stays a
// string. A trailing colon yields the empty string.
//
// Examples:
//
//	"contain:func"          -> ("contain", "func", false)
//	"not:be_empty"          -> ("be_empty", nil, true)
//	"be_greater_than:100"   -> ("be_greater_than", 100, false)
//	"not:equal:a:b"         -> ("equal", "a:b", true)
func ParseAssertionString(
	s string,
) (verb string, value any, negated bool) {
	if strings.HasPrefix(s, negationPrefix) {
		negated = true
		s = strings.TrimPrefix(s, negationPrefix)
	}

	parts := strings.SplitN(s, ":", 2)
	verb = parts[0]

	if len(parts) > 1 {
		value = parseValue(parts[1])
	}

	return
}

func parseValue(raw string) any {
	if raw == "" {
		return ""
	}
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	if _, isMap := v.(map[string]any); isMap {
		// "a: b" style values read as text.
		return raw
	}
	return v
}

// ParseDefinition builds a Definition for target from a compact
// assertion string.
func ParseDefinition(target, s string) Definition {
	verb, value, negated := ParseAssertionString(s)
	return Definition{
		Verb:   verb,
		Target: target,
		Value:  value,
		Not:    negated,
	}
}
