// Package bridge exposes registry verbs as Gomega matchers, so the
// same predicates and failure messages serve Gomega-based suites:
//
//	g.Expect(items).To(bridge.Verb("include", "a"))
//	g.Expect("").ToNot(bridge.Verb("be_truthy"))
package bridge

import (
	"fmt"

	"github.com/onsi/gomega/types"

	"digital.vasic.expectations/pkg/matcher"
)

// VerbMatcher adapts a registry verb to types.GomegaMatcher.
// Gomega supplies the qualifier: To uses FailureMessage and ToNot
// uses NegatedFailureMessage.
type VerbMatcher struct {
	verb     string
	expected any
	entry    matcher.Entry
	nullary  bool
	err      error
}

var _ types.GomegaMatcher = (*VerbMatcher)(nil)

// Verb returns a Gomega matcher for a verb from the default
// registry. Nullary verbs take no expected value; all others take
// exactly one.
func Verb(verb string, expected ...any) *VerbMatcher {
	return VerbIn(matcher.Default(), verb, expected...)
}

// VerbIn is Verb for verbs resolved from reg, such as verbs added
// by plugins.
func VerbIn(reg *matcher.Registry, verb string, expected ...any) *VerbMatcher {
	vm := &VerbMatcher{verb: verb}

	entry, err := reg.Lookup(verb)
	if err != nil {
		vm.err = err
		return vm
	}
	vm.entry = entry
	vm.nullary = matcher.IsNullary(entry.Factory())

	switch {
	case vm.nullary && len(expected) > 0:
		vm.err = fmt.Errorf("%s takes no expected value", verb)
	case !vm.nullary && len(expected) != 1:
		vm.err = fmt.Errorf(
			"%s takes one expected value, got %d", verb, len(expected),
		)
	case !vm.nullary:
		vm.expected = expected[0]
	}
	return vm
}

// Match runs the verb's predicate against actual. An operation
// undefined for the operand types is returned as an error, which
// Gomega reports regardless of the qualifier.
func (m *VerbMatcher) Match(actual any) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.entry.Factory().Match(actual, m.expected)
}

// FailureMessage renders the verb's template for To.
func (m *VerbMatcher) FailureMessage(actual any) string {
	return m.render(actual, matcher.Affirmative)
}

// NegatedFailureMessage renders the verb's template for ToNot.
func (m *VerbMatcher) NegatedFailureMessage(actual any) string {
	return m.render(actual, matcher.Negated)
}

func (m *VerbMatcher) render(actual any, q matcher.Qualifier) string {
	if m.err != nil {
		return m.err.Error()
	}
	return matcher.Render(m.entry.Template, actual, m.expected, q)
}
