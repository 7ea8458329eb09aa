package expect

import (
	"errors"
	"fmt"

	"digital.vasic.expectations/pkg/matcher"
)

var (
	// ErrArity is returned when a verb receives the wrong number
	// of expected values.
	ErrArity = errors.New("wrong number of expected values")

	// ErrConsumed is returned when a Bound matcher is invoked a
	// second time.
	ErrConsumed = errors.New("matcher already invoked")
)

// Bound is a matcher bound to an actual value and a qualifier. It
// is built fresh by every verb access and may be invoked once.
type Bound struct {
	verb      string
	entry     matcher.Entry
	m         matcher.Matcher
	nullary   bool
	actual    any
	qualifier matcher.Qualifier
	cfg       *config
	used      bool
}

// Verb returns the verb or alias the matcher was accessed through.
func (b *Bound) Verb() string { return b.verb }

// Canonical returns the canonical verb behind Verb.
func (b *Bound) Canonical() string { return b.entry.Verb }

// Matcher returns the underlying matcher.
func (b *Bound) Matcher() matcher.Matcher { return b.m }

// Qualifier returns the qualifier captured when the matcher was
// accessed.
func (b *Bound) Qualifier() matcher.Qualifier { return b.qualifier }

// Nullary reports whether the matcher takes no expected value.
func (b *Bound) Nullary() bool { return b.nullary }

// Describe renders the matcher's message for expected without
// invoking it.
func (b *Bound) Describe(expected any) string {
	return matcher.Render(b.entry.Template, b.actual, expected, b.qualifier)
}

// Invoke asserts the matcher against expected.
func (b *Bound) Invoke(expected any) error {
	if b.nullary {
		return b.cfg.fail(fmt.Errorf(
			"%w: %s takes no expected value", ErrArity, b.verb,
		))
	}
	return b.invoke(expected)
}

// Check asserts a nullary matcher.
func (b *Bound) Check() error {
	if !b.nullary {
		return b.cfg.fail(fmt.Errorf(
			"%w: %s requires an expected value", ErrArity, b.verb,
		))
	}
	return b.invoke(nil)
}

// invoke runs the predicate, applies the qualifier and reports a
// failure. It runs at most once per Bound; the qualifier goes out
// of scope with it.
func (b *Bound) invoke(expected any) error {
	if b.used {
		return b.cfg.fail(fmt.Errorf("%w: %s", ErrConsumed, b.verb))
	}
	b.used = true

	result, err := b.m.Match(b.actual, expected)
	if err != nil {
		b.cfg.observe(b, expected, err)
		return b.cfg.fail(err)
	}

	if b.qualifier.Apply(result) {
		b.cfg.observe(b, expected, nil)
		return nil
	}

	failure := &matcher.AssertionError{
		Verb:      b.verb,
		Operation: b.m.Operation(),
		Actual:    b.actual,
		Expected:  expected,
		Qualifier: b.qualifier,
		Message: matcher.Render(
			b.entry.Template, b.actual, expected, b.qualifier,
		),
	}
	b.cfg.observe(b, expected, failure)
	return b.cfg.fail(failure)
}
