package expect

import (
	"fmt"

	"digital.vasic.expectations/pkg/matcher"
)

// Qualified is an Expectation paired with the qualifier chosen for
// one assertion.
type Qualified struct {
	exp       *Expectation
	qualifier matcher.Qualifier
}

// Qualifier returns the qualifier of this view.
func (q Qualified) Qualifier() matcher.Qualifier {
	return q.qualifier
}

// Matcher returns a freshly built matcher for verb, bound to the
// actual value and this qualifier, without invoking it. verb may be
// a canonical verb or an alias.
func (q Qualified) Matcher(verb string) (*Bound, error) {
	entry, err := q.exp.cfg.registry.Lookup(verb)
	if err != nil {
		return nil, err
	}

	m := entry.Factory()
	return &Bound{
		verb:      verb,
		entry:     entry,
		m:         m,
		nullary:   matcher.IsNullary(m),
		actual:    q.exp.actual,
		qualifier: q.qualifier,
		cfg:       &q.exp.cfg,
	}, nil
}

// Verb asserts verb by name. Nullary verbs take no expected value;
// all others take exactly one.
func (q Qualified) Verb(verb string, expected ...any) error {
	b, err := q.Matcher(verb)
	if err != nil {
		return q.exp.cfg.fail(err)
	}

	switch {
	case len(expected) > 1:
		return q.exp.cfg.fail(fmt.Errorf(
			"%w: %s got %d", ErrArity, verb, len(expected),
		))
	case len(expected) == 1:
		return b.Invoke(expected[0])
	default:
		return b.Check()
	}
}

func (q Qualified) call(verb string, expected any) error {
	b, err := q.Matcher(verb)
	if err != nil {
		return q.exp.cfg.fail(err)
	}
	return b.Invoke(expected)
}

func (q Qualified) check(verb string) error {
	b, err := q.Matcher(verb)
	if err != nil {
		return q.exp.cfg.fail(err)
	}
	return b.Check()
}
