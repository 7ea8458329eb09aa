package expect

import "github.com/stretchr/testify/require"

// Asserter creates expectations that report failures to a test.
// Failures are still returned as errors.
type Asserter struct {
	t       require.TestingT
	opts    []Option
	failNow bool
}

// New creates an Asserter for t. By default a failure marks the
// test as failed and execution continues.
func New(t require.TestingT, opts ...Option) *Asserter {
	return &Asserter{t: t, opts: opts}
}

// Require returns an Asserter that stops the test on the first
// failure.
func (a *Asserter) Require() *Asserter {
	return &Asserter{t: a.t, opts: a.opts, failNow: true}
}

// That wraps actual in an Expectation bound to the test.
func (a *Asserter) That(actual any) *Expectation {
	e := That(actual, a.opts...)
	e.cfg.t = a.t
	e.cfg.failNow = a.failNow
	return e
}
