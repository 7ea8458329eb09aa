// Package expect provides the fluent expectation DSL:
//
//	err := expect.That([]int{1, 2, 3}).To().Contain(2)
//	err = expect.That("").ToNot().BeEmpty()
//
// Every verb returns nil when the qualified assertion holds, a
// *matcher.AssertionError when it does not, and a *matcher.TypeError
// when the verb is undefined for the operand types. An Expectation
// bound to a test through New additionally reports failures to it.
//
// An Expectation is not safe for concurrent use.
package expect

import (
	"reflect"

	"digital.vasic.expectations/pkg/logging"
	"digital.vasic.expectations/pkg/matcher"
	"digital.vasic.expectations/pkg/metrics"
)

// Option configures an Expectation.
type Option func(*config)

// WithRegistry resolves verbs through r instead of the default
// registry. Verbs added by plugins are reachable this way.
func WithRegistry(r *matcher.Registry) Option {
	return func(c *config) {
		c.registry = r
	}
}

// WithLogger logs every evaluated assertion: passes at debug level,
// failures at warn level.
func WithLogger(l logging.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithMetrics records every evaluated assertion.
func WithMetrics(m metrics.AssertionMetrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// Expectation wraps the value under test. It never changes after
// construction: To and ToNot return a fresh Qualified view, so a
// qualifier chosen for one assertion cannot carry over to the next
// one made on the same Expectation.
type Expectation struct {
	actual any
	cfg    config
}

// That wraps actual in an Expectation.
func That(actual any, opts ...Option) *Expectation {
	e := &Expectation{
		actual: actual,
		cfg:    defaultConfig(),
	}
	for _, opt := range opts {
		opt(&e.cfg)
	}
	return e
}

// Of is an alias for That.
func Of(actual any, opts ...Option) *Expectation {
	return That(actual, opts...)
}

// Actual returns the wrapped value.
func (e *Expectation) Actual() any {
	return e.actual
}

// To returns an affirmative view of the expectation.
func (e *Expectation) To() Qualified {
	return Qualified{exp: e, qualifier: matcher.Affirmative}
}

// ToNot returns a negated view of the expectation.
func (e *Expectation) ToNot() Qualified {
	return Qualified{exp: e, qualifier: matcher.Negated}
}

// TypeOf returns the reflect.Type of T, for use as the operand of
// BeOfType and Inherit.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
