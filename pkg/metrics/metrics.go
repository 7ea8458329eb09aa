// Package metrics records assertion outcomes.
package metrics

// AssertionMetrics defines the interface for recording assertion
// outcomes.
type AssertionMetrics interface {
	// RecordAssertion records an evaluated assertion. qualifier
	// is "to" or "to not".
	RecordAssertion(verb, qualifier string, passed bool)
	// RecordTypeMismatch records an assertion that could not be
	// evaluated for the operand types.
	RecordTypeMismatch(verb string)
}

// NoopMetrics is a no-op implementation of AssertionMetrics used
// when metrics collection is disabled.
type NoopMetrics struct{}

func (NoopMetrics) RecordAssertion(_, _ string, _ bool) {}
func (NoopMetrics) RecordTypeMismatch(_ string)         {}
