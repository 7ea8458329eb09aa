package expect

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.expectations/pkg/logging"
	"digital.vasic.expectations/pkg/matcher"
	"digital.vasic.expectations/pkg/metrics"
)

type myInt int

type stringerA struct{}

func (stringerA) String() string { return "3" }

type stringerB struct{ id int }

func (stringerB) String() string { return "3" }

func TestScenarios(t *testing.T) {
	list := []int{1, 2, 3}

	assert.NoError(t, That(list).To().Contain(2))

	err := That(list).ToNot().Contain(2)
	require.Error(t, err)
	assert.ErrorIs(t, err, matcher.ErrAssertion)
	assert.Contains(t, err.Error(), "2")
	assert.Contains(t, err.Error(), "[1 2 3]")
	assert.Equal(t, "Expected [1 2 3] to not contain 2", err.Error())

	assert.NoError(t, That("").To().BeEmpty())
	assert.ErrorIs(t, That("x").To().BeEmpty(), matcher.ErrAssertion)

	assert.NoError(t, That(3).To().BeGreaterThan(2))
	assert.NoError(t, That(2).To().BeGreaterThanOrEqualTo(2))
	assert.ErrorIs(t, That(2).To().BeGreaterThan(2), matcher.ErrAssertion)

	assert.NoError(t, That(TypeOf[bool]()).To().Inherit(TypeOf[any]()))
	assert.ErrorIs(t, That(5).To().Inherit(TypeOf[any]()), matcher.ErrTypeMismatch)

	assert.NoError(t, That(5).To().BeOfType(TypeOf[int]()))
	assert.ErrorIs(t, That(5).To().BeOfType(TypeOf[bool]()), matcher.ErrAssertion)
	assert.ErrorIs(t, That(myInt(5)).To().BeOfType(TypeOf[int]()), matcher.ErrAssertion)
}

func TestNegationIsComplement(t *testing.T) {
	tests := []struct {
		name     string
		actual   any
		verb     string
		expected []any
	}{
		{"equal holds", 3, "equal", []any{3}},
		{"equal fails", 3, "equal", []any{4}},
		{"be soft", stringerA{}, "be", []any{stringerB{id: 1}}},
		{"contain holds", []string{"a"}, "contain", []any{"a"}},
		{"contain fails", []string{"a"}, "contain", []any{"b"}},
		{"contained in", "b", "be_contained_in", []any{"abc"}},
		{"empty", []int{}, "be_empty", nil},
		{"not empty", []int{1}, "be_empty", nil},
		{"true", true, "be_true", nil},
		{"truthy", 1, "be_truthy", nil},
		{"false", false, "be_false", nil},
		{"falsey", "", "be_falsey", nil},
		{"numeric", 1.5, "be_numeric", nil},
		{"bool not numeric", true, "be_numeric", nil},
		{"of type", "s", "be_of_type", []any{TypeOf[string]()}},
		{"inherit", TypeOf[*matcher.TypeError](), "inherit", []any{TypeOf[error]()}},
		{"greater", 1, "be_greater_than", []any{2}},
		{"greater or equal", 2, "be_greater_than_or_equal_to", []any{2}},
		{"lesser", 1, "be_lesser_than", []any{2}},
		{"lesser or equal", 3, "be_lesser_than_or_equal_to", []any{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := matcher.Default().Lookup(tt.verb)
			require.NoError(t, err)

			var expected any
			if len(tt.expected) == 1 {
				expected = tt.expected[0]
			}
			raw, err := entry.Factory().Match(tt.actual, expected)
			require.NoError(t, err)

			affirmative := That(tt.actual).To().Verb(tt.verb, tt.expected...)
			negated := That(tt.actual).ToNot().Verb(tt.verb, tt.expected...)

			assert.Equal(t, raw, affirmative == nil)
			assert.Equal(t, !raw, negated == nil)
		})
	}
}

func TestQualifierDoesNotLeak(t *testing.T) {
	e := That(5)

	require.NoError(t, e.ToNot().Be(6))
	assert.NoError(t, e.To().Be(5))
	assert.ErrorIs(t, e.To().Be(6), matcher.ErrAssertion)

	require.ErrorIs(t, e.ToNot().Be(5), matcher.ErrAssertion)
	assert.NoError(t, e.To().Be(5))

	// A negated view that is never used does not affect later chains.
	unused := e.ToNot()
	assert.NoError(t, e.To().Be(5))
	assert.Equal(t, matcher.Negated, unused.Qualifier())
}

func TestQualifierIsCapturedAtAccess(t *testing.T) {
	e := That([]int{1})

	negated, err := e.ToNot().Matcher("contain")
	require.NoError(t, err)

	require.NoError(t, e.To().Contain(1))

	assert.Equal(t, matcher.Negated, negated.Qualifier())
	assert.ErrorIs(t, negated.Invoke(1), matcher.ErrAssertion)
}

func TestSoftEquality(t *testing.T) {
	assert.NoError(t, That(stringerA{}).To().Equal(stringerB{id: 9}))
	assert.NoError(t, That(stringerA{}).To().Be("3"))
	assert.NoError(t, That(&struct{ N int }{1}).To().Be(&struct{ N int }{1}))
	assert.Error(t, That(stringerA{}).ToNot().Equal(stringerB{}))
}

func TestStrictness(t *testing.T) {
	assert.ErrorIs(t, That(1).To().BeTrue(), matcher.ErrAssertion)
	assert.NoError(t, That(1).To().BeTruthy())
	assert.ErrorIs(t, That(0).To().BeFalse(), matcher.ErrAssertion)
	assert.NoError(t, That(0).To().BeFalsey())
	assert.NoError(t, That(true).To().BeTrue())
	assert.NoError(t, That(false).To().BeFalse())
}

func TestTypeMismatchIsDistinct(t *testing.T) {
	tests := []struct {
		name string
		err  func() error
	}{
		{"contain on int", func() error { return That(5).To().Contain(1) }},
		{"negated contain on int", func() error { return That(5).ToNot().Contain(1) }},
		{"contained in int", func() error { return That(1).To().BeContainedIn(5) }},
		{"empty on int", func() error { return That(42).To().BeEmpty() }},
		{"inherit on value", func() error { return That(5).To().Inherit(TypeOf[any]()) }},
		{"of type with value", func() error { return That(5).To().BeOfType(5) }},
		{"order string and int", func() error { return That("3").To().BeGreaterThan(2) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.err()
			require.Error(t, err)
			assert.True(t, errors.Is(err, matcher.ErrTypeMismatch))
			assert.False(t, errors.Is(err, matcher.ErrAssertion))
		})
	}
}

func TestContainTypeErrorMessage(t *testing.T) {
	err := That(5).To().Contain(1)

	var typeErr *matcher.TypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "int", typeErr.Type)
	assert.Equal(t, 1, typeErr.Value)
	assert.Contains(t, err.Error(), "type int cannot contain 1")
}

func TestAssertionErrorFields(t *testing.T) {
	err := That([]int{1}).ToNot().Have(1)

	var failure *matcher.AssertionError
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, "contain", failure.Operation)
	assert.Equal(t, matcher.Negated, failure.Qualifier)
	assert.Equal(t, []int{1}, failure.Actual)
	assert.Equal(t, 1, failure.Expected)
}

func TestOf(t *testing.T) {
	assert.Equal(t, 7, Of(7).Actual())
	assert.NoError(t, Of(7).To().Equal(7))
}

func TestWithRegistry(t *testing.T) {
	reg := matcher.NewRegistry()
	require.NoError(t, reg.Register("be_even", func() matcher.Matcher {
		return evenMatcher{}
	}, ""))

	assert.NoError(t, That(4, WithRegistry(reg)).To().Verb("be_even"))

	err := That(3, WithRegistry(reg)).To().Verb("be_even")
	assert.EqualError(t, err, "Expected 3 to be even")

	err = That(4).To().Verb("be_even")
	assert.ErrorIs(t, err, matcher.ErrUnknownVerb)
}

func TestWithLoggerAndMetrics(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewJSONLoggerTo(&buf, logging.LevelDebug, nil)
	m := &countingMetrics{}

	opts := []Option{WithLogger(logger), WithMetrics(m)}

	require.NoError(t, That([]int{1}, opts...).To().Include(1))
	require.Error(t, That([]int{1}, opts...).ToNot().Include(1))
	require.Error(t, That(1, opts...).To().Include(1))

	assert.Equal(t, 1, m.passed["contain"])
	assert.Equal(t, 1, m.failed["contain"])
	assert.Equal(t, 1, m.mismatched["contain"])

	out := buf.String()
	assert.Contains(t, out, `"message":"assertion passed"`)
	assert.Contains(t, out, `"message":"assertion failed"`)
	assert.Contains(t, out, `"message":"assertion not applicable"`)
	assert.Contains(t, out, `"verb":"include"`)
	assert.Contains(t, out, `"qualifier":"to not"`)
}

type countingMetrics struct {
	passed, failed, mismatched map[string]int
}

func (c *countingMetrics) RecordAssertion(verb, _ string, passed bool) {
	if c.passed == nil {
		c.passed, c.failed = map[string]int{}, map[string]int{}
	}
	if passed {
		c.passed[verb]++
	} else {
		c.failed[verb]++
	}
}

func (c *countingMetrics) RecordTypeMismatch(verb string) {
	if c.mismatched == nil {
		c.mismatched = map[string]int{}
	}
	c.mismatched[verb]++
}

var _ metrics.AssertionMetrics = (*countingMetrics)(nil)

type evenMatcher struct{}

func (evenMatcher) Operation() string { return "be_even" }

func (evenMatcher) NoExpected() {}

func (evenMatcher) Match(actual, _ any) (bool, error) {
	n, ok := actual.(int)
	return ok && n%2 == 0, nil
}

func TestContain_UnhashableDynamicKey(t *testing.T) {
	key := struct{ X any }{[]int{1}}

	var err error
	require.NotPanics(t, func() {
		err = That(map[any]bool{1: true}).To().Contain(key)
	})
	assert.ErrorIs(t, err, matcher.ErrTypeMismatch)
	assert.Contains(t, err.Error(), "unhashable key type")
}
