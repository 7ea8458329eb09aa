package expect

import (
	"errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.expectations/pkg/logging"
	"digital.vasic.expectations/pkg/matcher"
	"digital.vasic.expectations/pkg/metrics"
)

type config struct {
	registry *matcher.Registry
	logger   logging.Logger
	metrics  metrics.AssertionMetrics

	// t is set for expectations created through an Asserter.
	t       require.TestingT
	failNow bool
}

func defaultConfig() config {
	return config{
		registry: matcher.Default(),
		logger:   logging.NullLogger{},
		metrics:  metrics.NoopMetrics{},
	}
}

type tHelper interface {
	Helper()
}

// fail reports err to the bound test, if any, and returns it.
func (c *config) fail(err error) error {
	if c.t == nil {
		return err
	}
	if h, ok := c.t.(tHelper); ok {
		h.Helper()
	}
	if c.failNow {
		require.Fail(c.t, err.Error())
	} else {
		assert.Fail(c.t, err.Error())
	}
	return err
}

// observe logs and records one evaluated assertion.
func (c *config) observe(b *Bound, expected any, err error) {
	fields := []logging.Field{
		logging.StringField("verb", b.verb),
		logging.StringField("operation", b.m.Operation()),
		logging.StringField("qualifier", b.qualifier.String()),
		logging.StringField("actual", matcher.Format(b.actual)),
	}
	if !b.nullary {
		fields = append(fields,
			logging.StringField("expected", matcher.Format(expected)),
		)
	}

	switch {
	case err == nil:
		c.metrics.RecordAssertion(b.entry.Verb, b.qualifier.String(), true)
		c.logger.Debug("assertion passed", fields...)
	case errors.Is(err, matcher.ErrTypeMismatch):
		c.metrics.RecordTypeMismatch(b.entry.Verb)
		c.logger.Error("assertion not applicable",
			append(fields, logging.ErrorField(err))...)
	default:
		c.metrics.RecordAssertion(b.entry.Verb, b.qualifier.String(), false)
		c.logger.Warn("assertion failed",
			append(fields, logging.ErrorField(err))...)
	}
}
