package assertion

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"digital.vasic.expectations/pkg/expect"
	"digital.vasic.expectations/pkg/logging"
	"digital.vasic.expectations/pkg/matcher"
	"digital.vasic.expectations/pkg/metrics"
)

// Engine defines the interface for assertion evaluation engines.
type Engine interface {
	// Evaluate checks a single assertion against the given
	// value.
	Evaluate(def Definition, value any) Result

	// EvaluateAll checks multiple assertions against a map of
	// named values. Each definition's Target is used as the key
	// into the values map.
	EvaluateAll(defs []Definition, values map[string]any) []Result

	// EvaluateDocument checks multiple assertions against a JSON
	// document. Each definition's Target is a gjson path; an
	// empty target selects the whole document.
	EvaluateDocument(defs []Definition, doc []byte) []Result

	// Register adds a verb. Returns an error if the verb is
	// already registered.
	Register(verb string, factory matcher.Factory, template string) error
}

// Option configures a DefaultEngine.
type Option func(*DefaultEngine)

// WithRegistry evaluates verbs from r. Plugins registering into r
// extend the engine.
func WithRegistry(r *matcher.Registry) Option {
	return func(e *DefaultEngine) {
		e.registry = r
	}
}

// WithLogger logs every evaluated assertion.
func WithLogger(l logging.Logger) Option {
	return func(e *DefaultEngine) {
		e.logger = l
	}
}

// WithMetrics records every evaluated assertion.
func WithMetrics(m metrics.AssertionMetrics) Option {
	return func(e *DefaultEngine) {
		e.metrics = m
	}
}

// DefaultEngine is the standard Engine implementation. It is
// safe for concurrent use.
type DefaultEngine struct {
	registry *matcher.Registry
	logger   logging.Logger
	metrics  metrics.AssertionMetrics
}

// NewEngine creates a DefaultEngine with its own registry holding
// the built-in verbs, so Register does not affect other engines.
func NewEngine(opts ...Option) *DefaultEngine {
	e := &DefaultEngine{
		registry: matcher.NewRegistry(),
		logger:   logging.NullLogger{},
		metrics:  metrics.NoopMetrics{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the registry the engine resolves verbs from.
func (e *DefaultEngine) Registry() *matcher.Registry {
	return e.registry
}

// Register adds a verb to the engine's registry. An empty template
// is derived from the verb name.
func (e *DefaultEngine) Register(
	verb string,
	factory matcher.Factory,
	template string,
) error {
	return e.registry.Register(verb, factory, template)
}

// HasVerb returns true if verb is a registered verb or alias.
func (e *DefaultEngine) HasVerb(verb string) bool {
	return e.registry.HasVerb(verb)
}

// Evaluate runs a single assertion against the provided value.
func (e *DefaultEngine) Evaluate(def Definition, value any) Result {
	result := Result{
		Verb:     def.Verb,
		Target:   def.Target,
		Negated:  def.Not,
		Expected: def.Value,
		Actual:   value,
	}

	exp := expect.That(value,
		expect.WithRegistry(e.registry),
		expect.WithLogger(e.logger.WithFields(
			logging.StringField("target", def.Target),
		)),
		expect.WithMetrics(e.metrics),
	)
	q := exp.To()
	if def.Not {
		q = exp.ToNot()
	}

	b, err := q.Matcher(def.Verb)
	if err != nil {
		result.Message = fmt.Sprintf(
			"unknown assertion verb: %s", def.Verb,
		)
		return result
	}

	// A value on a nullary verb reaches Invoke and fails with ErrArity.
	if b.Nullary() && def.Value == nil {
		err = b.Check()
	} else {
		err = b.Invoke(def.Value)
	}

	switch {
	case err == nil:
		result.Passed = true
		result.Message = b.Describe(result.Expected)
	case errors.Is(err, matcher.ErrTypeMismatch):
		result.TypeMismatch = true
		result.Message = failureMessage(def, err)
	default:
		result.Message = failureMessage(def, err)
	}
	return result
}

func failureMessage(def Definition, err error) string {
	if def.Message == "" {
		return err.Error()
	}
	return def.Message + ": " + err.Error()
}

// EvaluateAll runs multiple assertions against a map of named
// values. If a target is missing, the assertion fails.
func (e *DefaultEngine) EvaluateAll(
	defs []Definition,
	values map[string]any,
) []Result {
	results := make([]Result, 0, len(defs))

	for _, d := range defs {
		value, exists := values[d.Target]
		if !exists {
			results = append(results, missingTarget(d))
			continue
		}

		results = append(results, e.Evaluate(d, value))
	}

	return results
}

// EvaluateDocument runs multiple assertions against a JSON
// document. If the document is not valid JSON every assertion
// fails; if a path matches nothing, that assertion fails.
func (e *DefaultEngine) EvaluateDocument(
	defs []Definition,
	doc []byte,
) []Result {
	results := make([]Result, 0, len(defs))
	valid := gjson.ValidBytes(doc)

	for _, d := range defs {
		if !valid {
			results = append(results, Result{
				Verb:    d.Verb,
				Target:  d.Target,
				Negated: d.Not,
				Message: "invalid JSON document",
			})
			continue
		}

		value, exists := Lookup(doc, d.Target)
		if !exists {
			results = append(results, missingTarget(d))
			continue
		}

		results = append(results, e.Evaluate(d, value))
	}

	return results
}

// Lookup extracts the value at a gjson path. An empty path selects
// the whole document. Numbers decode as float64, objects as
// map[string]any and arrays as []any.
func Lookup(doc []byte, path string) (any, bool) {
	if path == "" {
		path = "@this"
	}
	r := gjson.GetBytes(doc, path)
	if !r.Exists() {
		return nil, false
	}
	return r.Value(), true
}

func missingTarget(d Definition) Result {
	return Result{
		Verb:    d.Verb,
		Target:  d.Target,
		Negated: d.Not,
		Message: fmt.Sprintf("target not found: %s", d.Target),
	}
}
