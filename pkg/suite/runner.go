package suite

import (
	"fmt"
	"time"

	"digital.vasic.expectations/pkg/assertion"
)

// Outcome is the result of running one suite.
type Outcome struct {
	Suite       string             `json:"suite"`
	Description string             `json:"description,omitempty"`
	StartedAt   time.Time          `json:"started_at"`
	Duration    time.Duration      `json:"duration"`
	Passed      bool               `json:"passed"`
	Skipped     bool               `json:"skipped,omitempty"`
	SkipReason  string             `json:"skip_reason,omitempty"`
	Results     []assertion.Result `json:"results"`
}

// Failed returns the results that did not pass.
func (o *Outcome) Failed() []assertion.Result {
	var failed []assertion.Result
	for _, r := range o.Results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}

// Run evaluates every assertion of s against the JSON document
// doc. The outcome passes when all assertions pass.
func Run(engine assertion.Engine, s *Suite, doc []byte) *Outcome {
	start := time.Now()
	results := engine.EvaluateDocument(s.Assertions, doc)

	return &Outcome{
		Suite:       s.Name,
		Description: s.Description,
		StartedAt:   start,
		Duration:    time.Since(start),
		Passed:      assertion.AllPass(results).Passed,
		Results:     results,
	}
}

// RunAll runs each suite in the given order against doc. A suite
// whose dependency ran earlier without passing is skipped; pass
// suites through Order first to run dependencies before their
// dependents.
func RunAll(
	engine assertion.Engine, suites []*Suite, doc []byte,
) []*Outcome {
	outcomes := make([]*Outcome, 0, len(suites))
	passed := make(map[string]bool, len(suites))

	for _, s := range suites {
		var o *Outcome
		if dep, blocked := blockedBy(s, passed); blocked {
			o = &Outcome{
				Suite:       s.Name,
				Description: s.Description,
				StartedAt:   time.Now(),
				Skipped:     true,
				SkipReason:  fmt.Sprintf("dependency %q did not pass", dep),
			}
		} else {
			o = Run(engine, s, doc)
		}
		passed[s.Name] = o.Passed
		outcomes = append(outcomes, o)
	}
	return outcomes
}

// blockedBy returns the first dependency of s that ran and did not
// pass. Dependencies that did not run are ignored.
func blockedBy(s *Suite, passed map[string]bool) (string, bool) {
	for _, dep := range s.DependsOn {
		if ok, ran := passed[dep]; ran && !ok {
			return dep, true
		}
	}
	return "", false
}
