package assertion

import "fmt"

// AllPass folds results into one that passes only when every
// result passed. An empty slice passes.
func AllPass(results []Result) Result {
	for _, r := range results {
		if !r.Passed {
			return Result{
				Verb:   "all_pass",
				Target: r.Target,
				Passed: false,
				Message: fmt.Sprintf(
					"assertion '%s' on target '%s' failed: %s",
					r.Verb, r.Target, r.Message,
				),
			}
		}
	}

	return Result{
		Verb:   "all_pass",
		Passed: true,
		Message: fmt.Sprintf(
			"all %d assertions passed", len(results),
		),
	}
}

// AnyPass folds results into one that passes when at least one
// result passed.
func AnyPass(results []Result) Result {
	for _, r := range results {
		if r.Passed {
			return Result{
				Verb:   "any_pass",
				Target: r.Target,
				Passed: true,
				Message: fmt.Sprintf(
					"assertion '%s' on target '%s' passed",
					r.Verb, r.Target,
				),
			}
		}
	}

	return Result{
		Verb:   "any_pass",
		Passed: false,
		Message: fmt.Sprintf(
			"none of %d assertions passed", len(results),
		),
	}
}

// AllPassComposite evaluates defs against values and requires all
// of them to pass.
func AllPassComposite(
	engine Engine,
	defs []Definition,
	values map[string]any,
) Result {
	return AllPass(engine.EvaluateAll(defs, values))
}

// AnyPassComposite evaluates defs against values and requires at
// least one of them to pass.
func AnyPassComposite(
	engine Engine,
	defs []Definition,
	values map[string]any,
) Result {
	return AnyPass(engine.EvaluateAll(defs, values))
}
