package suite

import (
	"fmt"
	"os"

	"digital.vasic.expectations/pkg/matcher"
)

// ValidationError represents a validation issue found in a suite
// file.
type ValidationError struct {
	Field   string
	Message string
	Suite   int // -1 if not applicable
	Index   int // -1 if not applicable
}

func (e ValidationError) Error() string {
	switch {
	case e.Index >= 0:
		return fmt.Sprintf(
			"suites[%d].assertions[%d].%s: %s",
			e.Suite, e.Index, e.Field, e.Message,
		)
	case e.Suite >= 0:
		return fmt.Sprintf("suites[%d].%s: %s", e.Suite, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateFile validates a suite file and returns all errors
// found. Verbs are checked against reg; a nil reg skips that check.
func ValidateFile(path string, reg *matcher.Registry) []ValidationError {
	data, err := os.ReadFile(path)
	if err != nil {
		return []ValidationError{{
			Field: "file", Message: err.Error(), Suite: -1, Index: -1,
		}}
	}

	file, err := ParseFile(data)
	if err != nil {
		return []ValidationError{{
			Field: "syntax", Message: err.Error(), Suite: -1, Index: -1,
		}}
	}

	return Validate(file, reg)
}

// Validate checks a decoded suite file.
func Validate(file *File, reg *matcher.Registry) []ValidationError {
	var errs []ValidationError

	if file.Version == "" {
		errs = append(errs, ValidationError{
			Field: "version", Message: "version is required",
			Suite: -1, Index: -1,
		})
	}

	names := make(map[string]bool)
	for i, s := range file.Suites {
		switch {
		case s.Name == "":
			errs = append(errs, ValidationError{
				Field: "name", Message: "suite name is required",
				Suite: i, Index: -1,
			})
		case names[s.Name]:
			errs = append(errs, ValidationError{
				Field:   "name",
				Message: fmt.Sprintf("duplicate suite: %s", s.Name),
				Suite:   i, Index: -1,
			})
		default:
			names[s.Name] = true
		}

		for _, dep := range s.DependsOn {
			if dep == s.Name {
				errs = append(errs, ValidationError{
					Field:   "depends_on",
					Message: "suite cannot depend on itself",
					Suite:   i, Index: -1,
				})
			}
		}

		for j, a := range s.Assertions {
			if a.Verb == "" {
				errs = append(errs, ValidationError{
					Field: "verb", Message: "verb is required",
					Suite: i, Index: j,
				})
				continue
			}
			if reg == nil {
				continue
			}
			entry, err := reg.Lookup(a.Verb)
			if err != nil {
				errs = append(errs, ValidationError{
					Field:   "verb",
					Message: fmt.Sprintf("unknown verb: %s", a.Verb),
					Suite:   i, Index: j,
				})
				continue
			}
			if a.Value != nil && matcher.IsNullary(entry.Factory()) {
				errs = append(errs, ValidationError{
					Field: "value",
					Message: fmt.Sprintf(
						"%s takes no expected value", a.Verb,
					),
					Suite: i, Index: j,
				})
			}
		}
	}

	return errs
}
