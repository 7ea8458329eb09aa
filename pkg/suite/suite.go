// Package suite loads named groups of declarative assertions from
// YAML or JSON files and runs them against a JSON document.
package suite

import "digital.vasic.expectations/pkg/assertion"

// Suite is a named group of assertions evaluated together.
type Suite struct {
	Name        string                 `yaml:"name" json:"name"`
	Description string                 `yaml:"description,omitempty" json:"description,omitempty"`
	Assertions  []assertion.Definition `yaml:"assertions" json:"assertions"`

	// DependsOn names suites that must pass before this one runs.
	DependsOn []string `yaml:"depends_on,omitempty" json:"depends_on,omitempty"`
}

// File represents the structure of a suite file. JSON is a subset
// of YAML, so both formats decode through the same path.
type File struct {
	Version  string         `yaml:"version" json:"version"`
	Suites   []Suite        `yaml:"suites" json:"suites"`
	Metadata map[string]any `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}
