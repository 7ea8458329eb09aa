package plugin

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"digital.vasic.expectations/pkg/matcher"
)

// VerbMatchSchema is the verb added by SchemaPlugin.
const VerbMatchSchema = "match_schema"

// ConfigSchemaDir is the PluginContext.Config key holding the
// directory relative schema paths resolve against.
const ConfigSchemaDir = "schema_dir"

// SchemaPlugin adds match_schema, which validates the JSON form of
// the actual value against a JSON Schema. The schema is given as
// JSON text, a decoded map, or a path to a schema file.
type SchemaPlugin struct{}

// Name returns "schema".
func (*SchemaPlugin) Name() string { return "schema" }

// Version returns the plugin version.
func (*SchemaPlugin) Version() string { return "1.0.0" }

// Init registers match_schema.
func (p *SchemaPlugin) Init(ctx *PluginContext) error {
	dir := ""
	if ctx != nil {
		dir = ctx.String(ConfigSchemaDir)
	}
	return registerVerbs(ctx, p.Name(), []Verb{{
		Name: VerbMatchSchema,
		Factory: func() matcher.Matcher {
			return schemaMatcher{baseDir: dir}
		},
		Aliases: []string{"conform_to"},
	}})
}

type schemaMatcher struct {
	baseDir string
}

func (schemaMatcher) Operation() string { return VerbMatchSchema }

func (m schemaMatcher) Match(actual, expected any) (bool, error) {
	schema, err := m.loader(expected)
	if err != nil {
		return false, matcher.NewTypeError(
			VerbMatchSchema, expected, expected, "%v", err,
		)
	}

	doc, err := json.Marshal(actual)
	if err != nil {
		return false, matcher.NewTypeError(
			VerbMatchSchema, actual, expected,
			"cannot encode %T as JSON: %v", actual, err,
		)
	}

	result, err := gojsonschema.Validate(
		schema, gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return false, matcher.NewTypeError(
			VerbMatchSchema, expected, expected,
			"schema validation error: %v", err,
		)
	}
	return result.Valid(), nil
}

func (m schemaMatcher) loader(expected any) (gojsonschema.JSONLoader, error) {
	switch s := expected.(type) {
	case []byte:
		return gojsonschema.NewBytesLoader(s), nil
	case map[string]any:
		return gojsonschema.NewGoLoader(s), nil
	case string:
		if strings.HasPrefix(strings.TrimSpace(s), "{") {
			return gojsonschema.NewStringLoader(s), nil
		}
		path := s
		if !filepath.IsAbs(path) && m.baseDir != "" {
			path = filepath.Join(m.baseDir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return gojsonschema.NewBytesLoader(data), nil
	}
	return nil, fmt.Errorf("%T is not a schema", expected)
}
