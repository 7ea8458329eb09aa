package plugin

import (
	"regexp"
	"strings"

	"digital.vasic.expectations/pkg/matcher"
)

// Text verbs.
const (
	VerbStartWith = "start_with"
	VerbEndWith   = "end_with"
	VerbMatch     = "match"
)

// TextPlugin adds string verbs: start_with (alias begin_with),
// end_with and match. match takes a regular expression, written
// bare or between slashes.
type TextPlugin struct{}

// Name returns "text".
func (*TextPlugin) Name() string { return "text" }

// Version returns the plugin version.
func (*TextPlugin) Version() string { return "1.0.0" }

// Init registers the text verbs.
func (p *TextPlugin) Init(ctx *PluginContext) error {
	return registerVerbs(ctx, p.Name(), []Verb{
		{
			Name: VerbStartWith,
			Factory: func() matcher.Matcher {
				return affixMatcher{op: VerbStartWith, test: strings.HasPrefix}
			},
			Aliases: []string{"begin_with"},
		},
		{
			Name: VerbEndWith,
			Factory: func() matcher.Matcher {
				return affixMatcher{op: VerbEndWith, test: strings.HasSuffix}
			},
		},
		{
			Name:     VerbMatch,
			Factory:  func() matcher.Matcher { return regexpMatcher{} },
			Template: "Expected {actual} {to} match pattern {expected}",
		},
	})
}

// text returns v as a string if it is a string or byte slice.
func text(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case []byte:
		return string(x), true
	}
	return "", false
}

type affixMatcher struct {
	op   string
	test func(s, affix string) bool
}

func (m affixMatcher) Operation() string { return m.op }

func (m affixMatcher) Match(actual, expected any) (bool, error) {
	s, ok := text(actual)
	if !ok {
		return false, matcher.NewTypeError(
			m.op, actual, expected, "%T is not text", actual,
		)
	}
	affix, ok := text(expected)
	if !ok {
		return false, matcher.NewTypeError(
			m.op, expected, expected, "%T is not text", expected,
		)
	}
	return m.test(s, affix), nil
}

type regexpMatcher struct{}

func (regexpMatcher) Operation() string { return VerbMatch }

func (regexpMatcher) Match(actual, expected any) (bool, error) {
	s, ok := text(actual)
	if !ok {
		return false, matcher.NewTypeError(
			VerbMatch, actual, expected, "%T is not text", actual,
		)
	}

	var re *regexp.Regexp
	switch p := expected.(type) {
	case *regexp.Regexp:
		re = p
	case string:
		pattern := p
		if len(pattern) > 1 && strings.HasPrefix(pattern, "/") &&
			strings.HasSuffix(pattern, "/") {
			pattern = pattern[1 : len(pattern)-1]
		}
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return false, matcher.NewTypeError(
				VerbMatch, expected, expected, "invalid pattern: %v", err,
			)
		}
		re = compiled
	default:
		return false, matcher.NewTypeError(
			VerbMatch, expected, expected,
			"%T is not a pattern", expected,
		)
	}
	return re.MatchString(s), nil
}
