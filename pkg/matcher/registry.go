package matcher

import (
	"fmt"
	"sort"
	"sync"
)

// Entry is a canonical verb with the factory that builds its
// matcher and the template that renders its failures.
type Entry struct {
	Verb     string
	Factory  Factory
	Template string
}

// Registry maps canonical verbs to entries and aliases to canonical
// verbs. Both tables are written only through Register and
// RegisterAlias; lookups never mutate them. It is safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
	aliases map[string]string
}

// NewRegistry creates a Registry with every built-in verb and alias
// pre-registered.
func NewRegistry() *Registry {
	r := &Registry{
		entries: make(map[string]Entry),
		aliases: make(map[string]string),
	}
	r.registerDefaults()
	return r
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used when no other
// registry is configured.
func Default() *Registry {
	return defaultRegistry
}

func builtin(verb string, f Factory) Entry {
	return Entry{Verb: verb, Factory: f, Template: templates[verb]}
}

// registerDefaults registers the built-in verbs and their aliases.
func (r *Registry) registerDefaults() {
	defaults := []Entry{
		builtin(OpEqual, func() Matcher { return equalMatcher{op: OpEqual} }),
		builtin(OpBe, func() Matcher { return equalMatcher{op: OpBe} }),
		builtin(OpContain, func() Matcher { return containMatcher{} }),
		builtin(OpContainedIn, func() Matcher { return containMatcher{swap: true} }),
		builtin(OpEmpty, func() Matcher { return emptyMatcher{} }),
		builtin(OpTrue, func() Matcher { return trueMatcher{strict: true} }),
		builtin(OpTruthy, func() Matcher { return trueMatcher{} }),
		builtin(OpFalse, func() Matcher { return falseMatcher{strict: true} }),
		builtin(OpFalsey, func() Matcher { return falseMatcher{} }),
		builtin(OpOfType, func() Matcher { return typeMatcher{} }),
		builtin(OpNumeric, func() Matcher { return numericMatcher{} }),
		builtin(OpInherit, func() Matcher { return inheritMatcher{} }),
		builtin(OpGreaterThan, func() Matcher { return greaterMatcher{} }),
		builtin(OpGreaterThanOrEqualTo, func() Matcher { return greaterMatcher{orEqual: true} }),
		builtin(OpLesserThan, func() Matcher { return lesserMatcher{} }),
		builtin(OpLesserThanOrEqualTo, func() Matcher { return lesserMatcher{orEqual: true} }),
	}
	for _, e := range defaults {
		r.entries[e.Verb] = e
	}

	aliases := map[string][]string{
		OpEqual:                {"be_equal_to"},
		OpTruthy:               {"be_trueish", "be_truey"},
		OpFalsey:               {"be_falsish", "be_falsy"},
		OpOfType:               {"be_type", "have_type"},
		OpGreaterThan:          {"be_greater"},
		OpGreaterThanOrEqualTo: {"be_greater_or_equal_to", "be_greater_or_equal"},
		OpLesserThan:           {"be_less_than", "be_less", "be_lesser"},
		OpLesserThanOrEqualTo:  {"be_lesser_or_equal_to", "be_less_than_or_equal_to", "be_less_or_equal", "be_lesser_or_equal"},
		OpNumeric:              {"be_a_number"},
		OpContainedIn:          {"be_in", "be_included_in"},
		OpInherit:              {"have_parent", "be_subclass_of"},
		OpContain:              {"has", "have", "include"},
	}
	for canonical, names := range aliases {
		for _, alias := range names {
			r.aliases[alias] = canonical
		}
	}
}

// Register adds a canonical verb. An empty template is replaced by
// one derived from the verb name. Returns an error if the name is
// already taken by a verb or an alias.
func (r *Registry) Register(
	verb string, factory Factory, template string,
) error {
	if verb == "" {
		return fmt.Errorf("verb name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("verb %s: factory cannot be nil", verb)
	}
	if template == "" {
		template = GenericTemplate(verb, IsNullary(factory()))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.taken(verb) {
		return fmt.Errorf("verb already registered: %s", verb)
	}

	r.entries[verb] = Entry{
		Verb:     verb,
		Factory:  factory,
		Template: template,
	}
	return nil
}

// RegisterAlias makes alias resolve to the canonical verb that
// target names. target may itself be an alias.
func (r *Registry) RegisterAlias(alias, target string) error {
	if alias == "" {
		return fmt.Errorf("alias name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	canonical, ok := r.resolve(target)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownVerb, target)
	}
	if r.taken(alias) {
		return fmt.Errorf("verb already registered: %s", alias)
	}

	r.aliases[alias] = canonical
	return nil
}

func (r *Registry) taken(name string) bool {
	_, isVerb := r.entries[name]
	_, isAlias := r.aliases[name]
	return isVerb || isAlias
}

func (r *Registry) resolve(verb string) (string, bool) {
	if _, ok := r.entries[verb]; ok {
		return verb, true
	}
	canonical, ok := r.aliases[verb]
	return canonical, ok
}

// Resolve returns the canonical verb for a verb or alias.
func (r *Registry) Resolve(verb string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolve(verb)
}

// Lookup returns the entry for a verb or alias.
func (r *Registry) Lookup(verb string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	canonical, ok := r.resolve(verb)
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrUnknownVerb, verb)
	}
	return r.entries[canonical], nil
}

// HasVerb reports whether verb is a canonical verb or an alias.
func (r *Registry) HasVerb(verb string) bool {
	_, ok := r.Resolve(verb)
	return ok
}

// Verbs returns the canonical verbs in sorted order.
func (r *Registry) Verbs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	verbs := make([]string, 0, len(r.entries))
	for v := range r.entries {
		verbs = append(verbs, v)
	}
	sort.Strings(verbs)
	return verbs
}

// Aliases returns the aliases of a canonical verb in sorted order.
func (r *Registry) Aliases(canonical string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for alias, target := range r.aliases {
		if target == canonical {
			names = append(names, alias)
		}
	}
	sort.Strings(names)
	return names
}
