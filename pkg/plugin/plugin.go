// Package plugin extends the verb registry with optional groups of
// matchers. A plugin registers its verbs into the matcher registry
// handed to it on initialization; from then on the verbs are
// reachable through expect and the assertion engine like any
// built-in.
package plugin

import (
	"fmt"
	"sort"
	"sync"

	"digital.vasic.expectations/pkg/logging"
	"digital.vasic.expectations/pkg/matcher"
)

// Plugin defines the interface for extending the verb set.
type Plugin interface {
	// Name returns the plugin's unique name.
	Name() string
	// Version returns the plugin's version string.
	Version() string
	// Init registers the plugin's verbs with the given context.
	Init(ctx *PluginContext) error
}

// PluginContext provides access to framework components during
// initialization.
type PluginContext struct {
	// Matchers receives the plugin's verbs and aliases.
	Matchers *matcher.Registry
	// Config holds plugin settings keyed by name.
	Config map[string]any
	// Logger is optional.
	Logger logging.Logger
}

// String returns the config value for key, or "" if it is unset
// or not a string.
func (c *PluginContext) String(key string) string {
	s, _ := c.Config[key].(string)
	return s
}

func (c *PluginContext) logger() logging.Logger {
	if c.Logger == nil {
		return logging.NullLogger{}
	}
	return c.Logger
}

// Verb is one verb contributed by a plugin.
type Verb struct {
	Name     string
	Factory  matcher.Factory
	Template string
	Aliases  []string
}

// registerVerbs adds verbs and their aliases to ctx.Matchers.
func registerVerbs(ctx *PluginContext, plugin string, verbs []Verb) error {
	if ctx == nil || ctx.Matchers == nil {
		return fmt.Errorf("plugin %q: no matcher registry", plugin)
	}
	for _, v := range verbs {
		if err := ctx.Matchers.Register(v.Name, v.Factory, v.Template); err != nil {
			return err
		}
		for _, alias := range v.Aliases {
			if err := ctx.Matchers.RegisterAlias(alias, v.Name); err != nil {
				return err
			}
		}
		ctx.logger().Debug("verb registered",
			logging.StringField("plugin", plugin),
			logging.StringField("verb", v.Name),
		)
	}
	return nil
}

// Registry manages plugin registration and initialization.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
	loaded  map[string]bool
}

// NewRegistry creates a new plugin registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[string]Plugin),
		loaded:  make(map[string]bool),
	}
}

// Register adds a plugin to the registry.
func (r *Registry) Register(p Plugin) error {
	if p == nil {
		return fmt.Errorf("plugin cannot be nil")
	}
	name := p.Name()
	if name == "" {
		return fmt.Errorf("plugin name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.plugins[name]; exists {
		return fmt.Errorf("plugin %q already registered", name)
	}

	r.plugins[name] = p
	return nil
}

// Get retrieves a registered plugin by name.
func (r *Registry) Get(name string) (Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plugins[name]
	return p, ok
}

// InitAll initializes, in name order, all registered plugins that
// haven't been loaded yet.
func (r *Registry) InitAll(ctx *PluginContext) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, name := range r.names() {
		if r.loaded[name] {
			continue
		}
		if err := r.plugins[name].Init(ctx); err != nil {
			return fmt.Errorf("init plugin %q: %w", name, err)
		}
		r.loaded[name] = true
	}
	return nil
}

// Init initializes a specific plugin by name.
func (r *Registry) Init(name string, ctx *PluginContext) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.plugins[name]
	if !ok {
		return fmt.Errorf("plugin %q not found", name)
	}
	if r.loaded[name] {
		return nil
	}
	if err := p.Init(ctx); err != nil {
		return fmt.Errorf("init plugin %q: %w", name, err)
	}
	r.loaded[name] = true
	return nil
}

// List returns all registered plugin names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.names()
}

func (r *Registry) names() []string {
	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsLoaded checks if a plugin has been initialized.
func (r *Registry) IsLoaded(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded[name]
}

// Count returns the number of registered plugins.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.plugins)
}
