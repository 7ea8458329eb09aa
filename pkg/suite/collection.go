package suite

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Collection holds suites loaded from files, keyed by name.
type Collection struct {
	mu      sync.RWMutex
	suites  map[string]*Suite
	sources []string
}

// New creates an empty Collection.
func New() *Collection {
	return &Collection{
		suites: make(map[string]*Suite),
	}
}

// Load reads a file or, if path is a directory, every suite file
// in it.
func Load(path string) (*Collection, error) {
	c := New()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat suite path %s: %w", path, err)
	}
	if info.IsDir() {
		err = c.LoadDir(path)
	} else {
		err = c.LoadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ParseFile decodes suite file content.
func ParseFile(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// LoadFile loads suites from a YAML or JSON file. A suite with
// the name of one already loaded replaces it.
func (c *Collection) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read suite file %s: %w", path, err)
	}

	file, err := ParseFile(data)
	if err != nil {
		return fmt.Errorf("parse suite file %s: %w", path, err)
	}

	for i, s := range file.Suites {
		if s.Name == "" {
			return fmt.Errorf(
				"suite at index %d in %s has no name", i, path,
			)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range file.Suites {
		s := &file.Suites[i]
		c.suites[s.Name] = s
	}
	c.sources = append(c.sources, path)
	return nil
}

// IsSuiteFile reports whether name has a suite file extension.
func IsSuiteFile(name string) bool {
	switch filepath.Ext(name) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// LoadDir loads all suite files from a directory. Subdirectories
// are not searched.
func (c *Collection) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read suite directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !IsSuiteFile(entry.Name()) {
			continue
		}
		if err := c.LoadFile(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// Get retrieves a suite by name.
func (c *Collection) Get(name string) (*Suite, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.suites[name]
	return s, ok
}

// All returns all loaded suites sorted by name.
func (c *Collection) All() []*Suite {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]*Suite, 0, len(c.suites))
	for _, s := range c.suites {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Count returns the number of loaded suites.
func (c *Collection) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.suites)
}

// Sources returns the list of loaded file paths.
func (c *Collection) Sources() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]string, len(c.sources))
	copy(result, c.sources)
	return result
}
