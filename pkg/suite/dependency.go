package suite

import (
	"fmt"
	"sort"
	"strings"
)

// Order sorts suites so that every suite follows the suites it
// depends on. Independent suites keep name order. It returns an
// error for a dependency on a suite not in the list, or a cycle.
func Order(suites []*Suite) ([]*Suite, error) {
	byName := make(map[string]*Suite, len(suites))
	for _, s := range suites {
		byName[s.Name] = s
	}

	inDegree := make(map[string]int, len(suites))
	dependents := make(map[string][]string, len(suites))

	for name, s := range byName {
		if _, exists := inDegree[name]; !exists {
			inDegree[name] = 0
		}
		for _, dep := range s.DependsOn {
			if _, ok := byName[dep]; !ok {
				return nil, fmt.Errorf(
					"suite %q depends on unknown suite %q", name, dep,
				)
			}
			inDegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var queue []string
	for name, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, name)
		}
	}
	sort.Strings(queue)

	ordered := make([]*Suite, 0, len(suites))
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		ordered = append(ordered, byName[name])

		next := dependents[name]
		sort.Strings(next)
		for _, d := range next {
			inDegree[d]--
			if inDegree[d] == 0 {
				queue = append(queue, d)
			}
		}
	}

	if len(ordered) != len(byName) {
		return nil, fmt.Errorf(
			"circular dependency detected: %s", detectCycle(byName),
		)
	}
	return ordered, nil
}

// detectCycle describes one dependency cycle, found with an
// iterative three-colour DFS.
func detectCycle(byName map[string]*Suite) string {
	const (
		white = iota // unvisited
		gray         // on the current path
		black        // finished
	)

	colour := make(map[string]int, len(byName))

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	type frame struct {
		name  string
		deps  []string
		index int
	}

	for _, start := range names {
		if colour[start] != white {
			continue
		}

		stack := []frame{{name: start, deps: sortedDeps(byName, start)}}
		colour[start] = gray

		for len(stack) > 0 {
			top := &stack[len(stack)-1]

			if top.index >= len(top.deps) {
				colour[top.name] = black
				stack = stack[:len(stack)-1]
				continue
			}

			dep := top.deps[top.index]
			top.index++

			switch colour[dep] {
			case gray:
				path := []string{dep}
				for i := len(stack) - 1; i >= 0; i-- {
					path = append(path, stack[i].name)
					if stack[i].name == dep {
						break
					}
				}
				return strings.Join(path, " -> ")
			case white:
				colour[dep] = gray
				stack = append(stack, frame{
					name: dep, deps: sortedDeps(byName, dep),
				})
			}
		}
	}

	return "unknown cycle"
}

func sortedDeps(byName map[string]*Suite, name string) []string {
	s, ok := byName[name]
	if !ok {
		return nil
	}
	deps := append([]string(nil), s.DependsOn...)
	sort.Strings(deps)
	return deps
}

// Ordered returns the loaded suites in dependency order.
func (c *Collection) Ordered() ([]*Suite, error) {
	return Order(c.All())
}
