package rmeasure

import (
	"fmt"

	"github.com/katalvlaran/rmeasure/feature"
)

// resolveClosure processes requested as a work queue (§4.2 step 3): for each
// name not yet declared, the feature is looked up, its needs-grey flag is
// checked against hasGrey, and it is appended to the declaration order. If
// the feature is composite, its Dependencies() are appended to the queue and
// recorded as edges of a small composite-to-dependency adjacency map, local
// to this call and sized to the handful of features actually requested —
// cycle detection (detectCycle) walks that map directly rather than reaching
// for a general-purpose graph type to hold a few dozen edges.
func resolveClosure(reg *feature.Registry, requested []string, hasGrey bool) ([]feature.Feature, error) {
	declared := make(map[string]feature.Feature, len(requested))
	order := make([]string, 0, len(requested))
	queue := append([]string(nil), requested...)
	deps := make(map[string][]string, len(requested))

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if _, ok := declared[name]; ok {
			continue
		}
		f, err := reg.Lookup(name)
		if err != nil {
			return nil, err
		}
		if f.NeedsGrey() && !hasGrey {
			return nil, fmt.Errorf("rmeasure: feature %q: %w", name, feature.ErrGreyRequired)
		}
		declared[name] = f
		order = append(order, name)
		if f.Kind() == feature.CompositeKind {
			deps[name] = f.Dependencies()
			queue = append(queue, f.Dependencies()...)
		}
	}

	if err := detectCycle(deps); err != nil {
		return nil, err
	}

	out := make([]feature.Feature, len(order))
	for i, name := range order {
		out[i] = declared[name]
	}
	return out, nil
}

// detectCycle runs a three-colour DFS over the composite dependency edges in
// deps: white (unvisited), grey (on the current recursion stack), black
// (fully explored). An edge into a grey node is a back edge — the feature
// graph is cyclic — reported as ErrCycle rather than looping forever.
func detectCycle(deps map[string][]string) error {
	const (
		white = iota
		grey
		black
	)
	color := make(map[string]int, len(deps))
	var visit func(node string) error
	visit = func(node string) error {
		color[node] = grey
		for _, dep := range deps[node] {
			switch color[dep] {
			case grey:
				return fmt.Errorf("rmeasure: %q depends on itself via %q: %w", node, dep, ErrCycle)
			case white:
				if err := visit(dep); err != nil {
					return err
				}
			}
		}
		color[node] = black
		return nil
	}
	for node := range deps {
		if color[node] == white {
			if err := visit(node); err != nil {
				return err
			}
		}
	}
	return nil
}
