package feature

import "fmt"

// Registry maps feature name to feature instance.
type Registry struct {
	byName map[string]Feature
	order  []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Feature)}
}

// Register adds f to the registry under f.Name(). Registering the same name
// twice returns ErrAlreadyRegistered.
func (r *Registry) Register(f Feature) error {
	if _, exists := r.byName[f.Name()]; exists {
		return fmt.Errorf("feature: %q: %w", f.Name(), ErrAlreadyRegistered)
	}
	r.byName[f.Name()] = f
	r.order = append(r.order, f.Name())
	return nil
}

// Known reports whether name has been registered.
func (r *Registry) Known(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Lookup returns the registered feature for name, or ErrUnknownFeature.
func (r *Registry) Lookup(name string) (Feature, error) {
	f, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("feature: %q: %w", name, ErrUnknownFeature)
	}
	return f, nil
}

// Names returns every registered feature name, in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}
