// Package registry implements the type registry the coercion engine
// resolves against: named nominal types with single-parent inheritance,
// per-type method tables of Go closures, and boxed instance values.
//
// The registry is deliberately reflection-free. A host embedding a dynamic
// object system defines its types and methods here at type-definition time,
// and the engine answers "does type T expose capability M" by consulting
// the explicit tables rather than inspecting Go values.
package registry

import (
	"sort"
	"sync"

	"github.com/teranos/coerce/errors"
)

// LoadFunc loads the definition of a named type on demand. The host wires
// its own module-loading mechanism in via SetLoader; after a successful
// call the named type must be present in the registry.
type LoadFunc func(name string) error

// Registry tracks which named types are currently defined.
type Registry struct {
	mu     sync.RWMutex
	types  map[string]*Type
	loader LoadFunc
}

// NewRegistry creates an empty type registry.
func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]*Type),
	}
}

// Define registers a new named type with an optional parent.
// Returns an error if the name is already taken.
func (r *Registry) Define(name string, parent *Type) (*Type, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[name]; exists {
		return nil, errors.Newf("type already defined: %s", name)
	}

	t := &Type{
		name:    name,
		parent:  parent,
		methods: make(map[string]Method),
	}
	r.types[name] = t
	return t, nil
}

// Lookup retrieves a defined type by name.
func (r *Registry) Lookup(name string) (*Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[name]
	return t, ok
}

// Loaded reports whether the named type is currently defined.
func (r *Registry) Loaded(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.types[name]
	return ok
}

// List returns all defined type names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetLoader installs the host's on-demand type loader.
func (r *Registry) SetLoader(fn LoadFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loader = fn
}

// Load ensures the named type is defined, invoking the loader if it is
// not. Loading an already-defined type is a no-op, loader or not.
func (r *Registry) Load(name string) error {
	if r.Loaded(name) {
		return nil
	}

	r.mu.RLock()
	loader := r.loader
	r.mu.RUnlock()

	if loader == nil {
		return errors.Newf("no loader installed, cannot load type: %s", name)
	}
	if err := loader(name); err != nil {
		return errors.Wrapf(err, "loading type %s", name)
	}
	if !r.Loaded(name) {
		return errors.Newf("loader did not define type: %s", name)
	}
	return nil
}
