package registry

import (
	"sync"

	"github.com/teranos/coerce/errors"
)

// Method is a callable registered on a Type. self is the receiving *Object
// for instance methods, or the *Type itself for type methods.
type Method func(self any, args ...any) (any, error)

// Type is a nominal type in the registry. Types form a single-parent
// hierarchy; the parent is fixed at definition time.
type Type struct {
	name   string
	parent *Type

	mu      sync.RWMutex
	methods map[string]Method
}

// Name returns the type's registered name.
func (t *Type) Name() string {
	return t.name
}

// Parent returns the type's parent, or nil for a root type.
func (t *Type) Parent() *Type {
	return t.parent
}

// Is reports whether t is other or a descendant of other.
func (t *Type) Is(other *Type) bool {
	for cur := t; cur != nil; cur = cur.parent {
		if cur == other {
			return true
		}
	}
	return false
}

// Define installs a method in the type's own table.
// Returns an error if the name is already taken in that table; inherited
// methods may be overridden.
func (t *Type) Define(name string, m Method) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.methods[name]; exists {
		return errors.Newf("method already defined: %s.%s", t.name, name)
	}
	t.methods[name] = m
	return nil
}

// Defines reports whether the type's own table has the named method,
// ignoring inherited methods.
func (t *Type) Defines(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.methods[name]
	return ok
}

// Exposes reports whether t or any ancestor defines the named method.
func (t *Type) Exposes(name string) bool {
	_, ok := t.Lookup(name)
	return ok
}

// Lookup resolves the named method along the ancestor chain, nearest
// definition first.
func (t *Type) Lookup(name string) (Method, bool) {
	for cur := t; cur != nil; cur = cur.parent {
		cur.mu.RLock()
		m, ok := cur.methods[name]
		cur.mu.RUnlock()
		if ok {
			return m, true
		}
	}
	return nil, false
}

// Call invokes the named method resolved on t with the given receiver.
func (t *Type) Call(name string, self any, args ...any) (any, error) {
	m, ok := t.Lookup(name)
	if !ok {
		return nil, errors.Newf("type %s has no method %s", t.name, name)
	}
	return m(self, args...)
}
