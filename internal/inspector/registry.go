package inspector

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrDuplicate is returned when a type/field pair is registered twice.
	ErrDuplicate = errors.New("inspector attribute already registered")
	// ErrEmptyName is returned for an empty type, field or display name.
	ErrEmptyName = errors.New("inspector attribute name is empty")
)

type fieldKey struct {
	typeName string
	field    string
}

// Registry maps component fields to their inspector attributes.
// Components register their fields explicitly, usually from init().
type Registry struct {
	mu    sync.RWMutex
	attrs map[fieldKey]Attribute
}

// Default is the registry used by the package-level helpers.
var Default = NewRegistry()

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{attrs: map[fieldKey]Attribute{}}
}

// Register stores attr for the field of the named component type.
func (r *Registry) Register(typeName, field string, attr Attribute) error {
	switch {
	case typeName == "":
		return fmt.Errorf("%w: type name", ErrEmptyName)
	case field == "":
		return fmt.Errorf("%w: field of %s", ErrEmptyName, typeName)
	case attr.DisplayName == "":
		return fmt.Errorf("%w: display name of %s.%s", ErrEmptyName, typeName, field)
	}

	key := fieldKey{typeName, field}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.attrs[key]; exists {
		return fmt.Errorf("%w: %s.%s", ErrDuplicate, typeName, field)
	}
	r.attrs[key] = attr
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(typeName, field string, attr Attribute) {
	if err := r.Register(typeName, field, attr); err != nil {
		panic(err)
	}
}

// Lookup returns the attribute registered for the field, if any.
func (r *Registry) Lookup(typeName, field string) (Attribute, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	attr, ok := r.attrs[fieldKey{typeName, field}]
	return attr, ok
}

// Fields returns the sorted field names registered for typeName.
func (r *Registry) Fields(typeName string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var fields []string
	for key := range r.attrs {
		if key.typeName == typeName {
			fields = append(fields, key.field)
		}
	}
	sort.Strings(fields)
	return fields
}

// Types returns the sorted names of every type with at least one attribute.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := map[string]bool{}
	types := make([]string, 0)
	for key := range r.attrs {
		if !seen[key.typeName] {
			seen[key.typeName] = true
			types = append(types, key.typeName)
		}
	}
	sort.Strings(types)
	return types
}

// Register adds attr to the Default registry, panicking on error.
func Register(typeName, field string, attr Attribute) {
	Default.MustRegister(typeName, field, attr)
}

// Lookup reads from the Default registry.
func Lookup(typeName, field string) (Attribute, bool) {
	return Default.Lookup(typeName, field)
}
