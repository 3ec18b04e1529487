package registry

import (
	"fmt"

	"gtp/internal/domain"
)

// DuplicateNameError is returned when a name is registered twice.
// A registry that silently overwrote would make discovery order and
// reporting nondeterministic, so registration fails loudly instead.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("test %q is already registered", e.Name)
}

// Registry is an ordered mapping from test name to TestDescriptor.
// Insertion order is preserved and significant: it drives execution and
// report order. A Registry is write-once per run; there is no removal.
type Registry struct {
	order []domain.TestDescriptor
	index map[string]int
}

// New creates an empty Registry
func New() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds a TestDescriptor under the given name.
// Returns a *DuplicateNameError if the name already exists.
func (r *Registry) Register(name string, callable func(), annotation string) error {
	if _, exists := r.index[name]; exists {
		return &DuplicateNameError{Name: name}
	}
	r.index[name] = len(r.order)
	r.order = append(r.order, domain.TestDescriptor{
		Name:       name,
		Callable:   callable,
		Annotation: annotation,
	})
	return nil
}

// All returns the descriptors in registration order.
// The returned slice is a copy; the Registry itself stays read-only downstream.
func (r *Registry) All() []domain.TestDescriptor {
	out := make([]domain.TestDescriptor, len(r.order))
	copy(out, r.order)
	return out
}

// Lookup returns the descriptor registered under name, if any
func (r *Registry) Lookup(name string) (domain.TestDescriptor, bool) {
	i, ok := r.index[name]
	if !ok {
		return domain.TestDescriptor{}, false
	}
	return r.order[i], true
}

// Len returns the number of registered descriptors
func (r *Registry) Len() int {
	return len(r.order)
}
