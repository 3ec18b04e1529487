package discovery

import (
	"strings"

	"gtp/internal/registry"
)

// Triple is one discovered (name, callable, annotation) entry, in the order
// the discovering code produced it.
type Triple struct {
	Name       string
	Callable   func()
	Annotation string
}

// Set is an ordered collection of discovered triples. How the triples are
// obtained is up to the caller (a hand-built suite, init-time registration,
// a test double); the engine only requires the order to be reproducible.
type Set struct {
	triples []Triple
}

// NewSet creates an empty Set
func NewSet() *Set {
	return &Set{}
}

// Add appends a triple and returns the Set for chaining
func (s *Set) Add(name string, callable func(), annotation string) *Set {
	s.triples = append(s.triples, Triple{Name: name, Callable: callable, Annotation: annotation})
	return s
}

// Triples returns the discovered triples in insertion order
func (s *Set) Triples() []Triple {
	out := make([]Triple, len(s.triples))
	copy(out, s.triples)
	return out
}

// Len returns the number of triples in the set
func (s *Set) Len() int {
	return len(s.triples)
}

// Populate registers every triple whose name matches the naming-convention
// prefix into the registry, in set order. Names outside the convention are
// not eligible and are silently ignored. A duplicate eligible name aborts
// population with the registry's *DuplicateNameError: a compromised registry
// cannot be trusted for reporting, so nothing may execute after that.
func Populate(reg *registry.Registry, set *Set, prefix string) error {
	for _, tr := range set.triples {
		if prefix != "" && !strings.HasPrefix(tr.Name, prefix) {
			continue
		}
		if err := reg.Register(tr.Name, tr.Callable, tr.Annotation); err != nil {
			return err
		}
	}
	return nil
}
