package palette

import (
	"sort"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/search"
)

// Registry is a mutable name→Scheme mapping owned by the caller. It is
// typically populated once at startup and read-only afterwards, but all
// methods are safe for concurrent use.
type Registry[C Color[C]] struct {
	mu      sync.RWMutex
	schemes map[string]*Scheme[C]
}

// NewRegistry creates an empty registry.
func NewRegistry[C Color[C]]() *Registry[C] {
	return &Registry[C]{schemes: make(map[string]*Scheme[C])}
}

// Register inserts s under name, overwriting any existing entry
// (last writer wins). It reports whether an entry was overwritten; an
// overwrite is also logged at Warn level through the package logger, which
// is silent unless SetLogger enabled it.
func (r *Registry[C]) Register(name string, s *Scheme[C]) bool {
	r.mu.Lock()
	_, overwrote := r.schemes[name]
	r.schemes[name] = s
	r.mu.Unlock()

	if overwrote {
		Logger().Warn("palette: scheme overwritten", "name", name)
	}
	return overwrote
}

// Lookup returns the scheme registered under name, if any.
func (r *Registry[C]) Lookup(name string) (*Scheme[C], bool) {
	r.mu.RLock()
	s, ok := r.schemes[name]
	r.mu.RUnlock()
	return s, ok
}

// Len returns the number of registered schemes.
func (r *Registry[C]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.schemes)
}

// Names returns the registered scheme names in sorted order.
func (r *Registry[C]) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.schemes))
	for name := range r.schemes {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Find returns the sorted names of all schemes whose name, category, or
// notes contain pattern. Matching is Unicode-loose: case, width, and
// diacritic differences are ignored.
func (r *Registry[C]) Find(pattern string) []string {
	m := search.New(language.Und, search.Loose)

	r.mu.RLock()
	var names []string
	for name, s := range r.schemes {
		if matchesAny(m, pattern, name, s.category, s.notes) {
			names = append(names, name)
		}
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// matchesAny reports whether pattern occurs in any of the fields.
func matchesAny(m *search.Matcher, pattern string, fields ...string) bool {
	for _, f := range fields {
		if start, _ := m.IndexString(f, pattern); start >= 0 {
			return true
		}
	}
	return false
}
