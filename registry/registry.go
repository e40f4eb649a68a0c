// Package registry holds the merged namespace of submodules re-exported from
// the wrapped quant-finance libraries, together with the availability record
// captured for each library at initialization time.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrModuleNotFound is returned when a submodule name is not present in
	// the unified namespace. Entries for unavailable libraries are simply
	// absent, so lookups against them surface this error rather than a
	// library-specific failure.
	ErrModuleNotFound = errors.New("module not found")

	// ErrSealed is returned by any write attempted after Seal.
	ErrSealed = errors.New("registry is sealed")

	// ErrDuplicateModule is returned when a submodule name is bound twice.
	ErrDuplicateModule = errors.New("module already registered")
)

// Module is one entry in the unified namespace. Handle is the object exported
// by the underlying library, bound as-is: the registry never copies or wraps
// it, so calls through it behave exactly like calls into the library itself.
type Module struct {
	Name    string
	Library string
	Handle  any
}

// LibraryStatus records the outcome of resolving one wrapped library.
// Diagnostic is empty when the library resolved cleanly.
type LibraryStatus struct {
	Name       string
	Available  bool
	Diagnostic string
	Submodules int
}

// Registry is writable during initialization and read-only after Seal.
// Sealed registries are safe for unlimited concurrent readers.
type Registry struct {
	mu       sync.RWMutex
	modules  map[string]Module
	statuses map[string]LibraryStatus
	sealed   bool
}

// New creates an empty, unsealed registry.
func New() *Registry {
	return &Registry{
		modules:  make(map[string]Module),
		statuses: make(map[string]LibraryStatus),
	}
}

// PutModule binds a submodule into the namespace.
func (r *Registry) PutModule(m Module) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return ErrSealed
	}
	if _, exists := r.modules[m.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateModule, m.Name)
	}

	r.modules[m.Name] = m
	return nil
}

// SetStatus records the availability outcome for a library.
func (r *Registry) SetStatus(s LibraryStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return ErrSealed
	}

	r.statuses[s.Name] = s
	return nil
}

// Get returns the namespace entry for name.
func (r *Registry) Get(name string) (Module, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, exists := r.modules[name]
	if !exists {
		return Module{}, fmt.Errorf("%w: %s", ErrModuleNotFound, name)
	}

	return m, nil
}

// List returns every namespace entry, sorted by name.
func (r *Registry) List() []Module {
	r.mu.RLock()
	defer r.mu.RUnlock()

	modules := make([]Module, 0, len(r.modules))
	for _, m := range r.modules {
		modules = append(modules, m)
	}
	sort.Slice(modules, func(i, j int) bool { return modules[i].Name < modules[j].Name })

	return modules
}

// Status returns the availability record for a library.
func (r *Registry) Status(library string) (LibraryStatus, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, exists := r.statuses[library]
	return s, exists
}

// Statuses returns all availability records, sorted by library name.
func (r *Registry) Statuses() []LibraryStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	statuses := make([]LibraryStatus, 0, len(r.statuses))
	for _, s := range r.statuses {
		statuses = append(statuses, s)
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].Name < statuses[j].Name })

	return statuses
}

// Seal makes the registry read-only. Sealing twice is a no-op.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
}

// Sealed reports whether the registry has been sealed.
func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}
