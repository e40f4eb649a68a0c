// Package loader resolves the wrapped quant-finance libraries. A library may
// be compiled into the process and registered statically, or shipped as a Go
// plugin discovered on disk at initialization time.
package loader

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Library is a resolved wrapped library. Submodules returns the objects the
// library exports under their original names; the aggregation layer binds
// them into the unified namespace without copying or wrapping.
type Library interface {
	Name() string
	Submodules() map[string]any
}

// Loader resolves a wrapped library by name. A failed resolution is reported
// as an error and never panics; the caller records it as an availability
// diagnostic.
type Loader interface {
	Load(name string) (Library, error)
}

// StaticLib is a Library backed by an in-memory submodule table.
type StaticLib struct {
	name string
	subs map[string]any
}

// NewStaticLib creates a Library from a submodule table.
func NewStaticLib(name string, subs map[string]any) *StaticLib {
	return &StaticLib{name: name, subs: subs}
}

func (l *StaticLib) Name() string { return l.name }

func (l *StaticLib) Submodules() map[string]any { return l.subs }

// StaticLoader serves libraries that were registered in-process. Registration
// is only meaningful before the namespace is sealed.
type StaticLoader struct {
	mu   sync.RWMutex
	libs map[string]Library
}

// NewStaticLoader creates an empty static loader.
func NewStaticLoader() *StaticLoader {
	return &StaticLoader{libs: make(map[string]Library)}
}

// Register adds an in-process library implementation.
func (l *StaticLoader) Register(lib Library) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	name := lib.Name()
	if _, exists := l.libs[name]; exists {
		return errors.Errorf("library %s already registered", name)
	}

	l.libs[name] = lib
	return nil
}

// Load returns the registered library, if any.
func (l *StaticLoader) Load(name string) (Library, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	lib, exists := l.libs[name]
	if !exists {
		return nil, errors.Errorf("library %s is not registered", name)
	}

	return lib, nil
}

// Multi tries each loader in order and returns the first success. When every
// loader fails, the returned error carries each failure reason so the
// availability diagnostic names them all.
type Multi []Loader

func (m Multi) Load(name string) (Library, error) {
	if len(m) == 0 {
		return nil, errors.Errorf("no loaders configured for library %s", name)
	}

	reasons := make([]string, 0, len(m))
	for _, ld := range m {
		lib, err := ld.Load(name)
		if err == nil {
			return lib, nil
		}
		reasons = append(reasons, err.Error())
	}

	return nil, errors.Errorf("library %s unavailable: %s", name, strings.Join(reasons, "; "))
}
