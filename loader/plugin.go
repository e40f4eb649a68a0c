package loader

import (
	"os"
	"path/filepath"
	"plugin"

	"github.com/pkg/errors"

	"myfinlab/internal/common"
)

// SubmodulesSymbol is the symbol a library plugin must export. It may be
// either a variable of type map[string]any or a niladic function returning
// one.
const SubmodulesSymbol = "Submodules"

// PluginLoader resolves wrapped libraries from Go plugins on disk.
type PluginLoader struct {
	// SearchPaths are probed in order for a plugin file.
	SearchPaths []string

	// Overrides maps a library name to an explicit plugin path, bypassing the
	// search paths entirely.
	Overrides map[string]string
}

// candidateNames lists the file names a library plugin may be installed
// under.
func candidateNames(name string) []string {
	return []string{name + ".so", "lib" + name + ".so"}
}

// findPlugin returns the path of the first existing plugin file for the
// library, or "" when none is found.
func (l *PluginLoader) findPlugin(name string) string {
	if override, ok := l.Overrides[name]; ok && override != "" {
		if _, err := os.Stat(override); err == nil {
			return override
		}
		return ""
	}

	for _, dir := range l.SearchPaths {
		for _, candidate := range candidateNames(name) {
			p := filepath.Join(dir, candidate)
			if info, err := os.Stat(p); err == nil && !info.IsDir() {
				return p
			}
		}
	}

	return ""
}

// Load opens the library plugin and extracts its submodule table. Any failure
// (no file, incompatible build, missing or mistyped symbol) is returned as an
// error for the caller to record; a broken plugin is never fatal.
func (l *PluginLoader) Load(name string) (Library, error) {
	path := l.findPlugin(name)
	if path == "" {
		return nil, errors.Errorf("no plugin found for %s in %v", name, l.SearchPaths)
	}

	common.LoaderLogger.Debug("opening plugin %s for library %s", path, name)

	p, err := plugin.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open plugin %s", path)
	}

	sym, err := p.Lookup(SubmodulesSymbol)
	if err != nil {
		return nil, errors.Wrapf(err, "plugin %s does not export %s", path, SubmodulesSymbol)
	}

	switch v := sym.(type) {
	case *map[string]any:
		return NewStaticLib(name, *v), nil
	case func() map[string]any:
		return NewStaticLib(name, v()), nil
	default:
		return nil, errors.Errorf("plugin %s exports %s with unexpected type %T", path, SubmodulesSymbol, sym)
	}
}
