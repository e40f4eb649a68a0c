package myfinlab

import (
	"sync"

	"myfinlab/config"
	"myfinlab/internal/common"
	"myfinlab/internal/version"
	"myfinlab/loader"
	"myfinlab/registry"
)

var (
	mu     sync.Mutex
	reg    *registry.Registry
	static = loader.NewStaticLoader()
)

// GetVersion returns the version of the unifying package. It is a constant,
// unrelated to the versions of the wrapped libraries.
func GetVersion() string {
	return version.GetVersion()
}

// IsMlfinlabAvailable reports whether the mlfinlab library resolved. The
// value is fixed for the lifetime of the process.
func IsMlfinlabAvailable() bool {
	return libraryAvailable(loader.Mlfinlab)
}

// IsArbitragelabAvailable reports whether the arbitragelab library resolved.
// The value is fixed for the lifetime of the process.
func IsArbitragelabAvailable() bool {
	return libraryAvailable(loader.Arbitragelab)
}

// Module returns the namespace entry for a re-exported submodule. Submodules
// of unavailable libraries are absent, so lookups against them return
// registry.ErrModuleNotFound.
func Module(name string) (registry.Module, error) {
	return ensureInit().Get(name)
}

// Modules returns every reachable namespace entry, sorted by name.
func Modules() []registry.Module {
	return ensureInit().List()
}

// Libraries returns the availability record of each wrapped library.
func Libraries() []registry.LibraryStatus {
	return ensureInit().Statuses()
}

// RegisterLibrary makes an in-process library implementation visible to
// initialization. It must be called before the first namespace access; once
// the namespace is sealed it returns registry.ErrSealed.
func RegisterLibrary(lib loader.Library) error {
	mu.Lock()
	defer mu.Unlock()

	if reg != nil {
		return registry.ErrSealed
	}

	return static.Register(lib)
}

// Init resolves the wrapped libraries using the given configuration. It runs
// at most once per process; later calls (and the implicit initialization
// performed by the first namespace access) are no-ops. Init never fails: a
// missing or broken library is recorded as unavailable, not raised.
func Init(cfg *config.Config) {
	mu.Lock()
	defer mu.Unlock()

	if reg != nil {
		return
	}

	reg = buildRegistry(cfg)
}

func ensureInit() *registry.Registry {
	mu.Lock()
	defer mu.Unlock()

	if reg == nil {
		reg = buildRegistry(config.GetDefaultConfig())
	}

	return reg
}

func libraryAvailable(name string) bool {
	status, _ := ensureInit().Status(name)
	return status.Available
}

// buildRegistry performs the one-time resolution of both wrapped libraries.
// Each library resolves all-or-nothing: if any declared submodule is missing
// from a loaded library, the whole library is recorded unavailable, keeping
// the availability flag and the namespace contents in agreement.
func buildRegistry(cfg *config.Config) *registry.Registry {
	if cfg == nil {
		cfg = config.GetDefaultConfig()
	}
	if cfg.Logging != nil {
		configureLogging(cfg.Logging)
	}

	r := registry.New()
	ld := loader.Multi{
		static,
		&loader.PluginLoader{
			SearchPaths: cfg.SearchPaths,
			Overrides:   cfg.PluginOverrides(),
		},
	}

	for _, manifest := range loader.Manifests() {
		resolveLibrary(r, ld, cfg, manifest)
	}

	r.Seal()
	return r
}

func resolveLibrary(r *registry.Registry, ld loader.Loader, cfg *config.Config, manifest loader.Manifest) {
	name := manifest.Library

	if !cfg.LibraryEnabled(name) {
		_ = r.SetStatus(registry.LibraryStatus{
			Name:       name,
			Diagnostic: "disabled by configuration",
		})
		common.FinlabLogger.Debug("library %s disabled by configuration", name)
		return
	}

	lib, err := ld.Load(name)
	if err != nil {
		_ = r.SetStatus(registry.LibraryStatus{
			Name:       name,
			Diagnostic: err.Error(),
		})
		common.FinlabLogger.Debug("library %s unavailable: %v", name, err)
		return
	}

	subs := lib.Submodules()
	for _, submodule := range manifest.Submodules {
		if _, ok := subs[submodule]; !ok {
			_ = r.SetStatus(registry.LibraryStatus{
				Name:       name,
				Diagnostic: "library " + name + " is missing submodule " + submodule,
			})
			common.FinlabLogger.Warn("library %s loaded but is missing submodule %s, marking unavailable", name, submodule)
			return
		}
	}

	for _, submodule := range manifest.Submodules {
		err := r.PutModule(registry.Module{
			Name:    manifest.BoundName(submodule),
			Library: name,
			Handle:  subs[submodule],
		})
		if err != nil {
			// Manifests keep bound names collision-free, so this only fires
			// on a manifest bug.
			common.FinlabLogger.Error("failed to bind %s.%s: %v", name, submodule, err)
		}
	}

	_ = r.SetStatus(registry.LibraryStatus{
		Name:       name,
		Available:  true,
		Submodules: len(manifest.Submodules),
	})
	common.FinlabLogger.Debug("library %s available with %d submodules", name, len(manifest.Submodules))
}

func configureLogging(lc *config.LoggingConfig) {
	if lc.Level != "" {
		common.SetLevel(lc.Level)
	}
	if lc.OutputFile != "" {
		if err := common.EnableFileOutput(lc.OutputFile, lc.MaxSizeMB, lc.MaxBackups, lc.MaxAgeDays, lc.Compress); err != nil {
			common.FinlabLogger.Warn("failed to enable log file %s: %v", lc.OutputFile, err)
		}
	}
}

// reset discards the sealed namespace and registered libraries so tests can
// rebuild with fresh fixtures.
func reset() {
	mu.Lock()
	defer mu.Unlock()

	reg = nil
	static = loader.NewStaticLoader()
}
