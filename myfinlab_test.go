package myfinlab

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myfinlab/config"
	"myfinlab/loader"
	"myfinlab/registry"
)

// offlineConfig resolves nothing from disk so tests only see the libraries
// they registered.
func offlineConfig() *config.Config {
	return &config.Config{SearchPaths: []string{}}
}

// fullTable builds a submodule table covering every name a manifest declares.
// Each handle is a distinct pointer so tests can assert object identity.
func fullTable(manifest loader.Manifest) map[string]any {
	subs := make(map[string]any, len(manifest.Submodules))
	for _, name := range manifest.Submodules {
		handle := manifest.Library + "." + name
		subs[name] = &handle
	}
	return subs
}

func registerFull(t *testing.T, manifest loader.Manifest) map[string]any {
	t.Helper()
	table := fullTable(manifest)
	require.NoError(t, RegisterLibrary(loader.NewStaticLib(manifest.Library, table)))
	return table
}

func TestGetVersion(t *testing.T) {
	first := GetVersion()

	assert.NotEmpty(t, first)
	assert.Regexp(t, regexp.MustCompile(`^\d+\.\d+\.\d+$`), first)

	for i := 0; i < 5; i++ {
		assert.Equal(t, first, GetVersion())
	}
}

func TestInitWithNeitherLibrary(t *testing.T) {
	reset()

	// Must not panic or fail even though nothing resolves.
	Init(offlineConfig())

	assert.False(t, IsMlfinlabAvailable())
	assert.False(t, IsArbitragelabAvailable())
	assert.NotEmpty(t, GetVersion())

	_, err := Module("labeling")
	assert.ErrorIs(t, err, registry.ErrModuleNotFound)

	statuses := Libraries()
	require.Len(t, statuses, 2)
	for _, status := range statuses {
		assert.False(t, status.Available)
		assert.NotEmpty(t, status.Diagnostic, "unavailable library %s should carry a diagnostic", status.Name)
	}
}

func TestOnlyMlfinlabInstalled(t *testing.T) {
	reset()
	table := registerFull(t, loader.MlfinlabManifest())
	Init(offlineConfig())

	assert.True(t, IsMlfinlabAvailable())
	assert.False(t, IsArbitragelabAvailable())

	// A resolved submodule keeps the identity of the underlying object.
	m, err := Module("labeling")
	require.NoError(t, err)
	assert.Equal(t, loader.Mlfinlab, m.Library)
	assert.Same(t, table["labeling"], m.Handle)

	// Submodules of the absent library surface as not-found.
	_, err = Module("cointegration_approach")
	assert.ErrorIs(t, err, registry.ErrModuleNotFound)
	assert.ErrorContains(t, err, "cointegration_approach")
}

func TestBothLibrariesInstalled(t *testing.T) {
	reset()
	mlTable := registerFull(t, loader.MlfinlabManifest())
	arbTable := registerFull(t, loader.ArbitragelabManifest())
	Init(offlineConfig())

	assert.True(t, IsMlfinlabAvailable())
	assert.True(t, IsArbitragelabAvailable())

	for _, manifest := range loader.Manifests() {
		for _, submodule := range manifest.Submodules {
			m, err := Module(manifest.BoundName(submodule))
			require.NoError(t, err, "submodule %s of %s should be reachable", submodule, manifest.Library)
			assert.Equal(t, manifest.Library, m.Library)
		}
	}

	// util belongs to mlfinlab; arbitragelab's util is aliased to arb_util.
	util, err := Module("util")
	require.NoError(t, err)
	assert.Same(t, mlTable["util"], util.Handle)

	arbUtil, err := Module("arb_util")
	require.NoError(t, err)
	assert.Same(t, arbTable["util"], arbUtil.Handle)

	assert.Len(t, Modules(), 28)
}

func TestPartialInstallMarksLibraryUnavailable(t *testing.T) {
	reset()

	table := fullTable(loader.MlfinlabManifest())
	delete(table, "bet_sizing")
	require.NoError(t, RegisterLibrary(loader.NewStaticLib(loader.Mlfinlab, table)))
	Init(offlineConfig())

	assert.False(t, IsMlfinlabAvailable())

	// All-or-nothing: the submodules that did resolve must not leak through.
	_, err := Module("labeling")
	assert.ErrorIs(t, err, registry.ErrModuleNotFound)

	statuses := Libraries()
	for _, status := range statuses {
		if status.Name == loader.Mlfinlab {
			assert.Contains(t, status.Diagnostic, "bet_sizing")
		}
	}
}

func TestDisabledLibraryIsUnavailable(t *testing.T) {
	reset()
	registerFull(t, loader.ArbitragelabManifest())

	cfg := offlineConfig()
	cfg.Libraries = map[string]*config.LibraryConfig{
		loader.Arbitragelab: {Enabled: false},
	}
	Init(cfg)

	assert.False(t, IsArbitragelabAvailable())

	_, err := Module("codependence")
	assert.ErrorIs(t, err, registry.ErrModuleNotFound)
}

func TestRegisterAfterInitFails(t *testing.T) {
	reset()
	Init(offlineConfig())

	err := RegisterLibrary(loader.NewStaticLib(loader.Mlfinlab, fullTable(loader.MlfinlabManifest())))
	assert.ErrorIs(t, err, registry.ErrSealed)

	// The rejected registration changes nothing.
	assert.False(t, IsMlfinlabAvailable())
}

func TestInitRunsOnce(t *testing.T) {
	reset()
	Init(offlineConfig())
	assert.False(t, IsMlfinlabAvailable())

	// A second Init with a different configuration is a no-op: availability
	// is fixed for the process lifetime.
	registerCfg := offlineConfig()
	Init(registerCfg)
	assert.False(t, IsMlfinlabAvailable())
}

func TestIdempotentConcurrentReads(t *testing.T) {
	reset()
	registerFull(t, loader.MlfinlabManifest())
	Init(offlineConfig())

	wantVersion := GetVersion()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				assert.Equal(t, wantVersion, GetVersion())
				assert.True(t, IsMlfinlabAvailable())
				assert.False(t, IsArbitragelabAvailable())

				m, err := Module("sampling")
				assert.NoError(t, err)
				assert.Equal(t, loader.Mlfinlab, m.Library)

				_, err = Module("copula_approach")
				assert.ErrorIs(t, err, registry.ErrModuleNotFound)
			}
		}()
	}
	wg.Wait()
}

func TestLazyInitUsesDefaults(t *testing.T) {
	reset()

	// First namespace access without an explicit Init must succeed and seal
	// the namespace.
	_ = Libraries()

	err := RegisterLibrary(loader.NewStaticLib(loader.Mlfinlab, fullTable(loader.MlfinlabManifest())))
	assert.ErrorIs(t, err, registry.ErrSealed)
}
