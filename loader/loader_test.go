package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticLoaderRegisterAndLoad(t *testing.T) {
	l := NewStaticLoader()

	subs := map[string]any{"labeling": struct{}{}}
	require.NoError(t, l.Register(NewStaticLib(Mlfinlab, subs)))

	lib, err := l.Load(Mlfinlab)
	require.NoError(t, err)
	assert.Equal(t, Mlfinlab, lib.Name())
	assert.Equal(t, subs, lib.Submodules())
}

func TestStaticLoaderUnknownLibrary(t *testing.T) {
	l := NewStaticLoader()

	_, err := l.Load(Arbitragelab)
	require.Error(t, err)
	assert.Contains(t, err.Error(), Arbitragelab)
	assert.Contains(t, err.Error(), "not registered")
}

func TestStaticLoaderDuplicateRegistration(t *testing.T) {
	l := NewStaticLoader()

	require.NoError(t, l.Register(NewStaticLib(Mlfinlab, nil)))
	err := l.Register(NewStaticLib(Mlfinlab, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestMultiFirstSuccessWins(t *testing.T) {
	first := NewStaticLoader()
	second := NewStaticLoader()

	firstSubs := map[string]any{"labeling": "first"}
	require.NoError(t, first.Register(NewStaticLib(Mlfinlab, firstSubs)))
	require.NoError(t, second.Register(NewStaticLib(Mlfinlab, map[string]any{"labeling": "second"})))

	lib, err := Multi{first, second}.Load(Mlfinlab)
	require.NoError(t, err)
	assert.Equal(t, firstSubs, lib.Submodules())
}

func TestMultiFallsThrough(t *testing.T) {
	empty := NewStaticLoader()
	populated := NewStaticLoader()
	require.NoError(t, populated.Register(NewStaticLib(Arbitragelab, nil)))

	lib, err := Multi{empty, populated}.Load(Arbitragelab)
	require.NoError(t, err)
	assert.Equal(t, Arbitragelab, lib.Name())
}

func TestMultiReportsEveryFailure(t *testing.T) {
	_, err := Multi{NewStaticLoader(), &PluginLoader{}}.Load(Mlfinlab)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered")
	assert.Contains(t, err.Error(), "no plugin found")
}

func TestMultiEmpty(t *testing.T) {
	_, err := Multi{}.Load(Mlfinlab)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no loaders configured")
}
