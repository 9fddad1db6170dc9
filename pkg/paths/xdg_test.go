package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPortableHome(t *testing.T) {
	root := t.TempDir()
	t.Setenv(HomeEnv, root)
	t.Setenv("XDG_CONFIG_HOME", "/ignored")

	assert.Equal(t, filepath.Join(root, "config"), ConfigDir())
	assert.Equal(t, filepath.Join(root, "state"), StateDir())
	assert.Equal(t, filepath.Join(root, "cache"), CacheDir())
	assert.Equal(t, filepath.Join(root, "state", "logs"), LogDir())
}

func TestXDGOverrides(t *testing.T) {
	t.Setenv(HomeEnv, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_STATE_HOME", "/xdg/state")

	assert.Equal(t, filepath.Join("/xdg/config", AppName), ConfigDir())
	assert.Equal(t, filepath.Join("/xdg/state", AppName), StateDir())
}

func TestHomeFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv(HomeEnv, "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_CACHE_HOME", "")
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, ".config", AppName), ConfigDir())
	assert.Equal(t, filepath.Join(home, ".cache", AppName), CacheDir())
}

func TestEnsureDirs(t *testing.T) {
	root := t.TempDir()
	t.Setenv(HomeEnv, root)

	assert.NoError(t, EnsureDirs())
	assert.DirExists(t, ConfigDir())
	assert.DirExists(t, StateDir())
	assert.DirExists(t, CacheDir())
}
