// Package paths resolves the directories remote-attach reads and writes.
//
// Resolution order:
// 1. REMOTE_ATTACH_HOME (portable root) → $REMOTE_ATTACH_HOME/{config,state,cache}
// 2. XDG env vars → $XDG_*_HOME/remote-attach
// 3. Platform defaults → ~/.config/remote-attach, ~/.local/state/remote-attach, etc.
package paths

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under each XDG base directory.
const AppName = "remote-attach"

// HomeEnv names the portable root override.
const HomeEnv = "REMOTE_ATTACH_HOME"

// baseDir resolves one XDG base directory. portable is the subdirectory used
// under HomeEnv, xdgVar the XDG variable, and fallback the path below the
// user's home directory.
func baseDir(portable, xdgVar string, fallback ...string) string {
	if root := os.Getenv(HomeEnv); root != "" {
		return filepath.Join(root, portable)
	}
	if dir := os.Getenv(xdgVar); dir != "" {
		return dir
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(append([]string{homeDir}, fallback...)...)
	}
	return ""
}

func appDir(base string) string {
	if base == "" {
		return ""
	}
	if os.Getenv(HomeEnv) != "" {
		return base
	}
	return filepath.Join(base, AppName)
}

// ConfigDir returns the directory holding the global config.yml.
func ConfigDir() string {
	return appDir(baseDir("config", "XDG_CONFIG_HOME", ".config"))
}

// StateDir returns the directory for runtime state such as logs.
func StateDir() string {
	return appDir(baseDir("state", "XDG_STATE_HOME", ".local", "state"))
}

// CacheDir returns the directory for regenerable data.
func CacheDir() string {
	return appDir(baseDir("cache", "XDG_CACHE_HOME", ".cache"))
}

// LogDir returns the default directory for log files.
func LogDir() string {
	state := StateDir()
	if state == "" {
		return ""
	}
	return filepath.Join(state, "logs")
}

// EnsureDirs creates the config, state and cache directories if they don't exist.
func EnsureDirs() error {
	for _, dir := range []string{ConfigDir(), StateDir(), CacheDir()} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
