package attach

import (
	"os"
	"os/user"
	"strings"
)

const homePrefix = "/home/"

// HomeResolver derives the home directory used for variable expansion from
// the workspace root.
type HomeResolver interface {
	ResolveHome(workspaceRoot string) string
}

// PathHomeResolver infers the home directory from a conventional
// /home/<user>/... layout in the workspace path. It does not resolve
// symlinks or consult the user database.
type PathHomeResolver struct {
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(key string) (string, bool)
}

// ResolveHome returns /home/<segment> when the workspace root contains
// "/home/<segment>/", otherwise $HOME or "".
func (r PathHomeResolver) ResolveHome(workspaceRoot string) string {
	if start := strings.Index(workspaceRoot, homePrefix); start >= 0 {
		rest := workspaceRoot[start+len(homePrefix):]
		if end := strings.IndexByte(rest, '/'); end >= 0 {
			return homePrefix + rest[:end]
		}
	}
	return envHome(r.LookupEnv)
}

// OSHomeResolver asks the operating system for the current user's home
// directory and ignores the workspace root.
type OSHomeResolver struct {
	// Current defaults to user.Current.
	Current func() (*user.User, error)
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(key string) (string, bool)
}

// ResolveHome returns the current user's home directory, falling back to $HOME.
func (r OSHomeResolver) ResolveHome(string) string {
	current := r.Current
	if current == nil {
		current = user.Current
	}
	if u, err := current(); err == nil && u.HomeDir != "" {
		return u.HomeDir
	}
	return envHome(r.LookupEnv)
}

func envHome(lookup func(string) (string, bool)) string {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	home, _ := lookup("HOME")
	return home
}
