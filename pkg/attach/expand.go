package attach

import (
	"strings"
)

// ExpandVariables substitutes ${HOME}/$HOME with home and, when home looks
// like /home/<user>, ${USER}/$USER with <user>. Replacement is literal and
// sequential; an empty home leaves path unchanged.
func ExpandVariables(path, home string) string {
	if home == "" {
		return path
	}

	result := strings.ReplaceAll(path, "${HOME}", home)
	result = strings.ReplaceAll(result, "$HOME", home)

	if name, ok := strings.CutPrefix(home, homePrefix); ok {
		result = strings.ReplaceAll(result, "${USER}", name)
		result = strings.ReplaceAll(result, "$USER", name)
	}

	return result
}
