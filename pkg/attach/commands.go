package attach

import (
	"fmt"
	"strings"

	"github.com/grovetools/remote-attach/errors"
	"github.com/tidwall/gjson"
)

const tcpScheme = "tcp://"

// BuildAttachCommands returns the attach sequence: an optional
// `target create`, the mandatory `gdb-remote`, then the user's
// attachCommands. The target must be created before the stub connection so
// symbols load only once the connection allows it.
func BuildAttachCommands(cfg Config, home string) ([]string, error) {
	addr, err := remoteAddress(cfg.Get(KeyTarget))
	if err != nil {
		return nil, err
	}

	var cmds []string
	if program := cfg.Get(KeyProgram); program.Type == gjson.String {
		cmds = append(cmds, fmt.Sprintf("target create %s", ExpandVariables(program.Str, home)))
	}
	cmds = append(cmds, fmt.Sprintf("gdb-remote %s", addr))
	cmds = append(cmds, cfg.strings(KeyAttachCommands)...)
	return cmds, nil
}

// remoteAddress strips the tcp:// scheme from target and returns host:port verbatim.
func remoteAddress(target gjson.Result) (string, error) {
	if target.Type != gjson.String {
		if target.Exists() {
			return "", errors.InvalidTarget(target.Raw)
		}
		return "", errors.InvalidTarget(nil)
	}
	addr, ok := strings.CutPrefix(target.Str, tcpScheme)
	if !ok {
		return "", errors.InvalidTarget(target.Str)
	}
	return addr, nil
}

// BuildInitCommands returns the user's initCommands followed by one
// `settings set target.source-map` per path mapping that has both a string
// remoteRoot and localRoot. Mappings are read before expansion.
func BuildInitCommands(cfg Config, home string) []string {
	cmds := cfg.strings(KeyInitCommands)

	mappings := cfg.Get(KeyPathMappings)
	if !mappings.IsArray() {
		return cmds
	}
	mappings.ForEach(func(_, mapping gjson.Result) bool {
		if !mapping.IsObject() {
			return true
		}
		remote, local := mapping.Get(keyRemoteRoot), mapping.Get(keyLocalRoot)
		if remote.Type == gjson.String && local.Type == gjson.String {
			cmds = append(cmds, fmt.Sprintf("settings set target.source-map %s %s",
				ExpandVariables(remote.Str, home), ExpandVariables(local.Str, home)))
		}
		return true
	})
	return cmds
}
