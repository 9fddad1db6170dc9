package attach

import (
	"github.com/tidwall/gjson"
)

// Recognized configuration keys.
const (
	KeyRequest        = "request"
	KeyTarget         = "target"
	KeyProgram        = "program"
	KeyAttachCommands = "attachCommands"
	KeyPathMappings   = "pathMappings"
	KeyStopOnEntry    = "stopOnEntry"
	KeyEnv            = "env"
	KeyInitCommands   = "initCommands"

	keyLocalRoot  = "localRoot"
	keyRemoteRoot = "remoteRoot"
)

// Config is a read-only view over a raw debug configuration. Reads keep the
// source order of object keys.
type Config struct {
	root gjson.Result
}

// ParseConfig wraps raw JSON. Anything that is not a JSON object is treated
// as an empty configuration.
func ParseConfig(raw []byte) Config {
	return parseConfig(string(raw))
}

func parseConfig(raw string) Config {
	if !gjson.Valid(raw) {
		return Config{root: gjson.Parse("{}")}
	}
	root := gjson.Parse(raw)
	if !root.IsObject() {
		return Config{root: gjson.Parse("{}")}
	}
	return Config{root: root}
}

// Get returns the value stored under a top-level key. When the key is
// repeated the last occurrence wins.
func (c Config) Get(key string) gjson.Result {
	return lastValue(c.root, key)
}

func lastValue(obj gjson.Result, key string) gjson.Result {
	var found gjson.Result
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.Str == key {
			found = v
		}
		return true
	})
	return found
}

// Raw returns the configuration text.
func (c Config) Raw() string {
	return c.root.Raw
}

// strings returns the string entries of an array field in order; any other
// entry type is skipped.
func (c Config) strings(key string) []string {
	value := c.Get(key)
	if !value.IsArray() {
		return nil
	}
	var out []string
	value.ForEach(func(_, entry gjson.Result) bool {
		if entry.Type == gjson.String {
			out = append(out, entry.Str)
		}
		return true
	})
	return out
}
