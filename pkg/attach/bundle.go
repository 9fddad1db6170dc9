package attach

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/sjson"
)

// DefaultAdapterCommand is the lldb-dap executable launched by the host.
const DefaultAdapterCommand = "lldb-dap-20"

// Bundle is the configuration handed to lldb-dap. Its request is always
// "attach"; the session's classification is reported on AdapterBinary.
type Bundle struct {
	AttachCommands []string
	InitCommands   []string
	// PathMappings is nil when the source had no pathMappings array.
	PathMappings []json.RawMessage
	// StopOnEntry is passed through untouched; nil when absent.
	StopOnEntry json.RawMessage
}

// Request returns the request field of the bundle.
func (b Bundle) Request() string {
	return string(Attach)
}

// MarshalJSON renders the bundle with keys in a fixed order and omits
// initCommands when there are none.
func (b Bundle) MarshalJSON() ([]byte, error) {
	out := []byte(`{}`)
	var err error

	set := func(key string, value interface{}) {
		if err != nil {
			return
		}
		var data []byte
		if data, err = json.Marshal(value); err != nil {
			err = fmt.Errorf("marshal %s: %w", key, err)
			return
		}
		out, err = sjson.SetRawBytes(out, key, data)
	}

	set(KeyRequest, b.Request())
	attachCommands := b.AttachCommands
	if attachCommands == nil {
		attachCommands = []string{}
	}
	set(KeyAttachCommands, attachCommands)
	if b.StopOnEntry != nil {
		set(KeyStopOnEntry, b.StopOnEntry)
	}
	if b.PathMappings != nil {
		set(KeyPathMappings, b.PathMappings)
	}
	if len(b.InitCommands) > 0 {
		set(KeyInitCommands, b.InitCommands)
	}

	if err != nil {
		return nil, err
	}
	return out, nil
}

// AdapterBinary describes how the host should start lldb-dap and what to
// send it.
type AdapterBinary struct {
	Command   string   `json:"command"`
	Arguments []string `json:"arguments"`
	// Cwd is left empty so the host uses its default.
	Cwd           string      `json:"cwd,omitempty"`
	Env           []EnvVar    `json:"envs"`
	Request       RequestKind `json:"request"`
	Configuration Bundle      `json:"configuration"`
}

// ConfigurationJSON returns the serialized bundle.
func (b *AdapterBinary) ConfigurationJSON() (string, error) {
	data, err := json.Marshal(b.Configuration)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
