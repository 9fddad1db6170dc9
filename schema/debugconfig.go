package schema

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// DebugConfiguration documents the keys the translator recognizes in a debug
// configuration. It exists only to generate the JSON Schema; translation
// itself reads the raw JSON and tolerates anything but a bad target.
type DebugConfiguration struct {
	Label          string                 `json:"label,omitempty" jsonschema:"description=Name shown by the editor for this configuration"`
	Adapter        string                 `json:"adapter,omitempty" jsonschema:"description=Debug adapter name registered by the editor"`
	Request        string                 `json:"request,omitempty" jsonschema:"enum=attach,enum=launch,description=Session start mode reported to the editor. The adapter always receives an attach sequence."`
	Target         string                 `json:"target" jsonschema:"required,pattern=^tcp://.+,description=gdb-remote stub address as tcp://HOST:PORT"`
	Program        string                 `json:"program,omitempty" jsonschema:"description=Executable loaded with 'target create' before connecting. Supports ${HOME} and ${USER}."`
	AttachCommands []string               `json:"attachCommands,omitempty" jsonschema:"description=Commands run after the gdb-remote connection"`
	InitCommands   []string               `json:"initCommands,omitempty" jsonschema:"description=Commands run before attaching. Source-map settings are appended."`
	PathMappings   []PathMapping          `json:"pathMappings,omitempty" jsonschema:"description=Remote to local source tree mappings"`
	StopOnEntry    interface{}            `json:"stopOnEntry,omitempty" jsonschema:"description=Forwarded to the adapter unchanged"`
	Env            map[string]interface{} `json:"env,omitempty" jsonschema:"description=Environment for the adapter process. Non-string values are sent as JSON text."`
}

// PathMapping is one entry of pathMappings.
type PathMapping struct {
	LocalRoot  string `json:"localRoot,omitempty" jsonschema:"description=Source root on this machine"`
	RemoteRoot string `json:"remoteRoot,omitempty" jsonschema:"description=Source root as recorded in the remote binary"`
}

// GenerateDebugConfigSchema reflects DebugConfiguration into a JSON Schema.
// Unknown keys stay allowed because editors add their own.
func GenerateDebugConfigSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties:  true,
		ExpandedStruct:             true,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
		Anonymous:                  true,
	}

	s := r.Reflect(&DebugConfiguration{})
	s.Title = "Remote Attach Debug Configuration"
	s.Description = "Editor debug configuration translated into an lldb-dap gdb-remote attach sequence."

	return json.MarshalIndent(s, "", "  ")
}
