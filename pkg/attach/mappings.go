package attach

import (
	"encoding/json"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// PathMapping is the well-formed shape of a pathMappings entry.
type PathMapping struct {
	LocalRoot  *string `json:"localRoot,omitempty"`
	RemoteRoot *string `json:"remoteRoot,omitempty"`
}

// ExpandPathMappings clones the pathMappings array, expanding string
// localRoot and remoteRoot fields. Other keys, missing fields and non-object
// entries are left as they were. It returns nil when pathMappings is absent
// or not an array.
func ExpandPathMappings(cfg Config, home string) []json.RawMessage {
	mappings := cfg.Get(KeyPathMappings)
	if !mappings.IsArray() {
		return nil
	}

	out := make([]json.RawMessage, 0, len(mappings.Array()))
	mappings.ForEach(func(_, mapping gjson.Result) bool {
		out = append(out, json.RawMessage(expandMapping(mapping, home)))
		return true
	})
	return out
}

func expandMapping(mapping gjson.Result, home string) string {
	raw := mapping.Raw
	if !mapping.IsObject() {
		return raw
	}
	for _, key := range []string{keyLocalRoot, keyRemoteRoot} {
		value := mapping.Get(key)
		if value.Type != gjson.String {
			continue
		}
		updated, err := sjson.Set(raw, key, ExpandVariables(value.Str, home))
		if err != nil {
			continue
		}
		raw = updated
	}
	return raw
}

// DecodePathMappings parses expanded mappings into PathMapping values,
// skipping entries that are not objects.
func DecodePathMappings(raw []json.RawMessage) []PathMapping {
	var out []PathMapping
	for _, entry := range raw {
		value := gjson.ParseBytes(entry)
		if !value.IsObject() {
			continue
		}
		var m PathMapping
		if local := value.Get(keyLocalRoot); local.Type == gjson.String {
			s := local.Str
			m.LocalRoot = &s
		}
		if remote := value.Get(keyRemoteRoot); remote.Type == gjson.String {
			s := remote.Str
			m.RemoteRoot = &s
		}
		out = append(out, m)
	}
	return out
}
