// Package debugfile reads editor debug configuration files. A file holds
// either one configuration object or an array of them, and may contain
// JSONC comments and trailing commas.
package debugfile

import (
	"encoding/json"
	"os"

	"github.com/grovetools/remote-attach/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
)

// DefaultPath is the debug file location relative to a workspace root.
const DefaultPath = ".zed/debug.json"

// Entry is a single debug configuration taken from a file.
type Entry struct {
	Label   string
	Adapter string
	Raw     json.RawMessage
}

// Load reads and parses the debug file at path.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.DebugConfigNotFound(path, "")
		}
		return nil, errors.Wrap(err, errors.ErrCodeDebugConfigInvalid, "failed to read debug file").
			WithDetail("path", path)
	}

	entries, err := Parse(data)
	if err != nil {
		reason := err.Error()
		if toolErr, ok := err.(*errors.ToolError); ok {
			reason = toolErr.Message
		}
		return nil, errors.DebugConfigInvalid(path, reason)
	}
	return entries, nil
}

// Parse decodes debug file content into entries, in file order.
func Parse(data []byte) ([]Entry, error) {
	clean := jsonc.ToJSON(data)
	if !gjson.ValidBytes(clean) {
		return nil, errors.New(errors.ErrCodeDebugConfigInvalid, "content is not valid JSON")
	}

	root := gjson.ParseBytes(clean)
	switch {
	case root.IsObject():
		return []Entry{newEntry(root)}, nil
	case root.IsArray():
		entries := []Entry{}
		root.ForEach(func(_, value gjson.Result) bool {
			if value.IsObject() {
				entries = append(entries, newEntry(value))
			}
			return true
		})
		return entries, nil
	default:
		return nil, errors.New(errors.ErrCodeDebugConfigInvalid, "expected a configuration object or an array of them")
	}
}

func newEntry(value gjson.Result) Entry {
	return Entry{
		Label:   value.Get("label").String(),
		Adapter: value.Get("adapter").String(),
		Raw:     json.RawMessage(value.Raw),
	}
}

// Select returns the entry whose label matches, or the first entry when
// label is empty.
func Select(entries []Entry, path, label string) (Entry, error) {
	if len(entries) == 0 {
		return Entry{}, errors.DebugConfigNotFound(path, label)
	}
	if label == "" {
		return entries[0], nil
	}
	for _, e := range entries {
		if e.Label == label {
			return e, nil
		}
	}
	return Entry{}, errors.DebugConfigNotFound(path, label)
}

// Labels lists the labels of entries in order.
func Labels(entries []Entry) []string {
	labels := make([]string, 0, len(entries))
	for _, e := range entries {
		labels = append(labels, e.Label)
	}
	return labels
}
