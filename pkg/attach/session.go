package attach

import (
	"encoding/json"
)

// Session caches the most recently classified configuration. Classify
// overwrites it; Translate only reads it.
type Session struct {
	configJSON string
	kind       RequestKind
	classified bool
}

// Classify records a verbatim copy of raw and returns its request kind.
// It never fails: invalid or non-object input classifies as Attach.
func (s *Session) Classify(raw json.RawMessage) RequestKind {
	s.configJSON = string(raw)
	s.kind = classifyRequest(parseConfig(s.configJSON).Get("request"))
	s.classified = true
	return s.kind
}

// Config returns a view over the cached configuration, or an empty one if
// Classify was never called.
func (s *Session) Config() Config {
	if !s.classified {
		return parseConfig("")
	}
	return parseConfig(s.configJSON)
}

// Kind returns the last classification, defaulting to Attach.
func (s *Session) Kind() RequestKind {
	if !s.classified {
		return Attach
	}
	return s.kind
}

// Classified reports whether Classify has been called.
func (s *Session) Classified() bool {
	return s.classified
}
