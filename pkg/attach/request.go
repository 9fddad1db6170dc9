package attach

import (
	"github.com/tidwall/gjson"
)

// RequestKind is the session-initiation mode reported to the host.
type RequestKind string

const (
	Attach RequestKind = "attach"
	Launch RequestKind = "launch"
)

// String returns the DAP command name for the kind.
func (k RequestKind) String() string {
	if k == "" {
		return string(Attach)
	}
	return string(k)
}

// classifyRequest maps a `request` value to a RequestKind. Only the exact
// string "launch" selects Launch.
func classifyRequest(request gjson.Result) RequestKind {
	if request.Type == gjson.String && request.Str == string(Launch) {
		return Launch
	}
	return Attach
}
