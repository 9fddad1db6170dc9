// Package dapreq frames a translated adapter configuration as the DAP
// request that starts the debug session.
package dapreq

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/go-dap"
	"github.com/grovetools/remote-attach/pkg/attach"
)

// NewRequest builds the session-start request for bin. The DAP command
// follows the classified request kind, while the arguments are always the
// attach bundle.
func NewRequest(bin *attach.AdapterBinary, seq int) (dap.Message, error) {
	args, err := json.Marshal(bin.Configuration)
	if err != nil {
		return nil, fmt.Errorf("marshal configuration: %w", err)
	}

	req := dap.Request{
		ProtocolMessage: dap.ProtocolMessage{Seq: seq, Type: "request"},
		Command:         bin.Request.String(),
	}
	if bin.Request == attach.Launch {
		return &dap.LaunchRequest{Request: req, Arguments: args}, nil
	}
	return &dap.AttachRequest{Request: req, Arguments: args}, nil
}

// Write emits msg with Content-Length framing.
func Write(w io.Writer, msg dap.Message) error {
	return dap.WriteProtocolMessage(w, msg)
}

// Read decodes one framed DAP message.
func Read(r io.Reader) (dap.Message, error) {
	return dap.ReadProtocolMessage(bufio.NewReader(r))
}

// Arguments returns the raw arguments of a session-start request.
func Arguments(msg dap.Message) (json.RawMessage, bool) {
	switch req := msg.(type) {
	case *dap.AttachRequest:
		return req.Arguments, true
	case *dap.LaunchRequest:
		return req.Arguments, true
	default:
		return nil, false
	}
}
