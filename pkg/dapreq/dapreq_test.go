package dapreq

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-dap"
	"github.com/grovetools/remote-attach/pkg/attach"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func translated(t *testing.T, raw string) *attach.AdapterBinary {
	t.Helper()
	tr := attach.NewTranslator()
	tr.Classify(json.RawMessage(raw))
	bin, err := tr.Translate("/home/alice/proj")
	require.NoError(t, err)
	return bin
}

func TestNewRequest_Attach(t *testing.T) {
	bin := translated(t, `{"target":"tcp://1.2.3.4:1234","program":"$HOME/a.out"}`)

	msg, err := NewRequest(bin, 2)
	require.NoError(t, err)

	req, ok := msg.(*dap.AttachRequest)
	require.True(t, ok, "expected *dap.AttachRequest, got %T", msg)
	assert.Equal(t, "attach", req.Command)
	assert.Equal(t, 2, req.Seq)
	assert.Equal(t, "request", req.Type)
	assert.Equal(t, "target create /home/alice/a.out", gjson.GetBytes(req.Arguments, "attachCommands.0").String())
}

func TestNewRequest_LaunchKeepsAttachBundle(t *testing.T) {
	bin := translated(t, `{"request":"launch","target":"tcp://h:1"}`)

	msg, err := NewRequest(bin, 1)
	require.NoError(t, err)

	req, ok := msg.(*dap.LaunchRequest)
	require.True(t, ok, "expected *dap.LaunchRequest, got %T", msg)
	assert.Equal(t, "launch", req.Command)
	assert.Equal(t, "attach", gjson.GetBytes(req.Arguments, "request").String())
}

func TestWriteRead_RoundTrip(t *testing.T) {
	bin := translated(t, `{"target":"tcp://h:1","initCommands":["log enable gdb-remote packets"]}`)
	msg, err := NewRequest(bin, 7)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, msg))
	assert.True(t, strings.HasPrefix(buf.String(), "Content-Length: "))

	decoded, err := Read(&buf)
	require.NoError(t, err)

	args, ok := Arguments(decoded)
	require.True(t, ok)
	assert.Equal(t, "gdb-remote h:1", gjson.GetBytes(args, "attachCommands.0").String())
	assert.Equal(t, "log enable gdb-remote packets", gjson.GetBytes(args, "initCommands.0").String())

	_, ok = Arguments(&dap.ContinueRequest{})
	assert.False(t, ok)
}
