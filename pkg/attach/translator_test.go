package attach

import (
	"encoding/json"
	"testing"

	"github.com/grovetools/remote-attach/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const workspace = "/home/alice/proj"

func translate(t *testing.T, raw string) (*AdapterBinary, error) {
	t.Helper()
	tr := NewTranslator()
	tr.Classify(json.RawMessage(raw))
	return tr.Translate(workspace)
}

func mustTranslate(t *testing.T, raw string) (*AdapterBinary, gjson.Result) {
	t.Helper()
	bin, err := translate(t, raw)
	require.NoError(t, err)
	data, err := json.Marshal(bin.Configuration)
	require.NoError(t, err)
	return bin, gjson.ParseBytes(data)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		raw      string
		expected RequestKind
	}{
		{raw: `{"request":"launch"}`, expected: Launch},
		{raw: `{"request":"attach"}`, expected: Attach},
		{raw: `{}`, expected: Attach},
		{raw: `{"request":"foo"}`, expected: Attach},
		{raw: `{"request":"Launch"}`, expected: Attach},
		{raw: `{"request":1}`, expected: Attach},
		{raw: `not json`, expected: Attach},
		{raw: `["launch"]`, expected: Attach},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var s Session
			assert.Equal(t, tt.expected, s.Classify(json.RawMessage(tt.raw)))
			assert.Equal(t, tt.expected, s.Kind())
		})
	}
}

func TestClassify_CopiesInput(t *testing.T) {
	raw := []byte(`{"target":"tcp://1.2.3.4:1234"}`)
	tr := NewTranslator()
	tr.Classify(raw)

	// Mutating the caller's buffer must not affect the cached configuration.
	copy(raw, []byte(`{"target":"udp://`))

	_, err := tr.Translate(workspace)
	require.NoError(t, err)
}

func TestClassify_OverwritesPreviousConfiguration(t *testing.T) {
	tr := NewTranslator()
	tr.Classify(json.RawMessage(`{"request":"launch","target":"tcp://a:1"}`))
	tr.Classify(json.RawMessage(`{"target":"tcp://b:2"}`))

	bin, err := tr.Translate(workspace)
	require.NoError(t, err)
	assert.Equal(t, Attach, bin.Request)
	assert.Equal(t, []string{"gdb-remote b:2"}, bin.Configuration.AttachCommands)
}

func TestTranslate_InvalidTarget(t *testing.T) {
	configs := map[string]string{
		"missing":         `{"program":"/bin/app"}`,
		"not a string":    `{"target":1234}`,
		"null":            `{"target":null}`,
		"wrong scheme":    `{"target":"udp://1.2.3.4:1234"}`,
		"no scheme":       `{"target":"1.2.3.4:1234"}`,
		"uppercase":       `{"target":"TCP://1.2.3.4:1234"}`,
		"empty object":    `{}`,
		"non-object json": `[1,2,3]`,
	}

	for name, raw := range configs {
		t.Run(name, func(t *testing.T) {
			bin, err := translate(t, raw)
			require.Error(t, err)
			assert.Nil(t, bin)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidTarget))
			assert.Contains(t, err.Error(), "target")
			assert.Contains(t, err.Error(), "tcp://HOST:PORT")
		})
	}
}

func TestTranslate_WithoutClassify(t *testing.T) {
	_, err := NewTranslator().Translate(workspace)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidTarget, errors.GetCode(err))
}

func TestTranslate_AttachCommands(t *testing.T) {
	bin, _ := mustTranslate(t, `{"target":"tcp://1.2.3.4:1234","program":"${HOME}/a.out"}`)
	assert.Equal(t, []string{
		"target create /home/alice/a.out",
		"gdb-remote 1.2.3.4:1234",
	}, bin.Configuration.AttachCommands)
}

func TestTranslate_UserAttachCommandsFollowRemoteConnect(t *testing.T) {
	bin, _ := mustTranslate(t, `{
		"target": "tcp://1.2.3.4:1234",
		"program": "${HOME}/a.out",
		"attachCommands": ["b x", 42, {"cmd":"ignored"}, "continue"]
	}`)
	assert.Equal(t, []string{
		"target create /home/alice/a.out",
		"gdb-remote 1.2.3.4:1234",
		"b x",
		"continue",
	}, bin.Configuration.AttachCommands)
}

func TestTranslate_TargetAddressIsVerbatim(t *testing.T) {
	bin, _ := mustTranslate(t, `{"target":"tcp://[::1]:3333/extra","program":7,"attachCommands":"b main"}`)
	assert.Equal(t, []string{"gdb-remote [::1]:3333/extra"}, bin.Configuration.AttachCommands)
}

func TestTranslate_PathMappings(t *testing.T) {
	_, out := mustTranslate(t, `{
		"target": "tcp://1.2.3.4:1234",
		"pathMappings": [{"localRoot":"${HOME}/src","remoteRoot":"/remote/src"}]
	}`)

	mappings := out.Get("pathMappings").Array()
	require.Len(t, mappings, 1)
	assert.Equal(t, "/home/alice/src", mappings[0].Get("localRoot").String())
	assert.Equal(t, "/remote/src", mappings[0].Get("remoteRoot").String())

	var inits []string
	for _, c := range out.Get("initCommands").Array() {
		inits = append(inits, c.String())
	}
	assert.Equal(t, []string{"settings set target.source-map /remote/src /home/alice/src"}, inits)
}

func TestTranslate_PathMappingsCloneSemantics(t *testing.T) {
	bin, out := mustTranslate(t, `{
		"target": "tcp://h:1",
		"initCommands": ["platform select remote-linux", false],
		"pathMappings": [
			{"localRoot":"$HOME/a","label":"keep"},
			{"remoteRoot":"/r/$USER"},
			"not-a-mapping",
			{"localRoot":5,"remoteRoot":"/r"},
			{"remoteRoot":"/srv/$USER","localRoot":"${HOME}/b"}
		]
	}`)

	mappings := out.Get("pathMappings").Array()
	require.Len(t, mappings, 5)
	assert.Equal(t, "/home/alice/a", mappings[0].Get("localRoot").String())
	assert.Equal(t, "keep", mappings[0].Get("label").String())
	assert.False(t, mappings[0].Get("remoteRoot").Exists())
	assert.Equal(t, "/r/alice", mappings[1].Get("remoteRoot").String())
	assert.False(t, mappings[1].Get("localRoot").Exists())
	assert.Equal(t, "not-a-mapping", mappings[2].String())
	assert.Equal(t, int64(5), mappings[3].Get("localRoot").Int())

	assert.Equal(t, []string{
		"platform select remote-linux",
		"settings set target.source-map /srv/alice /home/alice/b",
	}, bin.Configuration.InitCommands)

	decoded := DecodePathMappings(bin.Configuration.PathMappings)
	require.Len(t, decoded, 4)
	require.NotNil(t, decoded[0].LocalRoot)
	assert.Equal(t, "/home/alice/a", *decoded[0].LocalRoot)
	assert.Nil(t, decoded[0].RemoteRoot)
}

func TestTranslate_EmptyPathMappingsArrayIsKept(t *testing.T) {
	_, out := mustTranslate(t, `{"target":"tcp://h:1","pathMappings":[]}`)
	assert.True(t, out.Get("pathMappings").IsArray())
	assert.False(t, out.Get("initCommands").Exists())
}

func TestTranslate_OmitsInitCommandsWhenEmpty(t *testing.T) {
	_, out := mustTranslate(t, `{"target":"tcp://1.2.3.4:1234"}`)
	assert.False(t, out.Get("initCommands").Exists())
	assert.False(t, out.Get("pathMappings").Exists())
	assert.False(t, out.Get("stopOnEntry").Exists())
	assert.Equal(t, "attach", out.Get("request").String())
}

func TestTranslate_StopOnEntryPassThrough(t *testing.T) {
	for _, raw := range []string{`true`, `false`, `null`, `"yes"`, `{"a":[1,2]}`} {
		t.Run(raw, func(t *testing.T) {
			bin, out := mustTranslate(t, `{"target":"tcp://h:1","stopOnEntry":`+raw+`}`)
			assert.JSONEq(t, raw, string(bin.Configuration.StopOnEntry))
			assert.JSONEq(t, raw, out.Get("stopOnEntry").Raw)
		})
	}
}

func TestTranslate_Env(t *testing.T) {
	bin, _ := mustTranslate(t, `{"target":"tcp://h:1"}`)
	assert.NotNil(t, bin.Env)
	assert.Empty(t, bin.Env)

	bin, _ = mustTranslate(t, `{"target":"tcp://h:1","env":{"X":"1","Y":2}}`)
	assert.Equal(t, []EnvVar{{Name: "X", Value: "1"}, {Name: "Y", Value: "2"}}, bin.Env)
}

func TestTranslate_EnvKeepsSourceOrder(t *testing.T) {
	bin, _ := mustTranslate(t, `{
		"target": "tcp://h:1",
		"env": {"ZETA": "z", "ALPHA": {"nested": [1, 2]}, "MID": true, "NIL": null}
	}`)
	assert.Equal(t, []EnvVar{
		{Name: "ZETA", Value: "z"},
		{Name: "ALPHA", Value: `{"nested":[1,2]}`},
		{Name: "MID", Value: "true"},
		{Name: "NIL", Value: "null"},
	}, bin.Env)
}

func TestTranslate_DuplicateKeysLastWins(t *testing.T) {
	bin, _ := mustTranslate(t, `{
		"request": "attach",
		"target": "tcp://old:1",
		"program": "/bin/old",
		"target": "tcp://new:2",
		"program": "/bin/new",
		"request": "launch"
	}`)
	assert.Equal(t, Launch, bin.Request)
	assert.Equal(t, []string{"target create /bin/new", "gdb-remote new:2"}, bin.Configuration.AttachCommands)
}

func TestTranslate_EnvDuplicatesAndNumberText(t *testing.T) {
	bin, _ := mustTranslate(t, `{
		"target": "tcp://h:1",
		"env": {"A": 1e2, "B": 1.0, "A": "again", "C": -0}
	}`)
	assert.Equal(t, []EnvVar{
		{Name: "A", Value: "again"},
		{Name: "B", Value: "1.0"},
		{Name: "C", Value: "-0"},
	}, bin.Env)

	bin, _ = mustTranslate(t, `{"target":"tcp://h:1","env":{"N":1e2}}`)
	assert.Equal(t, []EnvVar{{Name: "N", Value: "1e2"}}, bin.Env)
}

func TestTranslate_RequestFramingIsAlwaysAttach(t *testing.T) {
	bin, out := mustTranslate(t, `{"request":"launch","target":"tcp://h:1","program":"/bin/app"}`)
	assert.Equal(t, Launch, bin.Request)
	assert.Equal(t, "attach", out.Get("request").String())
	assert.False(t, out.Get("program").Exists())
}

func TestTranslate_AdapterBinary(t *testing.T) {
	bin, _ := mustTranslate(t, `{"target":"tcp://h:1"}`)
	assert.Equal(t, DefaultAdapterCommand, bin.Command)
	assert.NotNil(t, bin.Arguments)
	assert.Empty(t, bin.Arguments)

	data, err := json.Marshal(bin)
	require.NoError(t, err)
	doc := gjson.ParseBytes(data)
	assert.Equal(t, "lldb-dap-20", doc.Get("command").String())
	assert.True(t, doc.Get("arguments").IsArray())
	assert.Equal(t, "attach", doc.Get("request").String())
	assert.Equal(t, "gdb-remote h:1", doc.Get("configuration.attachCommands.0").String())
	assert.False(t, doc.Get("cwd").Exists())
}

func TestTranslate_Options(t *testing.T) {
	tr := NewTranslator(
		WithAdapterCommand("lldb-dap", "--repl-mode=command"),
		WithHomeResolver(PathHomeResolver{LookupEnv: envWith(map[string]string{"HOME": "/home/eve"})}),
	)
	tr.Classify(json.RawMessage(`{"target":"tcp://h:1","program":"$HOME/bin/app"}`))

	bin, err := tr.Translate("/srv/proj")
	require.NoError(t, err)
	assert.Equal(t, "lldb-dap", bin.Command)
	assert.Equal(t, []string{"--repl-mode=command"}, bin.Arguments)
	assert.Equal(t, "target create /home/eve/bin/app", bin.Configuration.AttachCommands[0])
}

func TestBundle_KeyOrder(t *testing.T) {
	b := Bundle{
		AttachCommands: []string{"gdb-remote h:1"},
		InitCommands:   []string{"settings set target.source-map /r /l"},
		PathMappings:   []json.RawMessage{json.RawMessage(`{ "localRoot" : "/l", "remoteRoot": "/r" }`)},
		StopOnEntry:    json.RawMessage(`true`),
	}
	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t,
		`{"request":"attach","attachCommands":["gdb-remote h:1"],"stopOnEntry":true,`+
			`"pathMappings":[{"localRoot":"/l","remoteRoot":"/r"}],`+
			`"initCommands":["settings set target.source-map /r /l"]}`,
		string(data))
}
