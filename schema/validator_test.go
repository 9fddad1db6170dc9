package schema

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/grovetools/remote-attach/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDebugConfigSchema(t *testing.T) {
	data, err := GenerateDebugConfigSchema()
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "Remote Attach Debug Configuration", doc["title"])
	assert.Equal(t, []interface{}{"target"}, doc["required"])

	props, ok := doc["properties"].(map[string]interface{})
	require.True(t, ok)
	for _, key := range []string{"request", "target", "program", "attachCommands", "initCommands", "pathMappings", "stopOnEntry", "env"} {
		assert.Contains(t, props, key)
	}
}

func TestValidator(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{
			name: "complete configuration",
			raw: `{"label":"stub","request":"attach","target":"tcp://1.2.3.4:1234","program":"$HOME/a.out",
				"attachCommands":["b main"],"pathMappings":[{"localRoot":"/l","remoteRoot":"/r"}],
				"stopOnEntry":true,"env":{"X":"1","Y":2},"customEditorKey":{"any":"thing"}}`,
		},
		{name: "minimal", raw: `{"target":"tcp://h:1"}`},
		{name: "missing target", raw: `{"program":"/bin/app"}`, wantErr: "target"},
		{name: "wrong scheme", raw: `{"target":"udp://h:1"}`, wantErr: "/target"},
		{name: "non-string attach command", raw: `{"target":"tcp://h:1","attachCommands":["ok",3]}`, wantErr: "/attachCommands/1"},
		{name: "unknown request", raw: `{"target":"tcp://h:1","request":"restart"}`, wantErr: "/request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate([]byte(tt.raw))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeSchemaViolation))
			violations := Violations(err)
			require.NotEmpty(t, violations)
			assert.Contains(t, strings.Join(violations, "\n"), tt.wantErr)
		})
	}
}

func TestValidator_InvalidJSON(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	err = v.Validate([]byte(`{"target":`))
	assert.True(t, errors.Is(err, errors.ErrCodeDebugConfigInvalid))
	assert.Nil(t, Violations(err))
}
