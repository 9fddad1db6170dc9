package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grovetools/remote-attach/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtensions verifies that unknown top-level sections are kept as extensions
func TestExtensions(t *testing.T) {
	yamlContent := []byte(`
adapter:
  command: lldb-dap

logging:
  level: debug
  report_caller: true

monitoring:
  enabled: true
  interval: 30
`)

	cfg, err := LoadFromBytes(yamlContent)
	require.NoError(t, err)
	require.NotNil(t, cfg.Extensions)

	assert.Equal(t, "lldb-dap", cfg.Adapter.Command)
	assert.Contains(t, cfg.Extensions, "logging")
	assert.Contains(t, cfg.Extensions, "monitoring")
	assert.NotContains(t, cfg.Extensions, "adapter")

	type LogConfig struct {
		Level        string `yaml:"level"`
		ReportCaller bool   `yaml:"report_caller"`
	}
	var logCfg LogConfig
	require.NoError(t, cfg.UnmarshalExtension("logging", &logCfg))
	assert.Equal(t, "debug", logCfg.Level)
	assert.True(t, logCfg.ReportCaller)

	// Missing sections leave the target untouched
	untouched := LogConfig{Level: "warn"}
	require.NoError(t, cfg.UnmarshalExtension("absent", &untouched))
	assert.Equal(t, "warn", untouched.Level)
}

func TestDefaults(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(""))
	require.NoError(t, err)

	assert.Equal(t, DefaultAdapterCommand, cfg.Adapter.Command)
	assert.Empty(t, cfg.Adapter.Args)
	assert.Equal(t, HomeStrategyPath, cfg.Home.Strategy)
	assert.Equal(t, DefaultDebugFile, cfg.DebugFile)
	assert.Equal(t, DefaultDebounceMs, cfg.Watch.DebounceMs)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name  string
		yaml  string
		valid bool
	}{
		{"path strategy", "home:\n  strategy: path\n", true},
		{"os strategy", "home:\n  strategy: os\n", true},
		{"unknown strategy", "home:\n  strategy: ldap\n", false},
		{"blank command", "adapter:\n  command: \"  \"\n", false},
		{"negative debounce", "watch:\n  debounce_ms: -5\n", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFromBytes([]byte(tc.yaml))
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, errors.ErrCodeConfigValidation), "got %v", err)
			}
		})
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("RA_TEST_ADAPTER", "custom-dap")
	t.Setenv("RA_TEST_EMPTY", "")

	assert.Equal(t, "command: custom-dap", expandEnvVars("command: ${RA_TEST_ADAPTER}"))
	assert.Equal(t, "command: fallback", expandEnvVars("command: ${RA_TEST_EMPTY:-fallback}"))
	assert.Equal(t, "command: ", expandEnvVars("command: ${RA_TEST_UNSET_VARIABLE}"))
	assert.Equal(t, "no vars here", expandEnvVars("no vars here"))
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "remote-attach.toml")
	content := `
debug_file = "debug/remote.json"

[adapter]
command = "lldb-dap-19"
args = ["--repl-mode", "command"]

[home]
strategy = "os"

[logging]
level = "info"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "lldb-dap-19", cfg.Adapter.Command)
	assert.Equal(t, []string{"--repl-mode", "command"}, cfg.Adapter.Args)
	assert.Equal(t, HomeStrategyOS, cfg.Home.Strategy)
	assert.Equal(t, "debug/remote.json", cfg.DebugFile)
	assert.Contains(t, cfg.Extensions, "logging")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "remote-attach.yml")
	require.NoError(t, os.WriteFile(path, []byte("adapter: [unclosed"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigInvalid))
	toolErr, ok := err.(*errors.ToolError)
	require.True(t, ok)
	assert.Equal(t, path, toolErr.Details["path"])
}

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0755))
	configPath := filepath.Join(root, "a", ".remote-attach.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("debug_file: x.json\n"), 0644))

	found, err := FindConfigFile(nested)
	require.NoError(t, err)
	assert.Equal(t, configPath, found)
}
