package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Home directory strategies.
const (
	HomeStrategyPath = "path"
	HomeStrategyOS   = "os"
)

// Defaults applied by SetDefaults.
const (
	DefaultAdapterCommand = "lldb-dap-20"
	DefaultDebugFile      = ".zed/debug.json"
	DefaultDebounceMs     = 200
)

// AdapterConfig selects the debug adapter executable the host launches.
type AdapterConfig struct {
	Command string   `yaml:"command,omitempty" toml:"command,omitempty"`
	Args    []string `yaml:"args,omitempty" toml:"args,omitempty"`
}

// HomeConfig controls how the home directory used for ${HOME}/${USER}
// expansion is found.
type HomeConfig struct {
	// Strategy is "path" (infer from /home/<user>/ in the workspace root) or
	// "os" (ask the operating system).
	Strategy string `yaml:"strategy,omitempty" toml:"strategy,omitempty"`
}

// WatchConfig tunes the watch command.
type WatchConfig struct {
	DebounceMs int `yaml:"debounce_ms,omitempty" toml:"debounce_ms,omitempty"`
}

// Config is the remote-attach tool configuration.
type Config struct {
	Adapter   AdapterConfig `yaml:"adapter,omitempty" toml:"adapter,omitempty"`
	Home      HomeConfig    `yaml:"home,omitempty" toml:"home,omitempty"`
	DebugFile string        `yaml:"debug_file,omitempty" toml:"debug_file,omitempty"`
	Watch     WatchConfig   `yaml:"watch,omitempty" toml:"watch,omitempty"`

	// Extensions captures all other top-level keys, e.g. `logging`.
	Extensions map[string]interface{} `yaml:",inline" toml:"-"`
}

// knownKeys are the top-level keys decoded into Config fields.
var knownKeys = map[string]bool{
	"adapter":    true,
	"home":       true,
	"debug_file": true,
	"watch":      true,
}

// SetDefaults sets default values for configuration
func (c *Config) SetDefaults() {
	if c.Adapter.Command == "" {
		c.Adapter.Command = DefaultAdapterCommand
	}
	if c.Home.Strategy == "" {
		c.Home.Strategy = HomeStrategyPath
	}
	if c.DebugFile == "" {
		c.DebugFile = DefaultDebugFile
	}
	if c.Watch.DebounceMs == 0 {
		c.Watch.DebounceMs = DefaultDebounceMs
	}
}

// UnmarshalExtension decodes the extension section named key into target,
// which must be a pointer. A missing section leaves target untouched.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}

// ConfigSource identifies the origin of a configuration layer.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceGlobal   ConfigSource = "global"
	SourceProject  ConfigSource = "project"
	SourceOverride ConfigSource = "override"
)

// OverrideSource holds a raw configuration from an override file and its path.
type OverrideSource struct {
	Path   string
	Config *Config
}

// LayeredConfig holds the raw configuration from each source file,
// as well as the final merged configuration, for analysis purposes.
type LayeredConfig struct {
	Default   *Config                 // Config with only default values applied.
	Global    *Config                 // Raw config from the global file.
	Project   *Config                 // Raw config from the project file.
	Overrides []OverrideSource        // Raw configs from override files, in order of application.
	Final     *Config                 // The fully merged and validated config.
	FilePaths map[ConfigSource]string // Maps sources to their file paths.
}
