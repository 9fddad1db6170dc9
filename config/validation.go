package config

import (
	"fmt"
	"strings"

	"github.com/grovetools/remote-attach/errors"
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Adapter.Command) == "" {
		return errors.New(errors.ErrCodeConfigValidation, "adapter.command cannot be empty")
	}

	switch c.Home.Strategy {
	case HomeStrategyPath, HomeStrategyOS:
	default:
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("invalid home.strategy '%s' (must be %s or %s)", c.Home.Strategy, HomeStrategyPath, HomeStrategyOS)).
			WithDetail("strategy", c.Home.Strategy)
	}

	if c.Watch.DebounceMs < 0 {
		return errors.New(errors.ErrCodeConfigValidation, "watch.debounce_ms cannot be negative").
			WithDetail("debounceMs", c.Watch.DebounceMs)
	}

	return nil
}
