package errors

import (
	"fmt"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *ToolError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *ToolError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// InvalidTarget creates the error raised when a debug configuration has no
// usable `target`. It is the only fatal condition of a translation.
func InvalidTarget(value interface{}) *ToolError {
	err := New(ErrCodeInvalidTarget, "missing or invalid `target` (expected tcp://HOST:PORT)").
		WithDetail("field", "target").
		WithDetail("expected", "tcp://HOST:PORT")
	if value != nil {
		err = err.WithDetail("value", value)
	}
	return err
}

// DebugConfigNotFound creates an error for a debug file or label that cannot be found
func DebugConfigNotFound(path, label string) *ToolError {
	msg := fmt.Sprintf("debug configuration not found: %s", path)
	if label != "" {
		msg = fmt.Sprintf("debug configuration '%s' not found in %s", label, path)
	}
	err := New(ErrCodeDebugConfigNotFound, msg).WithDetail("path", path)
	if label != "" {
		err = err.WithDetail("label", label)
	}
	return err
}

// DebugConfigInvalid creates an error for a debug file that is not valid JSON
func DebugConfigInvalid(path string, reason string) *ToolError {
	return New(ErrCodeDebugConfigInvalid, fmt.Sprintf("invalid debug configuration in %s: %s", path, reason)).
		WithDetail("path", path)
}

// SchemaViolation creates an error listing schema violations of a debug configuration
func SchemaViolation(violations []string) *ToolError {
	return New(ErrCodeSchemaViolation,
		fmt.Sprintf("debug configuration does not match schema (%d issue(s))", len(violations))).
		WithDetail("violations", violations)
}
