package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/remote-attach/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a new error handler writing to stderr
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle prints a message and a hint for err based on its code, then
// returns err unchanged.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}
	toolErr, _ := err.(*errors.ToolError)

	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidTarget:
		fmt.Fprintf(h.Out, "❌ %s\n", message(err, toolErr))
		fmt.Fprintf(h.Out, "Add a \"target\" such as \"tcp://192.168.1.20:1234\" to the debug configuration.\n")

	case errors.ErrCodeDebugConfigNotFound:
		fmt.Fprintf(h.Out, "❌ %s\n", message(err, toolErr))
		if toolErr != nil {
			if labels, ok := toolErr.Details["available"].([]string); ok && len(labels) > 0 {
				fmt.Fprintf(h.Out, "Available configurations:\n")
				for _, l := range labels {
					fmt.Fprintf(h.Out, "  - %s\n", l)
				}
			}
		}

	case errors.ErrCodeSchemaViolation:
		fmt.Fprintf(h.Out, "❌ %s\n", message(err, toolErr))
		if toolErr != nil {
			if violations, ok := toolErr.Details["violations"].([]string); ok {
				for _, v := range violations {
					fmt.Fprintf(h.Out, "  %s\n", v)
				}
			}
		}

	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(h.Out, "❌ %s\n", message(err, toolErr))
		fmt.Fprintf(h.Out, "Check the --config path, or omit it to use the layered configuration.\n")

	case errors.ErrCodeConfigInvalid, errors.ErrCodeConfigValidation:
		fmt.Fprintf(h.Out, "❌ %s\n", message(err, toolErr))
		fmt.Fprintf(h.Out, "Run 'remote-attach config-layers' to see where each setting comes from.\n")

	default:
		fmt.Fprintf(h.Out, "❌ Error: %v\n", err)
	}

	if h.Verbose && toolErr != nil {
		fmt.Fprintf(h.Out, "\nError details:\n%s\n", toolErr.ToJSON())
	}
	return err
}

func message(err error, toolErr *errors.ToolError) string {
	if toolErr == nil {
		return err.Error()
	}
	if toolErr.Cause != nil {
		return fmt.Sprintf("%s: %v", toolErr.Message, toolErr.Cause)
	}
	return toolErr.Message
}
