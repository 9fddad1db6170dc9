package cli

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// LoggerOption represents a function that configures a logger
type LoggerOption func(*logrus.Logger)

// WithOutput sets the logger output
func WithOutput(w io.Writer) LoggerOption {
	return func(l *logrus.Logger) {
		l.SetOutput(w)
	}
}

// WithLevel sets the log level
func WithLevel(level logrus.Level) LoggerOption {
	return func(l *logrus.Logger) {
		l.SetLevel(level)
	}
}

// WithFormatter sets the log formatter
func WithFormatter(formatter logrus.Formatter) LoggerOption {
	return func(l *logrus.Logger) {
		l.SetFormatter(formatter)
	}
}

// ApplyLoggerOptions configures the logger behind entry in place.
func ApplyLoggerOptions(entry *logrus.Entry, opts ...LoggerOption) *logrus.Entry {
	for _, opt := range opts {
		opt(entry.Logger)
	}
	return entry
}

// loggerOptions maps the standard flags onto logger options.
func loggerOptions(cmd *cobra.Command, logger *logrus.Logger) []LoggerOption {
	flags := GetOptions(cmd)

	var opts []LoggerOption
	if flags.Verbose {
		opts = append(opts, WithLevel(logrus.DebugLevel))
		if logger.Out == io.Discard {
			opts = append(opts, WithOutput(cmd.ErrOrStderr()))
		}
	}
	if flags.JSONOutput {
		opts = append(opts, WithFormatter(&logrus.JSONFormatter{}))
	}
	return opts
}
