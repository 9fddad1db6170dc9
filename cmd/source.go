package cmd

import (
	"io"
	"os"
	"path/filepath"

	"github.com/grovetools/remote-attach/cli"
	"github.com/grovetools/remote-attach/config"
	"github.com/grovetools/remote-attach/errors"
	"github.com/grovetools/remote-attach/pkg/attach"
	"github.com/grovetools/remote-attach/pkg/debugfile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// stdinFile is the --file value that reads one configuration from stdin.
const stdinFile = "-"

// sourceFlags select a debug configuration.
type sourceFlags struct {
	file      string
	label     string
	workspace string
}

func (f *sourceFlags) register(cmd *cobra.Command, withWorkspace bool) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Debug configuration file, or - for stdin (default: debug_file from config)")
	cmd.Flags().StringVarP(&f.label, "label", "l", "", "Label of the configuration to use (default: the first)")
	if withWorkspace {
		cmd.Flags().StringVarP(&f.workspace, "workspace", "w", "", "Workspace root used for home inference (default: current directory)")
	}
}

// session is everything a command needs to act on one debug configuration.
type session struct {
	cfg       *config.Config
	logger    *logrus.Entry
	workspace string
	file      string
	entry     debugfile.Entry
}

// loadSession resolves the workspace, loads the tool config from it and
// selects the debug configuration.
func loadSession(cmd *cobra.Command, flags sourceFlags, component string) (*session, error) {
	workspace := flags.workspace
	if workspace == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to get current directory")
		}
		workspace = cwd
	}
	workspace, err := filepath.Abs(workspace)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid workspace path").
			WithDetail("workspace", flags.workspace)
	}

	cfg, err := cli.LoadConfig(cmd, workspace)
	if err != nil {
		return nil, err
	}
	logger := cli.GetLogger(cmd, component, cfg)

	file := flags.file
	if file == "" {
		file = cfg.DebugFile
	}
	if file != stdinFile && !filepath.IsAbs(file) {
		file = filepath.Join(workspace, file)
	}

	entries, err := readEntries(cmd.InOrStdin(), file)
	if err != nil {
		return nil, err
	}
	entry, err := debugfile.Select(entries, file, flags.label)
	if err != nil {
		if toolErr, ok := err.(*errors.ToolError); ok && len(entries) > 0 {
			return nil, toolErr.WithDetail("available", debugfile.Labels(entries))
		}
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"file":      file,
		"label":     entry.Label,
		"workspace": workspace,
	}).Debug("Selected debug configuration")

	return &session{
		cfg:       cfg,
		logger:    logger,
		workspace: workspace,
		file:      file,
		entry:     entry,
	}, nil
}

func readEntries(stdin io.Reader, file string) ([]debugfile.Entry, error) {
	if file != stdinFile {
		return debugfile.Load(file)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "failed to read stdin")
	}
	entries, err := debugfile.Parse(data)
	if err != nil {
		reason := err.Error()
		if toolErr, ok := err.(*errors.ToolError); ok {
			reason = toolErr.Message
		}
		return nil, errors.DebugConfigInvalid("<stdin>", reason)
	}
	return entries, nil
}

// homeResolver maps home.strategy to a resolver.
func homeResolver(strategy string) attach.HomeResolver {
	if strategy == config.HomeStrategyOS {
		return attach.OSHomeResolver{}
	}
	return attach.PathHomeResolver{}
}

// newTranslator builds a translator configured from the tool config.
func (s *session) newTranslator() *attach.Translator {
	return attach.NewTranslator(
		attach.WithHomeResolver(homeResolver(s.cfg.Home.Strategy)),
		attach.WithAdapterCommand(s.cfg.Adapter.Command, s.cfg.Adapter.Args...),
		attach.WithLogger(s.logger),
	)
}

// translate classifies and translates the selected entry.
func (s *session) translate() (*attach.AdapterBinary, error) {
	t := s.newTranslator()
	t.Classify(s.entry.Raw)
	return t.Translate(s.workspace)
}
