package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/grovetools/remote-attach/errors"
	"github.com/grovetools/remote-attach/logging"
	"github.com/grovetools/remote-attach/pkg/watch"
	"github.com/spf13/cobra"
)

func NewWatchCmd() *cobra.Command {
	var flags sourceFlags

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-translate a debug configuration every time its file changes",
		Long: `Translate a debug configuration, then watch its file and print a fresh
adapter binary after every change. Rejected configurations are reported
and watching continues. Stop with Ctrl-C.

Examples:
  remote-attach watch --label remote-server`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.file == stdinFile {
				return errors.New(errors.ErrCodeInvalidInput, "watch needs a debug file, not stdin")
			}
			s, err := loadSession(cmd, flags, "watch")
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			pretty := logging.NewPrettyLogger().WithWriter(cmd.ErrOrStderr())
			var mu sync.Mutex
			emit := func() {
				mu.Lock()
				defer mu.Unlock()

				current, err := loadSession(cmd, flags, "watch")
				if err != nil {
					pretty.ErrorPretty("Failed to load debug configuration", err)
					return
				}
				name := current.entry.Label
				if name == "" {
					name = current.file
				}
				bin, err := current.translate()
				if err != nil {
					pretty.WarnPretty(fmt.Sprintf("%s rejected: %v", name, err))
					return
				}
				if err := writeBinary(cmd.OutOrStdout(), bin); err != nil {
					pretty.ErrorPretty("Failed to print adapter binary", err)
					return
				}
				pretty.InfoPretty(fmt.Sprintf("Translated %s", name))
			}

			emit()

			debounce := time.Duration(s.cfg.Watch.DebounceMs) * time.Millisecond
			watcher, err := watch.NewFileWatcher(s.file, debounce, func(string) { emit() }, s.logger)
			if err != nil {
				return fmt.Errorf("failed to watch %s: %w", s.file, err)
			}
			defer watcher.Close()

			pretty.Path("Watching", watcher.Path())
			pretty.Field("Debounce", debounce)
			if err := watcher.Run(ctx); err != nil && err != context.Canceled {
				return err
			}
			return nil
		},
	}

	flags.register(cmd, true)
	return cmd
}
