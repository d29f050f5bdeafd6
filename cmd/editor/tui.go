package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dragonwilds-editor/internal/errors"
	"github.com/KirkDiggler/dragonwilds-editor/internal/ui"
)

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [save.json]",
		Short: "Start the interactive editor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			closeLog, err := redirectLogs(opts)
			if err != nil {
				return err
			}
			defer closeLog()

			d, err := newDeps(ctx, opts.cfg, nil)
			if err != nil {
				return err
			}
			defer d.close()

			app, err := ui.New(ctx, &ui.Config{
				Session:  d.session,
				SaveRepo: d.saveRepo,
				SaveDir:  opts.cfg.SaveDir,
				Warnings: d.catalogs.Warnings,
			})
			if err != nil {
				return err
			}

			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			slog.InfoContext(ctx, "editor started", "save_dir", opts.cfg.SaveDir)
			return app.Run(path)
		},
	}
}

// redirectLogs sends logs to the configured file, or nowhere, so they do
// not draw over the terminal UI
func redirectLogs(opts *rootOptions) (func(), error) {
	level, _ := opts.cfg.SlogLevel()
	handlerOpts := &slog.HandlerOptions{Level: level}

	if opts.cfg.LogFile == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, handlerOpts)))
		return func() {}, nil
	}

	f, err := os.OpenFile(opts.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open log file %s", opts.cfg.LogFile)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(f, handlerOpts)))
	return func() { _ = f.Close() }, nil
}
