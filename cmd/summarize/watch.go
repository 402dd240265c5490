package main

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/audio-summarizer/internal/models"
	"github.com/nguyentantai21042004/audio-summarizer/internal/watcher"
	"github.com/spf13/cobra"
)

func newWatchCommand(d deps, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <dir>",
		Short: "Summarize every audio file created in a directory",
		Long: `Watch a directory and run the transcribe-and-summarize pipeline for each
new audio file, one file at a time. A failed file is logged and skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig(cmd, d, opts)
			if err != nil {
				return err
			}

			log := newLogger(cmd, cfg)
			proc, err := d.build(cfg, log)
			if err != nil {
				return err
			}

			pt := models.PromptType(opts.promptType)
			w, err := watcher.New(args[0], cfg.Watch.Extensions, func(ctx context.Context, path string) error {
				_, err := proc.Process(ctx, path, pt)
				return err
			}, log)
			if err != nil {
				return err
			}
			defer w.Stop()

			log.Info(ctx, "Press Ctrl+C to stop")
			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
