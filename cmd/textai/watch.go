package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/textai/internal/processor"
	"github.com/nguyentantai21042004/textai/internal/watcher"
	"github.com/spf13/cobra"
)

var watchBacklog bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Summarize and synthesize every document dropped into the inbox",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		cfg := a.cfg

		if err := ensureDirectories(cfg.Paths.Input, cfg.Paths.Output, cfg.Paths.Archived, cfg.Paths.Temp); err != nil {
			return err
		}

		proc := processor.New(cfg, processor.Deps{
			Normalizer:  a.normalizer,
			Summarizer:  a.summarizer,
			Synthesizer: a.synthesizer,
			APIKey:      a.apiKey,
		}, a.log)

		w, err := watcher.New(watcher.Options{
			InputDir:      cfg.Paths.Input,
			Extensions:    processor.Extensions(),
			MaxConcurrent: cfg.Performance.MaxConcurrent,
		}, proc.Process, a.log)
		if err != nil {
			return err
		}
		defer w.Stop()

		if watchBacklog {
			if err := proc.ProcessBacklog(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
		}

		a.log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
		a.log.Info(ctx, "Output: %s", cfg.Paths.Output)
		a.log.Info(ctx, "Press Ctrl+C to stop")

		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		a.log.Info(ctx, "Pipeline stopped")
		return nil
	},
}

func init() {
	watchCmd.Flags().BoolVar(&watchBacklog, "backlog", true, "process documents already in the inbox before watching")
}
