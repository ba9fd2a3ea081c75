package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/nguyentantai21042004/textai/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		if a.cfg.Logging.Level != "debug" {
			gin.SetMode(gin.ReleaseMode)
		}
		if err := ensureDirectories(a.cfg.Paths.Temp); err != nil {
			return err
		}

		srv := server.New(a.cfg, server.Deps{
			Normalizer:  a.normalizer,
			Summarizer:  a.summarizer,
			Synthesizer: a.synthesizer,
			APIKey:      a.apiKey,
		}, a.log)
		return srv.Run(ctx)
	},
}
