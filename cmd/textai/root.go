package main

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "textai",
	Short: "Summarize documents and read them aloud",
	Long: `textai turns text, PDFs, web pages and images into summaries and
synthesized speech. Run "textai serve" for the web UI, or use the one-shot
summarize and speak commands. "textai watch" processes an inbox directory.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")

	rootCmd.AddCommand(serveCmd, summarizeCmd, speakCmd, watchCmd)
}
