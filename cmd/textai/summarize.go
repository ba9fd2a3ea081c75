package main

import (
	"fmt"
	"os"

	"github.com/nguyentantai21042004/textai/internal/summarizer"
	"github.com/spf13/cobra"
)

var (
	summarizeSrc  sourceFlags
	summarizeOut  string
	summarizeDocx string
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize one document",
	Example: `  textai summarize --url https://example.com/article
  textai summarize --pdf paper.pdf --out summary.txt --docx summary.docx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		doc, err := a.document(cmd, &summarizeSrc)
		if err != nil {
			return err
		}

		sum := a.summarizer.Summarize(cmd.Context(), doc, a.apiKey)
		a.log.Info(cmd.Context(), "Summary via %s", sum.Path)
		if len(sum.FailedChunks) > 0 {
			a.log.Warn(cmd.Context(), "%d of %d chunks failed: %v", len(sum.FailedChunks), sum.Chunks, sum.FailedChunks)
		}

		if summarizeOut == "" {
			fmt.Fprintln(cmd.OutOrStdout(), sum.Text)
		} else if err := os.WriteFile(summarizeOut, []byte(sum.Text), 0644); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}

		if summarizeDocx != "" {
			if err := summarizer.WriteDocx("Summary", sum.Text, summarizeDocx); err != nil {
				return fmt.Errorf("write docx: %w", err)
			}
		}
		return nil
	},
}

func init() {
	summarizeSrc.bind(summarizeCmd)
	summarizeCmd.Flags().StringVarP(&summarizeOut, "out", "o", "", "write the summary to this .txt file instead of stdout")
	summarizeCmd.Flags().StringVar(&summarizeDocx, "docx", "", "also write the summary as a .docx file")
}
