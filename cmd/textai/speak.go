package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	speakSrc  sourceFlags
	speakOut  string
	speakLang string
)

var speakCmd = &cobra.Command{
	Use:     "speak",
	Short:   "Synthesize one document to an mp3 file",
	Example: `  textai speak --text "Hello there" --out hello.mp3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		doc, err := a.document(cmd, &speakSrc)
		if err != nil {
			return err
		}

		lang := speakLang
		if lang == "" {
			lang = a.cfg.Speech.Language
		}
		clip, err := a.synthesizer.Synthesize(cmd.Context(), doc, lang)
		if err != nil {
			return fmt.Errorf("synthesize: %w", err)
		}

		if err := os.WriteFile(speakOut, clip.Data, 0644); err != nil {
			return fmt.Errorf("write audio: %w", err)
		}
		a.log.Info(cmd.Context(), "Wrote %s (%d bytes, %.1fs)", speakOut, len(clip.Data), clip.Duration)
		return nil
	},
}

func init() {
	speakSrc.bind(speakCmd)
	speakCmd.Flags().StringVarP(&speakOut, "out", "o", "speech.mp3", "output mp3 file")
	speakCmd.Flags().StringVar(&speakLang, "lang", "", "language code (defaults to speech.language)")
}
