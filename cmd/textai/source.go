package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nguyentantai21042004/textai/internal/normalizer"
	"github.com/spf13/cobra"
)

// sourceFlags selects exactly one input for the one-shot commands.
type sourceFlags struct {
	text  string
	pdf   string
	url   string
	image string
}

func (f *sourceFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.text, "text", "", "text to process (\"-\" reads stdin)")
	cmd.Flags().StringVar(&f.pdf, "pdf", "", "path to a PDF document")
	cmd.Flags().StringVar(&f.url, "url", "", "web page to extract paragraphs from")
	cmd.Flags().StringVar(&f.image, "image", "", "path to an image to OCR")
	cmd.MarkFlagsOneRequired("text", "pdf", "url", "image")
	cmd.MarkFlagsMutuallyExclusive("text", "pdf", "url", "image")
}

func (f *sourceFlags) source() (normalizer.Source, error) {
	switch {
	case f.text == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return normalizer.Source{}, fmt.Errorf("read stdin: %w", err)
		}
		return normalizer.Source{Kind: normalizer.KindText, Text: string(data)}, nil
	case f.text != "":
		return normalizer.Source{Kind: normalizer.KindText, Text: f.text}, nil
	case f.url != "":
		return normalizer.Source{Kind: normalizer.KindURL, URL: f.url}, nil
	case f.pdf != "":
		data, err := os.ReadFile(f.pdf)
		if err != nil {
			return normalizer.Source{}, fmt.Errorf("read pdf: %w", err)
		}
		return normalizer.Source{Kind: normalizer.KindPDF, Data: data}, nil
	case f.image != "":
		data, err := os.ReadFile(f.image)
		if err != nil {
			return normalizer.Source{}, fmt.Errorf("read image: %w", err)
		}
		return normalizer.Source{Kind: normalizer.KindImage, Data: data}, nil
	}
	return normalizer.Source{}, errors.New("no input given")
}

// document normalizes the selected input. Sentinel results and empty
// documents are errors on the command line.
func (a *app) document(cmd *cobra.Command, f *sourceFlags) (string, error) {
	src, err := f.source()
	if err != nil {
		return "", err
	}

	res, err := a.normalizer.Normalize(cmd.Context(), src)
	if err != nil {
		return "", fmt.Errorf("normalize %s: %w", src.Kind, err)
	}
	if !res.OK() {
		if res.Cause != nil {
			return "", fmt.Errorf("%s: %w", res, res.Cause)
		}
		return "", errors.New(res.String())
	}
	if res.Text == "" {
		return "", errors.New("input contains no text")
	}
	return res.Text, nil
}
