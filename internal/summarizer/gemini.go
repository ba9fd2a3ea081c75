package summarizer

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/textai/internal/config"
	"google.golang.org/genai"
)

type geminiCompleter struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewGeminiFactory returns a CompleterFactory backed by the Gemini API.
func NewGeminiFactory(cfg config.RemoteConfig) CompleterFactory {
	return func(ctx context.Context, apiKey string) (Completer, error) {
		clientConfig := &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		}
		if cfg.BaseURL != "" {
			clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
		}
		client, err := genai.NewClient(ctx, clientConfig)
		if err != nil {
			return nil, fmt.Errorf("create client: %w", err)
		}
		return &geminiCompleter{
			client:      client,
			model:       cfg.Model,
			temperature: cfg.Temperature,
		}, nil
	}
}

func (c *geminiCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	temperature := c.temperature
	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:    &temperature,
		CandidateCount: 1,
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		return text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}
