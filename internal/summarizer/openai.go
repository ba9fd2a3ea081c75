package summarizer

import (
	"context"
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/textai/internal/config"
	"github.com/sashabaranov/go-openai"
)

type openAICompleter struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewOpenAIFactory returns a CompleterFactory backed by the OpenAI chat
// completions API. BaseURL may point at any compatible server.
func NewOpenAIFactory(cfg config.RemoteConfig) CompleterFactory {
	return func(_ context.Context, apiKey string) (Completer, error) {
		clientConfig := openai.DefaultConfig(apiKey)
		if cfg.BaseURL != "" {
			clientConfig.BaseURL = cfg.BaseURL
		}
		return &openAICompleter{
			client:      openai.NewClientWithConfig(clientConfig),
			model:       cfg.Model,
			temperature: cfg.Temperature,
		}, nil
	}
}

func (c *openAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: c.temperature,
			N:           1,
		},
	)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response generated")
	}
	return resp.Choices[0].Message.Content, nil
}
