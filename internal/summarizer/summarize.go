package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var errNoRemote = errors.New("remote summarization not configured")

// Summarize tries the remote LLM once when an API key is present. Any
// remote error is logged and the local chunked path is taken instead.
func (s *implSummarizer) Summarize(ctx context.Context, text, apiKey string) Summary {
	if apiKey == "" {
		return s.summarizeLocal(ctx, text)
	}

	out, err := s.summarizeRemote(ctx, text, apiKey)
	if err == nil {
		s.logger.Info(ctx, "Summarized %d chars with %s/%s", len(text), s.cfg.Remote.Provider, s.cfg.Remote.Model)
		return Summary{Text: out, Path: PathRemote}
	}

	s.logger.Warn(ctx, "Remote summarization failed, using local model: %v", err)
	sum := s.summarizeLocal(ctx, text)
	sum.RemoteErr = err
	return sum
}

func (s *implSummarizer) summarizeRemote(ctx context.Context, text, apiKey string) (string, error) {
	if s.remote == nil {
		return "", errNoRemote
	}
	if s.cfg.Remote.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Remote.Timeout)
		defer cancel()
	}

	client, err := s.remote(ctx, apiKey)
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}
	out, err := client.Complete(ctx, promptPrefix+text)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "", errors.New("empty completion")
	}
	return out, nil
}

// summarizeLocal summarizes every chunk in order. A failing chunk is
// replaced by a placeholder naming its 1-based index.
func (s *implSummarizer) summarizeLocal(ctx context.Context, text string) Summary {
	chunks := ChunkText(text, s.cfg.MaxWords, s.cfg.ChunkOverlap())
	sum := Summary{Path: PathLocal, Chunks: len(chunks)}
	if len(chunks) == 0 {
		return sum
	}

	s.logger.Info(ctx, "Summarizing %d chunks locally", len(chunks))

	parts := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		out, err := s.summarizeChunk(ctx, chunk)
		if err != nil {
			s.logger.Warn(ctx, "[%d/%d] Chunk summarization failed: %v", i+1, len(chunks), err)
			parts = append(parts, fmt.Sprintf("[Error summarizing chunk %d]", i+1))
			sum.FailedChunks = append(sum.FailedChunks, i+1)
			continue
		}
		s.logger.Debug(ctx, "[%d/%d] Chunk summarized", i+1, len(chunks))
		parts = append(parts, out)
	}

	sum.Text = strings.Join(parts, " ")
	return sum
}

func (s *implSummarizer) summarizeChunk(ctx context.Context, chunk string) (string, error) {
	if s.local == nil {
		return "", errors.New("local model not configured")
	}
	return s.local.SummarizeChunk(ctx, chunk)
}
