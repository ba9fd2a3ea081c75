package summarizer

import "context"

// Summarizer produces a summary, preferring a remote LLM and falling back
// to chunked local summarization. It never fails.
type Summarizer interface {
	Summarize(ctx context.Context, text, apiKey string) Summary
}

// Completer is a single-shot chat completion client.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompleterFactory builds a Completer for the given API key.
type CompleterFactory func(ctx context.Context, apiKey string) (Completer, error)

// LocalModel summarizes one chunk with a local abstractive model.
type LocalModel interface {
	SummarizeChunk(ctx context.Context, chunk string) (string, error)
}
