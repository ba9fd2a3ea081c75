package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/textai/internal/config"
	"github.com/nguyentantai21042004/textai/internal/logger"
)

type fakeCompleter struct {
	out     string
	err     error
	prompts []string
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.out, f.err
}

func factoryFor(c Completer, factoryErr error) CompleterFactory {
	return func(ctx context.Context, apiKey string) (Completer, error) {
		if factoryErr != nil {
			return nil, factoryErr
		}
		return c, nil
	}
}

type fakeLocal struct {
	failOn map[int]bool
	calls  int
	inputs []string
}

func (f *fakeLocal) SummarizeChunk(ctx context.Context, chunk string) (string, error) {
	f.calls++
	f.inputs = append(f.inputs, chunk)
	if f.failOn[f.calls] {
		return "", errors.New("model crashed")
	}
	return fmt.Sprintf("summary-%d", f.calls), nil
}

func testConfig() config.SummarizerConfig {
	return config.Default().Summarizer
}

func TestSummarizeRemote(t *testing.T) {
	remote := &fakeCompleter{out: "remote summary"}
	local := &fakeLocal{}
	s := New(testConfig(), factoryFor(remote, nil), local, logger.Nop())

	got := s.Summarize(context.Background(), "some text", "sk-test")
	if got.Text != "remote summary" || got.Path != PathRemote {
		t.Errorf("Summarize() = %+v, want remote summary", got)
	}
	if len(remote.prompts) != 1 || remote.prompts[0] != "Summarize this:\nsome text" {
		t.Errorf("prompts = %q", remote.prompts)
	}
	if local.calls != 0 {
		t.Errorf("local model called %d times", local.calls)
	}
}

func TestSummarizeFallsBackOnRemoteFailure(t *testing.T) {
	tests := []struct {
		name    string
		factory CompleterFactory
	}{
		{"completion error", factoryFor(&fakeCompleter{err: errors.New("401 unauthorized")}, nil)},
		{"empty completion", factoryFor(&fakeCompleter{out: "  "}, nil)},
		{"client error", factoryFor(nil, errors.New("bad key"))},
		{"no remote configured", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			local := &fakeLocal{}
			s := New(testConfig(), tt.factory, local, logger.Nop())

			got := s.Summarize(context.Background(), "a non-empty document", "sk-always-fails")
			if got.Path != PathLocal {
				t.Errorf("Path = %v, want local", got.Path)
			}
			if got.Text == "" {
				t.Error("fallback summary is empty")
			}
			if got.RemoteErr == nil {
				t.Error("RemoteErr should record the swallowed failure")
			}
		})
	}
}

func TestSummarizeWithoutKeyIsLocalOnly(t *testing.T) {
	remote := &fakeCompleter{out: "unused"}
	local := &fakeLocal{}
	s := New(testConfig(), factoryFor(remote, nil), local, logger.Nop())

	got := s.Summarize(context.Background(), words(10), "")
	if got.Path != PathLocal || got.Text != "summary-1" {
		t.Errorf("Summarize() = %+v", got)
	}
	if len(remote.prompts) != 0 {
		t.Error("remote called without an API key")
	}
	if got.RemoteErr != nil {
		t.Errorf("RemoteErr = %v, want nil", got.RemoteErr)
	}
}

func TestSummarizeChunkFailureUsesPlaceholder(t *testing.T) {
	local := &fakeLocal{failOn: map[int]bool{2: true}}
	s := New(testConfig(), nil, local, logger.Nop())

	got := s.Summarize(context.Background(), words(600), "")

	want := "summary-1 [Error summarizing chunk 2] summary-3"
	if got.Text != want {
		t.Errorf("Summarize() = %q, want %q", got.Text, want)
	}
	if got.Chunks != 3 {
		t.Errorf("Chunks = %d, want 3", got.Chunks)
	}
	if len(got.FailedChunks) != 1 || got.FailedChunks[0] != 2 {
		t.Errorf("FailedChunks = %v, want [2]", got.FailedChunks)
	}
	if !strings.HasPrefix(local.inputs[1], "w250 ") {
		t.Errorf("second chunk starts with %q", local.inputs[1][:10])
	}
}

func TestSummarizeEmptyInput(t *testing.T) {
	local := &fakeLocal{}
	s := New(testConfig(), nil, local, logger.Nop())

	got := s.Summarize(context.Background(), "   ", "")
	if got.Text != "" || got.Chunks != 0 {
		t.Errorf("Summarize() = %+v, want empty", got)
	}
	if local.calls != 0 {
		t.Errorf("local model called %d times", local.calls)
	}
}
