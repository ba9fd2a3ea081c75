package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/nguyentantai21042004/textai/internal/config"
)

type localRequest struct {
	Inputs     string          `json:"inputs"`
	Parameters localParameters `json:"parameters"`
}

type localParameters struct {
	MaxLength int  `json:"max_length"`
	MinLength int  `json:"min_length"`
	DoSample  bool `json:"do_sample"`
}

type localResponse struct {
	SummaryText string `json:"summary_text"`
}

type httpLocalModel struct {
	cfg    config.LocalConfig
	token  string
	client *http.Client
}

// NewHTTPLocalModel returns a LocalModel that talks to a summarization
// pipeline served with the Hugging Face inference protocol. token is sent
// as a bearer token when set.
func NewHTTPLocalModel(cfg config.LocalConfig, token string, client *http.Client) LocalModel {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &httpLocalModel{
		cfg:    cfg,
		token:  token,
		client: client,
	}
}

func (m *httpLocalModel) SummarizeChunk(ctx context.Context, chunk string) (string, error) {
	payload, err := json.Marshal(localRequest{
		Inputs: chunk,
		Parameters: localParameters{
			MaxLength: m.cfg.MaxLength,
			MinLength: m.cfg.MinLength,
			DoSample:  false,
		},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if m.token != "" {
		req.Header.Set("Authorization", "Bearer "+m.token)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call local model: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("local model error: %s - %s", resp.Status, string(body))
	}

	var out []localResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(out) == 0 {
		return "", fmt.Errorf("empty response from local model")
	}
	return out[0].SummaryText, nil
}
