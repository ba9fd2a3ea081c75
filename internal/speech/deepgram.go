package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	ProviderDeepgram = "deepgram"

	deepgramBaseURL = "https://api.deepgram.com"
)

type deepgram struct {
	baseURL string
	model   string
	apiKey  string
	client  *http.Client
}

func newDeepgram(baseURL, model, apiKey string, client *http.Client) *deepgram {
	if baseURL == "" {
		baseURL = deepgramBaseURL
	}
	return &deepgram{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		apiKey:  apiKey,
		client:  client,
	}
}

// fetch calls the Deepgram speak API. The voice model fixes the language,
// so lang is not sent.
func (d *deepgram) fetch(ctx context.Context, text, _ string) ([]byte, error) {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, err
	}

	endpoint := d.baseURL + "/v1/speak?model=" + url.QueryEscape(d.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Token "+d.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("deepgram error: %s - %s", resp.Status, string(body))
	}

	return io.ReadAll(resp.Body)
}
