package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func intPtr(v int) *int {
	return &v
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "gemini provider",
			config: Config{
				Summarizer: SummarizerConfig{Remote: RemoteConfig{Provider: "gemini"}},
			},
			wantErr: false,
		},
		{
			name: "unknown remote provider",
			config: Config{
				Summarizer: SummarizerConfig{Remote: RemoteConfig{Provider: "claude"}},
			},
			wantErr: true,
		},
		{
			name: "unknown speech provider",
			config: Config{
				Speech: SpeechConfig{Provider: "espeak"},
			},
			wantErr: true,
		},
		{
			name: "overlap not smaller than window",
			config: Config{
				Summarizer: SummarizerConfig{MaxWords: 100, Overlap: intPtr(100)},
			},
			wantErr: true,
		},
		{
			name: "negative overlap",
			config: Config{
				Summarizer: SummarizerConfig{Overlap: intPtr(-1)},
			},
			wantErr: true,
		},
		{
			name: "zero overlap is kept",
			config: Config{
				Summarizer: SummarizerConfig{Overlap: intPtr(0)},
			},
			wantErr: false,
		},
		{
			name: "small window without explicit overlap",
			config: Config{
				Summarizer: SummarizerConfig{MaxWords: 20},
			},
			wantErr: false,
		},
		{
			name: "negative concurrency",
			config: Config{
				Performance: PerformanceConfig{MaxConcurrent: -2},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Summarizer.MaxWords != 300 || cfg.Summarizer.ChunkOverlap() != 50 {
		t.Errorf("chunking = %d/%d, want 300/50", cfg.Summarizer.MaxWords, cfg.Summarizer.ChunkOverlap())
	}
	if cfg.Summarizer.Remote.Model != "gpt-3.5-turbo" {
		t.Errorf("Remote.Model = %v, want gpt-3.5-turbo", cfg.Summarizer.Remote.Model)
	}
	if cfg.Summarizer.Remote.Temperature != 0.7 {
		t.Errorf("Remote.Temperature = %v, want 0.7", cfg.Summarizer.Remote.Temperature)
	}
	if cfg.Summarizer.Local.MaxLength != 150 || cfg.Summarizer.Local.MinLength != 40 {
		t.Errorf("Local lengths = %d/%d, want 150/40", cfg.Summarizer.Local.MaxLength, cfg.Summarizer.Local.MinLength)
	}
	if cfg.Speech.Language != "en" {
		t.Errorf("Speech.Language = %v, want en", cfg.Speech.Language)
	}
	if cfg.Server.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %v, want 30m", cfg.Server.SessionTTL)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	content := `
server:
  port: "9090"
  session_ttl: 5m

summarizer:
  max_words: 200
  overlap: 20
  remote:
    provider: gemini

speech:
  provider: deepgram
  language: fr

paths:
  input: "inbox"
  output: "outbox"

logging:
  level: "debug"
  format: "json"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %v, want 9090", cfg.Server.Port)
	}
	if cfg.Server.SessionTTL != 5*time.Minute {
		t.Errorf("SessionTTL = %v, want 5m", cfg.Server.SessionTTL)
	}
	if cfg.Summarizer.MaxWords != 200 || cfg.Summarizer.ChunkOverlap() != 20 {
		t.Errorf("chunking = %d/%d, want 200/20", cfg.Summarizer.MaxWords, cfg.Summarizer.ChunkOverlap())
	}
	if cfg.Summarizer.Remote.Model != "gemini-2.5-flash" {
		t.Errorf("Remote.Model = %v, want gemini-2.5-flash", cfg.Summarizer.Remote.Model)
	}
	if cfg.Speech.Provider != "deepgram" || cfg.Speech.Language != "fr" {
		t.Errorf("Speech = %s/%s, want deepgram/fr", cfg.Speech.Provider, cfg.Speech.Language)
	}
	if cfg.Paths.Input != "inbox" {
		t.Errorf("Input = %v, want inbox", cfg.Paths.Input)
	}
	if cfg.Paths.Archived != "data/archived" {
		t.Errorf("Archived = %v, want data/archived", cfg.Paths.Archived)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %v, want default 8080", cfg.Server.Port)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("server: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should return error for malformed yaml")
	}
}

func TestLoadExplicitZeroOverlap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("summarizer:\n  overlap: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Summarizer.Overlap == nil || *cfg.Summarizer.Overlap != 0 {
		t.Errorf("Overlap = %v, want explicit 0", cfg.Summarizer.Overlap)
	}
	if cfg.Summarizer.MaxWords != 300 {
		t.Errorf("MaxWords = %d, want 300", cfg.Summarizer.MaxWords)
	}
}
