package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/nguyentantai21042004/textai/internal/config"
	"github.com/nguyentantai21042004/textai/internal/logger"
	"github.com/nguyentantai21042004/textai/internal/normalizer"
	"github.com/nguyentantai21042004/textai/internal/speech"
	"github.com/nguyentantai21042004/textai/internal/summarizer"
	"github.com/nguyentantai21042004/textai/pkg/executor"
)

// app holds the wired components shared by every command.
type app struct {
	cfg         *config.Config
	log         logger.Logger
	normalizer  normalizer.Normalizer
	summarizer  summarizer.Summarizer
	synthesizer speech.Synthesizer
	apiKey      string
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Debug(ctx, "System: %s/%s, config: %s", runtime.GOOS, runtime.GOARCH, cfgFile)

	exec := executor.New()

	var remote summarizer.CompleterFactory
	var apiKey string
	switch cfg.Summarizer.Remote.Provider {
	case "gemini":
		remote = summarizer.NewGeminiFactory(cfg.Summarizer.Remote)
		apiKey = os.Getenv("GEMINI_API_KEY")
	default:
		remote = summarizer.NewOpenAIFactory(cfg.Summarizer.Remote)
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		log.Info(ctx, "No %s API key set, summaries use the local model at %s",
			cfg.Summarizer.Remote.Provider, cfg.Summarizer.Local.Endpoint)
	}

	local := summarizer.NewHTTPLocalModel(cfg.Summarizer.Local, os.Getenv("HF_API_TOKEN"), nil)

	synth, err := speech.New(cfg.Speech, os.Getenv("DEEPGRAM_API_KEY"), exec, nil, log)
	if err != nil {
		return nil, fmt.Errorf("create synthesizer: %w", err)
	}

	return &app{
		cfg:         cfg,
		log:         log,
		normalizer:  normalizer.New(cfg.Extract, cfg.Paths.Temp, exec, nil, log),
		summarizer:  summarizer.New(cfg.Summarizer, remote, local, log),
		synthesizer: synth,
		apiKey:      apiKey,
	}, nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
