package speech

import (
	"fmt"
	"net/http"

	"github.com/nguyentantai21042004/textai/internal/config"
	"github.com/nguyentantai21042004/textai/internal/logger"
	"github.com/nguyentantai21042004/textai/pkg/executor"
)

type implSynthesizer struct {
	cfg      config.SpeechConfig
	provider provider
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Synthesizer for the configured provider. apiKey is only
// used by providers that need one. A nil executor disables duration probing.
func New(cfg config.SpeechConfig, apiKey string, exec executor.Executor, client *http.Client, log logger.Logger) (Synthesizer, error) {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	var p provider
	switch cfg.Provider {
	case "", ProviderGTranslate:
		p = newGTranslate(cfg.BaseURL, client)
	case ProviderDeepgram:
		if apiKey == "" {
			return nil, fmt.Errorf("deepgram provider requires DEEPGRAM_API_KEY")
		}
		p = newDeepgram(cfg.BaseURL, cfg.DeepgramModel, apiKey, client)
	default:
		return nil, fmt.Errorf("unsupported speech provider: %s", cfg.Provider)
	}

	return &implSynthesizer{
		cfg:      cfg,
		provider: p,
		executor: exec,
		logger:   log,
	}, nil
}
