package normalizer

import (
	"net/http"

	"github.com/nguyentantai21042004/textai/internal/config"
	"github.com/nguyentantai21042004/textai/internal/logger"
	"github.com/nguyentantai21042004/textai/pkg/executor"
)

type implNormalizer struct {
	cfg      config.ExtractConfig
	tempDir  string
	executor executor.Executor
	client   *http.Client
	logger   logger.Logger
}

// New creates a Normalizer. A nil client gets one with the configured timeout.
func New(cfg config.ExtractConfig, tempDir string, exec executor.Executor, client *http.Client, log logger.Logger) Normalizer {
	if client == nil {
		client = &http.Client{Timeout: cfg.HTTPTimeout}
	}
	return &implNormalizer{
		cfg:      cfg,
		tempDir:  tempDir,
		executor: exec,
		client:   client,
		logger:   log,
	}
}
