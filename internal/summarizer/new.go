package summarizer

import (
	"github.com/nguyentantai21042004/textai/internal/config"
	"github.com/nguyentantai21042004/textai/internal/logger"
)

type implSummarizer struct {
	cfg    config.SummarizerConfig
	remote CompleterFactory
	local  LocalModel
	logger logger.Logger
}

// New creates a Summarizer. remote may be nil, in which case every call
// takes the local path.
func New(cfg config.SummarizerConfig, remote CompleterFactory, local LocalModel, log logger.Logger) Summarizer {
	return &implSummarizer{
		cfg:    cfg,
		remote: remote,
		local:  local,
		logger: log,
	}
}
