package processor

import (
	"github.com/nguyentantai21042004/textai/internal/config"
	"github.com/nguyentantai21042004/textai/internal/logger"
	"github.com/nguyentantai21042004/textai/internal/normalizer"
	"github.com/nguyentantai21042004/textai/internal/speech"
	"github.com/nguyentantai21042004/textai/internal/summarizer"
)

// Deps are the pipeline stages.
type Deps struct {
	Normalizer  normalizer.Normalizer
	Summarizer  summarizer.Summarizer
	Synthesizer speech.Synthesizer
	APIKey      string
}

type implProcessor struct {
	cfg    *config.Config
	deps   Deps
	logger logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, deps Deps, log logger.Logger) Processor {
	return &implProcessor{
		cfg:    cfg,
		deps:   deps,
		logger: log,
	}
}
