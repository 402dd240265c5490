package summarizer

import (
	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
	"github.com/nguyentantai21042004/audio-summarizer/internal/resilience"
)

const (
	DefaultMaxTokens   = 1500
	DefaultTemperature = float32(0.5)
)

// Options fixes the output budget and sampling of every request.
type Options struct {
	MaxTokens   int
	Temperature float32
}

type implSummarizer struct {
	backend Backend
	guard   *resilience.Guard
	logger  logger.Logger
	opts    Options
}

// New creates a Summarizer over backend.
func New(backend Backend, guard *resilience.Guard, log logger.Logger, opts Options) Summarizer {
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	if guard == nil {
		guard = resilience.NewGuard(resilience.NoRetry, log)
	}

	return &implSummarizer{
		backend: backend,
		guard:   guard,
		logger:  log,
		opts:    opts,
	}
}
