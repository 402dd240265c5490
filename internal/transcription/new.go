package transcription

import (
	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
	"github.com/nguyentantai21042004/audio-summarizer/internal/resilience"
)

// DefaultMaxFileSize is the largest upload the transcription service accepts.
const DefaultMaxFileSize int64 = 25 * 1024 * 1024

type implTranscriber struct {
	client      Client
	chunker     audio.Chunker
	guard       *resilience.Guard
	logger      logger.Logger
	maxFileSize int64
}

// New creates a Transcriber that sends files up to maxFileSize bytes in one
// call and splits larger ones with chunker.
func New(client Client, chunker audio.Chunker, guard *resilience.Guard, log logger.Logger, maxFileSize int64) Transcriber {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	if guard == nil {
		guard = resilience.NewGuard(resilience.NoRetry, log)
	}

	return &implTranscriber{
		client:      client,
		chunker:     chunker,
		guard:       guard,
		logger:      log,
		maxFileSize: maxFileSize,
	}
}
