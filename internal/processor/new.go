package processor

import (
	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
	"github.com/nguyentantai21042004/audio-summarizer/internal/output"
	"github.com/nguyentantai21042004/audio-summarizer/internal/summarizer"
	"github.com/nguyentantai21042004/audio-summarizer/internal/transcription"
)

type implProcessor struct {
	transcriber  transcription.Transcriber
	summarizer   summarizer.Summarizer
	writer       output.Writer
	glossaryPath string
	logger       logger.Logger
}

// New creates a new Processor instance
func New(tr transcription.Transcriber, sum summarizer.Summarizer, w output.Writer, glossaryPath string, log logger.Logger) Processor {
	return &implProcessor{
		transcriber:  tr,
		summarizer:   sum,
		writer:       w,
		glossaryPath: glossaryPath,
		logger:       log,
	}
}
