package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/audio-summarizer/internal/models"
)

// Request is one completion call to a language-model backend.
type Request struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float32
}

// Backend is the external language-model capability.
type Backend interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Summarizer produces a Markdown summary for a built prompt.
type Summarizer interface {
	Summarize(ctx context.Context, prompt models.Prompt) (string, error)
}
