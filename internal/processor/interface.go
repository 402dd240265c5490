package processor

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/audio-summarizer/internal/models"
)

// Processor runs the transcribe-and-summarize pipeline for one recording.
type Processor interface {
	Process(ctx context.Context, audioPath string, promptType models.PromptType) (*Result, error)
}

// Result is what a successful run produced.
type Result struct {
	Transcript models.Transcript
	Summary    string
	Artifact   models.OutputArtifact
	Duration   time.Duration
}
