package output

import (
	"context"

	"github.com/nguyentantai21042004/audio-summarizer/internal/models"
)

// Writer persists the summary of one run.
type Writer interface {
	Write(ctx context.Context, audioPath, summary string) (models.OutputArtifact, error)
}
