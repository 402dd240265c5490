package transcription

import (
	"context"

	"github.com/nguyentantai21042004/audio-summarizer/internal/models"
)

// Client is the external speech-to-text capability. It accepts one file no
// larger than the service limit per call.
type Client interface {
	TranscribeFile(ctx context.Context, path string) (string, error)
}

// Transcriber turns an audio file of any size into a Transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (models.Transcript, error)
}
