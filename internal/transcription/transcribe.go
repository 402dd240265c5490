package transcription

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
	"github.com/nguyentantai21042004/audio-summarizer/internal/models"
)

func (t *implTranscriber) Transcribe(ctx context.Context, path string) (models.Transcript, error) {
	src, err := audio.Stat(path)
	if err != nil {
		return models.Transcript{}, err
	}

	t.logger.Info(ctx, "Starting transcription: %s (%.2fMB)", src.Path, float64(src.Size)/(1024*1024))

	if src.Size <= t.maxFileSize {
		text, err := t.transcribeFile(ctx, src.Path, "file")
		if err != nil {
			return models.Transcript{}, err
		}
		return models.Transcript{Segments: []string{text}}, nil
	}

	t.logger.Info(ctx, "File exceeds %.0fMB, transcribing in chunks", float64(t.maxFileSize)/(1024*1024))

	var segments []string
	err = t.chunker.Split(ctx, src.Path, func(ctx context.Context, chunk models.Chunk) error {
		t.logger.Info(ctx, "Transcribing chunk %d...", chunk.Index+1)

		text, err := t.transcribeFile(ctx, chunk.Path, fmt.Sprintf("chunk %d", chunk.Index))
		if err != nil {
			return err
		}
		segments = append(segments, text)
		return nil
	})
	if err != nil {
		return models.Transcript{}, err
	}

	return models.Transcript{Segments: segments}, nil
}

// transcribeFile makes one guarded service call for path.
func (t *implTranscriber) transcribeFile(ctx context.Context, path, label string) (string, error) {
	var text string
	err := t.guard.Do(ctx, "transcribe "+label, func(ctx context.Context) error {
		var err error
		text, err = t.client.TranscribeFile(ctx, path)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("transcribe %s: %w", label, err)
	}
	return text, nil
}
