package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
	"github.com/nguyentantai21042004/audio-summarizer/internal/glossary"
	"github.com/nguyentantai21042004/audio-summarizer/internal/models"
	"github.com/nguyentantai21042004/audio-summarizer/internal/prompt"
)

// Process orchestrates the entire pipeline. Any failure ends the run before
// the output step, so nothing is written.
func (p *implProcessor) Process(ctx context.Context, audioPath string, promptType models.PromptType) (*Result, error) {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting audio processing: %s (prompt: %s)", audioPath, promptType)
	p.logger.Info(ctx, "========================================")

	// Step 1: Validate input
	if _, err := audio.Stat(audioPath); err != nil {
		return nil, fmt.Errorf("validate input: %w", err)
	}

	// Step 2: Transcribe (single call or chunked)
	transcript, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", err)
	}
	p.logger.Info(ctx, "Transcription completed: %d segment(s)", len(transcript.Segments))

	// Step 3: Load glossary
	terms, err := glossary.Load(p.glossaryPath)
	if err != nil {
		return nil, fmt.Errorf("load glossary: %w", err)
	}
	p.logger.Debug(ctx, "Loaded %d glossary term(s) from %s", len(terms), p.glossaryPath)

	// Step 4: Build prompt
	pt := models.ParsePromptType(string(promptType))
	if pt != promptType {
		p.logger.Debug(ctx, "Prompt type %q resolved to %s", promptType, pt)
	}
	pr := prompt.Build(transcript.String(), terms, pt)

	// Step 5: Summarize
	summary, err := p.summarizer.Summarize(ctx, pr)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	// Step 6: Write output
	artifact, err := p.writer.Write(ctx, audioPath, summary)
	if err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}

	duration := time.Since(startTime)
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Output summary: %s", artifact.Path)
	p.logger.Info(ctx, "Processing time: %s", duration)
	p.logger.Info(ctx, "========================================")

	return &Result{
		Transcript: transcript,
		Summary:    summary,
		Artifact:   artifact,
		Duration:   duration,
	}, nil
}
