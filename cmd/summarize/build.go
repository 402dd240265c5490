package main

import (
	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
	"github.com/nguyentantai21042004/audio-summarizer/internal/config"
	"github.com/nguyentantai21042004/audio-summarizer/internal/glossary"
	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
	"github.com/nguyentantai21042004/audio-summarizer/internal/openaiclient"
	"github.com/nguyentantai21042004/audio-summarizer/internal/output"
	"github.com/nguyentantai21042004/audio-summarizer/internal/processor"
	"github.com/nguyentantai21042004/audio-summarizer/internal/resilience"
	"github.com/nguyentantai21042004/audio-summarizer/internal/summarizer"
	"github.com/nguyentantai21042004/audio-summarizer/internal/transcription"
	"github.com/nguyentantai21042004/audio-summarizer/pkg/executor"
)

// buildProcessor wires the production pipeline.
func buildProcessor(cfg *config.Config, log logger.Logger) (processor.Processor, error) {
	client, err := openaiclient.New(cfg.Credentials.OpenAIKey, cfg.OpenAI.BaseURL, nil)
	if err != nil {
		return nil, err
	}

	chunker := audio.New(audio.Options{
		FFmpegPath:  cfg.FFmpeg.BinaryPath,
		FFprobePath: cfg.FFmpeg.ProbePath,
		ChunkLength: cfg.ChunkLength(),
		TempDir:     cfg.Paths.Temp,
	}, executor.New(), log)

	tr := transcription.New(
		transcription.NewOpenAIClient(client, cfg.Transcription.Model, cfg.Transcription.Language),
		chunker,
		resilience.NewGuard(cfg.RetryPolicy(), log),
		log,
		cfg.MaxFileSizeBytes(),
	)

	var backend summarizer.Backend
	switch cfg.Summarization.Provider {
	case config.ProviderGemini:
		backend, err = summarizer.NewGeminiBackend(cfg.Credentials.GeminiKeys, cfg.Summarization.Model, log)
		if err != nil {
			return nil, err
		}
	default:
		backend = summarizer.NewOpenAIBackend(client, cfg.Summarization.Model)
	}

	sum := summarizer.New(backend, resilience.NewGuard(cfg.RetryPolicy(), log), log, summarizer.Options{
		MaxTokens:   cfg.Summarization.MaxTokens,
		Temperature: *cfg.Summarization.Temperature,
	})

	glossaryPath := cfg.Paths.Glossary
	if glossaryPath == "" {
		glossaryPath = glossary.DefaultPath()
	}

	return processor.New(tr, sum, output.New(cfg.Paths.Output, nil, log), glossaryPath, log), nil
}
