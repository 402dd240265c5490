package summarizer

import (
	"context"
	"errors"
	"strings"

	"github.com/nguyentantai21042004/audio-summarizer/internal/models"
)

// Summarize sends prompt with the configured token budget and temperature and
// returns the trimmed Markdown. An empty reply is a ServiceError.
func (s *implSummarizer) Summarize(ctx context.Context, prompt models.Prompt) (string, error) {
	req := Request{
		System:      prompt.System,
		Prompt:      prompt.User,
		MaxTokens:   s.opts.MaxTokens,
		Temperature: s.opts.Temperature,
	}

	s.logger.Info(ctx, "Requesting summary (max_tokens=%d, temperature=%.2f)...", req.MaxTokens, req.Temperature)

	var text string
	err := s.guard.Do(ctx, "summarize", func(ctx context.Context) error {
		var err error
		text, err = s.backend.Complete(ctx, req)
		return err
	})
	if err != nil {
		return "", err
	}

	summary := strings.TrimSpace(text)
	if summary == "" {
		return "", &models.ServiceError{Service: "summarizer", Op: "summarize", Err: errors.New("empty summary in response")}
	}

	s.logger.Info(ctx, "Summary received (%d chars)", len([]rune(summary)))
	return summary, nil
}
