package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
	"github.com/nguyentantai21042004/audio-summarizer/internal/models"
	"google.golang.org/genai"
)

// DefaultGeminiModel is the Gemini model used when none is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

const geminiService = "gemini"

type geminiBackend struct {
	apiKeys []string
	logger  logger.Logger
	model   string

	mu         sync.Mutex
	currentKey int
}

// NewGeminiBackend returns a Backend that rotates through apiKeys when one
// is rate limited.
func NewGeminiBackend(apiKeys []string, model string, log logger.Logger) (Backend, error) {
	if len(apiKeys) == 0 {
		return nil, &models.ConfigurationError{Field: "GEMINI_API_KEYS", Msg: "environment variable is not set"}
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	return &geminiBackend{
		apiKeys: apiKeys,
		logger:  log,
		model:   model,
	}, nil
}

// Complete sends the prompt to Gemini. Rotates API keys on 429 / quota errors.
func (b *geminiBackend) Complete(ctx context.Context, req Request) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.System, genai.RoleUser),
		MaxOutputTokens:   int32(req.MaxTokens),
		Temperature:       genai.Ptr(req.Temperature),
	}

	var lastErr error
	for range len(b.apiKeys) {
		idx, key := b.key()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return "", &models.ServiceError{Service: geminiService, Op: "create client", Err: err}
		}

		result, err := client.Models.GenerateContent(ctx, b.model, genai.Text(req.Prompt), cfg)
		if err != nil {
			if isRateLimited(err) {
				b.logger.Warn(ctx, "Gemini key %d rate limited, rotating...", idx+1)
				b.rotateKey()
				lastErr = err
				continue
			}
			return "", &models.ServiceError{Service: geminiService, Op: "generate content", Retryable: isTransient(err), Err: err}
		}

		return responseText(result)
	}

	return "", &models.ServiceError{
		Service:   geminiService,
		Op:        "generate content",
		Retryable: true,
		Err:       fmt.Errorf("all API keys exhausted: %w", lastErr),
	}
}

func (b *geminiBackend) key() (int, string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.currentKey, b.apiKeys[b.currentKey]
}

func (b *geminiBackend) rotateKey() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.currentKey = (b.currentKey + 1) % len(b.apiKeys)
}

func responseText(result *genai.GenerateContentResponse) (string, error) {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", &models.ServiceError{Service: geminiService, Op: "generate content", Err: errors.New("empty response from Gemini")}
	}

	var b strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			b.WriteString(part.Text)
		}
	}
	return b.String(), nil
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func isTransient(err error) bool {
	msg := err.Error()
	for _, marker := range []string{"500", "502", "503", "504", "UNAVAILABLE", "INTERNAL", "DEADLINE_EXCEEDED"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
