package summarizer

import (
	"errors"
	"testing"

	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
	"github.com/nguyentantai21042004/audio-summarizer/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestNewGeminiBackendRequiresKeys(t *testing.T) {
	_, err := NewGeminiBackend(nil, "", logger.Nop())

	var cfgErr *models.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestGeminiKeyRotation(t *testing.T) {
	b, err := NewGeminiBackend([]string{"k1", "k2", "k3"}, "", logger.Nop())
	require.NoError(t, err)
	gb := b.(*geminiBackend)

	assert.Equal(t, DefaultGeminiModel, gb.model)

	var seen []string
	for range 4 {
		_, key := gb.key()
		seen = append(seen, key)
		gb.rotateKey()
	}
	assert.Equal(t, []string{"k1", "k2", "k3", "k1"}, seen)
}

func TestResponseText(t *testing.T) {
	result := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: "## 概要\n"}, {Text: "- A"}}},
		}},
	}

	got, err := responseText(result)
	require.NoError(t, err)
	assert.Equal(t, "## 概要\n- A", got)

	_, err = responseText(&genai.GenerateContentResponse{})
	assert.Error(t, err)
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, isRateLimited(errors.New("Error 429, Message: Resource has been exhausted")))
	assert.True(t, isRateLimited(errors.New("RESOURCE_EXHAUSTED")))
	assert.False(t, isRateLimited(errors.New("Error 400, INVALID_ARGUMENT")))

	assert.True(t, isTransient(errors.New("Error 503, Status: UNAVAILABLE")))
	assert.False(t, isTransient(errors.New("Error 403, PERMISSION_DENIED")))
}
