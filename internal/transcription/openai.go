package transcription

import (
	"context"
	"strings"

	"github.com/nguyentantai21042004/audio-summarizer/internal/openaiclient"
	"github.com/sashabaranov/go-openai"
)

// DefaultModel is the Whisper model used for transcription.
const DefaultModel = openai.Whisper1

type openaiClient struct {
	client   *openai.Client
	model    string
	language string
}

// NewOpenAIClient returns a Client backed by the OpenAI audio API.
// language is an optional ISO-639-1 hint.
func NewOpenAIClient(client *openai.Client, model, language string) Client {
	if model == "" {
		model = DefaultModel
	}
	return &openaiClient{client: client, model: model, language: language}
}

func (c *openaiClient) TranscribeFile(ctx context.Context, path string) (string, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.model,
		FilePath: path,
		Format:   openai.AudioResponseFormatText,
		Language: c.language,
	})
	if err != nil {
		return "", openaiclient.Classify("transcription", err)
	}

	return strings.TrimSpace(resp.Text), nil
}
