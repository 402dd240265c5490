package summarizer

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/audio-summarizer/internal/models"
	"github.com/nguyentantai21042004/audio-summarizer/internal/openaiclient"
	"github.com/sashabaranov/go-openai"
)

// DefaultOpenAIModel is the chat model used for summaries.
const DefaultOpenAIModel = openai.GPT4o

type openaiBackend struct {
	client *openai.Client
	model  string
}

// NewOpenAIBackend returns a Backend using the chat completions API.
func NewOpenAIBackend(client *openai.Client, model string) Backend {
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &openaiBackend{client: client, model: model}
}

func (b *openaiBackend) Complete(ctx context.Context, req Request) (string, error) {
	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", openaiclient.Classify("chat completion", err)
	}

	if len(resp.Choices) == 0 {
		return "", &models.ServiceError{
			Service: openaiclient.ServiceName,
			Op:      "chat completion",
			Err:     errors.New("response has no choices"),
		}
	}

	return resp.Choices[0].Message.Content, nil
}
