// Package openaiclient builds go-openai clients and maps their errors onto
// models.ServiceError.
package openaiclient

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/nguyentantai21042004/audio-summarizer/internal/models"
	"github.com/sashabaranov/go-openai"
)

// ServiceName labels errors raised by OpenAI calls.
const ServiceName = "openai"

// New returns a client for apiKey. baseURL overrides the public endpoint when set.
func New(apiKey, baseURL string, httpClient *http.Client) (*openai.Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, &models.ConfigurationError{Field: "OPENAI_API_KEY", Msg: "environment variable is not set"}
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}

	return openai.NewClientWithConfig(cfg), nil
}

// Classify wraps err in a ServiceError, marking rate limits, server errors
// and transport failures as retryable.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var (
		apiErr    *openai.APIError
		reqErr    *openai.RequestError
		netErr    net.Error
		retryable bool
	)

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		retryable = false
	case errors.As(err, &apiErr):
		retryable = RetryableStatus(apiErr.HTTPStatusCode) && !isQuotaExhausted(apiErr)
	case errors.As(err, &reqErr):
		retryable = RetryableStatus(reqErr.HTTPStatusCode)
	case errors.As(err, &netErr), errors.Is(err, io.ErrUnexpectedEOF):
		retryable = true
	}

	return &models.ServiceError{Service: ServiceName, Op: op, Retryable: retryable, Err: err}
}

// QuotaExhausted is the error code OpenAI sends with a 429 when billing
// quota, not the rate limit, is exceeded.
const QuotaExhausted = "insufficient_quota"

func isQuotaExhausted(apiErr *openai.APIError) bool {
	if apiErr.Type == QuotaExhausted {
		return true
	}
	code, ok := apiErr.Code.(string)
	return ok && code == QuotaExhausted
}

// RetryableStatus reports whether an HTTP status is worth retrying.
func RetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code == http.StatusRequestTimeout || code >= http.StatusInternalServerError
}
