package models

import (
	"errors"
	"fmt"
)

// ConfigurationError reports a missing or invalid setting, such as an absent
// API key. It is detected before any other work starts.
type ConfigurationError struct {
	Field string
	Msg   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s: %s", e.Field, e.Msg)
}

// InputNotFoundError reports an audio path that does not resolve to a file.
type InputNotFoundError struct {
	Path string
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("audio file not found: %s", e.Path)
}

// DecodeError reports audio content that could not be decoded or exported
// while chunking.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode audio %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ServiceError reports a failed transcription or summarization call.
type ServiceError struct {
	Service   string
	Op        string
	Retryable bool
	Err       error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Service, e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// IsRetryable reports whether err carries a ServiceError marked retryable.
func IsRetryable(err error) bool {
	var se *ServiceError
	return errors.As(err, &se) && se.Retryable
}
