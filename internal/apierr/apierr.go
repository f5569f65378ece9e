// Package apierr categorizes failures from external model APIs so each
// category can map to a distinct user-facing message and HTTP status.
package apierr

import (
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type Kind int

const (
	KindGeneric Kind = iota
	KindAuth
	KindRateLimit
	KindPayloadTooLarge
	KindModelNotFound
	KindFileRejected
)

// ServiceError wraps an external API failure with its category and a
// message safe to show to the caller.
type ServiceError struct {
	Kind Kind
	Err  error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.label(), e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func (e *ServiceError) label() string {
	switch e.Kind {
	case KindAuth:
		return "authentication failed"
	case KindRateLimit:
		return "rate limited"
	case KindPayloadTooLarge:
		return "payload too large"
	case KindModelNotFound:
		return "model not found"
	case KindFileRejected:
		return "file rejected"
	default:
		return "service error"
	}
}

// UserMessage returns the remediation guidance shown to API callers.
func (e *ServiceError) UserMessage() string {
	switch e.Kind {
	case KindAuth:
		return "Authentication with the transcription/notes provider failed. Check that the API key is valid and has not expired."
	case KindRateLimit:
		return "The provider is rate limiting requests. Wait a minute and try again."
	case KindPayloadTooLarge:
		return "The audio file is too large for the provider. Try a shorter recording, or convert it to 16kHz mono to shrink it."
	case KindModelNotFound:
		return "The configured model is not available on this provider. Check the model name in the configuration."
	case KindFileRejected:
		return "The provider rejected the audio file. Make sure it is a valid, uncorrupted recording in a supported format."
	default:
		return "The external service failed. Try again shortly."
	}
}

// New builds a ServiceError of the given kind from a plain message.
func New(kind Kind, format string, args ...interface{}) *ServiceError {
	return &ServiceError{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Classify maps a provider client error onto the taxonomy. go-openai
// errors carry an HTTP status; anything else falls back to message
// matching. Unknown failures come back as KindGeneric, never nil for a
// non-nil input.
func Classify(err error) *ServiceError {
	if err == nil {
		return nil
	}

	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}

	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	return &ServiceError{Kind: kindForStatus(status, err), Err: err}
}

func kindForStatus(status int, err error) Kind {
	switch status {
	case 401, 403:
		return KindAuth
	case 429:
		return KindRateLimit
	case 413:
		return KindPayloadTooLarge
	case 404:
		return KindModelNotFound
	case 400, 415, 422:
		return KindFileRejected
	}

	// Some gateways report quota problems without a clean status code.
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "quota") || strings.Contains(msg, "resource_exhausted") || strings.Contains(msg, "429"):
		return KindRateLimit
	case strings.Contains(msg, "api key") || strings.Contains(msg, "unauthorized"):
		return KindAuth
	case strings.Contains(msg, "too large"):
		return KindPayloadTooLarge
	}
	return KindGeneric
}
