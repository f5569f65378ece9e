package apierr

import (
	"errors"
	"fmt"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{
			name: "unauthorized status",
			err:  &openai.APIError{HTTPStatusCode: 401, Message: "invalid key"},
			want: KindAuth,
		},
		{
			name: "rate limit status",
			err:  &openai.APIError{HTTPStatusCode: 429, Message: "slow down"},
			want: KindRateLimit,
		},
		{
			name: "payload too large status",
			err:  &openai.APIError{HTTPStatusCode: 413, Message: "file too big"},
			want: KindPayloadTooLarge,
		},
		{
			name: "model not found status",
			err:  &openai.APIError{HTTPStatusCode: 404, Message: "no such model"},
			want: KindModelNotFound,
		},
		{
			name: "bad request maps to file rejected",
			err:  &openai.APIError{HTTPStatusCode: 400, Message: "could not decode audio"},
			want: KindFileRejected,
		},
		{
			name: "quota message without status",
			err:  errors.New("generate content: RESOURCE_EXHAUSTED"),
			want: KindRateLimit,
		},
		{
			name: "unknown failure",
			err:  errors.New("connection reset by peer"),
			want: KindGeneric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			assert.Equal(t, tt.want, got.Kind)
			assert.NotEmpty(t, got.UserMessage())
		})
	}
}

func TestClassifyNil(t *testing.T) {
	assert.Nil(t, Classify(nil))
}

func TestClassifyPreservesExisting(t *testing.T) {
	orig := New(KindPayloadTooLarge, "file is %dMB", 80)
	wrapped := fmt.Errorf("transcribe: %w", orig)

	got := Classify(wrapped)
	assert.Equal(t, KindPayloadTooLarge, got.Kind)
}

func TestUserMessagesAreDistinct(t *testing.T) {
	kinds := []Kind{KindGeneric, KindAuth, KindRateLimit, KindPayloadTooLarge, KindModelNotFound, KindFileRejected}
	seen := make(map[string]bool)
	for _, k := range kinds {
		msg := (&ServiceError{Kind: k, Err: errors.New("x")}).UserMessage()
		assert.False(t, seen[msg], "duplicate user message for kind %d", k)
		seen[msg] = true
	}
}
