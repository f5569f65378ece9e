package notes

import (
	"context"
	"fmt"
	"strings"
)

// Format selects the output shape of a notes document.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// ParseFormat normalizes a caller-supplied format string. Empty input
// defaults to markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "markdown":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("format must be 'markdown' or 'json', got %q", s)
	}
}

// Source records which path produced a document.
type Source string

const (
	// SourceModel means the external text-generation call succeeded.
	SourceModel Source = "model"
	// SourceFallback means an external step failed and the deterministic
	// offline generator produced the document instead.
	SourceFallback Source = "fallback"
	// SourceTrivial means the transcript was too short to process.
	SourceTrivial Source = "trivial"
)

// Result is the outcome of one synthesis call. Output is always usable;
// Reason is non-nil only when Source is SourceFallback.
type Result struct {
	Output string
	Source Source
	Reason error
}

// Service generates structured study notes from a transcript. Generate
// never fails: any external error degrades to the deterministic fallback.
type Service interface {
	Generate(ctx context.Context, transcript, title string, format Format) Result
}
