package notes

import (
	"context"
	"fmt"
	"strings"
)

// Generate runs the full synthesis pipeline: triviality check, chunking,
// condensation, prompting, generation and reconciliation. It never returns
// an error; any external failure selects the deterministic fallback and is
// recorded in the Result.
func (s *implService) Generate(ctx context.Context, transcript, title string, format Format) Result {
	if title == "" {
		title = "Lecture Notes"
	}

	if charCount(strings.TrimSpace(transcript)) < minTranscriptChars {
		s.logger.Debug(ctx, "Transcript below %d chars, returning placeholder", minTranscriptChars)
		return Result{Output: trivialNotes(transcript, title, format), Source: SourceTrivial}
	}

	output, err := s.synthesize(ctx, transcript, title, format)
	if err != nil {
		s.logger.Warn(ctx, "Note generation failed, using deterministic fallback: %v", err)
		return Result{
			Output: fallbackNotes(transcript, title, format),
			Source: SourceFallback,
			Reason: err,
		}
	}

	return Result{Output: output, Source: SourceModel}
}

func (s *implService) synthesize(ctx context.Context, transcript, title string, format Format) (string, error) {
	originalChars := charCount(transcript)

	chunks := splitChunks(transcript, s.chunkCharLimit, s.maxChunks)
	working := transcript
	if len(chunks) > 1 {
		s.logger.Info(ctx, "Condensing transcript: %d chunks of up to %d chars", len(chunks), s.chunkCharLimit)
		condensed, err := s.condense(ctx, chunks, originalChars)
		if err != nil {
			return "", err
		}
		working = condensed
	}

	var prompt string
	if format == FormatJSON {
		prompt = buildJSONPrompt(working, title)
	} else {
		prompt = buildMarkdownPrompt(working, title)
	}

	reply, err := s.gen.Complete(ctx, generateSystemPrompt, prompt, s.temperature, s.maxTokens)
	if err != nil {
		return "", fmt.Errorf("generate notes: %w", err)
	}

	if format == FormatJSON {
		return reconcileJSON(reply, title, originalChars), nil
	}
	return strings.TrimSpace(reply), nil
}
