package notes

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

const summarySystemPrompt = "Return ONLY bullet points."

const summaryPromptTemplate = `You are condensing part %d/%d of a lecture transcript.
Extract 3-6 bullet points capturing key concepts or facts.
Avoid repetition.
PART START
%s
PART END`

var reBulletMarker = regexp.MustCompile(`^([-*•]|\d+[.)])\s*`)

// summarizeChunk issues one text-generation call for a chunk and returns the
// cleaned bullet lines. Failures propagate; the synthesizer decides on
// fallback.
func (s *implService) summarizeChunk(ctx context.Context, chunk string, index, total int) ([]string, error) {
	prompt := fmt.Sprintf(summaryPromptTemplate, index, total, chunk)

	reply, err := s.gen.Complete(ctx, summarySystemPrompt, prompt, summaryTemperature, summaryMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("summarize chunk %d/%d: %w", index, total, err)
	}

	return splitBullets(reply), nil
}

// condense replaces a multi-chunk transcript with a bullet digest. Chunks
// are summarized strictly in order: dedup must drop later duplicates of
// earlier content, so this loop cannot be parallelized as written.
func (s *implService) condense(ctx context.Context, chunks []string, originalChars int) (string, error) {
	seen := make(map[string]bool)
	var bullets []string

	for i, chunk := range chunks {
		lines, err := s.summarizeChunk(ctx, chunk, i+1, len(chunks))
		if err != nil {
			return "", err
		}
		bullets = appendDeduped(bullets, lines, seen)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "SYNTHESIZED BULLET SUMMARIES (original length %d chars)\n", originalChars)
	for _, bullet := range bullets {
		b.WriteString("- ")
		b.WriteString(bullet)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

// splitBullets turns a raw model reply into clean bullet lines: one line per
// bullet, leading markers stripped, blanks dropped.
func splitBullets(reply string) []string {
	var bullets []string
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		line = reBulletMarker.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		bullets = append(bullets, line)
	}
	return bullets
}

// appendDeduped adds lines whose normalized key has not been seen yet.
// Keys are lowercased, whitespace-collapsed and truncated to 200 chars;
// long bullets sharing a 200-char prefix therefore collide. Known
// limitation, kept for output stability.
func appendDeduped(dst, lines []string, seen map[string]bool) []string {
	for _, line := range lines {
		key := normalizeKey(line)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		dst = append(dst, line)
	}
	return dst
}

func normalizeKey(line string) string {
	key := strings.ToLower(strings.Join(strings.Fields(line), " "))
	return truncateChars(key, 200)
}
