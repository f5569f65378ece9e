package notes

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTrivialSkipsExternalCalls(t *testing.T) {
	gen := &fakeGen{}
	svc := newTestService(gen, 4000, 5)

	res := svc.Generate(context.Background(), "   tiny transcript   ", "Intro", FormatMarkdown)

	assert.Equal(t, SourceTrivial, res.Source)
	assert.Equal(t, trivialSummary, res.Output)
	assert.Empty(t, gen.calls)
}

func TestGenerateSingleChunkSkipsCondensation(t *testing.T) {
	gen := &fakeGen{handler: func(call int, system, user string) (string, error) {
		return "## Summary\nnotes here", nil
	}}
	svc := newTestService(gen, 4000, 5)
	transcript := strings.Repeat("lecture content. ", 10)

	res := svc.Generate(context.Background(), transcript, "Intro", FormatMarkdown)

	assert.Equal(t, SourceModel, res.Source)
	require.Len(t, gen.calls, 1)
	// The untouched transcript goes straight into the final prompt.
	assert.Contains(t, gen.calls[0].User, transcript)
	assert.Equal(t, generateSystemPrompt, gen.calls[0].System)
	assert.InDelta(t, 0.6, gen.calls[0].Temperature, 0.001)
	assert.Equal(t, 1800, gen.calls[0].MaxTokens)
}

func TestGenerateMultiChunkCondenses(t *testing.T) {
	gen := &fakeGen{handler: func(call int, system, user string) (string, error) {
		if strings.Contains(system, "bullet points") {
			return "- a fact", nil
		}
		return "final notes", nil
	}}
	svc := newTestService(gen, 100, 5)
	transcript := strings.Repeat("x", 250)

	res := svc.Generate(context.Background(), transcript, "Intro", FormatMarkdown)

	assert.Equal(t, SourceModel, res.Source)
	assert.Equal(t, "final notes", res.Output)
	// 3 chunk summaries plus one final generation.
	require.Len(t, gen.calls, 4)

	final := gen.calls[3]
	assert.Contains(t, final.User, "SYNTHESIZED BULLET SUMMARIES (original length 250 chars)")
	assert.NotContains(t, final.User, transcript)
}

func TestGenerateFailureEqualsFallback(t *testing.T) {
	gen := &fakeGen{handler: func(call int, system, user string) (string, error) {
		return "", errors.New("service unavailable")
	}}
	svc := newTestService(gen, 4000, 5)
	transcript := "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incidunt ut labore."

	res := svc.Generate(context.Background(), transcript, "Intro", FormatMarkdown)

	assert.Equal(t, SourceFallback, res.Source)
	assert.Error(t, res.Reason)
	assert.Equal(t, fallbackNotes(transcript, "Intro", FormatMarkdown), res.Output)
	assert.Contains(t, res.Output, "## Summary")
	assert.Contains(t, res.Output, "## Key Concepts")
}

func TestGenerateFailureAtFinalStepAfterCondensation(t *testing.T) {
	gen := &fakeGen{handler: func(call int, system, user string) (string, error) {
		if strings.Contains(system, "bullet points") {
			return "- a fact", nil
		}
		return "", errors.New("boom")
	}}
	svc := newTestService(gen, 100, 5)
	transcript := strings.Repeat("some spoken words here. ", 20)

	res := svc.Generate(context.Background(), transcript, "Intro", FormatJSON)

	assert.Equal(t, SourceFallback, res.Source)
	// Fallback always works from the original transcript, not the digest.
	assert.Equal(t, fallbackNotes(transcript, "Intro", FormatJSON), res.Output)
}

func TestGenerateJSONCharCountUsesOriginal(t *testing.T) {
	gen := &fakeGen{handler: func(call int, system, user string) (string, error) {
		if strings.Contains(system, "bullet points") {
			return "- condensed fact", nil
		}
		return `{"title": "Intro", "summary": "s", "transcript_character_count": 42}`, nil
	}}
	svc := newTestService(gen, 100, 5)
	transcript := strings.Repeat("z", 333)

	res := svc.Generate(context.Background(), transcript, "Intro", FormatJSON)

	require.Equal(t, SourceModel, res.Source)
	var data map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(res.Output), &data))
	assert.Equal(t, float64(333), data["transcript_character_count"])
}

func TestGenerateJSONMalformedReplyRepaired(t *testing.T) {
	reply := "Here are your notes: ## Mindmap Bubbles\n- **Entropy** — drives disorder"
	gen := &fakeGen{handler: func(call int, system, user string) (string, error) {
		return reply, nil
	}}
	svc := newTestService(gen, 4000, 5)
	transcript := strings.Repeat("thermodynamics lecture content. ", 5)

	res := svc.Generate(context.Background(), transcript, "Thermo", FormatJSON)

	// Parse failure is recovered locally; it is not a fallback.
	require.Equal(t, SourceModel, res.Source)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(res.Output), &data))
	assert.Equal(t, "JSON parsing failed", data["error"])
	assert.Equal(t, reply, data["raw_output"])

	bubbles := data["mindmap_bubbles"].([]interface{})
	require.Len(t, bubbles, 1)
	bubble := bubbles[0].(map[string]interface{})
	assert.Equal(t, "Entropy", bubble["concept"])
	assert.Equal(t, "drives disorder", bubble["reason"])
}

func TestGenerateDefaultsTitle(t *testing.T) {
	gen := &fakeGen{handler: func(call int, system, user string) (string, error) {
		return "notes", nil
	}}
	svc := newTestService(gen, 4000, 5)
	transcript := strings.Repeat("a lecture about something interesting. ", 4)

	svc.Generate(context.Background(), transcript, "", FormatMarkdown)

	require.Len(t, gen.calls, 1)
	assert.Contains(t, gen.calls[0].User, "Title: Lecture Notes")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"markdown", FormatMarkdown, false},
		{"MARKDOWN", FormatMarkdown, false},
		{"json", FormatJSON, false},
		{" JSON ", FormatJSON, false},
		{"", FormatMarkdown, false},
		{"yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
