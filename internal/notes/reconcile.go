package notes

import (
	"encoding/json"
	"regexp"
	"strings"
)

// reconcileJSON turns a raw model reply into normalized pretty-printed JSON.
// A parseable object gets missing fields defaulted and importance values
// clamped; anything else goes through the heuristic line scanner.
func reconcileJSON(reply, title string, originalChars int) string {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(reply), &data); err != nil || data == nil {
		return prettyJSON(repairRecord{
			Title:                    title,
			RawOutput:                reply,
			Error:                    "JSON parsing failed",
			MindmapBubbles:           extractBubbles(reply),
			TranscriptCharacterCount: originalChars,
		})
	}

	if _, ok := data["title"]; !ok {
		data["title"] = title
	}
	// The count always reflects the original transcript, even when the
	// model reports the condensed length.
	data["transcript_character_count"] = originalChars

	bubbles, ok := data["mindmap_bubbles"].([]interface{})
	if !ok {
		data["mindmap_bubbles"] = []interface{}{}
	} else {
		for _, entry := range bubbles {
			if m, ok := entry.(map[string]interface{}); ok {
				m["importance"] = clampImportance(m["importance"])
			}
		}
	}

	return prettyJSON(data)
}

// clampImportance forces an importance value into [1,5]. Non-numeric values
// default to 3.
func clampImportance(v interface{}) int {
	var n int
	switch value := v.(type) {
	case float64:
		n = int(value)
	case int:
		n = value
	default:
		return 3
	}

	if n < 1 {
		return 1
	}
	if n > 5 {
		return 5
	}
	return n
}

const maxExtractedBubbles = 12

var reBubbleLine = regexp.MustCompile(`^-\s+(?:\*\*(.+?)\*\*|(.+?))\s+—\s+(.+)$`)

// extractBubbles scans unparseable output for a "Mindmap Bubbles" section
// and pulls concept/reason pairs from its bullet lines.
func extractBubbles(raw string) []Bubble {
	bubbles := []Bubble{}
	inSection := false

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)

		if !inSection {
			if strings.Contains(trimmed, "Mindmap Bubbles") {
				inSection = true
			}
			continue
		}

		if strings.HasPrefix(trimmed, "#") {
			break
		}

		m := reBubbleLine.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		concept := m[1]
		if concept == "" {
			concept = m[2]
		}
		bubbles = append(bubbles, Bubble{
			Concept:    strings.TrimSpace(concept),
			Reason:     strings.TrimSpace(m[3]),
			Importance: 3,
		})
		if len(bubbles) >= maxExtractedBubbles {
			break
		}
	}

	return bubbles
}
