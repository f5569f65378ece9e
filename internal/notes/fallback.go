package notes

import (
	"fmt"
	"strings"
)

const (
	fallbackSummary = "Fallback notes (AI unavailable)."
	trivialSummary  = "Transcript too short to generate meaningful notes."
)

// fallbackNotes produces a deterministic extractive document with no
// external calls. Same transcript and title always yield the same output.
func fallbackNotes(transcript, title string, format Format) string {
	points := keyPoints(transcript)

	if format == FormatJSON {
		doc := Document{
			Title:                    title,
			Summary:                  fallbackSummary,
			KeyConcepts:              []Concept{},
			ImportantDetails:         []string{},
			StudyQuestions:           []Question{},
			MindmapBubbles:           []Bubble{},
			TranscriptCharacterCount: charCount(transcript),
		}
		for i, kp := range points {
			doc.KeyConcepts = append(doc.KeyConcepts, Concept{
				Term:        fmt.Sprintf("Point %d", i+1),
				Explanation: truncateChars(kp, 120),
			})
		}
		for i, kp := range points {
			if i >= 5 {
				break
			}
			doc.ImportantDetails = append(doc.ImportantDetails, kp)
		}
		for i, kp := range points {
			if i >= 8 {
				break
			}
			doc.MindmapBubbles = append(doc.MindmapBubbles, Bubble{
				Concept:    fmt.Sprintf("Point %d", i+1),
				Reason:     truncateChars(kp, 120),
				Importance: 3,
			})
		}
		return prettyJSON(doc)
	}

	lines := []string{
		"# " + title,
		"## Summary",
		fallbackSummary,
		"## Key Concepts",
	}
	for _, kp := range points {
		lines = append(lines, "- "+kp)
	}
	lines = append(lines, "", "## Full Transcript", transcript)
	return strings.Join(lines, "\n")
}

// keyPoints splits the transcript into pseudo-sentences on periods, keeps
// those longer than 40 characters, then every third one up to 10 total.
func keyPoints(transcript string) []string {
	sentences := strings.Split(strings.ReplaceAll(transcript, ".", ".\n"), "\n")

	var kept []string
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if charCount(s) > 40 {
			kept = append(kept, s)
		}
	}

	var points []string
	for i := 0; i < len(kept) && len(points) < 10; i += 3 {
		points = append(points, kept[i])
	}
	return points
}

// trivialNotes is the placeholder for transcripts too short to process.
func trivialNotes(transcript, title string, format Format) string {
	if format == FormatJSON {
		return prettyJSON(Document{
			Title:                    title,
			Summary:                  trivialSummary,
			KeyConcepts:              []Concept{},
			ImportantDetails:         []string{},
			StudyQuestions:           []Question{},
			MindmapBubbles:           []Bubble{},
			TranscriptCharacterCount: charCount(transcript),
		})
	}
	return trivialSummary
}
