package notes

import "encoding/json"

// Document is the structured notes record emitted by the JSON paths that
// build output locally (trivial, fallback). Model output is normalized as
// loose JSON instead, since the model is only asked, not forced, to match
// this shape.
type Document struct {
	Title                    string     `json:"title"`
	Summary                  string     `json:"summary"`
	KeyConcepts              []Concept  `json:"key_concepts"`
	ImportantDetails         []string   `json:"important_details"`
	StudyQuestions           []Question `json:"study_questions"`
	MindmapBubbles           []Bubble   `json:"mindmap_bubbles"`
	TranscriptCharacterCount int        `json:"transcript_character_count"`
}

type Concept struct {
	Term        string `json:"term"`
	Explanation string `json:"explanation"`
}

type Question struct {
	Question   string `json:"question"`
	Difficulty string `json:"difficulty"`
}

type Bubble struct {
	Concept    string `json:"concept"`
	Reason     string `json:"reason"`
	Importance int    `json:"importance"`
}

// repairRecord is emitted when the model's JSON reply cannot be parsed.
type repairRecord struct {
	Title                    string   `json:"title"`
	RawOutput                string   `json:"raw_output"`
	Error                    string   `json:"error"`
	MindmapBubbles           []Bubble `json:"mindmap_bubbles"`
	TranscriptCharacterCount int      `json:"transcript_character_count"`
}

func prettyJSON(v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
