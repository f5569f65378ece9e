package transcriber

import "context"

// Transcriber sends audio files to an external speech-to-text API and
// normalizes the response.
type Transcriber interface {
	TranscribeFile(ctx context.Context, audioPath, language string) (*Result, error)
}

// Result is a normalized transcription response.
type Result struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Status   string `json:"status"`
}
