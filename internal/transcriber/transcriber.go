package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/sumi-techmd/transcrib8/internal/apierr"
)

var allowedExtensions = map[string]bool{
	".mp3":  true,
	".mp4":  true,
	".wav":  true,
	".m4a":  true,
	".mpeg": true,
	".mpga": true,
	".webm": true,
}

// AllowedExtension reports whether the filename has a supported audio
// extension. Comparison is case-insensitive.
func AllowedExtension(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// AllowedExtensions lists the supported audio extensions, sorted.
func AllowedExtensions() []string {
	exts := make([]string, 0, len(allowedExtensions))
	for ext := range allowedExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// TranscribeFile validates the audio file, sends it to the speech-to-text
// API and returns the normalized transcript.
func (t *implTranscriber) TranscribeFile(ctx context.Context, audioPath, language string) (*Result, error) {
	info, err := os.Stat(audioPath)
	if err != nil {
		return nil, fmt.Errorf("audio file not found: %w", err)
	}

	if !AllowedExtension(audioPath) {
		return nil, fmt.Errorf("unsupported audio format %q, supported: %s",
			filepath.Ext(audioPath), strings.Join(AllowedExtensions(), ", "))
	}

	uploadPath := audioPath
	if t.maxDirectBytes > 0 && info.Size() > t.maxDirectBytes {
		t.logger.Info(ctx, "File is %.2f MB, downsampling before upload", float64(info.Size())/(1024*1024))
		downsampled, err := t.downsample(ctx, audioPath)
		if err != nil {
			t.logger.Warn(ctx, "Downsampling failed, uploading original: %v", err)
		} else {
			uploadPath = downsampled
			defer t.cleanupTempFile(ctx, downsampled)
		}
	}

	if language == "" {
		language = t.language
	}

	t.logger.Info(ctx, "Transcribing %s with %s", filepath.Base(audioPath), t.model)

	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		FilePath: uploadPath,
		Language: language,
		Format:   openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", apierr.Classify(err))
	}

	detected := resp.Language
	if detected == "" {
		detected = "auto-detected"
	}

	return &Result{
		Text:     strings.TrimSpace(resp.Text),
		Language: detected,
		Status:   "success",
	}, nil
}

func (t *implTranscriber) cleanupTempFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		t.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	} else {
		t.logger.Debug(ctx, "Cleaned up temp file: %s", path)
	}
}
