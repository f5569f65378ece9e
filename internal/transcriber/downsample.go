package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// downsample re-encodes an oversized recording to 16kHz mono mp3, which is
// what speech models consume anyway and shrinks the upload well below API
// payload limits.
func (t *implTranscriber) downsample(ctx context.Context, audioPath string) (string, error) {
	if err := os.MkdirAll(t.tempDir, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	outPath := filepath.Join(t.tempDir, fmt.Sprintf("%s-%s.mp3", base, uuid.NewString()))

	args := []string{
		"-i", audioPath,
		"-vn",          // audio only
		"-ar", "16000", // 16kHz sample rate
		"-ac", "1", // mono
		"-b:a", "48k",
		"-y",
		outPath,
	}

	if _, err := t.executor.Execute(ctx, t.ffmpegPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg downsample: %w", err)
	}

	return outPath, nil
}
