package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sumi-techmd/transcrib8/internal/exporter"
	"github.com/sumi-techmd/transcrib8/internal/notes"
)

// Process runs the whole drop-folder pipeline for one recording:
// transcribe, generate notes, write output files, archive the original.
func (p *implProcessor) Process(ctx context.Context, audioPath string) error {
	startTime := time.Now()
	baseName := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing recording: %s", audioPath)
	p.logger.Info(ctx, "========================================")

	// Step 1: Transcribe
	result, err := p.transcriber.TranscribeFile(ctx, audioPath, p.cfg.Transcribe.Language)
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}

	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	transcriptPath := filepath.Join(p.cfg.Paths.Output, baseName+"_transcript.txt")
	if err := os.WriteFile(transcriptPath, []byte(result.Text), 0644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}

	// Step 2: Generate notes (never errors; fallback is reported in source)
	notesResult := p.notes.Generate(ctx, result.Text, baseName, notes.FormatMarkdown)
	if notesResult.Source == notes.SourceFallback {
		p.logger.Warn(ctx, "Notes for %s came from the offline fallback: %v", baseName, notesResult.Reason)
	}

	notesPath := filepath.Join(p.cfg.Paths.Output, baseName+"_notes.md")
	if err := os.WriteFile(notesPath, []byte(notesResult.Output), 0644); err != nil {
		return fmt.Errorf("write notes: %w", err)
	}

	// Step 3: Export notes to docx for sharing
	docxPath := filepath.Join(p.cfg.Paths.Output, baseName+"_notes.docx")
	if err := exporter.WriteMarkdown(baseName, notesResult.Output, docxPath); err != nil {
		p.logger.Warn(ctx, "Failed to export docx for %s: %v", baseName, err)
	}

	// Step 4: Move original recording to archived folder
	if err := p.moveToArchived(ctx, audioPath); err != nil {
		p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}

	duration := time.Since(startTime)
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Transcript: %s", transcriptPath)
	p.logger.Info(ctx, "Notes: %s", notesPath)
	p.logger.Info(ctx, "Processing time: %s", duration)
	p.logger.Info(ctx, "========================================")

	return nil
}

// moveToArchived moves a processed recording out of the input folder
func (p *implProcessor) moveToArchived(ctx context.Context, audioPath string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(audioPath))
	p.logger.Info(ctx, "Archiving: %s -> %s", audioPath, destPath)

	if err := os.Rename(audioPath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}

	return nil
}
