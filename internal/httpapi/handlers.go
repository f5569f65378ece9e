package httpapi

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sumi-techmd/transcrib8/internal/apierr"
	"github.com/sumi-techmd/transcrib8/internal/logger"
	"github.com/sumi-techmd/transcrib8/internal/notes"
	"github.com/sumi-techmd/transcrib8/internal/transcriber"
)

type handler struct {
	transcriber transcriber.Transcriber
	notes       notes.Service
	tempDir     string
	maxUploadMB int64
	logger      logger.Logger
}

func (h *handler) home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "running",
		"version": "2.0",
		"endpoints": gin.H{
			"POST /transcribe":     "Upload audio file and get transcription",
			"POST /generate-notes": "Generate structured notes from transcript text",
			"GET /":                "This help message",
		},
		"audio_formats":      transcriber.AllowedExtensions(),
		"max_upload_size_mb": h.maxUploadMB,
	})
}

func (h *handler) transcribe(c *gin.Context) {
	ctx := c.Request.Context()

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	if file.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file selected"})
		return
	}
	if !transcriber.AllowedExtension(file.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "File type not allowed. Supported: " + strings.Join(transcriber.AllowedExtensions(), ", "),
		})
		return
	}

	if err := os.MkdirAll(h.tempDir, 0755); err != nil {
		h.logger.Error(ctx, "Failed to create temp dir: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not store upload"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	tempPath := filepath.Join(h.tempDir, uuid.NewString()+ext)
	if err := c.SaveUploadedFile(file, tempPath); err != nil {
		h.logger.Error(ctx, "Failed to save upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not store upload"})
		return
	}
	defer func() {
		if err := os.Remove(tempPath); err != nil {
			h.logger.Warn(ctx, "Failed to cleanup upload %s: %v", tempPath, err)
		}
	}()

	h.logger.Info(ctx, "Transcribing upload: %s", file.Filename)

	result, err := h.transcriber.TranscribeFile(ctx, tempPath, c.PostForm("language"))
	if err != nil {
		status, message := statusForError(err)
		h.logger.Error(ctx, "Transcription failed: %v", err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        result.Status,
		"filename":      safeFilename(file.Filename),
		"transcription": result.Text,
		"language":      result.Language,
	})
}

type generateNotesRequest struct {
	Transcript string `json:"transcript"`
	Title      string `json:"title"`
	Format     string `json:"format"`
}

func (h *handler) generateNotes(c *gin.Context) {
	ctx := c.Request.Context()

	var req generateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must be JSON"})
		return
	}
	if strings.TrimSpace(req.Transcript) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Transcript text is required"})
		return
	}

	format, err := notes.ParseFormat(req.Format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format must be 'markdown' or 'json'"})
		return
	}

	title := req.Title
	if title == "" {
		title = "Lecture Notes"
	}

	h.logger.Info(ctx, "Generating %s notes for %q", format, title)

	// Generate never fails: external errors degrade to the deterministic
	// fallback, reported through the source field.
	result := h.notes.Generate(ctx, req.Transcript, title, format)

	c.JSON(http.StatusOK, gin.H{
		"status":            "success",
		"title":             title,
		"format":            string(format),
		"notes":             result.Output,
		"source":            string(result.Source),
		"transcript_length": len([]rune(req.Transcript)),
		"word_count":        len(strings.Fields(req.Transcript)),
	})
}

// statusForError maps categorized service errors onto HTTP statuses with
// user-facing remediation messages.
func statusForError(err error) (int, string) {
	var svcErr *apierr.ServiceError
	if !errors.As(err, &svcErr) {
		return http.StatusInternalServerError, "Transcription failed: " + err.Error()
	}

	switch svcErr.Kind {
	case apierr.KindRateLimit:
		return http.StatusTooManyRequests, svcErr.UserMessage()
	case apierr.KindPayloadTooLarge:
		return http.StatusRequestEntityTooLarge, svcErr.UserMessage()
	case apierr.KindFileRejected:
		return http.StatusUnprocessableEntity, svcErr.UserMessage()
	case apierr.KindAuth, apierr.KindModelNotFound:
		return http.StatusBadGateway, svcErr.UserMessage()
	default:
		return http.StatusBadGateway, svcErr.UserMessage()
	}
}

// safeFilename strips any path components from a client-supplied filename.
func safeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	return filepath.Base(name)
}
