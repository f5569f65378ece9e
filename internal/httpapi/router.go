package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sumi-techmd/transcrib8/internal/config"
	"github.com/sumi-techmd/transcrib8/internal/logger"
	"github.com/sumi-techmd/transcrib8/internal/notes"
	"github.com/sumi-techmd/transcrib8/internal/transcriber"
)

// NewRouter wires the request boundary: upload validation, temp-file
// handling and status mapping live here, not in the core services.
func NewRouter(tr transcriber.Transcriber, svc notes.Service, cfg config.ServerConfig, tempDir string, log logger.Logger) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	maxBytes := cfg.MaxUploadMB * 1024 * 1024
	r.Use(func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	})

	h := &handler{
		transcriber: tr,
		notes:       svc,
		tempDir:     tempDir,
		maxUploadMB: cfg.MaxUploadMB,
		logger:      log,
	}

	r.GET("/", h.home)
	r.POST("/transcribe", h.transcribe)
	r.POST("/generate-notes", h.generateNotes)

	return r
}
