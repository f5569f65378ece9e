package processor

import (
	"github.com/sumi-techmd/transcrib8/internal/config"
	"github.com/sumi-techmd/transcrib8/internal/logger"
	"github.com/sumi-techmd/transcrib8/internal/notes"
	"github.com/sumi-techmd/transcrib8/internal/transcriber"
)

type implProcessor struct {
	cfg         *config.Config
	transcriber transcriber.Transcriber
	notes       notes.Service
	logger      logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, tr transcriber.Transcriber, svc notes.Service, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		transcriber: tr,
		notes:       svc,
		logger:      log,
	}
}
