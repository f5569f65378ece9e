package notes

import (
	"github.com/sumi-techmd/transcrib8/internal/config"
	"github.com/sumi-techmd/transcrib8/internal/logger"
	"github.com/sumi-techmd/transcrib8/internal/textgen"
)

const (
	// Transcripts shorter than this (after trimming) skip generation.
	minTranscriptChars = 80

	summaryTemperature = 0.3
	summaryMaxTokens   = 300
)

type implService struct {
	gen            textgen.Service
	logger         logger.Logger
	chunkCharLimit int
	maxChunks      int
	maxTokens      int
	temperature    float32
}

// New creates a notes Service backed by the given text-generation service.
func New(cfg config.NotesConfig, gen textgen.Service, log logger.Logger) Service {
	return &implService{
		gen:            gen,
		logger:         log,
		chunkCharLimit: cfg.ChunkCharLimit,
		maxChunks:      cfg.MaxChunks,
		maxTokens:      cfg.MaxTokens,
		temperature:    cfg.Temperature,
	}
}
