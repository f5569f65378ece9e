package transcriber

import (
	openai "github.com/sashabaranov/go-openai"

	"github.com/sumi-techmd/transcrib8/internal/config"
	"github.com/sumi-techmd/transcrib8/internal/logger"
	"github.com/sumi-techmd/transcrib8/pkg/executor"
)

type implTranscriber struct {
	client         *openai.Client
	model          string
	language       string
	maxDirectBytes int64
	ffmpegPath     string
	tempDir        string
	executor       executor.Executor
	logger         logger.Logger
}

// New creates a Transcriber talking to a Whisper-compatible endpoint. The
// base URL is configurable so Groq's whisper-large-v3 works alongside
// OpenAI's whisper-1.
func New(cfg config.TranscribeConfig, tempDir string, exec executor.Executor, log logger.Logger) Transcriber {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &implTranscriber{
		client:         openai.NewClientWithConfig(clientCfg),
		model:          cfg.Model,
		language:       cfg.Language,
		maxDirectBytes: cfg.MaxDirectUploadMB * 1024 * 1024,
		ffmpegPath:     cfg.FFmpegPath,
		tempDir:        tempDir,
		executor:       exec,
		logger:         log,
	}
}
