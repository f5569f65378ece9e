package textgen

import (
	"fmt"

	"github.com/sumi-techmd/transcrib8/internal/config"
	"github.com/sumi-techmd/transcrib8/internal/logger"
)

// New creates a Service for the configured provider.
func New(cfg config.NotesConfig, log logger.Logger) (Service, error) {
	switch cfg.Provider {
	case "openai":
		return newOpenAI(cfg, log), nil
	case "gemini":
		return newGemini(cfg, log), nil
	default:
		return nil, fmt.Errorf("unknown text generation provider: %q", cfg.Provider)
	}
}
