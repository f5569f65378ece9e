package textgen

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/sumi-techmd/transcrib8/internal/apierr"
	"github.com/sumi-techmd/transcrib8/internal/config"
	"github.com/sumi-techmd/transcrib8/internal/logger"
)

type implGemini struct {
	apiKey string
	model  string
	logger logger.Logger
}

func newGemini(cfg config.NotesConfig, log logger.Logger) Service {
	return &implGemini{
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		logger: log,
	}
}

func (s *implGemini) Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float32, maxTokens int) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create gemini client: %w", apierr.Classify(err))
	}

	genCfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(temperature),
		MaxOutputTokens: int32(maxTokens),
	}
	if systemPrompt != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}

	result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(userPrompt), genCfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", apierr.Classify(err))
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", apierr.New(apierr.KindGeneric, "empty response from %s", s.model)
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}

	return strings.TrimSpace(text), nil
}
