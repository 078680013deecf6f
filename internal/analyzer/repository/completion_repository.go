package repository

import (
	"context"
	"fmt"

	"gaus-thesis/internal/analyzer/config"
	"gaus-thesis/internal/analyzer/dto"
	"gaus-thesis/pkg/common"
	"gaus-thesis/pkg/logger"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"google.golang.org/genai"
)

// CompletionRepository turns a single-turn prompt into text.
type CompletionRepository interface {
	Complete(ctx context.Context, req dto.CompletionRequest) (string, error)
}

// NewCompletionRepository builds the repository for cfg.AI.Provider.
func NewCompletionRepository(ctx context.Context, cfg *config.Config, log *logger.Logger) (CompletionRepository, error) {
	switch cfg.AI.Provider {
	case common.ProviderGemini:
		if cfg.Gemini.APIKey == "" {
			// Requests fail with a configuration error instead of the process failing to start.
			log.Warn("Gemini API key not configured, completions disabled")
			return NewGeminiAIRepository(cfg, log, nil), nil
		}
		genAiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.Gemini.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini AI client: %w", err)
		}
		return NewGeminiAIRepository(cfg, log, genAiClient), nil
	case common.ProviderAnthropic, "":
		client := anthropic.NewClient(option.WithAPIKey(cfg.Anthropic.APIKey))
		return NewAnthropicRepository(cfg, log, &client), nil
	default:
		return nil, fmt.Errorf("unsupported ai provider %q", cfg.AI.Provider)
	}
}
