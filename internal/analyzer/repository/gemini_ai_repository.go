package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gaus-thesis/internal/analyzer/config"
	"gaus-thesis/internal/analyzer/dto"
	"gaus-thesis/pkg/apperror"
	"gaus-thesis/pkg/logger"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// geminiAIRepository is an implementation of CompletionRepository that uses the Google Gemini API.
type geminiAIRepository struct {
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
	genAiClient    *genai.Client
}

// NewGeminiAIRepository creates a new instance of geminiAIRepository.
func NewGeminiAIRepository(cfg *config.Config, log *logger.Logger, genAiClient *genai.Client) CompletionRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.Gemini.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	return &geminiAIRepository{
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
		genAiClient:    genAiClient,
	}
}

func (r *geminiAIRepository) Complete(ctx context.Context, req dto.CompletionRequest) (string, error) {
	if r.genAiClient == nil {
		return "", apperror.Configuration("GEMINI_API_KEY not configured")
	}
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for request limit: %w", err)
	}

	r.logger.DebugContext(ctx, "Request Gemini API",
		logger.StringField("model", r.cfg.Gemini.Model),
		logger.IntField("max_tokens", req.MaxTokens),
	)

	result, err := r.genAiClient.Models.GenerateContent(ctx, r.cfg.Gemini.Model, genai.Text(req.Prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(req.Temperature)),
		MaxOutputTokens: int32(req.MaxTokens),
	})
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to send request to Gemini API", logger.ErrorField(err))
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", errors.New("gemini returned empty response")
	}
	return text, nil
}
