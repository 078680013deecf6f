package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gaus-thesis/internal/analyzer/config"
	"gaus-thesis/internal/analyzer/dto"
	"gaus-thesis/pkg/logger"

	"github.com/anthropics/anthropic-sdk-go"
	"golang.org/x/time/rate"
)

type anthropicRepository struct {
	cfg            *config.Config
	logger         *logger.Logger
	client         *anthropic.Client
	requestLimiter *rate.Limiter
}

// NewAnthropicRepository creates a CompletionRepository that uses the Anthropic Messages API.
func NewAnthropicRepository(cfg *config.Config, log *logger.Logger, client *anthropic.Client) CompletionRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.Anthropic.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	return &anthropicRepository{
		cfg:            cfg,
		logger:         log,
		client:         client,
		requestLimiter: requestLimiter,
	}
}

func (r *anthropicRepository) Complete(ctx context.Context, req dto.CompletionRequest) (string, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for request limit: %w", err)
	}

	r.logger.DebugContext(ctx, "Request Anthropic API",
		logger.StringField("model", r.cfg.Anthropic.Model),
		logger.IntField("max_tokens", req.MaxTokens),
	)

	message, err := r.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(r.cfg.Anthropic.Model),
		MaxTokens:   int64(req.MaxTokens),
		Temperature: anthropic.Float(req.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	})
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to send request to Anthropic API", logger.ErrorField(err))
		return "", fmt.Errorf("failed to call Anthropic API: %w", err)
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", errors.New("anthropic returned empty response")
	}
	return text, nil
}
