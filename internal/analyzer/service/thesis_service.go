package service

import (
	"context"

	"gaus-thesis/internal/analyzer/config"
	"gaus-thesis/internal/analyzer/dto"
	"gaus-thesis/internal/analyzer/repository"
	"gaus-thesis/internal/entity"
	"gaus-thesis/pkg/bullet"
	"gaus-thesis/pkg/common"
	"gaus-thesis/pkg/logger"
)

const (
	catalystMaxTokens = 600
	riskMaxTokens     = 500
	thesisTemperature = 0.7

	defaultCatalystNewsLimit = 10
	defaultCatalystPostLimit = 1
)

// ThesisService produces the catalyst and risk narratives of an analysis.
// Completion failures never escape: they become a single error bullet.
type ThesisService interface {
	GenerateCatalystThesis(ctx context.Context, input dto.CatalystInput) []entity.CitedBullet
	GenerateRiskThesis(ctx context.Context, input dto.RiskInput) []string
}

// NewThesisService creates a new thesis service.
func NewThesisService(cfg *config.Config, completionRepo repository.CompletionRepository, logger *logger.Logger) ThesisService {
	newsLimit := cfg.Analysis.CatalystNewsLimit
	if newsLimit <= 0 {
		newsLimit = defaultCatalystNewsLimit
	}
	postLimit := cfg.Analysis.CatalystPostLimit
	if postLimit <= 0 {
		postLimit = defaultCatalystPostLimit
	}

	return &thesisService{
		completionRepo: completionRepo,
		logger:         logger,
		newsLimit:      newsLimit,
		postLimit:      postLimit,
	}
}

type thesisService struct {
	completionRepo repository.CompletionRepository
	logger         *logger.Logger
	newsLimit      int
	postLimit      int
}

// GenerateCatalystThesis cites news by position in the truncated context list.
// Citations that do not resolve to a context item are dropped.
func (s *thesisService) GenerateCatalystThesis(ctx context.Context, input dto.CatalystInput) []entity.CitedBullet {
	s.logger.InfoContext(ctx, "Generating catalyst thesis", logger.StringField("ticker", input.Ticker))

	input.News = truncate(input.News, s.newsLimit)
	input.Posts = truncate(input.Posts, s.postLimit)

	text, err := s.completionRepo.Complete(ctx, dto.CompletionRequest{
		Prompt:      repository.BuildCatalystPrompt(input),
		MaxTokens:   catalystMaxTokens,
		Temperature: thesisTemperature,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Error generating catalyst thesis", logger.StringField("ticker", input.Ticker), logger.ErrorField(err))
		return []entity.CitedBullet{{Text: common.ErrorBulletPrefix + err.Error(), Sources: []entity.Source{}}}
	}

	lines := bullet.CitedLines(text)
	bullets := make([]entity.CitedBullet, 0, len(lines))
	for _, line := range lines {
		sources := make([]entity.Source, 0, len(line.Citations))
		for _, n := range line.Citations {
			idx := n - 1
			if idx < 0 || idx >= len(input.News) {
				continue
			}
			sources = append(sources, entity.SourceFromNews(input.News[idx]))
		}
		bullets = append(bullets, entity.CitedBullet{Text: line.Text, Sources: sources})
	}

	s.logger.InfoContext(ctx, "Generated catalyst bullets", logger.StringField("ticker", input.Ticker), logger.IntField("count", len(bullets)))
	return bullets
}

func (s *thesisService) GenerateRiskThesis(ctx context.Context, input dto.RiskInput) []string {
	s.logger.InfoContext(ctx, "Generating risk thesis", logger.StringField("ticker", input.Ticker))

	text, err := s.completionRepo.Complete(ctx, dto.CompletionRequest{
		Prompt:      repository.BuildRiskPrompt(input),
		MaxTokens:   riskMaxTokens,
		Temperature: thesisTemperature,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Error generating risk thesis", logger.StringField("ticker", input.Ticker), logger.ErrorField(err))
		return []string{common.ErrorBulletPrefix + err.Error()}
	}

	bullets := bullet.Lines(text)
	if bullets == nil {
		bullets = []string{}
	}

	s.logger.InfoContext(ctx, "Generated risk bullets", logger.StringField("ticker", input.Ticker), logger.IntField("count", len(bullets)))
	return bullets
}

func truncate[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
