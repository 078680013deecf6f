package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"gaus-thesis/internal/analyzer/config"
	"gaus-thesis/internal/analyzer/dto"
	"gaus-thesis/internal/entity"
	"gaus-thesis/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newsFixture(n int) []entity.NewsItem {
	items := make([]entity.NewsItem, n)
	for i := range items {
		items[i] = entity.NewsItem{
			Title:     fmt.Sprintf("Story %d", i+1),
			Link:      fmt.Sprintf("https://n/%d", i+1),
			Source:    "Wire",
			Published: at(9, 0),
		}
	}
	return items
}

func replyWith(text string) func(dto.CompletionRequest) (string, error) {
	return func(dto.CompletionRequest) (string, error) { return text, nil }
}

func TestThesisService_GenerateCatalystThesis(t *testing.T) {
	completion := &fakeCompletionRepository{reply: replyWith(`Here is the thesis:
- Rocket skates launch lifted demand [1][3]
• Guidance raised on strong orders [2] [2]
3. Analyst upgrades followed [11] [0]
- [12]
Summary without a marker [1]`)}
	svc := NewThesisService(&config.Config{}, completion, logger.NewNop())

	news := newsFixture(12)
	bullets := svc.GenerateCatalystThesis(context.Background(), dto.CatalystInput{
		Ticker: "ACME", PriceChangePct: 10, Days: 7, News: news,
		Posts: []entity.SocialPost{{Text: "first"}, {Text: "second"}},
	})

	require.Len(t, bullets, 4)

	assert.Equal(t, "Rocket skates launch lifted demand", bullets[0].Text)
	assert.Equal(t, []entity.Source{entity.SourceFromNews(news[0]), entity.SourceFromNews(news[2])}, bullets[0].Sources)

	assert.Equal(t, "Guidance raised on strong orders", bullets[1].Text)
	assert.Equal(t, []entity.Source{entity.SourceFromNews(news[1])}, bullets[1].Sources)

	// [11] falls outside the ten items shown, [0] is never valid
	assert.Equal(t, "Analyst upgrades followed", bullets[2].Text)
	assert.Empty(t, bullets[2].Sources)

	assert.Equal(t, "", bullets[3].Text)
	assert.Empty(t, bullets[3].Sources)

	require.Len(t, completion.requests, 1)
	req := completion.requests[0]
	assert.Equal(t, 600, req.MaxTokens)
	assert.Equal(t, 0.7, req.Temperature)
	assert.Contains(t, req.Prompt, "[10] [Wire] Story 10")
	assert.NotContains(t, req.Prompt, "Story 11")
	assert.Contains(t, req.Prompt, "] first")
	assert.NotContains(t, req.Prompt, "second")
}

func TestThesisService_GenerateCatalystThesis_NoContext(t *testing.T) {
	completion := &fakeCompletionRepository{reply: replyWith("- Sector rotation into industrials\n- Rate cut expectations")}
	svc := NewThesisService(&config.Config{}, completion, logger.NewNop())

	bullets := svc.GenerateCatalystThesis(context.Background(), dto.CatalystInput{Ticker: "ACME", Days: 7})
	require.Len(t, bullets, 2)
	assert.Empty(t, bullets[0].Sources)
	assert.Contains(t, completion.requests[0].Prompt, "No recent news articles were found.")
}

func TestThesisService_GenerateCatalystThesis_CompletionError(t *testing.T) {
	completion := &fakeCompletionRepository{reply: func(dto.CompletionRequest) (string, error) {
		return "", errors.New("rate limited")
	}}
	svc := NewThesisService(&config.Config{}, completion, logger.NewNop())

	bullets := svc.GenerateCatalystThesis(context.Background(), dto.CatalystInput{Ticker: "ACME", Days: 7, News: newsFixture(2)})
	require.Len(t, bullets, 1)
	assert.Equal(t, "Error generating analysis: rate limited", bullets[0].Text)
	assert.NotNil(t, bullets[0].Sources)
	assert.Empty(t, bullets[0].Sources)
}

func TestThesisService_GenerateCatalystThesis_ConfiguredLimits(t *testing.T) {
	cfg := &config.Config{}
	cfg.Analysis.CatalystNewsLimit = 2
	completion := &fakeCompletionRepository{reply: replyWith("- Only two items shown [2][3]")}
	svc := NewThesisService(cfg, completion, logger.NewNop())

	news := newsFixture(5)
	bullets := svc.GenerateCatalystThesis(context.Background(), dto.CatalystInput{Ticker: "ACME", Days: 7, News: news})
	require.Len(t, bullets, 1)
	assert.Equal(t, []entity.Source{entity.SourceFromNews(news[1])}, bullets[0].Sources)
}

func TestThesisService_GenerateRiskThesis(t *testing.T) {
	completion := &fakeCompletionRepository{reply: replyWith(`Risks:
1. Valuation stretched at 45x forward earnings [1]
2. Crowded retail positioning
-
• Rate sensitivity`)}
	svc := NewThesisService(&config.Config{}, completion, logger.NewNop())

	bullets := svc.GenerateRiskThesis(context.Background(), dto.RiskInput{
		Ticker: "ACME", PriceChangePct: 0, Days: 7,
		Social: dto.SocialStats{PostCount: 1, TotalEngagement: 42},
	})

	assert.Equal(t, []string{
		"Valuation stretched at 45x forward earnings [1]",
		"Crowded retail positioning",
		"Rate sensitivity",
	}, bullets)

	req := completion.requests[0]
	assert.Equal(t, 500, req.MaxTokens)
	assert.Equal(t, 0.7, req.Temperature)
	assert.Contains(t, req.Prompt, "Forward P/E: N/A")
	assert.Contains(t, req.Prompt, "Market Cap: N/A")
	assert.Contains(t, req.Prompt, "1 tweets, 42 total engagement")
}

func TestThesisService_GenerateRiskThesis_CompletionError(t *testing.T) {
	completion := &fakeCompletionRepository{reply: func(dto.CompletionRequest) (string, error) {
		return "", errors.New("context deadline exceeded")
	}}
	svc := NewThesisService(&config.Config{}, completion, logger.NewNop())

	bullets := svc.GenerateRiskThesis(context.Background(), dto.RiskInput{Ticker: "ACME", Days: 7})
	require.Len(t, bullets, 1)
	assert.True(t, strings.HasPrefix(bullets[0], "Error generating analysis: "))
}

func TestThesisService_GenerateRiskThesis_NoBullets(t *testing.T) {
	completion := &fakeCompletionRepository{reply: replyWith("I cannot help with that.")}
	svc := NewThesisService(&config.Config{}, completion, logger.NewNop())

	bullets := svc.GenerateRiskThesis(context.Background(), dto.RiskInput{Ticker: "ACME", Days: 7})
	assert.NotNil(t, bullets)
	assert.Empty(t, bullets)
}
