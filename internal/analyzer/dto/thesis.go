package dto

import (
	"gaus-thesis/internal/entity"
)

// CompletionRequest is a single-turn prompt for the completion provider.
type CompletionRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// CatalystInput is the context for explaining a price move.
type CatalystInput struct {
	Ticker         string
	PriceChangePct float64
	Days           int
	News           []entity.NewsItem
	Posts          []entity.SocialPost
}

// SocialStats summarizes social activity as a crowding proxy.
type SocialStats struct {
	PostCount       int
	TotalEngagement int
}

// NewSocialStats aggregates post count and likes plus reposts.
func NewSocialStats(posts []entity.SocialPost) SocialStats {
	stats := SocialStats{PostCount: len(posts)}
	for _, p := range posts {
		stats.TotalEngagement += p.Engagement()
	}
	return stats
}

// RiskInput is the context for identifying investment risks.
type RiskInput struct {
	Ticker         string
	PriceChangePct float64
	Days           int
	Valuation      entity.Valuation
	Social         SocialStats
}
