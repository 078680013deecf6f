package service

import (
	"context"
	"sort"

	"gaus-thesis/internal/analyzer/repository"
	"gaus-thesis/internal/entity"
	"gaus-thesis/pkg/common"
	"gaus-thesis/pkg/logger"
)

// SocialService returns the most engaging recent posts about a ticker.
type SocialService interface {
	// Enabled reports whether a search credential is configured.
	Enabled() bool
	FetchMentions(ctx context.Context, ticker string, requested int) []entity.SocialPost
}

// NewSocialService creates a new social service. repo may be nil when no bearer
// token is configured.
func NewSocialService(repo repository.SocialRepository, logger *logger.Logger) SocialService {
	return &socialService{
		repo:   repo,
		logger: logger,
	}
}

type socialService struct {
	repo   repository.SocialRepository
	logger *logger.Logger
}

func (s *socialService) Enabled() bool {
	return s.repo != nil
}

// FetchMentions clamps requested to [1,100], ranks posts by likes plus reposts
// (API order on ties) and keeps the top requested. Upstream failures yield an
// empty slice.
func (s *socialService) FetchMentions(ctx context.Context, ticker string, requested int) []entity.SocialPost {
	if s.repo == nil {
		return []entity.SocialPost{}
	}

	requested = clamp(requested, 1, common.TwitterMaxPageSize)
	pageSize := clamp(requested, common.TwitterMinPageSize, common.TwitterMaxPageSize)

	posts, err := s.repo.SearchRecent(ctx, ticker, pageSize)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to fetch social mentions", logger.StringField("ticker", ticker), logger.ErrorField(err))
		return []entity.SocialPost{}
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Engagement() > posts[j].Engagement()
	})
	if len(posts) > requested {
		posts = posts[:requested]
	}
	if posts == nil {
		posts = []entity.SocialPost{}
	}

	s.logger.InfoContext(ctx, "Social mentions fetched", logger.StringField("ticker", ticker), logger.IntField("count", len(posts)))
	return posts
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
