package service

import (
	"context"
	"sort"

	"gaus-thesis/internal/analyzer/dto"
	"gaus-thesis/internal/analyzer/repository"
	"gaus-thesis/internal/entity"
	"gaus-thesis/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// NewsAggregator merges the broad query and curated feed sources.
type NewsAggregator interface {
	Aggregate(ctx context.Context, query dto.NewsQuery) []entity.NewsItem
}

// NewNewsAggregator creates a new news aggregator.
func NewNewsAggregator(broad, curated repository.NewsRepository, logger *logger.Logger) NewsAggregator {
	return &newsAggregator{
		broad:   broad,
		curated: curated,
		logger:  logger,
	}
}

type newsAggregator struct {
	broad   repository.NewsRepository
	curated repository.NewsRepository
	logger  *logger.Logger
}

// Aggregate never fails. A failing source is logged and contributes what it
// managed to return. Items are deduplicated by link, broad results first, then
// ordered newest first with ties kept in merge order.
func (a *newsAggregator) Aggregate(ctx context.Context, query dto.NewsQuery) []entity.NewsItem {
	var broadItems, curatedItems []entity.NewsItem

	// A failing source degrades to its partial result, so neither stage reports an error.
	var g errgroup.Group
	g.Go(func() error {
		broadItems = a.fetch(ctx, "broad", a.broad, query)
		return nil
	})
	g.Go(func() error {
		curatedItems = a.fetch(ctx, "curated", a.curated, query)
		return nil
	})
	_ = g.Wait()

	merged := make([]entity.NewsItem, 0, len(broadItems)+len(curatedItems))
	seen := make(map[string]struct{}, cap(merged))
	for _, items := range [][]entity.NewsItem{broadItems, curatedItems} {
		for _, item := range items {
			if _, ok := seen[item.Link]; ok {
				continue
			}
			seen[item.Link] = struct{}{}
			merged = append(merged, item)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Published.After(merged[j].Published)
	})

	a.logger.InfoContext(ctx, "News aggregated",
		logger.StringField("ticker", query.Ticker),
		logger.IntField("broad_count", len(broadItems)),
		logger.IntField("curated_count", len(curatedItems)),
		logger.IntField("merged_count", len(merged)),
	)

	return merged
}

func (a *newsAggregator) fetch(ctx context.Context, name string, repo repository.NewsRepository, query dto.NewsQuery) []entity.NewsItem {
	if repo == nil {
		return nil
	}
	items, err := repo.FetchNews(ctx, query)
	if err != nil {
		a.logger.WarnContext(ctx, "News source failed",
			logger.StringField("source", name),
			logger.StringField("ticker", query.Ticker),
			logger.IntField("kept_count", len(items)),
			logger.ErrorField(err),
		)
	}
	return items
}
