package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"gaus-thesis/internal/analyzer/config"
	"gaus-thesis/internal/analyzer/dto"
	"gaus-thesis/internal/entity"
	"gaus-thesis/pkg/logger"
	"gaus-thesis/pkg/utils"

	"github.com/mmcdole/gofeed"
)

type curatedFeedRepository struct {
	cfg        *config.Config
	log        *logger.Logger
	httpClient *http.Client
}

// NewCuratedFeedRepository creates a NewsRepository over a fixed list of general
// feeds, keeping entries that mention the ticker or company name.
func NewCuratedFeedRepository(cfg *config.Config, log *logger.Logger) NewsRepository {
	return &curatedFeedRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// FetchNews reads every configured feed concurrently. Entries are not filtered by
// age. Items from healthy feeds are returned together with the joined errors of
// the feeds that failed.
func (r *curatedFeedRepository) FetchNews(ctx context.Context, query dto.NewsQuery) ([]entity.NewsItem, error) {
	urls := r.cfg.CuratedFeeds.URLs
	perFeed := make([][]entity.NewsItem, len(urls))
	feedErrs := make([]error, len(urls))

	var wg sync.WaitGroup
	for i, feedURL := range urls {
		wg.Add(1)
		go func(i int, feedURL string) {
			defer wg.Done()
			items, err := r.fetchFeed(ctx, feedURL, query)
			if err != nil {
				r.log.WarnContext(ctx, "Failed to parse curated feed", logger.ErrorField(err), logger.StringField("url", feedURL))
				feedErrs[i] = fmt.Errorf("feed %s: %w", feedURL, err)
				return
			}
			perFeed[i] = items
		}(i, feedURL)
	}
	wg.Wait()

	var items []entity.NewsItem
	for _, feedItems := range perFeed {
		items = append(items, feedItems...)
	}

	r.log.InfoContext(ctx, "Curated feed items matched",
		logger.StringField("ticker", query.Ticker),
		logger.IntField("feed_count", len(urls)),
		logger.IntField("matched_count", len(items)),
	)

	return items, errors.Join(feedErrs...)
}

func (r *curatedFeedRepository) fetchFeed(ctx context.Context, feedURL string, query dto.NewsQuery) ([]entity.NewsItem, error) {
	// gofeed parsers keep decoding state, one per feed
	parser := gofeed.NewParser()
	parser.Client = r.httpClient
	parser.UserAgent = browserUserAgent

	feed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, err
	}

	var items []entity.NewsItem
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		text := []string{utils.StripHTML(item.Title), utils.StripHTML(item.Description)}
		if !utils.ContainsAnyFold(text, query.Ticker, query.CompanyName) {
			continue
		}

		published, ok := utils.NormalizeUTC(item.PublishedParsed)
		if !ok {
			continue
		}

		items = append(items, entity.NewsItem{
			Title:     item.Title,
			Link:      item.Link,
			Published: published,
			Source:    r.cfg.CuratedFeeds.SourceLabel,
		})
	}
	return items, nil
}
