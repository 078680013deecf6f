package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gaus-thesis/internal/analyzer/config"
	"gaus-thesis/internal/analyzer/dto"
	"gaus-thesis/internal/entity"
	"gaus-thesis/pkg/common"
	"gaus-thesis/pkg/logger"
	"gaus-thesis/pkg/utils"

	"github.com/mmcdole/gofeed/rss"
)

type googleNewsRepository struct {
	cfg        *config.Config
	log        *logger.Logger
	httpClient *http.Client
	now        func() time.Time
}

// NewGoogleNewsRepository creates a NewsRepository that runs a Google News RSS search
// for the ticker or company name over the look-back window.
func NewGoogleNewsRepository(cfg *config.Config, log *logger.Logger) NewsRepository {
	return &googleNewsRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		now: utils.TimeNowUTC,
	}
}

func (r *googleNewsRepository) FetchNews(ctx context.Context, query dto.NewsQuery) ([]entity.NewsItem, error) {
	feedURL := r.searchURL(query)
	r.log.InfoContext(ctx, "Processing RSS feed", logger.StringField("url", feedURL))

	feed, err := r.fetchFeed(ctx, feedURL)
	if err != nil {
		r.log.ErrorContext(ctx, "Failed to parse RSS feed", logger.ErrorField(err), logger.StringField("url", feedURL))
		return nil, err
	}

	cutoff := utils.DaysAgo(r.now(), query.Days)
	items := make([]entity.NewsItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		published, ok := utils.NormalizeUTC(item.PubDateParsed)
		if !ok {
			continue
		}
		if published.Before(cutoff) {
			continue
		}

		source := common.UnknownNewsSource
		if item.Source != nil && strings.TrimSpace(item.Source.Title) != "" {
			source = strings.TrimSpace(item.Source.Title)
		}

		items = append(items, entity.NewsItem{
			Title:     item.Title,
			Link:      item.Link,
			Published: published,
			Source:    source,
		})
	}

	r.log.InfoContext(ctx, "Filtered news items",
		logger.IntField("original_count", len(feed.Items)),
		logger.IntField("filtered_count", len(items)),
		logger.StringField("ticker", query.Ticker),
	)

	return items, nil
}

// searchURL builds <base>/rss/search?q=<TICKER OR Company>+when:<days>d&hl=..&gl=..&ceid=..
func (r *googleNewsRepository) searchURL(query dto.NewsQuery) string {
	terms := query.Ticker
	if query.CompanyName != "" {
		terms = fmt.Sprintf("%s OR %s", query.Ticker, query.CompanyName)
	}

	lang := r.cfg.GoogleNews.Language
	region := r.cfg.GoogleNews.Region
	ceidLang, _, _ := strings.Cut(lang, "-")

	return fmt.Sprintf("%s/rss/search?q=%s+when:%dd&hl=%s&gl=%s&ceid=%s:%s",
		strings.TrimRight(r.cfg.GoogleNews.BaseURL, "/"),
		url.QueryEscape(terms),
		query.Days,
		url.QueryEscape(lang),
		url.QueryEscape(region),
		url.QueryEscape(region),
		url.QueryEscape(ceidLang),
	)
}

func (r *googleNewsRepository) fetchFeed(ctx context.Context, feedURL string) (*rss.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &upstreamStatusError{StatusCode: resp.StatusCode}
	}

	parser := &rss.Parser{}
	feed, err := parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse news feed: %w", err)
	}
	return feed, nil
}
