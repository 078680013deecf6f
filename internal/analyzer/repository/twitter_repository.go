package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"gaus-thesis/internal/analyzer/config"
	"gaus-thesis/internal/analyzer/dto"
	"gaus-thesis/internal/entity"
	"gaus-thesis/pkg/logger"
)

// SocialRepository searches recent social posts mentioning a ticker.
type SocialRepository interface {
	SearchRecent(ctx context.Context, ticker string, pageSize int) ([]entity.SocialPost, error)
}

type twitterRepository struct {
	cfg        *config.Config
	log        *logger.Logger
	httpClient *http.Client
}

// NewTwitterRepository creates a SocialRepository backed by the X/Twitter v2 recent search API.
func NewTwitterRepository(cfg *config.Config, log *logger.Logger) SocialRepository {
	return &twitterRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SearchRecent returns posts in API order. pageSize is sent as max_results unchanged.
func (r *twitterRepository) SearchRecent(ctx context.Context, ticker string, pageSize int) ([]entity.SocialPost, error) {
	params := url.Values{}
	params.Set("query", fmt.Sprintf("(%s) lang:en -is:retweet", ticker))
	params.Set("max_results", strconv.Itoa(pageSize))
	params.Set("tweet.fields", "created_at,public_metrics,author_id")
	params.Set("expansions", "author_id")
	endpoint := fmt.Sprintf("%s/2/tweets/search/recent?%s", r.cfg.Twitter.BaseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.cfg.Twitter.BearerToken)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to Twitter API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		r.log.ErrorContext(ctx, "Received non-OK response from Twitter API",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("body", string(body)),
		)
		return nil, &upstreamStatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var response dto.TwitterSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	posts := make([]entity.SocialPost, 0, len(response.Data))
	for _, tweet := range response.Data {
		if tweet.CreatedAt.IsZero() {
			r.log.DebugContext(ctx, "Skipping tweet without created_at", logger.StringField("tweet_id", tweet.ID))
			continue
		}
		posts = append(posts, entity.SocialPost{
			Text:      tweet.Text,
			CreatedAt: tweet.CreatedAt.UTC(),
			Likes:     tweet.PublicMetrics.LikeCount,
			Reposts:   tweet.PublicMetrics.RetweetCount,
			AuthorID:  tweet.AuthorID,
			PostID:    tweet.ID,
		})
	}

	r.log.DebugContext(ctx, "Twitter recent search", logger.StringField("ticker", ticker), logger.IntField("result_count", len(posts)))

	return posts, nil
}
