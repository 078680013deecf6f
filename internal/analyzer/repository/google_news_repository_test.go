package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gaus-thesis/internal/analyzer/dto"
	"gaus-thesis/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const googleNewsFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>"ACME OR Acme Corp" - Google News</title>
<item>
  <title>Acme Corp unveils new rocket skates - Example Wire</title>
  <link>https://news.example.com/acme-skates</link>
  <pubDate>Sat, 09 Mar 2024 10:00:00 GMT</pubDate>
  <source url="https://wire.example.com">Example Wire</source>
</item>
<item>
  <title>ACME shares slide after guidance cut</title>
  <link>https://news.example.com/acme-guidance</link>
  <pubDate>Fri, 08 Mar 2024 18:30:00 +0000</pubDate>
</item>
<item>
  <title>Old Acme story</title>
  <link>https://news.example.com/acme-old</link>
  <pubDate>Fri, 01 Mar 2024 09:00:00 GMT</pubDate>
  <source url="https://old.example.com">Old Times</source>
</item>
<item>
  <title>Undated Acme story</title>
  <link>https://news.example.com/acme-undated</link>
</item>
</channel></rss>`

func TestGoogleNewsRepository_FetchNews(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rss/search", r.URL.Path)
		q := r.URL.Query()
		gotQuery = map[string]string{"q": q.Get("q"), "hl": q.Get("hl"), "gl": q.Get("gl"), "ceid": q.Get("ceid")}
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(googleNewsFeed))
	}))
	defer srv.Close()

	repo := NewGoogleNewsRepository(newTestConfig(srv.URL), logger.NewNop()).(*googleNewsRepository)
	repo.now = func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) }

	items, err := repo.FetchNews(context.Background(), dto.NewsQuery{Ticker: "ACME", CompanyName: "Acme Corp", Days: 7})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"q":    "ACME OR Acme Corp when:7d",
		"hl":   "en-US",
		"gl":   "US",
		"ceid": "US:en",
	}, gotQuery)

	require.Len(t, items, 2)
	assert.Equal(t, "https://news.example.com/acme-skates", items[0].Link)
	assert.Equal(t, "Example Wire", items[0].Source)
	assert.Equal(t, time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC), items[0].Published)
	assert.Equal(t, time.UTC, items[0].Published.Location())

	assert.Equal(t, "https://news.example.com/acme-guidance", items[1].Link)
	assert.Equal(t, "Unknown", items[1].Source)
}

func TestGoogleNewsRepository_FetchNews_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	repo := NewGoogleNewsRepository(newTestConfig(srv.URL), logger.NewNop())
	items, err := repo.FetchNews(context.Background(), dto.NewsQuery{Ticker: "ACME", Days: 7})
	assert.Error(t, err)
	assert.Empty(t, items)
}

func TestGoogleNewsRepository_FetchNews_MalformedFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("this is not xml"))
	}))
	defer srv.Close()

	repo := NewGoogleNewsRepository(newTestConfig(srv.URL), logger.NewNop())
	_, err := repo.FetchNews(context.Background(), dto.NewsQuery{Ticker: "ACME", Days: 7})
	assert.Error(t, err)
}

func TestGoogleNewsRepository_SearchURL_TickerOnly(t *testing.T) {
	repo := NewGoogleNewsRepository(newTestConfig("https://news.google.com"), logger.NewNop()).(*googleNewsRepository)
	assert.Equal(t,
		"https://news.google.com/rss/search?q=BRK.B+when:30d&hl=en-US&gl=US&ceid=US:en",
		repo.searchURL(dto.NewsQuery{Ticker: "BRK.B", Days: 30}),
	)
}
