package service

import (
	"context"
	"sync"

	"gaus-thesis/internal/analyzer/dto"
	"gaus-thesis/internal/entity"
)

type fakeQuoteRepository struct {
	quote *entity.Quote
	err   error
	calls int
}

func (f *fakeQuoteRepository) GetQuote(ctx context.Context, ticker string, days int) (*entity.Quote, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	q := *f.quote
	q.Ticker = ticker
	return &q, nil
}

type fakeNewsRepository struct {
	items []entity.NewsItem
	err   error

	mu      sync.Mutex
	queries []dto.NewsQuery
}

func (f *fakeNewsRepository) FetchNews(ctx context.Context, query dto.NewsQuery) ([]entity.NewsItem, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()
	return f.items, f.err
}

type fakeSocialRepository struct {
	posts     []entity.SocialPost
	err       error
	pageSizes []int
}

func (f *fakeSocialRepository) SearchRecent(ctx context.Context, ticker string, pageSize int) ([]entity.SocialPost, error) {
	f.pageSizes = append(f.pageSizes, pageSize)
	if f.err != nil {
		return nil, f.err
	}
	out := make([]entity.SocialPost, len(f.posts))
	copy(out, f.posts)
	return out, nil
}

type fakeCompletionRepository struct {
	mu       sync.Mutex
	reply    func(req dto.CompletionRequest) (string, error)
	requests []dto.CompletionRequest
}

func (f *fakeCompletionRepository) Complete(ctx context.Context, req dto.CompletionRequest) (string, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	return f.reply(req)
}

func (f *fakeCompletionRepository) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func float64Ptr(v float64) *float64 { return &v }
func int64Ptr(v int64) *int64       { return &v }
