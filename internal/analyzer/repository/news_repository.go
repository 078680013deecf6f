package repository

import (
	"context"

	"gaus-thesis/internal/analyzer/dto"
	"gaus-thesis/internal/entity"
)

// NewsRepository is a source of dated news items about one company.
type NewsRepository interface {
	FetchNews(ctx context.Context, query dto.NewsQuery) ([]entity.NewsItem, error)
}
