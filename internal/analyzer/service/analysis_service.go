package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gaus-thesis/internal/analyzer/config"
	"gaus-thesis/internal/analyzer/dto"
	"gaus-thesis/internal/analyzer/repository"
	"gaus-thesis/internal/entity"
	"gaus-thesis/pkg/apperror"
	"gaus-thesis/pkg/logger"

	"golang.org/x/sync/errgroup"
)

const (
	defaultNewsLimit  = 15
	defaultTweetLimit = 1
)

// AnalysisService runs the full analysis pipeline for one ticker.
type AnalysisService interface {
	Analyze(ctx context.Context, ticker string, days int) (*dto.AnalysisResponse, error)
}

// NewAnalysisService creates a new analysis service.
func NewAnalysisService(
	cfg *config.Config,
	quoteRepo repository.QuoteRepository,
	newsAggregator NewsAggregator,
	socialService SocialService,
	thesisService ThesisService,
	logger *logger.Logger,
) AnalysisService {
	return &analysisService{
		cfg:            cfg,
		quoteRepo:      quoteRepo,
		newsAggregator: newsAggregator,
		socialService:  socialService,
		thesisService:  thesisService,
		logger:         logger,
	}
}

type analysisService struct {
	cfg            *config.Config
	quoteRepo      repository.QuoteRepository
	newsAggregator NewsAggregator
	socialService  SocialService
	thesisService  ThesisService
	logger         *logger.Logger
}

// Analyze fails only when the completion provider is not configured, the ticker
// has no price history, or the quote fetch fails. Every later stage degrades to
// empty or error-bullet results.
func (s *analysisService) Analyze(ctx context.Context, ticker string, days int) (*dto.AnalysisResponse, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	s.logger.InfoContext(ctx, "Analyzing ticker", logger.StringField("ticker", ticker), logger.IntField("days", days))

	if key, setting := s.cfg.CompletionAPIKey(); key == "" {
		return nil, apperror.Configuration("%s not configured", setting)
	}

	s.logger.InfoContext(ctx, "[1/5] Fetching quote", logger.StringField("ticker", ticker))
	quote, err := s.fetchQuote(ctx, ticker, days)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			s.logger.WarnContext(ctx, "Ticker not found", logger.StringField("ticker", ticker), logger.ErrorField(err))
			return nil, err
		}
		s.logger.ErrorContext(ctx, "Failed to fetch quote", logger.StringField("ticker", ticker), logger.ErrorField(err))
		return nil, apperror.Internal(err)
	}

	var news []entity.NewsItem
	posts := []entity.SocialPost{}

	// Fetch stages degrade to empty results, so the groups below never report an error.
	var fetches errgroup.Group
	fetches.Go(func() error {
		s.logger.InfoContext(ctx, "[2/5] Fetching news", logger.StringField("ticker", ticker))
		fetchCtx, cancel := withTimeout(ctx, s.cfg.Analysis.FetchTimeout)
		defer cancel()
		news = s.newsAggregator.Aggregate(fetchCtx, dto.NewsQuery{Ticker: ticker, CompanyName: quote.CompanyName, Days: days})
		return nil
	})
	if s.socialService.Enabled() {
		fetches.Go(func() error {
			s.logger.InfoContext(ctx, "[3/5] Fetching social mentions", logger.StringField("ticker", ticker))
			fetchCtx, cancel := withTimeout(ctx, s.cfg.Analysis.FetchTimeout)
			defer cancel()
			posts = s.socialService.FetchMentions(fetchCtx, ticker, s.socialMaxResults())
			return nil
		})
	} else {
		s.logger.WarnContext(ctx, "[3/5] Twitter bearer token not configured, skipping social mentions", logger.StringField("ticker", ticker))
	}
	_ = fetches.Wait()

	if news == nil {
		news = []entity.NewsItem{}
	}

	var (
		catalyst []entity.CitedBullet
		risk     []string
	)

	s.logger.InfoContext(ctx, "[4/5] Generating theses", logger.StringField("ticker", ticker))
	var theses errgroup.Group
	theses.Go(func() error {
		thesisCtx, cancel := withTimeout(ctx, s.cfg.Analysis.CompletionTimeout)
		defer cancel()
		catalyst = s.thesisService.GenerateCatalystThesis(thesisCtx, dto.CatalystInput{
			Ticker:         ticker,
			PriceChangePct: quote.PriceChangePct,
			Days:           days,
			News:           news,
			Posts:          posts,
		})
		return nil
	})
	theses.Go(func() error {
		thesisCtx, cancel := withTimeout(ctx, s.cfg.Analysis.CompletionTimeout)
		defer cancel()
		risk = s.thesisService.GenerateRiskThesis(thesisCtx, dto.RiskInput{
			Ticker:         ticker,
			PriceChangePct: quote.PriceChangePct,
			Days:           days,
			Valuation:      quote.Valuation,
			Social:         dto.NewSocialStats(posts),
		})
		return nil
	})
	_ = theses.Wait()

	riskScore := CalculateRiskScore(quote.Valuation, quote.PriceChangePct)
	s.logger.InfoContext(ctx, "[5/5] Calculated risk score", logger.StringField("ticker", ticker), logger.IntField("risk_score", riskScore))

	response := &dto.AnalysisResponse{
		Ticker:       ticker,
		CompanyName:  quote.CompanyName,
		DaysAnalyzed: days,
		PriceData: dto.PriceData{
			CurrentPrice:   quote.CurrentPrice,
			PriceChangePct: quote.PriceChangePct,
			ForwardPE:      quote.ForwardPE,
			TrailingPE:     quote.TrailingPE,
			PriceToBook:    quote.PriceToBook,
			Beta:           quote.Beta,
			MarketCap:      quote.MarketCap,
		},
		News:           truncate(news, s.newsLimit()),
		Tweets:         truncate(posts, defaultTweetLimit),
		CatalystThesis: catalyst,
		RiskThesis:     risk,
		RiskScore:      riskScore,
	}

	s.logger.InfoContext(ctx, "Analysis complete", logger.StringField("ticker", ticker))
	return response, nil
}

func (s *analysisService) fetchQuote(ctx context.Context, ticker string, days int) (*entity.Quote, error) {
	fetchCtx, cancel := withTimeout(ctx, s.cfg.Analysis.FetchTimeout)
	defer cancel()
	return s.quoteRepo.GetQuote(fetchCtx, ticker, days)
}

func (s *analysisService) newsLimit() int {
	if s.cfg.Analysis.NewsLimit > 0 {
		return s.cfg.Analysis.NewsLimit
	}
	return defaultNewsLimit
}

func (s *analysisService) socialMaxResults() int {
	if s.cfg.Analysis.SocialMaxResults > 0 {
		return s.cfg.Analysis.SocialMaxResults
	}
	return defaultTweetLimit
}

// withTimeout leaves ctx unbounded when d is not positive.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
