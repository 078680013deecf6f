package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gaus-thesis/internal/analyzer/config"
	"gaus-thesis/internal/analyzer/dto"
	"gaus-thesis/internal/entity"
	"gaus-thesis/pkg/apperror"
	"gaus-thesis/pkg/logger"
	"gaus-thesis/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// QuoteRepository fetches price history and valuation metrics for a ticker.
type QuoteRepository interface {
	GetQuote(ctx context.Context, ticker string, days int) (*entity.Quote, error)
}

// requestsPerQuote is the number of upstream calls one GetQuote makes (chart and quoteSummary).
const requestsPerQuote = 2

type yahooFinanceRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
	now            func() time.Time
}

// NewYahooFinanceRepository creates a QuoteRepository backed by the Yahoo Finance chart and quoteSummary endpoints.
func NewYahooFinanceRepository(cfg *config.Config, log *logger.Logger) QuoteRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.YahooFinance.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), requestsPerQuote)
	return &yahooFinanceRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		requestLimiter: requestLimiter,
		now:            utils.TimeNowUTC,
	}
}

func (r *yahooFinanceRepository) GetQuote(ctx context.Context, ticker string, days int) (*entity.Quote, error) {
	if days < 1 {
		return nil, fmt.Errorf("days must be at least 1, got %d", days)
	}

	chart, err := r.getChart(ctx, ticker, days)
	if err != nil {
		return nil, err
	}

	first, last, ok := firstAndLastClose(chart)
	if !ok {
		return nil, apperror.NotFound("no historical data found for %s", ticker)
	}

	quote := &entity.Quote{
		Ticker:         ticker,
		CompanyName:    ticker,
		CurrentPrice:   utils.Round2(last),
		PriceChangePct: utils.Round2((last - first) / first * 100),
	}
	if name := firstNonEmpty(chart.Meta.LongName, chart.Meta.ShortName); name != "" {
		quote.CompanyName = name
	}

	summary, err := r.getQuoteSummary(ctx, ticker)
	if err != nil {
		r.log.WarnContext(ctx, "Quote summary unavailable, valuation left empty",
			logger.StringField("ticker", ticker),
			logger.ErrorField(err),
		)
		return quote, nil
	}

	quote.Valuation = valuationFromSummary(summary)
	if summary.Price != nil {
		if name := firstNonEmpty(summary.Price.LongName, summary.Price.ShortName); name != "" {
			quote.CompanyName = name
		}
	}

	r.log.DebugContext(ctx, "Yahoo Finance quote fetched",
		logger.StringField("ticker", ticker),
		logger.Float64Field("current_price", quote.CurrentPrice),
		logger.Float64Field("price_change_pct", quote.PriceChangePct),
	)

	return quote, nil
}

func (r *yahooFinanceRepository) getChart(ctx context.Context, ticker string, days int) (*dto.YahooChartResult, error) {
	end := r.now()
	start := utils.DaysAgo(end, days+1)

	params := url.Values{}
	params.Set("period1", strconv.FormatInt(start.Unix(), 10))
	params.Set("period2", strconv.FormatInt(end.Unix(), 10))
	params.Set("interval", "1d")
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?%s", r.cfg.YahooFinance.BaseURL, url.PathEscape(ticker), params.Encode())

	body, err := r.sendRequest(ctx, endpoint)
	if err != nil {
		var statusErr *upstreamStatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, apperror.NotFound("no historical data found for %s", ticker)
		}
		return nil, fmt.Errorf("failed to fetch price history for %s: %w", ticker, err)
	}

	var response dto.YahooChartResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to decode price history for %s: %w", ticker, err)
	}
	if len(response.Chart.Result) == 0 {
		return nil, apperror.NotFound("no historical data found for %s", ticker)
	}

	return &response.Chart.Result[0], nil
}

func (r *yahooFinanceRepository) getQuoteSummary(ctx context.Context, ticker string) (*dto.YahooQuoteSummaryResult, error) {
	endpoint := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=%s",
		r.cfg.YahooFinance.BaseURL, url.PathEscape(ticker), url.QueryEscape("summaryDetail,defaultKeyStatistics,price"))

	body, err := r.sendRequest(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var response dto.YahooQuoteSummaryResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to decode quote summary: %w", err)
	}
	if len(response.QuoteSummary.Result) == 0 {
		return nil, errors.New("quote summary returned no result")
	}

	return &response.QuoteSummary.Result[0], nil
}

func (r *yahooFinanceRepository) sendRequest(ctx context.Context, endpoint string) ([]byte, error) {
	fields := []zap.Field{
		zap.String("url", endpoint),
		zap.Int("max_request_per_minute", r.cfg.YahooFinance.MaxRequestPerMinute),
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to wait for request limit", fields...)
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to create new http request", fields...)
		return nil, err
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "application/json, text/plain, */*")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to send request to Yahoo Finance API", fields...)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to read response body", fields...)
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		fields = append(fields, zap.Int("status_code", resp.StatusCode))
		r.log.WarnContext(ctx, "Received non-OK response from Yahoo Finance API", fields...)
		return nil, &upstreamStatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

// firstAndLastClose returns the first and last non-null closes of the series.
func firstAndLastClose(chart *dto.YahooChartResult) (first, last float64, ok bool) {
	if len(chart.Indicators.Quote) == 0 {
		return 0, 0, false
	}
	closes := chart.Indicators.Quote[0].Close
	for _, c := range closes {
		if c != nil {
			first, ok = *c, true
			break
		}
	}
	if !ok || first == 0 {
		return 0, 0, false
	}
	for i := len(closes) - 1; i >= 0; i-- {
		if closes[i] != nil {
			last = *closes[i]
			break
		}
	}
	return first, last, true
}

func valuationFromSummary(s *dto.YahooQuoteSummaryResult) entity.Valuation {
	var v entity.Valuation
	if d := s.SummaryDetail; d != nil {
		v.TrailingPE = rawFloat(d.TrailingPE)
		v.ForwardPE = rawFloat(d.ForwardPE)
		v.Beta = rawFloat(d.Beta)
		if mc := rawFloat(d.MarketCap); mc != nil {
			n := int64(*mc)
			v.MarketCap = &n
		}
	}
	if k := s.DefaultKeyStatistics; k != nil {
		if v.ForwardPE == nil {
			v.ForwardPE = rawFloat(k.ForwardPE)
		}
		if v.Beta == nil {
			v.Beta = rawFloat(k.Beta)
		}
		v.PriceToBook = rawFloat(k.PriceToBook)
	}
	return v
}

func rawFloat(v *dto.YahooRawValue) *float64 {
	if v == nil || v.Raw == nil {
		return nil
	}
	f := *v.Raw
	return &f
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// upstreamStatusError reports a non-OK HTTP status from an upstream API.
type upstreamStatusError struct {
	StatusCode int
	Body       string
}

func (e *upstreamStatusError) Error() string {
	return fmt.Sprintf("received non-OK response: %d - %s", e.StatusCode, e.Body)
}
