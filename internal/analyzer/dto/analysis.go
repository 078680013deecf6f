package dto

import (
	"gaus-thesis/internal/entity"
)

// PriceData is the price and valuation block of an analysis response.
type PriceData struct {
	CurrentPrice   float64  `json:"current_price"`
	PriceChangePct float64  `json:"price_change_pct"`
	ForwardPE      *float64 `json:"forward_pe"`
	TrailingPE     *float64 `json:"trailing_pe"`
	PriceToBook    *float64 `json:"price_to_book"`
	Beta           *float64 `json:"beta"`
	MarketCap      *int64   `json:"market_cap"`
}

// AnalysisResponse is the result of analyzing one ticker.
type AnalysisResponse struct {
	Ticker         string               `json:"ticker"`
	CompanyName    string               `json:"company_name"`
	DaysAnalyzed   int                  `json:"days_analyzed"`
	PriceData      PriceData            `json:"price_data"`
	News           []entity.NewsItem    `json:"news"`
	Tweets         []entity.SocialPost  `json:"tweets"`
	CatalystThesis []entity.CitedBullet `json:"catalyst_thesis"`
	RiskThesis     []string             `json:"risk_thesis"`
	RiskScore      int                  `json:"risk_score"`
}

// HealthResponse is returned by the root endpoint.
type HealthResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// ErrorResponse represents a generic error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}
