package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"gaus-thesis/internal/analyzer/config"
	"gaus-thesis/internal/analyzer/dto"
	"gaus-thesis/internal/analyzer/service"
	"gaus-thesis/pkg/apperror"
	"gaus-thesis/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AnalysisHandler handles HTTP requests for ticker analysis.
type AnalysisHandler struct {
	cfg             *config.Config
	analysisService service.AnalysisService
	logger          *logger.Logger
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(cfg *config.Config, analysisService service.AnalysisService, logger *logger.Logger) *AnalysisHandler {
	return &AnalysisHandler{cfg: cfg, analysisService: analysisService, logger: logger}
}

// RegisterRoutes registers the analysis routes to the Echo group.
func (h *AnalysisHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/", h.HealthCheck)
	g.GET("/analyze", h.Analyze)
}

// HealthCheck godoc
// @Summary Health check
// @Description Reports that the service is running and lists its endpoints
// @Tags health
// @Produce  json
// @Success 200 {object} dto.HealthResponse
// @Router / [get]
func (h *AnalysisHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.HealthResponse{
		Message: fmt.Sprintf("%s is running", h.cfg.App.Name),
		Version: h.cfg.App.Version,
		Endpoints: map[string]string{
			"/analyze": "GET - Analyze a stock ticker",
		},
	})
}

// Analyze godoc
// @Summary Analyze a ticker
// @Description Explains a ticker's recent move with cited catalysts, lists its risks and scores them from 1 to 10
// @Tags analysis
// @Produce  json
// @Param   ticker  query   string  true   "Stock ticker symbol (e.g. AAPL, TSLA)"
// @Param   days    query   int     false  "Number of days to analyze (default 7)"
// @Success 200 {object} dto.AnalysisResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /analyze [get]
func (h *AnalysisHandler) Analyze(c echo.Context) error {
	ticker := strings.TrimSpace(c.QueryParam("ticker"))
	if ticker == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required query parameter: ticker"})
	}

	days := h.cfg.Analysis.DefaultDays
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid days: must be an integer"})
		}
		days = parsed
	}
	if days < 1 || days > h.cfg.Analysis.MaxDays {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": fmt.Sprintf("Invalid days: must be between 1 and %d", h.cfg.Analysis.MaxDays)})
	}

	ctx := c.Request().Context()
	response, err := h.analysisService.Analyze(ctx, ticker, days)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			h.logger.WarnContext(ctx, "Invalid ticker", logger.StringField("ticker", ticker), logger.ErrorField(err))
			return c.JSON(http.StatusNotFound, echo.Map{"error": fmt.Sprintf("Ticker '%s' not found or has no data", ticker)})
		}
		h.logger.ErrorContext(ctx, "Error analyzing ticker", logger.StringField("ticker", ticker), logger.ErrorField(err))
		return c.JSON(apperror.HTTPStatus(err), echo.Map{"error": "Internal server error: " + err.Error()})
	}

	return c.JSON(http.StatusOK, response)
}
