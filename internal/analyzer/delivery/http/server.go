package http

import (
	"net/http"

	_ "gaus-thesis/internal/analyzer/docs"
	"gaus-thesis/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	swagger "github.com/swaggo/echo-swagger"
)

// NewServer builds the Echo instance with middleware, analysis routes and the swagger UI.
func NewServer(handler *AnalysisHandler, log *logger.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(RequestLogger(log))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{"*"},
	}))

	handler.RegisterRoutes(e.Group(""))
	e.GET("/swagger/*", swagger.WrapHandler)

	return e
}
