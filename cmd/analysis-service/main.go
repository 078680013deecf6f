package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gaus-thesis/internal/analyzer/config"
	delivery "gaus-thesis/internal/analyzer/delivery/http"
	"gaus-thesis/internal/analyzer/repository"
	"gaus-thesis/internal/analyzer/service"
	"gaus-thesis/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	configPath string
	ticker     string
	days       int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the analysis HTTP service",
	Run:   runServe,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyzes one ticker and prints the result as JSON",
	RunE:  runAnalyze,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, appLogger := mustLoad()
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Analysis Service", logger.Field("name", cfg.App.Name), logger.StringField("ai_provider", cfg.AI.Provider))

	analysisSvc, err := newAnalysisService(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize analysis service", logger.ErrorField(err))
	}

	handler := delivery.NewAnalysisHandler(cfg, analysisSvc, appLogger)
	e := delivery.NewServer(handler, appLogger)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, appLogger := mustLoad()
	defer func() { _ = appLogger.Sync() }()

	if days == 0 {
		days = cfg.Analysis.DefaultDays
	}
	if ticker == "" {
		return fmt.Errorf("--ticker is required")
	}
	if days < 1 || days > cfg.Analysis.MaxDays {
		return fmt.Errorf("--days must be between 1 and %d", cfg.Analysis.MaxDays)
	}

	analysisSvc, err := newAnalysisService(ctx, cfg, appLogger)
	if err != nil {
		return err
	}

	response, err := analysisSvc.Analyze(ctx, ticker, days)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}

func mustLoad() (*config.Config, *logger.Logger) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return cfg, appLogger
}

func newAnalysisService(ctx context.Context, cfg *config.Config, appLogger *logger.Logger) (service.AnalysisService, error) {
	// Initialize repositories
	quoteRepo := repository.NewYahooFinanceRepository(cfg, appLogger)
	googleNewsRepo := repository.NewGoogleNewsRepository(cfg, appLogger)
	curatedFeedRepo := repository.NewCuratedFeedRepository(cfg, appLogger)

	completionRepo, err := repository.NewCompletionRepository(ctx, cfg, appLogger)
	if err != nil {
		return nil, err
	}

	var socialRepo repository.SocialRepository
	if cfg.Twitter.BearerToken != "" {
		socialRepo = repository.NewTwitterRepository(cfg, appLogger)
	} else {
		appLogger.Warn("Twitter bearer token not configured, social mentions disabled")
	}

	// Initialize services
	newsAggregator := service.NewNewsAggregator(googleNewsRepo, curatedFeedRepo, appLogger)
	socialSvc := service.NewSocialService(socialRepo, appLogger)
	thesisSvc := service.NewThesisService(cfg, completionRepo, appLogger)

	return service.NewAnalysisService(cfg, quoteRepo, newsAggregator, socialSvc, thesisSvc, appLogger), nil
}

// @title Gaus Thesis API
// @version 1.0
// @description Stock analysis API with catalyst and risk insights.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{
		Use:   "analysis-service",
		Short: "Explains why a stock moved and what could go wrong",
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-analysis.yaml", "Path to the configuration file")
	analyzeCmd.Flags().StringVarP(&ticker, "ticker", "t", "", "Stock ticker symbol (e.g. AAPL)")
	analyzeCmd.Flags().IntVarP(&days, "days", "d", 0, "Number of days to analyze (defaults to analysis.default_days)")

	rootCmd.AddCommand(serveCmd, analyzeCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing analysis-service CLI: %s\n", err)
		os.Exit(1)
	}
}
