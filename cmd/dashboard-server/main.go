package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/followcare/dashboard/internal/config"
	"github.com/followcare/dashboard/internal/domain/dashboard"
	"github.com/followcare/dashboard/internal/domain/triage"
	"github.com/followcare/dashboard/internal/domain/upload"
	"github.com/followcare/dashboard/internal/platform/careapi"
	"github.com/followcare/dashboard/internal/platform/middleware"
	"github.com/followcare/dashboard/internal/platform/store"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dashboard-server",
		Short: "Doctor follow-up dashboard server",
	}

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	// Care platform client and collection store
	client := careapi.NewClient(careapi.ClientConfig{
		BaseURL: cfg.CareAPIBaseURL,
		Timeout: cfg.CareAPITimeout(),
	})
	collections := store.New(client, logger)

	// Initial load. A degraded first fetch is not fatal: the dashboard
	// renders whatever arrived and the rest stays empty until a refresh.
	ctx := context.Background()
	if err := collections.RefreshAll(ctx); err != nil {
		logger.Warn().Err(err).Msg("initial collection load degraded")
	} else {
		logger.Info().Msg("collections loaded")
	}

	// Optional background refresh
	refresher, err := store.NewRefresher(collections, cfg.RefreshSchedule, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid REFRESH_SCHEDULE")
	}
	refresher.Start()
	defer refresher.Stop()

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// -- Register domain handlers --
	group := e.Group("/dashboard")

	viewSvc := dashboard.NewService(collections, cfg.SummaryTruncateLimit)
	dashboard.NewHandler(viewSvc, collections).RegisterRoutes(group)

	uploadSvc := upload.NewService(client, collections, cfg.DoctorID, logger)
	upload.NewHandler(uploadSvc).RegisterRoutes(group)

	triageSvc := triage.NewService(client, collections, logger)
	triage.NewHandler(triageSvc).RegisterRoutes(group)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
