package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rahat92/postpulse/backend/internal/router"
	"github.com/rahat92/postpulse/backend/internal/seed"
	"github.com/rahat92/postpulse/backend/pkg/config"
	"github.com/rahat92/postpulse/backend/pkg/logger"
	"github.com/rahat92/postpulse/backend/pkg/metrics"
	"github.com/rahat92/postpulse/backend/validators"
)

func main() {
	// Load configuration
	bootLog := logger.New("development")
	config.LoadDotenv(bootLog)
	cfg := config.Load()
	log := logger.New(cfg.Env)

	// Initialize database connection
	db, err := config.InitDB(cfg.PostgresConnStr, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer config.CloseDB(db, log)

	// Metrics endpoint on its own port
	m := metrics.New()
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", m.Handler())
		log.Info().Str("port", cfg.MetricsPort).Msg("metrics server listening")
		if err := http.ListenAndServe(":"+cfg.MetricsPort, mux); err != nil {
			log.Error().Err(err).Msg("metrics server stopped")
		}
	}()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()

	// Setup global middleware
	router.SetupMiddleware(e, log)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, db, cfg, log, m); err != nil {
		log.Fatal().Err(err).Msg("failed to set up routes")
	}

	// Optional demo data
	if cfg.SeedDB {
		if err := seed.Run(db, log); err != nil {
			log.Fatal().Err(err).Msg("failed to seed database")
		}
	}

	// Start server
	log.Fatal().Err(e.Start(":" + cfg.Port)).Msg("server stopped")
}
