package main

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"weatherify/internal/cityindex"
	"weatherify/internal/config"
	"weatherify/internal/daynight"
	"weatherify/internal/location"
	"weatherify/internal/orchestrator"
	"weatherify/internal/providers/openmeteo"
	"weatherify/internal/weather"

	_ "weatherify/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router       *gin.Engine
	logger       *slog.Logger
	orchestrator *orchestrator.Orchestrator
	cfg          *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	locationSvc, err := location.NewService(logger)
	if err != nil {
		return nil, err
	}

	orch := orchestrator.New(orchestrator.Deps{
		Geocoder:   openmeteo.NewGeocodingClient(logger),
		Forecasts:  weather.NewService(logger),
		Places:     locationSvc,
		Cities:     cityindex.Load(cfg.App.CitiesFile, logger),
		Classifier: daynight.NewClassifier(logger),
		Logger:     logger,
	})

	app := &App{
		router:       router,
		logger:       logger,
		orchestrator: orch,
		cfg:          cfg,
	}

	// Register routes
	app.registerRoutes()

	// Resolve the default city so the first snapshot request has data.
	if cfg.App.DefaultCity != "" {
		if err := orch.SelectCity(context.Background(), cfg.App.DefaultCity); err != nil {
			logger.Warn("failed to resolve default city", "city", cfg.App.DefaultCity, "error", err)
		}
	}

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
