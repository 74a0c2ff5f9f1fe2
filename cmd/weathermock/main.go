package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/travelkit/packing-assistant/internal/bootstrap"
	"github.com/travelkit/packing-assistant/internal/infra/config"
	"github.com/travelkit/packing-assistant/internal/weathermock"
	"github.com/travelkit/packing-assistant/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := logger.New()

	db, err := weathermock.LoadClimate(cfg.Climate.DataPath)
	if err != nil {
		// Serve the seasonal fallback for every city rather than refusing to start.
		logger.Warn("climate data unavailable, serving seasonal fallback only", "path", cfg.Climate.DataPath, "error", err)
		db = weathermock.ClimateDB{}
	}

	server := &http.Server{
		Addr:    cfg.Climate.Address,
		Handler: weathermock.NewRouter(db, logger),
	}

	app := bootstrap.NewApp(logger, server)
	if err := app.Run(ctx); err != nil {
		log.Fatalf("weathermock stopped with error: %v", err)
	}
}
