package main

import (
	"log/slog"

	"github.com/travelkit/packing-assistant/internal/infra/config"
	"github.com/travelkit/packing-assistant/internal/infra/forecast"
	"github.com/travelkit/packing-assistant/internal/infra/profile"
)

func provideForecastClient(cfg *config.Config) *forecast.Client {
	return forecast.NewClient(cfg.Forecast.BaseURL, cfg.Forecast.Timeout)
}

func provideProfileRegistry(cfg *config.Config, logger *slog.Logger) *profile.Registry {
	return profile.Load(cfg.Profiles.Path, logger)
}
