//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/travelkit/packing-assistant/internal/bootstrap"
	"github.com/travelkit/packing-assistant/internal/domain/packlist"
	"github.com/travelkit/packing-assistant/internal/infra/config"
	"github.com/travelkit/packing-assistant/internal/infra/forecast"
	httpiface "github.com/travelkit/packing-assistant/internal/interface/http"
	"github.com/travelkit/packing-assistant/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideForecastClient,
		provideProfileRegistry,
		packlist.NewService,
		wire.Bind(new(packlist.ForecastClient), new(*forecast.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
