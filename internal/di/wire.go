//go:build wireinject
// +build wireinject

package di

import (
	"TradePulse/pkg/config"
	"TradePulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire generates the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure
		ProvideSnapshotCache,
		ProvidePriceSource,
		ProvideAlertPublisher,

		// Use cases
		ProvidePriceService,
		ProvideSignalService,
		ProvideAlertLog,
		ProvideAlertService,
		ProvideExplainer,
		ProvideExplainService,

		// HTTP surface
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
