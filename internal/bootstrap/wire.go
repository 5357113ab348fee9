//go:build wireinject

package bootstrap

import (
	"context"

	"frankfurter/internal/application"
	"frankfurter/internal/config"
	httpserver "frankfurter/internal/infrastructure/http"

	"github.com/google/wire"
)

var serviceSet = wire.NewSet(
	ProvideLogger,
	ProvideCatalogStore,
	ProvideRateSource,
	ProvideFXRatesService,
)

// API injector: builds *httpserver.Server + Cleanup
func InitAPI(ctx context.Context, cfg config.Config) (*httpserver.Server, func(), error) {
	wire.Build(
		serviceSet,
		ProvideHTTPServer,
	)
	return nil, nil, nil
}

// CLI injector: builds the service alone + Cleanup
func InitService(ctx context.Context, cfg config.Config) (*application.FXRatesService, func(), error) {
	wire.Build(serviceSet)
	return nil, nil, nil
}
