package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"frankfurter/internal/application"
	"frankfurter/internal/config"
	infraconfig "frankfurter/internal/infrastructure/config"
	httpserver "frankfurter/internal/infrastructure/http"
	"frankfurter/internal/infrastructure/logx"
	"frankfurter/internal/infrastructure/provider"
	redisstore "frankfurter/internal/infrastructure/redis"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type pinger interface {
	Ping(ctx context.Context) error
}

func ProvideLogger() *zap.Logger { return logx.L() }

// ProvideCatalogStore returns the shared catalog store selected by CATALOG_STORE.
// For redis it waits up to DefaultRedisWait for the server to answer.
func ProvideCatalogStore(ctx context.Context, cfg config.Config, log *zap.Logger) (application.CatalogStore, func(), error) {
	switch cfg.CatalogStore {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		store := redisstore.New(client, infraconfig.DefaultCatalogKey, cfg.CatalogTTL)
		if err := waitReady(ctx, store.Ping, infraconfig.DefaultRedisWait); err != nil {
			_ = client.Close()
			return nil, func() {}, fmt.Errorf("redis not reachable at %s: %w", cfg.RedisAddr, err)
		}
		cleanup := func() {
			if log != nil {
				log.Info("closing redis")
			}
			_ = client.Close()
		}
		return store, cleanup, nil
	case "", "none":
		return application.NoopCatalogStore{}, func() {}, nil
	default:
		return nil, func() {}, fmt.Errorf("unsupported CATALOG_STORE=%q", cfg.CatalogStore)
	}
}

func ProvideRateSource(cfg config.Config, store application.CatalogStore, log *zap.Logger) application.RateSource {
	switch cfg.Provider {
	case "fake":
		return provider.NewFake(1.2345)
	default:
		return provider.NewEngine(
			provider.WithHost(cfg.Host),
			provider.WithHeaders(map[string]string{"User-Agent": cfg.UserAgent}),
			provider.WithQuiet(cfg.Quiet),
			provider.WithLogger(log.Named("engine")),
			provider.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
			provider.WithCatalogStore(store),
		)
	}
}

func ProvideFXRatesService(src application.RateSource) *application.FXRatesService {
	return application.NewFXRatesService(src)
}

// ProvideHTTPServer wires /readyz to the catalog store when it can be pinged.
func ProvideHTTPServer(svc *application.FXRatesService, store application.CatalogStore) *httpserver.Server {
	srv := httpserver.NewServer(svc)
	if p, ok := store.(pinger); ok {
		srv.SetReadyCheck(p.Ping)
	}
	return srv
}

func waitReady(ctx context.Context, ping func(context.Context) error, maxWait time.Duration) error {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 100 * time.Millisecond
	exp.MaxInterval = 1 * time.Second
	exp.MaxElapsedTime = maxWait

	return backoff.Retry(func() error { return ping(ctx) }, backoff.WithContext(exp, ctx))
}
