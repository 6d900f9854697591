package localcache

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CacheParams holds dependencies for LocalCache, injected by Fx
type CacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewLocalCache opens the configured cache backend and closes it on shutdown.
func NewLocalCache(params CacheParams) (repository.LocalCache, error) {
	cfg := params.Config.Cache

	openCtx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	var cache repository.LocalCache
	var err error

	switch cfg.Provider {
	case config.CacheProviderBlob:
		cache, err = NewBlobCache(openCtx, cfg.BucketURL, params.Logger)
	case config.CacheProviderRedis:
		cache, err = NewRedisCache(openCtx, cfg.Redis, params.Logger)
	default:
		return nil, errors.Errorf("unknown cache provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing local cache")

			return cache.Close()
		},
	})

	return cache, nil
}

// Module provides the local cache and the stores built on it.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewLocalCache,
		NewCartSnapshotRepository,
		NewSessionRepository,
	),
)
