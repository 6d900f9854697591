package localcache

import (
	"context"
	"encoding/json"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

type cartSnapshotRepository struct {
	cache  repository.LocalCache
	logger *slog.Logger
}

// NewCartSnapshotRepository stores the cart as a JSON array under repository.CartCacheKey.
func NewCartSnapshotRepository(cache repository.LocalCache, logger *slog.Logger) repository.CartSnapshotRepository {
	return &cartSnapshotRepository{cache: cache, logger: logger}
}

// Load treats a missing or unreadable snapshot as an empty cart.
func (r *cartSnapshotRepository) Load(ctx context.Context) ([]*entity.CartLine, error) {
	data, err := r.cache.Get(ctx, repository.CartCacheKey)
	if err != nil {
		if errors.Is(err, repository.ErrCacheMiss) {
			return []*entity.CartLine{}, nil
		}

		return nil, err
	}

	var lines []*entity.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		r.logger.Warn("Discarding unreadable cart snapshot", slog.Any("error", err))

		return []*entity.CartLine{}, nil
	}

	out := make([]*entity.CartLine, 0, len(lines))
	for _, line := range lines {
		if line == nil || line.ProductID == "" || line.Quantity < 1 {
			continue
		}
		out = append(out, line)
	}

	return out, nil
}

func (r *cartSnapshotRepository) Save(ctx context.Context, lines []*entity.CartLine) error {
	if lines == nil {
		lines = []*entity.CartLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return errors.WithStack(err)
	}

	return r.cache.Set(ctx, repository.CartCacheKey, data)
}

func (r *cartSnapshotRepository) Clear(ctx context.Context) error {
	return r.cache.Delete(ctx, repository.CartCacheKey)
}
