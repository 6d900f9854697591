package localcache

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

type sessionRepository struct {
	cache repository.LocalCache
}

// NewSessionRepository stores the session as one JSON document under repository.SessionCacheKey.
func NewSessionRepository(cache repository.LocalCache) repository.SessionRepository {
	return &sessionRepository{cache: cache}
}

func (r *sessionRepository) Get(ctx context.Context) (*entity.Session, error) {
	data, err := r.cache.Get(ctx, repository.SessionCacheKey)
	if err != nil {
		if errors.Is(err, repository.ErrCacheMiss) {
			return nil, domainerrors.ErrUnauthenticated
		}

		return nil, err
	}

	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "stored session unreadable")
	}

	return &session, nil
}

func (r *sessionRepository) Save(ctx context.Context, session *entity.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return errors.WithStack(err)
	}

	return r.cache.Set(ctx, repository.SessionCacheKey, data)
}

func (r *sessionRepository) Delete(ctx context.Context) error {
	return r.cache.Delete(ctx, repository.SessionCacheKey)
}
