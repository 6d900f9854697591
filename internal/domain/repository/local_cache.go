package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCacheMiss is returned by LocalCache.Get when the key holds no value.
var ErrCacheMiss = errors.New("cache miss")

// Fixed keys of the durable local cache.
const (
	CartCacheKey    = "cartItems"
	SessionCacheKey = "session"
)

// LocalCache is the durable key-value store that survives restarts of the client.
// It is a cache of the remote store, never a source of truth for collections.
type LocalCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete succeeds when the key is already absent.
	Delete(ctx context.Context, key string) error
	Close() error
}

// CartSnapshotRepository persists the serialized cart collection.
type CartSnapshotRepository interface {
	// Load returns the stored lines, or an empty slice when nothing is stored.
	Load(ctx context.Context) ([]*entity.CartLine, error)
	Save(ctx context.Context, lines []*entity.CartLine) error
	Clear(ctx context.Context) error
}

// SessionRepository persists the active session.
type SessionRepository interface {
	// Get returns domainerrors.ErrUnauthenticated when no session is stored.
	Get(ctx context.Context) (*entity.Session, error)
	Save(ctx context.Context, session *entity.Session) error
	Delete(ctx context.Context) error
}
