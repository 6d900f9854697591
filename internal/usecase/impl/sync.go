// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/im7mortal/kmutex"
	"github.com/pkg/errors"
)

// keyedLocker serializes work per product id.
type keyedLocker interface {
	Lock(key interface{})
	Unlock(key interface{})
}

// noopLocker lets operations on the same product overlap.
type noopLocker struct{}

func (noopLocker) Lock(interface{})   {}
func (noopLocker) Unlock(interface{}) {}

// newKeyedLocker returns a real per-key mutex only when sync.serializePerKey is set.
func newKeyedLocker(cfg *config.Config) keyedLocker {
	if cfg != nil && cfg.Sync != nil && cfg.Sync.SerializePerKey {
		return kmutex.New()
	}

	return noopLocker{}
}

// requireSession returns the stored session when it is still valid at now.
func requireSession(ctx context.Context, sessions repository.SessionRepository, now time.Time) (*entity.Session, error) {
	session, err := sessions.Get(ctx)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUnauthenticated) {
			return nil, domainerrors.ErrUnauthenticated
		}

		return nil, errors.Wrap(err, "read session")
	}
	if !session.IsValid(now) {
		return nil, domainerrors.ErrUnauthenticated
	}

	return session, nil
}

// failure describes a remote call that failed after its local mutation was applied.
type failure struct {
	collection entity.Collection
	operation  entity.Operation
	session    *entity.Session
	productID  string
	err        error
}

func reportFailure(ctx context.Context, notifications usecase.NotificationUsecase, f failure) {
	n := &entity.SyncNotification{
		Collection: f.collection,
		Operation:  f.operation,
		ProductID:  f.productID,
		StatusCode: domainerrors.StatusCodeOf(f.err),
		Message:    f.err.Error(),
	}
	if f.session != nil {
		n.UserID = f.session.UserID()
	}
	notifications.Report(ctx, n)
}
