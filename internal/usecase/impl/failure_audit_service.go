package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type failureAuditService struct {
	cache     repository.LocalCache
	keyPrefix string
	logger    *slog.Logger
}

// FailureAuditServiceParams holds dependencies for the audit service, injected by Fx.
type FailureAuditServiceParams struct {
	fx.In

	Config *config.Config
	Cache  repository.LocalCache
	Logger *slog.Logger
}

// NewFailureAuditService records events under <prefix><day>/<notification id>.
func NewFailureAuditService(params FailureAuditServiceParams) usecase.FailureAuditUsecase {
	prefix := ""
	if params.Config != nil && params.Config.Worker != nil {
		prefix = params.Config.Worker.AuditKeyPrefix
	}

	return &failureAuditService{
		cache:     params.Cache,
		keyPrefix: prefix,
		logger:    params.Logger,
	}
}

func (srv *failureAuditService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *failureAuditService) Record(ctx context.Context, event *service.SyncFailureEvent) (bool, error) {
	if event == nil {
		return false, domainerrors.ErrInvalidEvent
	}
	if _, err := uuid.Parse(event.NotificationID); err != nil {
		return false, domainerrors.ErrInvalidEvent.WithDetails("notificationId must be a uuid")
	}
	if event.Collection == "" || event.Operation == "" {
		return false, domainerrors.ErrInvalidEvent.WithDetails("collection and operation are required")
	}

	occurredAt, err := time.Parse(time.RFC3339, event.OccurredAt)
	if err != nil {
		return false, domainerrors.ErrInvalidEvent.WithDetails("occurredAt must be RFC 3339")
	}

	key := srv.keyPrefix + occurredAt.UTC().Format(time.DateOnly) + "/" + event.NotificationID

	_, err = srv.cache.Get(ctx, key)
	switch {
	case err == nil:
		srv.log(ctx).Debug("Sync failure already recorded", slog.String("notification_id", event.NotificationID))

		return false, nil
	case !errors.Is(err, repository.ErrCacheMiss):
		return false, errors.Wrap(err, "look up audit record")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return false, errors.WithStack(err)
	}
	if err := srv.cache.Set(ctx, key, data); err != nil {
		return false, errors.Wrap(err, "write audit record")
	}

	srv.log(ctx).Info("Sync failure recorded",
		slog.String("notification_id", event.NotificationID),
		slog.String("collection", event.Collection),
		slog.String("operation", event.Operation),
		slog.String("user_id", event.UserID),
		slog.Int("status_code", event.StatusCode),
	)

	return true, nil
}
