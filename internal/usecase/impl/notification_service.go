package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const publishTimeout = 5 * time.Second

type notificationService struct {
	mu        sync.Mutex
	inbox     []*entity.SyncNotification // oldest first
	capacity  int
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NotificationServiceParams holds dependencies for the notification service, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	Config    *config.Config
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewNotificationService creates the in-memory notification inbox.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	capacity := 0
	if params.Config != nil && params.Config.Sync != nil {
		capacity = params.Config.Sync.InboxSize
	}
	if capacity <= 0 {
		capacity = 50
	}

	return &notificationService{
		capacity:  capacity,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Report stores the notification, dropping the oldest one when the inbox is full,
// and forwards it to the event publisher. Publisher errors are only logged.
func (srv *notificationService) Report(ctx context.Context, n *entity.SyncNotification) {
	n.ID = uuid.New()
	n.CreatedAt = srv.now().UTC()

	srv.log(ctx).Warn("Remote sync failed",
		slog.String("notification_id", n.ID.String()),
		slog.String("collection", string(n.Collection)),
		slog.String("operation", string(n.Operation)),
		slog.String("user_id", n.UserID),
		slog.String("product_id", n.ProductID),
		slog.Int("status_code", n.StatusCode),
		slog.String("message", n.Message),
	)

	stored := *n
	srv.mu.Lock()
	srv.inbox = append(srv.inbox, &stored)
	if overflow := len(srv.inbox) - srv.capacity; overflow > 0 {
		srv.inbox = slices.Delete(srv.inbox, 0, overflow)
	}
	srv.mu.Unlock()

	// The caller's request may already be finished; keep its values but not its cancellation.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := &service.SyncFailureEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		NotificationID: n.ID.String(),
		Collection:     string(n.Collection),
		Operation:      string(n.Operation),
		UserID:         n.UserID,
		ProductID:      n.ProductID,
		StatusCode:     n.StatusCode,
		Message:        n.Message,
		OccurredAt:     n.CreatedAt.Format(time.RFC3339),
	}
	if err := srv.publisher.PublishSyncFailure(publishCtx, event); err != nil {
		srv.log(ctx).Error("Failed to publish sync failure",
			slog.String("notification_id", n.ID.String()),
			slog.Any("error", err),
		)
	}
}

func (srv *notificationService) List() []*entity.SyncNotification {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	out := make([]*entity.SyncNotification, 0, len(srv.inbox))
	for i := len(srv.inbox) - 1; i >= 0; i-- {
		n := *srv.inbox[i]
		out = append(out, &n)
	}

	return out
}

func (srv *notificationService) Dismiss(id uuid.UUID) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	idx := slices.IndexFunc(srv.inbox, func(n *entity.SyncNotification) bool { return n.ID == id })
	if idx < 0 {
		return domainerrors.ErrNotFound.WithDetails("notification " + id.String())
	}
	srv.inbox = slices.Delete(srv.inbox, idx, idx+1)

	return nil
}
