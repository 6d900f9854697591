package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase collects remote sync failures as dismissible notifications.
type NotificationUsecase interface {
	// Report records a failure. It never fails.
	Report(ctx context.Context, notification *entity.SyncNotification)

	// List returns undismissed notifications, newest first.
	List() []*entity.SyncNotification

	// Dismiss removes a notification. Unknown ids return ErrNotFound.
	Dismiss(id uuid.UUID) error
}
