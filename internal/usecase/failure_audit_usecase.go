package usecase

import (
	"context"

	"storefront/internal/domain/service"
)

// FailureAuditUsecase keeps a durable trail of sync failure events delivered by Pub/Sub.
type FailureAuditUsecase interface {
	// Record stores event once. Redelivered events report recorded=false.
	Record(ctx context.Context, event *service.SyncFailureEvent) (recorded bool, err error)
}
