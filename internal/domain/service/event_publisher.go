package service

import (
	"context"
)

// SyncFailureEvent reports a remote collection call that failed after its local mutation was applied.
type SyncFailureEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string `json:"notification_id"`
	Collection     string `json:"collection"`
	Operation      string `json:"operation"`
	UserID         string `json:"user_id"`
	ProductID      string `json:"product_id,omitempty"`
	StatusCode     int    `json:"status_code,omitempty"`
	Message        string `json:"message"`
	OccurredAt     string `json:"occurred_at"` // RFC3339
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSyncFailure publishes a sync failure for out-of-band monitoring
	PublishSyncFailure(ctx context.Context, event *SyncFailureEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
