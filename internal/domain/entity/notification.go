package entity

import (
	"time"

	"github.com/google/uuid"
)

// Collection names one of the user-scoped collections.
type Collection string

const (
	CollectionCart     Collection = "cart"
	CollectionWishlist Collection = "wishlist"
	CollectionSession  Collection = "session"
)

// Operation names the remote call a notification is about.
type Operation string

const (
	OperationFetch  Operation = "fetch"
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
	OperationClear  Operation = "clear"
	OperationLogout Operation = "logout"
)

// SyncNotification is a dismissible record of a remote call that failed after
// its optimistic local mutation was already applied.
type SyncNotification struct {
	ID         uuid.UUID  `json:"id"`                   // Identity used for dismissal.
	Collection Collection `json:"collection"`           // Which collection the call targeted.
	Operation  Operation  `json:"operation"`            // Which remote operation failed.
	UserID     string     `json:"userId"`               // Session owner at the time of the call.
	ProductID  string     `json:"productId,omitempty"`  // Affected product, empty for whole-collection calls.
	StatusCode int        `json:"statusCode,omitempty"` // HTTP status from the remote store, 0 for transport errors.
	Message    string     `json:"message"`              // Human readable failure.
	CreatedAt  time.Time  `json:"createdAt"`            // When the failure was observed.
}
