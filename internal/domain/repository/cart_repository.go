package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartRepository is the remote, authoritative cart store.
// Every call is authenticated with the given session's bearer token.
type CartRepository interface {
	// FetchCart returns the complete remote cart of the session owner.
	FetchCart(ctx context.Context, session *entity.Session) ([]*entity.CartLine, error)

	// CreateLine adds a line remotely and returns the line as the remote store recorded it.
	CreateLine(ctx context.Context, session *entity.Session, line *entity.CartLine) (*entity.CartLine, error)

	// UpdateQuantity sets the quantity of the line keyed by (userId, productId).
	UpdateQuantity(ctx context.Context, session *entity.Session, productID string, quantity int) error

	// DeleteLine removes the line keyed by (userId, productId).
	DeleteLine(ctx context.Context, session *entity.Session, productID string) error

	// ClearCart deletes the whole remote cart.
	ClearCart(ctx context.Context, session *entity.Session) error
}
