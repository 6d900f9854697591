package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// WishlistRepository is the remote, authoritative wishlist store.
type WishlistRepository interface {
	FetchWishlist(ctx context.Context, session *entity.Session) (*entity.Wishlist, error)
	AddEntry(ctx context.Context, session *entity.Session, productID string) error
	DeleteEntry(ctx context.Context, session *entity.Session, productID string) error
	ClearWishlist(ctx context.Context, session *entity.Session) error
}
