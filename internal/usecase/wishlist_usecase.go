package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// WishlistUsecase keeps the local wishlist consistent with the remote one.
// The wishlist is a set: at most one entry per product.
type WishlistUsecase interface {
	LoadWishlist(ctx context.Context) ([]*entity.WishlistEntry, error)

	// ToggleWishlist removes the product when present and adds it otherwise.
	// It reports whether the product is in the wishlist afterwards.
	ToggleWishlist(ctx context.Context, product *entity.Product) (bool, error)

	AddToWishlist(ctx context.Context, product *entity.Product) error
	RemoveFromWishlist(ctx context.Context, productID string) error

	// ClearWishlist deletes the remote wishlist and empties the local one.
	ClearWishlist(ctx context.Context) error

	// MoveToCart adds one unit of the product to the cart, then removes it from the
	// wishlist once the cart line is confirmed remotely.
	MoveToCart(ctx context.Context, productID string) (*entity.CartLine, error)

	Entries() []*entity.WishlistEntry
	Contains(productID string) bool

	// Reset drops the in-memory wishlist without touching the remote store.
	Reset()
}
