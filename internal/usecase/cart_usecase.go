// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to keep the user's cart and wishlist in sync
// with the remote store.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// AddProductInput adds a catalog product by id; price and stock are looked up remotely.
type AddProductInput struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1"`
	Image     string `json:"image"`
	Color     string `json:"color"`
	Size      string `json:"size"`
}

// CartUsecase keeps the local cart consistent with the remote cart.
//
// Mutations apply locally first and are persisted to the durable cache before the
// remote call is made. A failed remote call never rolls the local change back: the
// affected line is tagged failed and a notification is reported instead.
type CartUsecase interface {
	// LoadCart replaces the local cart with the remote one. On failure local state is untouched.
	LoadCart(ctx context.Context) ([]*entity.CartLine, error)

	// AddToCart appends a new line after validating quantity against the available stock.
	AddToCart(ctx context.Context, in *entity.NewCartLine) (*entity.CartLine, error)

	// AddProduct looks the product up and adds it at its effective price.
	AddProduct(ctx context.Context, in *AddProductInput) (*entity.CartLine, error)

	// UpdateQuantity sets the quantity of the first line for productID. Quantities below 1 are rejected.
	UpdateQuantity(ctx context.Context, productID string, quantity int) error

	// RemoveLine removes every line for productID.
	RemoveLine(ctx context.Context, productID string) error

	// ClearCart empties the local cart and its cache entry. The remote cart is not touched.
	ClearCart(ctx context.Context) error

	// ClearRemoteCart deletes the remote cart.
	ClearRemoteCart(ctx context.Context) error

	// RetryFailed re-sends the remote call of every failed line and returns how many are now synced.
	RetryFailed(ctx context.Context) (int, error)

	Lines() []*entity.CartLine
	Total() decimal.Decimal
}
