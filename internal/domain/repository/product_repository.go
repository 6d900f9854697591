package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductRepository reads catalog products. Only stock lookups are needed by the collections.
type ProductRepository interface {
	// FindByID returns domainerrors.ErrNotFound when the product does not exist.
	FindByID(ctx context.Context, productID string) (*entity.Product, error)
}
