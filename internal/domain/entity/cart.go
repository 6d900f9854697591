// Package entity contains the core business objects of the storefront client:
// the user's cart and wishlist collections and the session they are scoped to.
package entity

import (
	"github.com/shopspring/decimal"
)

// CartLine is one row of the user's cart.
// LineID is a local rendering identity only; two lines may reference the same ProductID.
type CartLine struct {
	LineID    string          `json:"_cartId"`            // Locally generated identity.
	ProductID string          `json:"productId"`          // Referenced product.
	Title     string          `json:"title"`              // Product title at add time.
	Image     string          `json:"image,omitempty"`    // Image reference, never fetched.
	Price     decimal.Decimal `json:"price"`              // Unit price snapshot taken at add time.
	Quantity  int             `json:"quantity"`           // Always >= 1 while the line exists.
	Color     string          `json:"color,omitempty"`    // Optional variant.
	Size      string          `json:"size,omitempty"`     // Optional variant.
	SyncState SyncState       `json:"syncState,omitempty"` // Local-only sync tag.
}

// Subtotal returns price * quantity for the line.
func (l *CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Clone returns a copy safe to hand out of the collection.
func (l *CartLine) Clone() *CartLine {
	if l == nil {
		return nil
	}
	c := *l

	return &c
}

// NewCartLine is the input for adding a product to the cart.
// AvailableStock comes from the product, fetched separately by the caller.
type NewCartLine struct {
	ProductID      string          `json:"productId" validate:"required"`
	Title          string          `json:"title"`
	Image          string          `json:"image"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity" validate:"min=1"`
	Color          string          `json:"color"`
	Size           string          `json:"size"`
	AvailableStock int             `json:"availableStock" validate:"min=0"`
}

// CartTotal sums price * quantity over the given lines.
func CartTotal(lines []*CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}

	return total
}
