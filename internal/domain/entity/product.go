package entity

import (
	"github.com/shopspring/decimal"
)

// Product is the subset of a catalog product the collections depend on.
type Product struct {
	ID            string          `json:"_id"`
	Title         string          `json:"title"`
	Price         decimal.Decimal `json:"price"`
	DiscountPrice decimal.Decimal `json:"discountPrice"`
	Discount      decimal.Decimal `json:"discount"`
	Image         string          `json:"image,omitempty"`
	Stock         int             `json:"stock"`
}

// EffectivePrice is the discounted price when one is set, otherwise the list price.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.DiscountPrice.IsPositive() {
		return p.DiscountPrice
	}

	return p.Price
}
