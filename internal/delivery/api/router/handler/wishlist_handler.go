package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// WishlistHandlerParams holds dependencies for WishlistHandler, injected by Fx.
type WishlistHandlerParams struct {
	fx.In

	WishlistUC usecase.WishlistUsecase
	Logger     *slog.Logger
}

// WishlistHandler holds dependencies for wishlist handlers
type WishlistHandler struct {
	wishlistUC usecase.WishlistUsecase
	logger     *slog.Logger
}

// NewWishlistHandler is the constructor for WishlistHandler
func NewWishlistHandler(params WishlistHandlerParams) *WishlistHandler {
	return &WishlistHandler{
		wishlistUC: params.WishlistUC,
		logger:     params.Logger,
	}
}

// ProductRequest is the product card the UI sends when it toggles or adds a wishlist entry.
type ProductRequest struct {
	ProductID     string          `json:"productId" validate:"required"`
	Title         string          `json:"title"`
	Price         decimal.Decimal `json:"price"`
	DiscountPrice decimal.Decimal `json:"discountPrice"`
	Discount      decimal.Decimal `json:"discount"`
	Image         string          `json:"image"`
	Stock         int             `json:"stock" validate:"min=0"`
}

func (r *ProductRequest) product() *entity.Product {
	return &entity.Product{
		ID:            r.ProductID,
		Title:         r.Title,
		Price:         r.Price,
		DiscountPrice: r.DiscountPrice,
		Discount:      r.Discount,
		Image:         r.Image,
		Stock:         r.Stock,
	}
}

// ToggleResponse reports whether the toggle added or removed the product.
type ToggleResponse struct {
	InWishlist bool                    `json:"inWishlist"`
	Entries    []*entity.WishlistEntry `json:"entries"`
}

func (h *WishlistHandler) bindProduct(c echo.Context) (*entity.Product, error) {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return nil, response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return nil, response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	return req.product(), nil
}

// GetWishlist returns the local wishlist.
func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.wishlistUC.Entries())
}

// RefreshWishlist replaces the local wishlist with the remote one.
func (h *WishlistHandler) RefreshWishlist(c echo.Context) error {
	entries, err := h.wishlistUC.LoadWishlist(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries)
}

// Toggle flips membership of the posted product.
func (h *WishlistHandler) Toggle(c echo.Context) error {
	product, err := h.bindProduct(c)
	if product == nil {
		return err
	}

	added, err := h.wishlistUC.ToggleWishlist(c.Request().Context(), product)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &ToggleResponse{
		InWishlist: added,
		Entries:    h.wishlistUC.Entries(),
	})
}

// Add puts the posted product in the wishlist if it is not there yet.
func (h *WishlistHandler) Add(c echo.Context) error {
	product, err := h.bindProduct(c)
	if product == nil {
		return err
	}

	if err := h.wishlistUC.AddToWishlist(c.Request().Context(), product); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.wishlistUC.Entries())
}

// Remove drops :productId from the wishlist.
func (h *WishlistHandler) Remove(c echo.Context) error {
	if err := h.wishlistUC.RemoveFromWishlist(c.Request().Context(), c.Param("productId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.wishlistUC.Entries())
}

// Clear deletes the whole wishlist.
func (h *WishlistHandler) Clear(c echo.Context) error {
	if err := h.wishlistUC.ClearWishlist(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// MoveToCart moves :productId from the wishlist into the cart.
func (h *WishlistHandler) MoveToCart(c echo.Context) error {
	line, err := h.wishlistUC.MoveToCart(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, line)
}
