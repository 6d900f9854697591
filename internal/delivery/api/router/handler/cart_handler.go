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

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// UpdateQuantityRequest represents the request body for changing a line quantity
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"min=1"`
}

// CartResponse is the cart with its derived total.
type CartResponse struct {
	Lines []*entity.CartLine `json:"lines"`
	Total decimal.Decimal    `json:"total"`
}

// RetryResponse reports how many failed lines were confirmed by the retry.
type RetryResponse struct {
	Synced int           `json:"synced"`
	Cart   *CartResponse `json:"cart"`
}

func (h *CartHandler) cart() *CartResponse {
	return &CartResponse{
		Lines: h.cartUC.Lines(),
		Total: h.cartUC.Total(),
	}
}

// GetCart returns the local cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.cart())
}

// RefreshCart replaces the local cart with the remote one.
func (h *CartHandler) RefreshCart(c echo.Context) error {
	if _, err := h.cartUC.LoadCart(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.cart())
}

// AddLine adds a product to the cart at its current effective price.
func (h *CartHandler) AddLine(c echo.Context) error {
	var input usecase.AddProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart line input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	line, err := h.cartUC.AddProduct(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, line)
}

// UpdateQuantity sets the quantity of the line for :productId.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.cartUC.UpdateQuantity(c.Request().Context(), c.Param("productId"), req.Quantity); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.cart())
}

// RemoveLine removes every line for :productId.
func (h *CartHandler) RemoveLine(c echo.Context) error {
	if err := h.cartUC.RemoveLine(c.Request().Context(), c.Param("productId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.cart())
}

// ClearCart empties the local cart only.
func (h *CartHandler) ClearCart(c echo.Context) error {
	if err := h.cartUC.ClearCart(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ClearRemoteCart deletes the user's cart on the backend.
func (h *CartHandler) ClearRemoteCart(c echo.Context) error {
	if err := h.cartUC.ClearRemoteCart(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// RetryFailed re-sends the remote calls of failed lines.
func (h *CartHandler) RetryFailed(c echo.Context) error {
	synced, err := h.cartUC.RetryFailed(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &RetryResponse{Synced: synced, Cart: h.cart()})
}
