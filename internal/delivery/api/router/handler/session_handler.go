package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler serves login, logout and the identity-provider redirect.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// LoginRequest represents the request body for password login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse is the session as shown to the UI. Tokens stay server-side.
type SessionResponse struct {
	User      entity.User `json:"user"`
	IsAdmin   bool        `json:"isAdmin"`
	ExpiresAt *time.Time  `json:"expiresAt,omitempty"`
}

func newSessionResponse(session *entity.Session) *SessionResponse {
	resp := &SessionResponse{
		User:    session.User,
		IsAdmin: session.User.Role.IsAdmin(),
	}
	if !session.ExpiresAt.IsZero() {
		expiresAt := session.ExpiresAt
		resp.ExpiresAt = &expiresAt
	}

	return resp
}

// Login handles email and password login
func (h *SessionHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	session, err := h.sessionUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSessionResponse(session))
}

// GoogleLogin redirects the browser to the identity provider.
func (h *SessionHandler) GoogleLogin(c echo.Context) error {
	return c.Redirect(http.StatusFound, h.sessionUC.IdentityLoginURL())
}

// GoogleCallback completes the identity-provider login from the redirect query.
func (h *SessionHandler) GoogleCallback(c echo.Context) error {
	session, err := h.sessionUC.CompleteIdentityRedirect(c.Request().Context(), c.QueryParams())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSessionResponse(session))
}

// Logout ends the session; local state is discarded even if the backend call fails.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.sessionUC.Logout(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// Current returns the active session.
func (h *SessionHandler) Current(c echo.Context) error {
	session, err := h.sessionUC.Current(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSessionResponse(session))
}

// CompleteCheckout empties the local cart after the order was placed.
func (h *SessionHandler) CompleteCheckout(c echo.Context) error {
	if err := h.sessionUC.CompleteCheckout(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
