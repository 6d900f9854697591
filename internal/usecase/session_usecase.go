package usecase

import (
	"context"
	"net/url"

	"storefront/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionUsecase manages the authenticated identity the collections are scoped to.
type SessionUsecase interface {
	// Login authenticates, stores the session and loads both collections.
	Login(ctx context.Context, input *LoginInput) (*entity.Session, error)

	// IdentityLoginURL is where the third-party sign-in flow starts.
	IdentityLoginURL() string

	// CompleteIdentityRedirect stores the session carried by the sign-in redirect.
	CompleteIdentityRedirect(ctx context.Context, query url.Values) (*entity.Session, error)

	// Logout ends the session and discards the local cart. Remote collections are kept.
	Logout(ctx context.Context) error

	// Current returns the active session or ErrUnauthenticated.
	Current(ctx context.Context) (*entity.Session, error)

	// CompleteCheckout clears the local cart after a successful order.
	CompleteCheckout(ctx context.Context) error
}
