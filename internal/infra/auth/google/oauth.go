// Package google completes the backend-driven Google sign-in redirect.
package google

import (
	"net/url"
	"strconv"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
)

// loginPath is served by the backend; it runs the OAuth exchange and redirects
// back with the session in the query string.
const loginPath = "/user/auth/google"

// IdentityRedirect implements service.IdentityRedirect for the backend's Google flow.
type IdentityRedirect struct {
	authBaseURL string
	inspector   service.TokenInspector
}

// NewIdentityRedirect creates the Google redirect handler.
func NewIdentityRedirect(cfg *config.Config, inspector service.TokenInspector) service.IdentityRedirect {
	return &IdentityRedirect{
		authBaseURL: cfg.API.AuthBaseURL,
		inspector:   inspector,
	}
}

// LoginURL returns the backend URL that starts the Google flow.
func (r *IdentityRedirect) LoginURL() string {
	return r.authBaseURL + loginPath
}

// ParseCallback reads accessToken, refreshToken, userId, name, email, role and avatar.
// The first three are required.
func (r *IdentityRedirect) ParseCallback(query url.Values) (*entity.Session, error) {
	accessToken := query.Get("accessToken")
	refreshToken := query.Get("refreshToken")
	userID := query.Get("userId")
	if accessToken == "" || refreshToken == "" || userID == "" {
		return nil, domainerrors.ErrIdentityRedirectFailed.WithDetails("missing token or user id")
	}

	role := entity.RoleCustomer
	if raw := query.Get("role"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, domainerrors.ErrIdentityRedirectFailed.WithDetails("invalid role " + strconv.Quote(raw))
		}
		role = entity.Role(n)
	}

	session := &entity.Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: entity.User{
			ID:     userID,
			Name:   query.Get("name"),
			Email:  query.Get("email"),
			Role:   role,
			Avatar: query.Get("avatar"),
		},
	}
	if claims, err := r.inspector.Inspect(accessToken); err == nil {
		session.ExpiresAt = claims.ExpiresAt
	}

	return session, nil
}
