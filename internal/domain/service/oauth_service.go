package service

import (
	"net/url"

	"storefront/internal/domain/entity"
)

// IdentityRedirect handles the third-party sign-in flow run by the backend.
// The backend performs the OAuth exchange and redirects back with the session in the query string.
type IdentityRedirect interface {
	// LoginURL is where the user agent is sent to start the flow.
	LoginURL() string

	// ParseCallback builds a session from the redirect query parameters.
	ParseCallback(query url.Values) (*entity.Session, error)
}
