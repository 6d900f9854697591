package service

import (
	"time"
)

// TokenClaims is what the client can learn from an access token without its signing key.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time // Zero when the token has no exp claim.
}

// TokenInspector reads claims from backend-issued JWTs.
// The client never holds the signing key, so signatures are not verified.
type TokenInspector interface {
	Inspect(accessToken string) (*TokenClaims, error)
}
