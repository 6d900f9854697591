// Package auth provides the client-side authentication helpers: reading
// backend-issued tokens and completing the third-party sign-in redirect.
package auth

import (
	"time"

	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwtInspector is a TokenInspector for HMAC or RSA tokens issued by the backend.
type jwtInspector struct {
	parser *jwt.Parser
}

// NewJWTInspector is the constructor for jwtInspector.
func NewJWTInspector() service.TokenInspector {
	return &jwtInspector{parser: jwt.NewParser()}
}

// Inspect decodes the token payload without verifying its signature.
// The result must only drive client behaviour such as expiry checks, never authorization.
func (s *jwtInspector) Inspect(accessToken string) (*service.TokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := s.parser.ParseUnverified(accessToken, claims); err != nil {
		return nil, errors.Wrap(err, "parse access token")
	}

	out := &service.TokenClaims{}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if out.Subject == "" {
		// Some backends put the user id in a custom claim.
		for _, key := range []string{"id", "userId", "_id"} {
			if v, ok := claims[key].(string); ok && v != "" {
				out.Subject = v

				break
			}
		}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, errors.Wrap(err, "read exp claim")
	}
	if exp != nil {
		out.ExpiresAt = exp.Time.UTC().Truncate(time.Second)
	}

	return out, nil
}
