// Package repository defines the ports the storefront core uses to reach its collaborators:
// the remote collection API and the durable local cache.
// These interfaces act as a contract between the application layer and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// Credentials is the email/password pair sent to the login endpoint.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthRepository defines the remote authentication operations.
type AuthRepository interface {
	// Login exchanges credentials for a session.
	Login(ctx context.Context, creds Credentials) (*entity.Session, error)

	// Logout ends the session on the remote side. Local state is not touched.
	Logout(ctx context.Context, session *entity.Session) error
}
