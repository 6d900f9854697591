package entity

import (
	"time"
)

// Role is the numeric role the backend issues for a user.
type Role int

const (
	// RoleCustomer is an ordinary shopper.
	RoleCustomer Role = 0
	// RoleAdmin may use the administrative back-office.
	RoleAdmin Role = 1
)

// IsAdmin reports whether the role grants back-office access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// String returns a readable name for the role.
func (r Role) String() string {
	if r.IsAdmin() {
		return "admin"
	}

	return "customer"
}

// User is the identity the backend returns at login.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// Session is the authenticated identity that the cart and wishlist are scoped to.
type Session struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	User         User      `json:"user"`
	ExpiresAt    time.Time `json:"expiresAt,omitempty"` // Zero when the token carries no exp claim.
}

// UserID returns the id of the session owner.
func (s *Session) UserID() string {
	return s.User.ID
}

// IsValid reports whether the session can authenticate requests at now.
func (s *Session) IsValid(now time.Time) bool {
	if s == nil || s.AccessToken == "" || s.User.ID == "" {
		return false
	}
	if s.ExpiresAt.IsZero() {
		return true
	}

	return now.Before(s.ExpiresAt)
}
