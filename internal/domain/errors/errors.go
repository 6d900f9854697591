// Package errors defines the error taxonomy of the storefront client.
package errors

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code the BFF answers with
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches on error code so WithDetails copies still satisfy errors.Is.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Session-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"please log in to continue",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"login failed",
		"",
	)

	ErrIdentityRedirectFailed = NewBaseError(
		http.StatusUnauthorized,
		"IDENTITY_REDIRECT_FAILED",
		"third-party login failed",
		"",
	)

	// Collection-related errors
	ErrInvalidCartLine = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CART_LINE",
		"invalid item added to cart",
		"",
	)

	ErrInvalidProduct = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRODUCT",
		"product id is required",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"quantity must be at least 1",
		"",
	)

	ErrStockExceeded = NewBaseError(
		http.StatusConflict,
		"STOCK_EXCEEDED",
		"requested quantity exceeds available stock",
		"",
	)

	ErrMoveIncomplete = NewBaseError(
		http.StatusBadGateway,
		"MOVE_INCOMPLETE",
		"item could not be added to cart, wishlist entry kept",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"not found",
		"",
	)

	// Remote store errors
	ErrRemoteRejected = NewBaseError(
		http.StatusBadGateway,
		"REMOTE_REJECTED",
		"remote store rejected the request",
		"",
	)

	ErrUnexpectedResponse = NewBaseError(
		http.StatusBadGateway,
		"UNEXPECTED_RESPONSE",
		"remote store returned an unexpected response",
		"",
	)

	// ErrInvalidEvent is a pushed sync failure event that cannot be recorded
	ErrInvalidEvent = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EVENT",
		"sync failure event is malformed",
		"",
	)
)

// RemoteError is a non-2xx answer from the remote REST API.
type RemoteError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string // "message" field of the response when present, raw body otherwise
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Unwrap lets errors.Is(err, ErrRemoteRejected) match any remote failure.
func (e *RemoteError) Unwrap() error {
	return ErrRemoteRejected
}

// StatusCodeOf returns the remote HTTP status carried by err, or 0.
func StatusCodeOf(err error) int {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.StatusCode
	}

	return 0
}
