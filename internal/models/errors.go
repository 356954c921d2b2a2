package models

import "errors"

// Application-wide standard errors
var (
	// Common Resource/DB Errors
	ErrNotFound = errors.New("resource not found")

	// User & Authentication Errors
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrInactiveAccount        = errors.New("account is inactive")
	ErrEmailAlreadyRegistered = errors.New("email is already registered")
	ErrInvalidSession         = errors.New("session is invalid")
	ErrForbidden              = errors.New("forbidden") // Authenticated, but lacks permission

	// Token Errors. Both collapse into ErrInvalidSession at the API
	// boundary; the distinction exists for logs and tests only.
	ErrTokenInvalid = errors.New("token is invalid")
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenRevoked = errors.New("token has been revoked")

	// General Request/Server Errors
	ErrInternalServer = errors.New("internal server error")
	ErrBadRequest     = errors.New("bad request")
	ErrInvalidInput   = errors.New("invalid input data")
)

// Error codes returned to clients in ErrorResponse.Code.
const (
	ErrCodeWrongCredentials = "WRONG_CREDENTIALS"
	ErrCodeInactiveAccount  = "INACTIVE_ACCOUNT"
	ErrCodeDuplicateEmail   = "DUPLICATE_EMAIL"
	ErrCodeInvalidSession   = "INVALID_SESSION"
	ErrCodeForbidden        = "FORBIDDEN"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeInternal         = "INTERNAL_ERROR"
)
