package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenNotFound      = errors.New("token not found or revoked")
	ErrTokenExpired       = errors.New("token expired")
	ErrEmailNotVerified   = errors.New("email address not verified")
	ErrEmailExists        = errors.New("email already registered")
)
