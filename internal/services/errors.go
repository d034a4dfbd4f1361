package services

import "errors"

// Service-level errors. Handlers map these to HTTP statuses; anything not
// listed here surfaces as a generic failure.
var (
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrAuthentication      = errors.New("an error occurred during login")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrEmailTaken          = errors.New("email already exists")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)
