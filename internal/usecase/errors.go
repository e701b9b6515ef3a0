package usecase

import "errors"

// Expected domain failures. Handlers map these to specific statuses; anything
// else becomes an opaque 500.
var (
	ErrPasswordMismatch   = errors.New("password must match")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrPhoneNotFound      = errors.New("phone number not found")
	ErrNoCodeRegistered   = errors.New("no verification code registered")
	ErrCodeExpired        = errors.New("verification code expired")
	ErrCodeMismatch       = errors.New("incorrect verification code")
	ErrNotVerified        = errors.New("phone number not verified")
	ErrMissingFields      = errors.New("missing required fields")
	ErrDispatchFailed     = errors.New("failed to send verification code")
	ErrArticleNotFound    = errors.New("article not found")
)
