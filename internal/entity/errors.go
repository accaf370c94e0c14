package entity

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	// ErrSessionExpired covers a refresh token that is expired or already used:
	// a mismatch against the stored value signals replay of a superseded token.
	ErrSessionExpired   = errors.New("refresh token is expired or used")
	ErrForbidden        = errors.New("caller does not own this resource")
	ErrSelfSubscription = errors.New("cannot subscribe to your own channel")
	ErrAlreadyExists    = errors.New("resource already exists")
)
