package domain

import "errors"

var (
	// ErrInvalidInput marks requests the caller can fix and resubmit.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUpstreamFailure marks a failed call to the catalog store or the embedding API.
	ErrUpstreamFailure = errors.New("upstream failure")

	ErrBottleNotFound     = errors.New("bottle not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
