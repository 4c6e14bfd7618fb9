// Package common defines shared constants and sentinel errors used across
// the PassLocker server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// ErrInvalidInput is returned for empty or malformed arguments, e.g. an
	// empty password passed to hashing.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidToken covers every token validation failure. Expired, forged,
	// foreign and malformed tokens are deliberately indistinguishable.
	ErrInvalidToken = errors.New("invalid token")

	// ErrConfiguration marks missing or invalid startup settings. It is fatal.
	ErrConfiguration = errors.New("configuration error")
)
