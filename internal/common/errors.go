// Package common defines shared constants and sentinel errors used across
// the portal client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Remote resource errors.
	ErrorNotFound = errors.New("not found")

	// Auth errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrTokenExpired   = errors.New("token expired")
	ErrNotLoggedIn    = errors.New("not logged in")

	// Transport-level errors (server unreachable, connection refused, ...).
	ErrUnavailable = errors.New("server unavailable")
)
