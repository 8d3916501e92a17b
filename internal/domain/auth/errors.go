package auth

import "errors"

// Token verification failures. The HTTP boundary collapses all three into a
// single unauthorized response so callers cannot distinguish a forged token
// from an expired one.
var (
	ErrTokenMalformed        = errors.New("session token malformed")
	ErrTokenInvalidSignature = errors.New("session token signature invalid")
	ErrTokenExpired          = errors.New("session token expired")
)
