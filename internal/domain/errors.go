package domain

import "errors"

// Sentinel errors for access and profile loading. Every one of them ends in
// the same redirect for the visitor; they exist so logs can tell them apart.
var (
	// ErrUnauthenticated means no session token is present, or the remote API
	// rejected the token.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrUnauthorized means the session role does not match the role a view
	// requires.
	ErrUnauthorized = errors.New("unauthorized for this view")

	// ErrFetchFailed covers transport errors, non-success statuses and
	// undecodable profile bodies.
	ErrFetchFailed = errors.New("profile fetch failed")
)
