// Package common defines shared sentinel errors used across the client
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrNoSession is returned by operations that require a logged-in user
	// when the session store is empty.
	ErrNoSession = errors.New("no active session")

	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInconsistentState marks a client-side bookkeeping error (e.g. a
	// vote removal with no recorded vote id). Actions failing with it must
	// not reach the server.
	ErrInconsistentState = errors.New("inconsistent client state")
)
