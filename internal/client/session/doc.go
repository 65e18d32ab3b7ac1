// Package session is the single source of truth for "is there a logged-in
// user, and what is their bearer token".
//
// The token and the user profile are persisted under two fixed keys in a
// local sqlite store. The pair is written and cleared inside one
// transaction: the store must never hold one half without the other. A
// half-present pair found at restore time is treated as absent and wiped.
package session
