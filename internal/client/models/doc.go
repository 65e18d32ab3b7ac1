// Package models defines client-side data models for the book-club API.
//
// All entities are fetched fresh per screen, mutated in memory after
// confirmed writes, and discarded when the screen goes away. The backend
// wraps resources in a {data:{id,attributes}} envelope; identifiers arrive
// either as JSON numbers (embedded children) or strings (envelope ids), so
// the shared ID type accepts both.
package models
