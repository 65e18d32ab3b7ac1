// Package api is the single outbound channel for all REST calls.
//
// The Gateway attaches the session's bearer token to every request that has
// one, resolves paths against the configured base URL, and applies the
// cross-cutting response policy so feature code never repeats it:
//
//   - 401 on any request except sign-in clears the session store and
//     surfaces ErrSessionExpired; the sign-in request itself maps to
//     ErrInvalidCredentials and leaves the store untouched. The branch is
//     decided by inspecting the request target, never the response body.
//   - 422 responses pass the backend's structured validation errors through
//     unmodified as *ValidationError.
//   - Transport failures and 5xx responses surface as ErrUnavailable-wrapped
//     errors; the Gateway never retries.
package api
