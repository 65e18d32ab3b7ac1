// Package services contains the application services the CLI screens call.
// Each service talks to the backend through the API gateway, resolves the
// current user from the session store, and returns decoded models; merge
// rules for already-rendered snapshots live in the reconcile and ledger
// packages, not here.
package services
