// Package cli provides the interactive book club command-line client.
//
// It wires configuration, the persisted session store, the API gateway and
// an interactive REPL. Typical flow: restore or prompt for a session, then
// execute user commands against the currently opened club, event or poll.
//
// Key features:
//   - Register / Login / Logout, password reset
//   - Dashboard and club browsing, club creation and editing
//   - Member invitations
//   - Events with tri-state RSVPs (yes / no / undecided)
//   - Polls with single- and multiple-vote modes
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
