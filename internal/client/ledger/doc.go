// Package ledger tracks which poll options the current viewer has voted
// for, and enforces the voting rules client-side before any request is
// issued.
//
// A single-vote poll may hold at most one vote at a time: attempting to
// vote for a second option is short-circuited locally rather than left to
// the server to reject. Removing a vote requires the vote id recorded when
// it was cast; a missing id is a client-state inconsistency and never turns
// into a delete with a fabricated id. An expired poll accepts neither
// operation, with expiry recomputed against the clock at each decision.
//
// Vote counts are not maintained here: after a confirmed vote or removal
// the screen refetches the whole poll so counts stay authoritative under
// concurrent voters, then reseeds the ledger from the fresh snapshot.
package ledger
