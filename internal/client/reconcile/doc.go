// Package reconcile implements the optimistic-update contract every detail
// screen follows after a confirmed write.
//
// Two merge shapes exist. Append: a newly created child (event, poll) is
// appended to the parent's child list as-is; the list is not re-sorted, so
// ordering may be stale for display until a full refetch. Replace: a
// structural edit (club name/description, poll edit) swaps the whole parent
// snapshot for the server's authoritative response, because nested children
// are not guaranteed consistent in edit responses.
//
// The attendance case patches exactly one attendee record, matched by its
// RSVP identifier, and mirrors the change onto the parent's own flag.
//
// All merges operate on copies; a failed mutation therefore leaves the
// rendered snapshot untouched. Guard discards responses that land after the
// owning screen has been torn down.
package reconcile
