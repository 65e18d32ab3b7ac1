package models

import "time"

// Attendee is a member's attendance record for one event.
//
// ID is the membership identifier; AttendeeID is the identifier the RSVP
// endpoint operates on. They are distinct and must never be substituted
// for one another.
type Attendee struct {
	ID         ID     `json:"id"`
	AttendeeID ID     `json:"attendee_id"`
	Name       string `json:"name"`

	// Attending is tri-state: true, false, or nil for "no RSVP yet".
	// nil must survive every transform; it is not false.
	Attending *bool `json:"attending"`
}

// Event is a scheduled club gathering.
type Event struct {
	ID         ID         `json:"id"`
	BookClubID ID         `json:"book_club_id,omitempty"`
	EventName  string     `json:"event_name"`
	EventDate  time.Time  `json:"event_date"`
	Location   string     `json:"location"`
	Book       string     `json:"book"`
	EventNotes string     `json:"event_notes"`
	Attendees  []Attendee `json:"attendees"`

	// UserIsAttending mirrors the viewer's own attendance; nil means
	// no RSVP yet.
	UserIsAttending *bool `json:"user_is_attending"`
}
