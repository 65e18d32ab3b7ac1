package reconcile

import (
	"fmt"
	"slices"

	"github.com/pagebound/bookclub/internal/client/models"
	"github.com/pagebound/bookclub/internal/common"
)

// AppendEvent merges a newly created event into the club snapshot. The new
// element goes at the end regardless of its date; re-sorting needs a full
// refetch and is display-only staleness, not a correctness issue.
func AppendEvent(club models.Club, ev models.Event) models.Club {
	club.Events = append(slices.Clone(club.Events), ev)
	return club
}

// AppendPoll merges a newly created poll into the club snapshot, appending
// at the end like AppendEvent.
func AppendPoll(club models.Club, p models.Poll) models.Club {
	club.Polls = append(slices.Clone(club.Polls), p)
	return club
}

// ReplaceClub is the structural-edit case: the server's response body
// becomes the snapshot wholesale. No partial merge is attempted because the
// edit response does not reliably embed members, events or polls.
func ReplaceClub(_ models.Club, fresh models.Club) models.Club {
	return fresh
}

// ApplyAttendance patches the single attendee matched by its RSVP
// identifier (AttendeeID, never the membership ID) and mirrors the new
// value onto the event's own UserIsAttending flag. Every other attendee
// record is left untouched. When no attendee matches, the event comes back
// unchanged with an inconsistency error.
func ApplyAttendance(ev models.Event, attendeeID models.ID, attending *bool) (models.Event, error) {
	idx := -1
	for i, a := range ev.Attendees {
		if a.AttendeeID == attendeeID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ev, fmt.Errorf("%w: no attendee with rsvp id %s", common.ErrInconsistentState, attendeeID)
	}

	attendees := slices.Clone(ev.Attendees)
	attendees[idx].Attending = attending
	ev.Attendees = attendees
	ev.UserIsAttending = attending
	return ev, nil
}
