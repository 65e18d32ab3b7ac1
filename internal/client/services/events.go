package services

import (
	"context"
	"time"

	"github.com/pagebound/bookclub/internal/client/api"
	"github.com/pagebound/bookclub/internal/client/models"
)

// EventParams are the editable event fields. EventDate carries the full
// ISO 8601 datetime (the CLI combines separate date and time inputs before
// it gets here).
type EventParams struct {
	EventName  string    `json:"event_name"`
	EventDate  time.Time `json:"event_date"`
	Location   string    `json:"location"`
	Book       string    `json:"book"`
	EventNotes string    `json:"event_notes"`
}

// rsvpBody wraps the tri-state attending value. A nil pointer serializes as
// JSON null, which the endpoint accepts as "back to undecided".
type rsvpBody struct {
	Attending *bool `json:"attending"`
}

// EventService reads events and issues event mutations, including RSVPs.
type EventService interface {
	List(ctx context.Context) ([]models.Event, error)
	Get(ctx context.Context, eventID models.ID) (models.Event, error)
	Create(ctx context.Context, clubID models.ID, params EventParams) (models.Event, error)
	Update(ctx context.Context, clubID, eventID models.ID, params EventParams) (models.Event, error)

	// RSVP mutates one attendance record, addressed by its RSVP identifier
	// (Attendee.AttendeeID). The returned record is what reconcile applies
	// to the rendered event.
	RSVP(ctx context.Context, clubID, eventID, attendeeID models.ID, attending *bool) (models.Attendee, error)
}

type eventService struct {
	gw      Gateway
	session SessionReader
}

// NewEventService constructs an EventService.
func NewEventService(gw Gateway, session SessionReader) EventService {
	return &eventService{gw: gw, session: session}
}

func (s *eventService) List(ctx context.Context) ([]models.Event, error) {
	userID, err := currentUserID(s.session)
	if err != nil {
		return nil, err
	}

	var env api.ListEnvelope
	if err := s.gw.Get(ctx, "/users/"+userID.String()+"/events", &env); err != nil {
		return nil, err
	}

	events := make([]models.Event, 0, len(env.Data))
	for _, res := range env.Data {
		var ev models.Event
		if err := res.Decode(&ev); err != nil {
			return nil, err
		}
		ev.ID = res.ID
		events = append(events, ev)
	}
	return events, nil
}

func (s *eventService) Get(ctx context.Context, eventID models.ID) (models.Event, error) {
	userID, err := currentUserID(s.session)
	if err != nil {
		return models.Event{}, err
	}

	var env api.Envelope
	if err := s.gw.Get(ctx, "/users/"+userID.String()+"/events/"+eventID.String(), &env); err != nil {
		return models.Event{}, err
	}
	return decodeEvent(env)
}

func (s *eventService) Create(ctx context.Context, clubID models.ID, params EventParams) (models.Event, error) {
	var env api.Envelope
	if err := s.gw.Post(ctx, "/book_clubs/"+clubID.String()+"/events", params, &env); err != nil {
		return models.Event{}, err
	}
	return decodeEvent(env)
}

func (s *eventService) Update(ctx context.Context, clubID, eventID models.ID, params EventParams) (models.Event, error) {
	var env api.Envelope
	path := "/book_clubs/" + clubID.String() + "/events/" + eventID.String()
	if err := s.gw.Patch(ctx, path, params, &env); err != nil {
		return models.Event{}, err
	}
	return decodeEvent(env)
}

func (s *eventService) RSVP(ctx context.Context, clubID, eventID, attendeeID models.ID, attending *bool) (models.Attendee, error) {
	path := "/book_clubs/" + clubID.String() + "/events/" + eventID.String() + "/attendees/" + attendeeID.String()
	body := map[string]any{"attendee": rsvpBody{Attending: attending}}

	var env api.Envelope
	if err := s.gw.Patch(ctx, path, body, &env); err != nil {
		return models.Attendee{}, err
	}

	var attendee models.Attendee
	if err := env.Data.Decode(&attendee); err != nil {
		return models.Attendee{}, err
	}
	if attendee.ID == 0 {
		attendee.ID = env.Data.ID
	}
	return attendee, nil
}

func decodeEvent(env api.Envelope) (models.Event, error) {
	var ev models.Event
	if err := env.Data.Decode(&ev); err != nil {
		return models.Event{}, err
	}
	ev.ID = env.Data.ID
	return ev, nil
}
