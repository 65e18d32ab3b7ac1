package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagebound/bookclub/internal/common"
)

func TestEventService_Get(t *testing.T) {
	gw := newFakeGateway()
	gw.responses["GET /users/2/events/14"] = `{"data":{"id":"14","type":"event","attributes":{
		"event_name":"March pick",
		"event_date":"2026-03-02T19:00:00Z",
		"location":"Library",
		"book":"The Long Goodbye",
		"user_is_attending":null,
		"attendees":[
			{"id":2,"attendee_id":40,"name":"Reader","attending":null},
			{"id":3,"attendee_id":41,"name":"Other","attending":true}
		]
	}}}`
	svc := NewEventService(gw, loggedInStore())

	ev, err := svc.Get(context.Background(), 14)
	require.NoError(t, err)
	assert.EqualValues(t, 14, ev.ID)
	assert.Equal(t, "March pick", ev.EventName)
	assert.Nil(t, ev.UserIsAttending)
	require.Len(t, ev.Attendees, 2)
	assert.EqualValues(t, 40, ev.Attendees[0].AttendeeID)
	assert.Nil(t, ev.Attendees[0].Attending)
	require.NotNil(t, ev.Attendees[1].Attending)
	assert.True(t, *ev.Attendees[1].Attending)
}

func TestEventService_List_NoSession(t *testing.T) {
	gw := newFakeGateway()
	svc := NewEventService(gw, &fakeStore{})

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, common.ErrNoSession)
	assert.Empty(t, gw.calls)
}

func TestEventService_Create(t *testing.T) {
	gw := newFakeGateway()
	gw.responses["POST /book_clubs/5/events"] = `{"data":{"id":"15","type":"event","attributes":{"event_name":"April pick"}}}`
	svc := NewEventService(gw, loggedInStore())

	ev, err := svc.Create(context.Background(), 5, EventParams{
		EventName: "April pick",
		Location:  "Cafe",
		Book:      "Gaudy Night",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 15, ev.ID)

	c := gw.lastCall(t)
	assert.Equal(t, "POST", c.Method)
	assert.Equal(t, "/book_clubs/5/events", c.Path)
	assert.Contains(t, c.Body, `"event_name":"April pick"`)
	assert.Contains(t, c.Body, `"location":"Cafe"`)
}

func TestEventService_RSVP(t *testing.T) {
	yes := true
	no := false

	tests := []struct {
		name      string
		attending *bool
		wire      string
	}{
		{"attending", &yes, "true"},
		{"declined", &no, "false"},
		{"back to undecided", nil, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := newFakeGateway()
			gw.responses["PATCH /book_clubs/5/events/14/attendees/40"] = `{"data":{"id":"40","type":"attendee","attributes":{"id":2,"attendee_id":40,"name":"Reader","attending":` + tt.wire + `}}}`
			svc := NewEventService(gw, loggedInStore())

			attendee, err := svc.RSVP(context.Background(), 5, 14, 40, tt.attending)
			require.NoError(t, err)

			c := gw.lastCall(t)
			assert.Equal(t, "PATCH", c.Method)
			assert.Equal(t, "/book_clubs/5/events/14/attendees/40", c.Path)
			assert.JSONEq(t, `{"attendee":{"attending":`+tt.wire+`}}`, c.Body,
				"null must survive serialization, it is not the same as false")

			assert.EqualValues(t, 40, attendee.AttendeeID)
			if tt.attending == nil {
				assert.Nil(t, attendee.Attending)
			} else {
				require.NotNil(t, attendee.Attending)
				assert.Equal(t, *tt.attending, *attendee.Attending)
			}
		})
	}
}

func TestEventService_RSVP_AddressedByAttendeeID(t *testing.T) {
	gw := newFakeGateway()
	gw.responses["PATCH /book_clubs/5/events/14/attendees/40"] = `{"data":{"id":"40","type":"attendee","attributes":{"id":2,"attendee_id":40,"attending":true}}}`
	svc := NewEventService(gw, loggedInStore())

	yes := true
	// 40 is the RSVP record id, not the member's user id (2).
	_, err := svc.RSVP(context.Background(), 5, 14, 40, &yes)
	require.NoError(t, err)

	c := gw.lastCall(t)
	assert.Equal(t, "/book_clubs/5/events/14/attendees/40", c.Path)
}
