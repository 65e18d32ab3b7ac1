package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    ID
		wantErr bool
	}{
		{name: "number", in: `7`, want: 7},
		{name: "string", in: `"42"`, want: 42},
		{name: "null", in: `null`, want: 0},
		{name: "garbage", in: `"abc"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			err := json.Unmarshal([]byte(tt.in), &id)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestAttendee_TriStateAttending(t *testing.T) {
	var undecided, yes Attendee

	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"attendee_id":7,"name":"a","attending":null}`), &undecided))
	require.NoError(t, json.Unmarshal([]byte(`{"id":2,"attendee_id":9,"name":"b","attending":true}`), &yes))

	assert.Nil(t, undecided.Attending, "null must not collapse to false")
	require.NotNil(t, yes.Attending)
	assert.True(t, *yes.Attending)

	// Round-trip: nil stays null on the wire.
	b, err := json.Marshal(undecided)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"attending":null`)
}

func TestAttendee_KeepsBothIdentifiers(t *testing.T) {
	var a Attendee
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"attendee_id":"11","name":"c","attending":false}`), &a))
	assert.Equal(t, ID(3), a.ID)
	assert.Equal(t, ID(11), a.AttendeeID)
}

func TestPoll_ExpiredAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	open := Poll{ExpirationDate: now.Add(time.Hour)}
	past := Poll{ExpirationDate: now.Add(-time.Minute)}
	flagged := Poll{Expired: true, ExpirationDate: now.Add(time.Hour)}

	assert.False(t, open.ExpiredAt(now))
	assert.True(t, past.ExpiredAt(now))
	assert.True(t, flagged.ExpiredAt(now), "server flag wins even before the deadline")
}

func TestEvent_UserIsAttendingNullRoundTrip(t *testing.T) {
	var ev Event
	require.NoError(t, json.Unmarshal([]byte(`{"id":5,"event_name":"June meetup","event_date":"2025-06-12T18:00:00Z","user_is_attending":null}`), &ev))
	assert.Nil(t, ev.UserIsAttending)

	b, err := json.Marshal(ev)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"user_is_attending":null`)
}
