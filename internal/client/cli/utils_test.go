package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnswer(t *testing.T) {
	yes, err := parseAnswer("yes")
	require.NoError(t, err)
	require.NotNil(t, yes)
	assert.True(t, *yes)

	no, err := parseAnswer("n")
	require.NoError(t, err)
	require.NotNil(t, no)
	assert.False(t, *no)

	undecided, err := parseAnswer("undecided")
	require.NoError(t, err)
	assert.Nil(t, undecided, "undecided maps to nil, not false")

	_, err = parseAnswer("maybe")
	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.EqualValues(t, 42, id)

	_, err = parseID("abc")
	assert.Error(t, err)
}

func TestParseEventDate(t *testing.T) {
	got, err := parseEventDate("2026-03-02", "19:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 19, 30, 0, 0, time.UTC), got)

	midnight, err := parseEventDate("2026-03-02", "")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), midnight)

	_, err = parseEventDate("03/02/2026", "19:30")
	assert.Error(t, err)
}

func TestFormatAttending(t *testing.T) {
	yes, no := true, false
	assert.Equal(t, "yes", formatAttending(&yes))
	assert.Equal(t, "no", formatAttending(&no))
	assert.Equal(t, "undecided", formatAttending(nil))
}
