package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pagebound/bookclub/internal/client/models"
)

func parseID(s string) (models.ID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return models.ID(n), nil
}

// parseAnswer maps the rsvp argument onto the tri-state attending value.
// "undecided" resets to nil, which is distinct from "no".
func parseAnswer(s string) (*bool, error) {
	switch s {
	case "yes", "y":
		v := true
		return &v, nil
	case "no", "n":
		v := false
		return &v, nil
	case "undecided", "u":
		return nil, nil
	default:
		return nil, fmt.Errorf("invalid answer %q, expected yes, no or undecided", s)
	}
}

func formatAttending(v *bool) string {
	switch {
	case v == nil:
		return "undecided"
	case *v:
		return "yes"
	default:
		return "no"
	}
}

// parseEventDate combines the separately prompted date and time into one
// instant. An empty time means midnight.
func parseEventDate(date, clock string) (time.Time, error) {
	if clock == "" {
		clock = "00:00"
	}
	t, err := time.Parse("2006-01-02 15:04", date+" "+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time, expected YYYY-MM-DD and HH:MM: %v", err)
	}
	return t, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}
