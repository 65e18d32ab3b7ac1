package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/pagebound/bookclub/internal/client/models"
	"github.com/pagebound/bookclub/internal/client/reconcile"
	"github.com/pagebound/bookclub/internal/client/services"
)

// Events lists the user's events across all clubs.
func (a *App) Events(ctx context.Context) error {
	events, err := a.eventService.List(ctx)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		fmt.Println("No events.")
		return nil
	}
	for _, ev := range events {
		fmt.Printf("[%s] %s on %s\n", ev.ID, ev.EventName, formatDate(ev.EventDate))
	}
	return nil
}

// OpenEvent fetches one event and makes it the current event screen.
func (a *App) OpenEvent(ctx context.Context, id string) error {
	eventID, err := parseID(id)
	if err != nil {
		return err
	}

	a.eventGuard.Invalidate()
	ticket := a.eventGuard.Acquire()

	ev, err := a.eventService.Get(ctx, eventID)
	if err != nil {
		return err
	}

	ticket.Apply(func() { a.event = &ev })
	a.printEvent(ev)
	return nil
}

func (a *App) printEvent(ev models.Event) {
	fmt.Printf("%s (event %s)\n", ev.EventName, ev.ID)
	fmt.Printf("When: %s\n", formatDate(ev.EventDate))
	if ev.Location != "" {
		fmt.Printf("Where: %s\n", ev.Location)
	}
	if ev.Book != "" {
		fmt.Printf("Book: %s\n", ev.Book)
	}
	if ev.EventNotes != "" {
		fmt.Println(ev.EventNotes)
	}
	fmt.Printf("Your RSVP: %s\n", formatAttending(ev.UserIsAttending))

	fmt.Println("Attendees (rsvp with the id in brackets):")
	for _, at := range ev.Attendees {
		fmt.Printf("  [%s] %s: %s\n", at.AttendeeID, at.Name, formatAttending(at.Attending))
	}
}

// promptEventParams collects the event fields, with date and time entered
// separately and combined into one instant.
func (a *App) promptEventParams(defaults services.EventParams) (services.EventParams, error) {
	var zero services.EventParams

	name, err := getTextDefault(a.reader, "Event name", defaults.EventName, os.Stdout)
	if err != nil {
		return zero, err
	}
	defDate, defClock := "", ""
	if !defaults.EventDate.IsZero() {
		defDate = defaults.EventDate.Format("2006-01-02")
		defClock = defaults.EventDate.Format("15:04")
	}
	date, err := getTextDefault(a.reader, "Date (YYYY-MM-DD)", defDate, os.Stdout)
	if err != nil {
		return zero, err
	}
	clock, err := getTextDefault(a.reader, "Time (HH:MM)", defClock, os.Stdout)
	if err != nil {
		return zero, err
	}
	when, err := parseEventDate(date, clock)
	if err != nil {
		return zero, err
	}
	location, err := getTextDefault(a.reader, "Location", defaults.Location, os.Stdout)
	if err != nil {
		return zero, err
	}
	book, err := getTextDefault(a.reader, "Book", defaults.Book, os.Stdout)
	if err != nil {
		return zero, err
	}
	notes, err := getTextDefault(a.reader, "Notes", defaults.EventNotes, os.Stdout)
	if err != nil {
		return zero, err
	}

	return services.EventParams{
		EventName:  name,
		EventDate:  when,
		Location:   location,
		Book:       book,
		EventNotes: notes,
	}, nil
}

// NewEvent creates an event in the currently opened club and merges it into
// the club snapshot. The new event is appended as-is; ordering is refreshed
// on the next full fetch.
func (a *App) NewEvent(ctx context.Context) error {
	if a.club == nil {
		return fmt.Errorf("open a club first ('club <id>')")
	}

	params, err := a.promptEventParams(services.EventParams{})
	if err != nil {
		return err
	}

	ticket := a.clubGuard.Acquire()
	ev, err := a.eventService.Create(ctx, a.club.ID, params)
	if err != nil {
		return err
	}

	ticket.Apply(func() {
		updated := reconcile.AppendEvent(*a.club, ev)
		a.club = &updated
	})
	fmt.Printf("Created event %s (%s)\n", ev.EventName, ev.ID)
	return nil
}

// EditEvent edits the currently opened event; the response becomes the new
// event snapshot.
func (a *App) EditEvent(ctx context.Context) error {
	if a.event == nil {
		return fmt.Errorf("open an event first ('event <id>')")
	}
	clubID := a.eventClubID()
	if clubID == 0 {
		return fmt.Errorf("open the event's club first ('club <id>')")
	}

	params, err := a.promptEventParams(services.EventParams{
		EventName:  a.event.EventName,
		EventDate:  a.event.EventDate,
		Location:   a.event.Location,
		Book:       a.event.Book,
		EventNotes: a.event.EventNotes,
	})
	if err != nil {
		return err
	}

	ticket := a.eventGuard.Acquire()
	fresh, err := a.eventService.Update(ctx, clubID, a.event.ID, params)
	if err != nil {
		return err
	}

	ticket.Apply(func() { a.event = &fresh })
	fmt.Println("Event updated.")
	return nil
}

// RSVP records an attendance answer for one attendee of the opened event.
// The attendee is addressed by the RSVP id shown in brackets, which is not
// the member's user id.
func (a *App) RSVP(ctx context.Context, attendeeID, answer string) error {
	if a.event == nil {
		return fmt.Errorf("open an event first ('event <id>')")
	}
	clubID := a.eventClubID()
	if clubID == 0 {
		return fmt.Errorf("open the event's club first ('club <id>')")
	}

	id, err := parseID(attendeeID)
	if err != nil {
		return err
	}
	attending, err := parseAnswer(answer)
	if err != nil {
		return err
	}

	ticket := a.eventGuard.Acquire()
	record, err := a.eventService.RSVP(ctx, clubID, a.event.ID, id, attending)
	if err != nil {
		return err
	}

	var applyErr error
	ticket.Apply(func() {
		updated, err := reconcile.ApplyAttendance(*a.event, id, record.Attending)
		if err != nil {
			applyErr = err
			return
		}
		a.event = &updated
	})
	if applyErr != nil {
		return applyErr
	}

	fmt.Printf("RSVP saved: %s\n", formatAttending(record.Attending))
	return nil
}

// eventClubID resolves the club owning the opened event, falling back to the
// opened club when the event payload did not carry it.
func (a *App) eventClubID() models.ID {
	if a.event != nil && a.event.BookClubID != 0 {
		return a.event.BookClubID
	}
	if a.club != nil {
		return a.club.ID
	}
	return 0
}
