package cli

import (
	"context"
	"fmt"
)

// Dashboard prints the aggregate view: every club with its upcoming events
// and active polls, fetched in one request.
func (a *App) Dashboard(ctx context.Context) error {
	dash, err := a.clubService.Dashboard(ctx)
	if err != nil {
		return err
	}

	if dash.DisplayName != "" {
		fmt.Printf("Hello, %s!\n", dash.DisplayName)
	}

	fmt.Println("Your clubs:")
	if len(dash.BookClubs) == 0 {
		fmt.Println("  (none yet, try 'newclub')")
	}
	for _, c := range dash.BookClubs {
		fmt.Printf("  [%s] %s\n", c.ID, c.Name)
	}

	fmt.Println("Upcoming events:")
	for _, ev := range dash.UpcomingEvents {
		fmt.Printf("  [%s] %s on %s at %s\n", ev.ID, ev.EventName, formatDate(ev.EventDate), ev.Location)
	}

	fmt.Println("Active polls:")
	for _, p := range dash.ActivePolls {
		fmt.Printf("  [%s] %s (%s, until %s)\n", p.ID, p.Question, p.BookClub.Name, formatDate(p.ExpirationDate))
	}

	return nil
}
