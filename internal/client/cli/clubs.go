package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/pagebound/bookclub/internal/client/models"
	"github.com/pagebound/bookclub/internal/client/reconcile"
	"github.com/pagebound/bookclub/internal/client/services"
)

// Clubs lists the user's clubs.
func (a *App) Clubs(ctx context.Context) error {
	clubs, err := a.clubService.List(ctx)
	if err != nil {
		return err
	}

	if len(clubs) == 0 {
		fmt.Println("No clubs yet, try 'newclub'.")
		return nil
	}
	for _, c := range clubs {
		fmt.Printf("[%s] %s\n", c.ID, c.Name)
	}
	return nil
}

// OpenClub fetches one club and makes it the current club screen. The fetch
// runs under a fresh guard ticket so a response outliving the screen is
// dropped.
func (a *App) OpenClub(ctx context.Context, id string) error {
	clubID, err := parseID(id)
	if err != nil {
		return err
	}

	a.clubGuard.Invalidate()
	ticket := a.clubGuard.Acquire()

	club, err := a.clubService.Get(ctx, clubID)
	if err != nil {
		return err
	}

	ticket.Apply(func() { a.club = &club })
	a.printClub(club)
	return nil
}

func (a *App) printClub(club models.Club) {
	fmt.Printf("%s (club %s)\n", club.Name, club.ID)
	if club.Description != "" {
		fmt.Println(club.Description)
	}
	if club.UserIsAdmin {
		fmt.Println("You are an admin of this club.")
	}

	fmt.Println("Members:")
	for _, m := range club.Members {
		fmt.Printf("  %s\n", m.DisplayName)
	}
	fmt.Println("Events:")
	for _, ev := range club.Events {
		fmt.Printf("  [%s] %s on %s\n", ev.ID, ev.EventName, formatDate(ev.EventDate))
	}
	fmt.Println("Polls:")
	for _, p := range club.Polls {
		fmt.Printf("  [%s] %s\n", p.ID, p.PollQuestion)
	}
}

// NewClub prompts for club details and creates the club.
func (a *App) NewClub(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Club name", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}

	club, err := a.clubService.Create(ctx, services.ClubParams{Name: name, Description: description})
	if err != nil {
		return err
	}

	fmt.Printf("Created club %s (%s)\n", club.Name, club.ID)
	return nil
}

// EditClub edits the currently opened club. The response replaces the
// snapshot wholesale; the edit body does not reliably embed children, so a
// partial merge would lose them anyway and the next OpenClub refetches.
func (a *App) EditClub(ctx context.Context) error {
	if a.club == nil {
		return fmt.Errorf("open a club first ('club <id>')")
	}

	name, err := getTextDefault(a.reader, "Club name", a.club.Name, os.Stdout)
	if err != nil {
		return err
	}
	description, err := getTextDefault(a.reader, "Description", a.club.Description, os.Stdout)
	if err != nil {
		return err
	}

	ticket := a.clubGuard.Acquire()
	fresh, err := a.clubService.Update(ctx, a.club.ID, services.ClubParams{Name: name, Description: description})
	if err != nil {
		return err
	}

	ticket.Apply(func() {
		updated := reconcile.ReplaceClub(*a.club, fresh)
		a.club = &updated
	})
	fmt.Println("Club updated.")
	return nil
}

// Invite sends a club invitation to an email address.
func (a *App) Invite(ctx context.Context) error {
	if a.club == nil {
		return fmt.Errorf("open a club first ('club <id>')")
	}

	email, err := getSimpleText(a.reader, "Invitee email", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.clubService.Invite(ctx, a.club.ID, email); err != nil {
		return err
	}
	fmt.Printf("Invitation sent to %s\n", email)
	return nil
}

// Invitations lists the opened club's invitations and their status.
func (a *App) Invitations(ctx context.Context) error {
	if a.club == nil {
		return fmt.Errorf("open a club first ('club <id>')")
	}

	invitations, err := a.clubService.Invitations(ctx, a.club.ID)
	if err != nil {
		return err
	}

	if len(invitations) == 0 {
		fmt.Println("No invitations.")
		return nil
	}
	for _, inv := range invitations {
		status := "pending"
		if inv.Accepted {
			status = "accepted"
		}
		fmt.Printf("[%s] %s (%s)\n", inv.ID, inv.Email, status)
	}
	return nil
}
