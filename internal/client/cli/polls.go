package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pagebound/bookclub/internal/client/ledger"
	"github.com/pagebound/bookclub/internal/client/models"
	"github.com/pagebound/bookclub/internal/client/reconcile"
	"github.com/pagebound/bookclub/internal/client/services"
)

// Polls lists the user's polls across all clubs.
func (a *App) Polls(ctx context.Context) error {
	polls, err := a.pollService.List(ctx)
	if err != nil {
		return err
	}

	if len(polls) == 0 {
		fmt.Println("No polls.")
		return nil
	}
	for _, p := range polls {
		status := "open"
		if p.ExpiredAt(time.Now()) {
			status = "closed"
		}
		fmt.Printf("[%s] %s (%s)\n", p.ID, p.PollQuestion, status)
	}
	return nil
}

// OpenPoll fetches one poll and makes it the current poll screen. The vote
// ledger is seeded from the snapshot's user_votes; votes and removals are
// gated on it from here on.
func (a *App) OpenPoll(ctx context.Context, id string) error {
	pollID, err := parseID(id)
	if err != nil {
		return err
	}

	a.pollGuard.Invalidate()
	ticket := a.pollGuard.Acquire()

	p, err := a.pollService.Get(ctx, pollID)
	if err != nil {
		return err
	}

	ticket.Apply(func() {
		a.poll = &p
		a.votes = ledger.New(p)
	})
	a.printPoll(p)
	return nil
}

func (a *App) printPoll(p models.Poll) {
	fmt.Printf("%s (poll %s)\n", p.PollQuestion, p.ID)
	if p.ExpiredAt(time.Now()) {
		fmt.Println("This poll is closed.")
	} else {
		fmt.Printf("Open until %s\n", formatDate(p.ExpirationDate))
	}
	if p.MultipleVotes {
		fmt.Println("Multiple votes allowed.")
	}

	voted := make(map[models.ID]bool, len(p.UserVotes))
	for _, v := range p.UserVotes {
		voted[v.OptionID] = true
	}

	fmt.Println("Options (vote with the id in brackets):")
	for _, opt := range p.Options {
		marker := " "
		if voted[opt.ID] {
			marker = "*"
		}
		fmt.Printf("  [%s]%s %s: %d votes", opt.ID, marker, opt.OptionText, opt.VotesCount)
		if opt.AdditionalInfo != "" {
			fmt.Printf(" (%s)", opt.AdditionalInfo)
		}
		fmt.Println()
	}
}

// NewPoll creates a poll in the currently opened club and merges it into the
// club snapshot.
func (a *App) NewPoll(ctx context.Context) error {
	if a.club == nil {
		return fmt.Errorf("open a club first ('club <id>')")
	}

	question, err := getSimpleText(a.reader, "Poll question", os.Stdout)
	if err != nil {
		return err
	}
	date, err := getSimpleText(a.reader, "Expiration date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	expiry, err := parseEventDate(date, "")
	if err != nil {
		return err
	}
	multiple, err := getSimpleText(a.reader, "Allow multiple votes? (y/n)", os.Stdout)
	if err != nil {
		return err
	}

	var options []services.OptionParams
	for {
		text, err := getSimpleText(a.reader, "Option text (empty line to finish)", os.Stdout)
		if err != nil {
			return err
		}
		if text == "" {
			break
		}
		info, err := getSimpleText(a.reader, "Additional info (optional)", os.Stdout)
		if err != nil {
			return err
		}
		options = append(options, services.OptionParams{OptionText: text, AdditionalInfo: info})
	}
	if len(options) < 2 {
		return fmt.Errorf("a poll needs at least two options")
	}

	ticket := a.clubGuard.Acquire()
	p, err := a.pollService.Create(ctx, a.club.ID, services.PollParams{
		PollQuestion:   question,
		ExpirationDate: expiry,
		MultipleVotes:  multiple == "y" || multiple == "yes",
		Options:        options,
	})
	if err != nil {
		return err
	}

	ticket.Apply(func() {
		updated := reconcile.AppendPoll(*a.club, p)
		a.club = &updated
	})
	fmt.Printf("Created poll %s (%s)\n", p.PollQuestion, p.ID)
	return nil
}

// EditPoll edits the currently opened poll. Existing options stay; new ones
// can be added. The response replaces the poll snapshot and reseeds the
// ledger.
func (a *App) EditPoll(ctx context.Context) error {
	if a.poll == nil {
		return fmt.Errorf("open a poll first ('poll <id>')")
	}
	clubID := a.pollClubID()
	if clubID == 0 {
		return fmt.Errorf("open the poll's club first ('club <id>')")
	}

	question, err := getTextDefault(a.reader, "Poll question", a.poll.PollQuestion, os.Stdout)
	if err != nil {
		return err
	}
	defDate := ""
	if !a.poll.ExpirationDate.IsZero() {
		defDate = a.poll.ExpirationDate.Format("2006-01-02")
	}
	date, err := getTextDefault(a.reader, "Expiration date (YYYY-MM-DD)", defDate, os.Stdout)
	if err != nil {
		return err
	}
	expiry, err := parseEventDate(date, "")
	if err != nil {
		return err
	}

	var toAdd []services.OptionParams
	for {
		text, err := getSimpleText(a.reader, "New option text (empty line to finish)", os.Stdout)
		if err != nil {
			return err
		}
		if text == "" {
			break
		}
		toAdd = append(toAdd, services.OptionParams{OptionText: text})
	}

	ticket := a.pollGuard.Acquire()
	fresh, err := a.pollService.Update(ctx, clubID, a.poll.ID, services.PollUpdateParams{
		PollQuestion:   question,
		ExpirationDate: expiry,
		MultipleVotes:  a.poll.MultipleVotes,
		Options:        services.OptionChanges{ToAdd: toAdd},
	})
	if err != nil {
		return err
	}

	ticket.Apply(func() {
		a.poll = &fresh
		if a.votes != nil {
			a.votes.Reseed(fresh)
		}
	})
	fmt.Println("Poll updated.")
	return nil
}

// Vote casts a vote on the opened poll. The ledger decides up front whether
// the vote is allowed; after the server confirms, the vote id is recorded
// and the poll is refetched for authoritative counts.
func (a *App) Vote(ctx context.Context, optionID string) error {
	if a.poll == nil || a.votes == nil {
		return fmt.Errorf("open a poll first ('poll <id>')")
	}

	id, err := parseID(optionID)
	if err != nil {
		return err
	}
	if err := a.votes.CheckVote(id, time.Now()); err != nil {
		return err
	}

	voteID, err := a.pollService.Vote(ctx, a.poll.ID, id)
	if err != nil {
		return err
	}
	if err := a.votes.Record(id, voteID); err != nil {
		return err
	}

	fmt.Println("Vote recorded.")
	a.refreshPoll(ctx)
	return nil
}

// Unvote removes the viewer's vote from an option. Without a recorded vote
// id the removal fails closed; guessing an id for the delete would be worse
// than surfacing the inconsistency.
func (a *App) Unvote(ctx context.Context, optionID string) error {
	if a.poll == nil || a.votes == nil {
		return fmt.Errorf("open a poll first ('poll <id>')")
	}

	id, err := parseID(optionID)
	if err != nil {
		return err
	}
	if err := a.votes.CheckRemove(id, time.Now()); err != nil {
		return err
	}
	voteID, _ := a.votes.VoteID(id)

	if err := a.pollService.RemoveVote(ctx, a.poll.ID, id, voteID); err != nil {
		return err
	}
	a.votes.Forget(id)

	fmt.Println("Vote removed.")
	a.refreshPoll(ctx)
	return nil
}

// refreshPoll refetches the opened poll for authoritative counts. Local
// state is already correct, so a failed refresh only costs freshness; it is
// reported but not treated as a command failure.
func (a *App) refreshPoll(ctx context.Context) {
	ticket := a.pollGuard.Acquire()

	fresh, err := a.pollService.Get(ctx, a.poll.ID)
	if err != nil {
		a.log.Warn(ctx, "refreshing poll after vote change", "error", err)
		return
	}

	if ticket.Apply(func() {
		a.poll = &fresh
		a.votes.Reseed(fresh)
	}) {
		a.printPoll(fresh)
	}
}

// pollClubID resolves the club owning the opened poll.
func (a *App) pollClubID() models.ID {
	if a.poll != nil && a.poll.BookClubID != 0 {
		return a.poll.BookClubID
	}
	if a.club != nil {
		return a.club.ID
	}
	return 0
}
