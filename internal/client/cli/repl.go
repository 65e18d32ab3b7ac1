package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Logout(ctx context.Context) error
	Settings(ctx context.Context) error

	Dashboard(ctx context.Context) error
	Clubs(ctx context.Context) error
	OpenClub(ctx context.Context, id string) error
	NewClub(ctx context.Context) error
	EditClub(ctx context.Context) error
	Invite(ctx context.Context) error
	Invitations(ctx context.Context) error

	Events(ctx context.Context) error
	OpenEvent(ctx context.Context, id string) error
	NewEvent(ctx context.Context) error
	EditEvent(ctx context.Context) error
	RSVP(ctx context.Context, attendeeID, answer string) error

	Polls(ctx context.Context) error
	OpenPoll(ctx context.Context, id string) error
	NewPoll(ctx context.Context) error
	EditPoll(ctx context.Context) error
	Vote(ctx context.Context, optionID string) error
	Unvote(ctx context.Context, optionID string) error
}

const helpLoggedOut = "Available commands: register, login, forgot, reset, exit"
const helpLoggedIn = "Available commands: dashboard, clubs, club <id>, newclub, editclub, " +
	"invite, invitations, events, event <id>, newevent, editevent, " +
	"rsvp <attendee_id> <yes|no|undecided>, polls, poll <id>, newpoll, editpoll, " +
	"vote <option_id>, unvote <option_id>, settings, logout, exit"

// runREPL starts a simple read-eval-print loop for the book club CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Handler errors are printed and the loop continues; a failed command must
// never take the REPL down.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("bc %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "forgot":
			err = a.ForgotPassword(ctx)
		case "reset":
			err = a.ResetPassword(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "settings":
			err = a.Settings(ctx)

		case "dashboard":
			err = a.Dashboard(ctx)
		case "clubs":
			err = a.Clubs(ctx)
		case "club":
			if len(args) == 0 {
				printlnFn("Usage: club <id>")
				continue
			}
			err = a.OpenClub(ctx, args[0])
		case "newclub":
			err = a.NewClub(ctx)
		case "editclub":
			err = a.EditClub(ctx)
		case "invite":
			err = a.Invite(ctx)
		case "invitations":
			err = a.Invitations(ctx)

		case "events":
			err = a.Events(ctx)
		case "event":
			if len(args) == 0 {
				printlnFn("Usage: event <id>")
				continue
			}
			err = a.OpenEvent(ctx, args[0])
		case "newevent":
			err = a.NewEvent(ctx)
		case "editevent":
			err = a.EditEvent(ctx)
		case "rsvp":
			if len(args) < 2 {
				printlnFn("Usage: rsvp <attendee_id> <yes|no|undecided>")
				continue
			}
			err = a.RSVP(ctx, args[0], args[1])

		case "polls":
			err = a.Polls(ctx)
		case "poll":
			if len(args) == 0 {
				printlnFn("Usage: poll <id>")
				continue
			}
			err = a.OpenPoll(ctx, args[0])
		case "newpoll":
			err = a.NewPoll(ctx)
		case "editpoll":
			err = a.EditPoll(ctx)
		case "vote":
			if len(args) == 0 {
				printlnFn("Usage: vote <option_id>")
				continue
			}
			err = a.Vote(ctx, args[0])
		case "unvote":
			if len(args) == 0 {
				printlnFn("Usage: unvote <option_id>")
				continue
			}
			err = a.Unvote(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
