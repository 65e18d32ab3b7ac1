package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/pagebound/bookclub/internal/client/api"
	"github.com/pagebound/bookclub/internal/client/config"
	"github.com/pagebound/bookclub/internal/client/ledger"
	"github.com/pagebound/bookclub/internal/client/models"
	"github.com/pagebound/bookclub/internal/client/reconcile"
	"github.com/pagebound/bookclub/internal/client/services"
	"github.com/pagebound/bookclub/internal/client/session"
	"github.com/pagebound/bookclub/internal/logging"
)

// sessionStore is the slice of session.Store the app needs; an interface so
// command tests can substitute an in-memory fake.
type sessionStore interface {
	services.SessionStore
	IsAuthenticated() bool
	Close() error
}

type App struct {
	config *config.Config
	log    logging.Logger
	store  sessionStore

	authService  services.AuthService
	clubService  services.ClubService
	eventService services.EventService
	pollService  services.PollService

	reader *bufio.Reader

	// Snapshots owned by the currently opened screens. Each has a guard so
	// a response arriving after the screen was replaced is discarded
	// instead of resurrecting stale state.
	club  *models.Club
	event *models.Event
	poll  *models.Poll
	votes *ledger.Ledger

	clubGuard  reconcile.Guard
	eventGuard reconcile.Guard
	pollGuard  reconcile.Guard
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {

	ctx := context.Background()

	store, err := session.Open(ctx, c.StoragePath)
	if err != nil {
		log.Error(ctx, "error opening session store", "error", err)
		return nil, err
	}

	a := &App{config: c, log: log, store: store, reader: bufio.NewReader(os.Stdin)}

	gw := api.New(c.APIBaseURL, c.RequestTimeout, store, log,
		api.WithExpiryHandler(a.onSessionExpired))

	a.authService = services.NewAuthService(gw, store, log)
	a.clubService = services.NewClubService(gw, store)
	a.eventService = services.NewEventService(gw, store)
	a.pollService = services.NewPollService(gw, store)

	return a, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.store.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.store.IsAuthenticated()
}

// onSessionExpired runs after the gateway has torn down a dead session.
// Screen state belonging to the authenticated user goes with it.
func (a *App) onSessionExpired() {
	a.resetScreens()
	fmt.Println("Session expired, please log in again.")
}

// resetScreens drops every open snapshot and retires outstanding tickets.
func (a *App) resetScreens() {
	a.clubGuard.Invalidate()
	a.eventGuard.Invalidate()
	a.pollGuard.Invalidate()
	a.club = nil
	a.event = nil
	a.poll = nil
	a.votes = nil
}
