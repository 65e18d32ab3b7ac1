package services

import (
	"context"

	"github.com/pagebound/bookclub/internal/client/api"
	"github.com/pagebound/bookclub/internal/client/models"
)

// ClubParams are the club's own editable fields.
type ClubParams struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ClubService reads and mutates book clubs and their invitations.
type ClubService interface {
	List(ctx context.Context) ([]models.Club, error)
	Get(ctx context.Context, clubID models.ID) (models.Club, error)
	Create(ctx context.Context, params ClubParams) (models.Club, error)

	// Update is a structural edit: callers must replace their snapshot
	// wholesale with the returned club (reconcile.ReplaceClub), since the
	// edit response does not reliably embed children.
	Update(ctx context.Context, clubID models.ID, params ClubParams) (models.Club, error)

	Invite(ctx context.Context, clubID models.ID, email string) error
	Invitations(ctx context.Context, clubID models.ID) ([]models.Invitation, error)
	Dashboard(ctx context.Context) (models.Dashboard, error)
}

type clubService struct {
	gw      Gateway
	session SessionReader
}

// NewClubService constructs a ClubService.
func NewClubService(gw Gateway, session SessionReader) ClubService {
	return &clubService{gw: gw, session: session}
}

func (s *clubService) List(ctx context.Context) ([]models.Club, error) {
	userID, err := currentUserID(s.session)
	if err != nil {
		return nil, err
	}

	var env api.ListEnvelope
	if err := s.gw.Get(ctx, "/users/"+userID.String()+"/book_clubs", &env); err != nil {
		return nil, err
	}

	clubs := make([]models.Club, 0, len(env.Data))
	for _, res := range env.Data {
		var club models.Club
		if err := res.Decode(&club); err != nil {
			return nil, err
		}
		club.ID = res.ID
		clubs = append(clubs, club)
	}
	return clubs, nil
}

func (s *clubService) Get(ctx context.Context, clubID models.ID) (models.Club, error) {
	userID, err := currentUserID(s.session)
	if err != nil {
		return models.Club{}, err
	}

	var env api.Envelope
	path := "/users/" + userID.String() + "/book_clubs/" + clubID.String()
	if err := s.gw.Get(ctx, path, &env); err != nil {
		return models.Club{}, err
	}
	return decodeClub(env)
}

func (s *clubService) Create(ctx context.Context, params ClubParams) (models.Club, error) {
	var env api.Envelope
	if err := s.gw.Post(ctx, "/book_clubs", map[string]any{"book_club": params}, &env); err != nil {
		return models.Club{}, err
	}
	return decodeClub(env)
}

func (s *clubService) Update(ctx context.Context, clubID models.ID, params ClubParams) (models.Club, error) {
	var env api.Envelope
	if err := s.gw.Patch(ctx, "/book_clubs/"+clubID.String(), map[string]any{"book_club": params}, &env); err != nil {
		return models.Club{}, err
	}
	return decodeClub(env)
}

func (s *clubService) Invite(ctx context.Context, clubID models.ID, email string) error {
	body := map[string]any{"invitation": map[string]string{"email": email}}
	return s.gw.Post(ctx, "/book_clubs/"+clubID.String()+"/invitations", body, nil)
}

func (s *clubService) Invitations(ctx context.Context, clubID models.ID) ([]models.Invitation, error) {
	var env api.ListEnvelope
	if err := s.gw.Get(ctx, "/book_clubs/"+clubID.String()+"/invitations", &env); err != nil {
		return nil, err
	}

	invitations := make([]models.Invitation, 0, len(env.Data))
	for _, res := range env.Data {
		var inv models.Invitation
		if err := res.Decode(&inv); err != nil {
			return nil, err
		}
		inv.ID = res.ID
		invitations = append(invitations, inv)
	}
	return invitations, nil
}

func (s *clubService) Dashboard(ctx context.Context) (models.Dashboard, error) {
	userID, err := currentUserID(s.session)
	if err != nil {
		return models.Dashboard{}, err
	}

	var env api.Envelope
	if err := s.gw.Get(ctx, "/users/"+userID.String()+"/all_club_data", &env); err != nil {
		return models.Dashboard{}, err
	}

	var dash models.Dashboard
	if err := env.Data.Decode(&dash); err != nil {
		return models.Dashboard{}, err
	}
	return dash, nil
}

func decodeClub(env api.Envelope) (models.Club, error) {
	var club models.Club
	if err := env.Data.Decode(&club); err != nil {
		return models.Club{}, err
	}
	club.ID = env.Data.ID
	return club, nil
}
