package services

import (
	"context"
	"time"

	"github.com/pagebound/bookclub/internal/client/api"
	"github.com/pagebound/bookclub/internal/client/models"
)

// OptionParams describe one option when creating or editing a poll.
type OptionParams struct {
	ID             models.ID `json:"id,omitempty"`
	OptionText     string    `json:"option_text"`
	AdditionalInfo string    `json:"additional_info,omitempty"`
}

// PollParams are the poll-creation fields. Options travel under
// options_attributes on create.
type PollParams struct {
	PollQuestion   string         `json:"poll_question"`
	ExpirationDate time.Time      `json:"expiration_date"`
	MultipleVotes  bool           `json:"multiple_votes"`
	Options        []OptionParams `json:"options_attributes"`
}

// OptionChanges is the edit-time option delta: the backend applies adds,
// updates and deletes in one request.
type OptionChanges struct {
	ToAdd    []OptionParams `json:"to_add"`
	ToUpdate []OptionParams `json:"to_update"`
	ToDelete []models.ID    `json:"to_delete"`
}

// PollUpdateParams are the poll-edit fields, wrapped under "poll" on the
// wire.
type PollUpdateParams struct {
	PollQuestion   string        `json:"poll_question"`
	ExpirationDate time.Time     `json:"expiration_date"`
	MultipleVotes  bool          `json:"multiple_votes"`
	Options        OptionChanges `json:"options"`
}

// PollService reads polls and issues poll mutations, including the vote
// endpoints the ledger gates.
type PollService interface {
	List(ctx context.Context) ([]models.Poll, error)

	// Get returns the poll with the viewer's user_votes, the snapshot the
	// ledger is seeded from. It is also the authoritative-count refetch
	// performed after every confirmed vote or removal.
	Get(ctx context.Context, pollID models.ID) (models.Poll, error)

	Create(ctx context.Context, clubID models.ID, params PollParams) (models.Poll, error)

	// Update is structural like a club edit: replace the snapshot with the
	// returned poll.
	Update(ctx context.Context, clubID, pollID models.ID, params PollUpdateParams) (models.Poll, error)

	// Vote casts a vote and returns the new vote id for the ledger.
	Vote(ctx context.Context, pollID, optionID models.ID) (models.ID, error)

	// RemoveVote deletes a previously cast vote; voteID must be the id
	// recorded when it was cast.
	RemoveVote(ctx context.Context, pollID, optionID, voteID models.ID) error
}

type pollService struct {
	gw      Gateway
	session SessionReader
}

// NewPollService constructs a PollService.
func NewPollService(gw Gateway, session SessionReader) PollService {
	return &pollService{gw: gw, session: session}
}

func (s *pollService) List(ctx context.Context) ([]models.Poll, error) {
	userID, err := currentUserID(s.session)
	if err != nil {
		return nil, err
	}

	var env api.ListEnvelope
	if err := s.gw.Get(ctx, "/users/"+userID.String()+"/polls", &env); err != nil {
		return nil, err
	}

	polls := make([]models.Poll, 0, len(env.Data))
	for _, res := range env.Data {
		var p models.Poll
		if err := res.Decode(&p); err != nil {
			return nil, err
		}
		p.ID = res.ID
		polls = append(polls, p)
	}
	return polls, nil
}

func (s *pollService) Get(ctx context.Context, pollID models.ID) (models.Poll, error) {
	userID, err := currentUserID(s.session)
	if err != nil {
		return models.Poll{}, err
	}

	var env api.Envelope
	if err := s.gw.Get(ctx, "/users/"+userID.String()+"/polls/"+pollID.String(), &env); err != nil {
		return models.Poll{}, err
	}
	return decodePoll(env)
}

func (s *pollService) Create(ctx context.Context, clubID models.ID, params PollParams) (models.Poll, error) {
	var env api.Envelope
	if err := s.gw.Post(ctx, "/book_clubs/"+clubID.String()+"/polls", params, &env); err != nil {
		return models.Poll{}, err
	}
	return decodePoll(env)
}

func (s *pollService) Update(ctx context.Context, clubID, pollID models.ID, params PollUpdateParams) (models.Poll, error) {
	var env api.Envelope
	path := "/book_clubs/" + clubID.String() + "/polls/" + pollID.String()
	if err := s.gw.Patch(ctx, path, map[string]any{"poll": params}, &env); err != nil {
		return models.Poll{}, err
	}
	return decodePoll(env)
}

func (s *pollService) Vote(ctx context.Context, pollID, optionID models.ID) (models.ID, error) {
	userID, err := currentUserID(s.session)
	if err != nil {
		return 0, err
	}

	path := "/users/" + userID.String() + "/polls/" + pollID.String() +
		"/options/" + optionID.String() + "/votes"

	// The vote endpoint answers with a bare {id}, not an envelope.
	var resp struct {
		ID models.ID `json:"id"`
	}
	if err := s.gw.Post(ctx, path, map[string]any{}, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

func (s *pollService) RemoveVote(ctx context.Context, pollID, optionID, voteID models.ID) error {
	userID, err := currentUserID(s.session)
	if err != nil {
		return err
	}

	path := "/users/" + userID.String() + "/polls/" + pollID.String() +
		"/options/" + optionID.String() + "/votes/" + voteID.String()
	return s.gw.Delete(ctx, path, nil)
}

func decodePoll(env api.Envelope) (models.Poll, error) {
	var p models.Poll
	if err := env.Data.Decode(&p); err != nil {
		return models.Poll{}, err
	}
	p.ID = env.Data.ID
	return p, nil
}
