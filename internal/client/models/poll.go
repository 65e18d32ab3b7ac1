package models

import "time"

// Option is one choice within a poll.
type Option struct {
	ID             ID     `json:"id"`
	OptionText     string `json:"option_text"`
	AdditionalInfo string `json:"additional_info"`
	VotesCount     int    `json:"votes_count"`
}

// Vote is the client-held record "the viewer voted for this option via this
// vote record". The vote id is required for removal.
type Vote struct {
	OptionID ID `json:"option_id"`
	VoteID   ID `json:"vote_id"`
}

// Poll is a club poll with its options and, on detail fetches, the viewer's
// own votes.
type Poll struct {
	ID             ID        `json:"id"`
	BookClubID     ID        `json:"book_club_id,omitempty"`
	BookClubName   string    `json:"book_club_name,omitempty"`
	PollQuestion   string    `json:"poll_question"`
	ExpirationDate time.Time `json:"expiration_date"`
	MultipleVotes  bool      `json:"multiple_votes"`
	Expired        bool      `json:"expired"`
	Options        []Option  `json:"options"`
	UserVotes      []Vote    `json:"user_votes,omitempty"`
}

// ExpiredAt reports whether the poll is closed at the given instant.
// The server's Expired flag is honored when set, but expiry is otherwise
// recomputed from ExpirationDate so a poll crossing its deadline between
// fetches still reads as closed.
func (p Poll) ExpiredAt(now time.Time) bool {
	if p.Expired {
		return true
	}
	return !p.ExpirationDate.IsZero() && now.After(p.ExpirationDate)
}
