package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/pagebound/bookclub/internal/client/models"
	"github.com/pagebound/bookclub/internal/common"
)

var (
	// ErrPollExpired rejects votes and removals on a closed poll.
	ErrPollExpired = errors.New("poll has expired")

	// ErrVoteHeld rejects a second vote on a single-vote poll while a
	// different option is held.
	ErrVoteHeld = errors.New("already voted in this poll")

	// ErrAlreadyVoted rejects a repeat vote for an option already held.
	ErrAlreadyVoted = errors.New("already voted for this option")
)

// State is the viewer's position in one poll.
type State int

const (
	NoVote State = iota
	VotedSingle
	VotedMultiple
)

func (s State) String() string {
	switch s {
	case NoVote:
		return "no vote"
	case VotedSingle:
		return "voted (single)"
	case VotedMultiple:
		return "voted (multiple)"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Ledger is the per-poll, per-viewer vote record. It is rebuilt from the
// poll's user_votes on every fetch; see Reseed.
type Ledger struct {
	multipleVotes bool
	expired       bool
	expiresAt     time.Time
	votes         map[models.ID]models.ID // option id -> vote id
}

// New seeds a ledger from a freshly fetched poll snapshot.
func New(p models.Poll) *Ledger {
	l := &Ledger{
		multipleVotes: p.MultipleVotes,
		expired:       p.Expired,
		expiresAt:     p.ExpirationDate,
		votes:         make(map[models.ID]models.ID, len(p.UserVotes)),
	}
	for _, v := range p.UserVotes {
		l.votes[v.OptionID] = v.VoteID
	}
	return l
}

// Reseed replaces the ledger contents from a refetched snapshot, keeping
// the ledger aligned with the authoritative poll state.
func (l *Ledger) Reseed(p models.Poll) {
	*l = *New(p)
}

// State derives the viewer's current position.
func (l *Ledger) State() State {
	switch len(l.votes) {
	case 0:
		return NoVote
	case 1:
		return VotedSingle
	default:
		return VotedMultiple
	}
}

// VoteID returns the recorded vote id for an option, if any.
func (l *Ledger) VoteID(optionID models.ID) (models.ID, bool) {
	id, ok := l.votes[optionID]
	return id, ok
}

// CheckVote reports whether a vote for the option may be issued now. A nil
// return means the request is allowed; any error means the control should
// be inert and no request sent.
func (l *Ledger) CheckVote(optionID models.ID, now time.Time) error {
	if l.expiredAt(now) {
		return ErrPollExpired
	}
	if _, ok := l.votes[optionID]; ok {
		return ErrAlreadyVoted
	}
	if !l.multipleVotes && len(l.votes) > 0 {
		return ErrVoteHeld
	}
	return nil
}

// Record adds a confirmed vote to the ledger. It re-checks the single-vote
// invariant so a racing confirmation can never corrupt local state.
func (l *Ledger) Record(optionID, voteID models.ID) error {
	if _, ok := l.votes[optionID]; ok {
		return ErrAlreadyVoted
	}
	if !l.multipleVotes && len(l.votes) > 0 {
		return ErrVoteHeld
	}
	l.votes[optionID] = voteID
	return nil
}

// CheckRemove reports whether the vote on the option may be removed now.
// A removal without a recorded vote id is a client-state inconsistency: it
// fails closed instead of guessing an id for the delete.
func (l *Ledger) CheckRemove(optionID models.ID, now time.Time) error {
	if l.expiredAt(now) {
		return ErrPollExpired
	}
	if _, ok := l.votes[optionID]; !ok {
		return fmt.Errorf("%w: no recorded vote for option %s", common.ErrInconsistentState, optionID)
	}
	return nil
}

// Forget drops the recorded vote for an option after a confirmed removal.
func (l *Ledger) Forget(optionID models.ID) {
	delete(l.votes, optionID)
}

func (l *Ledger) expiredAt(now time.Time) bool {
	if l.expired {
		return true
	}
	return !l.expiresAt.IsZero() && now.After(l.expiresAt)
}
