package services

import (
	"context"

	"github.com/pagebound/bookclub/internal/client/models"
	"github.com/pagebound/bookclub/internal/common"
)

// Gateway is the outbound-channel surface the services need. Satisfied by
// *api.Gateway; tests provide fakes.
type Gateway interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// SessionReader is the read side of the session store.
type SessionReader interface {
	Current() (models.Session, bool)
}

// currentUserID gates protected operations on a live session: with no
// session there is no user id to build the request path from, so the
// operation fails closed before any request is issued.
func currentUserID(session SessionReader) (models.ID, error) {
	sess, ok := session.Current()
	if !ok {
		return 0, common.ErrNoSession
	}
	return sess.User.ID, nil
}
