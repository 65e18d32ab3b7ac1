package services

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pagebound/bookclub/internal/client/models"
	"github.com/pagebound/bookclub/internal/logging"
)

// call records one request the fake gateway saw. Body is the marshalled
// JSON so tests can assert on exact wire shapes (including nulls).
type call struct {
	Method string
	Path   string
	Body   string
}

// fakeGateway implements Gateway for service tests. Responses and errors
// are keyed by "METHOD path".
type fakeGateway struct {
	calls     []call
	responses map[string]string
	errs      map[string]error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{responses: map[string]string{}, errs: map[string]error{}}
}

func (f *fakeGateway) record(method, path string, body, out any) error {
	c := call{Method: method, Path: path}
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		c.Body = string(raw)
	}
	f.calls = append(f.calls, c)

	key := method + " " + path
	if err := f.errs[key]; err != nil {
		return err
	}
	if raw, ok := f.responses[key]; ok && out != nil {
		return json.Unmarshal([]byte(raw), out)
	}
	return nil
}

func (f *fakeGateway) Get(ctx context.Context, path string, out any) error {
	return f.record("GET", path, nil, out)
}

func (f *fakeGateway) Post(ctx context.Context, path string, body, out any) error {
	return f.record("POST", path, body, out)
}

func (f *fakeGateway) Patch(ctx context.Context, path string, body, out any) error {
	return f.record("PATCH", path, body, out)
}

func (f *fakeGateway) Put(ctx context.Context, path string, body, out any) error {
	return f.record("PUT", path, body, out)
}

func (f *fakeGateway) Delete(ctx context.Context, path string, out any) error {
	return f.record("DELETE", path, nil, out)
}

func (f *fakeGateway) lastCall(t *testing.T) call {
	t.Helper()
	require.NotEmpty(t, f.calls, "expected at least one request")
	return f.calls[len(f.calls)-1]
}

// fakeStore implements SessionStore in memory.
type fakeStore struct {
	sess       *models.Session
	establishN int
	clearN     int
}

func (f *fakeStore) Current() (models.Session, bool) {
	if f.sess == nil {
		return models.Session{}, false
	}
	return *f.sess, true
}

func (f *fakeStore) Establish(ctx context.Context, token string, user models.User) error {
	f.establishN++
	f.sess = &models.Session{Token: token, User: user}
	return nil
}

func (f *fakeStore) UpdateUser(ctx context.Context, user models.User) error {
	if f.sess != nil {
		f.sess.User = user
	}
	return nil
}

func (f *fakeStore) Clear(ctx context.Context) error {
	f.clearN++
	f.sess = nil
	return nil
}

func loggedInStore() *fakeStore {
	return &fakeStore{sess: &models.Session{
		Token: "tok",
		User:  models.User{ID: 2, Email: "reader@example.com", DisplayName: "Reader"},
	}}
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
