package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/pagebound/bookclub/internal/client/models"
	"github.com/pagebound/bookclub/internal/common"
	"github.com/pagebound/bookclub/internal/dbx"
)

// The two durable entries making up a session. They are always written and
// cleared together.
const (
	keyToken = "token"
	keyUser  = "user"
)

// Store holds the current session in memory and mirrors it to the local
// sqlite store so it survives restarts. All methods are safe for concurrent
// use; the token+user pair is treated as a single atomic unit throughout.
type Store struct {
	db *sql.DB

	mu  sync.RWMutex
	cur *models.Session
}

// Open opens (creating if needed) the sqlite store at dsn, applies
// migrations and restores any persisted session.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating session store: %w", err)
	}
	s := &Store{db: db}
	if err := s.Restore(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewWithDB wraps an already-open database. The caller owns db's lifecycle.
// Intended for tests and embedding.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Restore loads the persisted pair into memory. A pair with either half
// missing is corrupt; it is wiped and the store comes up absent.
func (s *Store) Restore(ctx context.Context) error {
	repo := metadataRepo{db: s.db}

	token, err := repo.get(ctx, keyToken)
	if err != nil {
		return err
	}
	rawUser, err := repo.get(ctx, keyUser)
	if err != nil {
		return err
	}

	if len(token) == 0 || len(rawUser) == 0 {
		if len(token) != 0 || len(rawUser) != 0 {
			return s.Clear(ctx)
		}
		return nil
	}

	var user models.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		return s.Clear(ctx)
	}

	s.mu.Lock()
	s.cur = &models.Session{Token: string(token), User: user}
	s.mu.Unlock()
	return nil
}

// Establish writes the token+user pair in one transaction and makes it the
// current session. No validation of the token shape is performed.
func (s *Store) Establish(ctx context.Context, token string, user models.User) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encoding user: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadataRepo{db: tx}
		if err := repo.set(ctx, keyToken, []byte(token)); err != nil {
			return err
		}
		return repo.set(ctx, keyUser, rawUser)
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cur = &models.Session{Token: token, User: user}
	s.mu.Unlock()
	return nil
}

// UpdateUser refreshes the stored profile without touching the token, e.g.
// after a settings update. Fails when no session is live.
func (s *Store) UpdateUser(ctx context.Context, user models.User) error {
	s.mu.RLock()
	cur := s.cur
	s.mu.RUnlock()
	if cur == nil {
		return common.ErrNoSession
	}

	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encoding user: %w", err)
	}
	if err := (metadataRepo{db: s.db}).set(ctx, keyUser, rawUser); err != nil {
		return err
	}

	s.mu.Lock()
	s.cur = &models.Session{Token: cur.Token, User: user}
	s.mu.Unlock()
	return nil
}

// Clear removes both entries in one transaction. Safe to call when the
// store is already empty.
func (s *Store) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadataRepo{db: tx}
		if err := repo.delete(ctx, keyToken); err != nil {
			return err
		}
		return repo.delete(ctx, keyUser)
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cur = nil
	s.mu.Unlock()
	return nil
}

// Current returns the live session, or ok=false when there is none.
func (s *Store) Current() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return models.Session{}, false
	}
	return *s.cur, true
}

// Token returns the bearer token, or "" when logged out. Used by the API
// gateway on every request.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return ""
	}
	return s.cur.Token
}

// IsAuthenticated reports whether a session is live.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur != nil
}
