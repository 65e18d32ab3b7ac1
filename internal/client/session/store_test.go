package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/pagebound/bookclub/internal/client/models"
	"github.com/pagebound/bookclub/internal/common"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func countKeys(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM metadata`).Scan(&n))
	return n
}

func testUser() models.User {
	return models.User{ID: 2, Email: "reader@example.com", DisplayName: "Reader"}
}

func TestStore_EstablishThenCurrent(t *testing.T) {
	db := setupDB(t)
	s := NewWithDB(db)
	ctx := context.Background()

	require.NoError(t, s.Establish(ctx, "tok-abc", testUser()))

	sess, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "tok-abc", sess.Token)
	assert.Equal(t, "reader@example.com", sess.User.Email)
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "tok-abc", s.Token())
	assert.Equal(t, 2, countKeys(t, db), "both entries must be written")
}

func TestStore_ClearRemovesBothKeys(t *testing.T) {
	db := setupDB(t)
	s := NewWithDB(db)
	ctx := context.Background()

	// Several establish/clear rounds must never leave a stray half-pair.
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Establish(ctx, "tok", testUser()))
		require.NoError(t, s.Clear(ctx))

		_, ok := s.Current()
		assert.False(t, ok)
		assert.False(t, s.IsAuthenticated())
		assert.Empty(t, s.Token())
		assert.Equal(t, 0, countKeys(t, db))
	}
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	db := setupDB(t)
	s := NewWithDB(db)
	ctx := context.Background()

	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))
	assert.False(t, s.IsAuthenticated())
}

func TestStore_RestoreLoadsPersistedPair(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	first := NewWithDB(db)
	require.NoError(t, first.Establish(ctx, "tok-persisted", testUser()))

	second := NewWithDB(db)
	require.NoError(t, second.Restore(ctx))

	sess, ok := second.Current()
	require.True(t, ok)
	assert.Equal(t, "tok-persisted", sess.Token)
	assert.Equal(t, models.ID(2), sess.User.ID)
}

func TestStore_RestoreWipesHalfPair(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	// Simulate drift: a token with no user alongside it.
	_, err := db.Exec(`INSERT INTO metadata(key,value) VALUES('token','orphan')`)
	require.NoError(t, err)

	s := NewWithDB(db)
	require.NoError(t, s.Restore(ctx))

	_, ok := s.Current()
	assert.False(t, ok)
	assert.Equal(t, 0, countKeys(t, db), "the orphan half must be wiped")
}

func TestStore_RestoreWipesCorruptUser(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO metadata(key,value) VALUES('token','tok'),('user','{not json')`)
	require.NoError(t, err)

	s := NewWithDB(db)
	require.NoError(t, s.Restore(ctx))

	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, 0, countKeys(t, db))
}

func TestStore_UpdateUserKeepsToken(t *testing.T) {
	db := setupDB(t)
	s := NewWithDB(db)
	ctx := context.Background()

	require.NoError(t, s.Establish(ctx, "tok-1", testUser()))

	renamed := testUser()
	renamed.DisplayName = "Renamed Reader"
	require.NoError(t, s.UpdateUser(ctx, renamed))

	sess, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "tok-1", sess.Token)
	assert.Equal(t, "Renamed Reader", sess.User.DisplayName)
	assert.Equal(t, 2, countKeys(t, db))
}

func TestStore_UpdateUserWithoutSession(t *testing.T) {
	db := setupDB(t)
	s := NewWithDB(db)

	err := s.UpdateUser(context.Background(), testUser())
	require.ErrorIs(t, err, common.ErrNoSession)
}
