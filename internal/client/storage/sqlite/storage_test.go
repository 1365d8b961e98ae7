package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibogaston/frontendchat/internal/client/storage"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func TestNew_RunsMigrations(t *testing.T) {
	s := setupTestStorage(t)

	var name string
	err := s.db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'session'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "session", name)
}

func TestStorage_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	_, err := s.Get(ctx, storage.KeyUser)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, storage.KeyUser, `{"id":"1"}`))
	got, err := s.Get(ctx, storage.KeyUser)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"1"}`, got)

	// upsert
	require.NoError(t, s.Set(ctx, storage.KeyUser, `{"id":"2"}`))
	got, err = s.Get(ctx, storage.KeyUser)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"2"}`, got)

	require.NoError(t, s.Remove(ctx, storage.KeyUser))
	_, err = s.Get(ctx, storage.KeyUser)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	assert.NoError(t, s.Remove(ctx, storage.KeyUser))
}

func TestStorage_SetManyRemoveMany(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	require.NoError(t, s.SetMany(ctx, map[string]string{
		storage.KeyToken: "abc123",
		storage.KeyUser:  `{"id":"1"}`,
	}))

	token, err := s.Get(ctx, storage.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	require.NoError(t, s.RemoveMany(ctx, storage.KeyToken, storage.KeyUser))

	var count int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM session`).Scan(&count))
	assert.Zero(t, count)
}

func TestStorage_UnknownKey(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	assert.ErrorIs(t, s.Set(ctx, "refresh", "x"), storage.ErrUnknownKey)
	_, err := s.Get(ctx, "refresh")
	assert.ErrorIs(t, err, storage.ErrUnknownKey)
}

func TestStorage_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "session.sqlite")

	s, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, storage.KeyToken, "abc123"))
	require.NoError(t, s.Close())

	// повторные миграции не должны падать
	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	got, err := reopened.Get(ctx, storage.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "abc123", got)
}

func TestStorage_Closed(t *testing.T) {
	ctx := context.Background()
	s, err := New(ctx, ":memory:")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = s.Get(ctx, storage.KeyToken)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = s.Set(ctx, storage.KeyToken, "x")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
