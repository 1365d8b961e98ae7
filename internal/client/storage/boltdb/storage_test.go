package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/taibogaston/frontendchat/internal/client/storage"
)

// создаём тестовое BoltDB хранилище во временной директории
func createTestStorage(t *testing.T) *Storage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "session_test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestNew_Success(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() {
		require.NoError(t, store.Close())
	}()

	// Проверяем что файл БД действительно создан
	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	// Проверяем, что бакет существует
	err = store.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketSession) == nil {
			return os.ErrNotExist
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	// Директория вместо файла не может быть открыта как БД
	store, err := New(context.Background(), t.TempDir())
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestClose_Twice(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "testdb.db"))
	require.NoError(t, err)

	assert.NoError(t, store.Close())
	// Второй вызов Close не должен падать
	assert.NoError(t, store.Close())
}

func TestStorage_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// до сохранения ключа нет
	_, err := store.Get(ctx, storage.KeyToken)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, storage.KeyToken, "abc123"))

	got, err := store.Get(ctx, storage.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "abc123", got)

	// перезапись
	require.NoError(t, store.Set(ctx, storage.KeyToken, "def456"))
	got, err = store.Get(ctx, storage.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "def456", got)

	require.NoError(t, store.Remove(ctx, storage.KeyToken))
	_, err = store.Get(ctx, storage.KeyToken)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	// удаление отсутствующего ключа не ошибка
	assert.NoError(t, store.Remove(ctx, storage.KeyToken))
}

func TestStorage_SetManyRemoveMany(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.SetMany(ctx, map[string]string{
		storage.KeyToken: "abc123",
		storage.KeyUser:  `{"id":"1"}`,
	})
	require.NoError(t, err)

	token, err := store.Get(ctx, storage.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	user, err := store.Get(ctx, storage.KeyUser)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1"}`, user)

	require.NoError(t, store.RemoveMany(ctx, storage.KeyToken, storage.KeyUser))

	for _, key := range storage.SessionKeys {
		_, err := store.Get(ctx, key)
		assert.ErrorIs(t, err, storage.ErrKeyNotFound)
	}
}

func TestStorage_SetMany_UnknownKeyWritesNothing(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.SetMany(ctx, map[string]string{
		storage.KeyToken: "abc123",
		"refresh":        "nope",
	})
	assert.ErrorIs(t, err, storage.ErrUnknownKey)

	_, err = store.Get(ctx, storage.KeyToken)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestStorage_UnknownKey(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, err := store.Get(ctx, "refresh")
	assert.ErrorIs(t, err, storage.ErrUnknownKey)
	assert.ErrorIs(t, store.Remove(ctx, "refresh"), storage.ErrUnknownKey)
}

func TestStorage_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "reopen.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, storage.KeyToken, "abc123"))
	require.NoError(t, store.Close())

	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	got, err := reopened.Get(ctx, storage.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "abc123", got)
}

func TestStorage_ClosedReturnsErrStorageClosed(t *testing.T) {
	ctx := context.Background()
	store, err := New(ctx, filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = store.Get(ctx, storage.KeyToken)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = store.Set(ctx, storage.KeyToken, "x")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestStorage_MissingBucket(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Для теста удалим bucket напрямую
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketSession)
	})
	require.NoError(t, err)

	_, err = store.Get(ctx, storage.KeyToken)
	assert.ErrorContains(t, err, "session bucket not found")

	err = store.Set(ctx, storage.KeyToken, "x")
	assert.ErrorContains(t, err, "session bucket not found")

	// initBuckets восстанавливает bucket
	require.NoError(t, store.initBuckets())
	assert.NoError(t, store.Set(ctx, storage.KeyToken, "x"))
}
