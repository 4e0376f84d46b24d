package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activity-signup-client/internal/repository"
)

type keyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

func newStores(t *testing.T) map[string]keyValueStore {
	t.Helper()

	db, err := repository.NewSQLite(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return map[string]keyValueStore{
		"sqlite": repository.NewLocalStorageRepo(db),
		"memory": repository.NewMemoryStorage(),
	}
}

func TestLocalStorage_SetGetRemove(t *testing.T) {
	ctx := context.Background()

	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(ctx, "teacherToken")
			assert.ErrorIs(t, err, repository.ErrKeyNotFound)

			require.NoError(t, store.Set(ctx, "teacherToken", "abc"))
			require.NoError(t, store.Set(ctx, "teacherToken", "def"))

			v, err := store.Get(ctx, "teacherToken")
			require.NoError(t, err)
			assert.Equal(t, "def", v)

			require.NoError(t, store.Remove(ctx, "teacherToken"))
			// повторное удаление не ошибка
			require.NoError(t, store.Remove(ctx, "teacherToken"))

			_, err = store.Get(ctx, "teacherToken")
			assert.ErrorIs(t, err, repository.ErrKeyNotFound)
		})
	}
}

func TestSQLite_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "client.db")

	db, err := repository.NewSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, repository.NewLocalStorageRepo(db).Set(ctx, "teacherUsername", "mrodriguez"))
	require.NoError(t, db.Close())

	db, err = repository.NewSQLite(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	v, err := repository.NewLocalStorageRepo(db).Get(ctx, "teacherUsername")
	require.NoError(t, err)
	assert.Equal(t, "mrodriguez", v)
}

func TestNewSQLite_EmptyPath(t *testing.T) {
	_, err := repository.NewSQLite(context.Background(), "  ")
	assert.Error(t, err)
}
