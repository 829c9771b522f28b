package ledger

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStore_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgresStore(db)

	t.Run("existing key", func(t *testing.T) {
		mock.ExpectQuery("SELECT value FROM kv_store WHERE key = \\$1").
			WithArgs(StorageKey).
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`[{"doctorId":1,"dateTime":"2025-03-10T10:00"}]`))

		value, found, err := store.Get(context.Background(), StorageKey)
		require.NoError(t, err)
		assert.True(t, found)
		assert.JSONEq(t, `[{"doctorId":1,"dateTime":"2025-03-10T10:00"}]`, string(value))
	})

	t.Run("missing key", func(t *testing.T) {
		mock.ExpectQuery("SELECT value FROM kv_store WHERE key = \\$1").
			WithArgs(StorageKey).
			WillReturnRows(sqlmock.NewRows([]string{"value"}))

		_, found, err := store.Get(context.Background(), StorageKey)
		require.NoError(t, err)
		assert.False(t, found)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Set(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgresStore(db)

	mock.ExpectExec("INSERT INTO kv_store \\(key,value\\) VALUES \\(\\$1,\\$2\\) ON CONFLICT \\(key\\) DO UPDATE SET value = EXCLUDED.value").
		WithArgs(StorageKey, `[]`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = store.Set(context.Background(), StorageKey, []byte(`[]`))
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SetExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgresStore(db)

	mock.ExpectExec("INSERT INTO kv_store").
		WillReturnError(assert.AnError)

	err = store.Set(context.Background(), StorageKey, []byte(`[]`))
	assert.ErrorIs(t, err, ErrExecQuery)
}
