package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentCore/internal/domain"
	"github.com/m04kA/SMC-AppointmentCore/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustDateTime(t *testing.T, s string) types.DateTime {
	t.Helper()
	dt, err := types.ParseDateTime(s)
	require.NoError(t, err)
	return dt
}

func TestRepository_RoundTrip(t *testing.T) {
	repo := NewRepository(NewFileStore(t.TempDir()), nopLogger{})
	ctx := context.Background()

	bookings := []domain.Booking{
		{DoctorID: 1, DateTime: mustDateTime(t, "2025-03-10T10:00")},
		{DoctorID: 4, DateTime: mustDateTime(t, "2025-03-15T09:30")},
		{DoctorID: 1, DateTime: mustDateTime(t, "2025-03-10T10:30")},
	}

	require.NoError(t, repo.Save(ctx, bookings))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 3)

	// Порядок вставки сохраняется при сериализации
	for i, b := range bookings {
		assert.Equal(t, b.DoctorID, loaded[i].DoctorID)
		assert.True(t, b.DateTime.Equal(loaded[i].DateTime))
	}
}

func TestRepository_LoadEmptyStore(t *testing.T) {
	repo := NewRepository(NewFileStore(t.TempDir()), nopLogger{})

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestRepository_LoadMalformedState(t *testing.T) {
	store := NewFileStore(t.TempDir())
	ctx := context.Background()

	// Битое состояние не должно ни падать, ни пробрасываться — только пустой реестр
	require.NoError(t, store.Set(ctx, StorageKey, []byte(`{not json at all`)))

	repo := NewRepository(store, nopLogger{})
	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestRepository_SaveNilAsEmptyArray(t *testing.T) {
	store := NewFileStore(t.TempDir())
	repo := NewRepository(store, nopLogger{})
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, nil))

	raw, found, err := store.Get(ctx, StorageKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `[]`, string(raw))
}
