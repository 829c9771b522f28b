package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp собирает приложение с файловым хранилищем в каталоге dir
func newTestApp(t *testing.T, dir string) *App {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	content := fmt.Sprintf("[storage]\ndriver = \"file\"\n\n[storage.file]\ndir = %q\n", dir)
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))

	app, err := New(cfgPath)
	require.NoError(t, err)
	return app
}

func TestApp_SelectDateTimeNormalizes(t *testing.T) {
	app := newTestApp(t, t.TempDir())
	defer app.Close()

	normalized, err := app.SelectDateTime("2025-03-10T10:10")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10T10:00", normalized)

	got, ok := app.SelectedDateTime()
	assert.True(t, ok)
	assert.Equal(t, "2025-03-10T10:00", got)

	// :50 переносит на следующий час, 23:50 - на следующий день
	normalized, err = app.SelectDateTime("2025-03-10T23:50")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-11T00:00", normalized)

	_, err = app.SelectDateTime("garbage")
	assert.ErrorIs(t, err, ErrInvalidDateTime)

	// Пустой ввод сбрасывает выбор
	_, err = app.SelectDateTime("")
	require.NoError(t, err)
	_, ok = app.SelectedDateTime()
	assert.False(t, ok)
}

func TestApp_ShiftDays(t *testing.T) {
	app := newTestApp(t, t.TempDir())
	defer app.Close()

	// Без выбора - no-op
	app.ShiftDays(1)
	_, ok := app.SelectedDateTime()
	assert.False(t, ok)

	_, err := app.SelectDateTime("2025-03-10T10:00")
	require.NoError(t, err)

	app.ShiftDays(2)
	got, _ := app.SelectedDateTime()
	assert.Equal(t, "2025-03-12T10:00", got)

	app.ShiftDays(-3)
	got, _ = app.SelectedDateTime()
	assert.Equal(t, "2025-03-09T10:00", got)
}

func TestApp_AvailableDoctors(t *testing.T) {
	app := newTestApp(t, t.TempDir())
	defer app.Close()
	ctx := context.Background()

	// Без выбранного времени список пуст
	assert.Empty(t, app.AvailableDoctors(ctx))

	// Суббота 10:00 - только двое evening_weekend
	_, err := app.SelectDateTime("2025-03-15T10:00")
	require.NoError(t, err)

	doctors := app.AvailableDoctors(ctx)
	require.Len(t, doctors, 2)
	assert.Equal(t, "Dr. Diana (Evening/Weekend)", doctors[0].Name)
	assert.Equal(t, "Dr. Evan (Evening/Weekend)", doctors[1].Name)

	// Понедельник 10:00 - трое дневных
	_, err = app.SelectDateTime("2025-03-10T10:00")
	require.NoError(t, err)
	assert.Len(t, app.AvailableDoctors(ctx), 3)
}

func TestApp_BookScenario(t *testing.T) {
	app := newTestApp(t, t.TempDir())
	defer app.Close()
	ctx := context.Background()

	// Dr. Alice, понедельник 10:00
	require.NoError(t, app.Book(ctx, 1, "2025-03-10T10:00"))

	// Повторно - занято
	assert.ErrorIs(t, app.Book(ctx, 1, "2025-03-10T10:00"), ErrSlotAlreadyBooked)
	assert.True(t, app.IsBooked(1, "2025-03-10T10:00"))

	// Отмена освобождает, повторная бронь проходит
	require.NoError(t, app.Cancel(ctx, 1, "2025-03-10T10:00"))
	assert.False(t, app.IsBooked(1, "2025-03-10T10:00"))
	require.NoError(t, app.Book(ctx, 1, "2025-03-10T10:00"))
}

func TestApp_BothBookingPathsShareInvariant(t *testing.T) {
	app := newTestApp(t, t.TempDir())
	defer app.Close()
	ctx := context.Background()

	_, err := app.SelectDateTime("2025-03-10T10:00")
	require.NoError(t, err)

	// Быстрая запись по выбранному времени
	require.NoError(t, app.BookSelected(ctx, 2))

	// Клик по сетке на то же время упирается в тот же инвариант
	assert.ErrorIs(t, app.Book(ctx, 2, "2025-03-10T10:00"), ErrSlotAlreadyBooked)

	// И наоборот: быстрая запись видит бронь из сетки
	require.NoError(t, app.Book(ctx, 3, "2025-03-10T10:00"))
	assert.ErrorIs(t, app.BookSelected(ctx, 3), ErrSlotAlreadyBooked)
}

func TestApp_BookSelectedWithoutSelection(t *testing.T) {
	app := newTestApp(t, t.TempDir())
	defer app.Close()

	assert.ErrorIs(t, app.BookSelected(context.Background(), 1), ErrNoSelection)
}

func TestApp_BookValidation(t *testing.T) {
	app := newTestApp(t, t.TempDir())
	defer app.Close()
	ctx := context.Background()

	assert.ErrorIs(t, app.Book(ctx, 1, "nonsense"), ErrInvalidDateTime)
	assert.ErrorIs(t, app.Book(ctx, 1, "2025-03-10T10:12"), ErrInvalidTimeSlot)
	assert.ErrorIs(t, app.Book(ctx, 99, "2025-03-10T10:00"), ErrDoctorNotFound)
}

func TestApp_DaySlots(t *testing.T) {
	app := newTestApp(t, t.TempDir())
	defer app.Close()
	ctx := context.Background()

	// Без выбранного дня сетка пуста
	slots, err := app.DaySlots(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, slots)

	_, err = app.SelectDateTime("2025-03-10T12:00")
	require.NoError(t, err)
	require.NoError(t, app.Book(ctx, 1, "2025-03-10T10:00"))

	slots, err = app.DaySlots(ctx, 1)
	require.NoError(t, err)
	require.Len(t, slots, 26)
	assert.Equal(t, "2025-03-10T08:00", slots[0].Time)
	assert.Equal(t, "2025-03-10T20:30", slots[25].Time)

	for _, s := range slots {
		if s.Time == "2025-03-10T10:00" {
			assert.True(t, s.Working)
			assert.True(t, s.Booked)
			assert.False(t, s.Bookable)
		}
		if s.Time == "2025-03-10T10:30" {
			assert.True(t, s.Bookable)
		}
	}

	_, err = app.DaySlots(ctx, 99)
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestApp_PersistenceAcrossRestart(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	app := newTestApp(t, dir)
	require.NoError(t, app.Book(ctx, 1, "2025-03-10T10:00"))
	require.NoError(t, app.Book(ctx, 4, "2025-03-15T09:30"))
	require.NoError(t, app.Close())

	// "Перезапуск процесса": новое приложение над тем же каталогом
	app2 := newTestApp(t, dir)
	defer app2.Close()

	assert.True(t, app2.IsBooked(1, "2025-03-10T10:00"))
	assert.True(t, app2.IsBooked(4, "2025-03-15T09:30"))
	assert.False(t, app2.IsBooked(1, "2025-03-10T10:30"))

	bookings := app2.DoctorBookings(1)
	require.Len(t, bookings, 1)
	assert.Equal(t, "2025-03-10T10:00", bookings[0].Time)
}

func TestApp_MalformedStoreStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "doctor-appointment-bookings.json"),
		[]byte("{{{ definitely not json"),
		0o644,
	))

	app := newTestApp(t, dir)
	defer app.Close()

	assert.Empty(t, app.DoctorBookings(1))
	require.NoError(t, app.Book(context.Background(), 1, "2025-03-10T10:00"))
}

func TestApp_ClearAll(t *testing.T) {
	app := newTestApp(t, t.TempDir())
	defer app.Close()
	ctx := context.Background()

	require.NoError(t, app.Book(ctx, 1, "2025-03-10T10:00"))
	require.NoError(t, app.Book(ctx, 2, "2025-03-10T11:00"))

	app.ClearAll(ctx)

	assert.Empty(t, app.DoctorBookings(1))
	assert.Empty(t, app.DoctorBookings(2))
	assert.False(t, app.IsBooked(1, "2025-03-10T10:00"))
}

func TestApp_Roster(t *testing.T) {
	app := newTestApp(t, t.TempDir())
	defer app.Close()

	roster := app.Roster()
	require.Len(t, roster, 5)
	assert.Equal(t, "weekday_day", roster[0].Shift)
	assert.Equal(t, "evening_weekend", roster[4].Shift)
}
