package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(t *testing.T, year int, month time.Month, day, hour, min int) time.Time {
	t.Helper()
	return time.Date(year, month, day, hour, min, 0, 0, time.Local)
}

func TestDoctorIsWorkingAt_WeekdayDay(t *testing.T) {
	doc := Doctor{ID: 1, Name: "Dr. Alice (Day Shift)", Shift: ShiftWeekdayDay}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		// 2025-03-10 is a Monday, 2025-03-15/16 a weekend
		{"monday 09:00 start of shift", at(t, 2025, 3, 10, 9, 0), true},
		{"monday 10:30 mid shift", at(t, 2025, 3, 10, 10, 30), true},
		{"monday 16:30 last slot hour", at(t, 2025, 3, 10, 16, 30), true},
		{"monday 17:00 shift over", at(t, 2025, 3, 10, 17, 0), false},
		{"monday 08:30 before shift", at(t, 2025, 3, 10, 8, 30), false},
		{"friday 12:00 working", at(t, 2025, 3, 14, 12, 0), true},
		{"saturday 10:00 never on weekend", at(t, 2025, 3, 15, 10, 0), false},
		{"sunday 12:00 never on weekend", at(t, 2025, 3, 16, 12, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, doc.IsWorkingAt(tt.at))
		})
	}
}

func TestDoctorIsWorkingAt_EveningWeekend(t *testing.T) {
	doc := Doctor{ID: 4, Name: "Dr. Diana (Evening/Weekend)", Shift: ShiftEveningWeekend}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"monday 17:00 evening start", at(t, 2025, 3, 10, 17, 0), true},
		{"monday 19:30 late evening", at(t, 2025, 3, 10, 19, 30), true},
		{"monday 20:00 evening over", at(t, 2025, 3, 10, 20, 0), false},
		{"monday 10:00 daytime off", at(t, 2025, 3, 10, 10, 0), false},
		{"saturday 09:00 weekend start", at(t, 2025, 3, 15, 9, 0), true},
		{"saturday 10:00 weekend day", at(t, 2025, 3, 15, 10, 0), true},
		{"saturday 17:00 weekend over", at(t, 2025, 3, 15, 17, 0), false},
		{"sunday 16:30 weekend day", at(t, 2025, 3, 16, 16, 30), true},
		{"sunday 18:00 no weekend evening", at(t, 2025, 3, 16, 18, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, doc.IsWorkingAt(tt.at))
		})
	}
}

func TestDoctorIsWorkingAt_UnknownShift(t *testing.T) {
	// Неизвестный тип смены — ошибка данных выше по потоку,
	// календарь обязан ответить "не работает", а не упасть
	doc := Doctor{ID: 99, Name: "Dr. Broken", Shift: ShiftType("night_only")}

	assert.False(t, doc.IsWorkingAt(at(t, 2025, 3, 10, 10, 0)))
	assert.False(t, doc.IsWorkingAt(at(t, 2025, 3, 15, 10, 0)))
	assert.False(t, doc.Shift.Valid())
}

func TestRoster(t *testing.T) {
	doctors := Roster()
	require.Len(t, doctors, 5)

	var day, evening int
	for _, d := range doctors {
		require.True(t, d.Shift.Valid())
		switch d.Shift {
		case ShiftWeekdayDay:
			day++
		case ShiftEveningWeekend:
			evening++
		}
	}
	assert.Equal(t, 3, day)
	assert.Equal(t, 2, evening)

	// Изменение копии не должно влиять на исходный список
	doctors[0].Name = "mutated"
	again := Roster()
	assert.Equal(t, "Dr. Alice (Day Shift)", again[0].Name)
}

func TestDoctorByID(t *testing.T) {
	doc, ok := DoctorByID(4)
	require.True(t, ok)
	assert.Equal(t, ShiftEveningWeekend, doc.Shift)

	_, ok = DoctorByID(42)
	assert.False(t, ok)
}
