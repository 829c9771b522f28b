package domain

// Shift rule boundaries (local hours, end exclusive)
const (
	WeekdayDayStartHour = 9
	WeekdayDayEndHour   = 17

	EveningStartHour = 17
	EveningEndHour   = 20

	WeekendStartHour = 9
	WeekendEndHour   = 17
)

// Bookable slot grid: fixed 30-minute steps from 08:00 to 20:30 inclusive,
// 26 slots per day, identical for every doctor
const (
	SlotDurationMinutes = 30

	GridStartHour   = 8
	GridStartMinute = 0
	GridEndHour     = 20
	GridEndMinute   = 30

	SlotsPerDay = 26
)
