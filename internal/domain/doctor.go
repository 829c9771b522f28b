package domain

import "time"

// ShiftType categorizes a doctor's on-duty hours
type ShiftType string

const (
	// ShiftWeekdayDay Mon-Fri 09:00-17:00
	ShiftWeekdayDay ShiftType = "weekday_day"
	// ShiftEveningWeekend Mon-Fri 17:00-20:00, Sat-Sun 09:00-17:00
	ShiftEveningWeekend ShiftType = "evening_weekend"
)

// Valid returns true if s is one of the defined shift types
func (s ShiftType) Valid() bool {
	return s == ShiftWeekdayDay || s == ShiftEveningWeekend
}

// Doctor represents a member of the static roster
type Doctor struct {
	ID    int64
	Name  string
	Shift ShiftType
}

// IsWorkingAt reports whether the doctor is on duty at t according to
// their shift rule. Only the local weekday and hour matter; minutes are
// ignored since all bookable slots start on the half-hour grid.
// An unknown shift type resolves to "not working".
func (d Doctor) IsWorkingAt(t time.Time) bool {
	weekday := t.Weekday()
	hour := t.Hour()
	isWeekend := weekday == time.Saturday || weekday == time.Sunday

	switch d.Shift {
	case ShiftWeekdayDay:
		if isWeekend {
			return false
		}
		return hour >= WeekdayDayStartHour && hour < WeekdayDayEndHour

	case ShiftEveningWeekend:
		if isWeekend {
			return hour >= WeekendStartHour && hour < WeekendEndHour
		}
		return hour >= EveningStartHour && hour < EveningEndHour

	default:
		return false
	}
}
