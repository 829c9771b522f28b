package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateTimeLayout is the wire format for minute-precision timestamps.
// It matches the HTML datetime-local shape the presentation layer collects.
const DateTimeLayout = "2006-01-02T15:04"

// DateTime is a timestamp truncated to the minute, in local wall-clock time.
// The zero value means "no time selected".
type DateTime struct {
	t time.Time
}

// NewDateTime creates a DateTime from t, discarding seconds and finer.
func NewDateTime(t time.Time) DateTime {
	if t.IsZero() {
		return DateTime{}
	}
	return DateTime{t: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())}
}

// ParseDateTime parses s in DateTimeLayout using the local time zone.
func ParseDateTime(s string) (DateTime, error) {
	t, err := time.ParseInLocation(DateTimeLayout, s, time.Local)
	if err != nil {
		return DateTime{}, fmt.Errorf("types: invalid datetime %q: %v", s, err)
	}
	return DateTime{t: t}, nil
}

// IsZero reports whether d is the unset value.
func (d DateTime) IsZero() bool {
	return d.t.IsZero()
}

// Time returns the underlying time.Time.
func (d DateTime) Time() time.Time {
	return d.t
}

func (d DateTime) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateTimeLayout)
}

// Weekday returns the day of week of d.
func (d DateTime) Weekday() time.Weekday {
	return d.t.Weekday()
}

// Hour returns the local hour component [0, 23].
func (d DateTime) Hour() int {
	return d.t.Hour()
}

// Minute returns the minute component [0, 59].
func (d DateTime) Minute() int {
	return d.t.Minute()
}

// Before reports whether d is strictly before other.
func (d DateTime) Before(other DateTime) bool {
	return d.t.Before(other.t)
}

// After reports whether d is strictly after other.
func (d DateTime) After(other DateTime) bool {
	return d.t.After(other.t)
}

// Equal reports whether d and other denote the same minute.
func (d DateTime) Equal(other DateTime) bool {
	return d.t.Equal(other.t)
}

// At returns a DateTime on the same calendar day with the given wall time.
func (d DateTime) At(hour, minute int) DateTime {
	return DateTime{t: time.Date(d.t.Year(), d.t.Month(), d.t.Day(), hour, minute, 0, 0, d.t.Location())}
}

// AddMinutes returns d shifted by n minutes.
func (d DateTime) AddMinutes(n int) DateTime {
	return DateTime{t: d.t.Add(time.Duration(n) * time.Minute)}
}

// AddDays returns d shifted by n calendar days, preserving the wall time.
// Month/year rollover and leap years follow time.Time.AddDate.
func (d DateTime) AddDays(n int) DateTime {
	if d.IsZero() {
		return d
	}
	return DateTime{t: d.t.AddDate(0, 0, n)}
}

// RoundToHalfHour normalizes d to the 30-minute grid:
// minute < 15 rounds down to :00, 15 <= minute < 45 rounds to :30,
// minute >= 45 rounds up to the next hour's :00 with calendar carry.
func (d DateTime) RoundToHalfHour() DateTime {
	if d.IsZero() {
		return d
	}
	m := d.t.Minute()
	base := time.Date(d.t.Year(), d.t.Month(), d.t.Day(), d.t.Hour(), 0, 0, 0, d.t.Location())
	switch {
	case m < 15:
		return DateTime{t: base}
	case m < 45:
		return DateTime{t: base.Add(30 * time.Minute)}
	default:
		return DateTime{t: base.Add(time.Hour)}
	}
}

// IsHalfHourAligned reports whether d sits on the 30-minute grid.
func (d DateTime) IsHalfHourAligned() bool {
	return d.t.Minute() == 0 || d.t.Minute() == 30
}

// MarshalJSON serializes d as a DateTimeLayout string.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON parses a DateTimeLayout string.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = DateTime{}
		return nil
	}
	parsed, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
