package domain

import "github.com/m04kA/SMC-AppointmentCore/pkg/types"

// Booking is a confirmed reservation of one slot by one doctor.
// Its identity is the (DoctorID, DateTime) pair; no two bookings may
// share both fields. Records are never mutated, only created and removed.
// JSON field names are part of the persisted encoding.
type Booking struct {
	DoctorID int64          `json:"doctorId"`
	DateTime types.DateTime `json:"dateTime"`
}

// Matches reports whether the booking occupies the given doctor/slot pair
func (b Booking) Matches(doctorID int64, dt types.DateTime) bool {
	return b.DoctorID == doctorID && b.DateTime.Equal(dt)
}
