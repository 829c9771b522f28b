package scheduler

import (
	"github.com/m04kA/SMC-AppointmentCore/internal/domain"
	"github.com/m04kA/SMC-AppointmentCore/internal/usecase/day_slots"
)

// Doctor врач из ростера
type Doctor struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Shift string `json:"shiftType"` // "weekday_day" или "evening_weekend"
}

// Slot слот 30-минутной сетки дня со статусом конкретного врача
type Slot struct {
	Time     string `json:"time"` // "2006-01-02T15:04"
	Working  bool   `json:"working"`
	Booked   bool   `json:"booked"`
	Bookable bool   `json:"bookable"`
}

// Booking подтвержденное бронирование
type Booking struct {
	DoctorID int64  `json:"doctorId"`
	Time     string `json:"dateTime"`
}

// Методы конвертации

func fromDomainDoctor(d domain.Doctor) Doctor {
	return Doctor{
		ID:    d.ID,
		Name:  d.Name,
		Shift: string(d.Shift),
	}
}

func fromDomainDoctorList(doctors []domain.Doctor) []Doctor {
	out := make([]Doctor, len(doctors))
	for i, d := range doctors {
		out[i] = fromDomainDoctor(d)
	}
	return out
}

func fromDomainBooking(b domain.Booking) Booking {
	return Booking{
		DoctorID: b.DoctorID,
		Time:     b.DateTime.String(),
	}
}

func fromDomainBookingList(bookings []domain.Booking) []Booking {
	out := make([]Booking, len(bookings))
	for i, b := range bookings {
		out[i] = fromDomainBooking(b)
	}
	return out
}

func fromUsecaseSlots(slots []day_slots.Slot) []Slot {
	out := make([]Slot, len(slots))
	for i, s := range slots {
		out[i] = Slot{
			Time:     s.StartTime.String(),
			Working:  s.Working,
			Booked:   s.Booked,
			Bookable: s.Bookable(),
		}
	}
	return out
}
