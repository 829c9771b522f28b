package scheduler

import "errors"

var (
	// ErrSlotAlreadyBooked возвращается из Book/BookSelected, когда пара
	// (врач, время) уже занята. Не сбой, а штатный ответ для пользователя.
	ErrSlotAlreadyBooked = errors.New("scheduler: slot is already booked")

	// ErrDoctorNotFound возвращается, когда врача нет в ростере
	ErrDoctorNotFound = errors.New("scheduler: doctor not found")

	// ErrInvalidDateTime возвращается при неразборчивой строке времени,
	// ожидается формат "2006-01-02T15:04"
	ErrInvalidDateTime = errors.New("scheduler: invalid datetime")

	// ErrInvalidTimeSlot возвращается при попытке бронирования времени
	// вне 30-минутной сетки
	ErrInvalidTimeSlot = errors.New("scheduler: time is not aligned to the 30-minute grid")

	// ErrNoSelection возвращается из BookSelected, когда время не выбрано
	ErrNoSelection = errors.New("scheduler: no date/time selected")
)
