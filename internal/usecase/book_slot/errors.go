package book_slot

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда врача нет в ростере
	ErrDoctorNotFound = errors.New("book_slot: doctor not found")

	// ErrSlotAlreadyBooked возвращается, когда пара (врач, время) уже занята.
	// Штатный результат для caller, а не сбой системы.
	ErrSlotAlreadyBooked = errors.New("book_slot: slot is already booked")

	// ErrInvalidTimeSlot возвращается, когда время не лежит на 30-минутной сетке.
	// Оба пути бронирования подают нормализованное время, так что это
	// признак ошибки программирования у вызывающего.
	ErrInvalidTimeSlot = errors.New("book_slot: time is not aligned to the 30-minute grid")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_slot: invalid input data")
)
