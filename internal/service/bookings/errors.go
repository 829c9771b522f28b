package bookings

import "errors"

var (
	// ErrSlotAlreadyBooked возвращается, когда пара (врач, время) уже занята.
	// Это штатный результат, а не сбой системы — caller решает, как показать
	// его пользователю.
	ErrSlotAlreadyBooked = errors.New("bookings: slot is already booked")
)
