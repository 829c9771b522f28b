package day_slots

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда врача нет в ростере
	ErrDoctorNotFound = errors.New("day_slots: doctor not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("day_slots: invalid input data")
)
