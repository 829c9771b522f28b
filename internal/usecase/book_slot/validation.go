package book_slot

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DoctorID <= 0 {
		return fmt.Errorf("%w: doctorID must be positive", ErrInvalidInput)
	}

	if req.DateTime.IsZero() {
		return fmt.Errorf("%w: dateTime is required", ErrInvalidInput)
	}

	// Границы сетки (08:00-20:30) здесь сознательно не проверяются:
	// быстрый путь бронирования работает с любым выровненным временем
	if !req.DateTime.IsHalfHourAligned() {
		return fmt.Errorf("%w: got %s", ErrInvalidTimeSlot, req.DateTime)
	}

	return nil
}
