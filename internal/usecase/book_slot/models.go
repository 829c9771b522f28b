package book_slot

import (
	"github.com/m04kA/SMC-AppointmentCore/internal/domain"
	"github.com/m04kA/SMC-AppointmentCore/pkg/types"
)

// Request модель запроса на бронирование слота
type Request struct {
	DoctorID int64
	DateTime types.DateTime // Нормализованное время слота
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking    domain.Booking
	DoctorName string
}
