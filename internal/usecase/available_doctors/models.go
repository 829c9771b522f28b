package available_doctors

import (
	"github.com/m04kA/SMC-AppointmentCore/internal/domain"
	"github.com/m04kA/SMC-AppointmentCore/pkg/types"
)

// Request модель запроса доступных врачей
type Request struct {
	At types.DateTime // Выбранный момент времени; нулевое значение = ничего не выбрано
}

// Response модель ответа со списком врачей на смене
type Response struct {
	At      types.DateTime
	Doctors []domain.Doctor // В порядке ростера
}
