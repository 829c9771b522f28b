package day_slots

import "github.com/m04kA/SMC-AppointmentCore/pkg/types"

// Request модель запроса сетки слотов дня для врача
type Request struct {
	DoctorID int64
	Day      types.DateTime // Любой момент нужного дня; время внутри дня игнорируется
}

// Slot один слот сетки с наложенным статусом врача
type Slot struct {
	StartTime types.DateTime
	Working   bool // Врач на смене в это время
	Booked    bool // Слот уже занят у этого врача
}

// Bookable возвращает true, если слот можно забронировать
func (s Slot) Bookable() bool {
	return s.Working && !s.Booked
}

// Response модель ответа с полной сеткой дня
type Response struct {
	DoctorID int64
	Slots    []Slot
}
