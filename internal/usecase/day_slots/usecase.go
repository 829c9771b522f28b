package day_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AppointmentCore/internal/domain"
)

// UseCase use case для построения сетки слотов дня с наложенным
// статусом конкретного врача (на смене / занято)
type UseCase struct {
	ledger Ledger
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(ledger Ledger, logger Logger) *UseCase {
	return &UseCase{
		ledger: ledger,
		logger: logger,
	}
}

// Execute строит сетку слотов дня для врача.
// Пустой день — не ошибка: ответ с пустой сеткой, генератор не вызывается.
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.DoctorID <= 0 {
		return nil, fmt.Errorf("%w: doctorID must be positive", ErrInvalidInput)
	}

	doctor, found := domain.DoctorByID(req.DoctorID)
	if !found {
		uc.logger.Warn("DaySlots: doctor id=%d not found in roster", req.DoctorID)
		return nil, ErrDoctorNotFound
	}

	// 2. Нет выбранного дня - нет сетки
	if req.Day.IsZero() {
		return &Response{DoctorID: req.DoctorID, Slots: []Slot{}}, nil
	}

	// 3. Генерируем сетку и накладываем статусы врача
	grid := generateDaySlots(req.Day)
	slots := make([]Slot, len(grid))

	for i, start := range grid {
		slots[i] = Slot{
			StartTime: start,
			Working:   doctor.IsWorkingAt(start.Time()),
			Booked:    uc.ledger.IsBooked(doctor.ID, start),
		}
	}

	uc.logger.Info("DaySlots: generated %d slots for doctor=%d, day=%s", len(slots), req.DoctorID, req.Day)

	return &Response{DoctorID: req.DoctorID, Slots: slots}, nil
}
