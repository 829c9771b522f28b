package book_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentCore/internal/domain"
	"github.com/m04kA/SMC-AppointmentCore/internal/service/bookings"
)

// UseCase use case создания бронирования: валидация запроса и
// делегирование в реестр, который владеет инвариантом уникальности
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

// Execute выполняет бронирование слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Врач должен существовать в ростере
	doctor, found := domain.DoctorByID(req.DoctorID)
	if !found {
		uc.logger.Warn("BookSlot: doctor id=%d not found in roster", req.DoctorID)
		return nil, ErrDoctorNotFound
	}

	// 3. Вставка через реестр; конфликт — штатный результат
	if err := uc.ledger.Book(ctx, req.DoctorID, req.DateTime); err != nil {
		if errors.Is(err, bookings.ErrSlotAlreadyBooked) {
			return nil, ErrSlotAlreadyBooked
		}
		return nil, fmt.Errorf("book_slot: ledger error: %w", err)
	}

	uc.logger.Info("BookSlot: booked doctor=%d (%s) at=%s", doctor.ID, doctor.Name, req.DateTime)

	return &Response{
		Booking:    domain.Booking{DoctorID: req.DoctorID, DateTime: req.DateTime},
		DoctorName: doctor.Name,
	}, nil
}
