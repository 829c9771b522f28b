package bookings

import (
	"context"

	"github.com/m04kA/SMC-AppointmentCore/internal/domain"
)

// LedgerRepository контракт персистентности реестра:
// полная загрузка при старте и полная перезапись при каждой мутации
type LedgerRepository interface {
	Load(ctx context.Context) ([]domain.Booking, error)
	Save(ctx context.Context, bookings []domain.Booking) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс метрик реестра; реализация может быть nil-safe
type Metrics interface {
	ObserveBookingCreated()
	ObserveBookingConflict()
	ObserveBookingCancelled()
	SetLedgerSize(n int)
}
